package routes

import (
	"net/http"

	"wep/pkg/shacl"

	"github.com/labstack/echo/v4"
)

// GetShapesHandler serves the turtle shapes graph used for validation.
func GetShapesHandler(c echo.Context) error {
	return c.Blob(http.StatusOK, "text/turtle", []byte(shacl.ShapesGraph()))
}
