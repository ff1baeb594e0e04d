package routes

import (
	"net/http"

	"wep/internal/server/middleware"
	"wep/pkg/logger"
	"wep/pkg/shacl"

	"github.com/labstack/echo/v4"
)

// ValidateArticleHandler checks submitted RDF against the news-article
// shapes. Validation is delegated; an unreachable engine is a 503, not a
// silent pass.
func ValidateArticleHandler(c echo.Context) error {
	type validateBody struct {
		Data string `json:"data" validate:"required"`
	}

	data := new(validateBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}

	app := c.(*middleware.AppContext).App
	report, err := app.Shacl.Validate(c.Request().Context(), data.Data, shacl.ShapesGraph())
	if err != nil {
		logger.Error("Validation engine unavailable", "err", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"message": "Validation engine unavailable"})
	}

	return c.JSON(http.StatusOK, report)
}
