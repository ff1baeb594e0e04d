package routes

import (
	"net/http"

	"wep/internal/server/middleware"
	"wep/pkg/logger"

	"github.com/labstack/echo/v4"
)

// GetProvenanceHandler returns the full provenance chain of an article.
// An article written without provenance yields an empty document, not a
// missing one.
func GetProvenanceHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App
	id := c.Param("id")

	chain, err := app.Store.GetProvenanceChain(c.Request().Context(), id)
	if err != nil {
		logger.Error("Failed to load provenance chain", "id", id, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
	}

	return c.JSON(http.StatusOK, chain)
}
