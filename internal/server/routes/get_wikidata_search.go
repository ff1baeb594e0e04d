package routes

import (
	"net/http"

	"wep/internal/server/middleware"
	"wep/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SearchWikidataHandler finds Wikidata entities by exact english label.
func SearchWikidataHandler(c echo.Context) error {
	term := c.QueryParam("q")
	if term == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Missing query parameter q"})
	}

	app := c.(*middleware.AppContext).App
	matches, err := app.Enricher.SearchWikidata(c.Request().Context(), term)
	if err != nil {
		logger.Error("Wikidata search failed", "term", term, "err", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"message": "Knowledge base unavailable"})
	}

	return c.JSON(http.StatusOK, matches)
}
