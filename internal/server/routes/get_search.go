package routes

import (
	"net/http"

	"wep/internal/server/middleware"
	"wep/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SearchArticlesHandler matches a term against headline, body and author,
// optionally filtered by language.
func SearchArticlesHandler(c echo.Context) error {
	term := c.QueryParam("q")
	if term == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Missing query parameter q"})
	}

	app := c.(*middleware.AppContext).App
	results, err := app.Store.SearchArticles(c.Request().Context(), term, c.QueryParam("language"))
	if err != nil {
		logger.Error("Search failed", "term", term, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
	}

	return c.JSON(http.StatusOK, results)
}
