package routes

import (
	"errors"
	"net/http"

	"wep/internal/server/middleware"
	"wep/pkg/logger"
	"wep/pkg/store"

	"github.com/labstack/echo/v4"
)

// GetArticleHandler returns one article with media and its provenance
// summary.
func GetArticleHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App

	article, err := app.Store.GetArticle(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Article not found"})
		}
		logger.Error("Failed to load article", "id", c.Param("id"), "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
	}

	return c.JSON(http.StatusOK, article)
}
