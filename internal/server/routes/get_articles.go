package routes

import (
	"net/http"

	"wep/internal/server/middleware"
	"wep/pkg/logger"

	"github.com/labstack/echo/v4"
)

// GetArticlesHandler lists the newest articles, capped at 50.
func GetArticlesHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App

	articles, err := app.Store.GetArticles(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list articles", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
	}

	return c.JSON(http.StatusOK, articles)
}
