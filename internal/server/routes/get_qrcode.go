package routes

import (
	"errors"
	"net/http"

	"wep/internal/server/middleware"
	"wep/pkg/logger"
	"wep/pkg/qr"
	"wep/pkg/store"

	"github.com/labstack/echo/v4"
)

// GetArticleQRCodeHandler renders a share code linking to the article's
// frontend page. The article must exist; the code itself is computed, not
// stored.
func GetArticleQRCodeHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App
	id := c.Param("id")

	if _, err := app.Store.GetArticle(c.Request().Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Article not found"})
		}
		logger.Error("Failed to load article", "id", id, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
	}

	code, err := qr.Generate(id, app.FrontendURL)
	if err != nil {
		logger.Error("Failed to render share code", "id", id, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
	}

	return c.JSON(http.StatusOK, code)
}
