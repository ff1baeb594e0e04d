package routes

import (
	"errors"
	"net/http"

	"wep/internal/server/middleware"
	"wep/pkg/jsonld"
	"wep/pkg/logger"
	"wep/pkg/store"

	"github.com/labstack/echo/v4"
)

// GetArticleJSONLDHandler serves the article as a schema.org NewsArticle
// JSON-LD document. Provenance edges enrich the document when present.
func GetArticleJSONLDHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()
	id := c.Param("id")

	article, err := app.Store.GetArticle(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Article not found"})
		}
		logger.Error("Failed to load article", "id", id, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
	}

	chain, err := app.Store.GetProvenanceChain(ctx, id)
	if err != nil {
		logger.Warn("Provenance lookup skipped for JSON-LD", "id", id, "err", err)
		chain = nil
	}

	doc := jsonld.FromArticle(article, chain, app.Namespace)

	c.Response().Header().Set(echo.HeaderContentType, "application/ld+json")
	return c.JSON(http.StatusOK, doc)
}
