package routes

import (
	"errors"
	"net/http"

	"wep/internal/server/middleware"
	"wep/pkg/logger"
	"wep/pkg/recommend"
	"wep/pkg/store"

	"github.com/labstack/echo/v4"
)

// GetRecommendationsHandler returns related articles. The default mode
// matches on shared keywords in the store; mode=similarity ranks the
// recent-article pool by TF-IDF cosine similarity instead.
func GetRecommendationsHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()
	id := c.Param("id")

	if c.QueryParam("mode") == "similarity" {
		return similarityRecommendations(c, id)
	}

	recommendations, err := app.Store.GetRecommendations(ctx, id)
	if err != nil {
		logger.Error("Failed to load recommendations", "id", id, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
	}

	return c.JSON(http.StatusOK, recommendations)
}

func similarityRecommendations(c echo.Context, id string) error {
	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	target, err := app.Store.GetArticle(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Article not found"})
		}
		logger.Error("Failed to load article", "id", id, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
	}

	pool, err := app.Store.GetArticles(ctx)
	if err != nil {
		logger.Error("Failed to load article pool", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
	}

	byID := make(map[string]store.Article, len(pool))
	docs := make([]recommend.Document, 0, len(pool))
	for _, a := range pool {
		byID[a.ID] = a
		docs = append(docs, recommend.Document{
			ID:       a.ID,
			Title:    a.Title,
			Body:     a.Body,
			Keywords: a.Keywords,
		})
	}

	matches := recommend.Rank(recommend.Document{
		ID:       target.ID,
		Title:    target.Title,
		Body:     target.Body,
		Keywords: target.Keywords,
	}, docs, 5)

	type scoredSummary struct {
		store.Summary
		Score float64 `json:"score"`
	}

	results := make([]scoredSummary, 0, len(matches))
	for _, m := range matches {
		a := byID[m.ID]
		results = append(results, scoredSummary{
			Summary: store.Summary{
				ID:          a.ID,
				Title:       a.Title,
				Author:      a.Author,
				Publication: a.Publication,
				Language:    a.Language,
			},
			Score: m.Score,
		})
	}

	return c.JSON(http.StatusOK, results)
}
