package routes

import (
	"net/http"

	"wep/internal/server/middleware"
	"wep/pkg/logger"
	"wep/pkg/store"

	"github.com/labstack/echo/v4"
)

// CreateArticleHandler enriches a submitted draft with knowledge-base
// entities and writes it to the store. Enrichment is best effort: an
// unreachable collaborator degrades to an unenriched article, never a
// failed creation.
func CreateArticleHandler(c echo.Context) error {
	type createArticleBody struct {
		Title       string   `json:"title" validate:"required"`
		Author      string   `json:"author" validate:"required"`
		Content     string   `json:"content" validate:"required"`
		Publication string   `json:"publication" validate:"required"`
		Language    string   `json:"language"`
		Keywords    []string `json:"keywords"`
		Subjects    []string `json:"iptc_subjects"`

		ImageURLs []string `json:"image_urls"`
		VideoURLs []string `json:"video_urls"`
		AudioURLs []string `json:"audio_urls"`

		SourceURL        string `json:"url"`
		BasedOnArticleID string `json:"based_on_article_id"`
		DerivationKind   string `json:"derivation_type"`
	}

	data := new(createArticleBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	related, err := app.Enricher.Annotate(ctx, data.Title+" "+data.Content)
	if err != nil {
		logger.Warn("Entity annotation skipped", "err", err)
		related = nil
	}
	var wikidata []string
	if len(related) > 0 {
		wikidata = app.Enricher.CrossReference(ctx, related)
	}

	article, err := app.Store.CreateArticle(ctx, store.Draft{
		Title:            data.Title,
		Author:           data.Author,
		Body:             data.Content,
		Publication:      data.Publication,
		Language:         data.Language,
		Keywords:         data.Keywords,
		Subjects:         data.Subjects,
		ImageURLs:        data.ImageURLs,
		VideoURLs:        data.VideoURLs,
		AudioURLs:        data.AudioURLs,
		SourceURL:        data.SourceURL,
		BasedOnArticleID: data.BasedOnArticleID,
		DerivationKind:   data.DerivationKind,
		RelatedEntities:  related,
		WikidataEntities: wikidata,
	})
	if err != nil {
		logger.Error("Failed to create article", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to create article"})
	}

	return c.JSON(http.StatusCreated, article)
}
