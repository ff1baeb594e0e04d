package routes

import (
	"errors"
	"net/http"

	"wep/internal/server/middleware"
	"wep/pkg/logger"
	"wep/pkg/store"

	"github.com/labstack/echo/v4"
)

var rdfContentTypes = map[string]string{
	"turtle": "text/turtle",
	"xml":    "application/rdf+xml",
	"n3":     "text/n3",
}

// GetArticleRDFHandler exports the article subgraph in the requested
// serialization. Supported formats are turtle (default), xml and n3.
func GetArticleRDFHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App
	id := c.Param("id")

	format := c.QueryParam("format")
	if format == "" {
		format = "turtle"
	}
	contentType, ok := rdfContentTypes[format]
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Unsupported format"})
	}

	body, err := app.Store.ExportRDF(c.Request().Context(), id, format)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Article not found"})
		}
		logger.Error("Failed to export article", "id", id, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
	}

	return c.Blob(http.StatusOK, contentType, []byte(body))
}
