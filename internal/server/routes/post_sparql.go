package routes

import (
	"net/http"
	"strings"

	"wep/internal/server/middleware"
	"wep/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SparqlQueryHandler runs a caller-supplied read query against the store
// and returns the raw bindings document. Updates are rejected up front;
// the write endpoint is never exposed.
func SparqlQueryHandler(c echo.Context) error {
	type sparqlQueryBody struct {
		Query string `json:"query" validate:"required"`
	}

	data := new(sparqlQueryBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}

	if containsUpdateVerb(data.Query) {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Only read queries are allowed"})
	}

	app := c.(*middleware.AppContext).App
	raw, err := app.Sparql.SelectRaw(c.Request().Context(), data.Query)
	if err != nil {
		logger.Error("Passthrough query failed", "err", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"message": "Query failed"})
	}

	return c.JSONBlob(http.StatusOK, raw)
}

// containsUpdateVerb matches SPARQL update verbs as whole words, so read
// queries over identifiers like dateCreated or ?created pass through.
func containsUpdateVerb(query string) bool {
	words := strings.FieldsFunc(strings.ToUpper(query), func(r rune) bool {
		return r < 'A' || r > 'Z'
	})
	for _, word := range words {
		switch word {
		case "INSERT", "DELETE", "DROP", "CLEAR", "LOAD", "CREATE":
			return true
		}
	}
	return false
}
