package server

import (
	"wep/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	e.GET("/health", routes.HealthHandler)

	apiRoutes := e.Group("/api")

	// Article routes
	apiRoutes.GET("/articles", routes.GetArticlesHandler)
	apiRoutes.POST("/articles", routes.CreateArticleHandler)
	apiRoutes.GET("/articles/:id", routes.GetArticleHandler)
	apiRoutes.GET("/articles/:id/recommendations", routes.GetRecommendationsHandler)

	// Projection routes
	apiRoutes.GET("/articles/:id/jsonld", routes.GetArticleJSONLDHandler)
	apiRoutes.GET("/articles/:id/rdf", routes.GetArticleRDFHandler)
	apiRoutes.GET("/articles/:id/qrcode", routes.GetArticleQRCodeHandler)

	// Query routes
	apiRoutes.POST("/sparql/query", routes.SparqlQueryHandler)
	apiRoutes.GET("/search", routes.SearchArticlesHandler)
	apiRoutes.GET("/statistics", routes.GetStatisticsHandler)
	apiRoutes.GET("/provenance/:id", routes.GetProvenanceHandler)

	// Knowledge base routes
	apiRoutes.GET("/dbpedia/entity", routes.GetDBpediaEntityHandler)
	apiRoutes.GET("/wikidata/search", routes.SearchWikidataHandler)

	// Validation routes
	apiRoutes.POST("/validate", routes.ValidateArticleHandler)
	apiRoutes.GET("/shacl/shapes", routes.GetShapesHandler)
}
