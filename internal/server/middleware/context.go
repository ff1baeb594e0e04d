package middleware

import (
	"github.com/labstack/echo/v4"

	"wep/pkg/enrich"
	"wep/pkg/shacl"
	"wep/pkg/sparql"
	"wep/pkg/store"
)

// App holds the shared service handles. Everything is built once during
// server init; handlers reach it through the request context.
type App struct {
	Store    store.ArticleStorage
	Sparql   *sparql.Client
	Enricher enrich.Enricher
	Shacl    shacl.Validator

	Namespace   string
	FrontendURL string
	FusekiURL   string
}

type AppContext struct {
	echo.Context
	App *App
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return next(&AppContext{Context: c, App: app})
		}
	}
}
