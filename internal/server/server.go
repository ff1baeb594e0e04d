package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mid "wep/internal/server/middleware"
	"wep/internal/util"
	"wep/pkg/enrich"
	"wep/pkg/logger"
	"wep/pkg/shacl"
	"wep/pkg/sparql"
	"wep/pkg/store/fuseki"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fusekiURL := util.GetEnvString("FUSEKI_URL", "http://localhost:3030")
	namespace := util.GetEnvString("WEP_NAMESPACE", "http://wep.example.org")

	sparqlClient := sparql.NewClient(sparql.NewClientParams{
		BaseURL:  fusekiURL,
		Dataset:  util.GetEnvString("FUSEKI_DATASET", "wep"),
		Username: util.GetEnv("FUSEKI_USER"),
		Password: util.GetEnv("FUSEKI_PASSWORD"),
		Timeout:  time.Duration(util.GetEnvNumeric("FUSEKI_TIMEOUT_SECONDS", 30)) * time.Second,
	})
	if !sparqlClient.Ping(ctx) {
		logger.Warn("Fuseki not reachable at startup, continuing degraded", "url", fusekiURL)
	}

	articleStore := fuseki.NewStore(fuseki.NewStoreParams{
		Gateway:   sparqlClient,
		Namespace: namespace,
	})

	enricher := enrich.NewDBpediaClient(enrich.NewDBpediaClientParams{
		SpotlightURL: util.GetEnv("SPOTLIGHT_URL"),
		SparqlURL:    util.GetEnv("DBPEDIA_SPARQL_URL"),
		WikidataURL:  util.GetEnv("WIKIDATA_SPARQL_URL"),
	})

	shaclValidator := shacl.NewEngineClient(shacl.NewEngineClientParams{
		Endpoint: util.GetEnvString("SHACL_ENGINE_URL", "http://localhost:8000/validate"),
	})

	app := &mid.App{
		Store:       articleStore,
		Sparql:      sparqlClient,
		Enricher:    enricher,
		Shacl:       shaclValidator,
		Namespace:   namespace,
		FrontendURL: util.GetEnvString("FRONTEND_URL", "http://localhost:3000"),
		FusekiURL:   fusekiURL,
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())

	RegisterRoutes(e)

	go func() {
		port := util.GetEnvString("PORT", "8080")
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}
