package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MedAmineFouzai/BuilderServiceRest/config"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/controller"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/infrastructure/storage"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/infrastructure/tracing"
	localmiddleware "github.com/MedAmineFouzai/BuilderServiceRest/internal/middleware"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/repository"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/service"
	"github.com/MedAmineFouzai/BuilderServiceRest/pkg/response"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// App holds the HTTP server and its dependencies. Publisher and Notifier are
// optional; events and mails are skipped when they are nil.
type App struct {
	DB        *mongo.Database
	Config    *config.Config
	Server    *echo.Echo
	Publisher service.EventPublisher
	Notifier  service.Notifier

	metrics  *echo.Echo
	registry *prometheus.Registry
}

func (app *App) collections() repository.Collections {
	c := app.Config.MongoDBConfig
	return repository.Collections{
		Categories: c.CategoriesCollection,
		Features:   c.FeaturesCollection,
		Templates:  c.TemplatesCollection,
		Prototypes: c.PrototypesCollection,
		Projects:   c.ProjectsCollection,
	}
}

// Routes builds the echo instance with middleware, media and every
// controller registered. It is called by Start and may be used on its own.
func (app *App) Routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: app.Config.CORSAllowedOrigins,
	}))

	tracer := otel.Tracer(tracing.ServiceName)
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// span creation and naming
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()), trace.WithSpanKind(trace.SpanKindServer))
			defer span.End()

			// add the context to the request
			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	app.registry = prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "",
		Registerer: app.registry,
	}))

	e.Use(localmiddleware.Logger)

	e.Static(app.Config.StorageConfig.MediaPrefix, app.Config.StorageConfig.UploadDir)

	api := e.Group("/api/v1")
	api.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})

	g := api.Group("/builder")

	collections := app.collections()
	fileStorage := storage.CreateLocalStorage(app.Config.StorageConfig.UploadDir, app.Config.StorageConfig.MediaPrefix)
	strict := app.Config.StrictReferences

	categorySvc := service.CreateCategoryService(repository.CreateNewCategoryRepository(app.DB, collections), fileStorage, app.Publisher)
	controller.CreateCategoryController(g, categorySvc)

	featureSvc := service.CreateFeatureService(repository.CreateNewFeatureRepository(app.DB, collections), fileStorage, app.Publisher)
	controller.CreateFeatureController(g, featureSvc)

	templateSvc := service.CreateTemplateService(repository.CreateNewTemplateRepository(app.DB, collections), fileStorage, app.Publisher, strict)
	controller.CreateTemplateController(g, templateSvc)

	prototypeSvc := service.CreatePrototypeService(repository.CreateNewPrototypeRepository(app.DB, collections), app.Publisher, strict)
	controller.CreatePrototypeController(g, prototypeSvc)

	projectSvc := service.CreateProjectService(repository.CreateNewProjectRepository(app.DB, collections), fileStorage, app.Publisher, app.Notifier, strict)
	controller.CreateProjectController(g, projectSvc)

	app.Server = e
	return e
}

// Start serves the API and, when METRICS_PORT is set, the prometheus
// endpoint. It blocks until the API server stops.
func (app *App) Start() error {
	e := app.Routes()

	if app.Config.MetricsPort != "" {
		app.metrics = echo.New()
		app.metrics.HideBanner = true
		app.metrics.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: app.registry,
		}))
		go func() {
			if err := app.metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("Failed to start metrics server")
			}
		}()
	}

	log.Info().Str("port", app.Config.ServicePort).Msg("Starting builder service")
	if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if app.metrics != nil {
		if err := app.metrics.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to stop metrics server")
		}
	}

	if app.Server == nil {
		return nil
	}
	return app.Server.Shutdown(ctx)
}
