// @title         docsearch API
// @version       1.0
// @description   Search page support service: accent-insensitive highlighting, autocomplete, facet filtering, result cards and per-session display preferences.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token from POST /session. Accepts "Bearer <JWT>" or "<JWT>".
package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"

	// internal imports
	"github.com/gtm-serpro/docsearch/api/http"
	"github.com/gtm-serpro/docsearch/api/http/handlers"
	"github.com/gtm-serpro/docsearch/api/http/presenter"
	_ "github.com/gtm-serpro/docsearch/docs"
	"github.com/gtm-serpro/docsearch/pkg/autocomplete"
	"github.com/gtm-serpro/docsearch/pkg/catalog"
	"github.com/gtm-serpro/docsearch/pkg/config"
	"github.com/gtm-serpro/docsearch/pkg/fields"
	"github.com/gtm-serpro/docsearch/pkg/health"
	"github.com/gtm-serpro/docsearch/pkg/health/checkers"
	"github.com/gtm-serpro/docsearch/pkg/preferences"
	pgrepo "github.com/gtm-serpro/docsearch/pkg/repository/postgres"
	redisrepo "github.com/gtm-serpro/docsearch/pkg/repository/redis"
	sqliterepo "github.com/gtm-serpro/docsearch/pkg/repository/sqlite"
	"github.com/gtm-serpro/docsearch/pkg/results"
	"github.com/gtm-serpro/docsearch/pkg/security/jwt"
	"github.com/gtm-serpro/docsearch/pkg/session"
	"github.com/gtm-serpro/docsearch/pkg/storage/postgres"
	"github.com/gtm-serpro/docsearch/pkg/storage/redis"
	"github.com/gtm-serpro/docsearch/pkg/storage/sqlite"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(log)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		fatal(log, "load catalog", err)
	}

	store, checker, closer := openStore(context.Background(), cfg, log)
	defer closer.Close()

	// Wire dependencies
	prefsUC := preferences.NewService(store, log,
		preferences.WithDefaultHidden(fields.DefaultHidden(cat.FieldKeys(), cat.HiddenByDefault)))
	sessionUC := session.NewService(jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer), cfg.SessionTTL)

	h := http.Handlers{
		Health:       handlers.NewHealthHandler(health.NewService(checker)),
		Session:      handlers.NewSessionHandler(sessionUC),
		Highlight:    handlers.NewHighlightHandler(),
		Autocomplete: handlers.NewAutocompleteHandler(autocomplete.NewService(cat)),
		Facets:       handlers.NewFacetsHandler(cat.Facets),
		Results:      handlers.NewResultsHandler(results.NewBuilder(cfg.DownloadBaseURL, cat.CardFields()), cat.Documents, log),
		Filters:      handlers.NewFiltersHandler(),
		Preferences:  handlers.NewPreferencesHandler(prefsUC, cat, log),
	}

	app := fiber.New(fiber.Config{
		AppName:      "docsearch",
		ErrorHandler: presenter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))

	// Session token auth for preference routes
	authMW := jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)
	http.Register(app, h, authMW)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	log.Info("HTTP server listening", "port", cfg.Port, "catalogVersion", cat.Version)
	if err := app.Listen(":" + cfg.Port); err != nil {
		fatal(log, "server stopped", err)
	}
}

// openStore picks PostgreSQL, then Redis, then the local SQLite file,
// depending on what is configured.
func openStore(ctx context.Context, cfg config.Config, log *slog.Logger) (preferences.Store, health.Checker, io.Closer) {
	switch {
	case cfg.DatabaseURL != "":
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL, postgres.Options{})
		if err != nil {
			fatal(log, "postgres connect", err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			fatal(log, "postgres migrate", err)
		}
		log.Info("preferences store", "driver", "postgres")
		return pgrepo.NewPreferencesRepository(pool), checkers.NewPostgresChecker(pool),
			closerFunc(func() error { pool.Close(); return nil })

	case cfg.RedisURL != "":
		rdb, err := redis.Connect(ctx, cfg.RedisURL)
		if err != nil {
			fatal(log, "redis connect", err)
		}
		log.Info("preferences store", "driver", "redis")
		return redisrepo.NewPreferencesRepository(rdb, cfg.SessionTTL), checkers.NewRedisChecker(rdb), rdb
	}

	db, err := sqlite.Open(ctx, cfg.SQLitePath)
	if err != nil {
		fatal(log, "sqlite open", err)
	}
	log.Info("preferences store", "driver", "sqlite", "path", cfg.SQLitePath)
	return sqliterepo.NewPreferencesRepository(db), checkers.NewSQLiteChecker(db), db
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "err", err)
	os.Exit(1)
}
