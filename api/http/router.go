package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gtm-serpro/docsearch/api/http/handlers"
)

// Handlers groups everything Register wires.
type Handlers struct {
	Health       *handlers.HealthHandler
	Session      *handlers.SessionHandler
	Highlight    *handlers.HighlightHandler
	Autocomplete *handlers.AutocompleteHandler
	Facets       *handlers.FacetsHandler
	Results      *handlers.ResultsHandler
	Filters      *handlers.FiltersHandler
	Preferences  *handlers.PreferencesHandler
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, h Handlers, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	v1.Post("/session", h.Session.Start)
	v1.Post("/highlight", h.Highlight.Highlight)

	ac := v1.Group("/autocomplete")
	ac.Get("/", h.Autocomplete.Fields)
	ac.Get("/:field", h.Autocomplete.Suggest)

	v1.Post("/facets/filter", h.Facets.Filter)

	rg := v1.Group("/results")
	rg.Post("/cards", h.Results.Cards)
	rg.Post("/render", h.Results.Render)
	rg.Post("/highlight", h.Results.Highlight)
	rg.Get("/sample", h.Results.Sample)

	fg := v1.Group("/filters")
	fg.Post("/count", h.Filters.Count)
	fg.Get("/operators/next", h.Filters.NextOperator)
	fg.Get("/currency", h.Filters.Currency)

	// Session scoped
	v1.Get("/fields", authMW, h.Preferences.Catalog)
	pg := v1.Group("/preferences", authMW)
	pg.Get("/", h.Preferences.Get)
	pg.Put("/", h.Preferences.Put)
	pg.Post("/actions/:action", h.Preferences.Action)
	pg.Put("/fields", h.Preferences.Fields)
	pg.Put("/sidebar", h.Preferences.Sidebar)
}
