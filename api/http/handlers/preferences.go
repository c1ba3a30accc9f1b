package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gtm-serpro/docsearch/api/http/presenter"
	"github.com/gtm-serpro/docsearch/pkg/catalog"
	"github.com/gtm-serpro/docsearch/pkg/fields"
	"github.com/gtm-serpro/docsearch/pkg/preferences"
)

// PreferencesHandler serves the per-session display settings and the
// visible field selection.
type PreferencesHandler struct {
	uc  preferences.UseCase
	cat *catalog.Catalog
	log *slog.Logger
}

func NewPreferencesHandler(uc preferences.UseCase, cat *catalog.Catalog, log *slog.Logger) *PreferencesHandler {
	return &PreferencesHandler{uc: uc, cat: cat, log: log}
}

// @Summary Load preferences
// @Tags    preferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} preferences.Preferences
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /preferences [get]
func (h *PreferencesHandler) Get(c *fiber.Ctx) error {
	id, ok := owner(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "missing session")
	}
	p, err := h.uc.Load(c.Context(), id)
	if err != nil {
		return h.storeError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// Put replaces the preferences; out of range values are clamped.
// @Summary Replace preferences
// @Tags    preferences
// @Accept  json
// @Produce json
// @Param   input body preferences.Preferences true "preferences"
// @Security BearerAuth
// @Success 200 {object} preferences.Preferences
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /preferences [put]
func (h *PreferencesHandler) Put(c *fiber.Ctx) error {
	id, ok := owner(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "missing session")
	}
	var p preferences.Preferences
	if err := c.BodyParser(&p); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p, err := h.uc.Save(c.Context(), id, p)
	if err != nil {
		return h.storeError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// Action applies an accessibility menu command.
// @Summary Apply accessibility action
// @Tags    preferences
// @Produce json
// @Param   action path string true "theme, contrast, fontUp, fontDown or reset"
// @Security BearerAuth
// @Success 200 {object} preferences.Preferences
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /preferences/actions/{action} [post]
func (h *PreferencesHandler) Action(c *fiber.Ctx) error {
	id, ok := owner(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "missing session")
	}
	p, err := h.uc.Apply(c.Context(), id, preferences.Action(c.Params("action")))
	if err != nil {
		if errors.Is(err, preferences.ErrInvalidAction) {
			return presenter.Error(c, http.StatusBadRequest, "unknown action")
		}
		return h.storeError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}

type sidebarRequest struct {
	Width int `json:"width"`
}

// @Summary Set sidebar width
// @Tags    preferences
// @Accept  json
// @Produce json
// @Param   input body sidebarRequest true "width in pixels (clamped to 10..1000)"
// @Security BearerAuth
// @Success 200 {object} preferences.Preferences
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /preferences/sidebar [put]
func (h *PreferencesHandler) Sidebar(c *fiber.Ctx) error {
	id, ok := owner(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "missing session")
	}
	var req sidebarRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p, err := h.uc.SetSidebarWidth(c.Context(), id, req.Width)
	if err != nil {
		return h.storeError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}

const (
	bulkShowAll = "all"
	bulkHideAll = "none"
	bulkReset   = "reset"
)

type fieldsRequest struct {
	// Available are the fields present in the current results; empty means
	// every catalog field.
	Available []string        `json:"available"`
	Bulk      string          `json:"bulk" enums:"all,none,reset"`
	Visible   map[string]bool `json:"visible"`
}

type fieldsResponse struct {
	Menu         fields.Menu `json:"menu"`
	HiddenFields []string    `json:"hiddenFields"`
}

// Fields changes the visible field selection: the bulk command first, then
// the per-field toggles.
// @Summary Toggle visible fields
// @Tags    preferences
// @Accept  json
// @Produce json
// @Param   input body fieldsRequest true "selection changes"
// @Security BearerAuth
// @Success 200 {object} fieldsResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /preferences/fields [put]
func (h *PreferencesHandler) Fields(c *fiber.Ctx) error {
	id, ok := owner(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "missing session")
	}
	var req fieldsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p, err := h.uc.Load(c.Context(), id)
	if err != nil {
		return h.storeError(c, err)
	}
	sel := fields.NewSelection(h.cat, p.HiddenFields)
	if len(req.Available) > 0 {
		sel.SetAvailable(req.Available)
	}
	switch req.Bulk {
	case "":
	case bulkShowAll:
		sel.ShowAll()
	case bulkHideAll:
		sel.HideAll()
	case bulkReset:
		sel.Reset()
	default:
		return presenter.Error(c, http.StatusBadRequest, "bulk must be all, none or reset")
	}
	for key, visible := range req.Visible {
		sel.Toggle(key, visible)
	}
	p, err = h.uc.SetHiddenFields(c.Context(), id, sel.Hidden())
	if err != nil {
		return h.storeError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fieldsResponse{Menu: sel.Menu(), HiddenFields: p.HiddenFields})
}

type catalogFieldsResponse struct {
	Groups []catalog.Group  `json:"groups"`
	Fields []catalog.Field  `json:"fields"`
	Filter []catalog.Filter `json:"filters"`
	Menu   fields.Menu      `json:"menu"`
}

// Catalog returns the field catalog with the caller's visibility. The
// optional available query narrows the menu to the fields of the current
// results.
// @Summary Field catalog
// @Tags    fields
// @Produce json
// @Param   available query string false "comma separated field keys"
// @Security BearerAuth
// @Success 200 {object} catalogFieldsResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /fields [get]
func (h *PreferencesHandler) Catalog(c *fiber.Ctx) error {
	id, ok := owner(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "missing session")
	}
	p, err := h.uc.Load(c.Context(), id)
	if err != nil {
		return h.storeError(c, err)
	}
	sel := fields.NewSelection(h.cat, p.HiddenFields)
	if v := strings.TrimSpace(c.Query("available")); v != "" {
		sel.SetAvailable(strings.Split(v, ","))
	}
	return presenter.JSON(c, http.StatusOK, catalogFieldsResponse{
		Groups: h.cat.Groups,
		Fields: h.cat.ResultFields,
		Filter: h.cat.Filters,
		Menu:   sel.Menu(),
	})
}

func (h *PreferencesHandler) storeError(c *fiber.Ctx, err error) error {
	h.log.Error("preferences store", "path", c.Path(), "err", err)
	return presenter.Error(c, http.StatusInternalServerError, "preferences unavailable")
}
