package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/gtm-serpro/docsearch/api/http/presenter"
	"github.com/gtm-serpro/docsearch/pkg/autocomplete"
)

const defaultSuggestLimit = 50

type AutocompleteHandler struct {
	uc autocomplete.UseCase
}

func NewAutocompleteHandler(uc autocomplete.UseCase) *AutocompleteHandler {
	return &AutocompleteHandler{uc: uc}
}

type suggestResponse struct {
	Field       string                    `json:"field"`
	Suggestions []autocomplete.Suggestion `json:"suggestions"`
	Empty       string                    `json:"empty,omitempty"`
}

// Suggest lists the field values containing q.
// @Summary Autocomplete suggestions
// @Tags    autocomplete
// @Produce json
// @Param   field path  string true  "autocomplete field"
// @Param   q     query string false "typed text"
// @Param   limit query int    false "max suggestions (1..200)"
// @Success 200 {object} suggestResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /autocomplete/{field} [get]
func (h *AutocompleteHandler) Suggest(c *fiber.Ctx) error {
	field := c.Params("field")
	list, err := h.uc.Suggest(c.Context(), field, c.Query("q"), parseLimit(c, defaultSuggestLimit))
	if err != nil {
		if errors.Is(err, autocomplete.ErrUnknownField) {
			return presenter.Error(c, http.StatusNotFound, "unknown autocomplete field")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load suggestions")
	}
	resp := suggestResponse{Field: field, Suggestions: list}
	if len(list) == 0 {
		resp.Empty = autocomplete.EmptyMessage
	}
	return presenter.JSON(c, http.StatusOK, resp)
}

// Fields lists the fields that have autocomplete.
// @Summary Autocomplete fields
// @Tags    autocomplete
// @Produce json
// @Success 200 {array} string
// @Router  /autocomplete [get]
func (h *AutocompleteHandler) Fields(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.uc.Fields())
}
