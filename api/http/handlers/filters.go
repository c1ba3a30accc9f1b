package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/gtm-serpro/docsearch/api/http/presenter"
	"github.com/gtm-serpro/docsearch/pkg/filter"
)

type FiltersHandler struct{}

func NewFiltersHandler() *FiltersHandler { return &FiltersHandler{} }

type operatorResponse struct {
	Operator filter.Operator `json:"operator"`
	Label    string          `json:"label"`
}

// Count returns how many filters of the dialog are active.
// @Summary Count active filters
// @Tags    filters
// @Accept  json
// @Produce json
// @Param   input body filter.Form true "filter dialog state"
// @Success 200 {object} map[string]int
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /filters/count [post]
func (h *FiltersHandler) Count(c *fiber.Ctx) error {
	var form filter.Form
	if err := c.BodyParser(&form); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"count": form.Count()})
}

// NextOperator returns the operator after op in the cycle.
// @Summary Next operator
// @Tags    filters
// @Produce json
// @Param   op query string false "current operator (contains, not-contains, equals)"
// @Success 200 {object} operatorResponse
// @Router  /filters/operators/next [get]
func (h *FiltersHandler) NextOperator(c *fiber.Ctx) error {
	next := filter.ParseOperator(c.Query("op")).Next()
	return presenter.JSON(c, http.StatusOK, operatorResponse{Operator: next, Label: next.Label()})
}

// Currency formats a typed value as BRL, reading its digits as cents.
// @Summary Format currency
// @Tags    filters
// @Produce json
// @Param   value query string false "raw input"
// @Success 200 {object} map[string]string
// @Router  /filters/currency [get]
func (h *FiltersHandler) Currency(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{"formatted": filter.FormatBRL(c.Query("value"))})
}
