package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/gtm-serpro/docsearch/api/http/presenter"
	"github.com/gtm-serpro/docsearch/pkg/facets"
)

type FacetsHandler struct {
	groups []facets.Group
}

// NewFacetsHandler takes the groups used when a request carries none.
func NewFacetsHandler(groups []facets.Group) *FacetsHandler {
	return &FacetsHandler{groups: groups}
}

type facetFilterRequest struct {
	Query  string         `json:"query"`
	Groups []facets.Group `json:"groups"`
}

type facetFilterResponse struct {
	Visible int                    `json:"visible"`
	Groups  []facets.FilteredGroup `json:"groups"`
}

// Filter narrows the sidebar facets to the ones matching the query.
// @Summary Filter facets
// @Tags    facets
// @Accept  json
// @Produce json
// @Param   input body facetFilterRequest true "query and optional groups"
// @Success 200 {object} facetFilterResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /facets/filter [post]
func (h *FacetsHandler) Filter(c *fiber.Ctx) error {
	var req facetFilterRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	groups := req.Groups
	if groups == nil {
		groups = h.groups
	}
	out := facets.Filter(groups, req.Query)
	return presenter.JSON(c, http.StatusOK, facetFilterResponse{Visible: facets.CountVisible(out), Groups: out})
}
