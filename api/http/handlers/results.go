package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/gtm-serpro/docsearch/api/http/presenter"
	"github.com/gtm-serpro/docsearch/pkg/results"
)

type ResultsHandler struct {
	uc     results.UseCase
	sample []results.Document
	log    *slog.Logger
}

// NewResultsHandler serves card building. sample is returned by Sample.
func NewResultsHandler(uc results.UseCase, sample []results.Document, log *slog.Logger) *ResultsHandler {
	return &ResultsHandler{uc: uc, sample: sample, log: log}
}

type cardsRequest struct {
	Term      string             `json:"term"`
	Documents []results.Document `json:"documents"`
}

type cardsResponse struct {
	Term  string         `json:"term"`
	Total int            `json:"total"`
	Cards []results.Card `json:"cards"`
}

// Cards builds the card models of a result page.
// @Summary Build result cards
// @Tags    results
// @Accept  json
// @Produce json
// @Param   input body cardsRequest true "search term and documents"
// @Success 200 {object} cardsResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /results/cards [post]
func (h *ResultsHandler) Cards(c *fiber.Ctx) error {
	var req cardsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	cards := h.uc.BuildAll(req.Documents, req.Term)
	return presenter.JSON(c, http.StatusOK, cardsResponse{Term: req.Term, Total: len(cards), Cards: cards})
}

// Render returns the cards as an HTML fragment.
// @Summary Render result cards
// @Tags    results
// @Accept  json
// @Produce html
// @Param   input body cardsRequest true "search term and documents"
// @Success 200 {string} string
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /results/render [post]
func (h *ResultsHandler) Render(c *fiber.Ctx) error {
	var req cardsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	var buf bytes.Buffer
	if err := results.Render(&buf, h.uc.BuildAll(req.Documents, req.Term)); err != nil {
		h.log.Error("render cards", "err", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to render cards")
	}
	return presenter.HTML(c, http.StatusOK, buf.Bytes())
}

type liveHighlightRequest struct {
	Text  string `json:"text"`
	Query string `json:"query"`
}

// Highlight is the live highlight of rendered card text: every occurrence,
// escaped; "*:*" or an empty query only escapes.
// @Summary Live highlight
// @Tags    results
// @Accept  json
// @Produce json
// @Param   input body liveHighlightRequest true "text and query"
// @Success 200 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /results/highlight [post]
func (h *ResultsHandler) Highlight(c *fiber.Ctx) error {
	var req liveHighlightRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"html": h.uc.Highlight(req.Text, req.Query)})
}

// Sample returns the demo documents of the catalog.
// @Summary Sample documents
// @Tags    results
// @Produce json
// @Success 200 {array} results.Document
// @Router  /results/sample [get]
func (h *ResultsHandler) Sample(c *fiber.Ctx) error {
	docs := h.sample
	if docs == nil {
		docs = []results.Document{}
	}
	return presenter.JSON(c, http.StatusOK, docs)
}
