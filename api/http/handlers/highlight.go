package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/gtm-serpro/docsearch/api/http/presenter"
	"github.com/gtm-serpro/docsearch/pkg/textmatch"
)

const (
	modeFirst = "first"
	modeAll   = "all"
)

type HighlightHandler struct{}

func NewHighlightHandler() *HighlightHandler { return &HighlightHandler{} }

type highlightRequest struct {
	Text  string `json:"text"`
	Query string `json:"query"`
	Mode  string `json:"mode" enums:"first,all"`
	HTML  bool   `json:"html"`
}

type highlightResponse struct {
	Result string           `json:"result"`
	Spans  []textmatch.Span `json:"spans"`
}

// Highlight marks the query in the text, ignoring case and accents. With
// html=true every segment of the text is escaped.
// @Summary Highlight text
// @Tags    highlight
// @Accept  json
// @Produce json
// @Param   input body highlightRequest true "text and query"
// @Success 200 {object} highlightResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /highlight [post]
func (h *HighlightHandler) Highlight(c *fiber.Ctx) error {
	var req highlightRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	hl := textmatch.Plain
	if req.HTML {
		hl = textmatch.HTML
	}
	resp := highlightResponse{Spans: []textmatch.Span{}}
	switch req.Mode {
	case "", modeFirst:
		resp.Result = hl.Highlight(req.Text, req.Query)
		if s, ok := textmatch.Find(req.Text, req.Query); ok {
			resp.Spans = append(resp.Spans, s)
		}
	case modeAll:
		resp.Result = hl.HighlightAll(req.Text, req.Query)
		resp.Spans = append(resp.Spans, textmatch.FindAll(req.Text, req.Query)...)
	default:
		return presenter.Error(c, http.StatusBadRequest, "mode must be first or all")
	}
	return presenter.JSON(c, http.StatusOK, resp)
}
