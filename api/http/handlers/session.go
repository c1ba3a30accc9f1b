package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gtm-serpro/docsearch/api/http/presenter"
	"github.com/gtm-serpro/docsearch/pkg/security/jwt"
	"github.com/gtm-serpro/docsearch/pkg/session"
)

type SessionHandler struct {
	uc session.UseCase
}

func NewSessionHandler(uc session.UseCase) *SessionHandler { return &SessionHandler{uc: uc} }

type sessionResponse struct {
	SessionID string    `json:"sessionId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Start issues an anonymous session token that scopes stored preferences.
// @Summary Start session
// @Tags    session
// @Produce json
// @Success 201 {object} sessionResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /session [post]
func (h *SessionHandler) Start(c *fiber.Ctx) error {
	s, token, err := h.uc.Start(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to start session")
	}
	return presenter.JSON(c, http.StatusCreated, sessionResponse{
		SessionID: s.ID.String(),
		Token:     token,
		ExpiresAt: s.ExpiresAt,
	})
}

// owner returns the session id set by the auth middleware.
func owner(c *fiber.Ctx) (string, bool) {
	id, _ := c.Locals(jwt.SessionKey).(string)
	return id, id != ""
}
