package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Session is an anonymous browser identity. It only scopes stored
// preferences; there are no credentials behind it.
type Session struct {
	ID        uuid.UUID `json:"id"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// TokenGenerator abstracts token creation (e.g., JWT).
type TokenGenerator interface {
	Generate(ctx context.Context, s Session) (string, error)
}
