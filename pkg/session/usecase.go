package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UseCase issues sessions.
type UseCase interface {
	Start(ctx context.Context) (Session, string, error)
}

type service struct {
	tokens TokenGenerator
	ttl    time.Duration
	now    func() time.Time
}

func NewService(tokens TokenGenerator, ttl time.Duration) UseCase {
	return &service{tokens: tokens, ttl: ttl, now: time.Now}
}

// Start creates a fresh session and its signed token.
func (s *service) Start(ctx context.Context) (Session, string, error) {
	now := s.now().UTC()
	sess := Session{
		ID:        uuid.New(),
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}
	token, err := s.tokens.Generate(ctx, sess)
	if err != nil {
		return Session{}, "", err
	}
	return sess, token, nil
}
