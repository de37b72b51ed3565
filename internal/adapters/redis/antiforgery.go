package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// TokenStore keeps one-time anti-forgery tokens bound to a browser session.
type TokenStore struct {
	client *Client
}

func NewTokenStore(client *Client) *TokenStore {
	return &TokenStore{client: client}
}

func tokenKey(sessionID, token string) string {
	return fmt.Sprintf("csrf:%s:%s", sessionID, token)
}

func (s *TokenStore) Issue(ctx context.Context, sessionID string, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, tokenKey(sessionID, token), "1", ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Consume reports whether token was issued for sessionID and invalidates it.
func (s *TokenStore) Consume(ctx context.Context, sessionID, token string) (bool, error) {
	if sessionID == "" || token == "" {
		return false, nil
	}
	_, err := s.client.GetDel(ctx, tokenKey(sessionID, token))
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
