// Package session maps opaque tokens to user identities in an expiring
// key-value store. Tokens live for a fixed 24 hours from issuance; lookups
// never extend the TTL.
package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"files-manager/common"
)

// TokenTTL is the absolute lifetime of a session token.
const TokenTTL = 24 * time.Hour

const keyPrefix = "auth_"

// Client is the minimal expiring key-value surface the store needs. The
// Redis implementation backs production; the memory implementation backs
// tests and Redis-less deployments.
type Client interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// Store issues, resolves and revokes session tokens.
type Store struct {
	kv Client
}

func NewStore(kv Client) *Store {
	return &Store{kv: kv}
}

// Issue generates an unguessable token for userID and stores the mapping
// with the fixed TTL.
func (s *Store) Issue(ctx context.Context, userID int64) (string, error) {
	token := common.GetUUID()
	err := s.kv.Set(ctx, keyPrefix+token, strconv.FormatInt(userID, 10), TokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to store session token: %w", err)
	}
	return token, nil
}

// Resolve returns the user id owning token. Absent and expired tokens are
// both reported as common.ErrUnauthorized.
func (s *Store) Resolve(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, common.ErrUnauthorized
	}
	value, ok, err := s.kv.Get(ctx, keyPrefix+token)
	if err != nil {
		return 0, fmt.Errorf("failed to look up session token: %w", err)
	}
	if !ok {
		return 0, common.ErrUnauthorized
	}
	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, common.ErrUnauthorized
	}
	return userID, nil
}

// Revoke deletes the mapping for token. Revoking an absent token is a no-op.
func (s *Store) Revoke(ctx context.Context, token string) error {
	return s.kv.Del(ctx, keyPrefix+token)
}

// Ping reports backing-store liveness.
func (s *Store) Ping(ctx context.Context) error {
	return s.kv.Ping(ctx)
}
