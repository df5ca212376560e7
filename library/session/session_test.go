package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"files-manager/common"
)

func TestIssueAndResolve(t *testing.T) {
	store := NewStore(NewMemoryClient())
	ctx := context.Background()

	token, err := store.Issue(ctx, 42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestResolveUnknownToken(t *testing.T) {
	store := NewStore(NewMemoryClient())

	_, err := store.Resolve(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = store.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestRevoke(t *testing.T) {
	store := NewStore(NewMemoryClient())
	ctx := context.Background()

	token, err := store.Issue(ctx, 7)
	require.NoError(t, err)

	require.NoError(t, store.Revoke(ctx, token))
	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	// Revoking an absent token is a no-op.
	assert.NoError(t, store.Revoke(ctx, "no-such-token"))
}

func TestTokenExpiry(t *testing.T) {
	now := time.Now()
	kv := NewMemoryClient()
	kv.Now = func() time.Time { return now }
	store := NewStore(kv)
	ctx := context.Background()

	token, err := store.Issue(ctx, 9)
	require.NoError(t, err)

	// Still valid just inside the TTL window.
	now = now.Add(TokenTTL - time.Minute)
	userID, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(9), userID)

	// Expired past the window; indistinguishable from never issued.
	now = now.Add(2 * time.Minute)
	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestResolveDoesNotRefreshTTL(t *testing.T) {
	now := time.Now()
	kv := NewMemoryClient()
	kv.Now = func() time.Time { return now }
	store := NewStore(kv)
	ctx := context.Background()

	token, err := store.Issue(ctx, 5)
	require.NoError(t, err)

	// Resolving repeatedly must not slide the expiry.
	for i := 0; i < 3; i++ {
		now = now.Add(TokenTTL / 2)
		_, _ = store.Resolve(ctx, token)
	}
	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}
