package session

import (
	"context"
	"sync"
	"time"
)

type memoryItem struct {
	value     string
	expiresAt time.Time
}

// MemoryClient is an in-process expiring KV store. It serves deployments
// without Redis and the test suite. Expiry is enforced lazily on Get.
type MemoryClient struct {
	mu    sync.Mutex
	items map[string]memoryItem

	// Now is the clock used for expiry checks, replaceable in tests.
	Now func() time.Time
}

func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		items: make(map[string]memoryItem),
		Now:   time.Now,
	}
}

func (c *MemoryClient) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[key]
	if !ok {
		return "", false, nil
	}
	if c.Now().After(item.expiresAt) {
		delete(c.items, key)
		return "", false, nil
	}
	return item.value, true, nil
}

func (c *MemoryClient) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = memoryItem{value: value, expiresAt: c.Now().Add(ttl)}
	return nil
}

func (c *MemoryClient) Del(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

func (c *MemoryClient) Ping(_ context.Context) error {
	return nil
}
