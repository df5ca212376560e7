package common

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedisClient connects to Redis when connString is set and returns the
// client handle. A nil client (no error) means Redis is not enabled and the
// caller should fall back to in-memory backends.
func InitRedisClient(connString string) (*redis.Client, error) {
	if connString == "" {
		SysLog("REDIS_CONN_STRING not set, Redis is not enabled")
		return nil, nil
	}
	opt, err := redis.ParseURL(connString)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis connection string: %w", err)
	}
	rdb := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}
	SysLog("Redis connected: " + opt.Addr)
	return rdb, nil
}
