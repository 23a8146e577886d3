// Package redis stores the notification claims used to keep replays from
// sending the same alert twice.
package redis

import (
	"context"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// The guard fails open, so a slow server should cost a notification as
// little latency as possible.
const (
	dialTimeout = 2 * time.Second
	ioTimeout   = time.Second
	maxRetries  = 1
)

// client implements txwatch.IdempotencyGuard on top of a single Redis node.
type client struct {
	conn *redis.Client
}

// Close releases the connection pool.
func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to addr and pings it, so a misconfigured guard is
// reported at startup instead of on the first matched transaction.
func NewClient(ctx context.Context, addr, username, password string, db int) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:         addr,
		Username:     username,
		Password:     password,
		DB:           db,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
		MaxRetries:   maxRetries,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	return &client{conn: conn}, nil
}
