package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/txalert/internal/notify"
	"github.com/gabapcia/txalert/internal/txwatch"

	"github.com/redis/go-redis/v9"
)

const (
	// notificationKeyPrefix namespaces every notification claim.
	notificationKeyPrefix = "txalert:notified"

	// notificationDone is stored once the message was delivered.
	notificationDone = "done"
)

func notificationKey(txHash string, direction notify.Direction) string {
	return fmt.Sprintf("%s:%s:%s", notificationKeyPrefix, strings.ToLower(txHash), direction)
}

// ClaimNotification reserves the right to notify about txHash in direction.
//
// Behavior:
//   - If the key is already marked as "done", it returns txwatch.ErrAlreadyNotified.
//   - If the key exists but is not "done", it returns txwatch.ErrStillInProgress.
//   - Otherwise, it stores an empty value with ttl to hold the claim. An
//     abandoned claim expires after ttl and the pair can be claimed again.
func (c *client) ClaimNotification(ctx context.Context, txHash string, direction notify.Direction, ttl time.Duration) error {
	key := notificationKey(txHash, direction)

	val, err := c.conn.Get(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	if val == notificationDone {
		return txwatch.ErrAlreadyNotified
	}

	ok, err := c.conn.SetNX(ctx, key, "", ttl).Result()
	if err != nil {
		return err
	}

	if !ok {
		return txwatch.ErrStillInProgress
	}

	return nil
}

// MarkNotificationSent replaces the claim with the "done" marker, kept for ttl.
func (c *client) MarkNotificationSent(ctx context.Context, txHash string, direction notify.Direction, ttl time.Duration) error {
	return c.conn.Set(ctx, notificationKey(txHash, direction), notificationDone, ttl).Err()
}

// ReleaseNotification drops an unfinished claim so a later replay can retry it.
func (c *client) ReleaseNotification(ctx context.Context, txHash string, direction notify.Direction) error {
	return c.conn.Del(ctx, notificationKey(txHash, direction)).Err()
}

// Ensure the client satisfies the IdempotencyGuard interface at compile time.
var _ txwatch.IdempotencyGuard = new(client)
