package txwatch

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/txalert/internal/notify"
)

var (
	// ErrStillInProgress indicates that another process is sending this notification.
	ErrStillInProgress = errors.New("notification still in progress")

	// ErrAlreadyNotified indicates that this notification was already sent.
	ErrAlreadyNotified = errors.New("notification already sent")
)

// IdempotencyGuard ensures a notification is sent at most once per
// transaction and direction across replays and restarts.
type IdempotencyGuard interface {
	// ClaimNotification reserves the (txHash, direction) pair for ttl. The
	// claim only has to outlive one delivery attempt, so a process that dies
	// holding it blocks replays for at most ttl.
	//
	// Returns:
	//   - nil if the claim was acquired.
	//   - ErrStillInProgress or ErrAlreadyNotified as expected control flow signals.
	//   - Any other error indicates a failure of the guard itself.
	ClaimNotification(ctx context.Context, txHash string, direction notify.Direction, ttl time.Duration) error

	// MarkNotificationSent records that the notification was delivered and
	// keeps that record for ttl.
	MarkNotificationSent(ctx context.Context, txHash string, direction notify.Direction, ttl time.Duration) error

	// ReleaseNotification drops a claim so a later replay may try again.
	ReleaseNotification(ctx context.Context, txHash string, direction notify.Direction) error
}

// nopIdempotencyGuard grants every claim and stores nothing.
type nopIdempotencyGuard struct{}

var _ IdempotencyGuard = (*nopIdempotencyGuard)(nil)

func (nopIdempotencyGuard) ClaimNotification(context.Context, string, notify.Direction, time.Duration) error {
	return nil
}

func (nopIdempotencyGuard) MarkNotificationSent(context.Context, string, notify.Direction, time.Duration) error {
	return nil
}

func (nopIdempotencyGuard) ReleaseNotification(context.Context, string, notify.Direction) error {
	return nil
}
