// Package txwatch matches chain transactions against the monitored addresses
// and turns every match into a notification.
//
// Outgoing transactions are described with the explorer's action text, can be
// filtered to swaps only and are labelled BUY and/or SELL. Incoming transfers
// report the received value. A transaction between two monitored addresses
// produces both notifications.
package txwatch

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/gabapcia/txalert/internal/explorer"
	"github.com/gabapcia/txalert/internal/notify"
	"github.com/gabapcia/txalert/internal/pkg/logger"
	"github.com/gabapcia/txalert/internal/pkg/metrics"
)

const (
	defaultCourtesyDelay = 2 * time.Second
	defaultClaimTTL      = 2 * time.Minute
	defaultDedupTTL      = 24 * time.Hour
)

// Transaction is the subset of a chain transaction the matcher needs.
// To is empty for contract creations.
type Transaction struct {
	Hash        string
	From        string
	To          string
	Value       *big.Int
	BlockNumber uint64
}

// ActionResolver describes what a transaction did.
type ActionResolver interface {
	Resolve(ctx context.Context, txHash string) explorer.ActionResult
}

// Sender delivers a rendered notification.
type Sender interface {
	Send(ctx context.Context, text string) (notify.Delivery, error)
}

// Forwarder hands structured details to the downstream sink without blocking.
type Forwarder interface {
	Forward(ctx context.Context, details notify.ForwardedDetails) bool
}

// Service handles one transaction at a time, in the order they are given.
type Service interface {
	// HandleTransaction notifies about tx if it involves a monitored address.
	// Delivery failures are logged; only context errors are returned.
	HandleTransaction(ctx context.Context, tx Transaction) error
}

type config struct {
	swapOnly        bool
	allowAggregated bool
	courtesyDelay   time.Duration
	explorerBaseURL string
	forwarder       Forwarder
	guard           IdempotencyGuard
	claimTTL        time.Duration
	dedupTTL        time.Duration
}

// Option configures the service.
type Option func(*config)

// WithSwapOnly drops every outgoing notification whose action is not a swap
// and suppresses incoming notifications entirely.
func WithSwapOnly(enabled bool) Option {
	return func(c *config) {
		c.swapOnly = enabled
	}
}

// WithAllowAggregated lets "Aggregated" actions through the swap-only filter.
func WithAllowAggregated(enabled bool) Option {
	return func(c *config) {
		c.allowAggregated = enabled
	}
}

// WithCourtesyDelay sets the pause taken before each explorer lookup.
func WithCourtesyDelay(d time.Duration) Option {
	return func(c *config) {
		c.courtesyDelay = d
	}
}

// WithExplorerBaseURL sets the explorer used for transaction links.
func WithExplorerBaseURL(u string) Option {
	return func(c *config) {
		if u != "" {
			c.explorerBaseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithForwarder enables the downstream forward of outgoing transactions.
func WithForwarder(f Forwarder) Option {
	return func(c *config) {
		c.forwarder = f
	}
}

// WithIdempotencyGuard sets the guard deduplicating notifications and how long
// a delivered notification is remembered.
func WithIdempotencyGuard(g IdempotencyGuard, dedupTTL time.Duration) Option {
	return func(c *config) {
		c.guard = g
		if dedupTTL > 0 {
			c.dedupTTL = dedupTTL
		}
	}
}

// WithClaimTTL sets how long an in-flight claim is held. It should cover one
// send including its retries; a claim left behind by a killed process blocks
// replays until it expires.
func WithClaimTTL(ttl time.Duration) Option {
	return func(c *config) {
		if ttl > 0 {
			c.claimTTL = ttl
		}
	}
}

type service struct {
	book     AddressBook
	resolver ActionResolver
	sender   Sender
	cfg      config
}

var _ Service = (*service)(nil)

// New builds the matcher for book.
func New(book AddressBook, resolver ActionResolver, sender Sender, opts ...Option) *service {
	cfg := config{
		courtesyDelay:   defaultCourtesyDelay,
		explorerBaseURL: explorer.DefaultBaseURL,
		guard:           nopIdempotencyGuard{},
		claimTTL:        defaultClaimTTL,
		dedupTTL:        defaultDedupTTL,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		book:     book,
		resolver: resolver,
		sender:   sender,
		cfg:      cfg,
	}
}

func (s *service) HandleTransaction(ctx context.Context, tx Transaction) error {
	from := NormalizeAddress(tx.From)
	to := NormalizeAddress(tx.To)

	if s.book.Contains(from) {
		metrics.TransactionsMatched.WithLabelValues("outgoing").Inc()
		if err := s.handleOutgoing(ctx, tx, from, to); err != nil {
			return err
		}
	}

	if to != "" && s.book.Contains(to) {
		metrics.TransactionsMatched.WithLabelValues("incoming").Inc()
		if err := s.handleIncoming(ctx, tx, from, to); err != nil {
			return err
		}
	}

	return nil
}

func (s *service) txURL(hash string) string {
	return s.cfg.explorerBaseURL + "/tx/" + hash
}

// pause waits for the courtesy delay unless ctx ends first.
func (s *service) pause(ctx context.Context) error {
	if s.cfg.courtesyDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.cfg.courtesyDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *service) handleOutgoing(ctx context.Context, tx Transaction, from, to string) error {
	fromName := s.book.Name(from)

	logger.Info(ctx, "outgoing transaction matched", "txHash", tx.Hash, "from", fromName, "block", tx.BlockNumber)

	if err := s.pause(ctx); err != nil {
		return err
	}

	action := s.resolver.Resolve(ctx, tx.Hash)

	if !PassesSwapGate(action.Plain, s.cfg.swapOnly, s.cfg.allowAggregated) {
		metrics.Notifications.WithLabelValues(string(notify.Outgoing), "filtered").Inc()
		logger.Info(ctx, "outgoing transaction filtered by swap-only mode", "txHash", tx.Hash, "action", action.Plain)
		return nil
	}

	labels := Classify(action.Plain)
	logger.Info(ctx, "outgoing transaction classified", "txHash", tx.Hash, "action", action.Plain, "labels", labels)

	text := notify.Format(notify.Notification{
		Direction: notify.Outgoing,
		FromName:  fromName,
		ToName:    s.book.Name(to),
		TxHash:    tx.Hash,
		TxURL:     s.txURL(tx.Hash),
		Action:    action.Text,
		Labels:    labels,
		Value:     tx.Value,
	})

	claimed, err := s.deliver(ctx, tx.Hash, notify.Outgoing, text)
	if err != nil {
		return err
	}

	if claimed && s.cfg.forwarder != nil {
		s.cfg.forwarder.Forward(ctx, notify.ForwardedDetails{
			FromName:   fromName,
			TxHash:     tx.Hash,
			ActionText: action.Plain,
		})
	}

	return nil
}

func (s *service) handleIncoming(ctx context.Context, tx Transaction, from, to string) error {
	toName := s.book.Name(to)

	if s.cfg.swapOnly {
		metrics.Notifications.WithLabelValues(string(notify.Incoming), "filtered").Inc()
		logger.Info(ctx, "incoming transaction suppressed by swap-only mode", "txHash", tx.Hash, "to", toName)
		return nil
	}

	logger.Info(ctx, "incoming transaction matched", "txHash", tx.Hash, "to", toName, "block", tx.BlockNumber)

	if err := s.pause(ctx); err != nil {
		return err
	}

	text := notify.Format(notify.Notification{
		Direction: notify.Incoming,
		FromName:  s.book.Name(from),
		ToName:    toName,
		TxHash:    tx.Hash,
		TxURL:     s.txURL(tx.Hash),
		Value:     tx.Value,
	})

	_, err := s.deliver(ctx, tx.Hash, notify.Incoming, text)
	return err
}

// claim asks the guard for the right to notify. Guard failures other than
// the expected signals let the notification through.
func (s *service) claim(ctx context.Context, hash string, dir notify.Direction) (bool, error) {
	err := s.cfg.guard.ClaimNotification(ctx, hash, dir, s.cfg.claimTTL)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrAlreadyNotified), errors.Is(err, ErrStillInProgress):
		logger.Info(ctx, "notification already handled", "txHash", hash, "direction", dir, "reason", err)
		return false, nil
	case ctx.Err() != nil:
		return false, ctx.Err()
	default:
		logger.Warn(ctx, "idempotency guard unavailable, sending anyway", "txHash", hash, "direction", dir, "error", err)
		return true, nil
	}
}

// deliver sends text once per (hash, direction). It reports whether this call
// owned the notification; the returned error is only ever a context error.
func (s *service) deliver(ctx context.Context, hash string, dir notify.Direction, text string) (bool, error) {
	claimed, err := s.claim(ctx, hash, dir)
	if err != nil || !claimed {
		if err == nil {
			metrics.Notifications.WithLabelValues(string(dir), "duplicate").Inc()
		}
		return false, err
	}

	delivery, err := s.sender.Send(ctx, text)
	if err != nil {
		metrics.Notifications.WithLabelValues(string(dir), "failed").Inc()

		if relErr := s.cfg.guard.ReleaseNotification(context.WithoutCancel(ctx), hash, dir); relErr != nil {
			logger.Warn(ctx, "failed to release notification claim", "txHash", hash, "direction", dir, "error", relErr)
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return true, ctxErr
		}

		logger.Error(ctx, "failed to send notification", "txHash", hash, "direction", dir, "error", err)
		return true, nil
	}

	result := "sent"
	if delivery.DryRun {
		result = "dry_run"
	}
	metrics.Notifications.WithLabelValues(string(dir), result).Inc()

	if err := s.cfg.guard.MarkNotificationSent(ctx, hash, dir, s.cfg.dedupTTL); err != nil {
		logger.Warn(ctx, "failed to mark notification as sent", "txHash", hash, "direction", dir, "error", err)
	}

	return true, nil
}
