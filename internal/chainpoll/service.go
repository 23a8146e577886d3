// Package chainpoll follows the chain head and hands every transaction of
// every new block, in chain order, to a TransactionHandler.
//
// The poller keeps its progress in memory only. A range is committed after
// all of its blocks were handled, so a failure mid-range replays the whole
// range on the next run.
package chainpoll

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gabapcia/txalert/internal/pkg/logger"
	"github.com/gabapcia/txalert/internal/pkg/metrics"
	"github.com/gabapcia/txalert/internal/pkg/resilience/retry"
	"github.com/gabapcia/txalert/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const defaultPollInterval = 10 * time.Second

var ErrServiceAlreadyStarted = errors.New("service already started")

type Service interface {
	// Run polls until ctx is canceled, in which case it returns nil. It
	// returns an error wrapping ErrChainUnreachable when the chain client
	// cannot be reached within the retry budget.
	Run(ctx context.Context) error

	// ProcessRange handles the blocks in [from, to] and commits to as the
	// last processed block.
	ProcessRange(ctx context.Context, from, to uint64) error

	State() State
	LastProcessedBlock() uint64
}

type config struct {
	pollInterval time.Duration
	startBlock   uint64
	retry        retry.Retry
}

type Option func(*config)

// WithPollInterval sets the time between two head checks.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// WithStartBlock makes the first tick start at height instead of at the head
// found when Run starts.
func WithStartBlock(height uint64) Option {
	return func(c *config) {
		c.startBlock = height
	}
}

// WithRetry sets the policy wrapping every chain call.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

type service struct {
	mu        sync.Mutex
	isStarted bool

	chain   Blockchain
	handler TransactionHandler
	cfg     config

	state       atomic.Int32
	last        atomic.Uint64
	initialized atomic.Bool
	tracer      trace.Tracer
}

var _ Service = (*service)(nil)

func New(chain Blockchain, handler TransactionHandler, opts ...Option) *service {
	cfg := config{
		pollInterval: defaultPollInterval,
		retry:        retry.New(retry.WithOperation("chain")),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &service{
		chain:   chain,
		handler: handler,
		cfg:     cfg,
		tracer:  telemetry.Tracer("chainpoll"),
	}

	if cfg.startBlock > 0 {
		s.last.Store(cfg.startBlock - 1)
		s.initialized.Store(true)
	}

	return s
}

func (s *service) State() State {
	return State(s.state.Load())
}

func (s *service) LastProcessedBlock() uint64 {
	return s.last.Load()
}

// Snapshot returns the current progress.
func (s *service) Snapshot() PollState {
	return PollState{LastProcessedBlock: s.last.Load()}
}

func (s *service) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.isStarted {
		s.mu.Unlock()
		return ErrServiceAlreadyStarted
	}
	s.isStarted = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isStarted = false
		s.mu.Unlock()
	}()

	if !s.initialized.Load() {
		head, err := s.currentHeight(ctx)
		if err != nil {
			return ignoreCanceled(ctx, err)
		}

		s.last.Store(head)
		s.initialized.Store(true)
		metrics.LastProcessedBlock.Set(float64(head))
	}

	logger.Info(ctx, "chain poller started",
		"lastProcessedBlock", s.last.Load(),
		"pollInterval", s.cfg.pollInterval,
	)

	ticker := time.NewTicker(s.cfg.pollInterval)
	defer ticker.Stop()

	for {
		if err := s.tick(ctx); err != nil {
			return ignoreCanceled(ctx, err)
		}

		select {
		case <-ctx.Done():
			logger.Info(ctx, "chain poller stopped", "lastProcessedBlock", s.last.Load())
			return nil
		case <-ticker.C:
		}
	}
}

// tick runs one poll cycle.
func (s *service) tick(ctx context.Context) error {
	head, err := s.currentHeight(ctx)
	if err != nil {
		return err
	}

	last := s.last.Load()
	if head <= last {
		logger.Debug(ctx, "no new blocks", "head", head, "lastProcessedBlock", last)
		return nil
	}

	return s.ProcessRange(ctx, last+1, head)
}

func (s *service) ProcessRange(ctx context.Context, from, to uint64) error {
	if from > to {
		return nil
	}

	s.state.Store(int32(StateCatchingUp))
	defer s.state.Store(int32(StateIdle))

	logger.Info(ctx, "catching up", "from", from, "to", to, "blocks", to-from+1)

	for height := from; height <= to; height++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.processBlock(ctx, height); err != nil {
			return err
		}
	}

	if to > s.last.Load() {
		s.last.Store(to)
	}
	s.initialized.Store(true)
	metrics.LastProcessedBlock.Set(float64(s.last.Load()))

	return nil
}

func (s *service) processBlock(ctx context.Context, height uint64) (err error) {
	ctx, span := s.tracer.Start(ctx, "chainpoll.ProcessBlock",
		trace.WithAttributes(attribute.Int64("block.height", int64(height))),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	block, err := retry.Value(ctx, s.cfg.retry, func() (Block, error) {
		return s.chain.BlockByHeight(ctx, height)
	})
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: fetch block %d: %w", ErrChainUnreachable, height, err)
	}

	span.SetAttributes(attribute.Int("block.transactions", len(block.Transactions)))
	logger.Debug(ctx, "block fetched", "height", height, "hash", block.Hash, "transactions", len(block.Transactions))

	for _, tx := range block.Transactions {
		if tx.BlockNumber == 0 {
			tx.BlockNumber = height
		}

		if err := s.handler.HandleTransaction(ctx, tx); err != nil {
			return err
		}
	}

	metrics.BlocksProcessed.Inc()
	return nil
}

func (s *service) currentHeight(ctx context.Context) (uint64, error) {
	head, err := retry.Value(ctx, s.cfg.retry, func() (uint64, error) {
		return s.chain.CurrentHeight(ctx)
	})
	if err != nil {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		return 0, fmt.Errorf("%w: fetch head: %w", ErrChainUnreachable, err)
	}

	metrics.ChainHeadBlock.Set(float64(head))
	return head, nil
}

// ignoreCanceled turns the error caused by ctx ending into a clean stop.
func ignoreCanceled(ctx context.Context, err error) error {
	if ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		return nil
	}

	return err
}
