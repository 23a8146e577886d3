// Package cli wires the watcher components from the configuration and exposes
// them as the txalert command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/txalert/internal/chainpoll"
	"github.com/gabapcia/txalert/internal/config"
	"github.com/gabapcia/txalert/internal/explorer"
	"github.com/gabapcia/txalert/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/txalert/internal/infra/storage/redis"
	"github.com/gabapcia/txalert/internal/notify"
	"github.com/gabapcia/txalert/internal/pkg/logger"
	"github.com/gabapcia/txalert/internal/pkg/metrics"
	"github.com/gabapcia/txalert/internal/pkg/resilience/retry"
	httpclient "github.com/gabapcia/txalert/internal/pkg/transport/http"
	"github.com/gabapcia/txalert/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txalert/internal/txwatch"

	"golang.org/x/sync/errgroup"
)

const (
	rpcTimeout      = 10 * time.Second
	explorerTimeout = 15 * time.Second
	telegramTimeout = 10 * time.Second
	sinkTimeout     = 5 * time.Second

	// drainTimeout bounds how long queued forwards may take after a one-shot run.
	drainTimeout = 10 * time.Second
)

type chainClient interface {
	chainpoll.Blockchain
	TransactionByHash(ctx context.Context, hash string) (txwatch.Transaction, error)
}

// components is everything built from the configuration for one run.
type components struct {
	chain     chainClient
	matcher   txwatch.Service
	poller    chainpoll.Service
	forwarder *notify.Forwarder
	retry     retry.Retry
	closers   []func() error
}

func (c *components) close(ctx context.Context) {
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			logger.Warn(ctx, "failed to release resource", "error", err)
		}
	}
}

type app struct {
	cfg config.Config
}

var _ Runner = (*app)(nil)

// NewApp returns the Runner backed by the real chain, explorer and Telegram clients.
func NewApp(cfg config.Config) *app {
	return &app{cfg: cfg}
}

func (a *app) newRetry(operation string) retry.Retry {
	return retry.New(
		retry.WithAttempts(a.cfg.RetryAttempts),
		retry.WithDelay(a.cfg.RetryBaseDelay),
		retry.WithMaxJitter(a.cfg.RetryMaxJitter),
		retry.WithOperation(operation),
	)
}

func (a *app) build(ctx context.Context) (*components, error) {
	cfg := a.cfg
	c := &components{retry: a.newRetry("chain")}

	book, err := txwatch.ParseAddressBook(cfg.AddressesToMonitor, cfg.AddressNames)
	if err != nil {
		return nil, err
	}

	rpcHTTP := httpclient.NewClient(
		httpclient.WithTimeout(rpcTimeout),
		httpclient.WithRetryMax(0),
		httpclient.WithPassthroughErrors(),
	)
	c.chain = ethereum.NewClient(jsonrpc.NewClient(rpcHTTP.StandardClient(), cfg.RPCEndpoint()))

	explorerHTTP := httpclient.NewClient(
		httpclient.WithTimeout(explorerTimeout),
		httpclient.WithRetryMax(0),
		httpclient.WithPassthroughErrors(),
		httpclient.WithUserAgent(explorer.UserAgent),
	)
	resolver := explorer.NewResolver(explorerHTTP.StandardClient(), a.newRetry("explorer"),
		explorer.WithBaseURL(cfg.ExplorerBaseURL),
		explorer.WithDumpDir(cfg.ExplorerDumpDir),
	)

	var sender notify.Sender = notify.NewDryRunSender()
	if cfg.SendTelegramMessages {
		telegramHTTP := httpclient.NewClient(
			httpclient.WithTimeout(telegramTimeout),
			httpclient.WithRetryMax(0),
			httpclient.WithPassthroughErrors(),
		)

		sender, err = notify.NewTelegramSender(ctx, telegramHTTP.StandardClient(),
			cfg.TelegramBotToken, cfg.TelegramAPIEndpoint, cfg.ChatID, a.newRetry("telegram"))
		if err != nil {
			return nil, err
		}
	}

	opts := []txwatch.Option{
		txwatch.WithSwapOnly(cfg.SwapOnly),
		txwatch.WithAllowAggregated(cfg.AllowAggregated),
		txwatch.WithCourtesyDelay(cfg.ExplorerCourtesyDelay),
		txwatch.WithExplorerBaseURL(cfg.ExplorerBaseURL),
	}

	if cfg.ForwardEnabled {
		sinkHTTP := httpclient.NewClient(
			httpclient.WithTimeout(sinkTimeout),
			httpclient.WithRetryMax(0),
			httpclient.WithPassthroughErrors(),
		)
		c.forwarder = notify.NewForwarder(sinkHTTP.StandardClient(), notify.WithSinkURL(cfg.SinkURL))
		opts = append(opts, txwatch.WithForwarder(c.forwarder))
	}

	if cfg.RedisAddr != "" {
		guard, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}

		c.closers = append(c.closers, guard.Close)
		opts = append(opts,
			txwatch.WithIdempotencyGuard(guard, cfg.DedupTTL),
			txwatch.WithClaimTTL(cfg.ClaimTTL),
		)
	}

	c.matcher = txwatch.New(book, resolver, sender, opts...)
	c.poller = chainpoll.New(c.chain, c.matcher,
		chainpoll.WithPollInterval(cfg.PollInterval),
		chainpoll.WithStartBlock(cfg.StartBlock),
		chainpoll.WithRetry(c.retry),
	)

	logger.Info(ctx, "watcher configured",
		"addresses", book.Len(),
		"swapOnly", cfg.SwapOnly,
		"allowAggregated", cfg.AllowAggregated,
		"delivery", cfg.SendTelegramMessages,
		"forward", cfg.ForwardEnabled,
		"dedup", cfg.RedisAddr != "",
	)

	return c, nil
}

// runForwarder starts the forward worker in g, if forwarding is enabled.
func (c *components) runForwarder(ctx context.Context, g *errgroup.Group) {
	if c.forwarder == nil {
		return
	}

	g.Go(func() error {
		return c.forwarder.Run(ctx)
	})
}

func (c *components) closeForwarder() {
	if c.forwarder != nil {
		c.forwarder.Close()
	}
}

func (a *app) Watch(ctx context.Context) error {
	c, err := a.build(ctx)
	if err != nil {
		return err
	}
	defer c.close(ctx)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer c.closeForwarder()
		return c.poller.Run(gctx)
	})

	c.runForwarder(gctx, g)

	if a.cfg.MetricsAddr != "" {
		g.Go(func() error {
			logger.Info(gctx, "metrics server listening", "addr", a.cfg.MetricsAddr)
			return metrics.Serve(gctx, a.cfg.MetricsAddr)
		})
	}

	return g.Wait()
}

func (a *app) TestTransaction(ctx context.Context, txHash string) error {
	c, err := a.build(ctx)
	if err != nil {
		return err
	}
	defer c.close(ctx)

	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), drainTimeout)
	defer cancel()

	var g errgroup.Group
	c.runForwarder(drainCtx, &g)

	handleErr := a.handleOne(ctx, c, txHash)

	c.closeForwarder()
	return errors.Join(handleErr, g.Wait())
}

func (a *app) handleOne(ctx context.Context, c *components, txHash string) error {
	tx, err := retry.Value(ctx, c.retry, func() (txwatch.Transaction, error) {
		tx, err := c.chain.TransactionByHash(ctx, txHash)
		if errors.Is(err, ethereum.ErrTransactionNotFound) {
			return tx, retry.Unrecoverable(err)
		}
		return tx, err
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "handling test transaction", "txHash", tx.Hash, "from", tx.From, "to", tx.To, "block", tx.BlockNumber)

	return c.matcher.HandleTransaction(ctx, tx)
}
