// Package explorer derives a short, human readable action description for a
// transaction by scraping the block explorer's transaction page.
//
// The page layout is not a stable contract, so extraction is best effort:
// Resolve never fails and falls back to NoActionInfo when the page cannot be
// fetched or parsed.
package explorer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabapcia/txalert/internal/pkg/logger"
	"github.com/gabapcia/txalert/internal/pkg/metrics"
	"github.com/gabapcia/txalert/internal/pkg/resilience/retry"
	"github.com/gabapcia/txalert/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	// DefaultBaseURL is the explorer used when none is configured.
	DefaultBaseURL = "https://etherscan.io"

	// UserAgent is sent with every page request; the explorer rejects default clients.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3"

	// maxPageSize bounds how much of a page is read.
	maxPageSize = 8 << 20
)

// ErrUnexpectedStatus is returned by the page fetch for any non-200 response.
var ErrUnexpectedStatus = errors.New("unexpected explorer status")

// Resolver turns a transaction hash into an ActionResult.
type Resolver interface {
	// Resolve returns the action of the transaction, or NoActionInfo when it
	// cannot be determined. It never fails.
	Resolve(ctx context.Context, txHash string) ActionResult
}

type config struct {
	baseURL string
	dumpDir string
}

// Option configures the resolver.
type Option func(*config)

// WithBaseURL sets the explorer root, e.g. "https://etherscan.io".
func WithBaseURL(u string) Option {
	return func(c *config) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithDumpDir writes every fetched page to dir/<hash>.html for diagnostics.
func WithDumpDir(dir string) Option {
	return func(c *config) {
		c.dumpDir = dir
	}
}

type resolver struct {
	httpClient *http.Client
	retry      retry.Retry
	cfg        config
}

var _ Resolver = (*resolver)(nil)

// NewResolver builds a Resolver fetching pages with httpClient. Each page fetch
// is wrapped by r.
func NewResolver(httpClient *http.Client, r retry.Retry, opts ...Option) *resolver {
	cfg := config{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &resolver{
		httpClient: httpClient,
		retry:      r,
		cfg:        cfg,
	}
}

func (r *resolver) fetchPage(ctx context.Context, txHash string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.baseURL+"/tx/"+txHash, nil)
	if err != nil {
		return "", retry.Unrecoverable(err)
	}

	req.Header.Set("User-Agent", UserAgent)

	res, err := r.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, res.Body)
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxPageSize))
	if err != nil {
		return "", err
	}

	return string(body), nil
}

func (r *resolver) dump(ctx context.Context, txHash, page string) {
	if r.cfg.dumpDir == "" {
		return
	}

	path := filepath.Join(r.cfg.dumpDir, filepath.Base(txHash)+".html")
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		logger.Warn(ctx, "could not dump explorer page", "txHash", txHash, "path", path, "error", err)
	}
}

func (r *resolver) Resolve(ctx context.Context, txHash string) ActionResult {
	ctx, span := telemetry.Tracer("explorer").Start(ctx, "explorer.Resolve")
	defer span.End()

	span.SetAttributes(attribute.String("tx.hash", txHash))

	page, err := retry.Value(ctx, r.retry, func() (string, error) {
		return r.fetchPage(ctx, txHash)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		metrics.ExplorerLookups.WithLabelValues("failed").Inc()

		logger.Error(ctx, "failed to fetch explorer page", "txHash", txHash, "error", err)
		return NoActionInfo()
	}

	logger.Info(ctx, "fetched explorer page", "txHash", txHash, "bytes", len(page))
	r.dump(ctx, txHash, page)

	result, ok := ExtractAction(page, r.cfg.baseURL)
	if !ok {
		metrics.ExplorerLookups.WithLabelValues("not_found").Inc()

		logger.Info(ctx, "no transaction action on explorer page", "txHash", txHash)
		return NoActionInfo()
	}

	metrics.ExplorerLookups.WithLabelValues("found").Inc()
	logger.Info(ctx, "extracted transaction action", "txHash", txHash, "action", result.Plain)

	return result
}
