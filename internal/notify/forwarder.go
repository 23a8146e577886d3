package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/gabapcia/txalert/internal/pkg/logger"
	"github.com/gabapcia/txalert/internal/pkg/metrics"
	"github.com/gabapcia/txalert/internal/pkg/x/chflow"
)

// DefaultSinkURL is the downstream endpoint used when none is configured.
const DefaultSinkURL = "http://localhost:5000/transaction"

// defaultQueueSize bounds how many forwards may wait for the worker.
const defaultQueueSize = 256

// ErrSinkRejected is logged when the sink answers with a non-2xx status.
var ErrSinkRejected = errors.New("sink rejected forward")

// Forwarder posts ForwardedDetails to the sink from a single background worker.
//
// Forward never blocks the caller: when the queue is full the payload is
// dropped and logged. Delivery failures are logged and never retried.
type Forwarder struct {
	httpClient *http.Client
	sinkURL    string
	queue      chan ForwardedDetails

	mu     sync.RWMutex
	closed bool
}

type forwarderConfig struct {
	sinkURL   string
	queueSize int
}

// ForwarderOption configures a Forwarder.
type ForwarderOption func(*forwarderConfig)

// WithSinkURL sets the endpoint receiving the JSON payloads.
func WithSinkURL(u string) ForwarderOption {
	return func(c *forwarderConfig) {
		if u != "" {
			c.sinkURL = u
		}
	}
}

// WithQueueSize sets the capacity of the pending forwards queue.
func WithQueueSize(n int) ForwarderOption {
	return func(c *forwarderConfig) {
		if n > 0 {
			c.queueSize = n
		}
	}
}

// NewForwarder builds a Forwarder. Run must be started for payloads to be delivered.
func NewForwarder(httpClient *http.Client, opts ...ForwarderOption) *Forwarder {
	cfg := forwarderConfig{
		sinkURL:   DefaultSinkURL,
		queueSize: defaultQueueSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Forwarder{
		httpClient: httpClient,
		sinkURL:    cfg.sinkURL,
		queue:      make(chan ForwardedDetails, cfg.queueSize),
	}
}

// Forward queues details for delivery. It returns false when the payload was
// dropped because the queue is full or the forwarder is closed.
func (f *Forwarder) Forward(ctx context.Context, details ForwardedDetails) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.closed || !chflow.TrySend(f.queue, details) {
		metrics.Forwards.WithLabelValues("dropped").Inc()
		logger.Warn(ctx, "forward dropped", "txHash", details.TxHash, "closed", f.closed)
		return false
	}

	return true
}

// Close stops accepting payloads. Run delivers what is already queued and returns.
func (f *Forwarder) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}

	f.closed = true
	close(f.queue)
}

// Run delivers queued payloads until Close is called and the queue is drained,
// or until ctx is done.
func (f *Forwarder) Run(ctx context.Context) error {
	for {
		details, ok := chflow.Receive(ctx, f.queue)
		if !ok {
			return nil
		}

		if err := f.post(ctx, details); err != nil {
			metrics.Forwards.WithLabelValues("failed").Inc()
			logger.Error(ctx, "failed to forward transaction", "txHash", details.TxHash, "sink", f.sinkURL, "error", err)
			continue
		}

		metrics.Forwards.WithLabelValues("sent").Inc()
		logger.Info(ctx, "transaction forwarded", "txHash", details.TxHash, "sink", f.sinkURL)
	}
}

func (f *Forwarder) post(ctx context.Context, details ForwardedDetails) error {
	body, err := json.Marshal(details)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.sinkURL, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := f.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	_, _ = io.Copy(io.Discard, res.Body)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("%w: %d", ErrSinkRejected, res.StatusCode)
	}

	return nil
}
