// Package metrics holds the Prometheus collectors exported by txalert and the
// HTTP server that exposes them.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// BlocksProcessed counts blocks whose transactions were fully handled.
	BlocksProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "txalert_blocks_processed_total",
			Help: "Total number of blocks processed",
		},
	)

	// ChainHeadBlock tracks the most recent chain head seen by the poller.
	ChainHeadBlock = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "txalert_chain_head_block",
			Help: "Latest block height reported by the chain node",
		},
	)

	// LastProcessedBlock tracks the poller checkpoint.
	LastProcessedBlock = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "txalert_last_processed_block",
			Help: "Last block height fully processed by the poller",
		},
	)

	// TransactionsMatched counts transactions touching a monitored address.
	TransactionsMatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "txalert_transactions_matched_total",
			Help: "Total number of transactions matching a monitored address",
		},
		[]string{"direction"},
	)

	// Notifications counts notification outcomes (sent, dry_run, failed, filtered, duplicate).
	Notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "txalert_notifications_total",
			Help: "Total number of notifications by outcome",
		},
		[]string{"direction", "result"},
	)

	// ExplorerLookups counts action-text lookups (found, not_found, failed).
	ExplorerLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "txalert_explorer_lookups_total",
			Help: "Total number of explorer action lookups by outcome",
		},
		[]string{"result"},
	)

	// Forwards counts downstream sink deliveries (sent, failed, dropped).
	Forwards = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "txalert_forwards_total",
			Help: "Total number of downstream forwards by outcome",
		},
		[]string{"result"},
	)
)

// Handler returns the HTTP handler serving /metrics and /healthz.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return mux
}

// Serve exposes Handler on addr until ctx is done, then shuts the server down.
func Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}

		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	}
}
