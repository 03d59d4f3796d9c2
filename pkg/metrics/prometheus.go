package metrics

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsCollector struct {
	registry          *prometheus.Registry
	depositorsCreated prometheus.Counter
	depositsApplied   prometheus.Counter
	depositFailures   *prometheus.CounterVec
	totalDeposits     prometheus.Gauge
	mu                sync.RWMutex
	logger            *slog.Logger
}

func NewMetricsCollector(logger *slog.Logger) *MetricsCollector {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()

	collector := &MetricsCollector{
		registry: registry,
		depositorsCreated: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "depositors_created_total",
			Help: "Total number of depositors registered",
		}),
		depositsApplied: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "deposits_applied_total",
			Help: "Total number of successfully credited deposits",
		}),
		depositFailures: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "deposit_failures_total",
			Help: "Total number of rejected deposits",
		}, []string{"reason"}),
		totalDeposits: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "ledger_total_deposits",
			Help: "Sum of computed deposits across all depositors",
		}),
		logger: logger,
	}

	return collector
}

func (m *MetricsCollector) RecordDepositorCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.depositorsCreated.Inc()
}

func (m *MetricsCollector) RecordDeposit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.depositsApplied.Inc()
}

func (m *MetricsCollector) RecordDepositFailure(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.depositFailures.WithLabelValues(reason).Inc()
}

func (m *MetricsCollector) SetTotalDeposits(total float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalDeposits.Set(total)
}

func (m *MetricsCollector) GetHandler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *MetricsCollector) StartMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.GetHandler())

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		m.logger.Info("Starting metrics server", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			m.logger.Error("Metrics server failed", slog.String("error", err.Error()))
		}
	}()

	return server
}

func (m *MetricsCollector) Shutdown(ctx context.Context) error {
	m.logger.Info("Metrics collector shutdown complete")
	return nil
}
