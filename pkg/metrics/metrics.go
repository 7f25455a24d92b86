// Package metrics exposes live scan counters for Prometheus scraping.
// It starts an HTTP server that serves metrics at the configured path:
// counters for probes/findings/scans, gauges for the current job's progress.
package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pathhunter/pathhunter/pkg/duration"
	"github.com/pathhunter/pathhunter/pkg/engine"
)

// Options configures the metrics collector and its exposition server.
type Options struct {
	// Port for the metrics server (default: 9090).
	Port int

	// Path for the metrics endpoint (default: "/metrics").
	Path string
}

// Collector registers scan metrics and serves them over HTTP.
type Collector struct {
	server   *http.Server
	registry *prometheus.Registry

	probesTotal   prometheus.Counter
	findingsTotal prometheus.Counter
	scansTotal    prometheus.Counter

	scanned prometheus.Gauge
	total   prometheus.Gauge

	mu     sync.Mutex
	closed bool
}

// NewCollector creates a Collector and starts its exposition server.
func NewCollector(opts Options) (*Collector, error) {
	if opts.Port == 0 {
		opts.Port = 9090
	}
	if opts.Path == "" {
		opts.Path = "/metrics"
	}

	// Custom registry: don't pollute the default with scanner metrics.
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		probesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pathhunter_probes_total",
			Help: "Total number of URL probes completed, including transport failures",
		}),
		findingsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pathhunter_findings_total",
			Help: "Total number of results recorded after false-positive filtering",
		}),
		scansTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pathhunter_scans_total",
			Help: "Total number of scan jobs started",
		}),
		scanned: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pathhunter_scan_scanned",
			Help: "Probes completed by the current scan job",
		}),
		total: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pathhunter_scan_total",
			Help: "URL space size of the current scan job",
		}),
	}

	for _, m := range []prometheus.Collector{
		c.probesTotal, c.findingsTotal, c.scansTotal, c.scanned, c.total,
	} {
		if err := registry.Register(m); err != nil {
			return nil, fmt.Errorf("metrics: registering collector: %w", err)
		}
	}

	mux := http.NewServeMux()
	mux.Handle(opts.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	c.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", opts.Port),
		Handler:      mux,
		ReadTimeout:  duration.MetricsReadTimeout,
		WriteTimeout: duration.MetricsWriteTimeout,
	}

	go func() {
		if err := c.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Warn("metrics: exposition server stopped",
				slog.String("error", err.Error()))
		}
	}()

	return c, nil
}

// Hooks returns engine hooks that feed these metrics.
func (c *Collector) Hooks() engine.Hooks {
	return engine.Hooks{
		OnStart: func(_ string, total int) {
			c.scansTotal.Inc()
			c.scanned.Set(0)
			c.total.Set(float64(total))
		},
		OnProbe: func() {
			c.probesTotal.Inc()
			c.scanned.Inc()
		},
		OnResult: func(_ engine.Result) {
			c.findingsTotal.Inc()
		},
	}
}

// Registry exposes the underlying registry for tests and embedding.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Close shuts down the exposition server gracefully.
func (c *Collector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true

	ctx, cancel := context.WithTimeout(context.Background(), duration.MetricsShutdown)
	defer cancel()
	return c.server.Shutdown(ctx)
}
