// Package duration provides canonical time constants for the entire codebase.
// This is the single source of truth for time-based configuration.
//
// Usage:
//
//	client := httpclient.New(httpclient.WithTimeout(duration.HTTPProbing))
//	case <-time.After(duration.QueuePoll):
//
// DO NOT use hardcoded time.Duration values like `5 * time.Second` anywhere.
// Instead, reference the appropriate constant from this package.
package duration

import "time"

// ============================================================================
// HTTP CLIENT TIMEOUTS
// ============================================================================

const (
	// HTTPProbing is the per-request timeout for path probing (5s) - the default
	HTTPProbing = 5 * time.Second

	// HTTPScanning is for slower targets where 5s clips real responses (15s)
	HTTPScanning = 15 * time.Second

	// DialTimeout bounds connection establishment (10s)
	DialTimeout = 10 * time.Second

	// TLSHandshakeTimeout bounds the TLS handshake (10s)
	TLSHandshakeTimeout = 10 * time.Second

	// IdleConnTimeout is how long idle pooled connections are kept (90s)
	IdleConnTimeout = 90 * time.Second
)

// ============================================================================
// WORKER POOL INTERVALS
// ============================================================================
//
// QueuePoll bounds worst-case cancellation latency: workers never block on
// the queue longer than this before re-checking the stop flag.
// ============================================================================

const (
	// QueuePoll is the queue-fetch polling interval (100ms)
	QueuePoll = 100 * time.Millisecond

	// StopGrace is how long a superseded or cancelled scan is given to
	// wind down before its workers are abandoned (2s)
	StopGrace = 2 * time.Second
)

// ============================================================================
// UI/STREAMING INTERVALS
// ============================================================================

const (
	// ProgressTick is the live progress redraw interval (500ms)
	ProgressTick = 500 * time.Millisecond

	// StreamStd is for normal periodic status logging (3s)
	StreamStd = 3 * time.Second
)

// ============================================================================
// METRICS SERVER TIMEOUTS
// ============================================================================

const (
	// MetricsReadTimeout bounds reads on the exposition server (5s)
	MetricsReadTimeout = 5 * time.Second

	// MetricsWriteTimeout bounds writes on the exposition server (10s)
	MetricsWriteTimeout = 10 * time.Second

	// MetricsShutdown bounds graceful shutdown of the exposition server (5s)
	MetricsShutdown = 5 * time.Second
)
