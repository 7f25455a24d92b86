// Package httpclient provides a shared, optimized HTTP client factory.
// It enables connection pooling and reuse across the probing pipeline,
// which matters when a scan hammers one host with thousands of requests.
package httpclient

import (
	"crypto/tls"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/pathhunter/pathhunter/pkg/duration"
)

// Config holds HTTP client configuration options.
type Config struct {
	// Timeout is the total per-request timeout (default: 5s)
	Timeout time.Duration

	// InsecureSkipVerify skips TLS certificate verification
	// (default: true - the tool targets hosts where cert trust is not
	// the concern)
	InsecureSkipVerify bool

	// Proxy is the HTTP/HTTPS proxy URL (optional)
	Proxy string

	// MaxIdleConns is the maximum number of idle connections across all hosts (default: 100)
	MaxIdleConns int

	// MaxConnsPerHost is the maximum connections per host (default: 25)
	MaxConnsPerHost int

	// IdleConnTimeout is how long idle connections stay in pool (default: 90s)
	IdleConnTimeout time.Duration

	// DialTimeout is the timeout for establishing connections (default: 10s)
	DialTimeout time.Duration

	// TLSHandshakeTimeout is the timeout for TLS handshake (default: 10s)
	TLSHandshakeTimeout time.Duration
}

// DefaultConfig returns defaults tuned for brute-force probing of a single
// host: pooled connections, short timeout, no certificate verification.
func DefaultConfig() Config {
	return Config{
		Timeout:             duration.HTTPProbing,
		InsecureSkipVerify:  true,
		MaxIdleConns:        100,
		MaxConnsPerHost:     25,
		IdleConnTimeout:     duration.IdleConnTimeout,
		DialTimeout:         duration.DialTimeout,
		TLSHandshakeTimeout: duration.TLSHandshakeTimeout,
	}
}

var (
	defaultClient *http.Client
	defaultOnce   sync.Once
)

// Default returns a shared, pre-configured HTTP client.
// This client is safe for concurrent use and employs connection pooling.
//
// The default client:
//   - Uses connection pooling (100 idle, 25 per host)
//   - Has the standard 5s probing timeout
//   - Skips TLS verification
//   - Does NOT follow redirects (returns http.ErrUseLastResponse)
func Default() *http.Client {
	defaultOnce.Do(func() {
		defaultClient = New(DefaultConfig())
	})
	return defaultClient
}

// New creates a new HTTP client with the given configuration.
// Use this when you need a client with non-default settings.
func New(cfg Config) *http.Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = duration.HTTPProbing
	}
	if cfg.MaxIdleConns == 0 {
		cfg.MaxIdleConns = 100
	}
	if cfg.MaxConnsPerHost == 0 {
		cfg.MaxConnsPerHost = 25
	}
	if cfg.IdleConnTimeout == 0 {
		cfg.IdleConnTimeout = duration.IdleConnTimeout
	}
	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = duration.DialTimeout
	}
	if cfg.TLSHandshakeTimeout == 0 {
		cfg.TLSHandshakeTimeout = duration.TLSHandshakeTimeout
	}

	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxConnsPerHost,
		MaxConnsPerHost:     cfg.MaxConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout,

		ForceAttemptHTTP2:     true,
		ExpectContinueTimeout: 1 * time.Second,
		TLSHandshakeTimeout:   cfg.TLSHandshakeTimeout,

		DialContext: dialer.DialContext,

		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: cfg.InsecureSkipVerify,
		},
	}

	if cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)
		if err == nil && proxyURL != nil {
			transport.Proxy = http.ProxyURL(proxyURL)
		}
		// Silently ignore malformed proxy URLs - continue without proxy
	}

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			// Don't follow redirects - the classifier needs to see the
			// redirect response itself
			return http.ErrUseLastResponse
		},
	}
}

// WithTimeout returns a new Config based on DefaultConfig with the specified
// timeout. Convenience function for the common case of only needing the
// per-request timeout.
func WithTimeout(timeout time.Duration) Config {
	cfg := DefaultConfig()
	cfg.Timeout = timeout
	return cfg
}

// WithProxy returns a new Config based on DefaultConfig with the specified proxy.
func WithProxy(proxyURL string) Config {
	cfg := DefaultConfig()
	cfg.Proxy = proxyURL
	return cfg
}
