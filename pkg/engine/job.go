package engine

import (
	"strings"
	"time"

	"github.com/pathhunter/pathhunter/pkg/defaults"
	"github.com/pathhunter/pathhunter/pkg/duration"
	"github.com/pathhunter/pathhunter/pkg/urlspace"
)

// Job describes one scan invocation. A Job is immutable once started; the
// engine copies it and never reads the caller's value again.
type Job struct {
	// Target is the base URL. Trailing slashes are stripped during
	// normalization.
	Target string

	// Wordlists are the path-list sources, in order. At least one is
	// required; unreadable sources are skipped at load time.
	Wordlists []string

	// Concurrency is the fixed worker count (default 10).
	Concurrency int

	// Timeout is the per-request timeout (default 5s).
	Timeout time.Duration

	// Extensions are the suffixes probed per path. Empty means bare
	// paths only.
	Extensions []string

	// RateLimit caps requests per second with a fixed token bucket.
	// Zero disables the limiter.
	RateLimit int
}

// normalized returns a copy with defaults applied and the target trimmed.
func (j Job) normalized() Job {
	j.Target = strings.TrimRight(strings.TrimSpace(j.Target), "/")
	if j.Concurrency <= 0 {
		j.Concurrency = defaults.ConcurrencyMedium
	}
	if j.Timeout <= 0 {
		j.Timeout = duration.HTTPProbing
	}
	if len(j.Extensions) == 0 {
		j.Extensions = []string{urlspace.NoExtension}
	}
	return j
}

// validate rejects jobs that cannot produce a well-defined scan.
func (j Job) validate() error {
	if j.Target == "" {
		return ErrMissingTarget
	}
	if len(j.Wordlists) == 0 {
		return ErrNoWordlists
	}
	return nil
}
