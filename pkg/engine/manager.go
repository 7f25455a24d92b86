package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pathhunter/pathhunter/pkg/duration"
	"github.com/pathhunter/pathhunter/pkg/report"
)

// Hooks receive scan lifecycle events. All callbacks are optional and must
// be fast: OnProbe and OnResult run on worker goroutines.
type Hooks struct {
	// OnStart fires once the URL space is known, before probing begins.
	OnStart func(jobID string, total int)

	// OnProbe fires after every completed probe, including failures.
	OnProbe func()

	// OnResult fires for every recorded finding.
	OnResult func(r Result)

	// OnFinish fires when the scan winds down, normally or cancelled.
	OnFinish func(jobID string, snap Snapshot)
}

// merge layers b over a, fanning events out to both.
func (a Hooks) merge(b Hooks) Hooks {
	out := a
	switch {
	case b.OnStart == nil:
	case out.OnStart == nil:
		out.OnStart = b.OnStart
	default:
		prev := out.OnStart
		out.OnStart = func(id string, total int) { prev(id, total); b.OnStart(id, total) }
	}
	switch {
	case b.OnProbe == nil:
	case out.OnProbe == nil:
		out.OnProbe = b.OnProbe
	default:
		prev := out.OnProbe
		out.OnProbe = func() { prev(); b.OnProbe() }
	}
	switch {
	case b.OnResult == nil:
	case out.OnResult == nil:
		out.OnResult = b.OnResult
	default:
		prev := out.OnResult
		out.OnResult = func(r Result) { prev(r); b.OnResult(r) }
	}
	switch {
	case b.OnFinish == nil:
	case out.OnFinish == nil:
		out.OnFinish = b.OnFinish
	default:
		prev := out.OnFinish
		out.OnFinish = func(id string, snap Snapshot) { prev(id, snap); b.OnFinish(id, snap) }
	}
	return out
}

// Manager owns the process-wide "current scan" state polled by the control
// surface. A running job can only be superseded after an explicit stop plus
// a short grace period; two active jobs never share counters.
type Manager struct {
	mu      sync.Mutex
	current *scan
	hooks   Hooks
}

// Option configures a Manager.
type Option func(*Manager)

// WithHooks attaches lifecycle hooks to every job the manager starts.
// Multiple WithHooks options fan out in registration order.
func WithHooks(h Hooks) Option {
	return func(m *Manager) { m.hooks = m.hooks.merge(h) }
}

// NewManager creates a Manager with no scan installed.
func NewManager(opts ...Option) *Manager {
	m := &Manager{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start validates the job and launches it in the background. If a scan is
// already running it is stopped first and given the standard grace period
// to wind down before the new job's state replaces it (best-effort, not a
// guaranteed join).
func (m *Manager) Start(job Job) error {
	job = job.normalized()
	if err := job.validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil && m.current.state.running.Load() {
		m.current.state.requestStop()
		select {
		case <-m.current.done:
		case <-time.After(duration.StopGrace):
		}
	}

	s := newScan(uuid.NewString(), job, m.hooks)
	m.current = s
	go s.run()
	return nil
}

// Status reports the current progress snapshot, a bounded recent-results
// window, and whether a scan is running. Valid at any time, including
// before the first job.
func (m *Manager) Status() Status {
	m.mu.Lock()
	s := m.current
	m.mu.Unlock()

	if s == nil {
		return Status{}
	}
	return Status{
		JobID:       s.id,
		Running:     s.state.running.Load(),
		Progress:    s.state.snapshot(),
		ResultCount: s.state.resultCount(),
		Recent:      s.state.recent(),
	}
}

// Stop requests cooperative cancellation of the current scan and reports
// whether one was actually running. The engine observes the flag within one
// polling interval; in-flight requests finish naturally.
func (m *Manager) Stop() bool {
	m.mu.Lock()
	s := m.current
	m.mu.Unlock()

	if s == nil || !s.state.running.Load() {
		return false
	}
	s.state.requestStop()
	return true
}

// Results returns the complete result list accumulated so far. Valid
// mid-scan and post-scan.
func (m *Manager) Results() []Result {
	m.mu.Lock()
	s := m.current
	m.mu.Unlock()

	if s == nil {
		return nil
	}
	return s.state.resultsCopy()
}

// Done returns a channel closed when the current scan finishes. With no
// scan installed it returns an already-closed channel.
func (m *Manager) Done() <-chan struct{} {
	m.mu.Lock()
	s := m.current
	m.mu.Unlock()

	if s == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return s.done
}

// WriteReport materializes the current result set to path via the report
// writer. Returns ErrNoResults when nothing has been recorded yet.
func (m *Manager) WriteReport(path string) error {
	m.mu.Lock()
	s := m.current
	m.mu.Unlock()

	if s == nil {
		return ErrNoResults
	}
	results := s.state.resultsCopy()
	if len(results) == 0 {
		return ErrNoResults
	}

	entries := make([]report.Entry, len(results))
	for i, r := range results {
		entries[i] = report.Entry{
			URL:       r.URL,
			Status:    r.Status,
			Size:      r.Size,
			Redirect:  r.Redirect,
			Timestamp: r.Timestamp,
		}
	}
	meta := report.Meta{
		Target:      s.job.Target,
		Date:        time.Now(),
		TotalTested: s.state.snapshot().Total,
		Found:       len(entries),
	}
	if err := report.WriteFile(path, meta, entries); err != nil {
		return fmt.Errorf("engine: writing report: %w", err)
	}
	return nil
}

