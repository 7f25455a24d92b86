package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/pathhunter/pathhunter/pkg/defaults"
)

// Result is one recorded finding. Results are immutable after insertion and
// kept in arrival order across workers.
type Result struct {
	URL       string    `json:"url"`
	Status    int       `json:"status"`
	Size      int64     `json:"size"`
	Redirect  string    `json:"redirect,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Snapshot is a point-in-time view of scan progress. Reading one costs two
// atomic loads and a clock read; it never serializes the workers.
type Snapshot struct {
	Scanned int64         `json:"scanned"`
	Total   int64         `json:"total"`
	Elapsed time.Duration `json:"elapsed"`
	Rate    float64       `json:"rate"`
}

// Status is the external pollers' view of the current scan.
type Status struct {
	JobID       string   `json:"job_id,omitempty"`
	Running     bool     `json:"running"`
	Progress    Snapshot `json:"progress"`
	ResultCount int      `json:"result_count"`
	Recent      []Result `json:"recent,omitempty"`
}

// state is the mutable scan state shared across workers. A fresh state is
// created per job; counters and results are never carried over.
type state struct {
	total   atomic.Int64
	scanned atomic.Int64
	running atomic.Bool
	stop    atomic.Bool

	start time.Time

	mu      sync.Mutex
	results []Result
}

func newState() *state {
	s := &state{start: time.Now()}
	s.running.Store(true)
	return s
}

func (s *state) setTotal(n int) {
	s.total.Store(int64(n))
}

// markScanned counts one completed probe, successful or not.
func (s *state) markScanned() {
	s.scanned.Add(1)
}

func (s *state) requestStop() {
	s.stop.Store(true)
}

func (s *state) stopRequested() bool {
	return s.stop.Load()
}

// appendResult records a finding. The lock is held only for the append,
// never across a network call.
func (s *state) appendResult(r Result) {
	s.mu.Lock()
	s.results = append(s.results, r)
	s.mu.Unlock()
}

func (s *state) resultCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results)
}

// resultsCopy returns the full result list accumulated so far.
func (s *state) resultsCopy() []Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Result, len(s.results))
	copy(out, s.results)
	return out
}

// recent returns up to defaults.RecentResultsWindow trailing results.
func (s *state) recent() []Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.results)
	w := defaults.RecentResultsWindow
	if n < w {
		w = n
	}
	out := make([]Result, w)
	copy(out, s.results[n-w:])
	return out
}

func (s *state) snapshot() Snapshot {
	snap := Snapshot{
		Scanned: s.scanned.Load(),
		Total:   s.total.Load(),
		Elapsed: time.Since(s.start),
	}
	if secs := snap.Elapsed.Seconds(); secs > 0 {
		snap.Rate = float64(snap.Scanned) / secs
	}
	return snap
}
