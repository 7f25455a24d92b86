package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/pathhunter/pathhunter/pkg/duration"
	"github.com/pathhunter/pathhunter/pkg/falsepositive"
	"github.com/pathhunter/pathhunter/pkg/probe"
	"github.com/pathhunter/pathhunter/pkg/urlspace"
	"github.com/pathhunter/pathhunter/pkg/wordlist"
)

// sentinel is the queue entry that tells a worker to terminate. Real probe
// URLs are never empty, so the empty string is unambiguous.
const sentinel = ""

// scan executes one job: load wordlists, expand the URL space, fan out over
// a fixed worker pool, record filtered results.
type scan struct {
	id     string
	job    Job
	state  *state
	prober *probe.Prober
	filter falsepositive.Filter

	limiter *rate.Limiter
	hooks   Hooks

	queue chan string
	done  chan struct{}
}

func newScan(id string, job Job, hooks Hooks) *scan {
	s := &scan{
		id:     id,
		job:    job,
		state:  newState(),
		prober: probe.New(probe.Config{Timeout: job.Timeout}),
		hooks:  hooks,
		done:   make(chan struct{}),
	}
	if job.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(job.RateLimit), job.RateLimit)
	}
	return s
}

// run drives the scan to completion. It owns the feeder and worker
// goroutines and closes done when the scan has wound down.
func (s *scan) run() {
	defer close(s.done)
	defer s.state.running.Store(false)

	paths := wordlist.Load(s.job.Wordlists)
	urls := urlspace.NewGenerator(s.job.Target, s.job.Extensions).Expand(paths)
	s.state.setTotal(len(urls))

	slog.Info("scan starting",
		slog.String("job_id", s.id),
		slog.String("target", s.job.Target),
		slog.Int("paths", len(paths)),
		slog.Int("urls", len(urls)),
		slog.Int("workers", s.job.Concurrency))

	if s.hooks.OnStart != nil {
		s.hooks.OnStart(s.id, len(urls))
	}

	// Sized so the whole URL space plus one sentinel per worker always
	// fits: the feeder never blocks, and sentinels can be pushed
	// immediately on cancellation without risking a deadlock against
	// workers that already exited on the stop flag.
	s.queue = make(chan string, len(urls)+s.job.Concurrency)

	var wg sync.WaitGroup
	for i := 0; i < s.job.Concurrency; i++ {
		wg.Add(1)
		go s.worker(&wg)
	}

	s.feed(urls)
	s.await(&wg)

	snap := s.state.snapshot()
	slog.Info("scan finished",
		slog.String("job_id", s.id),
		slog.Int64("scanned", snap.Scanned),
		slog.Int64("total", snap.Total),
		slog.Int("results", s.state.resultCount()),
		slog.Bool("cancelled", s.state.stopRequested()))

	if s.hooks.OnFinish != nil {
		s.hooks.OnFinish(s.id, snap)
	}
}

// feed enqueues the URL space, then one sentinel per worker. Enqueuing halts
// as soon as a stop is requested; the abandoned remainder is never attempted.
func (s *scan) feed(urls []string) {
	for _, u := range urls {
		if s.state.stopRequested() {
			break
		}
		s.queue <- u
	}
	for i := 0; i < s.job.Concurrency; i++ {
		s.queue <- sentinel
	}
}

// worker drains the queue until it consumes a sentinel or observes the stop
// flag. The fetch polls rather than blocking unboundedly, so cancellation
// latency is capped by the poll interval even on an empty queue.
func (s *scan) worker(wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		if s.state.stopRequested() {
			return
		}
		select {
		case u := <-s.queue:
			if u == sentinel {
				return
			}
			s.probeOne(u)
		case <-time.After(duration.QueuePoll):
		}
	}
}

// probeOne issues one probe and records the outcome. Transport failures are
// absorbed: counted as scanned, no result, no retry.
func (s *scan) probeOne(rawURL string) {
	if s.limiter != nil {
		if err := s.limiter.Wait(context.Background()); err != nil {
			return
		}
	}

	out, err := s.prober.Do(context.Background(), rawURL)
	s.state.markScanned()
	if s.hooks.OnProbe != nil {
		s.hooks.OnProbe()
	}
	if err != nil {
		slog.Debug("probe failed",
			slog.String("url", rawURL),
			slog.String("error", err.Error()))
		return
	}

	if !s.filter.Keep(rawURL, falsepositive.Outcome{
		StatusCode: out.StatusCode,
		RedirectTo: out.RedirectTo,
	}) {
		return
	}

	r := Result{
		URL:       rawURL,
		Status:    out.StatusCode,
		Size:      out.Size,
		Redirect:  out.RedirectTo,
		Timestamp: time.Now(),
	}
	s.state.appendResult(r)
	if s.hooks.OnResult != nil {
		s.hooks.OnResult(r)
	}
}

// await blocks until every worker exits. After a stop request, workers are
// given a bounded grace period instead of an indefinite join; in-flight
// requests finish naturally and stragglers are abandoned.
func (s *scan) await(wg *sync.WaitGroup) {
	joined := make(chan struct{})
	go func() {
		wg.Wait()
		close(joined)
	}()

	for {
		select {
		case <-joined:
			return
		case <-time.After(duration.QueuePoll):
			if !s.state.stopRequested() {
				continue
			}
			select {
			case <-joined:
			case <-time.After(duration.StopGrace):
				slog.Warn("grace period expired, abandoning workers",
					slog.String("job_id", s.id))
			}
			return
		}
	}
}
