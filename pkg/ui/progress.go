package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/pathhunter/pathhunter/pkg/duration"
)

// SnapshotFunc supplies the current progress counters. It is called once
// per redraw tick and must be cheap and safe for concurrent use.
type SnapshotFunc func() (scanned, total int64, rate float64)

// Progress renders a single live-updating progress line, redrawn in place
// with a carriage return.
type Progress struct {
	fn  SnapshotFunc
	out io.Writer

	mu      sync.Mutex
	done    chan struct{}
	running bool
}

// NewProgress creates a progress display fed by fn, writing to stderr.
func NewProgress(fn SnapshotFunc) *Progress {
	return &Progress{fn: fn, out: os.Stderr}
}

// Start begins the redraw loop. No-op when silent, colorless piping, or a
// non-terminal stderr make a live line useless.
func (p *Progress) Start() {
	if IsSilent() || !StderrTerminal() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return
	}
	p.running = true
	p.done = make(chan struct{})

	go p.loop(p.done)
}

// Stop halts the redraw loop and terminates the progress line.
func (p *Progress) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		return
	}
	p.running = false
	close(p.done)
	fmt.Fprintln(p.out)
}

func (p *Progress) loop(done <-chan struct{}) {
	ticker := time.NewTicker(duration.ProgressTick)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			p.render()
		}
	}
}

func (p *Progress) render() {
	scanned, total, rate := p.fn()

	pct := 0.0
	if total > 0 {
		pct = float64(scanned) / float64(total) * 100
	}
	line := fmt.Sprintf("[*] Progress: %d/%d (%.1f%%) - %.1f req/s",
		scanned, total, pct, rate)

	fmt.Fprintf(p.out, "\r%s", ProgressStyle.Render(line))
}
