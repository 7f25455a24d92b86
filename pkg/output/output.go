// Package output streams recorded findings as they arrive: a styled console
// line per result for humans, JSON Lines for machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/pathhunter/pathhunter/pkg/engine"
	"github.com/pathhunter/pathhunter/pkg/ui"
)

// Writer consumes results as the scan records them. Implementations must be
// safe for concurrent use; the engine invokes them from worker goroutines.
type Writer interface {
	WriteResult(r engine.Result) error
}

// ConsoleWriter prints one status-colored line per finding, dirsearch style.
type ConsoleWriter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsoleWriter creates a ConsoleWriter targeting out.
func NewConsoleWriter(out io.Writer) *ConsoleWriter {
	return &ConsoleWriter{out: out}
}

// WriteResult renders e.g. `[200]     1234B  http://host/admin  -> /login`.
func (w *ConsoleWriter) WriteResult(r engine.Result) error {
	line := fmt.Sprintf("[%s] %8dB  %s",
		ui.StatusStyle(r.Status).Render(fmt.Sprintf("%d", r.Status)),
		r.Size,
		ui.URLStyle.Render(r.URL))
	if r.Redirect != "" {
		line += ui.RedirectStyle.Render(fmt.Sprintf("  -> %s", r.Redirect))
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := fmt.Fprintln(w.out, line)
	return err
}

// JSONLWriter emits one JSON object per finding, one per line.
type JSONLWriter struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewJSONLWriter creates a JSONLWriter targeting out.
func NewJSONLWriter(out io.Writer) *JSONLWriter {
	return &JSONLWriter{enc: json.NewEncoder(out)}
}

// WriteResult encodes r as a single JSON line.
func (w *JSONLWriter) WriteResult(r engine.Result) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.enc.Encode(r)
}

// Hook adapts a Writer into engine hooks, dropping write errors: a broken
// output stream must not abort the scan.
func Hook(w Writer) engine.Hooks {
	return engine.Hooks{
		OnResult: func(r engine.Result) {
			_ = w.WriteResult(r)
		},
	}
}
