// Package report serializes a scan's result set to a stable text report.
// Output is deterministic for a given result set: entries sort by status
// code, then URL, so two runs over the same findings diff cleanly.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pathhunter/pathhunter/pkg/defaults"
)

// TimeFormat is the timestamp layout used throughout the report.
const TimeFormat = "2006-01-02 15:04:05"

const bannerWidth = 80

// Entry is one reported finding.
type Entry struct {
	URL       string
	Status    int
	Size      int64
	Redirect  string
	Timestamp time.Time
}

// Meta is the report header block.
type Meta struct {
	Target      string
	Date        time.Time
	TotalTested int64
	Found       int
}

// Write renders the report to w. A nil or empty entry list still produces a
// full header block plus an explicit no-results line, never an empty file.
func Write(w io.Writer, meta Meta, entries []Entry) error {
	banner := strings.Repeat("=", bannerWidth)

	var b strings.Builder
	b.WriteString(banner + "\n")
	b.WriteString("PathHunter Scan Report\n")
	fmt.Fprintf(&b, "Target: %s\n", meta.Target)
	fmt.Fprintf(&b, "Scan Date: %s\n", meta.Date.Format(TimeFormat))
	fmt.Fprintf(&b, "Total URLs Tested: %d\n", meta.TotalTested)
	fmt.Fprintf(&b, "Results Found: %d\n", meta.Found)
	b.WriteString(banner + "\n\n")

	if len(entries) == 0 {
		b.WriteString("No results found.\n")
	} else {
		sorted := make([]Entry, len(entries))
		copy(sorted, entries)
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Status != sorted[j].Status {
				return sorted[i].Status < sorted[j].Status
			}
			return sorted[i].URL < sorted[j].URL
		})

		for _, e := range sorted {
			fmt.Fprintf(&b, "[%d] %8dB  %s\n", e.Status, e.Size, e.URL)
			if e.Redirect != "" {
				fmt.Fprintf(&b, "    Redirect: %s\n", e.Redirect)
			}
			fmt.Fprintf(&b, "    Timestamp: %s\n\n", e.Timestamp.Format(TimeFormat))
		}
	}

	b.WriteString("\n" + banner + "\n")
	fmt.Fprintf(&b, "Scan completed: %s\n", time.Now().Format(TimeFormat))

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFile renders the report to path. The write goes to a temp file in the
// destination directory first and renames into place, so a failure mid-write
// never truncates or corrupts an existing report at that path.
func WriteFile(path string, meta Meta, entries []Entry) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, defaults.ReportDirMode); err != nil {
		return fmt.Errorf("report: creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("report: creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Write(tmp, meta, entries); err != nil {
		tmp.Close()
		return fmt.Errorf("report: writing: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("report: closing temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), defaults.ReportFileMode); err != nil {
		return fmt.Errorf("report: setting permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("report: renaming into place: %w", err)
	}
	return nil
}
