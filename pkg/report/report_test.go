package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func sampleMeta() Meta {
	return Meta{
		Target:      "http://example.test",
		Date:        testTime,
		TotalTested: 42,
		Found:       2,
	}
}

func TestWrite_HeaderBlock(t *testing.T) {
	var b strings.Builder
	err := Write(&b, sampleMeta(), nil)
	require.NoError(t, err)

	out := b.String()
	assert.Contains(t, out, strings.Repeat("=", 80))
	assert.Contains(t, out, "PathHunter Scan Report")
	assert.Contains(t, out, "Target: http://example.test")
	assert.Contains(t, out, "Scan Date: 2026-08-30 12:00:00")
	assert.Contains(t, out, "Total URLs Tested: 42")
	assert.Contains(t, out, "Results Found: 2")
	assert.Contains(t, out, "Scan completed: ")
}

func TestWrite_EmptyResults(t *testing.T) {
	var b strings.Builder
	err := Write(&b, sampleMeta(), nil)
	require.NoError(t, err)

	assert.Contains(t, b.String(), "No results found.")
	assert.NotEmpty(t, b.String())
}

func TestWrite_SortsByStatusThenURL(t *testing.T) {
	entries := []Entry{
		{URL: "http://example.test/z", Status: 403, Size: 10, Timestamp: testTime},
		{URL: "http://example.test/b", Status: 200, Size: 20, Timestamp: testTime},
		{URL: "http://example.test/a", Status: 403, Size: 30, Timestamp: testTime},
		{URL: "http://example.test/c", Status: 200, Size: 40, Timestamp: testTime},
	}

	var b strings.Builder
	require.NoError(t, Write(&b, sampleMeta(), entries))
	out := b.String()

	wantOrder := []string{
		"[200]       20B  http://example.test/b",
		"[200]       40B  http://example.test/c",
		"[403]       30B  http://example.test/a",
		"[403]       10B  http://example.test/z",
	}
	last := -1
	for _, line := range wantOrder {
		idx := strings.Index(out, line)
		require.NotEqual(t, -1, idx, "missing line %q", line)
		assert.Greater(t, idx, last, "line %q out of order", line)
		last = idx
	}
}

func TestWrite_DoesNotMutateInput(t *testing.T) {
	entries := []Entry{
		{URL: "http://example.test/z", Status: 403, Timestamp: testTime},
		{URL: "http://example.test/a", Status: 200, Timestamp: testTime},
	}

	var b strings.Builder
	require.NoError(t, Write(&b, sampleMeta(), entries))

	assert.Equal(t, "http://example.test/z", entries[0].URL, "input slice should keep insertion order")
}

func TestWrite_RedirectAndTimestampLines(t *testing.T) {
	entries := []Entry{
		{URL: "http://example.test/old", Status: 301, Size: 0, Redirect: "/new", Timestamp: testTime},
	}

	var b strings.Builder
	require.NoError(t, Write(&b, sampleMeta(), entries))

	assert.Contains(t, b.String(), "    Redirect: /new")
	assert.Contains(t, b.String(), "    Timestamp: 2026-08-30 12:00:00")
}

func TestWriteFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "scan_report.txt")

	err := WriteFile(path, sampleMeta(), []Entry{
		{URL: "http://example.test/admin", Status: 200, Size: 128, Timestamp: testTime},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[200]      128B  http://example.test/admin")
}

func TestWriteFile_FailureKeepsExistingReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan_report.txt")
	require.NoError(t, os.WriteFile(path, []byte("previous report"), 0o644))

	// A path whose parent is a regular file cannot be created.
	bad := filepath.Join(path, "nested.txt")
	err := WriteFile(bad, sampleMeta(), nil)
	assert.Error(t, err)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "previous report", string(data), "prior report must be untouched")
}
