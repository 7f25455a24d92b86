// Package iohelper provides helper functions for I/O operations,
// particularly for safely consuming HTTP response bodies with limits.
package iohelper

import (
	"io"

	"github.com/pathhunter/pathhunter/pkg/defaults"
)

// CountAndClose consumes r up to limit bytes, returning how many bytes were
// read, and closes it if it's a ReadCloser. The count is the response size
// recorded for a probe; reading the full body also lets the connection be
// reused for HTTP keep-alive.
func CountAndClose(r io.Reader, limit int64) int64 {
	if r == nil {
		return 0
	}
	n, _ := io.Copy(io.Discard, io.LimitReader(r, limit))
	if rc, ok := r.(io.ReadCloser); ok {
		rc.Close()
	}
	return n
}

// CountAndCloseDefault consumes r with the standard 10MB cap.
func CountAndCloseDefault(r io.Reader) int64 {
	return CountAndClose(r, int64(defaults.BufferMax))
}

// DrainAndClose reads any remaining data from r and closes it if it's a
// ReadCloser. This ensures the connection can be reused for keep-alive.
// Always returns nil error to allow use in defer.
func DrainAndClose(r io.Reader) error {
	if r == nil {
		return nil
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(r, int64(defaults.BufferMedium)*2))
	if rc, ok := r.(io.ReadCloser); ok {
		rc.Close()
	}
	return nil
}
