// Package defaults provides canonical default values for the entire codebase.
// This is the single source of truth for runtime configuration defaults.
//
// Usage:
//
//	job.Concurrency = defaults.ConcurrencyMedium
//	req.Header.Set("User-Agent", defaults.UserAgent())
//
// DO NOT use hardcoded values like `Concurrency: 10` anywhere.
// Instead, reference the appropriate constant from this package.
package defaults

import "fmt"

// Version is the current PathHunter version
const Version = "1.2.0"

// UserAgent returns the fixed identifying User-Agent sent with every probe.
func UserAgent() string {
	return fmt.Sprintf("pathhunter/%s", Version)
}

// ============================================================================
// CONCURRENCY SETTINGS
// ============================================================================

const (
	// ConcurrencyMinimal is for single-threaded operations (1)
	ConcurrencyMinimal = 1

	// ConcurrencyLow is for light probing of fragile targets (5)
	ConcurrencyLow = 5

	// ConcurrencyMedium is the standard worker count for a scan (10)
	ConcurrencyMedium = 10

	// ConcurrencyHigh is for aggressive scanning (20)
	ConcurrencyHigh = 20

	// ConcurrencyMax is for maximum parallelism (50)
	ConcurrencyMax = 50
)

// ============================================================================
// QUEUE AND RESULT SIZING
// ============================================================================

const (
	// QueueDepthPerWorker is the buffered queue slots allocated per worker.
	QueueDepthPerWorker = 2

	// RecentResultsWindow is how many trailing results the status
	// snapshot exposes to external pollers.
	RecentResultsWindow = 10
)

// ============================================================================
// BUFFER SIZES
// ============================================================================

const (
	// BufferSmall is for typical reads (4KB)
	BufferSmall = 4 * 1024

	// BufferMedium is for larger reads (32KB)
	BufferMedium = 32 * 1024

	// BufferMax is the maximum response body size counted per probe (10MB)
	BufferMax = 10 * 1024 * 1024
)

// ============================================================================
// FILE PERMISSIONS
// ============================================================================

const (
	// ReportFileMode is the permission for generated report files.
	ReportFileMode = 0o644

	// ReportDirMode is the permission for report directories.
	ReportDirMode = 0o755
)
