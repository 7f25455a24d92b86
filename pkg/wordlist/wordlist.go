// Package wordlist loads candidate path lists for content discovery.
// Sources are line-oriented text files; lines are trimmed, comments and
// blanks are dropped, and the combined result is deduplicated so each
// candidate path is probed at most once per extension.
package wordlist

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"
)

// commentMarker prefixes lines that are skipped during loading.
const commentMarker = "#"

// Load reads every source file and returns the deduplicated set of candidate
// paths. A source that cannot be opened or read is logged and skipped; the
// scan proceeds with whatever loaded. If every source fails the result is
// empty, which downstream treats as a zero-work scan.
func Load(sources []string) []string {
	seen := make(map[string]struct{})
	var paths []string

	for _, source := range sources {
		f, err := os.Open(source)
		if err != nil {
			slog.Warn("wordlist: skipping unreadable source",
				slog.String("source", source),
				slog.String("error", err.Error()))
			continue
		}

		n, err := appendLines(f, seen, &paths)
		f.Close()
		if err != nil {
			slog.Warn("wordlist: read error, partial load",
				slog.String("source", source),
				slog.String("error", err.Error()))
			continue
		}

		slog.Debug("wordlist: loaded source",
			slog.String("source", source),
			slog.Int("new_paths", n))
	}

	return paths
}

// LoadReaders is Load for already-open sources, keyed by a display name used
// in log messages. Callers own closing the readers.
func LoadReaders(sources map[string]io.Reader) []string {
	seen := make(map[string]struct{})
	var paths []string

	for name, r := range sources {
		if _, err := appendLines(r, seen, &paths); err != nil {
			slog.Warn("wordlist: read error, partial load",
				slog.String("source", name),
				slog.String("error", err.Error()))
		}
	}

	return paths
}

// appendLines scans r line by line, appending unseen candidate paths.
// Returns how many new paths the reader contributed.
func appendLines(r io.Reader, seen map[string]struct{}, paths *[]string) (int, error) {
	added := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		*paths = append(*paths, line)
		added++
	}
	return added, scanner.Err()
}
