// Package urlspace expands candidate paths into the full probe URL space
// for a target: every (path, extension) pair becomes one fully-formed URL.
package urlspace

import "strings"

// NoExtension is the sentinel suffix meaning "probe the bare path".
// It is always the first entry in an extension list.
const NoExtension = ""

// Generator forms probe URLs for one target.
type Generator struct {
	// Target is the base URL, normalized to carry no trailing slash.
	Target string

	// Extensions are the suffixes appended to each path. Must contain
	// NoExtension for the bare path to be probed.
	Extensions []string
}

// NewGenerator creates a Generator for target. The target's trailing slashes
// are stripped so path joining produces exactly one separator. A nil or
// empty extension list becomes the bare-path sentinel.
func NewGenerator(target string, extensions []string) *Generator {
	if len(extensions) == 0 {
		extensions = []string{NoExtension}
	}
	return &Generator{
		Target:     strings.TrimRight(target, "/"),
		Extensions: extensions,
	}
}

// Expand forms the full URL set: |paths| x |extensions| entries, in path-major
// order. Output order is stable for a given input order, which keeps total
// counts reproducible.
func (g *Generator) Expand(paths []string) []string {
	urls := make([]string, 0, len(paths)*len(g.Extensions))
	for _, path := range paths {
		path = strings.TrimLeft(path, "/")
		for _, ext := range g.Extensions {
			urls = append(urls, g.Target+"/"+path+ext)
		}
	}
	return urls
}

// ParseExtensions turns a comma-separated suffix spec ("php,html" or
// ".php, .bak") into an extension list. The bare-path sentinel always comes
// first; each named suffix is normalized to a single leading dot. An empty
// spec yields just the sentinel.
func ParseExtensions(spec string) []string {
	exts := []string{NoExtension}
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		part = strings.TrimLeft(part, ".")
		if part == "" {
			continue
		}
		exts = append(exts, "."+part)
	}
	return exts
}
