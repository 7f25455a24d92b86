// Package falsepositive decides whether a probe outcome is a genuine finding
// or scanner noise. Misconfigured servers commonly answer every nonexistent
// path with the same redirect (to a login page, the site root, an error
// page); without suppression those wildcard redirects flood the result set.
package falsepositive

import (
	"net/http"
	"net/url"
)

// includedStatuses are recorded unconditionally: they signal existence or
// sensitivity regardless of any redirect behavior.
var includedStatuses = map[int]struct{}{
	http.StatusOK:                  {},
	http.StatusCreated:             {},
	http.StatusNoContent:           {},
	http.StatusUnauthorized:        {},
	http.StatusForbidden:           {},
	http.StatusMethodNotAllowed:    {},
	http.StatusInternalServerError: {},
	http.StatusServiceUnavailable:  {},
}

// genericTargets are redirect destinations that wildcard servers send
// everything to. A redirect landing on any of these is never a finding.
var genericTargets = map[string]struct{}{
	"":            {},
	"/":           {},
	"/index.html": {},
	"/index.php":  {},
}

// Outcome is the minimal probe signal the filter needs. pkg/probe's Outcome
// satisfies the shape; the local type keeps this package dependency-free.
type Outcome struct {
	StatusCode int
	RedirectTo string
}

// Filter applies the inclusion policy. The zero value is ready to use.
type Filter struct{}

// Keep reports whether the outcome for probedURL belongs in the result set.
//
// Policy:
//   - 200, 201, 204, 401, 403, 405, 500, 503: always kept.
//   - 301, 302: kept only when the redirect target is present and resolves
//     to a different path on the same host. Generic destinations ("", "/",
//     "/index.html", "/index.php") and cross-host targets are dropped.
//   - 303, 307, 308: always dropped. These get no path-comparison carve-out;
//     the wildcard-redirect risk is the same but in practice they carry no
//     discovery signal worth the noise. Deliberate asymmetry with 301/302.
//   - anything else: dropped.
func (Filter) Keep(probedURL string, o Outcome) bool {
	if _, ok := includedStatuses[o.StatusCode]; ok {
		return true
	}

	switch o.StatusCode {
	case http.StatusMovedPermanently, http.StatusFound:
		return genuineRedirect(probedURL, o.RedirectTo)
	}

	return false
}

// genuineRedirect reports whether location points somewhere other than the
// probed path on the same host.
func genuineRedirect(probedURL, location string) bool {
	if _, generic := genericTargets[location]; generic {
		return false
	}

	probed, err := url.Parse(probedURL)
	if err != nil {
		return false
	}
	target, err := url.Parse(location)
	if err != nil {
		return false
	}

	resolved := probed.ResolveReference(target)
	if resolved.Host != probed.Host {
		return false
	}
	if _, generic := genericTargets[resolved.Path]; generic {
		return false
	}
	return resolved.Path != probed.Path
}
