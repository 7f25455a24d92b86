// Package probe issues single GET requests against candidate URLs and
// reduces each response to the signal the classifier needs: status code,
// body size, and redirect target.
package probe

import (
	"context"
	"net/http"
	"time"

	"github.com/pathhunter/pathhunter/pkg/defaults"
	"github.com/pathhunter/pathhunter/pkg/httpclient"
	"github.com/pathhunter/pathhunter/pkg/iohelper"
)

// Outcome is the classified result of one probe request.
type Outcome struct {
	// StatusCode of the response.
	StatusCode int

	// Size is the response body length in bytes, capped at the standard
	// body limit.
	Size int64

	// RedirectTo carries the Location header value when StatusCode is in
	// the redirect family and a Location header is present. Empty
	// otherwise.
	RedirectTo string
}

// IsRedirect reports whether the outcome's status is in the redirect family.
func (o Outcome) IsRedirect() bool {
	switch o.StatusCode {
	case http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect:
		return true
	}
	return false
}

// Config configures a Prober.
type Config struct {
	// Timeout is the per-request timeout. Zero means the standard
	// probing timeout.
	Timeout time.Duration

	// UserAgent identifies the scanner. Zero means defaults.UserAgent().
	UserAgent string

	// HTTPClient overrides the client entirely (tests, custom proxies).
	HTTPClient *http.Client
}

// Prober executes one GET per URL under fixed job-level settings.
// Redirects are never followed and TLS certificates are never verified;
// a transport failure is terminal for that URL, no retries.
type Prober struct {
	client    *http.Client
	userAgent string
}

// New creates a Prober from cfg.
func New(cfg Config) *Prober {
	client := cfg.HTTPClient
	if client == nil {
		client = httpclient.New(httpclient.WithTimeout(cfg.Timeout))
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaults.UserAgent()
	}
	return &Prober{client: client, userAgent: ua}
}

// Do probes one URL. A transport failure (timeout, refused connection,
// TLS failure) returns a zero Outcome and the error; the caller counts the
// probe as completed but records nothing.
func (p *Prober) Do(ctx context.Context, rawURL string) (Outcome, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Outcome{}, err
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "*/*")

	resp, err := p.client.Do(req)
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{
		StatusCode: resp.StatusCode,
		Size:       iohelper.CountAndCloseDefault(resp.Body),
	}
	if out.IsRedirect() {
		out.RedirectTo = resp.Header.Get("Location")
	}
	return out, nil
}
