package httpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pathhunter/pathhunter/pkg/duration"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Timeout != duration.HTTPProbing {
		t.Errorf("Timeout: got %v, want %v", cfg.Timeout, duration.HTTPProbing)
	}
	if !cfg.InsecureSkipVerify {
		t.Error("InsecureSkipVerify should default to true")
	}
	if cfg.MaxIdleConns != 100 {
		t.Errorf("MaxIdleConns: got %d, want 100", cfg.MaxIdleConns)
	}
}

func TestNew_ZeroValuesGetDefaults(t *testing.T) {
	client := New(Config{})

	if client.Timeout != duration.HTTPProbing {
		t.Errorf("zero Timeout should default to %v, got %v", duration.HTTPProbing, client.Timeout)
	}

	transport, ok := client.Transport.(*http.Transport)
	if !ok {
		t.Fatal("expected *http.Transport")
	}
	if transport.MaxConnsPerHost != 25 {
		t.Errorf("MaxConnsPerHost: got %d, want 25", transport.MaxConnsPerHost)
	}
}

func TestNew_DoesNotFollowRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/start" {
			http.Redirect(w, r, "/end", http.StatusFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := New(DefaultConfig())
	resp, err := client.Get(srv.URL + "/start")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		t.Errorf("expected 302 (redirect not followed), got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/end" {
		t.Errorf("expected Location /end, got %q", loc)
	}
}

func TestDefault_Shared(t *testing.T) {
	a := Default()
	b := Default()
	if a != b {
		t.Error("Default should return the same shared client")
	}
}

func TestWithTimeout(t *testing.T) {
	cfg := WithTimeout(17 * time.Second)
	if cfg.Timeout != 17*time.Second {
		t.Errorf("Timeout: got %v, want 17s", cfg.Timeout)
	}
	// Other defaults preserved
	if !cfg.InsecureSkipVerify {
		t.Error("InsecureSkipVerify should stay true")
	}
}

func TestNew_MalformedProxyIgnored(t *testing.T) {
	client := New(WithProxy("://not-a-url"))
	if client == nil {
		t.Fatal("client should be created despite malformed proxy")
	}
}
