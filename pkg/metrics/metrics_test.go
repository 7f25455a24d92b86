package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/pathhunter/pathhunter/pkg/engine"
)

func newTestCollector(t *testing.T) *Collector {
	t.Helper()
	// Port 0 would default to 9090; use an unlikely high port so parallel
	// test runs don't collide on the exposition listener.
	c, err := NewCollector(Options{Port: 29090})
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestHooks_CountProbesAndFindings(t *testing.T) {
	c := newTestCollector(t)
	h := c.Hooks()

	h.OnStart("job-1", 100)
	for i := 0; i < 5; i++ {
		h.OnProbe()
	}
	h.OnResult(engine.Result{URL: "http://example.test/admin", Status: 200})

	if got := testutil.ToFloat64(c.probesTotal); got != 5 {
		t.Errorf("probes_total: got %v, want 5", got)
	}
	if got := testutil.ToFloat64(c.findingsTotal); got != 1 {
		t.Errorf("findings_total: got %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.scansTotal); got != 1 {
		t.Errorf("scans_total: got %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.total); got != 100 {
		t.Errorf("scan_total gauge: got %v, want 100", got)
	}
	if got := testutil.ToFloat64(c.scanned); got != 5 {
		t.Errorf("scan_scanned gauge: got %v, want 5", got)
	}
}

func TestHooks_NewJobResetsGauges(t *testing.T) {
	c := newTestCollector(t)
	h := c.Hooks()

	h.OnStart("job-1", 10)
	h.OnProbe()
	h.OnProbe()
	h.OnStart("job-2", 50)

	if got := testutil.ToFloat64(c.scanned); got != 0 {
		t.Errorf("scanned gauge should reset on new job, got %v", got)
	}
	if got := testutil.ToFloat64(c.total); got != 50 {
		t.Errorf("total gauge: got %v, want 50", got)
	}
	// Cross-job counters keep accumulating.
	if got := testutil.ToFloat64(c.probesTotal); got != 2 {
		t.Errorf("probes_total: got %v, want 2", got)
	}
}

func TestClose_Idempotent(t *testing.T) {
	c, err := NewCollector(Options{Port: 29091})
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close should be a no-op: %v", err)
	}
}
