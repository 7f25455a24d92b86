package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pathhunter/pathhunter/pkg/config"
	"github.com/pathhunter/pathhunter/pkg/duration"
	"github.com/pathhunter/pathhunter/pkg/engine"
	"github.com/pathhunter/pathhunter/pkg/metrics"
	"github.com/pathhunter/pathhunter/pkg/output"
	"github.com/pathhunter/pathhunter/pkg/ui"
	"github.com/pathhunter/pathhunter/pkg/urlspace"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ui.ErrorStyle.Render("[!] "+err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.ParseFlags()
	if err != nil {
		return err
	}

	setupLogging(cfg)
	ui.SetSilent(cfg.Silent)
	ui.SetNoColor(cfg.NoColor || !ui.StderrTerminal())
	ui.PrintBanner()

	var writer output.Writer
	if cfg.JSONL {
		writer = output.NewJSONLWriter(os.Stdout)
	} else if !cfg.Silent {
		writer = output.NewConsoleWriter(os.Stdout)
	}

	opts := []engine.Option{}
	if writer != nil {
		opts = append(opts, engine.WithHooks(output.Hook(writer)))
	}

	if cfg.MetricsPort > 0 {
		collector, err := metrics.NewCollector(metrics.Options{Port: cfg.MetricsPort})
		if err != nil {
			return fmt.Errorf("starting metrics endpoint: %w", err)
		}
		defer collector.Close()
		opts = append(opts, engine.WithHooks(collector.Hooks()))
	}

	mgr := engine.NewManager(opts...)

	job := engine.Job{
		Target:      cfg.Target,
		Wordlists:   cfg.Wordlists,
		Concurrency: cfg.Concurrency,
		Timeout:     cfg.Timeout,
		Extensions:  urlspace.ParseExtensions(cfg.Extensions),
		RateLimit:   cfg.RateLimit,
	}
	if err := mgr.Start(job); err != nil {
		return err
	}

	progress := ui.NewProgress(func() (int64, int64, float64) {
		snap := mgr.Status().Progress
		return snap.Scanned, snap.Total, snap.Rate
	})
	progress.Start()

	interrupted := waitForScan(mgr)
	progress.Stop()

	if interrupted {
		fmt.Fprintln(os.Stderr, ui.SubtitleStyle.Render("[*] Interrupted, writing partial report"))
	}

	if err := mgr.WriteReport(cfg.Output); err != nil {
		if errors.Is(err, engine.ErrNoResults) {
			fmt.Fprintln(os.Stderr, ui.SubtitleStyle.Render("[*] No results found"))
			return nil
		}
		return err
	}

	printSummary(mgr, cfg.Output)
	return nil
}

// waitForScan blocks until the scan finishes or the first SIGINT/SIGTERM.
// On a signal the scan is stopped cooperatively and given the standard
// grace period to wind down; reports whether the scan was interrupted.
func waitForScan(mgr *engine.Manager) bool {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case <-mgr.Done():
		return false
	case <-sig:
		mgr.Stop()
		select {
		case <-mgr.Done():
		case <-time.After(duration.StopGrace + duration.QueuePoll):
		}
		return true
	}
}

func printSummary(mgr *engine.Manager, reportPath string) {
	st := mgr.Status()
	fmt.Fprintf(os.Stderr, "%s\n", ui.SubtitleStyle.Render(fmt.Sprintf(
		"[*] Scan complete: %d/%d probed, %d found in %s",
		st.Progress.Scanned, st.Progress.Total, st.ResultCount,
		st.Progress.Elapsed.Round(time.Millisecond))))
	fmt.Fprintf(os.Stderr, "%s\n", ui.SubtitleStyle.Render("[*] Report saved to "+reportPath))
}

func setupLogging(cfg *config.Config) {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
