// Package config holds CLI configuration: flag parsing, optional YAML scan
// profiles, and validation with sentinel errors.
package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pathhunter/pathhunter/pkg/defaults"
	"github.com/pathhunter/pathhunter/pkg/duration"
)

// StringSliceFlag collects repeated or comma-separated flag values.
type StringSliceFlag []string

func (s *StringSliceFlag) String() string {
	return strings.Join(*s, ",")
}

// Set appends one or more comma-separated values.
func (s *StringSliceFlag) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			*s = append(*s, v)
		}
	}
	return nil
}

// Config holds all CLI configuration options.
type Config struct {
	// Target settings
	Target    string
	Wordlists StringSliceFlag

	// Execution settings
	Concurrency int           // Parallel workers (default: 10)
	Timeout     time.Duration // Per-request timeout (default: 5s)
	RateLimit   int           // Requests per second, 0 = unlimited
	Extensions  string        // Comma-separated suffix spec ("php,html")

	// Output settings
	Output      string // Report file path
	JSONL       bool   // Stream results as JSON lines instead of console
	Silent      bool   // Suppress banner and progress
	NoColor     bool   // Disable colored output
	Verbose     bool   // Debug logging
	MetricsPort int    // Prometheus exposition port, 0 = disabled

	// Profile is an optional YAML scan profile; flags override it.
	Profile string
}

// profile mirrors the YAML scan-profile schema.
type profile struct {
	Target         string   `yaml:"target"`
	Wordlists      []string `yaml:"wordlists"`
	Concurrency    int      `yaml:"concurrency"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
	Extensions     string   `yaml:"extensions"`
	RateLimit      int      `yaml:"rate_limit"`
	Report         string   `yaml:"report"`
}

// ParseFlags parses command line arguments and returns Config.
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	// === INPUT ===
	flag.StringVar(&cfg.Target, "u", "", "Target base URL")
	flag.StringVar(&cfg.Target, "target", "", "Target base URL (alias)")
	flag.Var(&cfg.Wordlists, "w", "Wordlist file(s) - comma-separated or repeated")
	flag.Var(&cfg.Wordlists, "wordlist", "Wordlist file(s) (alias)")
	flag.StringVar(&cfg.Profile, "profile", "", "YAML scan profile (flags override)")

	// === EXECUTION ===
	flag.IntVar(&cfg.Concurrency, "t", 0, "Concurrent workers")
	flag.IntVar(&cfg.Concurrency, "threads", 0, "Concurrent workers (alias)")
	timeout := flag.Int("timeout", 0, "Per-request timeout in seconds")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 0, "Max requests per second (0 = unlimited)")
	flag.IntVar(&cfg.RateLimit, "rl", 0, "Rate limit (alias)")
	flag.StringVar(&cfg.Extensions, "e", "", "File extensions (comma-separated, e.g. php,html)")
	flag.StringVar(&cfg.Extensions, "extensions", "", "File extensions (alias)")

	// === OUTPUT ===
	flag.StringVar(&cfg.Output, "o", "", "Report output file")
	flag.StringVar(&cfg.Output, "output", "", "Report output file (alias)")
	flag.BoolVar(&cfg.JSONL, "json", false, "Stream results as JSON lines")
	flag.BoolVar(&cfg.Silent, "silent", false, "Suppress banner and progress")
	flag.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&cfg.Verbose, "v", false, "Verbose (debug) logging")
	flag.IntVar(&cfg.MetricsPort, "metrics-port", 0, "Prometheus metrics port (0 = disabled)")

	flag.Parse()

	if *timeout > 0 {
		cfg.Timeout = time.Duration(*timeout) * time.Second
	}

	if cfg.Profile != "" {
		if err := cfg.applyProfile(cfg.Profile); err != nil {
			return nil, err
		}
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyProfile fills fields the flags left unset from a YAML profile.
func (c *Config) applyProfile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: reading profile %s: %v", ErrInvalidConfig, path, err)
	}
	var p profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("%w: parsing profile %s: %v", ErrInvalidConfig, path, err)
	}

	if c.Target == "" {
		c.Target = p.Target
	}
	if len(c.Wordlists) == 0 {
		c.Wordlists = p.Wordlists
	}
	if c.Concurrency == 0 {
		c.Concurrency = p.Concurrency
	}
	if c.Timeout == 0 && p.TimeoutSeconds > 0 {
		c.Timeout = time.Duration(p.TimeoutSeconds) * time.Second
	}
	if c.Extensions == "" {
		c.Extensions = p.Extensions
	}
	if c.RateLimit == 0 {
		c.RateLimit = p.RateLimit
	}
	if c.Output == "" {
		c.Output = p.Report
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Concurrency == 0 {
		c.Concurrency = defaults.ConcurrencyMedium
	}
	if c.Timeout == 0 {
		c.Timeout = duration.HTTPProbing
	}
	if c.Output == "" {
		c.Output = "scan_report.txt"
	}
}

// Validate rejects configurations the engine would refuse anyway, so the
// CLI fails fast with a descriptive error.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Target) == "" {
		return fmt.Errorf("%w: target", ErrMissingRequired)
	}
	if len(c.Wordlists) == 0 {
		return fmt.Errorf("%w: at least one wordlist", ErrMissingRequired)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("%w: negative worker count", ErrInvalidConfig)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidConfig)
	}
	return nil
}
