package ui

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Version information - these can be overridden at build time via ldflags:
// go build -ldflags "-X github.com/pathhunter/pathhunter/pkg/ui.Version=1.0.0"
var (
	Version   = "1.2.0"
	BuildDate = "2026-08-30"
	Commit    = "dev"
)

// Global UI state
var (
	silentMode  bool
	noColorMode bool
	uiMu        sync.RWMutex
)

// SetSilent enables or disables silent mode (suppresses banner and progress)
func SetSilent(silent bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	silentMode = silent
}

// IsSilent returns whether silent mode is enabled
func IsSilent() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return silentMode
}

// SetNoColor disables colored output
func SetNoColor(noColor bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	noColorMode = noColor
	if noColor {
		// Use ASCII profile to disable colors
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// IsNoColor returns whether color is disabled
func IsNoColor() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return noColorMode
}

const bannerArt = `
   ___       __  __   __ __          __
  / _ \___ _/ /_/ /  / // /_ _____  / /____ ____
 / ___/ _ ` + "`" + `/ __/ _ \/ _  / // / _ \/ __/ -_) __/
/_/   \_,_/\__/_//_/_//_/\_,_/_//_/\__/\__/_/
`

// Banner returns the startup banner.
func Banner() string {
	art := TitleStyle.Render(bannerArt)
	tag := SubtitleStyle.Render(fmt.Sprintf("  directory scanner v%s (%s)", Version, Commit))
	return art + "\n" + tag + "\n"
}

// PrintBanner writes the banner to stderr unless silent mode is on.
func PrintBanner() {
	if IsSilent() {
		return
	}
	fmt.Fprintln(os.Stderr, Banner())
}
