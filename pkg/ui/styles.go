package ui

import "github.com/charmbracelet/lipgloss"

// Color palette. Dark background, neon blue accents.
var (
	// Brand colors
	Primary   = lipgloss.Color("#00B4FF") // Neon blue
	Secondary = lipgloss.Color("#7D56F4") // Purple

	// Status colors
	Success = lipgloss.Color("#00D26A")
	Warning = lipgloss.Color("#FFB800")
	Error   = lipgloss.Color("#FF3838")
	Muted   = lipgloss.Color("#6B7280")

	// HTTP status code colors
	Status2xx = lipgloss.Color("#00D26A") // Green
	Status3xx = lipgloss.Color("#FFD93D") // Yellow
	Status4xx = lipgloss.Color("#FF6B6B") // Red - 401/403 mean "it exists"
	Status5xx = lipgloss.Color("#FF3838") // Bright red
)

// Pre-configured styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Muted)

	URLStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	RedirectStyle = lipgloss.NewStyle().
			Foreground(Secondary)

	ProgressStyle = lipgloss.NewStyle().
			Foreground(Primary)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Error)
)

// StatusStyle returns the style for an HTTP status code.
func StatusStyle(code int) lipgloss.Style {
	var color lipgloss.Color
	switch {
	case code >= 200 && code < 300:
		color = Status2xx
	case code >= 300 && code < 400:
		color = Status3xx
	case code >= 400 && code < 500:
		color = Status4xx
	default:
		color = Status5xx
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color)
}
