package tui

import "github.com/charmbracelet/lipgloss"

// Color palette matching the fatih/color usage of the CLI commands
var (
	ColorGreen  = lipgloss.AdaptiveColor{Light: "#00AF00", Dark: "#00D700"}
	ColorCyan   = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"}
	ColorWhite  = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#FFFFFF"}
	ColorGray   = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}
	ColorYellow = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}
	ColorRed    = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
)

var (
	StyleNormal = lipgloss.NewStyle().Foreground(ColorWhite)

	// StyleHighlight is for the selected card
	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	// StyleSaved marks results already in the library
	StyleSaved = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleGenre is for genre strings and the genre selector
	StyleGenre = lipgloss.NewStyle().Foreground(ColorCyan)

	StyleHelp = lipgloss.NewStyle().Foreground(ColorGray)

	StyleError = lipgloss.NewStyle().Foreground(ColorRed)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	StyleTab = lipgloss.NewStyle().
			Foreground(ColorGray).
			Padding(0, 1)

	StyleTabActive = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true).
			Underline(true).
			Padding(0, 1)

	StyleBorder = lipgloss.NewStyle().
			Foreground(ColorGray).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray)
)
