package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B00"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00BFFF"))
	silentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	textStyle    = lipgloss.NewStyle()
	barFullStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00BFFF"))
)

// colorEnabled is decided once per run by the root command.
var colorEnabled = false

func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func render(style lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return style.Render(text)
}

// Primary styles highlighted values such as amounts and goals.
func Primary(text string) string { return render(primaryStyle, text) }

// Error styles failures and destructive outcomes.
func Error(text string) string { return render(errorStyle, text) }

// Warning styles notices that need the user's attention.
func Warning(text string) string { return render(warningStyle, text) }

// Info styles neutral highlights such as upcoming reminders.
func Info(text string) string { return render(infoStyle, text) }

// Silent styles labels and secondary output.
func Silent(text string) string { return render(silentStyle, text) }

// Text styles plain body text.
func Text(text string) string { return render(textStyle, text) }

const barWidth = 20

// progressBar renders percent (0-100) as a fixed-width bar.
func progressBar(percent float64) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	full := int(percent / 100 * barWidth)
	return "[" + render(barFullStyle, strings.Repeat("█", full)) + Silent(strings.Repeat("░", barWidth-full)) + "]"
}
