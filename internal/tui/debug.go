package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// DebugPanel shows the session operations applied so far
type DebugPanel struct {
	enabled bool     // Whether debug panel is enabled
	lines   []string // Recent operation lines
	buffer  int      // Max lines to keep in buffer
}

// NewDebugPanel creates a new debug panel
func NewDebugPanel(enabled bool) DebugPanel {
	return DebugPanel{
		enabled: enabled,
		buffer:  100,
	}
}

// IsEnabled returns whether debug mode is enabled
func (d *DebugPanel) IsEnabled() bool {
	return d.enabled
}

// AddEvent records an operation, e.g. "[toggle] kitchen/weekly/Meal prep"
func (d *DebugPanel) AddEvent(op string, details string) {
	if !d.enabled {
		return
	}
	line := time.Now().Format("15:04:05") + " [" + op + "]"
	if details != "" {
		line += " " + details
	}
	d.lines = append(d.lines, line)
	if len(d.lines) > d.buffer {
		d.lines = d.lines[len(d.lines)-d.buffer:]
	}
}

// Lines returns the current debug lines
func (d *DebugPanel) Lines() []string {
	return d.lines
}

// Render renders the last height-3 lines inside a bordered box
func (d *DebugPanel) Render(width, height int) string {
	if !d.enabled {
		return ""
	}

	title := lipgloss.NewStyle().
		Foreground(ColorYellow).
		Bold(true).
		Render("OPERATIONS")

	contentHeight := max(height-3, 1)

	var lines []string
	start := max(len(d.lines)-contentHeight, 0)
	maxLen := max(width-4, 10)
	for _, line := range d.lines[start:] {
		lines = append(lines, truncate(line, maxLen))
	}
	for len(lines) < contentHeight {
		lines = append(lines, "")
	}

	return lipgloss.NewStyle().
		Width(width-2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorYellow).
		Padding(0, 1).
		Render(title + "\n" + strings.Join(lines, "\n"))
}
