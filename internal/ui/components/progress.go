package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wordwise-play/wordwise/internal/ui/theme"
)

// percentWidth is the width of the "  100%" suffix.
const percentWidth = 6

// minBarCells keeps the bar visible however narrow it gets.
const minBarCells = 4

// ProgressBar is a horizontal bar filled in proportion to Percent.
type ProgressBar struct {
	Percent     float64 // 0..100, clamped when drawn
	ShowPercent bool
	Width       int // total width including the percent suffix
}

// NewProgressBar creates a progress bar width cells wide.
func NewProgressBar(percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// Filled returns the number of filled cells for a bar of barWidth cells.
func (p ProgressBar) Filled(barWidth int) int {
	filled := int(float64(barWidth) * p.Percent / 100)
	return max(0, min(filled, barWidth))
}

// View renders the bar.
func (p ProgressBar) View() string {
	cells := p.Width
	if p.ShowPercent {
		cells -= percentWidth
	}
	cells = max(cells, minBarCells)

	filled := p.Filled(cells)
	out := theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", cells-filled))

	if p.ShowPercent {
		pct := max(0, min(int(p.Percent), 100))
		out += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %3d%%", pct))
	}
	return out
}
