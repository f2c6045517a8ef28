// Package layout draws the frame shared by every screen: a header bar with
// the app name, screen title and status, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/wordwise-play/wordwise/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 20
)

const appName = "Wordwise"

// hintGap separates footer hints.
const hintGap = "   "

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// HintsFor converts enabled key bindings into footer hints.
func HintsFor(bindings ...key.Binding) []KeyHint {
	hints := make([]KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nWordwise needs at least %d x %d.\nThis one is %d x %d.",
			MinWidth, MinHeight, width, height,
		))
}

// bar is the bordered strip used for both header and footer.
func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// innerWidth is the usable text width inside a bar of the given width.
func innerWidth(width int) int {
	return max(width-4, 0)
}

// RenderHeader renders the app name on the left, title centred and status
// on the right. status may be empty.
func RenderHeader(title, status string, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  " + appName)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)

	return bar(width).Render(spread(left, center, right, innerWidth(width)))
}

// spread places center in the middle of w cells with left and right pinned
// to the edges, keeping at least one space between neighbours.
func spread(left, center, right string, w int) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	leftGap := max((w-cw)/2-lw, 1)
	rightGap := max(w-lw-leftGap-cw-rw, 1)

	return left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
}

// RenderFooter renders key hints. Hints that do not fit are dropped from
// the end so the footer stays one line.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	avail := innerWidth(width) - 2
	line := ""
	for _, h := range hints {
		part := keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
		candidate := part
		if line != "" {
			candidate = line + hintGap + part
		}
		if lipgloss.Width(candidate) > avail {
			break
		}
		line = candidate
	}

	return bar(width).Render("  " + line)
}

// RenderFrame stacks header, content and footer, padding content so the
// frame fills exactly height lines.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
