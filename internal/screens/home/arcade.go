package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wordwise-play/wordwise/internal/ui/components"
	"github.com/wordwise-play/wordwise/internal/ui/theme"
)

// Block-letter title.
const arcadeTitleFull = `██╗    ██╗ ██████╗ ██████╗ ██████╗ ██╗    ██╗██╗███████╗███████╗
██║    ██║██╔═══██╗██╔══██╗██╔══██╗██║    ██║██║██╔════╝██╔════╝
██║ █╗ ██║██║   ██║██████╔╝██║  ██║██║ █╗ ██║██║███████╗█████╗
██║███╗██║██║   ██║██╔══██╗██║  ██║██║███╗██║██║╚════██║██╔══╝
╚███╔███╔╝╚██████╔╝██║  ██║██████╔╝╚███╔███╔╝██║███████║███████╗
 ╚══╝╚══╝  ╚═════╝ ╚═╝  ╚═╝╚═════╝  ╚══╝╚══╝ ╚═╝╚══════╝╚══════╝`

const arcadeTitleCompact = "W · O · R · D · W · I · S · E"

const tagline = "Interactive phonics practice for your classroom"

// feature is one line of the landing blurb.
type feature struct {
	Icon, Title, Detail string
}

var features = []feature{
	{"⚡", "No setup required", "Pick word families and begin instantly."},
	{"🔀", "Random order each time", "Words are shuffled within each family."},
	{"⌨", "Keyboard and mouse ready", "Arrows, space or a click on either side."},
}

// contentWidth returns the uniform inner width used for all sections.
// The full title is 64 cells wide, so the cap is wider than the shared one.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 70 {
		w = 70
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

func renderTagline(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.ArcadeCyan).
		Render(tagline)
}

// renderFeatures lists the landing blurb. Compact mode drops the details.
func renderFeatures(cw int, compact bool) string {
	titleStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	detailStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	lines := make([]string, 0, len(features))
	for _, f := range features {
		line := f.Icon + "  " + titleStyle.Render(f.Title)
		if !compact {
			line += detailStyle.Render("  " + f.Detail)
		}
		lines = append(lines, line)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(menu components.Menu, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(menu.ButtonView(buttonWidth))
}
