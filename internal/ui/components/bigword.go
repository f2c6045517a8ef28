package components

import (
	"strings"

	"github.com/wordwise-play/wordwise/internal/ui/theme"
)

// BigWord renders a word split into onset and rime, letters spaced out so
// they read large in a terminal. The onset is drawn in the highlight colour.
func BigWord(onset, rime string) string {
	var parts []string
	if onset != "" {
		parts = append(parts, theme.Onset.Render(spaced(onset)))
	}
	if rime != "" {
		parts = append(parts, theme.Rime.Render(spaced(rime)))
	}
	return strings.Join(parts, "   ")
}

// spaced puts two spaces between letters.
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), "  ")
}
