package session

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wordwise-play/wordwise/internal/catalog"
	sess "github.com/wordwise-play/wordwise/internal/session"
	"github.com/wordwise-play/wordwise/internal/ui/components"
	"github.com/wordwise-play/wordwise/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	st := s.machine.State()
	if !st.HasGroups() {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No word families selected.")
	}

	group, _ := s.currentGroup()
	hud := s.renderHUD(group, width)

	var body string
	if st.ShowingIntro {
		body = renderIntro(group)
	} else {
		body = s.renderWord()
	}

	bodyHeight := max(height-lipgloss.Height(hud)-1, 0)
	centered := lipgloss.NewStyle().
		Width(width).
		Height(bodyHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)

	return hud + "\n" + centered
}

// currentGroup looks up the catalog record of the current group.
func (s *SessionScreen) currentGroup() (catalog.Group, bool) {
	cat := s.machine.Catalog()
	id, ok := s.machine.State().CurrentGroupID()
	if cat == nil || !ok {
		return catalog.Group{}, false
	}
	return cat.Lookup(id)
}

// renderHUD renders the group label, word counter and progress bar.
func (s *SessionScreen) renderHUD(group catalog.Group, width int) string {
	p := s.machine.Progress()

	left := theme.FamilyLabel.Render("  " + group.Label)

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(wordCounter(p) + "  ")

	infoLine := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right); pad > 0 {
		infoLine += strings.Repeat(" ", pad) + right
	}

	bar := components.NewProgressBar(p.Percentage, true, max(width-4, 10)).View()

	return infoLine + "\n  " + bar
}

// renderIntro announces a new word family.
func renderIntro(group catalog.Group) string {
	tag := theme.IntroTag.Render(components.BigWord("", "-"+group.Tag))

	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("New word family")

	return components.ArcadeCard("", tag+"\n\n"+sub, 40)
}

// renderWord shows the current word with its onset highlighted.
func (s *SessionScreen) renderWord() string {
	item, ok := s.machine.CurrentItem()
	if !ok {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("(empty family)")
	}
	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(tapHint(sess.CanGoPrevious(s.machine.State())))
	return components.BigWord(item.Primary, item.Secondary) + "\n\n\n" + hint
}

func tapHint(canGoBack bool) string {
	if canGoBack {
		return "◂ click left · click right ▸"
	}
	return "click right ▸"
}
