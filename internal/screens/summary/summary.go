package summary

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wordwise-play/wordwise/internal/router"
	"github.com/wordwise-play/wordwise/internal/screen"
	"github.com/wordwise-play/wordwise/internal/session"
	"github.com/wordwise-play/wordwise/internal/ui/components"
	"github.com/wordwise-play/wordwise/internal/ui/layout"
	"github.com/wordwise-play/wordwise/internal/ui/theme"
)

// SummaryScreen displays the session summary and what to do next.
type SummaryScreen struct {
	machine *session.Machine
	nav     screen.Navigator
	summary *session.Summary
	menu    components.Menu
	exit    key.Binding
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for the session m has just finished.
func New(m *session.Machine, nav screen.Navigator) *SummaryScreen {
	s := &SummaryScreen{
		machine: m,
		nav:     nav,
		summary: m.Summary(),
		exit:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "home")),
	}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "New Session", Action: s.newSession},
		{Label: "Same Groups Again", Action: s.sameAgain, Disabled: len(s.summary.GroupIDs) == 0},
		{Label: "Exit", Action: s.exitHome},
	})
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFor(s.menu.Keys.Up, s.menu.Keys.Down, s.menu.Keys.Select, s.exit)
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, s.exit) {
		return s, s.exitHome()
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// newSession clears the session and goes back to picking families.
func (s *SummaryScreen) newSession() tea.Cmd {
	s.machine.Dispatch(session.ResetSession{})
	next := s.nav.Setup()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// sameAgain reshuffles the same families and starts straight away.
func (s *SummaryScreen) sameAgain() tea.Cmd {
	s.machine.Dispatch(session.SetGroups{IDs: s.summary.GroupIDs})
	s.machine.Dispatch(session.StartSession{})
	next := s.nav.Session()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *SummaryScreen) exitHome() tea.Cmd {
	s.machine.Dispatch(session.ResetSession{})
	return func() tea.Msg { return router.PopToRootMsg{} }
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render("★ Great job! ★"))
	b.WriteString("\n\n")

	valueStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	stat := func(value, label string) string {
		return valueStyle.Render(value) + "\n" + labelStyle.Render(label)
	}

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		stat(wordsValue(sum), "words reviewed"),
		"      ",
		stat(fmt.Sprintf("%d", sum.GroupsCovered), familiesLabel(sum.GroupsCovered)),
		"      ",
		stat(session.FormatElapsed(sum.Elapsed), "time spent"),
	)

	var labels []string
	for _, g := range sum.Groups {
		labels = append(labels, g.Label)
	}
	card := stats
	if len(labels) > 0 {
		card += "\n\n" + components.Badges(labels, cw-8)
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Render(components.ArcadeCard("Session complete", card, cw)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Render(s.menu.ButtonView(24)))

	return b.String()
}

// wordsValue shows viewed out of total when the total is known.
func wordsValue(sum *session.Summary) string {
	if sum.TotalItems == 0 {
		return fmt.Sprintf("%d", sum.ItemsViewed)
	}
	return fmt.Sprintf("%d of %d", sum.ItemsViewed, sum.TotalItems)
}

func familiesLabel(n int) string {
	if n == 1 {
		return "family"
	}
	return "families"
}
