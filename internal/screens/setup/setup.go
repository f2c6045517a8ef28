// Package setup implements the screen where word families are chosen
// before a session starts.
package setup

import (
	"fmt"
	"slices"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wordwise-play/wordwise/internal/catalog"
	"github.com/wordwise-play/wordwise/internal/router"
	"github.com/wordwise-play/wordwise/internal/screen"
	"github.com/wordwise-play/wordwise/internal/session"
	"github.com/wordwise-play/wordwise/internal/ui/layout"
	"github.com/wordwise-play/wordwise/internal/ui/theme"
)

// previewCount is how many example words are shown per family.
const previewCount = 4

type keyMap struct {
	Up, Down, Toggle, Intros, Begin, Back key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "move")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Toggle: key.NewBinding(key.WithKeys("space", "enter"), key.WithHelp("Space", "pick")),
		Intros: key.NewBinding(key.WithKeys("i"), key.WithHelp("I", "intros")),
		Begin:  key.NewBinding(key.WithKeys("b"), key.WithHelp("B", "begin")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "back")),
	}
}

// SetupScreen lets the user pick word families and toggle intros.
type SetupScreen struct {
	machine  *session.Machine
	nav      screen.Navigator
	groups   []catalog.Group
	selected []catalog.GroupID // in the order they were picked
	cursor   int
	max      int
	keys     keyMap
	notice   string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)
var _ screen.StatusProvider = (*SetupScreen)(nil)

// New creates a SetupScreen. Groups selected in the machine's previous
// session start out picked.
func New(m *session.Machine, nav screen.Navigator, maxGroups int) *SetupScreen {
	if maxGroups < 1 {
		maxGroups = 1
	}
	s := &SetupScreen{
		machine: m,
		nav:     nav,
		max:     maxGroups,
		keys:    defaultKeys(),
	}
	if cat := m.Catalog(); cat != nil {
		s.groups = cat.List()
	}
	for _, id := range m.State().SelectedGroups {
		if len(s.selected) < s.max && s.known(id) && !slices.Contains(s.selected, id) {
			s.selected = append(s.selected, id)
		}
	}
	return s
}

func (s *SetupScreen) known(id catalog.GroupID) bool {
	return slices.ContainsFunc(s.groups, func(g catalog.Group) bool { return g.ID == id })
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "Choose Word Families"
}

func (s *SetupScreen) Status() string {
	return fmt.Sprintf("%d/%d picked", len(s.selected), s.max)
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	s.keys.Begin.SetEnabled(len(s.selected) > 0)
	return layout.HintsFor(s.keys.Up, s.keys.Toggle, s.keys.Intros, s.keys.Begin, s.keys.Back)
}

// Selected returns the picked group ids in pick order.
func (s *SetupScreen) Selected() []catalog.GroupID {
	return slices.Clone(s.selected)
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	s.notice = ""

	switch {
	case key.Matches(kmsg, s.keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(kmsg, s.keys.Down):
		if s.cursor < len(s.groups)-1 {
			s.cursor++
		}
	case key.Matches(kmsg, s.keys.Toggle):
		s.toggle()
	case key.Matches(kmsg, s.keys.Intros):
		s.machine.Dispatch(session.SetSkipIntros{Skip: !s.machine.State().SkipIntros})
	case key.Matches(kmsg, s.keys.Begin):
		return s, s.begin()
	case key.Matches(kmsg, s.keys.Back):
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SetupScreen) toggle() {
	if s.cursor < 0 || s.cursor >= len(s.groups) {
		return
	}
	id := s.groups[s.cursor].ID
	if i := slices.Index(s.selected, id); i >= 0 {
		s.selected = slices.Delete(s.selected, i, i+1)
		return
	}
	if len(s.selected) >= s.max {
		s.notice = fmt.Sprintf("You can pick up to %d families.", s.max)
		return
	}
	s.selected = append(s.selected, id)
}

func (s *SetupScreen) begin() tea.Cmd {
	if len(s.selected) == 0 {
		s.notice = "Pick at least one family to begin."
		return nil
	}
	s.machine.Dispatch(session.SetGroups{IDs: s.Selected()})
	s.machine.Dispatch(session.StartSession{})
	next := s.nav.Session()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("Pick up to %d word families, then press B to begin.", s.max)))
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var rows []string
	for i, g := range s.groups {
		box := "[ ]"
		if slices.Contains(s.selected, g.ID) {
			box = theme.Checked.Render("[✓]")
		}
		cursor := "  "
		if i == s.cursor {
			cursor = theme.Selected.Render("▸ ")
		}

		words := make([]string, 0, previewCount)
		for _, it := range g.Preview(previewCount) {
			words = append(words, it.Text())
		}

		row := fmt.Sprintf("%s%s %s %s  %s",
			cursor, box,
			labelStyle.Render(fmt.Sprintf("%-14s", g.Label)),
			dim.Render(fmt.Sprintf("%2d words", len(g.Items))),
			dim.Render(strings.Join(words, ", ")))
		rows = append(rows, row)
	}
	list := strings.Join(rows, "\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
		lipgloss.NewStyle().Align(lipgloss.Left).Render(list)))
	b.WriteString("\n\n")

	intros := "on"
	if s.machine.State().SkipIntros {
		intros = "off"
	}
	b.WriteString(theme.Subtitle.Width(width).Render("Family intros: " + intros + "  (press I to toggle)"))

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Notice.Width(width).Render(s.notice))
	}

	return b.String()
}
