// Package session implements the screen that walks through a running
// word-family session.
package session

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/wordwise-play/wordwise/internal/router"
	"github.com/wordwise-play/wordwise/internal/screen"
	sess "github.com/wordwise-play/wordwise/internal/session"
	"github.com/wordwise-play/wordwise/internal/ui/layout"
)

// tapZone is the fraction of the width on each side that acts as a
// previous/next tap target.
const tapZone = 0.4

type keyMap struct {
	Next, Previous, Quit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:     key.NewBinding(key.WithKeys("right", "space", "l", "enter"), key.WithHelp("→/Space", "next")),
		Previous: key.NewBinding(key.WithKeys("left", "h", "backspace"), key.WithHelp("←", "back")),
		Quit:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "end session")),
	}
}

// SessionScreen implements screen.Screen for the active session.
type SessionScreen struct {
	machine *sess.Machine
	nav     screen.Navigator
	keys    keyMap
	width   int
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)

// New creates a SessionScreen driving m. The session is expected to be
// started already; with no groups selected the screen sends the user to setup.
func New(m *sess.Machine, nav screen.Navigator) *SessionScreen {
	return &SessionScreen{
		machine: m,
		nav:     nav,
		keys:    defaultKeys(),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	if !s.machine.State().HasGroups() {
		return s.replaceWith(s.nav.Setup())
	}
	return nil
}

func (s *SessionScreen) Title() string {
	return "Session"
}

func (s *SessionScreen) Status() string {
	if s.machine.State().SkipIntros {
		return "intros off"
	}
	return ""
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	s.keys.Previous.SetEnabled(sess.CanGoPrevious(s.machine.State()))
	return layout.HintsFor(s.keys.Previous, s.keys.Next, s.keys.Quit)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		return s, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, s.keys.Next):
			return s, s.dispatch(sess.NextItem{})
		case key.Matches(msg, s.keys.Previous):
			return s, s.dispatch(sess.PreviousItem{})
		case key.Matches(msg, s.keys.Quit):
			s.machine.Dispatch(sess.EndSession{})
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}

	case tea.MouseReleaseMsg:
		return s, s.handleClick(msg.Mouse())
	}

	return s, nil
}

// handleClick maps a click to navigation: left zone goes back, right zone
// goes forward, the middle does nothing.
func (s *SessionScreen) handleClick(m tea.Mouse) tea.Cmd {
	if s.width <= 0 || m.Button != tea.MouseLeft {
		return nil
	}
	x := float64(m.X)
	w := float64(s.width)

	switch {
	case x < w*tapZone:
		if sess.CanGoPrevious(s.machine.State()) {
			return s.dispatch(sess.PreviousItem{})
		}
	case x >= w*(1-tapZone):
		return s.dispatch(sess.NextItem{})
	}
	return nil
}

// dispatch applies a navigation action and moves to the summary once the
// session has run to completion.
func (s *SessionScreen) dispatch(a sess.Action) tea.Cmd {
	if !s.machine.State().IsActive {
		return nil
	}
	st := s.machine.Dispatch(a)
	if sess.Completed(st) {
		return s.replaceWith(s.nav.Summary())
	}
	return nil
}

func (s *SessionScreen) replaceWith(next screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// wordCounter renders "Word n of N".
func wordCounter(p sess.Progress) string {
	return fmt.Sprintf("Word %d of %d", p.Current, p.Total)
}
