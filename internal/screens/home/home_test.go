package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/wordwise-play/wordwise/internal/router"
	"github.com/wordwise-play/wordwise/internal/screen"
)

type stubScreen struct{ title string }

func (s *stubScreen) Init() tea.Cmd                            { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

type stubNav struct{}

func (stubNav) Home() screen.Screen    { return &stubScreen{"home"} }
func (stubNav) Setup() screen.Screen   { return &stubScreen{"setup"} }
func (stubNav) Session() screen.Screen { return &stubScreen{"session"} }
func (stubNav) Summary() screen.Screen { return &stubScreen{"summary"} }

func TestStartPushesSetup(t *testing.T) {
	h := New(stubNav{})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from START")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if push.Screen.Title() != "setup" {
		t.Errorf("pushed %q, want setup", push.Screen.Title())
	}
}

func TestExitQuits(t *testing.T) {
	h := New(stubNav{})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from EXIT")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestViewRendersInBothSizes(t *testing.T) {
	h := New(stubNav{})
	if h.View(120, 40) == "" {
		t.Error("expected full view")
	}
	if h.View(60, 14) == "" {
		t.Error("expected compact view")
	}
}
