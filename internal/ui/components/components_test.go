package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestProgressBarFilled(t *testing.T) {
	tests := []struct {
		percent float64
		width   int
		want    int
	}{
		{0, 10, 0},
		{50, 10, 5},
		{100, 10, 10},
		{150, 10, 10},
		{-20, 10, 0},
		{33.4, 30, 10},
	}
	for _, tt := range tests {
		p := NewProgressBar(tt.percent, false, tt.width)
		if got := p.Filled(tt.width); got != tt.want {
			t.Errorf("Filled(%v%% of %d) = %d, want %d", tt.percent, tt.width, got, tt.want)
		}
	}
}

func TestProgressBarViewWidth(t *testing.T) {
	p := NewProgressBar(40, true, 30)
	if got := lipgloss.Width(p.View()); got != 30 {
		t.Errorf("rendered width = %d, want 30", got)
	}
}

func TestBigWordSpacesLetters(t *testing.T) {
	got := BigWord("ch", "at")
	// "c  h" + "   " + "a  t"
	if w := lipgloss.Width(got); w != 4+3+4 {
		t.Errorf("width = %d, want 11", w)
	}
	if lipgloss.Width(BigWord("", "at")) != 4 {
		t.Error("empty onset should render only the rime")
	}
}

func TestBadgesWrap(t *testing.T) {
	one := Badges([]string{"-at", "-an"}, 80)
	if strings.Count(one, "\n") != 0 {
		t.Errorf("expected a single line, got %q", one)
	}
	many := Badges([]string{"-at", "-an", "-in", "-og"}, 12)
	if strings.Count(many, "\n") == 0 {
		t.Error("expected badges to wrap in a narrow width")
	}
	if Badges(nil, 10) != "" {
		t.Error("expected empty output for no badges")
	}
}

func TestMenuNavigationSkipsDisabled(t *testing.T) {
	var ran string
	m := NewMenu([]MenuItem{
		{Label: "A", Disabled: true},
		{Label: "B", Action: func() tea.Cmd { ran = "B"; return nil }},
		{Label: "C", Disabled: true},
		{Label: "D", Action: func() tea.Cmd { ran = "D"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("after down selection = %d, want 3", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("down at the end moved selection to %d", m.Selected)
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if ran != "D" {
		t.Errorf("enter ran %q, want D", ran)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	if m.Selected != 1 {
		t.Errorf("after k selection = %d, want 1", m.Selected)
	}
}

func TestMenuLabels(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "START"}, {Label: "EXIT"}})
	if got := strings.Join(m.Labels(), ","); got != "START,EXIT" {
		t.Errorf("Labels = %q", got)
	}
}

func TestProgressBarPercentClamped(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{0, "  0%"},
		{62.5, " 62%"},
		{100, "100%"},
		{140, "100%"},
	}
	for _, tt := range tests {
		got := NewProgressBar(tt.percent, true, 20).View()
		if !strings.HasSuffix(strings.TrimRight(ansi.Strip(got), " "), tt.want) {
			t.Errorf("View(%v) = %q, want suffix %q", tt.percent, ansi.Strip(got), tt.want)
		}
	}
}
