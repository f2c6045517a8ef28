package summary

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordwise-play/wordwise/internal/catalog"
	"github.com/wordwise-play/wordwise/internal/router"
	"github.com/wordwise-play/wordwise/internal/screen"
	"github.com/wordwise-play/wordwise/internal/session"
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

// finishedMachine runs a full session over "at" (9 words) with a clock
// that advances 7 seconds per read.
func finishedMachine(t *testing.T) *session.Machine {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		now = now.Add(7 * time.Second)
		return now
	}
	m := session.NewMachine(context.Background(), cat, nil, session.WithClock(clock))
	m.Dispatch(session.SetSkipIntros{Skip: true})
	m.Dispatch(session.SetGroups{IDs: []catalog.GroupID{"at"}})
	m.Dispatch(session.StartSession{})
	for m.State().IsActive {
		m.Dispatch(session.NextItem{})
	}
	return m
}

func down() tea.KeyPressMsg  { return tea.KeyPressMsg{Code: tea.KeyDown} }
func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }

func TestViewShowsStats(t *testing.T) {
	s := New(finishedMachine(t), stubNav{})

	view := s.View(100, 30)
	assert.Contains(t, view, "Great job!")
	assert.Contains(t, view, "words reviewed")
	assert.Contains(t, view, "9 of 9")
	assert.Contains(t, view, "-at family")
	assert.Contains(t, view, "1")
	assert.Equal(t, 9, s.summary.ItemsViewed)
	assert.Equal(t, 9, s.summary.TotalItems)
	assert.Equal(t, 1, s.summary.GroupsCovered)
	assert.Positive(t, s.summary.Elapsed)
}

func TestNewSessionResetsAndGoesToSetup(t *testing.T) {
	m := finishedMachine(t)
	s := New(m, stubNav{})

	_, cmd := s.Update(enter())
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "setup", msg.Screen.Title())

	st := m.State()
	assert.Empty(t, st.SelectedGroups)
	assert.Zero(t, st.ItemsViewed)
	assert.True(t, st.SkipIntros, "preference survives reset")
}

func TestSameGroupsAgainRestarts(t *testing.T) {
	m := finishedMachine(t)
	s := New(m, stubNav{})

	s.Update(down())
	_, cmd := s.Update(enter())
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "session", msg.Screen.Title())

	st := m.State()
	assert.True(t, st.IsActive)
	assert.Equal(t, []catalog.GroupID{"at"}, st.SelectedGroups)
	assert.Zero(t, st.ItemsViewed)
	assert.Len(t, st.Groups[0], 9)
}

func TestExitResetsAndPopsToRoot(t *testing.T) {
	for name, keys := range map[string][]tea.KeyPressMsg{
		"menu": {down(), down(), enter()},
		"esc":  {{Code: tea.KeyEscape}},
	} {
		t.Run(name, func(t *testing.T) {
			m := finishedMachine(t)
			s := New(m, stubNav{})

			var cmd tea.Cmd
			for _, k := range keys {
				_, cmd = s.Update(k)
			}
			require.NotNil(t, cmd)
			_, ok := cmd().(router.PopToRootMsg)
			assert.True(t, ok)
			assert.Empty(t, m.State().SelectedGroups)
		})
	}
}

func TestSameGroupsDisabledWithoutGroups(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	m := session.NewMachine(context.Background(), cat, nil)

	s := New(m, stubNav{})
	assert.True(t, s.menu.Items[1].Disabled)

	// Down skips the disabled entry and lands on Exit.
	s.Update(down())
	assert.Equal(t, 2, s.menu.Selected)
}

func TestWordsValue(t *testing.T) {
	assert.Equal(t, "4 of 9", wordsValue(&session.Summary{ItemsViewed: 4, TotalItems: 9}))
	assert.Equal(t, "0", wordsValue(&session.Summary{}))
}

func TestFamiliesLabel(t *testing.T) {
	assert.Equal(t, "family", familiesLabel(1))
	assert.Equal(t, "families", familiesLabel(3))
}
