package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/wordwise-play/wordwise/internal/router"
	"github.com/wordwise-play/wordwise/internal/screen"
	"github.com/wordwise-play/wordwise/internal/ui/components"
	"github.com/wordwise-play/wordwise/internal/ui/layout"
)

// HomeScreen is the landing screen of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen. START opens the setup screen built by nav.
func New(nav screen.Navigator) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: nav.Setup()}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 34 || width < 76

	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderTagline(cw),
		renderFeatures(cw, compact),
		renderArcadeMenu(h.menu, cw),
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return append(layout.HintsFor(h.menu.Keys.Up, h.menu.Keys.Down, h.menu.Keys.Select),
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}
