package app

import (
	"github.com/wordwise-play/wordwise/internal/screen"
	"github.com/wordwise-play/wordwise/internal/screens/home"
	sessionscreen "github.com/wordwise-play/wordwise/internal/screens/session"
	"github.com/wordwise-play/wordwise/internal/screens/setup"
	"github.com/wordwise-play/wordwise/internal/screens/summary"
	"github.com/wordwise-play/wordwise/internal/session"
)

// Options holds the dependencies the TUI is built from.
type Options struct {
	// Machine owns the session state shared by every screen.
	Machine *session.Machine

	// MaxGroups caps the number of families on the setup screen.
	MaxGroups int
}

// navigator builds screens on demand for screen.Navigator.
type navigator struct {
	opts Options
}

var _ screen.Navigator = (*navigator)(nil)

func newNavigator(opts Options) *navigator {
	if opts.MaxGroups < 1 {
		opts.MaxGroups = 4
	}
	return &navigator{opts: opts}
}

func (n *navigator) Home() screen.Screen {
	return home.New(n)
}

func (n *navigator) Setup() screen.Screen {
	return setup.New(n.opts.Machine, n, n.opts.MaxGroups)
}

func (n *navigator) Session() screen.Screen {
	return sessionscreen.New(n.opts.Machine, n)
}

func (n *navigator) Summary() screen.Screen {
	return summary.New(n.opts.Machine, n)
}
