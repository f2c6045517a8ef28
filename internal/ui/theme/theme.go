// Package theme holds the colours and shared styles of the TUI.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette. Bright on a dark navy background, readable from across a classroom.
var (
	Primary   = lipgloss.Color("#8B5CF6") // purple
	Secondary = lipgloss.Color("#14B8A6") // teal
	Accent    = lipgloss.Color("#F97316") // orange
	Success   = lipgloss.Color("#22C55E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0F172A")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// Word parts. The onset carries the highlight; the rime is what stays
// constant across a family.
var (
	OnsetColor = Accent
	RimeColor  = Text

	Onset = lipgloss.NewStyle().Foreground(OnsetColor).Bold(true).Underline(true)
	Rime  = lipgloss.NewStyle().Foreground(RimeColor).Bold(true)

	// IntroTag draws the "-at" style family tag on intro cards.
	IntroTag = lipgloss.NewStyle().Foreground(ArcadeYellow).Bold(true)

	// FamilyLabel is the group name in the session HUD.
	FamilyLabel = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
)

var (
	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	// Notice is a one-line message after a rejected action.
	Notice = lipgloss.NewStyle().
		Foreground(Accent).
		Align(lipgloss.Center)
)

// Selection states
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Checked = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)
)

var (
	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)

	Badge = lipgloss.NewStyle().
		Foreground(BgDark).
		Background(ArcadeCyan).
		Bold(true).
		Padding(0, 1)
)
