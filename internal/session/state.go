package session

import (
	"time"

	"github.com/wordwise-play/wordwise/internal/catalog"
)

// SessionItem is a catalog item tagged with the group it was drawn from.
type SessionItem struct {
	catalog.Item
	GroupID catalog.GroupID
}

// State is the full session aggregate. It only changes through Reducer.Apply;
// every transition returns a new value and leaves the old one intact.
type State struct {
	// SelectedGroups is the traversal order chosen for this session.
	SelectedGroups []catalog.GroupID

	// GroupIndex indexes SelectedGroups and Groups.
	GroupIndex int

	// ItemIndex indexes the current group's shuffled items.
	ItemIndex int

	// Groups holds one shuffled item list per selected group, parallel to
	// SelectedGroups. An id missing from the catalog yields an empty list.
	Groups [][]SessionItem

	// StartTime is zero until the session starts.
	StartTime time.Time

	// ItemsViewed counts forward moves that crossed an item boundary.
	ItemsViewed int

	// IsActive is true while navigation is permitted.
	IsActive bool

	// ShowingIntro is true while the group introduction screen is up.
	ShowingIntro bool

	// SkipIntros is the persisted user preference. It survives ResetSession.
	SkipIntros bool
}

// InitialState returns a pristine session carrying only the skip-intros preference.
func InitialState(skipIntros bool) State {
	return State{SkipIntros: skipIntros}
}

// HasGroups reports whether GroupIndex points at a materialized group.
func (s State) HasGroups() bool {
	return s.GroupIndex >= 0 && s.GroupIndex < len(s.Groups)
}

// CurrentGroupID returns the id of the group being traversed.
func (s State) CurrentGroupID() (catalog.GroupID, bool) {
	if s.GroupIndex < 0 || s.GroupIndex >= len(s.SelectedGroups) {
		return "", false
	}
	return s.SelectedGroups[s.GroupIndex], true
}
