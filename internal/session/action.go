package session

import "github.com/wordwise-play/wordwise/internal/catalog"

// Action is a session transition request. The set of variants is closed.
type Action interface {
	isAction()
}

// SetGroups selects the groups for the next session and materializes
// a freshly shuffled item list for each.
type SetGroups struct {
	IDs []catalog.GroupID
}

// StartSession begins traversal at the first group.
type StartSession struct{}

// NextItem moves forward one screen.
type NextItem struct{}

// PreviousItem moves back one screen.
type PreviousItem struct{}

// EndSession stops navigation without touching anything else.
type EndSession struct{}

// ResetSession discards all session data except the skip-intros preference.
type ResetSession struct{}

// SetSkipIntros changes and persists the skip-intros preference.
type SetSkipIntros struct {
	Skip bool
}

func (SetGroups) isAction()     {}
func (StartSession) isAction()  {}
func (NextItem) isAction()      {}
func (PreviousItem) isAction()  {}
func (EndSession) isAction()    {}
func (ResetSession) isAction()  {}
func (SetSkipIntros) isAction() {}

// actionName returns a stable name for logging.
func actionName(a Action) string {
	switch a.(type) {
	case SetGroups:
		return "set_groups"
	case StartSession:
		return "start_session"
	case NextItem:
		return "next_item"
	case PreviousItem:
		return "previous_item"
	case EndSession:
		return "end_session"
	case ResetSession:
		return "reset_session"
	case SetSkipIntros:
		return "set_skip_intros"
	default:
		return "unknown"
	}
}
