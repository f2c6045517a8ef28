package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wordwise-play/wordwise/internal/catalog"
)

// Machine owns the state of one session and applies actions to it.
// It is meant to be driven from a single goroutine (the UI loop).
type Machine struct {
	reducer *Reducer
	catalog catalog.Catalog
	state   State
	logger  *zap.Logger

	// attemptID correlates log lines for one StartSession..completion run.
	attemptID string
}

// NewMachine creates a Machine with a pristine state. The skip-intros
// preference is read from prefs once, here.
func NewMachine(ctx context.Context, cat catalog.Catalog, prefs PreferenceStore, opts ...Option) *Machine {
	r := NewReducer(cat, prefs, opts...)
	return &Machine{
		reducer: r,
		catalog: cat,
		state:   InitialState(r.loadSkipIntros(ctx)),
		logger:  r.logger,
	}
}

// Dispatch applies a and returns the new state.
func (m *Machine) Dispatch(a Action) State {
	prev := m.state
	m.state = m.reducer.Apply(prev, a)

	switch a.(type) {
	case StartSession:
		m.attemptID = uuid.NewString()
		m.logger.Info("session started",
			zap.String("session_id", m.attemptID),
			zap.Strings("groups", groupStrings(m.state.SelectedGroups)),
			zap.Int("items", ProgressOf(m.state).Total),
			zap.Bool("skip_intros", m.state.SkipIntros))
	case ResetSession:
		m.attemptID = ""
	}

	if prev.IsActive && !m.state.IsActive {
		m.logger.Info("session ended",
			zap.String("session_id", m.attemptID),
			zap.String("cause", actionName(a)),
			zap.Int("items_viewed", m.state.ItemsViewed),
			zap.Duration("elapsed", elapsedSince(m.state.StartTime, m.reducer.now())))
	}

	m.logger.Debug("action applied",
		zap.String("session_id", m.attemptID),
		zap.String("action", actionName(a)),
		zap.Int("group_index", m.state.GroupIndex),
		zap.Int("item_index", m.state.ItemIndex),
		zap.Bool("showing_intro", m.state.ShowingIntro))

	return m.state
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// CurrentItem returns the item at the current position.
func (m *Machine) CurrentItem() (SessionItem, bool) {
	return CurrentItem(m.state)
}

// Progress returns the current progress.
func (m *Machine) Progress() Progress {
	return ProgressOf(m.state)
}

// Catalog returns the catalog groups are drawn from.
func (m *Machine) Catalog() catalog.Catalog {
	return m.catalog
}

// Summary summarizes the session as of now.
func (m *Machine) Summary() *Summary {
	return BuildSummary(m.state, m.catalog, m.reducer.now())
}

func groupStrings(ids []catalog.GroupID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

// elapsedSince returns now-start, or zero if start is unset.
func elapsedSince(start, now time.Time) time.Duration {
	if start.IsZero() || now.Before(start) {
		return 0
	}
	return now.Sub(start)
}
