package session

import (
	"context"
	"slices"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/wordwise-play/wordwise/internal/catalog"
)

// SkipIntrosKey is the preference key holding the skip-intros flag.
const SkipIntrosKey = "skip_intros"

// prefTimeout bounds a single preference read or write.
const prefTimeout = 2 * time.Second

// PreferenceStore persists small string preferences across restarts.
type PreferenceStore interface {
	// Get returns the stored value and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// Reducer applies actions to session state. Apply never fails: missing
// groups, empty sessions and boundary moves all resolve to a valid state.
type Reducer struct {
	catalog catalog.Catalog
	prefs   PreferenceStore
	shuffle func([]catalog.Item) []catalog.Item
	now     func() time.Time
	logger  *zap.Logger
}

// Option configures a Reducer.
type Option func(*Reducer)

// WithShuffler replaces the item shuffler. Tests use it to get a fixed order.
func WithShuffler(fn func([]catalog.Item) []catalog.Item) Option {
	return func(r *Reducer) { r.shuffle = fn }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Reducer) { r.now = now }
}

// WithLogger sets the logger used for preference failures and lifecycle events.
func WithLogger(l *zap.Logger) Option {
	return func(r *Reducer) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewReducer creates a Reducer. cat and prefs may be nil.
func NewReducer(cat catalog.Catalog, prefs PreferenceStore, opts ...Option) *Reducer {
	r := &Reducer{
		catalog: cat,
		prefs:   prefs,
		shuffle: Shuffle[catalog.Item],
		now:     time.Now,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Apply returns the state that results from applying a to s.
func (r *Reducer) Apply(s State, a Action) State {
	switch a := a.(type) {
	case SetGroups:
		return r.setGroups(s, a.IDs)

	case StartSession:
		return start(s, r.now())

	case NextItem:
		return next(s)

	case PreviousItem:
		return previous(s)

	case EndSession:
		s.IsActive = false
		return s

	case ResetSession:
		return InitialState(s.SkipIntros)

	case SetSkipIntros:
		r.storeSkipIntros(a.Skip)
		s.SkipIntros = a.Skip
		return s
	}

	return s
}

// setGroups materializes one shuffled list per id. Indices and flags are untouched.
func (r *Reducer) setGroups(s State, ids []catalog.GroupID) State {
	s.SelectedGroups = slices.Clone(ids)
	s.Groups = make([][]SessionItem, len(ids))
	for i, id := range ids {
		s.Groups[i] = r.materialize(id)
	}
	return s
}

func (r *Reducer) materialize(id catalog.GroupID) []SessionItem {
	if r.catalog == nil {
		return []SessionItem{}
	}
	g, ok := r.catalog.Lookup(id)
	if !ok {
		r.logger.Debug("group not in catalog", zap.String("group", string(id)))
		return []SessionItem{}
	}

	shuffled := r.shuffle(g.Items)
	items := make([]SessionItem, len(shuffled))
	for i, it := range shuffled {
		items[i] = SessionItem{Item: it, GroupID: id}
	}
	return items
}

// storeSkipIntros writes the preference. Failures are logged and dropped.
func (r *Reducer) storeSkipIntros(skip bool) {
	if r.prefs == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), prefTimeout)
	defer cancel()

	if err := r.prefs.Set(ctx, SkipIntrosKey, strconv.FormatBool(skip)); err != nil {
		r.logger.Warn("failed to persist preference",
			zap.String("key", SkipIntrosKey),
			zap.Bool("value", skip),
			zap.Error(err))
	}
}

// loadSkipIntros reads the preference. Absence or failure means false.
func (r *Reducer) loadSkipIntros(ctx context.Context) bool {
	if r.prefs == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, prefTimeout)
	defer cancel()

	v, ok, err := r.prefs.Get(ctx, SkipIntrosKey)
	if err != nil {
		r.logger.Warn("failed to read preference", zap.String("key", SkipIntrosKey), zap.Error(err))
		return false
	}
	return ok && v == "true"
}

func start(s State, now time.Time) State {
	s.StartTime = now
	s.IsActive = true
	s.GroupIndex = 0
	s.ItemIndex = 0
	s.ItemsViewed = 0
	s.ShowingIntro = !s.SkipIntros
	return s
}

// next moves forward: dismiss the intro, then step through items, then
// groups, and finally mark the session complete.
func next(s State) State {
	if !s.HasGroups() {
		return s
	}

	if s.ShowingIntro {
		s.ShowingIntro = false
		return s
	}

	if s.ItemIndex < len(s.Groups[s.GroupIndex])-1 {
		s.ItemIndex++
		s.ItemsViewed++
		return s
	}

	if s.GroupIndex < len(s.Groups)-1 {
		s.GroupIndex++
		s.ItemIndex = 0
		s.ItemsViewed++
		s.ShowingIntro = !s.SkipIntros
		return s
	}

	// Last item of the last group. Indices stay put.
	s.ItemsViewed++
	s.IsActive = false
	return s
}

// previous moves back. The intro of a group sits between its first item and
// the previous group's last item; the first group's intro is a hard stop.
// ItemsViewed never decreases and IsActive never flips back on.
func previous(s State) State {
	if !s.HasGroups() {
		return s
	}

	if s.ShowingIntro {
		if s.GroupIndex > 0 {
			s.GroupIndex--
			s.ItemIndex = lastIndex(s.Groups[s.GroupIndex])
			s.ShowingIntro = false
		}
		return s
	}

	if s.ItemIndex == 0 {
		if !s.SkipIntros {
			s.ShowingIntro = true
			return s
		}
		if s.GroupIndex > 0 {
			s.GroupIndex--
			s.ItemIndex = lastIndex(s.Groups[s.GroupIndex])
		}
		return s
	}

	s.ItemIndex--
	return s
}

// lastIndex is the final valid index of items, or 0 when items is empty.
func lastIndex(items []SessionItem) int {
	if len(items) == 0 {
		return 0
	}
	return len(items) - 1
}
