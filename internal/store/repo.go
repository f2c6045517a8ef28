package store

import (
	"context"
	"time"
)

// Preference is a single stored key/value pair.
type Preference struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// PreferenceRepo manages small user preferences such as skip_intros.
// It satisfies session.PreferenceStore.
type PreferenceRepo interface {
	// Get returns the value stored under key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// List returns all preferences ordered by key.
	List(ctx context.Context) ([]Preference, error)

	// Reset deletes every stored preference.
	Reset(ctx context.Context) error
}
