package session

import (
	"fmt"
	"time"

	"github.com/wordwise-play/wordwise/internal/catalog"
)

// Summary holds the data displayed on the summary screen.
type Summary struct {
	ItemsViewed   int
	GroupsCovered int
	TotalItems    int
	Elapsed       time.Duration
	Groups        []catalog.Group // selected groups found in the catalog, in session order
	GroupIDs      []catalog.GroupID
}

// BuildSummary creates a Summary from the session state.
func BuildSummary(s State, cat catalog.Catalog, now time.Time) *Summary {
	sum := &Summary{
		ItemsViewed:   s.ItemsViewed,
		GroupsCovered: len(s.SelectedGroups),
		Elapsed:       elapsedSince(s.StartTime, now),
		GroupIDs:      append([]catalog.GroupID(nil), s.SelectedGroups...),
	}
	if cat == nil {
		return sum
	}

	sum.TotalItems = catalog.TotalItems(cat, s.SelectedGroups)
	for _, id := range s.SelectedGroups {
		if g, ok := cat.Lookup(id); ok {
			sum.Groups = append(sum.Groups, g)
		}
	}
	return sum
}

// FormatElapsed renders d as m:ss.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
