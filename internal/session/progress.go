package session

// Progress is the position of the current screen within the whole session.
type Progress struct {
	Current    int
	Total      int
	Percentage float64 // 0..100
}

// ProgressOf computes progress for s. An intro screen counts as sitting just
// before the group's first item.
func ProgressOf(s State) Progress {
	var total, prior int
	for i, g := range s.Groups {
		total += len(g)
		if i < s.GroupIndex {
			prior += len(g)
		}
	}

	offset := 0
	if !s.ShowingIntro {
		offset = s.ItemIndex + 1
	}
	current := min(prior+offset, total)

	var pct float64
	if total > 0 {
		pct = 100 * float64(current) / float64(total)
	}

	return Progress{
		Current:    current,
		Total:      total,
		Percentage: pct,
	}
}

// CurrentItem returns the item at the current position, or false when the
// indices do not point at one. It ignores ShowingIntro.
func CurrentItem(s State) (SessionItem, bool) {
	if !s.HasGroups() {
		return SessionItem{}, false
	}
	g := s.Groups[s.GroupIndex]
	if s.ItemIndex < 0 || s.ItemIndex >= len(g) {
		return SessionItem{}, false
	}
	return g[s.ItemIndex], true
}

// Completed reports whether a session ran to its end (or was ended) after
// at least one item was viewed.
func Completed(s State) bool {
	return !s.IsActive && s.ItemsViewed > 0
}

// CanGoPrevious reports whether PreviousItem would move anywhere.
func CanGoPrevious(s State) bool {
	p := previous(s)
	return p.GroupIndex != s.GroupIndex ||
		p.ItemIndex != s.ItemIndex ||
		p.ShowingIntro != s.ShowingIntro
}
