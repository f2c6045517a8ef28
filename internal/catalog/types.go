package catalog

// GroupID is the opaque key of a word group (e.g. "at").
type GroupID string

// Item is a single practice word split into its two displayed parts.
type Item struct {
	Primary   string `yaml:"primary" json:"primary"`     // Onset, e.g. "ch"
	Secondary string `yaml:"secondary" json:"secondary"` // Rime, e.g. "at"
}

// Text returns the full word.
func (i Item) Text() string {
	return i.Primary + i.Secondary
}

// Group is a catalog record: a labelled, ordered list of items.
type Group struct {
	ID    GroupID `yaml:"id" json:"id"`
	Label string  `yaml:"label" json:"label"`
	Tag   string  `yaml:"tag" json:"tag"`
	Items []Item  `yaml:"items" json:"items"`
}

// Preview returns up to n leading items for display.
func (g Group) Preview(n int) []Item {
	if n > len(g.Items) {
		n = len(g.Items)
	}
	if n < 0 {
		n = 0
	}
	return g.Items[:n]
}
