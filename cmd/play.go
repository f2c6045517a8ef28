package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wordwise-play/wordwise/internal/catalog"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a session straight away with the given word families",
	Example: `  wordwise play --groups at,an
  wordwise play -g ight -g ack`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetStringSlice("groups")
		if len(raw) == 0 {
			return fmt.Errorf("no word families given")
		}
		return runApp(cmd, raw)
	},
}

func init() {
	playCmd.Flags().StringSliceP("groups", "g", nil, "Word family ids to practice, in order (see 'wordwise groups')")
	_ = playCmd.MarkFlagRequired("groups")
}

// parseGroups normalizes raw ids, drops duplicates and checks every id
// against the catalog. Unknown ids produce an error with a suggestion
// when a close match exists.
func parseGroups(cat catalog.Catalog, raw []string, maxGroups int) ([]catalog.GroupID, error) {
	var ids []catalog.GroupID
	seen := make(map[catalog.GroupID]bool)
	for _, r := range raw {
		id := catalog.NormalizeID(r)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no word families given")
	}

	_, unknown := catalog.Resolve(cat, ids)
	if len(unknown) > 0 {
		msgs := make([]string, 0, len(unknown))
		for _, id := range unknown {
			if s, ok := catalog.Suggest(cat, id); ok {
				msgs = append(msgs, fmt.Sprintf("%q (did you mean %q?)", id, s))
			} else {
				msgs = append(msgs, fmt.Sprintf("%q", id))
			}
		}
		return nil, fmt.Errorf("%w: %s", catalog.ErrUnknownGroup, strings.Join(msgs, ", "))
	}

	if maxGroups > 0 && len(ids) > maxGroups {
		return nil, fmt.Errorf("too many word families: %d given, at most %d allowed", len(ids), maxGroups)
	}
	return ids, nil
}
