package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List the available word families",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cat, err := loadCatalog(cfg)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		out := cmd.OutOrStdout()
		groups := cat.List()

		fmt.Fprintf(out, "%-6s  %-16s  %5s  %s\n", "ID", "Label", "Words", "Preview")
		fmt.Fprintln(out, strings.Repeat("─", 60))

		for _, g := range groups {
			preview := make([]string, 0, 4)
			for _, it := range g.Preview(4) {
				preview = append(preview, it.Text())
			}
			fmt.Fprintf(out, "%-6s  %-16s  %5d  %s\n",
				g.ID, g.Label, len(g.Items), strings.Join(preview, ", "))
		}

		fmt.Fprintf(out, "\n%d word families\n", len(groups))
		return nil
	},
}
