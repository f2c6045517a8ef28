package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget all saved preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.prefs.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset preferences: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Preferences cleared.")
		return nil
	},
}
