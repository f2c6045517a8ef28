package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wordwise-play/wordwise/internal/session"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Inspect and change saved preferences",
}

var prefsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all saved preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		prefs, err := d.prefs.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list preferences: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(prefs) == 0 {
			fmt.Fprintln(out, "No preferences saved.")
			return nil
		}
		fmt.Fprintf(out, "%-16s  %-10s  %s\n", "Key", "Value", "Updated")
		for _, p := range prefs {
			fmt.Fprintf(out, "%-16s  %-10s  %s\n",
				p.Key, p.Value, p.UpdatedAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var prefsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a saved preference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		v, ok, err := d.prefs.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("get preference: %w", err)
		}
		if !ok {
			return fmt.Errorf("preference %q is not set", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}

var prefsSetCmd = &cobra.Command{
	Use:     "set <key> <value>",
	Short:   "Save a preference",
	Example: "  wordwise prefs set skip_intros true",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		value, err := normalizePref(key, value)
		if err != nil {
			return err
		}

		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.prefs.Set(cmd.Context(), key, value); err != nil {
			return fmt.Errorf("set preference: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
		return nil
	},
}

// normalizePref validates values for keys the app understands. Unknown
// keys are stored as given.
func normalizePref(key, value string) (string, error) {
	switch key {
	case session.SkipIntrosKey:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return "", fmt.Errorf("%s must be true or false, got %q", key, value)
		}
		return strconv.FormatBool(b), nil
	default:
		return value, nil
	}
}

func init() {
	prefsCmd.AddCommand(prefsListCmd)
	prefsCmd.AddCommand(prefsGetCmd)
	prefsCmd.AddCommand(prefsSetCmd)
}
