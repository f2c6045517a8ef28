package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "wordwise",
	Short:        "Word family flash cards for early readers",
	Long:         "Wordwise is a terminal app that walks young readers through rhyming word families, one word at a time.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WORDWISE_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a YAML word family catalog (overrides WORDWISE_CATALOG env var)")
	rootCmd.PersistentFlags().String("log-file", "", "Write JSON logs to this file (overrides WORDWISE_LOG_FILE env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
