package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "casesim",
	Short: "Elevated mood case simulator",
	Long: "CaseSim — psychiatry case simulator for MBBS / OSCE practice. Reveal a " +
		"vignette section by section and pick the most likely diagnosis.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for reproducible case selection (0 picks randomly)")
	rootCmd.PersistentFlags().String("log-file", "", "Write debug logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(casesCmd)
	rootCmd.AddCommand(versionCmd)
}
