package cli

import (
	"os"

	"github.com/sky-xo/treediff/internal/cli/commands"

	"github.com/spf13/cobra"
)

var (
	rootFormat    string
	rootWatch     bool
	rootNoHistory bool
)

func Execute() {
	rootCmd := &cobra.Command{
		Use:   "treediff <left> <right>",
		Short: "Structural diff viewer for JSON and YAML documents",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunCompare(args[0], args[1], commands.CompareOptions{
				Format:    rootFormat,
				Watch:     rootWatch,
				NoHistory: rootNoHistory,
			})
		},
	}
	rootCmd.Flags().StringVarP(&rootFormat, "format", "f", "auto", "Input format: auto, json or yaml")
	rootCmd.Flags().BoolVarP(&rootWatch, "watch", "w", false, "Re-compare when either file changes")
	rootCmd.Flags().BoolVar(&rootNoHistory, "no-history", false, "Skip recording this comparison")

	// Add commands
	rootCmd.AddCommand(commands.NewFmtCmd())
	rootCmd.AddCommand(commands.NewStatsCmd())
	rootCmd.AddCommand(commands.NewHistoryCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
