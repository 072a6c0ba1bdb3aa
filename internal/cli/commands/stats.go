package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sky-xo/treediff/internal/difftree"
	"github.com/sky-xo/treediff/internal/document"

	"github.com/spf13/cobra"
)

var (
	statsFormat string
	statsJSON   bool
)

func NewStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <left> <right>",
		Short: "Print difference counts without opening the viewer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args[0], args[1], statsFormat, statsJSON)
		},
	}
	cmd.Flags().StringVarP(&statsFormat, "format", "f", "auto", "Input format: auto, json or yaml")
	cmd.Flags().BoolVar(&statsJSON, "json", false, "Emit machine-readable output")
	return cmd
}

func runStats(leftPath, rightPath, format string, asJSON bool) error {
	cfg := loadConfig()

	leftText, err := os.ReadFile(leftPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", leftPath, err)
	}
	rightText, err := os.ReadFile(rightPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", rightPath, err)
	}

	left := document.Parse(string(leftText), resolveFormat(format, leftPath, cfg))
	right := document.Parse(string(rightText), resolveFormat(format, rightPath, cfg))
	comparison := difftree.Evaluate(left, right)

	if asJSON {
		out := struct {
			Outcome string `json:"outcome"`
			Added   int    `json:"added"`
			Removed int    `json:"removed"`
			Changed int    `json:"changed"`
		}{
			Outcome: comparison.Outcome.String(),
			Added:   comparison.Summary.Added,
			Removed: comparison.Summary.Removed,
			Changed: comparison.Summary.Changed,
		}
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(out)
	}

	return printComparison(leftPath, rightPath, comparison)
}
