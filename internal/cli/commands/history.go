package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent comparisons",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := openDB()
			if err != nil {
				return err
			}
			defer conn.Close()

			limit := historyLimit
			if limit <= 0 {
				limit = loadConfig().HistoryLimit
			}

			comparisons, err := conn.ListComparisons(limit)
			if err != nil {
				return err
			}

			for _, c := range comparisons {
				fmt.Printf("%s ⇄ %s [%s]: %s (+%d -%d ~%d) - %s\n",
					c.LeftPath, c.RightPath, c.Format, c.Outcome,
					c.Added, c.Removed, c.Changed, relativeTime(c.ComparedAt))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Number of entries (default from config)")
	return cmd
}
