package commands

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/sky-xo/treediff/internal/db"
	"github.com/sky-xo/treediff/internal/difftree"
	"github.com/sky-xo/treediff/internal/document"
	"github.com/sky-xo/treediff/internal/tui"
)

// CompareOptions carries the root command flags.
type CompareOptions struct {
	Format    string
	Watch     bool
	NoHistory bool
}

// RunCompare is the root command: compare two documents and either open the
// interactive viewer or, without a terminal, print a summary.
func RunCompare(leftPath, rightPath string, opts CompareOptions) error {
	cfg := loadConfig()

	leftText, err := os.ReadFile(leftPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", leftPath, err)
	}
	rightText, err := os.ReadFile(rightPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", rightPath, err)
	}

	left := document.Parse(string(leftText), resolveFormat(opts.Format, leftPath, cfg))
	right := document.Parse(string(rightText), resolveFormat(opts.Format, rightPath, cfg))
	comparison := difftree.Evaluate(left, right)

	if !opts.NoHistory {
		recordHistory(leftPath, rightPath, opts.Format, comparison)
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		return tui.Run(tui.Options{
			LeftPath:  leftPath,
			RightPath: rightPath,
			Format:    document.ParseFormat(opts.Format),
			Watch:     opts.Watch,
			Config:    cfg,
		})
	}
	return printComparison(leftPath, rightPath, comparison)
}

// recordHistory is best effort; a broken history database never blocks a diff.
func recordHistory(leftPath, rightPath, format string, c difftree.Comparison) {
	conn, err := openDB()
	if err != nil {
		log.Printf("warning: failed to open history db: %v", err)
		return
	}
	defer conn.Close()

	err = conn.RecordComparison(db.Comparison{
		LeftPath:  leftPath,
		RightPath: rightPath,
		Format:    format,
		Outcome:   c.Outcome.String(),
		Added:     c.Summary.Added,
		Removed:   c.Summary.Removed,
		Changed:   c.Summary.Changed,
	})
	if err != nil {
		log.Printf("warning: failed to record comparison: %v", err)
	}
}

func printComparison(leftPath, rightPath string, c difftree.Comparison) error {
	switch c.Outcome {
	case difftree.OutcomeInvalid:
		if c.LeftErr != "" {
			fmt.Fprintf(os.Stderr, "%s: %s\n", leftPath, c.LeftErr)
		}
		if c.RightErr != "" {
			fmt.Fprintf(os.Stderr, "%s: %s\n", rightPath, c.RightErr)
		}
		return fmt.Errorf("cannot compare: invalid input")
	case difftree.OutcomeEmpty:
		fmt.Println("both documents are empty")
	case difftree.OutcomeIdentical:
		fmt.Println("documents are identical")
	default:
		s := c.Summary
		fmt.Printf("%d added, %d removed, %d changed\n", s.Added, s.Removed, s.Changed)
	}
	return nil
}
