package commands

import (
	"fmt"
	"os"

	"github.com/sky-xo/treediff/internal/document"

	"github.com/spf13/cobra"
)

var (
	fmtFormat string
	fmtWrite  bool
	fmtIndent int
)

func NewFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Reformat a JSON or YAML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(args[0], fmtFormat, fmtWrite, fmtIndent)
		},
	}
	cmd.Flags().StringVarP(&fmtFormat, "format", "f", "auto", "Input format: auto, json or yaml")
	cmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Write the result back to the file")
	cmd.Flags().IntVar(&fmtIndent, "indent", 0, "Indent width (default from config)")
	return cmd
}

func runFmt(path, format string, write bool, indent int) error {
	cfg := loadConfig()
	if indent <= 0 {
		indent = cfg.Indent
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	out, err := document.FormatText(string(data), resolveFormat(format, path, cfg), indent)
	if err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}

	if write {
		return os.WriteFile(path, []byte(out), 0o644)
	}
	fmt.Print(out)
	return nil
}
