package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/martinus/hexler/pkg/pattern"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate the structure of a captured stream",
	Long: `Checks line count, token counts, colour codes and palette positions of a
captured stream. Reads standard input when no file or "-" is given.

Examples:
  testpattern | testpattern check
  testpattern check captured.out`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "stdin"
		var in io.Reader = cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			name = args[0]
			f, err := os.Open(name)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", name, err)
			}
			defer f.Close()
			in = f
		}

		report, err := pattern.Check(in)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		out := cmd.OutOrStdout()
		if report.OK() {
			logger.LogOperation("check", name+": ok")
			fmt.Fprintf(out, "%s: ok (%d lines)\n", name, report.Lines)
			return nil
		}
		for _, p := range report.Problems {
			fmt.Fprintf(out, "%s: %s\n", name, p)
		}
		logger.LogOperation("check", fmt.Sprintf("%s: %d problems", name, len(report.Problems)))
		return fmt.Errorf("%s: %d problems found", name, len(report.Problems))
	},
}
