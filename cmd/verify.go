package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/martinus/hexler/pkg/pattern"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [file]",
	Short: "Compare a file against the pattern byte for byte",
	Long: `Compares the file with the reference pattern. On mismatch a diff is printed
with escape bytes shown as \x1b, highlighted when the output is a terminal.

Examples:
  testpattern verify captured.out`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		got, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		out := cmd.OutOrStdout()
		want := pattern.Bytes()
		if bytes.Equal(want, got) {
			logger.LogOperation("verify", path+": match")
			fmt.Fprintf(out, "%s matches the reference pattern\n", path)
			return nil
		}

		logger.LogOperation("verify", path+": mismatch")
		fmt.Fprintln(out, pattern.Diff(want, got, isTerminal(out)))
		return fmt.Errorf("%s does not match the reference pattern (%d bytes, want %d)", path, len(got), len(want))
	},
}
