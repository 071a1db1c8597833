package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/martinus/hexler/pkg/pattern"
	"github.com/spf13/cobra"
)

var writePhase string // Block to write; empty writes the whole pattern

var writeCmd = &cobra.Command{
	Use:   "write [file]",
	Short: "Save the pattern to a golden file",
	Long: `Writes the reference pattern to the given file, replacing it if it exists.
Use --phase to write a single block (standard, bright or palette).

Examples:
  testpattern write testdata/pattern.golden
  testpattern write --phase palette testdata/palette.golden`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		var emit func(io.Writer) error = pattern.Emit
		block := fmt.Sprintf("%d lines", pattern.Lines())
		if writePhase != "" {
			phase, err := pattern.ParsePhase(writePhase)
			if err != nil {
				return err
			}
			emit = func(w io.Writer) error { return pattern.EmitPhase(w, phase) }
			block = phase.String() + " block"
		}

		if err := writeGolden(path, emit); err != nil {
			return err
		}
		logger.Logf("wrote %s to %s", block, path)
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s to %s\n", block, path)
		return nil
	},
}

func init() {
	writeCmd.Flags().StringVar(&writePhase, "phase", "", "Write only one block: standard, bright or palette")
}

func writeGolden(path string, emit func(io.Writer) error) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := emit(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
