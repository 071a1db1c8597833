package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/martinus/hexler/pkg/pattern"
	"github.com/martinus/hexler/pkg/utils"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var logger = utils.NopLogger()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "testpattern",
	Short: "Write the reference ANSI colour pattern",
	Long: `Testpattern writes a fixed ANSI colour pattern to standard output so that
terminal renderers can be compared against known output.

Without arguments it prints three blocks: the standard foreground colours
30-37, the high-intensity colours 90-97 followed by a reset, and the
256-colour palette as a 16x16 grid. The bytes never vary.

Available commands:
  write    - Save the pattern to a golden file
  verify   - Compare a file against the pattern byte for byte
  check    - Validate the structure of a captured stream
  config   - Show or create the configuration file
  log      - Show the diagnostic log
  version  - Print version information`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
			printVersionInfo(cmd.OutOrStdout())
			return nil
		}
		if err := pattern.Emit(cmd.OutOrStdout()); err != nil {
			return err
		}
		logger.LogOperation("emit", fmt.Sprintf("%d lines to stdout", pattern.Lines()))
		return nil
	},
}

// SetLogger replaces the logger used by all commands.
func SetLogger(l *utils.Logger) {
	logger = l
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(checkCmd)
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
