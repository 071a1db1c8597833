package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/martinus/hexler/pkg/configuration"
	"github.com/spf13/cobra"
)

var logLines int // Number of trailing log lines to display

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Print the tail of the diagnostic log",
	Long: `Displays the last lines of the testpattern log file (~/.hexler/testpattern.log
unless HEXLER_LOG_FILE or the config file say otherwise).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configuration.Load()
		if err != nil {
			return err
		}
		return displayLog(cmd.OutOrStdout(), cfg.Log.File, logLines)
	},
}

func init() {
	logCmd.Flags().IntVarP(&logLines, "lines", "n", 100, "Number of lines to display")
	rootCmd.AddCommand(logCmd)
}

// displayLog prints the last n lines of the log file at path.
func displayLog(w io.Writer, path string, n int) error {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "Log file not found at %s. No log entries yet.\n", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read log file: %w", err)
	}

	if len(lines) == 0 {
		fmt.Fprintln(w, "Log file is empty.")
		return nil
	}

	start := 0
	if n > 0 && len(lines) > n {
		start = len(lines) - n
	}
	fmt.Fprintf(w, "Displaying last %d lines of %s (total %d lines available):\n", len(lines)-start, path, len(lines))
	fmt.Fprintln(w, strings.Repeat("=", 80))
	for _, line := range lines[start:] {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, strings.Repeat("=", 80))
	return nil
}
