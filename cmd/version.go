package cmd

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print detailed version information including:
• Application version
• Go runtime version
• Build information
• Git commit hash (if available)

The --version and -v flags on the root command print the same information.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printVersionInfo(cmd.OutOrStdout())
	},
}

var (
	// These variables are set at build time using -ldflags
	version   = "dev"     // Semantic version (e.g., "v1.0.0")
	buildDate = "unknown" // Build timestamp
	gitCommit = ""        // Git commit hash
	goVersion = runtime.Version()
)

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Flags().BoolP("version", "v", false, "Print version information and exit")
}

// printVersionInfo prints comprehensive version information
func printVersionInfo(w io.Writer) {
	fmt.Fprintf(w, "testpattern version %s\n", version)

	if buildDate != "unknown" {
		fmt.Fprintf(w, "Build date: %s\n", buildDate)
	}
	if gitCommit != "" {
		fmt.Fprintf(w, "Git commit: %s\n", gitCommit)
	}

	fmt.Fprintf(w, "Go version: %s\n", goVersion)

	if info, ok := debug.ReadBuildInfo(); ok {
		fmt.Fprintf(w, "Module: %s\n", info.Main.Path)
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			fmt.Fprintf(w, "Module version: %s\n", info.Main.Version)
		}
	}

	fmt.Fprintf(w, "Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
