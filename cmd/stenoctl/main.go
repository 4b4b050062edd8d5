package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information, set at build time via -ldflags.
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// newRootCmd builds a fresh root command on each call. The subcommands it
// attaches are package-level values shared by every root it builds, so
// their flag state is not isolated per tree; the flag-bound vars are
// reset below instead.
func newRootCmd() *cobra.Command {
	// Flag-bound package vars keep their last value across repeated
	// Execute calls on the same underlying *cobra.Command (pflag only
	// ever writes a flag that was actually passed); reset them here so
	// each call to newRootCmd starts with empty flag values.
	translateScript = ""
	dictDumpFiles = nil

	rootCmd := &cobra.Command{
		Use:   "stenoctl",
		Short: "Real-time stenographic translator",
		Long:  "stenoctl translates chorded steno strokes into live text, the same core a full machine-backed application would embed.",
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(dictCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
