package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goplot/plotkit"
)

// NewRootCommand builds the plotkit CLI.
func NewRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "plotkit",
		Short: "Inspect rendering backends and render demo figures",
		Long: `plotkit inspects the rendering backends available on this machine and
renders demo figures through them.

The backends command scans a directory for backend module files, probes
each named backend for activation, and reports which ones are usable.`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				plotkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to stderr")

	rootCmd.AddCommand(newBackendsCommand())
	rootCmd.AddCommand(newDemoCommand())

	return rootCmd
}
