package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goplot/plotkit/backend"
	_ "github.com/goplot/plotkit/backend/agg"
	_ "github.com/goplot/plotkit/backend/gpu"
)

// backendDirEnv overrides the default plugin directory.
const backendDirEnv = "PLOTKIT_BACKEND_DIR"

// newBackendsCommand creates the backends subcommand.
func newBackendsCommand() *cobra.Command {
	var (
		dir      string
		suffixes []string
		noProbe  bool
		plugins  bool
	)

	cmd := &cobra.Command{
		Use:   "backends",
		Short: "List backends packaged in a plugin directory",
		Long: `Backends scans a directory for backend module files named
backend_<name><suffix>, extracts the backend names, and probes each one
for activation.

Example:
  plotkit backends --dir /usr/lib/plotkit/backends
  plotkit backends --dir ./backends --suffix .so --suffix .dll --no-probe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = os.Getenv(backendDirEnv)
			}
			if dir == "" {
				return fmt.Errorf("no plugin directory: pass --dir or set %s", backendDirEnv)
			}

			ins := &backend.Inspector{Dir: dir, Suffixes: suffixes}

			if plugins {
				if err := loadPlugins(cmd, ins); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if noProbe {
				names, err := ins.ListSupported()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "discovered: %s\n", joinOrNone(names))
				return nil
			}

			result, err := ins.Inspect()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "discovered: %s\n", joinOrNone(result.Discovered))
			fmt.Fprintf(out, "usable:     %s\n", joinOrNone(result.Usable))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "backend plugin directory (default $"+backendDirEnv+")")
	cmd.Flags().StringArrayVar(&suffixes, "suffix", nil, "module file suffix to recognize (repeatable; default .so)")
	cmd.Flags().BoolVar(&noProbe, "no-probe", false, "list packaged backends without probing activation")
	cmd.Flags().BoolVar(&plugins, "plugins", false, "open each module file as a Go plugin before probing")

	return cmd
}

// loadPlugins opens every module file in the inspector's directory so that
// plugin init functions can register their backends. Open failures are
// reported but do not abort the scan; the affected backend simply stays
// unregistered and shows up as discovered-but-not-usable.
func loadPlugins(cmd *cobra.Command, ins *backend.Inspector) error {
	entries, err := os.ReadDir(ins.Dir)
	if err != nil {
		return fmt.Errorf("read plugin dir: %w", err)
	}
	for _, e := range entries {
		if !backend.IsBackendModule(e.Name(), ins.Suffixes...) {
			continue
		}
		path := filepath.Join(ins.Dir, e.Name())
		if err := backend.OpenPlugin(path); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}
	}
	return nil
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}
