// Package cli implements the stockroom command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/stockroom"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataFile  string
	backend   string
	logLevel  string
}

var flags rootFlags

// NewRootCmd creates the top-level "stockroom" command with global flags
// and all subcommands registered. Run without a subcommand it plays the
// demonstration session.
func NewRootCmd() *cobra.Command {
	flags = rootFlags{}

	root := &cobra.Command{
		Use:   "stockroom",
		Short: "A minimal inventory ledger backed by a JSON file",
		Long: `Stockroom tracks integer quantities per named item, reports low stock,
and persists the whole inventory to a single file.

Without a subcommand it runs a short demonstration session against the
configured inventory file.`,
		Version: stockroom.Version,
		Args:    cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDemo,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/stockroom)")
	root.PersistentFlags().StringVar(&flags.dataFile, "data-file", "", "inventory file (default: $(CWD)/inventory.json)")
	root.PersistentFlags().StringVar(&flags.backend, "backend", "", "storage backend: json or sqlite (default from config)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newRemoveCmd())
	root.AddCommand(newGetCmd())
	root.AddCommand(newLowCmd())
	root.AddCommand(newReportCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error {
	return &exitError{code: exitUserError, err: err}
}

func sysError(err error) error {
	return &exitError{code: exitSysError, err: err}
}

// exitCode maps an error returned by a command to its exit code. Errors
// raised by cobra itself, such as unknown flags, are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}
