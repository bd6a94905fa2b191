package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// env carries what every subcommand shares: the root flags and the logger
// built from them.
type env struct {
	verbose bool
	dir     string
	logger  *log.Logger
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "pkgscope"})
	logger.SetLevel(log.WarnLevel)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func newRootCmd() *cobra.Command {
	e := &env{logger: newLogger(os.Stderr, false)}

	cmd := &cobra.Command{
		Use:   "pkgscope",
		Short: "List the exported API of Go packages",
		Long: "pkgscope loads Go packages and reports their exported functions, types with their members, " +
			"constants and subpackages, for editors that need completion data.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			e.logger = newLogger(cmd.ErrOrStderr(), e.verbose)
		},
	}
	cmd.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "Log debug diagnostics to stderr")
	cmd.PersistentFlags().StringVarP(&e.dir, "dir", "C", "", "Resolve packages from this directory (defaults to the current directory)")

	cmd.AddCommand(newIntrospectCmd(e))
	cmd.AddCommand(newShowCmd(e))
	cmd.AddCommand(newCompleteCmd(e))
	cmd.AddCommand(newMCPCmd(e))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newDemoCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute(ctx context.Context) error {
	return fang.Execute(ctx, newRootCmd(),
		fang.WithVersion(version),
		fang.WithCommit(commit),
		fang.WithNotifySignal(os.Interrupt),
	)
}
