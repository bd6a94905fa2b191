package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pkgscope/pkgscope/internal/adapters/outbound/frame"
)

func newIntrospectCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "introspect [path...]",
		Short: "Print a framed JSON report for each import path",
		Long: "Load every import path and print one JSON object mapping each loadable path to its report, " +
			"between " + frame.StartMarker + " and " + frame.EndMarker + " lines. Paths that fail to load are " +
			"left out. Without paths nothing is printed. Failures never change the exit status.",
		// Every argument is a package name; anything that is not one of the
		// root flags goes to the inspector and is dropped there.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, help := e.takeRootFlags(args)
			if help {
				return cmd.Help()
			}
			e.logger = newLogger(cmd.ErrOrStderr(), e.verbose)
			if len(paths) == 0 {
				return nil
			}

			svc := e.service(e.workspace(), nil)
			res := svc.InspectAll(cmd.Context(), paths)
			e.logger.Debug("introspection finished", "requested", len(paths), "reported", res.Len())

			if err := frame.Write(cmd.OutOrStdout(), res); err != nil {
				e.logger.Error("writing result", "err", err)
			}
			return nil
		},
	}
}

// takeRootFlags applies the root flags found in args, which cobra leaves
// unparsed for commands that disable flag parsing, and returns the rest.
func (e *env) takeRootFlags(args []string) (rest []string, help bool) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "-h" || a == "--help":
			help = true
		case a == "-v" || a == "--verbose" || a == "--verbose=true":
			e.verbose = true
		case a == "--verbose=false":
			e.verbose = false
		case (a == "--dir" || a == "-C") && i+1 < len(args):
			e.dir = args[i+1]
			i++
		case strings.HasPrefix(a, "--dir="):
			e.dir = strings.TrimPrefix(a, "--dir=")
		case strings.HasPrefix(a, "-C") && len(a) > 2:
			e.dir = strings.TrimPrefix(a[2:], "=")
		default:
			rest = append(rest, a)
		}
	}
	return rest, help
}
