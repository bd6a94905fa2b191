package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pkgscope/pkgscope/internal/adapters/outbound/tui"
	"github.com/pkgscope/pkgscope/internal/domain"
)

func newShowCmd(e *env) *cobra.Command {
	var (
		jsonOutput bool
		markdown   bool
		noCache    bool
		width      int
	)

	cmd := &cobra.Command{
		Use:   "show <path>...",
		Short: "Show the exported API of packages",
		Long:  "Load each import path and render its functions, types, constants and subpackages for reading in a terminal.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput && markdown {
				return fmt.Errorf("--json and --markdown are mutually exclusive")
			}

			ws := e.workspace()
			var store domain.CacheStore
			if !noCache {
				store = diskCache(ws)
			}
			res := e.service(ws, store).InspectAll(cmd.Context(), args)

			if res.Len() == 0 {
				return fmt.Errorf("none of %s could be loaded", strings.Join(args, ", "))
			}
			if missing := len(args) - res.Len(); missing > 0 {
				e.logger.Warn("some packages could not be loaded", "count", missing)
			}

			switch {
			case jsonOutput:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			case markdown:
				out, err := tui.RenderMarkdown(res, width)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(res))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the result as indented JSON")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Render the result as markdown")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Ignore and do not update the report cache")
	cmd.Flags().IntVar(&width, "width", 100, "Word wrap width for --markdown")

	return cmd
}
