package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pkgscope/pkgscope/internal/domain"
	"github.com/pkgscope/pkgscope/internal/domain/completion"
)

func newCompleteCmd(e *env) *cobra.Command {
	var (
		jsonOutput bool
		noCache    bool
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "complete <query> [path...]",
		Short: "Print completion items matching a query",
		Long: "Build completion items such as http.NewRequest from the given packages and every alias target, " +
			"then print those whose label, name, or a camel-case word of the name starts with the query.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, known := args[0], args[1:]

			ws := e.workspace()
			aliases := completion.DefaultAliases().Merge(ws.cfg.Aliases)
			paths := completion.PackagesToInspect(known, aliases)

			var store domain.CacheStore
			if !noCache {
				store = diskCache(ws)
			}
			res := e.service(ws, store).InspectAll(cmd.Context(), paths)
			items := completion.Search(completion.Build(res, aliases), query)
			if limit > 0 && len(items) > limit {
				items = items[:limit]
			}

			if jsonOutput {
				if items == nil {
					items = []completion.Item{}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, it := range items {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", it.Label, it.Kind, it.Package)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output items as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Ignore and do not update the report cache")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of items to print (0 prints all)")

	return cmd
}
