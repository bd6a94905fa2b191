package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pkgscope/pkgscope/internal/adapters/outbound/config"
	"github.com/pkgscope/pkgscope/internal/domain"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a " + config.FileName + " configuration file",
		Long:  "Create a " + config.FileName + " holding the default type cap and allow-lists, ready to edit.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			if err := os.WriteFile(dest, []byte(generateConfig(domain.DefaultConfig())), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing "+config.FileName)

	return cmd
}

func generateConfig(cfg domain.ProjectConfig) string {
	var b strings.Builder
	b.WriteString("# pkgscope configuration\n\n")
	fmt.Fprintf(&b, "# Types reported per package, after the allow-list below is applied.\nmax_types: %d\n\n", cfg.EffectiveMaxTypes())

	b.WriteString("# Only these types are reported for the listed packages.\n# An empty list reports every type.\nprominent:\n")
	paths := make([]string, 0, len(cfg.Prominent))
	for p := range cfg.Prominent {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		names := cfg.Prominent[p]
		if len(names) == 0 {
			fmt.Fprintf(&b, "  %s: []\n", p)
			continue
		}
		fmt.Fprintf(&b, "  %s:\n", p)
		for _, n := range names {
			fmt.Fprintf(&b, "    - %s\n", n)
		}
	}

	b.WriteString(`
# include_tests: false
# build_tags:
#   - integration

# aliases:
#   yaml: gopkg.in/yaml.v3

# cache:
#   enabled: true
#   dir: .pkgscope/cache
`)
	return b.String()
}
