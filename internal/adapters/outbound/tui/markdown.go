package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/pkgscope/pkgscope/internal/domain"
)

// Markdown builds a markdown document describing every package in res.
func Markdown(res *domain.Result) string {
	var b strings.Builder
	for _, path := range res.Paths() {
		r, _ := res.Get(path)
		fmt.Fprintf(&b, "# `%s`\n\n", path)
		writeSection(&b, "Functions", r.Functions)

		if len(r.Classes) > 0 {
			b.WriteString("## Types\n\n")
			b.WriteString("| Type | Members |\n|------|---------|\n")
			names := make([]string, 0, len(r.Classes))
			for name := range r.Classes {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				members := make([]string, len(r.Classes[name]))
				for i, m := range r.Classes[name] {
					members[i] = "`" + m + "`"
				}
				fmt.Fprintf(&b, "| `%s` | %s |\n", name, strings.Join(members, ", "))
			}
			b.WriteString("\n")
		}

		writeSection(&b, "Constants and variables", r.Constants)
		writeSection(&b, "Subpackages", r.Submodules)
	}
	return b.String()
}

func writeSection(b *strings.Builder, title string, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, n := range names {
		fmt.Fprintf(b, "- `%s`\n", n)
	}
	b.WriteString("\n")
}

// RenderMarkdown renders the markdown document for the terminal. A width of
// zero leaves word wrapping at glamour's default.
func RenderMarkdown(res *domain.Result, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	return r.Render(Markdown(res))
}
