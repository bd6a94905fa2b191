package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pkgscope/pkgscope/internal/domain"
)

// ── Palette ──
var (
	accent   = lipgloss.Color("#00ADD8") // gopher blue
	fg       = lipgloss.Color("#E5E7EB")
	dim      = lipgloss.Color("#6B7280")
	faint    = lipgloss.Color("#374151")
	funcCol  = lipgloss.Color("#22C55E")
	typeCol  = lipgloss.Color("#A78BFA")
	constCol = lipgloss.Color("#F59E0B")
	subCol   = lipgloss.Color("#38BDF8")
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2).
			Width(68)

	pathStyle     = lipgloss.NewStyle().Bold(true).Foreground(accent)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	funcStyle     = lipgloss.NewStyle().Foreground(funcCol)
	typeStyle     = lipgloss.NewStyle().Bold(true).Foreground(typeCol)
	constStyle    = lipgloss.NewStyle().Foreground(constCol)
	subStyle      = lipgloss.NewStyle().Foreground(subCol)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// maxMembersShown keeps very wide types from flooding the terminal.
const maxMembersShown = 12

// RenderResult renders every report in the result, in result order.
func RenderResult(res *domain.Result) string {
	if res.Len() == 0 {
		return dimStyle.Render("  No packages could be loaded.") + "\n"
	}
	var b strings.Builder
	for i, path := range res.Paths() {
		r, _ := res.Get(path)
		b.WriteString(RenderReport(path, r))
		if i < res.Len()-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderReport renders one package: a header box with counts, then each
// category.
func RenderReport(path string, r *domain.Report) string {
	var b strings.Builder

	counts := fmt.Sprintf("%s  %s  %s  %s",
		funcStyle.Render(fmt.Sprintf("%d funcs", len(r.Functions))),
		typeStyle.Render(fmt.Sprintf("%d types", len(r.Classes))),
		constStyle.Render(fmt.Sprintf("%d values", len(r.Constants))),
		subStyle.Render(fmt.Sprintf("%d subpackages", len(r.Submodules))),
	)
	b.WriteString(boxStyle.Render(pathStyle.Render(path) + "\n" + counts))
	b.WriteString("\n\n")

	renderList(&b, "Functions", funcStyle, r.Functions)
	renderTypes(&b, r.Classes)
	renderList(&b, "Constants & variables", constStyle, r.Constants)
	renderList(&b, "Subpackages", subStyle, r.Submodules)

	b.WriteString("  " + separatorLine + "\n")
	return b.String()
}

func renderList(b *strings.Builder, title string, style lipgloss.Style, names []string) {
	if len(names) == 0 {
		return
	}
	b.WriteString("  " + titleStyle.Render(title) + "\n")
	for _, line := range wrap(names, 60) {
		b.WriteString("    " + style.Render(line) + "\n")
	}
	b.WriteString("\n")
}

func renderTypes(b *strings.Builder, classes map[string][]string) {
	if len(classes) == 0 {
		return
	}
	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	sort.Strings(names)

	b.WriteString("  " + titleStyle.Render("Types") + "\n")
	for _, name := range names {
		members := classes[name]
		shown := members
		more := ""
		if len(shown) > maxMembersShown {
			shown = shown[:maxMembersShown]
			more = dimStyle.Render(fmt.Sprintf(" +%d more", len(members)-maxMembersShown))
		}
		fmt.Fprintf(b, "    %s %s%s\n", typeStyle.Render(padRight(name, 20)), dimStyle.Render(strings.Join(shown, " ")), more)
	}
	b.WriteString("\n")
}

// wrap joins names with spaces into lines no wider than width.
func wrap(names []string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, n := range names {
		if cur.Len() > 0 && cur.Len()+1+len(n) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(n)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
