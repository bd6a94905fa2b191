package completion

import (
	"sort"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/pkgscope/pkgscope/internal/domain"
)

// Aliases maps a short import name to the package it stands for.
type Aliases map[string]string

// DefaultAliases are the import names people commonly give these packages.
func DefaultAliases() Aliases {
	return Aliases{
		"http": "net/http",
		"json": "encoding/json",
		"fp":   "path/filepath",
		"str":  "strings",
		"sql":  "database/sql",
		"ctx":  "context",
		"rt":   "runtime",
	}
}

// Merge returns a copy of a with override applied on top.
func (a Aliases) Merge(override map[string]string) Aliases {
	out := make(Aliases, len(a)+len(override))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// AliasFor returns the alias bound to pkgPath, choosing the lexically first
// when several are.
func (a Aliases) AliasFor(pkgPath string) (string, bool) {
	var best string
	for alias, target := range a {
		if target == pkgPath && (best == "" || alias < best) {
			best = alias
		}
	}
	return best, best != ""
}

type Kind string

const (
	KindFunction Kind = "func"
	KindConstant Kind = "const"
	KindType     Kind = "type"
)

// Item is one completion entry such as "http.NewRequest".
type Item struct {
	Label   string `json:"label"`
	Name    string `json:"name"`
	Kind    Kind   `json:"kind"`
	Package string `json:"package"`
}

// Build flattens a result into completion items. Each symbol is prefixed by
// the package alias when there is one and by the package name otherwise. Items are sorted case-insensitively by label.
func Build(res *domain.Result, aliases Aliases) []Item {
	var items []Item
	for _, pkgPath := range res.Paths() {
		r, _ := res.Get(pkgPath)
		if r == nil {
			continue
		}
		prefix, ok := aliases.AliasFor(pkgPath)
		if !ok {
			prefix = r.Name
		}
		if prefix == "" {
			prefix = PackageName(pkgPath)
		}
		add := func(name string, kind Kind) {
			items = append(items, Item{Label: prefix + "." + name, Name: name, Kind: kind, Package: pkgPath})
		}
		for _, f := range r.Functions {
			add(f, KindFunction)
		}
		for _, c := range r.Constants {
			add(c, KindConstant)
		}
		for name := range r.Classes {
			add(name, KindType)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		li, lj := strings.ToLower(items[i].Label), strings.ToLower(items[j].Label)
		if li != lj {
			return li < lj
		}
		return items[i].Label < items[j].Label
	})
	return items
}

// PackageName guesses the name of the package at pkgPath for reports that
// do not carry one, such as those decoded from introspect output. Major
// version suffixes are dropped: github.com/x/y/v2 is y, gopkg.in/yaml.v3 is
// yaml.
func PackageName(pkgPath string) string {
	elems := strings.Split(strings.TrimSuffix(pkgPath, "/"), "/")
	name := elems[len(elems)-1]
	if len(elems) > 1 && majorVersion(name) {
		name = elems[len(elems)-2]
	}
	if i := strings.LastIndex(name, ".v"); i > 0 && majorVersion(name[i+1:]) {
		name = name[:i]
	}
	return name
}

func majorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, c := range s[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Search returns the items whose label starts with query, or whose symbol
// name has a camel-case word starting with it. Matching ignores case. An
// empty query matches everything.
func Search(items []Item, query string) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	var out []Item
	for _, it := range items {
		if matches(it, q) {
			out = append(out, it)
		}
	}
	return out
}

func matches(it Item, q string) bool {
	if strings.HasPrefix(strings.ToLower(it.Label), q) || strings.HasPrefix(strings.ToLower(it.Name), q) {
		return true
	}
	for _, word := range camelcase.Split(it.Name) {
		if strings.HasPrefix(strings.ToLower(word), q) {
			return true
		}
	}
	return false
}

// PackagesToInspect lists the packages an editor needs data for: every known
// package that is not itself an alias, followed by every alias target.
// Duplicates are dropped and the order is stable.
func PackagesToInspect(known []string, aliases Aliases) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		out = append(out, p)
	}
	for _, k := range known {
		if _, isAlias := aliases[k]; isAlias {
			continue
		}
		add(k)
	}
	names := make([]string, 0, len(aliases))
	for alias := range aliases {
		names = append(names, alias)
	}
	sort.Strings(names)
	for _, alias := range names {
		add(aliases[alias])
	}
	return out
}
