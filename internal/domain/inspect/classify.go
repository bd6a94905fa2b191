package inspect

import (
	"go/token"
	"go/types"
	"sort"
	"strings"

	"github.com/pkgscope/pkgscope/internal/domain"
)

// Options controls how a package is classified.
type Options struct {
	Prominence domain.Prominence
	MaxTypes   int
}

// Classification is the report for one package together with the outcome of
// every name that was considered while building it.
type Classification struct {
	Report   *domain.Report
	Outcomes []domain.Outcome
}

// Skips returns only the outcomes that left a name out of the report.
func (c Classification) Skips() []domain.Outcome {
	var out []domain.Outcome
	for _, o := range c.Outcomes {
		if o.Skipped() {
			out = append(out, o)
		}
	}
	return out
}

// Classify walks the package scope in sorted order and sorts every exported
// object into functions, types or constants. Submodules are the direct
// child packages listed in pkg.Children.
//
// Types are filtered by the allow-list for pkg.Path first; the cap then
// counts only types that passed the filter, so it keeps the lexically first
// MaxTypes eligible types.
func Classify(pkg *domain.LoadedPackage, opts Options) Classification {
	maxTypes := opts.MaxTypes
	if maxTypes <= 0 {
		maxTypes = domain.DefaultMaxTypes
	}

	report := domain.NewReport()
	report.Name = pkg.Name
	var outcomes []domain.Outcome
	record := func(o domain.Outcome) { outcomes = append(outcomes, o) }

	if pkg.Types != nil {
		scope := pkg.Types.Scope()
		accepted := 0
		for _, name := range scope.Names() {
			if !token.IsExported(name) {
				record(domain.Outcome{Name: name, Skip: domain.SkipUnexported})
				continue
			}
			obj := scope.Lookup(name)
			if obj == nil || invalid(obj.Type()) {
				record(domain.Outcome{Name: name, Skip: domain.SkipInvalid})
				continue
			}

			switch o := obj.(type) {
			case *types.TypeName:
				if invalid(o.Type().Underlying()) {
					record(domain.Outcome{Name: name, Skip: domain.SkipInvalid})
					continue
				}
				if !opts.Prominence.Allowed(pkg.Path, name) {
					record(domain.Outcome{Name: name, Skip: domain.SkipFiltered})
					continue
				}
				if accepted >= maxTypes {
					record(domain.Outcome{Name: name, Skip: domain.SkipCapped})
					continue
				}
				accepted++
				descriptors, memberOutcomes := Members(o)
				report.Classes[name] = descriptors
				record(domain.Outcome{Name: name, Category: domain.CategoryType})
				outcomes = append(outcomes, memberOutcomes...)

			case *types.Func, *types.Builtin:
				report.Functions = append(report.Functions, name)
				record(domain.Outcome{Name: name, Category: domain.CategoryFunction})

			default:
				if Invocable(obj.Type()) {
					report.Functions = append(report.Functions, name)
					record(domain.Outcome{Name: name, Category: domain.CategoryFunction})
					continue
				}
				report.Constants = append(report.Constants, name)
				record(domain.Outcome{Name: name, Category: domain.CategoryConstant})
			}
		}
	}

	// Package scopes hold no imported package names, so subpackages come
	// from the package tree.
	for _, child := range Submodules(pkg.Path, pkg.Children) {
		report.Submodules = append(report.Submodules, child)
		record(domain.Outcome{Name: child, Category: domain.CategorySubmodule})
	}

	return Classification{Report: report, Outcomes: outcomes}
}

// Submodules returns the sorted, deduplicated first path element of every
// child below parent. Internal, testdata, vendor and hidden directories are
// left out since nothing outside the tree can import them.
func Submodules(parent string, children []string) []string {
	prefix := strings.TrimSuffix(parent, "/") + "/"
	seen := make(map[string]bool)
	var out []string
	for _, child := range children {
		rest, ok := strings.CutPrefix(child, prefix)
		if !ok || rest == "" {
			continue
		}
		elem, _, _ := strings.Cut(rest, "/")
		if skipElem(elem) || seen[elem] {
			continue
		}
		seen[elem] = true
		out = append(out, elem)
	}
	sort.Strings(out)
	return out
}

func skipElem(elem string) bool {
	switch elem {
	case "", "internal", "testdata", "vendor":
		return true
	}
	return strings.HasPrefix(elem, "_") || strings.HasPrefix(elem, ".")
}

// Invocable reports whether a value of type t can be called.
func Invocable(t types.Type) bool {
	if t == nil {
		return false
	}
	_, ok := t.Underlying().(*types.Signature)
	return ok
}

func invalid(t types.Type) bool {
	if t == nil {
		return true
	}
	b, ok := t.(*types.Basic)
	return ok && b.Kind() == types.Invalid
}
