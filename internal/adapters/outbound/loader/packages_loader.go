package loader

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/pkgscope/pkgscope/internal/domain"
)

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedModule

// PackagesLoader implements domain.PackageLoader using golang.org/x/tools/go/packages.
type PackagesLoader struct {
	dir       string
	buildTags []string
	tests     bool
}

// Option configures a PackagesLoader.
type Option func(*PackagesLoader)

// WithDir sets the directory the go command runs in, which decides the
// module that import paths are resolved against.
func WithDir(dir string) Option {
	return func(l *PackagesLoader) { l.dir = dir }
}

func WithBuildTags(tags []string) Option {
	return func(l *PackagesLoader) { l.buildTags = append([]string(nil), tags...) }
}

func WithTests(tests bool) Option {
	return func(l *PackagesLoader) { l.tests = tests }
}

func New(opts ...Option) *PackagesLoader {
	l := &PackagesLoader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load type-checks the package at path. Any failure to locate or list the
// package is reported as domain.ErrNotLoaded; type errors inside an
// otherwise listed package are kept on the result and leave the affected
// objects with invalid types.
func (l *PackagesLoader) Load(ctx context.Context, path string) (*domain.LoadedPackage, error) {
	if err := checkPath(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrNotLoaded, path, err)
	}

	pkgs, err := packages.Load(l.config(ctx, loadMode), path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrNotLoaded, path, err)
	}

	pkg := pick(pkgs, path)
	if pkg == nil {
		return nil, fmt.Errorf("%w: %s: no package returned", domain.ErrNotLoaded, path)
	}

	if err := unusable(pkg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrNotLoaded, path, err)
	}
	errs := make([]string, 0, len(pkg.Errors))
	for _, e := range pkg.Errors {
		errs = append(errs, e.Error())
	}

	loaded := &domain.LoadedPackage{
		Path:   pkg.PkgPath,
		Name:   pkg.Name,
		Files:  append([]string(nil), pkg.GoFiles...),
		Types:  pkg.Types,
		Errors: errs,
	}
	if pkg.Module != nil {
		loaded.Dir = pkg.Module.Dir
	}

	children, err := l.children(ctx, pkg.PkgPath)
	if err == nil {
		loaded.Children = children
	}
	return loaded, nil
}

// children lists every package below path. It only needs names, so it is
// much cheaper than the main load.
func (l *PackagesLoader) children(ctx context.Context, path string) ([]string, error) {
	pkgs, err := packages.Load(l.config(ctx, packages.NeedName), path+"/...")
	if err != nil {
		return nil, err
	}
	var out []string
	for _, p := range pkgs {
		if p.PkgPath != path && len(p.Errors) == 0 {
			out = append(out, p.PkgPath)
		}
	}
	return out, nil
}

func (l *PackagesLoader) config(ctx context.Context, mode packages.LoadMode) *packages.Config {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    mode,
		Dir:     l.dir,
		Tests:   l.tests && mode != packages.NeedName,
	}
	if len(l.buildTags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(l.buildTags, ",")}
	}
	return cfg
}

// unusable reports why pkg has nothing to classify. The go command also
// prints compile failures as list errors; those come with the matching type
// or parse errors and leave a usable, partially typed package.
func unusable(pkg *packages.Package) error {
	var listErr *packages.Error
	compiled := false
	for i, e := range pkg.Errors {
		switch e.Kind {
		case packages.TypeError, packages.ParseError:
			compiled = true
		default:
			if listErr == nil {
				listErr = &pkg.Errors[i]
			}
		}
	}
	switch {
	case listErr != nil && !compiled:
		return errors.New(listErr.Msg)
	case pkg.Types == nil || len(pkg.GoFiles) == 0:
		return errors.New("no Go files")
	}
	return nil
}

// pick returns the non-test variant of path when tests are loaded, which
// yields several packages for one pattern.
func pick(pkgs []*packages.Package, path string) *packages.Package {
	var fallback *packages.Package
	for _, p := range pkgs {
		if p.ID == path || p.PkgPath == path {
			return p
		}
		if fallback == nil && !strings.HasSuffix(p.PkgPath, "_test") && !strings.Contains(p.ID, "[") {
			fallback = p
		}
	}
	return fallback
}

// checkPath rejects inputs the go command would read as something other
// than a single import path.
func checkPath(path string) error {
	switch {
	case strings.TrimSpace(path) == "":
		return fmt.Errorf("empty import path")
	case strings.HasPrefix(path, "-"):
		return fmt.Errorf("looks like a flag")
	case strings.Contains(path, "..."):
		return fmt.Errorf("wildcards are not supported")
	case strings.ContainsAny(path, " \t\n"):
		return fmt.Errorf("contains whitespace")
	}
	return nil
}
