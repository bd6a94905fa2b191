package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pkgscope/pkgscope/internal/domain"
	"github.com/pkgscope/pkgscope/internal/domain/inspect"
)

// InspectService orchestrates the inspection pipeline:
// cache lookup -> load package -> classify -> cache store.
type InspectService struct {
	loader      domain.PackageLoader
	config      domain.ProjectConfig
	cache       domain.CacheStore
	fingerprint domain.Fingerprint
	logger      *log.Logger
}

// InspectOption configures an InspectService.
type InspectOption func(*InspectService)

// WithCache makes the service reuse reports stored under fp.
func WithCache(store domain.CacheStore, fp domain.Fingerprint) InspectOption {
	return func(s *InspectService) {
		s.cache = store
		s.fingerprint = fp
	}
}

func WithLogger(logger *log.Logger) InspectOption {
	return func(s *InspectService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewInspectService(loader domain.PackageLoader, cfg domain.ProjectConfig, opts ...InspectOption) *InspectService {
	s := &InspectService{
		loader: loader,
		config: cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the configuration the service classifies with.
func (s *InspectService) Config() domain.ProjectConfig { return s.config }

// Inspect returns the report for a single import path. A package that
// cannot be loaded yields an error wrapping domain.ErrNotLoaded.
//
// Relative and absolute directory paths bypass the cache since what they
// name depends on the directory the loader runs in.
func (s *InspectService) Inspect(ctx context.Context, path string) (*domain.Report, error) {
	cacheable := s.cache != nil && !localPath(path)
	if cacheable {
		if r := s.cached(path); r != nil {
			return r, nil
		}
	}

	pkg, c, err := s.classify(ctx, path)
	if err != nil {
		return nil, err
	}

	if cacheable {
		s.store(pkg, c.Report)
	}
	return c.Report, nil
}

// Classify loads and classifies path without touching the cache, returning
// every per-name outcome alongside the report.
func (s *InspectService) Classify(ctx context.Context, path string) (*inspect.Classification, error) {
	_, c, err := s.classify(ctx, path)
	return c, err
}

func (s *InspectService) classify(ctx context.Context, path string) (*domain.LoadedPackage, *inspect.Classification, error) {
	pkg, err := s.loader.Load(ctx, path)
	if err != nil {
		s.logger.Debug("skipping package", "path", path, "err", err)
		if !errors.Is(err, domain.ErrNotLoaded) {
			err = fmt.Errorf("%w: %s: %v", domain.ErrNotLoaded, path, err)
		}
		return nil, nil, err
	}
	for _, msg := range pkg.Errors {
		s.logger.Debug("package has errors", "path", path, "err", msg)
	}

	c := inspect.Classify(pkg, inspect.Options{
		Prominence: s.config.Prominent,
		MaxTypes:   s.config.EffectiveMaxTypes(),
	})
	for _, o := range c.Skips() {
		if o.Skip == domain.SkipUnexported {
			continue
		}
		s.logger.Debug("skipped name", "path", path, "owner", o.Owner, "name", o.Name, "reason", o.Skip)
	}
	s.logger.Debug("inspected package", "path", path,
		"functions", len(c.Report.Functions),
		"types", c.Report.TypeCount(),
		"constants", len(c.Report.Constants),
		"submodules", len(c.Report.Submodules))
	return pkg, &c, nil
}

// InspectAll inspects paths one after another, in order. Packages that fail
// to load are left out of the result; a repeated path keeps its first
// position and its last report.
func (s *InspectService) InspectAll(ctx context.Context, paths []string) *domain.Result {
	res := domain.NewResult()
	for _, path := range paths {
		r, err := s.Inspect(ctx, path)
		if err != nil {
			continue
		}
		res.Set(path, r)
	}
	return res
}

func (s *InspectService) cached(path string) *domain.Report {
	entry, err := s.cache.Load(CacheKey(path))
	if err != nil {
		s.logger.Warn("reading cache", "path", path, "err", err)
		return nil
	}
	if entry == nil || entry.Report == nil {
		return nil
	}
	if entry.IsInvalidated(s.fingerprint) || entry.SourceHash != sourceHash(entry.Files) {
		s.logger.Debug("cache entry stale", "path", path)
		if err := s.cache.Invalidate(entry.Key); err != nil {
			s.logger.Warn("invalidating cache", "path", path, "err", err)
		}
		return nil
	}
	s.logger.Debug("cache hit", "path", path)
	entry.Report.Name = entry.Name
	return entry.Report
}

// store keys the entry by the resolved package path.
func (s *InspectService) store(pkg *domain.LoadedPackage, r *domain.Report) {
	if len(pkg.Files) == 0 {
		return
	}
	entry := &domain.CacheEntry{
		Key:         CacheKey(pkg.Path),
		Path:        pkg.Path,
		Name:        pkg.Name,
		Fingerprint: s.fingerprint,
		Files:       pkg.Files,
		SourceHash:  sourceHash(pkg.Files),
		Report:      r,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.cache.Save(entry); err != nil {
		s.logger.Warn("writing cache", "path", pkg.Path, "err", err)
	}
}

// sourceHash covers the content of files and the set of Go files in their
// directories, so added and removed files are noticed as well as edits.
func sourceHash(files []string) string {
	h := sha256.New()
	seen := make(map[string]bool)
	for _, f := range files {
		dir := filepath.Dir(f)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		names, _ := filepath.Glob(filepath.Join(dir, "*.go"))
		for _, n := range names {
			h.Write([]byte(n))
			h.Write([]byte{0})
		}
	}
	h.Write([]byte(hashFiles(files...)))
	return hex.EncodeToString(h.Sum(nil))
}

func localPath(path string) bool {
	return strings.HasPrefix(path, ".") || filepath.IsAbs(path)
}

// CacheKey derives a file-safe key from an import path.
func CacheKey(path string) string {
	sum := sha256.Sum256([]byte(path))
	return hex.EncodeToString(sum[:12])
}
