package cli

import (
	"path/filepath"

	"github.com/pkgscope/pkgscope/internal/adapters/outbound/cache"
	"github.com/pkgscope/pkgscope/internal/adapters/outbound/config"
	"github.com/pkgscope/pkgscope/internal/adapters/outbound/gitinfo"
	"github.com/pkgscope/pkgscope/internal/adapters/outbound/loader"
	"github.com/pkgscope/pkgscope/internal/application"
	"github.com/pkgscope/pkgscope/internal/domain"
)

// workspace is the directory packages are resolved from together with the
// configuration that applies there.
type workspace struct {
	dir  string
	root string
	cfg  domain.ProjectConfig
}

// workspace never fails: an unreadable config file is logged and the
// defaults are used instead.
func (e *env) workspace() workspace {
	dir := e.dir
	if dir == "" {
		dir = "."
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	} else {
		e.logger.Warn("resolving directory", "dir", dir, "err", err)
	}

	root := application.FindModuleRoot(dir)
	if root == "" {
		root = dir
	}

	cfg, err := config.New().Load(root)
	if err != nil {
		e.logger.Warn("ignoring config", "dir", root, "err", err)
		cfg = domain.DefaultConfig()
	}
	return workspace{dir: dir, root: root, cfg: cfg}
}

// service builds the inspection pipeline for ws. Reports are cached in
// store when it is non-nil.
func (e *env) service(ws workspace, store domain.CacheStore) *application.InspectService {
	ld := loader.New(
		loader.WithDir(ws.dir),
		loader.WithBuildTags(ws.cfg.BuildTags),
		loader.WithTests(ws.cfg.IncludeTests),
	)
	opts := []application.InspectOption{application.WithLogger(e.logger)}
	if store != nil {
		fp := application.Fingerprint(ws.dir, ws.cfg, gitinfo.New())
		opts = append(opts, application.WithCache(store, fp))
	}
	return application.NewInspectService(ld, ws.cfg, opts...)
}

// diskCache returns the on-disk report cache for ws, or nil when caching is
// turned off in the config.
func diskCache(ws workspace) domain.CacheStore {
	if !ws.cfg.CacheEnabled() {
		return nil
	}
	dir := ws.cfg.CacheDir()
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(ws.root, dir)
	}
	return cache.New(dir)
}
