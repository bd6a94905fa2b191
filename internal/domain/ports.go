package domain

import (
	"context"
	"errors"
)

// ErrNotLoaded is returned when a package cannot be loaded. Callers treat it
// as "no data" rather than as a failure.
var ErrNotLoaded = errors.New("package not loaded")

// PackageLoader resolves an import path to a type-checked package.
type PackageLoader interface {
	Load(ctx context.Context, path string) (*LoadedPackage, error)
}

// ConfigLoader reads project configuration from a directory.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// CacheStore persists reports between runs. Load returns (nil, nil) when
// nothing is stored under key.
type CacheStore interface {
	Load(key string) (*CacheEntry, error)
	Save(entry *CacheEntry) error
	Invalidate(key string) error
}

// GitInfo reads version-control state for a directory.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}
