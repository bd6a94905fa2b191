package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pkgscope/pkgscope/internal/domain"
)

// FileName is the configuration file looked up in the project directory.
const FileName = ".pkgscope.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .pkgscope.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .pkgscope.yaml from projectPath.
// Returns DefaultConfig if the file does not exist or is empty.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	// Validate the raw input so typos surface before defaults hide them.
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("%s: %w", FileName, err)
	}

	return mergeConfig(domain.DefaultConfig(), cfg), nil
}

// mergeConfig overlays explicit values from the file on top of defaults.
func mergeConfig(base, override domain.ProjectConfig) domain.ProjectConfig {
	result := base

	if override.MaxTypes > 0 {
		result.MaxTypes = override.MaxTypes
	}
	// Prominent entries merge per package; an explicit empty list clears the
	// default filter for that package.
	result.Prominent = base.Prominent.Merge(override.Prominent)

	result.IncludeTests = override.IncludeTests
	if len(override.BuildTags) > 0 {
		result.BuildTags = override.BuildTags
	}
	if len(override.Aliases) > 0 {
		result.Aliases = override.Aliases
	}
	result.Cache = override.Cache

	return result
}
