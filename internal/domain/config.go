package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultMaxTypes caps the number of types reported per package.
const DefaultMaxTypes = 50

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Prominence maps an import path to the only type names worth reporting for
// it. A missing or empty entry means every type is reported.
type Prominence map[string][]string

// Allowed reports whether typeName passes the allow-list for path.
func (p Prominence) Allowed(path, typeName string) bool {
	list := p[path]
	if len(list) == 0 {
		return true
	}
	for _, n := range list {
		if n == typeName {
			return true
		}
	}
	return false
}

// Filtered reports whether path has a non-empty allow-list.
func (p Prominence) Filtered(path string) bool {
	return len(p[path]) > 0
}

// Merge returns a copy of p with every entry of override applied on top.
// An explicit empty list in override clears filtering for that path.
func (p Prominence) Merge(override Prominence) Prominence {
	out := make(Prominence, len(p)+len(override))
	for k, v := range p {
		out[k] = append([]string(nil), v...)
	}
	for k, v := range override {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// DefaultProminence lists the types that matter in the packages most
// commonly inspected. Packages with an empty list are reported unfiltered.
func DefaultProminence() Prominence {
	return Prominence{
		"net/http": {"Client", "Cookie", "Handler", "HandlerFunc", "Header",
			"Request", "Response", "ResponseWriter", "ServeMux", "Server", "Transport"},
		"encoding/json": {"Decoder", "Encoder", "Marshaler", "Number", "RawMessage", "Unmarshaler"},
		"database/sql":  {"Conn", "DB", "Row", "Rows", "Stmt", "Tx", "TxOptions"},
		"os":            {"File", "FileInfo", "FileMode", "Process", "ProcAttr"},
		"time":          {"Duration", "Location", "Month", "Ticker", "Time", "Timer", "Weekday"},
		"strings":       {},
		"context":       {},
	}
}

// CacheConfig controls the on-disk report cache used by interactive commands.
type CacheConfig struct {
	Enabled *bool  `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	Dir     string `yaml:"dir,omitempty"     json:"dir,omitempty"`
}

// ProjectConfig holds configuration loaded from .pkgscope.yaml.
type ProjectConfig struct {
	MaxTypes     int               `yaml:"max_types"     json:"max_types,omitempty"`
	Prominent    Prominence        `yaml:"prominent"     json:"prominent,omitempty"`
	IncludeTests bool              `yaml:"include_tests" json:"include_tests,omitempty"`
	BuildTags    []string          `yaml:"build_tags"    json:"build_tags,omitempty"`
	Aliases      map[string]string `yaml:"aliases"       json:"aliases,omitempty"`
	Cache        CacheConfig       `yaml:"cache"         json:"cache,omitempty"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		MaxTypes:  DefaultMaxTypes,
		Prominent: DefaultProminence(),
	}
}

// EffectiveMaxTypes returns the configured cap, or the default when unset.
func (c ProjectConfig) EffectiveMaxTypes() int {
	if c.MaxTypes <= 0 {
		return DefaultMaxTypes
	}
	return c.MaxTypes
}

func (c ProjectConfig) CacheEnabled() bool {
	return c.Cache.Enabled == nil || *c.Cache.Enabled
}

func (c ProjectConfig) CacheDir() string {
	if c.Cache.Dir == "" {
		return ".pkgscope/cache"
	}
	return c.Cache.Dir
}

// Validate checks the raw user input before defaults are merged in.
func (c ProjectConfig) Validate() error {
	if c.MaxTypes < 0 {
		return fmt.Errorf("%w: max_types must not be negative, got %d", ErrInvalidConfig, c.MaxTypes)
	}
	for path := range c.Prominent {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("%w: prominent has an empty package path", ErrInvalidConfig)
		}
	}
	for alias, target := range c.Aliases {
		if alias == "" || strings.ContainsAny(alias, "./") {
			return fmt.Errorf("%w: alias %q must be a plain identifier", ErrInvalidConfig, alias)
		}
		if strings.TrimSpace(target) == "" {
			return fmt.Errorf("%w: alias %q has no target package", ErrInvalidConfig, alias)
		}
	}
	for _, tag := range c.BuildTags {
		if strings.ContainsAny(tag, " ,") {
			return fmt.Errorf("%w: build tag %q must not contain spaces or commas", ErrInvalidConfig, tag)
		}
	}
	return nil
}
