package domain_test

import (
	"testing"

	"github.com/pkgscope/pkgscope/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, 50, cfg.MaxTypes)
	assert.True(t, cfg.Prominent.Filtered("net/http"))
	assert.False(t, cfg.Prominent.Filtered("strings"))
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, ".pkgscope/cache", cfg.CacheDir())
	require.NoError(t, cfg.Validate())
}

func TestEffectiveMaxTypes(t *testing.T) {
	assert.Equal(t, domain.DefaultMaxTypes, domain.ProjectConfig{}.EffectiveMaxTypes())
	assert.Equal(t, 7, domain.ProjectConfig{MaxTypes: 7}.EffectiveMaxTypes())
}

func TestProminence_Allowed(t *testing.T) {
	p := domain.Prominence{
		"net/http": {"Client", "Request"},
		"strings":  {},
	}

	assert.True(t, p.Allowed("net/http", "Client"))
	assert.False(t, p.Allowed("net/http", "Cookie"))
	assert.True(t, p.Allowed("strings", "Builder"), "empty list imposes no filter")
	assert.True(t, p.Allowed("bytes", "Buffer"), "missing entry imposes no filter")
}

func TestProminence_MergeOverridesAndClears(t *testing.T) {
	base := domain.Prominence{"net/http": {"Client"}, "os": {"File"}}
	merged := base.Merge(domain.Prominence{"os": {}, "io": {"Reader"}})

	assert.Equal(t, []string{"Client"}, merged["net/http"])
	assert.False(t, merged.Filtered("os"))
	assert.Equal(t, []string{"Reader"}, merged["io"])
	assert.Equal(t, []string{"File"}, base["os"], "base must not be mutated")
}

func TestCacheEnabled_Explicit(t *testing.T) {
	off := false
	cfg := domain.ProjectConfig{Cache: domain.CacheConfig{Enabled: &off, Dir: "tmp/c"}}
	assert.False(t, cfg.CacheEnabled())
	assert.Equal(t, "tmp/c", cfg.CacheDir())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  domain.ProjectConfig
		ok   bool
	}{
		{"zero value", domain.ProjectConfig{}, true},
		{"zero max means default", domain.ProjectConfig{MaxTypes: 0}, true},
		{"max of one", domain.ProjectConfig{MaxTypes: 1}, true},
		{"negative max", domain.ProjectConfig{MaxTypes: -1}, false},
		{"blank prominent key", domain.ProjectConfig{Prominent: domain.Prominence{" ": {"X"}}}, false},
		{"dotted alias", domain.ProjectConfig{Aliases: map[string]string{"a.b": "fmt"}}, false},
		{"slash alias", domain.ProjectConfig{Aliases: map[string]string{"a/b": "fmt"}}, false},
		{"empty alias target", domain.ProjectConfig{Aliases: map[string]string{"f": ""}}, false},
		{"good alias", domain.ProjectConfig{Aliases: map[string]string{"f": "fmt"}}, true},
		{"spaced tag", domain.ProjectConfig{BuildTags: []string{"a b"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidConfig)
			}
		})
	}
}
