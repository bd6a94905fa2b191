package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkgscope/pkgscope/internal/adapters/outbound/client"
	"github.com/pkgscope/pkgscope/internal/adapters/outbound/frame"
	"github.com/pkgscope/pkgscope/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "pkgscope-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "pkgscope")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/pkgscope")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixtureDir() string {
	abs, _ := filepath.Abs("../../testdata/sample")
	return abs
}

// run executes the binary in dir and returns stdout, stderr and the exit code.
func run(t *testing.T, dir string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return stdout.String(), stderr.String(), exitCode
}

func introspect(t *testing.T, dir string, paths ...string) *domain.Result {
	t.Helper()
	out, _, code := run(t, dir, append([]string{"introspect"}, paths...)...)
	require.Equal(t, 0, code)

	res := domain.NewResult()
	require.NoError(t, frame.Decode(strings.NewReader(out), res))
	return res
}

// --- Introspect Tests ---

func TestE2E_IntrospectNoPaths(t *testing.T) {
	out, _, code := run(t, fixtureDir(), "introspect")
	assert.Equal(t, 0, code)
	assert.Empty(t, out)
}

func TestE2E_IntrospectMissingPackageOmitted(t *testing.T) {
	res := introspect(t, fixtureDir(), "example.com/sample/nope", "example.com/sample/shapes")
	assert.Equal(t, []string{"example.com/sample/shapes"}, res.Paths())
}

func TestE2E_IntrospectAllFailing(t *testing.T) {
	out, stderr, code := run(t, fixtureDir(), "introspect", "example.com/sample/nope", "not a path")
	assert.Equal(t, 0, code)
	assert.Equal(t, frame.StartMarker+"\n{}\n"+frame.EndMarker+"\n", out)
	assert.NotContains(t, stderr, frame.StartMarker)
}

func TestE2E_IntrospectShapes(t *testing.T) {
	res := introspect(t, fixtureDir(), "example.com/sample/shapes")
	r, ok := res.Get("example.com/sample/shapes")
	require.True(t, ok)

	assert.Equal(t, []string{"Formatter", "NewCircle"}, r.Functions)
	assert.Equal(t, []string{"Pi", "Unit"}, r.Constants)
	assert.Equal(t, []string{"polygon"}, r.Submodules)
	assert.Equal(t, []string{"Area()", "OnDraw()", "Perimeter()", "Radius"}, r.Classes["Circle"])
	assert.Equal(t, []string{"Area()", "Perimeter()", "Side"}, r.Classes["Square"])
	assert.Equal(t, []string{"Area()", "Perimeter()"}, r.Classes["Shape"])
}

func TestE2E_IntrospectTypeErrorsSkipInvalidNames(t *testing.T) {
	res := introspect(t, fixtureDir(), "example.com/sample/broken")
	r, ok := res.Get("example.com/sample/broken")
	require.True(t, ok)

	assert.Equal(t, []string{"Good"}, r.Functions)
	assert.NotContains(t, r.Constants, "Broken")
	assert.Equal(t, []string{"Value"}, r.Classes["Fine"])
}

func TestE2E_IntrospectCapsTypes(t *testing.T) {
	res := introspect(t, fixtureDir(), "example.com/sample/many")
	r, ok := res.Get("example.com/sample/many")
	require.True(t, ok)

	require.Len(t, r.Classes, domain.DefaultMaxTypes)
	for i := 0; i < domain.DefaultMaxTypes; i++ {
		assert.Contains(t, r.Classes, fmt.Sprintf("T%02d", i))
	}
}

func TestE2E_IntrospectDuplicates(t *testing.T) {
	out, _, code := run(t, fixtureDir(), "introspect", "example.com/sample/shapes", "example.com/sample/broken", "example.com/sample/shapes")
	require.Equal(t, 0, code)

	payload, err := frame.Extract(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(payload), `"example.com/sample/shapes"`))

	res := domain.NewResult()
	require.NoError(t, json.Unmarshal(payload, res))
	assert.Equal(t, []string{"example.com/sample/shapes", "example.com/sample/broken"}, res.Paths())
}

func TestE2E_IntrospectAllowListFromConfig(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"go.mod":         "module example.com/tmp\n\ngo 1.22\n",
		"tmp.go":         "package tmp\n\ntype A struct{}\ntype B struct{}\ntype C struct{}\n",
		".pkgscope.yaml": "prominent:\n  example.com/tmp:\n    - B\n    - Z\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	res := introspect(t, dir, "example.com/tmp")
	r, ok := res.Get("example.com/tmp")
	require.True(t, ok)
	assert.Equal(t, map[string][]string{"B": {}}, r.Classes)
}

func TestE2E_IntrospectBrokenConfigFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/tmp\n\ngo 1.22\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tmp.go"), []byte("package tmp\n\nconst X = 1\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pkgscope.yaml"), []byte("max_types: [oops"), 0644))

	res := introspect(t, dir, "example.com/tmp")
	r, ok := res.Get("example.com/tmp")
	require.True(t, ok)
	assert.Equal(t, []string{"X"}, r.Constants)
}

func TestE2E_IntrospectStdlib(t *testing.T) {
	res := introspect(t, fixtureDir(), "strings", "net/http")
	assert.Equal(t, []string{"strings", "net/http"}, res.Paths())

	r, _ := res.Get("net/http")
	for name := range r.Classes {
		assert.Contains(t, domain.DefaultProminence()["net/http"], name)
	}
	assert.Contains(t, r.Submodules, "httptest")
	assert.NotContains(t, r.Submodules, "internal")
}

// --- Client Tests ---

func TestE2E_ClientRunner(t *testing.T) {
	runner := client.New(binaryPath, client.WithDir(fixtureDir()))
	res, err := runner.Introspect(context.Background(), []string{
		"example.com/sample/shapes", "example.com/sample/nope", "example.com/sample/shapes",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"example.com/sample/shapes"}, res.Paths())
}

// --- Other Commands ---

func TestE2E_Version(t *testing.T) {
	out, _, code := run(t, fixtureDir(), "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "pkgscope")
}

func TestE2E_Demo(t *testing.T) {
	out, _, code := run(t, fixtureDir(), "demo")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Customers: 8 records")
}

func TestE2E_ShowMissingPackageFails(t *testing.T) {
	_, _, code := run(t, fixtureDir(), "show", "--no-cache", "example.com/sample/nope")
	assert.Equal(t, 1, code)
}

func TestE2E_IntrospectDashArgumentIsAName(t *testing.T) {
	res := introspect(t, fixtureDir(), "--foo", "example.com/sample/shapes")
	assert.Equal(t, []string{"example.com/sample/shapes"}, res.Paths())
}

func TestE2E_ShowSeesSourceEdits(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/p\n\ngo 1.22\n"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a"), 0755))
	src := filepath.Join(dir, "a", "a.go")
	require.NoError(t, os.WriteFile(src, []byte("package a\n\nfunc Old() {}\n"), 0644))

	out, _, code := run(t, dir, "show", "--json", "example.com/p/a")
	require.Equal(t, 0, code)
	assert.Contains(t, out, `"Old"`)

	require.NoError(t, os.WriteFile(src, []byte("package a\n\nfunc New() {}\n"), 0644))
	out, _, code = run(t, dir, "show", "--json", "example.com/p/a")
	require.Equal(t, 0, code)
	assert.Contains(t, out, `"New"`)
	assert.NotContains(t, out, `"Old"`)
}
