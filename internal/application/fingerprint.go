package application

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkgscope/pkgscope/internal/domain"
)

// Fingerprint describes the environment reports are produced in: the Go
// release, the enclosing module's go.mod and go.sum, the git HEAD of the
// module root, and the effective configuration.
func Fingerprint(dir string, cfg domain.ProjectConfig, git domain.GitInfo) domain.Fingerprint {
	fp := domain.Fingerprint{
		GoVersion:  runtime.Version(),
		ConfigHash: configHash(cfg),
	}

	root := FindModuleRoot(dir)
	if root == "" {
		return fp
	}
	fp.GoModHash = hashFiles(filepath.Join(root, "go.mod"), filepath.Join(root, "go.sum"))
	if git != nil && git.IsGitRepo(root) {
		if hash, err := git.CommitHash(root); err == nil {
			fp.CommitHash = hash
		}
	}
	return fp
}

// FindModuleRoot walks up from dir to the first directory holding a go.mod.
// It returns "" when there is none.
func FindModuleRoot(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		if fi, err := os.Stat(filepath.Join(abs, "go.mod")); err == nil && !fi.IsDir() {
			return abs
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return ""
		}
		abs = parent
	}
}

func hashFiles(paths ...string) string {
	h := sha256.New()
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		h.Write([]byte(filepath.Base(p)))
		h.Write(data)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func configHash(cfg domain.ProjectConfig) string {
	data, err := json.Marshal(cfg)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
