package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/pkgscope/pkgscope/internal/adapters/outbound/frame"
	"github.com/pkgscope/pkgscope/internal/domain"
)

// DefaultTimeout bounds a single introspection run.
const DefaultTimeout = 2 * time.Minute

// Runner runs the introspect command in a child process and decodes the
// framed result from its stdout.
type Runner struct {
	binary  string
	args    []string
	dir     string
	timeout time.Duration
}

type Option func(*Runner)

// WithArgs sets the arguments placed before the import paths. The default
// is the introspect subcommand.
func WithArgs(args ...string) Option {
	return func(r *Runner) { r.args = args }
}

func WithDir(dir string) Option {
	return func(r *Runner) { r.dir = dir }
}

func WithTimeout(d time.Duration) Option {
	return func(r *Runner) { r.timeout = d }
}

func New(binary string, opts ...Option) *Runner {
	r := &Runner{
		binary:  binary,
		args:    []string{"introspect"},
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Introspect inspects the given paths in a child process. Duplicate paths
// are dropped before the process starts; the first occurrence keeps its
// position. An empty request returns an empty result without running
// anything.
func (r *Runner) Introspect(ctx context.Context, paths []string) (*domain.Result, error) {
	paths = Dedupe(paths)
	if len(paths) == 0 {
		return domain.NewResult(), nil
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	args := append(append([]string(nil), r.args...), paths...)
	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Dir = r.dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("running %s: %w", r.binary, ctx.Err())
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%s exited with %d: %s", r.binary, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("running %s: %w", r.binary, err)
	}

	res := domain.NewResult()
	if err := frame.Decode(&stdout, res); err != nil {
		return nil, fmt.Errorf("reading output of %s: %w", r.binary, err)
	}
	return res, nil
}

// Dedupe drops repeated and blank paths, keeping first occurrences in order.
func Dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
