package client_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/pkgscope/pkgscope/internal/adapters/outbound/client"
	"github.com/pkgscope/pkgscope/internal/adapters/outbound/frame"
	"github.com/pkgscope/pkgscope/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helperEnv = "PKGSCOPE_CLIENT_HELPER"

// TestHelperProcess stands in for the pkgscope binary. It only runs when
// started by helperRunner.
func TestHelperProcess(t *testing.T) {
	if os.Getenv(helperEnv) != "1" {
		return
	}
	args := os.Args
	for i, a := range args {
		if a == "--" {
			args = args[i+1:]
			break
		}
	}

	res := domain.NewResult()
	for _, p := range args {
		switch p {
		case "fail":
			fmt.Fprintln(os.Stderr, "cannot start")
			os.Exit(3)
		case "noframe":
			fmt.Println("just noise")
			os.Exit(0)
		case "slow":
			time.Sleep(10 * time.Second)
		}
		r := domain.NewReport()
		r.Functions = []string{"Seen"}
		res.Set(p, r)
	}

	fmt.Println("some warning printed by a dependency")
	_ = frame.Write(os.Stdout, res)
	fmt.Println("trailing output")
	os.Exit(0)
}

func helperRunner(t *testing.T, opts ...client.Option) *client.Runner {
	t.Helper()
	t.Setenv(helperEnv, "1")
	opts = append([]client.Option{client.WithArgs("-test.run=TestHelperProcess", "--")}, opts...)
	return client.New(os.Args[0], opts...)
}

func TestRunner_Introspect(t *testing.T) {
	res, err := helperRunner(t).Introspect(context.Background(), []string{"os", "net/http", "os"})
	require.NoError(t, err)

	assert.Equal(t, []string{"os", "net/http"}, res.Paths())
	r, ok := res.Get("net/http")
	require.True(t, ok)
	assert.Equal(t, []string{"Seen"}, r.Functions)
}

func TestRunner_EmptyRequestSkipsProcess(t *testing.T) {
	r := client.New("/definitely/not/a/binary")
	res, err := r.Introspect(context.Background(), []string{"", "  "})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Len())
}

func TestRunner_NonZeroExit(t *testing.T) {
	_, err := helperRunner(t).Introspect(context.Background(), []string{"fail"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exited with 3")
	assert.Contains(t, err.Error(), "cannot start")
}

func TestRunner_MissingFrame(t *testing.T) {
	_, err := helperRunner(t).Introspect(context.Background(), []string{"noframe"})
	assert.ErrorIs(t, err, frame.ErrNoFrame)
}

func TestRunner_Timeout(t *testing.T) {
	_, err := helperRunner(t, client.WithTimeout(200*time.Millisecond)).
		Introspect(context.Background(), []string{"slow"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunner_MissingBinary(t *testing.T) {
	_, err := client.New("/definitely/not/a/binary").Introspect(context.Background(), []string{"os"})
	assert.Error(t, err)
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, client.Dedupe([]string{"b", "a", " b ", "", "c", "a"}))
	assert.Empty(t, client.Dedupe(nil))
}
