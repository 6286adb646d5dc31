package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// BuildVersion is stamped into the test binary so version output can be told
// apart from an installed lagree
const BuildVersion = "v0.0.0-integration"

const commandTimeout = 30 * time.Second

// Binary is a lagree executable compiled for the test run
type Binary struct {
	Path string
}

// CommandResult holds the outcome of one lagree invocation
type CommandResult struct {
	Args     []string
	ExitCode int
	Stderr   string
	Stdout   string
	TimedOut bool
}

var build struct {
	binary *Binary
	err    error
	once   sync.Once
}

// BuildBinary compiles ./cmd once per test run with BuildVersion injected.
// Call it from TestMain; RunCommand uses the result.
func BuildBinary() (*Binary, error) {
	build.once.Do(func() {
		root, err := moduleRoot()
		if err != nil {
			build.err = fmt.Errorf("locating module root: %w", err)
			return
		}

		dir, err := os.MkdirTemp("", "lagree-integration-*")
		if err != nil {
			build.err = err
			return
		}

		bin := &Binary{Path: filepath.Join(dir, "lagree")}
		cmd := exec.Command("go", "build",
			"-ldflags", "-X main.Version="+BuildVersion,
			"-o", bin.Path, "./cmd")
		cmd.Dir = root
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			build.err = fmt.Errorf("building lagree: %w", err)
			return
		}
		build.binary = bin
	})
	return build.binary, build.err
}

// CleanupBinary removes the compiled binary's temp directory
func CleanupBinary() {
	if build.binary != nil {
		_ = os.RemoveAll(filepath.Dir(build.binary.Path))
	}
}

// RunCommand runs the binary built by BuildBinary inside env
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()
	if build.binary == nil {
		tb.Fatal("lagree binary not built; call harness.BuildBinary from TestMain")
	}
	return build.binary.Run(tb, env, args...)
}

// Run executes lagree with args. Commands that outlive commandTimeout, such as
// a TUI waiting for a terminal, are killed and reported with TimedOut set.
func (b *Binary) Run(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, b.Path, args...)
	cmd.Env = env.Environ()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := CommandResult{Args: args}
	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		tb.Logf("lagree %s timed out after %v", strings.Join(args, " "), commandTimeout)
		result.ExitCode = -1
		result.TimedOut = true
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		tb.Logf("lagree %s failed to run: %v", strings.Join(args, " "), err)
		result.ExitCode = -1
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}

func moduleRoot() (string, error) {
	out, err := exec.Command("go", "list", "-m", "-f", "{{.Dir}}").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
