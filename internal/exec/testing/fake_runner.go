// Package testing provides test doubles for the exec package.
package testing

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rileyhilliard/mgpustat/internal/exec"
)

// FakeRunner returns canned results keyed by the space-joined argv.
// It records every call for assertions.
type FakeRunner struct {
	mu sync.Mutex

	Results map[string]exec.Result
	Errors  map[string]error

	// Calls holds each argv in invocation order.
	Calls [][]string
}

// NewFakeRunner creates a runner with no configured commands.
// Unconfigured commands fail as if the binary were missing.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Results: make(map[string]exec.Result),
		Errors:  make(map[string]error),
	}
}

// SetOutput configures argv to succeed with the given stdout.
func (f *FakeRunner) SetOutput(argv []string, stdout string) *FakeRunner {
	return f.SetResult(argv, exec.Result{Stdout: []byte(stdout)})
}

// SetResult configures the full result for argv.
func (f *FakeRunner) SetResult(argv []string, res exec.Result) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Results[key(argv)] = res
	return f
}

// SetError configures argv to fail to run with err.
func (f *FakeRunner) SetError(argv []string, err error) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Errors[key(argv)] = err
	return f
}

// Run implements exec.Runner.
func (f *FakeRunner) Run(ctx context.Context, argv []string) (exec.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, append([]string(nil), argv...))

	if err := ctx.Err(); err != nil {
		return exec.Result{ExitCode: -1}, err
	}
	k := key(argv)
	if err, ok := f.Errors[k]; ok {
		return exec.Result{ExitCode: -1}, err
	}
	if res, ok := f.Results[k]; ok {
		return res, nil
	}
	return exec.Result{ExitCode: -1}, fmt.Errorf("fake runner: no result configured for %q", k)
}

// CallCount returns how many times Run was invoked.
func (f *FakeRunner) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

func key(argv []string) string {
	return strings.Join(argv, " ")
}
