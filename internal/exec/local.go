package exec

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/rileyhilliard/mgpustat/internal/errors"
	"github.com/rileyhilliard/mgpustat/internal/logger"
)

// DefaultTimeout bounds a single utility invocation. powermetrics samples
// for one second; anything past this is a hung process.
const DefaultTimeout = 30 * time.Second

// LocalRunner runs commands on this machine without a shell.
type LocalRunner struct {
	// Timeout caps each Run. Zero means DefaultTimeout.
	Timeout time.Duration
	Log     logger.Logger
}

// NewLocalRunner creates a runner with the given per-command timeout.
func NewLocalRunner(timeout time.Duration) *LocalRunner {
	return &LocalRunner{
		Timeout: timeout,
		Log:     logger.NewEnvLogger("[exec]"),
	}
}

// Run executes argv and captures stdout and stderr separately.
// A command that ran but exited non-zero is not an error here; its exit
// code is reported in the Result.
func (r *LocalRunner) Run(ctx context.Context, argv []string) (Result, error) {
	if len(argv) == 0 {
		return Result{ExitCode: -1}, errors.New(errors.ErrExec,
			"No command given",
			"This shouldn't happen - please report this bug!")
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(runCtx, argv[0], argv[1:]...)
	command.Stdout = &stdout
	command.Stderr = &stderr

	start := time.Now()
	runErr := command.Run()
	r.log().Debug("%s finished in %s", strings.Join(argv, " "), time.Since(start).Round(time.Millisecond))

	result := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}

	// Parent cancellation (interrupt) takes precedence over whatever the
	// killed process reported.
	if ctx.Err() != nil {
		result.ExitCode = -1
		return result, ctx.Err()
	}
	if runCtx.Err() == context.DeadlineExceeded {
		result.ExitCode = -1
		return result, errors.WrapWithCode(runCtx.Err(), errors.ErrExec,
			"'"+argv[0]+"' didn't finish within "+timeout.String(),
			"The utility may be hung. Try again, or check it runs on its own: "+strings.Join(argv, " "))
	}

	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		result.ExitCode = -1
		return result, HandleStartError(argv, runErr)
	}

	return result, nil
}

func (r *LocalRunner) log() logger.Logger {
	if r.Log == nil {
		return logger.Noop()
	}
	return r.Log
}

// ExecuteInteractive runs argv attached to the given streams, for commands
// that need the user's terminal (such as a sudo password prompt).
// Returns the exit code and any execution error.
func ExecuteInteractive(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) (exitCode int, err error) {
	if len(argv) == 0 {
		return -1, errors.New(errors.ErrExec,
			"No command given",
			"This shouldn't happen - please report this bug!")
	}

	command := exec.CommandContext(ctx, argv[0], argv[1:]...)
	command.Stdin = stdin
	command.Stdout = stdout
	command.Stderr = stderr

	runErr := command.Run()
	if runErr != nil {
		if ctx.Err() != nil {
			return -1, ctx.Err()
		}
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return -1, HandleStartError(argv, runErr)
	}

	return 0, nil
}
