package exec

import (
	"context"
	stderrors "errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/rileyhilliard/mgpustat/internal/errors"
)

// Result holds the captured output of a finished command.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Runner runs a command given as argv and captures its output.
// Implementations return an error only when the command could not be run
// to completion; a non-zero exit is reported through Result.ExitCode.
type Runner interface {
	Run(ctx context.Context, argv []string) (Result, error)
}

// Output runs argv and returns its stdout, treating a non-zero exit as a
// failure described by the captured stderr.
func Output(ctx context.Context, r Runner, argv []string) ([]byte, error) {
	res, err := r.Run(ctx, argv)
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		return nil, HandleExecError(argv, string(res.Stderr), res.ExitCode)
	}
	return res.Stdout, nil
}

// commandNotFoundPatterns detect a missing binary reported by a wrapper
// such as sudo or env rather than by exec itself.
var commandNotFoundPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)sudo: (\S+): command not found`),
	regexp.MustCompile(`(?i)env: (\S+): No such file or directory`),
	regexp.MustCompile(`(?i)(\S+): command not found`),
}

// privilegePatterns detect sudo refusing to run without a cached credential
// or a user that isn't allowed to escalate.
var privilegePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)sudo: a password is required`),
	regexp.MustCompile(`(?i)sudo: a terminal is required`),
	regexp.MustCompile(`(?i)is not in the sudoers file`),
	regexp.MustCompile(`(?i)is not allowed to execute`),
	regexp.MustCompile(`(?i)must be invoked as the superuser`),
}

// IsCommandNotFound checks if stderr indicates a missing command.
// Returns the command name (if extractable) and whether it's a command-not-found error.
func IsCommandNotFound(stderr string, exitCode int) (string, bool) {
	if exitCode == 0 {
		return "", false
	}
	for _, pattern := range commandNotFoundPatterns {
		if matches := pattern.FindStringSubmatch(stderr); len(matches) > 1 {
			return matches[1], true
		}
	}
	if exitCode == 127 {
		return "", true
	}
	return "", false
}

// IsPrivilegeDenied checks if stderr shows the command was refused for lack of root.
func IsPrivilegeDenied(stderr string) bool {
	for _, pattern := range privilegePatterns {
		if pattern.MatchString(stderr) {
			return true
		}
	}
	return false
}

// HandleExecError turns a non-zero exit into a structured error with a
// suggestion matched to the failure.
func HandleExecError(argv []string, stderr string, exitCode int) error {
	tool := toolName(argv)
	detail := strings.TrimSpace(stderr)
	if detail == "" {
		detail = fmt.Sprintf("exit status %d with no error output", exitCode)
	}
	cause := stderrors.New(detail)

	if IsPrivilegeDenied(stderr) {
		return errors.WrapWithCode(cause, errors.ErrPriv,
			fmt.Sprintf("'%s' needs root privileges", tool),
			"Refresh your sudo credentials with 'sudo -v', or run mgpustat as root.")
	}

	if name, notFound := IsCommandNotFound(stderr, exitCode); notFound {
		if name == "" {
			name = tool
		}
		return errors.WrapWithCode(cause, errors.ErrExec,
			fmt.Sprintf("'%s' not found", name),
			installHint(name))
	}

	return errors.WrapWithCode(cause, errors.ErrExec,
		fmt.Sprintf("'%s' exited with code %d", tool, exitCode),
		"Run it by hand to see the full output: "+strings.Join(argv, " "))
}

// HandleStartError wraps a failure to start argv[0] at all.
func HandleStartError(argv []string, err error) error {
	name := argv[0]
	if stderrors.Is(err, exec.ErrNotFound) {
		return errors.WrapWithCode(err, errors.ErrExec,
			fmt.Sprintf("'%s' not found", name),
			installHint(name))
	}
	return errors.WrapWithCode(err, errors.ErrExec,
		fmt.Sprintf("Couldn't run '%s'", name),
		"Make sure the command exists and is executable.")
}

// toolName returns the utility being invoked, looking past a sudo prefix.
func toolName(argv []string) string {
	for _, arg := range argv {
		if arg == "sudo" || strings.HasPrefix(arg, "-") {
			continue
		}
		return arg
	}
	if len(argv) > 0 {
		return argv[0]
	}
	return "command"
}

func installHint(name string) string {
	switch name {
	case "system_profiler", "powermetrics", "ps", "sudo":
		return fmt.Sprintf("'%s' ships with macOS. mgpustat only works on a Mac; check that /usr/sbin and /bin are in PATH.", name)
	default:
		return fmt.Sprintf("Install '%s' or add it to your PATH.", name)
	}
}
