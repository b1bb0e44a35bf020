package exec

import (
	"context"
	"io"
	"os"

	"github.com/rileyhilliard/mgpustat/internal/errors"
)

// SudoArgv prefixes argv with a non-interactive sudo unless the process is
// already root. Non-interactive so that an expired credential fails the
// cycle instead of prompting underneath the dashboard.
func SudoArgv(argv []string) []string {
	if IsRoot() {
		return argv
	}
	return append([]string{"sudo", "-n"}, argv...)
}

// IsRoot reports whether the effective user is root.
func IsRoot() bool {
	return os.Geteuid() == 0
}

// EnsurePrivilege validates sudo credentials up front so the password prompt
// happens on a plain terminal, before any dashboard frame is drawn.
func EnsurePrivilege(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) error {
	if IsRoot() {
		return nil
	}

	code, err := ExecuteInteractive(ctx, []string{"sudo", "-v"}, stdin, stdout, stderr)
	if err != nil {
		return err
	}
	if code != 0 {
		return errors.New(errors.ErrPriv,
			"Couldn't get sudo privileges",
			"powermetrics needs root. Enter your password when prompted, or run mgpustat as root.")
	}
	return nil
}
