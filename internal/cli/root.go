package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/rileyhilliard/mgpustat/internal/config"
	"github.com/rileyhilliard/mgpustat/internal/errors"
	"github.com/rileyhilliard/mgpustat/internal/exec"
	"github.com/rileyhilliard/mgpustat/internal/logger"
	"github.com/rileyhilliard/mgpustat/internal/monitor"
	"github.com/shoenig/go-m1cpu"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ExitInterrupted is the exit status after Ctrl+C or q.
const ExitInterrupted = 130

var rootCmd = &cobra.Command{
	Use:   "mgpustat",
	Short: "Live GPU usage for Apple Silicon Macs",
	Long: `mgpustat samples the GPU of an Apple Silicon Mac at a fixed interval and
shows its model, memory, active/idle residency, per-engine activity and the
busiest processes.

It runs system_profiler, powermetrics and ps every cycle. powermetrics needs
root, so mgpustat asks for your sudo password once before the first frame.

Examples:
  mgpustat            # refresh every second
  mgpustat -i 5       # refresh every 5 seconds
  mgpustat --plain    # print frames without the full-screen dashboard`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}
		return runDashboard(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.Flags().IntP(config.KeyInterval, "i", config.DefaultIntervalSeconds, "refresh interval in seconds")
	rootCmd.Flags().Bool(config.KeyPlain, false, "print frames instead of using the full-screen dashboard")
}

// runDashboard checks privileges and runs the dashboard until interrupted
// or a collection fails.
func runDashboard(parent context.Context, cfg *config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	log := logger.Default()

	if !m1cpu.IsAppleSilicon() {
		log.Warn("this doesn't look like an Apple Silicon Mac; GPU readings may be missing")
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := exec.EnsurePrivilege(ctx, os.Stdin, os.Stderr, os.Stderr); err != nil {
		return interrupted(ctx, err)
	}

	collector := monitor.NewCollector(exec.NewLocalRunner(cfg.CommandTimeout))
	log.Debug("refreshing every %s, command timeout %s", cfg.Interval, cfg.CommandTimeout)

	tty := term.IsTerminal(int(os.Stdout.Fd()))
	var err error
	if tty && !cfg.Plain {
		err = monitor.RunTUI(ctx, collector, cfg.Interval)
	} else {
		opts := []monitor.LoopOption{monitor.WithLogger(logger.NewEnvLogger("[loop]"))}
		if tty {
			opts = append(opts, monitor.WithTerminal(termenv.NewOutput(os.Stdout)))
		}
		err = monitor.NewLoop(collector, cfg.Interval, os.Stdout, opts...).Run(ctx)
	}
	return interrupted(ctx, err)
}

// interrupted turns a cancellation into the interrupt exit status and
// passes any other error through.
func interrupted(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if ctx.Err() != nil || stderrors.Is(err, context.Canceled) {
		return errors.NewExitError(ExitInterrupted)
	}
	return err
}

// Execute runs the root command and exits with the matching status.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	os.Exit(handleError(err, os.Stderr))
}

// handleError reports err on w and returns the process exit status.
func handleError(err error, w io.Writer) int {
	if code, ok := errors.GetExitCode(err); ok {
		return code
	}

	if isUnknownCommandError(err) {
		name := extractUnknownCommand(err)
		if name != "" {
			err = errors.New(errors.ErrConfig,
				fmt.Sprintf("'%s' isn't a mgpustat command", name),
				"mgpustat takes no arguments. Run 'mgpustat --help' to see the available flags.")
		} else {
			err = errors.WrapWithCode(err, errors.ErrConfig,
				"Unrecognized command-line option",
				"Run 'mgpustat --help' to see the available flags.")
		}
	}

	fmt.Fprintln(w, err)
	return 1
}

// isUnknownCommandError checks cobra's error text for an unknown command or flag.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "unknown command") || strings.Contains(msg, "unknown flag") ||
		strings.Contains(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls the quoted command name out of
// `unknown command "foo" for "mgpustat"`.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	if !strings.HasPrefix(msg, "unknown command") {
		return ""
	}
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
