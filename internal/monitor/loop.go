package monitor

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/muesli/termenv"
	"github.com/rileyhilliard/mgpustat/internal/logger"
)

// Loop is the plain refresh loop used when stdout isn't a terminal, or
// whenever the full-screen dashboard isn't wanted.
type Loop struct {
	source   Source
	interval time.Duration
	out      io.Writer
	term     *termenv.Output
	log      logger.Logger
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithTerminal makes the loop clear the screen before each frame.
func WithTerminal(o *termenv.Output) LoopOption {
	return func(l *Loop) {
		l.term = o
	}
}

// WithLogger sets the loop's logger.
func WithLogger(log logger.Logger) LoopOption {
	return func(l *Loop) {
		l.log = log
	}
}

// NewLoop creates a loop that renders a frame from source every interval.
func NewLoop(source Source, interval time.Duration, out io.Writer, opts ...LoopOption) *Loop {
	l := &Loop{
		source:   source,
		interval: interval,
		out:      out,
		log:      logger.Noop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run collects, clears, renders and waits until ctx is cancelled or a
// collection fails. Cancellation returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for cycle := 1; ; cycle++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		snap, err := l.source.Collect(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		if l.term != nil {
			l.term.ClearScreen()
		}
		if _, err := fmt.Fprintln(l.out, Render(snap)); err != nil {
			return err
		}
		l.log.Debug("rendered cycle %d", cycle)

		timer.Reset(l.interval)
	}
}
