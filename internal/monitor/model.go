package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/mgpustat/internal/ui"
)

// snapshotMsg carries a completed collection.
type snapshotMsg struct {
	snap Snapshot
}

// errMsg carries a fatal collection error.
type errMsg struct {
	err error
}

// tickMsg fires when the refresh interval has elapsed.
type tickMsg time.Time

// Model is the full-screen dashboard. It collects, renders, waits for the
// interval and collects again, showing a spinner until the first sample.
type Model struct {
	ctx      context.Context
	source   Source
	interval time.Duration
	keys     KeyMap
	spinner  spinner.Model

	snap        *Snapshot
	err         error
	interrupted bool
	quitting    bool
}

// NewModel creates a dashboard model reading from source.
func NewModel(ctx context.Context, source Source, interval time.Duration) Model {
	return Model{
		ctx:      ctx,
		source:   source,
		interval: interval,
		keys:     DefaultKeyMap(),
		spinner:  ui.NewSpinner(),
	}
}

// Init starts the spinner and the first collection.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.collectCmd())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.interrupted = true
			m.quitting = true
			return m, tea.Quit
		}

	case snapshotMsg:
		snap := msg.snap
		m.snap = &snap
		return m, m.tickCmd()

	case tickMsg:
		return m, m.collectCmd()

	case errMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit

	case spinner.TickMsg:
		if m.snap != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.snap == nil {
		return fmt.Sprintf("\n %s Sampling GPU...\n", m.spinner.View())
	}
	footer := ui.MutedStyle.Render(fmt.Sprintf("Updated %s · every %s · q to quit",
		m.snap.Timestamp.Format("15:04:05"), m.interval))
	return Render(*m.snap) + "\n\n" + footer
}

// Err returns the collection error that stopped the dashboard, if any.
func (m Model) Err() error {
	return m.err
}

// Interrupted reports whether the user quit the dashboard.
func (m Model) Interrupted() bool {
	return m.interrupted
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) collectCmd() tea.Cmd {
	ctx, source := m.ctx, m.source
	return func() tea.Msg {
		snap, err := source.Collect(ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return snapshotMsg{snap: snap}
	}
}

// RunTUI runs the full-screen dashboard until the user quits, ctx is
// cancelled, or a collection fails. Quitting returns context.Canceled.
func RunTUI(ctx context.Context, source Source, interval time.Duration) error {
	p := tea.NewProgram(NewModel(ctx, source, interval), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return err
	}

	m, ok := final.(Model)
	if !ok {
		return nil
	}
	if m.Err() != nil {
		return m.Err()
	}
	if m.Interrupted() {
		return context.Canceled
	}
	return nil
}
