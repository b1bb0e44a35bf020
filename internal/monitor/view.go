package monitor

import (
	"fmt"

	"github.com/rileyhilliard/mgpustat/internal/ui"
)

// Table titles.
const (
	StatsTitle     = "M1 GPU Statistics"
	EnginesTitle   = "GPU Engine Usage"
	ProcessesTitle = "Top GPU Processes"
)

// FormatPercent renders a percentage with two decimals, e.g. "12.50%".
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

// Render draws the three dashboard tables for one snapshot.
func Render(snap Snapshot) string {
	return ui.JoinSections(
		renderStats(snap),
		renderEngines(snap.Engines),
		renderProcesses(snap.Processes),
	)
}

func renderStats(snap Snapshot) string {
	columns := []ui.TableColumn{
		{Title: "Property", Style: ui.KeyStyle},
		{Title: "Value", Style: ui.ValueStyle},
	}
	rows := [][]string{
		{"GPU Name", snap.Info.Name},
		{"GPU Memory", snap.Info.Memory},
		{"GPU Active", FormatPercent(snap.Usage.ActivePercent())},
		{"GPU Idle", FormatPercent(snap.Usage.IdlePercent())},
	}
	return ui.RenderTable(StatsTitle, columns, rows)
}

func renderEngines(engines EngineUsage) string {
	columns := []ui.TableColumn{
		{Title: "Engine", Style: ui.KeyStyle},
		{Title: "Usage", Style: ui.ValueStyle},
	}
	rows := make([][]string, 0, len(engines))
	for _, e := range engines {
		rows = append(rows, []string{e.Name, FormatPercent(e.Percent)})
	}
	return ui.RenderTable(EnginesTitle, columns, rows)
}

func renderProcesses(procs []Process) string {
	columns := []ui.TableColumn{
		{Title: "PID", Style: ui.KeyStyle},
		{Title: "CPU Usage", Style: ui.ValueStyle},
		{Title: "Process Name", Style: ui.NameStyle},
	}
	rows := make([][]string, 0, len(procs))
	for _, p := range procs {
		rows = append(rows, []string{p.PID, FormatPercent(p.CPU), p.Name})
	}
	return ui.RenderTable(ProcessesTitle, columns, rows)
}
