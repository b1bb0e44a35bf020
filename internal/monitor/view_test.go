package monitor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleSnapshot() Snapshot {
	active, idle := 25.0, 75.0
	return Snapshot{
		Info:  GPUInfo{Name: "Apple M1", Memory: "4 GB"},
		Usage: GPUUsage{Active: &active, Idle: &idle},
		Engines: EngineUsage{
			{Name: "Compute Engine", Percent: 20},
			{Name: "Renderer", Percent: 15},
		},
		Processes: []Process{
			{PID: "88", CPU: 12.346, Name: "WindowServer"},
		},
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "25.00%", FormatPercent(25))
	assert.Equal(t, "0.00%", FormatPercent(0))
	assert.Equal(t, "12.35%", FormatPercent(12.346))
}

func TestRender(t *testing.T) {
	out := Render(sampleSnapshot())

	for _, want := range []string{
		StatsTitle, EnginesTitle, ProcessesTitle,
		"Property", "Value", "GPU Name", "Apple M1", "GPU Memory", "4 GB",
		"GPU Active", "25.00%", "GPU Idle", "75.00%",
		"Engine", "Usage", "Compute Engine", "20.00%", "Renderer", "15.00%",
		"PID", "CPU Usage", "Process Name", "88", "12.35%", "WindowServer",
	} {
		assert.Contains(t, out, want)
	}

	assert.Less(t, strings.Index(out, StatsTitle), strings.Index(out, EnginesTitle))
	assert.Less(t, strings.Index(out, EnginesTitle), strings.Index(out, ProcessesTitle))
	assert.Less(t, strings.Index(out, "Compute Engine"), strings.Index(out, "Renderer"))
}

func TestRender_MissingUsageShowsZero(t *testing.T) {
	snap := Snapshot{Info: GPUInfo{Name: UnknownValue, Memory: UnknownValue}}

	out := Render(snap)

	assert.Contains(t, out, "Unknown")
	assert.Equal(t, 2, strings.Count(out, "0.00%"), "active and idle both default to zero")
}
