package monitor

import "time"

// UnknownValue is reported for a GPU property system_profiler didn't list.
const UnknownValue = "Unknown"

// TopProcessCount is how many processes the snapshot keeps.
const TopProcessCount = 5

// GPUInfo is the static identity of the first display adapter.
type GPUInfo struct {
	Name   string
	Memory string
}

// GPUUsage holds the aggregate residency percentages from powermetrics.
// A nil field means the line wasn't present in this sample.
type GPUUsage struct {
	Active *float64
	Idle   *float64
}

// ActivePercent returns the active residency, or 0 when it wasn't reported.
func (u GPUUsage) ActivePercent() float64 {
	if u.Active == nil {
		return 0
	}
	return *u.Active
}

// IdlePercent returns the idle residency, or 0 when it wasn't reported.
func (u GPUUsage) IdlePercent() float64 {
	if u.Idle == nil {
		return 0
	}
	return *u.Idle
}

// EngineSample is the activity of one named GPU engine.
type EngineSample struct {
	Name    string
	Percent float64
}

// EngineUsage maps engine names to activity percentages, keeping the order
// in which engines first appeared in the report.
type EngineUsage []EngineSample

// Set records pct for name. An existing entry is updated in place so it
// keeps its original position.
func (e *EngineUsage) Set(name string, pct float64) {
	for i := range *e {
		if (*e)[i].Name == name {
			(*e)[i].Percent = pct
			return
		}
	}
	*e = append(*e, EngineSample{Name: name, Percent: pct})
}

// Process is one row of the process snapshot.
type Process struct {
	PID  string
	CPU  float64
	Name string
}

// Snapshot is everything collected in one refresh cycle.
type Snapshot struct {
	Timestamp time.Time
	Info      GPUInfo
	Usage     GPUUsage
	Engines   EngineUsage
	Processes []Process
}
