// Package monitor implements the Apple Silicon GPU dashboard.
//
// Each refresh cycle runs three diagnostic utilities one after another,
// parses their text into a Snapshot, clears the screen and draws three
// tables:
//
//	system_profiler SPDisplaysDataType -json        -> GPUInfo
//	sudo powermetrics -s gpu_power -i 1000 -n 1 ... -> GPUUsage, EngineUsage
//	ps -A -o pid,%cpu,comm                          -> top 5 Process
//
// # Parsing
//
// ParseGPUInfo, ParseGPUUsage and ParseProcesses are pure functions over the
// utilities' output so they can be exercised with literal fixtures. The
// free-text parsers never fail: lines they don't recognize are skipped and
// missing fields stay unset. Only the structured system_profiler document
// can produce a parse error.
//
// # Collection
//
// Collector runs the utilities through an exec.Runner. Every call builds
// fresh records; nothing is kept between cycles.
//
// # Display
//
// Two front ends drive the same collect, render, wait cycle:
//
//	Loop  - plain writer loop, used when stdout isn't a terminal
//	Model - Bubble Tea model on the alternate screen for interactive use
//
// Both stop on context cancellation or the first collector error.
package monitor
