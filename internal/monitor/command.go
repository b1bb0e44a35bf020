package monitor

import "github.com/rileyhilliard/mgpustat/internal/exec"

// Sampling parameters passed to powermetrics: one 1000ms sample of the
// gpu_power sampler. --show-process-energy keeps the report in the same
// shape as an interactive powermetrics run even though the per-process
// section isn't read.
const (
	PowermetricsSampler    = "gpu_power"
	PowermetricsIntervalMS = "1000"
	PowermetricsSamples    = "1"
)

// GPUInfoCommand returns the argv that describes the installed GPUs as JSON.
func GPUInfoCommand() []string {
	return []string{"system_profiler", "SPDisplaysDataType", "-json"}
}

// GPUUsageCommand returns the argv for a single privileged powermetrics sample.
func GPUUsageCommand() []string {
	return exec.SudoArgv([]string{
		"powermetrics",
		"-s", PowermetricsSampler,
		"-i", PowermetricsIntervalMS,
		"-n", PowermetricsSamples,
		"--show-process-energy",
	})
}

// ProcessCommand returns the argv that lists every process with pid, CPU and name.
func ProcessCommand() []string {
	return []string{"ps", "-A", "-o", "pid,%cpu,comm"}
}
