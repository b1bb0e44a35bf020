package monitor

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

// Markers searched for in the powermetrics gpu_power report.
const (
	activeResidencyMarker = "GPU Active residency"
	idleResidencyMarker   = "GPU Idle residency"
	enginePrefix          = "GPU "
	engineMarker          = " active residency"
	engineSuffix          = " active"
)

// percentRe matches the first decimal percentage on a line, e.g. "25.00%".
var percentRe = regexp.MustCompile(`(\d+\.\d+)%`)

// maxReportLine bounds a single powermetrics line. The process energy
// section can produce long lines.
const maxReportLine = 1024 * 1024

// ParseGPUUsage extracts GPU residency and per-engine activity from a
// powermetrics text report:
//
//	GPU Active residency: 25.00%
//	GPU Idle residency: 75.00%
//	GPU Compute Engine active residency: 20.00%
//
// Unrecognized lines are skipped. The engine name is whatever sits between
// "GPU " and " active" in the label, so a change in Apple's wording changes
// the names shown.
func ParseGPUUsage(output string) (GPUUsage, EngineUsage) {
	var usage GPUUsage
	engines := EngineUsage{}

	scanner := bufio.NewScanner(strings.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), maxReportLine)

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.Contains(line, activeResidencyMarker):
			if pct, ok := firstPercent(line); ok {
				usage.Active = &pct
			}
		case strings.Contains(line, idleResidencyMarker):
			if pct, ok := firstPercent(line); ok {
				usage.Idle = &pct
			}
		case strings.Contains(line, enginePrefix) && strings.Contains(line, engineMarker):
			if name, pct, ok := parseEngineLine(line); ok {
				engines.Set(name, pct)
			}
		}
	}

	return usage, engines
}

// parseEngineLine splits "GPU <name> active residency: <pct>%" into the
// engine name and percentage.
func parseEngineLine(line string) (string, float64, bool) {
	label, value, found := strings.Cut(line, ":")
	if !found {
		return "", 0, false
	}

	_, rest, found := strings.Cut(label, enginePrefix)
	if !found {
		return "", 0, false
	}
	name, _, _ := strings.Cut(rest, engineSuffix)
	name = strings.TrimSpace(name)
	if name == "" {
		return "", 0, false
	}

	pct, ok := firstPercent(value)
	if !ok {
		return "", 0, false
	}
	return name, pct, true
}

// firstPercent returns the first "<digits>.<digits>%" value in s.
func firstPercent(s string) (float64, bool) {
	match := percentRe.FindStringSubmatch(s)
	if len(match) < 2 {
		return 0, false
	}
	pct, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	return pct, true
}
