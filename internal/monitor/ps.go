package monitor

import (
	"bufio"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// ParseProcesses parses `ps -A -o pid,%cpu,comm` output and returns the
// TopProcessCount busiest processes, highest CPU first. The first line is
// the header. Lines that don't have a pid, a numeric CPU value and a name
// are skipped. Ties keep their ps order.
func ParseProcesses(output string) []Process {
	var procs []Process
	scanner := bufio.NewScanner(strings.NewReader(output))

	// Skip header line (PID %CPU COMM)
	scanner.Scan()

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		proc, ok := parseProcessLine(line)
		if !ok {
			continue
		}
		procs = append(procs, proc)
	}

	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].CPU > procs[j].CPU
	})

	if len(procs) > TopProcessCount {
		procs = procs[:TopProcessCount]
	}
	return procs
}

// parseProcessLine cuts a ps row into pid, CPU and the rest of the line as
// the command name. comm may contain spaces, so only two cuts are made.
func parseProcessLine(line string) (Process, bool) {
	pid, rest := cutField(line)
	cpuStr, rest := cutField(rest)
	name := strings.TrimSpace(rest)
	if pid == "" || cpuStr == "" || name == "" {
		return Process{}, false
	}

	// Some locales print the CPU column with a decimal comma.
	cpu, err := strconv.ParseFloat(strings.Replace(cpuStr, ",", ".", 1), 64)
	if err != nil || math.IsNaN(cpu) || math.IsInf(cpu, 0) {
		return Process{}, false
	}

	return Process{PID: pid, CPU: cpu, Name: name}, true
}

// cutField returns the first whitespace-delimited field of s and everything after it.
func cutField(s string) (field, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}
