package monitor

import (
	"context"
	"strings"
	"time"

	"github.com/rileyhilliard/mgpustat/internal/exec"
	"github.com/rileyhilliard/mgpustat/internal/logger"
)

// Source produces one Snapshot per call. Collector is the real
// implementation; the display front ends only depend on this.
type Source interface {
	Collect(ctx context.Context) (Snapshot, error)
}

// Collector gathers GPU and process metrics by running the macOS
// diagnostic utilities through a Runner.
type Collector struct {
	runner exec.Runner
	log    logger.Logger
	now    func() time.Time
}

// NewCollector creates a collector that runs commands through runner.
func NewCollector(runner exec.Runner) *Collector {
	return &Collector{
		runner: runner,
		log:    logger.NewEnvLogger("[collect]"),
		now:    time.Now,
	}
}

// SetLogger replaces the collector's logger.
func (c *Collector) SetLogger(l logger.Logger) {
	c.log = l
}

// FetchInfo returns the model name and VRAM of the first GPU.
// Failing to run system_profiler or to parse its JSON is an error.
func (c *Collector) FetchInfo(ctx context.Context) (GPUInfo, error) {
	out, err := c.output(ctx, GPUInfoCommand())
	if err != nil {
		return GPUInfo{}, err
	}
	return ParseGPUInfo(out)
}

// FetchUsage takes one powermetrics sample and returns the aggregate
// residency and per-engine activity found in it.
func (c *Collector) FetchUsage(ctx context.Context) (GPUUsage, EngineUsage, error) {
	out, err := c.output(ctx, GPUUsageCommand())
	if err != nil {
		return GPUUsage{}, nil, err
	}

	usage, engines := ParseGPUUsage(string(out))
	if usage.Active == nil && usage.Idle == nil {
		c.log.Debug("no GPU residency lines in %d bytes of powermetrics output", len(out))
	}
	return usage, engines, nil
}

// FetchProcesses returns the busiest processes by CPU, at most TopProcessCount.
func (c *Collector) FetchProcesses(ctx context.Context) ([]Process, error) {
	out, err := c.output(ctx, ProcessCommand())
	if err != nil {
		return nil, err
	}
	return ParseProcesses(string(out)), nil
}

// Collect runs the three fetches one after another and assembles a Snapshot.
// The first failure aborts the cycle.
func (c *Collector) Collect(ctx context.Context) (Snapshot, error) {
	info, err := c.FetchInfo(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	usage, engines, err := c.FetchUsage(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	procs, err := c.FetchProcesses(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Timestamp: c.now(),
		Info:      info,
		Usage:     usage,
		Engines:   engines,
		Processes: procs,
	}, nil
}

func (c *Collector) output(ctx context.Context, argv []string) ([]byte, error) {
	c.log.Debug("running %s", strings.Join(argv, " "))
	out, err := exec.Output(ctx, c.runner, argv)
	if err != nil {
		c.log.Debug("%s failed: %v", argv[0], err)
		return nil, err
	}
	return out, nil
}
