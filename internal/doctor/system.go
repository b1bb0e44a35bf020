package doctor

import (
	"context"
	stderrors "errors"
	"fmt"
	osexec "os/exec"

	"github.com/rileyhilliard/mgpustat/internal/errors"
	"github.com/rileyhilliard/mgpustat/internal/exec"
	"github.com/rileyhilliard/mgpustat/internal/monitor"
	"github.com/shoenig/go-m1cpu"
)

// Check categories, in report order.
const (
	CategoryPlatform = "PLATFORM"
	CategoryTools    = "TOOLS"
	CategoryAccess   = "ACCESS"
	CategoryGPU      = "GPU"
)

// Categories lists the categories in the order they are reported.
var Categories = []string{CategoryPlatform, CategoryTools, CategoryAccess, CategoryGPU}

// RequiredTools are the utilities every refresh cycle runs.
var RequiredTools = []string{"system_profiler", "powermetrics", "ps"}

// NewSystemChecks returns the checks for the local machine. Commands run
// through runner.
func NewSystemChecks(runner exec.Runner) []Check {
	checks := []Check{&PlatformCheck{}}
	for _, tool := range RequiredTools {
		checks = append(checks, &ToolCheck{Tool: tool})
	}
	checks = append(checks,
		&PrivilegeCheck{Runner: runner},
		&GPUCheck{Runner: runner},
	)
	return checks
}

// PlatformCheck warns when the CPU isn't Apple Silicon.
type PlatformCheck struct {
	// IsAppleSilicon defaults to m1cpu.IsAppleSilicon.
	IsAppleSilicon func() bool
}

func (c *PlatformCheck) Name() string     { return "apple_silicon" }
func (c *PlatformCheck) Category() string { return CategoryPlatform }

func (c *PlatformCheck) Run(_ context.Context) CheckResult {
	detect := c.IsAppleSilicon
	if detect == nil {
		detect = m1cpu.IsAppleSilicon
	}

	if !detect() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Not an Apple Silicon Mac",
			Suggestion: "GPU residency is only reported on Apple Silicon; expect Unknown and 0.00% values.",
		}
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Apple Silicon detected",
	}
}

// ToolCheck verifies a utility is on PATH.
type ToolCheck struct {
	Tool string

	// LookPath defaults to os/exec.LookPath.
	LookPath func(file string) (string, error)
}

func (c *ToolCheck) Name() string     { return "tool_" + c.Tool }
func (c *ToolCheck) Category() string { return CategoryTools }

func (c *ToolCheck) Run(_ context.Context) CheckResult {
	lookPath := c.LookPath
	if lookPath == nil {
		lookPath = osexec.LookPath
	}

	path, err := lookPath(c.Tool)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s not found", c.Tool),
			Suggestion: fmt.Sprintf("%s ships with macOS. Make sure /usr/bin and /usr/sbin are on your PATH.", c.Tool),
		}
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%s (%s)", c.Tool, path),
	}
}

// PrivilegeCheck reports whether powermetrics can be run without a prompt.
type PrivilegeCheck struct {
	Runner exec.Runner

	// IsRoot defaults to exec.IsRoot.
	IsRoot func() bool
}

func (c *PrivilegeCheck) Name() string     { return "sudo" }
func (c *PrivilegeCheck) Category() string { return CategoryAccess }

func (c *PrivilegeCheck) Run(ctx context.Context) CheckResult {
	isRoot := c.IsRoot
	if isRoot == nil {
		isRoot = exec.IsRoot
	}
	if isRoot() {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "Running as root",
		}
	}

	res, err := c.Runner.Run(ctx, []string{"sudo", "-n", "true"})
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Couldn't run sudo",
			Suggestion: describe(err),
		}
	}
	if res.ExitCode != 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "sudo will ask for your password",
			Suggestion: "mgpustat runs 'sudo -v' before the first frame. Run it as root to skip the prompt.",
		}
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "sudo credentials are cached",
	}
}

// GPUCheck runs system_profiler once and reports the GPU it finds.
type GPUCheck struct {
	Runner exec.Runner
}

func (c *GPUCheck) Name() string     { return "gpu_info" }
func (c *GPUCheck) Category() string { return CategoryGPU }

func (c *GPUCheck) Run(ctx context.Context) CheckResult {
	out, err := exec.Output(ctx, c.Runner, monitor.GPUInfoCommand())
	if err == nil {
		var info monitor.GPUInfo
		info, err = monitor.ParseGPUInfo(out)
		if err == nil {
			return CheckResult{
				Name:    c.Name(),
				Status:  StatusPass,
				Message: fmt.Sprintf("%s, %s", info.Name, info.Memory),
			}
		}
	}

	return CheckResult{
		Name:       c.Name(),
		Status:     StatusFail,
		Message:    "Couldn't read the GPU description",
		Suggestion: describe(err),
	}
}

// describe returns a one-line explanation of err, preferring the message
// and suggestion of a structured error.
func describe(err error) string {
	var mgErr *errors.Error
	if stderrors.As(err, &mgErr) {
		if mgErr.Suggestion != "" {
			return mgErr.Message + ". " + mgErr.Suggestion
		}
		return mgErr.Message
	}
	return err.Error()
}
