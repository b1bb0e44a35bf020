package doctor

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/rileyhilliard/mgpustat/internal/exec"
	exectesting "github.com/rileyhilliard/mgpustat/internal/exec/testing"
	"github.com/rileyhilliard/mgpustat/internal/monitor"
)

func TestNewSystemChecks(t *testing.T) {
	checks := NewSystemChecks(exectesting.NewFakeRunner())

	var names []string
	for _, c := range checks {
		names = append(names, c.Name())
	}
	want := "apple_silicon,tool_system_profiler,tool_powermetrics,tool_ps,sudo,gpu_info"
	if got := strings.Join(names, ","); got != want {
		t.Errorf("got checks %s, want %s", got, want)
	}

	grouped := GroupByCategory(checks)
	for cat := range grouped {
		found := false
		for _, known := range Categories {
			if cat == known {
				found = true
			}
		}
		if !found {
			t.Errorf("category %q is not listed in Categories", cat)
		}
	}
}

func TestPlatformCheck(t *testing.T) {
	pass := (&PlatformCheck{IsAppleSilicon: func() bool { return true }}).Run(context.Background())
	if pass.Status != StatusPass {
		t.Errorf("expected pass on Apple Silicon, got %s", pass.Status)
	}

	warn := (&PlatformCheck{IsAppleSilicon: func() bool { return false }}).Run(context.Background())
	if warn.Status != StatusWarn {
		t.Errorf("expected warn elsewhere, got %s", warn.Status)
	}
	if warn.Suggestion == "" {
		t.Error("expected a suggestion with the warning")
	}
}

func TestToolCheck(t *testing.T) {
	found := &ToolCheck{
		Tool:     "powermetrics",
		LookPath: func(string) (string, error) { return "/usr/bin/powermetrics", nil },
	}
	res := found.Run(context.Background())
	if res.Status != StatusPass {
		t.Errorf("expected pass, got %s", res.Status)
	}
	if !strings.Contains(res.Message, "/usr/bin/powermetrics") {
		t.Errorf("message should include the path, got %q", res.Message)
	}

	missing := &ToolCheck{
		Tool:     "powermetrics",
		LookPath: func(string) (string, error) { return "", stderrors.New("not found") },
	}
	res = missing.Run(context.Background())
	if res.Status != StatusFail {
		t.Errorf("expected fail, got %s", res.Status)
	}
	if res.Message != "powermetrics not found" {
		t.Errorf("unexpected message %q", res.Message)
	}
}

func TestPrivilegeCheck(t *testing.T) {
	sudoCheck := []string{"sudo", "-n", "true"}
	notRoot := func() bool { return false }

	tests := []struct {
		name   string
		runner *exectesting.FakeRunner
		isRoot func() bool
		want   CheckStatus
	}{
		{
			name:   "root",
			runner: exectesting.NewFakeRunner(),
			isRoot: func() bool { return true },
			want:   StatusPass,
		},
		{
			name:   "cached credentials",
			runner: exectesting.NewFakeRunner().SetOutput(sudoCheck, ""),
			isRoot: notRoot,
			want:   StatusPass,
		},
		{
			name: "password needed",
			runner: exectesting.NewFakeRunner().SetResult(sudoCheck, exec.Result{
				Stderr:   []byte("sudo: a password is required\n"),
				ExitCode: 1,
			}),
			isRoot: notRoot,
			want:   StatusWarn,
		},
		{
			name:   "sudo missing",
			runner: exectesting.NewFakeRunner().SetError(sudoCheck, stderrors.New("exec: \"sudo\": executable file not found")),
			isRoot: notRoot,
			want:   StatusFail,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := &PrivilegeCheck{Runner: tc.runner, IsRoot: tc.isRoot}
			if got := c.Run(context.Background()).Status; got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestGPUCheck(t *testing.T) {
	runner := exectesting.NewFakeRunner().SetOutput(monitor.GPUInfoCommand(),
		`{"SPDisplaysDataType":[{"sppci_model":"Apple M1","spdisplays_vram":"4 GB"}]}`)

	res := (&GPUCheck{Runner: runner}).Run(context.Background())

	if res.Status != StatusPass {
		t.Fatalf("expected pass, got %s: %s", res.Status, res.Suggestion)
	}
	if res.Message != "Apple M1, 4 GB" {
		t.Errorf("unexpected message %q", res.Message)
	}
}

func TestGPUCheck_Failures(t *testing.T) {
	tests := []struct {
		name       string
		runner     *exectesting.FakeRunner
		suggestion string
	}{
		{
			name:       "bad json",
			runner:     exectesting.NewFakeRunner().SetOutput(monitor.GPUInfoCommand(), "nope"),
			suggestion: "system_profiler",
		},
		{
			name: "non-zero exit",
			runner: exectesting.NewFakeRunner().SetResult(monitor.GPUInfoCommand(), exec.Result{
				Stderr:   []byte("boom"),
				ExitCode: 2,
			}),
			suggestion: "exited with code 2",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := (&GPUCheck{Runner: tc.runner}).Run(context.Background())
			if res.Status != StatusFail {
				t.Fatalf("expected fail, got %s", res.Status)
			}
			if !strings.Contains(res.Suggestion, tc.suggestion) {
				t.Errorf("suggestion %q should contain %q", res.Suggestion, tc.suggestion)
			}
		})
	}
}
