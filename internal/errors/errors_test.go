package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrExec,
		ErrParse,
		ErrPriv,
	}

	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Interval must be at least 1 second",
			suggestion: "Pass a positive value like -i 2",
		},
		{
			name:       "exec error",
			code:       ErrExec,
			message:    "Couldn't run powermetrics",
			suggestion: "powermetrics ships with macOS",
		},
		{
			name:       "parse error",
			code:       ErrParse,
			message:    "system_profiler output is not valid JSON",
			suggestion: "",
		},
		{
			name:       "privilege error",
			code:       ErrPriv,
			message:    "sudo authentication failed",
			suggestion: "Run mgpustat again and enter your password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name: "basic error formatting",
			err:  New(ErrConfig, "Invalid interval", "Use a whole number of seconds"),
			expectedParts: []string{
				"Invalid interval",
				"Use a whole number of seconds",
			},
		},
		{
			name: "error with failure symbol",
			err:  New(ErrExec, "ps failed", "Try again"),
			expectedParts: []string{
				"✗",
				"ps failed",
			},
		},
		{
			name: "error without suggestion",
			err:  New(ErrExec, "Command failed", ""),
			expectedParts: []string{
				"Command failed",
			},
			notExpected: []string{
				"\n\n  \n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()

			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part, "output should contain %q", part)
			}

			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part, "output should not contain %q", part)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("exec: \"ps\": executable file not found in $PATH")
	wrapped := Wrap(cause, "Couldn't run ps")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrExec, wrapped.Code, "Wrap should default to ErrExec code")
	assert.Equal(t, "Couldn't run ps", wrapped.Message)
	assert.Equal(t, cause, wrapped.Cause)
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	wrapped := WrapWithCode(cause, ErrParse, "Couldn't read GPU description", "Check system_profiler output")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrParse, wrapped.Code)
	assert.Equal(t, "Couldn't read GPU description", wrapped.Message)
	assert.Equal(t, "Check system_profiler output", wrapped.Suggestion)
	assert.Equal(t, cause, wrapped.Cause)
	assert.Contains(t, wrapped.Error(), "unexpected end of JSON input")
}

func TestErrorsIsAndAs(t *testing.T) {
	cause := errors.New("specific error")
	wrapped := fmt.Errorf("cycle failed: %w", WrapWithCode(cause, ErrExec, "Execution failed", ""))

	assert.True(t, errors.Is(wrapped, cause))

	var mgErr *Error
	require.True(t, errors.As(wrapped, &mgErr))
	assert.Equal(t, ErrExec, mgErr.Code)
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "Config error", "")

	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrExec))
	assert.False(t, IsCode(errors.New("standard error"), ErrConfig))
	assert.False(t, IsCode(nil, ErrConfig))
}

func TestErrorMessageStructure(t *testing.T) {
	err := WrapWithCode(
		errors.New("exit status 1: sudo: a password is required"),
		ErrPriv,
		"powermetrics needs root",
		"Run: sudo -v",
	)

	lines := strings.Split(err.Error(), "\n")

	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[0]), "✗"), "First line should start with failure symbol")
	assert.Contains(t, lines[0], "powermetrics needs root")
}

func TestExitError(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		wantMsg string
	}{
		{"zero exit code", 0, "exit code 0"},
		{"non-zero exit code", 1, "exit code 1"},
		{"interrupt exit code", 130, "exit code 130"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewExitError(tt.code)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOk   bool
	}{
		{"ExitError returns code", NewExitError(42), 42, true},
		{"wrapped ExitError", fmt.Errorf("outer: %w", NewExitError(130)), 130, true},
		{"standard error returns false", errors.New("standard error"), 0, false},
		{"nil error returns false", nil, 0, false},
		{"structured Error returns false", New(ErrExec, "test", ""), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := GetExitCode(tt.err)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}
