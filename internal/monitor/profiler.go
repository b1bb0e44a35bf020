package monitor

import (
	"bytes"
	"encoding/json"

	"github.com/buger/jsonparser"
	"github.com/rileyhilliard/mgpustat/internal/errors"
)

// system_profiler keys read from the first SPDisplaysDataType entry.
const (
	profilerDataType = "SPDisplaysDataType"
	profilerModelKey = "sppci_model"
	profilerVRAMKey  = "spdisplays_vram"
)

// ParseGPUInfo reads the model name and VRAM description of the first
// display adapter from `system_profiler SPDisplaysDataType -json` output.
// A missing field becomes UnknownValue; a document without an adapter
// entry is a parse error.
func ParseGPUInfo(output []byte) (GPUInfo, error) {
	if len(bytes.TrimSpace(output)) == 0 {
		return GPUInfo{}, errors.New(errors.ErrParse,
			"system_profiler printed nothing",
			"Run 'system_profiler SPDisplaysDataType -json' to check it works on this Mac.")
	}

	// jsonparser only walks to the requested path, so a truncated or
	// garbled document would otherwise still yield fields.
	if !json.Valid(output) {
		return GPUInfo{}, errors.New(errors.ErrParse,
			"system_profiler output isn't valid JSON",
			"Run 'system_profiler SPDisplaysDataType -json' to see what it prints.")
	}

	adapter, dataType, _, err := jsonparser.Get(output, profilerDataType, "[0]")
	if err == jsonparser.KeyPathNotFoundError {
		return GPUInfo{}, errors.WrapWithCode(err, errors.ErrParse,
			"system_profiler didn't list any display adapter",
			"mgpustat reads the first SPDisplaysDataType entry; check the output of 'system_profiler SPDisplaysDataType -json'.")
	}
	if err != nil {
		return GPUInfo{}, errors.WrapWithCode(err, errors.ErrParse,
			"system_profiler output isn't valid JSON",
			"Run 'system_profiler SPDisplaysDataType -json' to see what it prints.")
	}
	if dataType != jsonparser.Object {
		return GPUInfo{}, errors.New(errors.ErrParse,
			"system_profiler display entry isn't an object (got "+dataType.String()+")",
			"Run 'system_profiler SPDisplaysDataType -json' to see what it prints.")
	}

	return GPUInfo{
		Name:   profilerField(adapter, profilerModelKey),
		Memory: profilerField(adapter, profilerVRAMKey),
	}, nil
}

// profilerField returns a field of the adapter object as display text.
// Strings are unescaped, other scalars keep their JSON spelling, and a
// missing or null field is UnknownValue.
func profilerField(adapter []byte, key string) string {
	value, dataType, _, err := jsonparser.Get(adapter, key)
	if err != nil {
		return UnknownValue
	}

	switch dataType {
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return string(value)
		}
		return s
	case jsonparser.Null, jsonparser.NotExist:
		return UnknownValue
	default:
		return string(value)
	}
}
