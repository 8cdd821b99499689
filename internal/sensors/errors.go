package sensors

import "github.com/omen-linux/omenctl/internal/errors"

const (
	ErrGPUToolFailed    = errors.ErrorCode("gpu_tool_failed")
	ErrGPUToolMalformed = errors.ErrorCode("gpu_tool_output_malformed")
)
