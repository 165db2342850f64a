// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"errors"
	"fmt"
)

// Bootstrap failures. Platform packages wrap them with the failing call
// and its error code.
var (
	ErrDisplayUnavailable    = errors.New("display unavailable")
	ErrNoMatchingConfig      = errors.New("no matching framebuffer configuration")
	ErrContextCreationFailed = errors.New("context creation failed")
	ErrSurfaceBindFailed     = errors.New("surface creation failed")
	ErrMakeCurrentFailed     = errors.New("make current failed")
	ErrBadState              = errors.New("bootstrap step out of order")
)

// Error is a code reported by glGetError.
type Error struct {
	Code Enum
}

func (e *Error) Error() string {
	return fmt.Sprintf("OpenGL Error: %s (0x%x)", ErrorString(e.Code), uint(e.Code))
}

// ErrorString returns the category of a glGetError code.
func ErrorString(code Enum) string {
	switch code {
	case NO_ERROR:
		return "No error"
	case INVALID_ENUM:
		return "Invalid enum"
	case INVALID_VALUE:
		return "Invalid value"
	case INVALID_OPERATION:
		return "Invalid operation"
	case STACK_OVERFLOW:
		return "Stack overflow"
	case STACK_UNDERFLOW:
		return "Stack underflow"
	case OUT_OF_MEMORY:
		return "Out of memory"
	default:
		return "Unknown"
	}
}
