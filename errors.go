// SPDX-License-Identifier: Unlicense OR MIT

package glbind

import (
	"errors"
	"fmt"

	"gioui.org/glbind/internal/dl"
	"gioui.org/glbind/internal/gl"
)

// Bootstrap failures. The errors returned by NewBuilder and
// Builder.Complete wrap one of them; test with errors.Is.
var (
	ErrDisplayUnavailable    = gl.ErrDisplayUnavailable
	ErrNoMatchingConfig      = gl.ErrNoMatchingConfig
	ErrContextCreationFailed = gl.ErrContextCreationFailed
	ErrSurfaceBindFailed     = gl.ErrSurfaceBindFailed
	ErrMakeCurrentFailed     = gl.ErrMakeCurrentFailed
)

// ErrNotConfigured is returned by Builder.Complete for a Builder that
// NewBuilder didn't return, or that was already completed or released.
var ErrNotConfigured = errors.New("glbind: builder not configured")

// LoadError reports that no candidate of a platform library could be
// opened.
type LoadError = dl.LoadError

// SymbolError reports a missing entry point.
type SymbolError = dl.SymbolError

// GLError is the panic value of a failed GL call in a Context built
// with Debug.
type GLError = gl.Error

// CompileError reports a shader that failed to compile or a program
// that failed to link.
type CompileError struct {
	// Name identifies the program for CompileSources.
	Name string
	// Stage is "vertex", "fragment" or "link".
	Stage string
	// Log is the driver's info log.
	Log string
}

// LookupError is the panic value of Program.MustUniform and
// Program.MustVertexData for names the linked program doesn't have.
type LookupError struct {
	// Kind is "uniform" or "attribute".
	Kind string
	Name string
}

func (e *CompileError) Error() string {
	what := e.Stage + " shader compilation"
	if e.Stage == "link" {
		what = "program link"
	}
	if e.Name != "" {
		return fmt.Sprintf("glbind: %s: %s failed: %s", e.Name, what, e.Log)
	}
	return fmt.Sprintf("glbind: %s failed: %s", what, e.Log)
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("glbind: no %s %q in program", e.Kind, e.Name)
}
