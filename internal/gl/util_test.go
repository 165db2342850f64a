// SPDX-License-Identifier: Unlicense OR MIT

package gl_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/glbind/internal/gl"
	"gioui.org/glbind/internal/gl/gltest"
)

const (
	vertSrc = `
attribute vec4 pos;
void main() {
	gl_Position = pos;
}
`
	fragSrc = `
precision mediump float;
uniform vec4 u_color;
void main() {
	gl_FragColor = u_color;
}
`
)

func TestCreateProgram(t *testing.T) {
	f := gltest.New()
	prog, err := gl.CreateProgram(f, vertSrc, fragSrc, nil, true)
	require.NoError(t, err)
	assert.True(t, prog.Valid())
	assert.Equal(t, 2, f.Count("AttachShader"))
	assert.Equal(t, 2, f.Count("DetachShader"))
	assert.Len(t, f.Deleted("DeleteShader"), 2)
	assert.Empty(t, f.Deleted("DeleteProgram"))
	assert.True(t, f.GetUniformLocation(prog, "u_color").Valid())
	assert.False(t, f.GetUniformLocation(prog, "no_such_uniform").Valid())
}

func TestCreateProgramBindsAttributes(t *testing.T) {
	f := gltest.New()
	prog, err := gl.CreateProgram(f, vertSrc, fragSrc, []string{"", "pos"}, true)
	require.NoError(t, err)
	assert.Equal(t, 1, f.Count("BindAttribLocation"))
	assert.Equal(t, gl.Attribute{V: 1}, f.GetAttribLocation(prog, "pos"))
}

func TestCreateProgramCompileError(t *testing.T) {
	f := gltest.New()
	f.CompileLog[gl.FRAGMENT_SHADER] = "0:3: 'u_color' : syntax error\n"
	_, err := gl.CreateProgram(f, vertSrc, fragSrc, nil, true)
	var serr *gl.ShaderError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "fragment", serr.Stage)
	assert.Equal(t, "0:3: 'u_color' : syntax error", serr.Log)
	assert.Zero(t, f.Count("CreateProgram"))
	// Both stages are released.
	assert.Len(t, f.Deleted("DeleteShader"), 2)
}

func TestCreateProgramLinkError(t *testing.T) {
	f := gltest.New()
	f.LinkLog = "varying mismatch"
	_, err := gl.CreateProgram(f, vertSrc, fragSrc, nil, true)
	var serr *gl.ShaderError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "link", serr.Stage)
	assert.Len(t, f.Deleted("DeleteProgram"), 1)
}

func TestCreateProgramUnchecked(t *testing.T) {
	f := gltest.New()
	f.CompileLog[gl.VERTEX_SHADER] = "broken"
	prog, err := gl.CreateProgram(f, vertSrc, fragSrc, nil, false)
	require.NoError(t, err)
	assert.True(t, prog.Valid())
	assert.Zero(t, f.Count("GetShaderi"))
	assert.Zero(t, f.Count("GetProgrami"))
}

func TestErrorString(t *testing.T) {
	tests := []struct {
		code gl.Enum
		want string
	}{
		{gl.INVALID_ENUM, "Invalid enum"},
		{gl.INVALID_VALUE, "Invalid value"},
		{gl.INVALID_OPERATION, "Invalid operation"},
		{gl.STACK_OVERFLOW, "Stack overflow"},
		{gl.STACK_UNDERFLOW, "Stack underflow"},
		{gl.OUT_OF_MEMORY, "Out of memory"},
		{0x1234, "Unknown"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, gl.ErrorString(test.code))
	}
	err := &gl.Error{Code: gl.INVALID_OPERATION}
	assert.Equal(t, "OpenGL Error: Invalid operation (0x502)", err.Error())
}

func TestLoadMissingEntryPoint(t *testing.T) {
	missing := errors.New("glShaderSource not found")
	_, err := gl.Load(func(name string) (uintptr, error) {
		if name == "glAttachShader" {
			return 0, missing
		}
		t.Fatalf("resolution continued after failure: %s", name)
		return 0, nil
	})
	assert.ErrorIs(t, err, missing)
}
