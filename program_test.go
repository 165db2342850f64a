// SPDX-License-Identifier: Unlicense OR MIT

package glbind

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/shader"

	"gioui.org/glbind/internal/gl"
)

const vertSrc = `
attribute vec4 a_position;
attribute vec4 a_color;
uniform mat4 u_mvp;
varying vec4 v_color;
void main() {
	v_color = a_color;
	gl_Position = u_mvp * a_position;
}
`

const fragSrc = `
precision mediump float;
uniform vec4 u_color;
uniform sampler2D u_tex;
varying vec4 v_color;
void main() {
	gl_FragColor = u_color * v_color;
}
`

func TestUniformLookup(t *testing.T) {
	c, f, _ := newTestContext(t)
	p, err := c.Compile(vertSrc, fragSrc)
	require.NoError(t, err)

	u := p.Uniform("u_color")
	assert.False(t, u.IsNone())
	assert.Equal(t, u, p.Uniform("u_color\x00"))
	assert.True(t, p.Uniform("no_such_uniform").IsNone())
	assert.True(t, Uniform{}.IsNone())

	f.Reset()
	absent := p.Uniform("no_such_uniform")
	f.Reset()
	absent.SetVec4(1, 2, 3, 4)
	absent.SetMat4([16]float32{})
	assert.Empty(t, f.Calls)

	assert.PanicsWithError(t, `glbind: no uniform "no_such_uniform" in program`, func() {
		p.MustUniform("no_such_uniform\x00")
	})
}

func TestUniformSettersBindProgram(t *testing.T) {
	c, f, _ := newTestContext(t)
	p1, err := c.Compile(vertSrc, fragSrc)
	require.NoError(t, err)
	p2, err := c.Compile(vertSrc, fragSrc)
	require.NoError(t, err)
	mvp := p1.MustUniform("u_mvp")
	color := p2.MustUniform("u_color")

	f.Reset()
	mvp.SetMat4([16]float32{0: 1, 5: 1, 10: 1, 15: 1})
	color.SetVec4(1, 0.5, 0, 1)
	color.SetVec1(2)
	assert.Equal(t, []string{
		fmt.Sprintf("UseProgram(%d)", p1.obj.name),
		"UniformMatrix4fv(0, false, 16)",
		fmt.Sprintf("UseProgram(%d)", p2.obj.name),
		"Uniform4f(1, 1, 0.5, 0, 1)",
		"Uniform1f(1, 2)",
	}, f.Calls)

	f.Reset()
	color.SetInt1(3)
	color.SetVec2(1, 2)
	color.SetVec3(1, 2, 3)
	assert.Equal(t, []string{"Uniform1i(1, 3)", "Uniform2f(1, 1, 2)", "Uniform3f(1, 1, 2, 3)"}, f.Calls)

	p2.Release()
	assert.PanicsWithValue(t, "glbind: Uniform of a deleted Program", func() {
		color.SetVec1(1)
	})
}

func TestVertexData(t *testing.T) {
	c, f, _ := newTestContext(t)
	p, err := c.Compile(vertSrc, fragSrc)
	require.NoError(t, err)

	f.Reset()
	v := p.VertexData("a_color\x00")
	require.False(t, v.IsNone())
	assert.Equal(t, []string{
		fmt.Sprintf("GetAttribLocation(%d, a_color)", p.obj.name),
		"EnableVertexAttribArray(1)",
	}, f.Calls)

	f.Reset()
	absent := p.VertexData("a_normal")
	assert.True(t, absent.IsNone())
	assert.Zero(t, f.Count("EnableVertexAttribArray"))
	b := c.NewBuffer()
	absent.Set(b)
	assert.Zero(t, f.Count("VertexAttribPointer"))
	assert.PanicsWithError(t, `glbind: no attribute "a_normal" in program`, func() {
		p.MustVertexData("a_normal")
	})

	b.SetFloats([]float32{0, 0, 0, 1, 1, 1, 1, 1})
	f.Reset()
	v.Set(b)
	assert.Equal(t, []string{
		fmt.Sprintf("VertexAttribPointer(1, 4, %d, false, 0, 0)", gl.FLOAT),
	}, f.Calls)

	// The vertex data keeps the buffer alive.
	b.Release()
	assert.Empty(t, f.Deleted("DeleteBuffer"))
	other := c.NewBuffer()
	v.Set(other)
	assert.Equal(t, []uint{b.obj.name}, f.Deleted("DeleteBuffer"))
	other.Release()
	v.Release()
	v.Release()
	assert.Len(t, f.Deleted("DeleteBuffer"), 2)
}

func TestDrawArrays(t *testing.T) {
	c, f, _ := newTestContext(t)
	p, err := c.Compile(vertSrc, fragSrc)
	require.NoError(t, err)
	f.Reset()
	p.DrawArrays(TriangleStrip, 2, 4)
	assert.Equal(t, []string{
		fmt.Sprintf("UseProgram(%d)", p.obj.name),
		fmt.Sprintf("DrawArrays(%d, 2, 4)", gl.TRIANGLE_STRIP),
	}, f.Calls)
	assert.Panics(t, func() {
		p.DrawArrays(Topology(7), 0, 3)
	})
}

func TestCompileError(t *testing.T) {
	c, f, _ := newTestContext(t)
	f.CompileLog[gl.FRAGMENT_SHADER] = "0:3: 'vec5' : undeclared identifier\n"
	_, err := c.Compile(vertSrc, fragSrc)
	var cerr *CompileError
	require.True(t, errors.As(err, &cerr), "got %v", err)
	assert.Equal(t, "fragment", cerr.Stage)
	assert.Equal(t, "glbind: fragment shader compilation failed: 0:3: 'vec5' : undeclared identifier", err.Error())
	assert.Zero(t, f.Count("CreateProgram"))
	assert.Equal(t, 1, c.refs)

	delete(f.CompileLog, gl.FRAGMENT_SHADER)
	f.LinkLog = "varying v_color not written"
	_, err = c.Compile(vertSrc, fragSrc)
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "link", cerr.Stage)
	assert.Len(t, f.Deleted("DeleteProgram"), 1)
}

func TestUncheckedShaders(t *testing.T) {
	c, f, _ := newTestContext(t, UncheckedShaders())
	f.CompileLog[gl.FRAGMENT_SHADER] = "broken"
	p, err := c.Compile(vertSrc, fragSrc)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Zero(t, f.Count("GetShaderi"))
	assert.Zero(t, f.Count("GetProgrami"))
}

func TestCompileSources(t *testing.T) {
	c, f, _ := newTestContext(t)
	vs := shader.Sources{
		Name:      "blit.vert",
		GLSL100ES: vertSrc,
		Inputs: []shader.InputLocation{
			{Name: "a_color", Location: 1},
			{Name: "a_position", Location: 0},
		},
	}
	fs := shader.Sources{
		Name:      "blit.frag",
		GLSL100ES: fragSrc,
		Textures:  []shader.TextureBinding{{Name: "u_tex", Binding: 3}},
	}
	p, err := c.CompileSources(vs, fs)
	require.NoError(t, err)
	name := p.obj.name
	assert.Contains(t, f.Calls, fmt.Sprintf("BindAttribLocation(%d, 0, a_position)", name))
	assert.Contains(t, f.Calls, fmt.Sprintf("BindAttribLocation(%d, 1, a_color)", name))
	tex := p.MustUniform("u_tex")
	assert.Contains(t, f.Calls, fmt.Sprintf("Uniform1i(%d, 3)", tex.loc.V))
	assert.Equal(t, gl.Program{V: name}, c.state.prog)

	f.CompileLog[gl.VERTEX_SHADER] = "syntax error"
	_, err = c.CompileSources(vs, fs)
	var cerr *CompileError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "blit.vert", cerr.Name)
	assert.Equal(t, "glbind: blit.vert: vertex shader compilation failed: syntax error", err.Error())

	delete(f.CompileLog, gl.VERTEX_SHADER)
	f.CompileLog[gl.FRAGMENT_SHADER] = "undeclared u_tint"
	_, err = c.CompileSources(vs, fs)
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "blit.frag", cerr.Name)
	assert.Equal(t, "glbind: blit.frag: fragment shader compilation failed: undeclared u_tint", err.Error())
}
