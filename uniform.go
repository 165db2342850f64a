// SPDX-License-Identifier: Unlicense OR MIT

package glbind

import (
	"gioui.org/glbind/internal/gl"
)

// Uniform is the location of a uniform in a program. The zero Uniform
// is absent.
//
// Setters bind the owning program before uploading. A Uniform must not
// be used after the last handle to its program is released.
type Uniform struct {
	prog *object
	loc  gl.Uniform
}

// IsNone reports whether the program lacks the uniform.
func (u Uniform) IsNone() bool {
	return u.prog == nil || !u.loc.Valid()
}

// SetMat4 uploads a column-major 4x4 matrix.
func (u Uniform) SetMat4(m [16]float32) {
	if c := u.bind(); c != nil {
		c.f.UniformMatrix4fv(u.loc, false, m[:])
		c.check()
	}
}

func (u Uniform) SetInt1(v int32) {
	if c := u.bind(); c != nil {
		c.f.Uniform1i(u.loc, int(v))
		c.check()
	}
}

func (u Uniform) SetVec1(x float32) {
	if c := u.bind(); c != nil {
		c.f.Uniform1f(u.loc, x)
		c.check()
	}
}

func (u Uniform) SetVec2(x, y float32) {
	if c := u.bind(); c != nil {
		c.f.Uniform2f(u.loc, x, y)
		c.check()
	}
}

func (u Uniform) SetVec3(x, y, z float32) {
	if c := u.bind(); c != nil {
		c.f.Uniform3f(u.loc, x, y, z)
		c.check()
	}
}

func (u Uniform) SetVec4(x, y, z, w float32) {
	if c := u.bind(); c != nil {
		c.f.Uniform4f(u.loc, x, y, z, w)
		c.check()
	}
}

// bind makes the owning program current and returns its Context, or
// nil for an absent uniform.
func (u Uniform) bind() *Context {
	if u.IsNone() {
		return nil
	}
	if u.prog.refs <= 0 {
		panic("glbind: Uniform of a deleted Program")
	}
	c := u.prog.ctx
	c.useProgram(gl.Program{V: u.prog.name})
	return c
}
