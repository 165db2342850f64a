// SPDX-License-Identifier: Unlicense OR MIT

package glbind

import (
	"gioui.org/glbind/internal/gl"
)

// VertexData is an enabled vertex attribute array of a program. It
// keeps a reference to the buffer last passed to Set until it is
// released or Set again.
type VertexData struct {
	ctx *Context
	loc gl.Attribute
	buf *Buffer
}

// IsNone reports whether the program lacks the attribute.
func (v *VertexData) IsNone() bool {
	return !v.loc.Valid()
}

// Set sources the attribute from b as tightly packed vec4 floats. The
// buffer is bound to the array buffer target.
func (v *VertexData) Set(b *Buffer) {
	if v.IsNone() {
		return
	}
	nb := b.Clone()
	if v.buf != nil {
		v.buf.Release()
	}
	v.buf = nb
	nb.Bind()
	v.ctx.f.VertexAttribPointer(gl.Attrib(v.loc.V), 4, gl.FLOAT, false, 0, 0)
	v.ctx.check()
}

// Release drops the reference to the buffer passed to Set.
func (v *VertexData) Release() {
	if v.buf != nil {
		v.buf.Release()
		v.buf = nil
	}
}
