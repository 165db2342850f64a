// SPDX-License-Identifier: Unlicense OR MIT

package glbind

import (
	"gioui.org/glbind/internal/gl"
	gunsafe "gioui.org/glbind/internal/unsafe"
)

// Buffer is a handle to an array buffer. Handles returned by Clone
// share the buffer, which is deleted when the last one is released.
type Buffer struct {
	handle
}

// NewBuffer creates an empty array buffer.
func (c *Context) NewBuffer() *Buffer {
	c.mustLive()
	b := c.f.CreateBuffer()
	c.check()
	return &Buffer{newHandle(c, "Buffer", b.V, (*Context).deleteBuffer)}
}

// Clone returns a new handle to the same buffer.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{b.share()}
}

// Bind binds the buffer to the array buffer target.
func (b *Buffer) Bind() {
	o := b.use()
	o.ctx.bindBuffer(gl.Buffer{V: o.name})
}

// SetData binds the buffer and replaces its contents with data.
func (b *Buffer) SetData(data []byte) {
	o := b.use()
	o.ctx.bindBuffer(gl.Buffer{V: o.name})
	o.ctx.f.BufferData(gl.ARRAY_BUFFER, data, gl.DYNAMIC_DRAW)
	o.ctx.check()
}

// SetFloats is like SetData for float32 data in native byte order.
func (b *Buffer) SetFloats(data []float32) {
	b.SetData(gunsafe.BytesView(data))
}
