// SPDX-License-Identifier: Unlicense OR MIT

package glbind

import (
	"gioui.org/glbind/internal/gl"
)

// glState tracks the bound program, array buffer and 2D texture, to
// skip redundant binds. It assumes all binding goes through the
// Context; see InvalidateBindings.
type glState struct {
	prog     gl.Program
	arrayBuf gl.Buffer
	texture  gl.Texture
}

func (c *Context) useProgram(p gl.Program) {
	if p.Equal(c.state.prog) {
		return
	}
	c.f.UseProgram(p)
	c.check()
	c.state.prog = p
}

func (c *Context) bindBuffer(b gl.Buffer) {
	if b.Equal(c.state.arrayBuf) {
		return
	}
	c.f.BindBuffer(gl.ARRAY_BUFFER, b)
	c.check()
	c.state.arrayBuf = b
}

func (c *Context) bindTexture(t gl.Texture) {
	if t.Equal(c.state.texture) {
		return
	}
	c.f.BindTexture(gl.TEXTURE_2D, t)
	c.check()
	c.state.texture = t
}

// Deleting a bound object unbinds it, so the cache entry is reset. A
// later object reusing the name is then bound again.

func (c *Context) deleteProgram(name uint) {
	p := gl.Program{V: name}
	c.f.DeleteProgram(p)
	c.check()
	if p.Equal(c.state.prog) {
		c.state.prog = gl.Program{}
		Logger().Debug("program binding reset", "name", name)
	}
}

func (c *Context) deleteBuffer(name uint) {
	b := gl.Buffer{V: name}
	c.f.DeleteBuffer(b)
	c.check()
	if b.Equal(c.state.arrayBuf) {
		c.state.arrayBuf = gl.Buffer{}
		Logger().Debug("buffer binding reset", "name", name)
	}
}

func (c *Context) deleteTexture(name uint) {
	t := gl.Texture{V: name}
	c.f.DeleteTexture(t)
	c.check()
	if t.Equal(c.state.texture) {
		c.state.texture = gl.Texture{}
		Logger().Debug("texture binding reset", "name", name)
	}
}
