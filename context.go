// SPDX-License-Identifier: Unlicense OR MIT

package glbind

import (
	"gioui.org/glbind/internal/gl"
)

// Context is a current OpenGL ES context bound to a window. It is not
// safe for concurrent use and must only be used from the thread that
// completed its Builder.
//
// Buffers, textures and programs keep their Context alive: the
// platform context is destroyed once the Context and every object
// created from it are released.
type Context struct {
	f     gl.API
	plat  platform
	cnf   config
	state glState
	// check is called after every GL call.
	check func()

	refs     int
	released bool
}

func newContext(f gl.API, plat platform, cnf config) *Context {
	c := &Context{f: f, plat: plat, cnf: cnf, refs: 1}
	c.check = func() {}
	if cnf.debug {
		c.check = c.checkError
	}
	Logger().Info("gl context ready",
		"vendor", f.GetString(gl.VENDOR),
		"renderer", f.GetString(gl.RENDERER),
		"version", f.GetString(gl.VERSION),
		"debug", cnf.debug,
	)
	return c
}

func (c *Context) checkError() {
	if code := c.f.GetError(); code != gl.NO_ERROR {
		panic(&gl.Error{Code: code})
	}
}

// Color sets the clear color used by Present. Alpha is always 1.
func (c *Context) Color(r, g, b float32) {
	c.mustLive()
	c.f.ClearColor(r, g, b, 1)
	c.check()
}

// Present swaps the back buffer to the window and clears the new back
// buffer's color and depth.
func (c *Context) Present() error {
	c.mustLive()
	if err := c.plat.swap(); err != nil {
		return err
	}
	c.f.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	c.check()
	return nil
}

func (c *Context) Enable(f Feature) {
	c.mustLive()
	c.f.Enable(gl.Enum(f))
	c.check()
}

func (c *Context) Disable(f Feature) {
	c.mustLive()
	c.f.Disable(gl.Enum(f))
	c.check()
}

// Blend sets the blend function for non-premultiplied alpha. The
// resulting alpha is the source alpha squared plus the destination
// alpha squared.
func (c *Context) Blend() {
	c.mustLive()
	c.f.BlendFuncSeparate(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.SRC_ALPHA, gl.DST_ALPHA)
	c.check()
}

// Viewport sets the viewport to the rectangle from the origin to
// (width, height).
func (c *Context) Viewport(width, height int) {
	c.mustLive()
	c.f.Viewport(0, 0, width, height)
	c.check()
}

// InvalidateBindings forgets the cached program, buffer and texture
// bindings. Call it after binding objects through other means.
func (c *Context) InvalidateBindings() {
	c.mustLive()
	c.state = glState{}
	Logger().Debug("binding cache invalidated")
}

// Release drops the caller's reference to the Context. It panics if
// called twice.
func (c *Context) Release() {
	if c.released {
		panic("glbind: Context released twice")
	}
	c.released = true
	c.unref()
}

func (c *Context) mustLive() {
	if c.released {
		panic("glbind: use of released Context")
	}
}

func (c *Context) ref() {
	c.refs++
}

func (c *Context) unref() {
	c.refs--
	if c.refs > 0 {
		return
	}
	c.plat.release()
	unlockOSThread()
	Logger().Info("gl context destroyed")
}
