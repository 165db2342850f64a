// SPDX-License-Identifier: Unlicense OR MIT

package glbind

import "fmt"

// object is a GL object name shared by one or more handles. The last
// handle released deletes it.
type object struct {
	ctx  *Context
	kind string
	name uint
	refs int
	del  func(c *Context, name uint)
}

// handle is one reference to an object.
type handle struct {
	obj      *object
	released bool
}

func newHandle(c *Context, kind string, name uint, del func(c *Context, name uint)) handle {
	c.ref()
	return handle{obj: &object{ctx: c, kind: kind, name: name, refs: 1, del: del}}
}

// Release drops the reference. The GL object is deleted when its last
// reference is released. It panics if called twice.
func (h *handle) Release() {
	if h.released {
		panic(fmt.Sprintf("glbind: %s released twice", h.obj.kind))
	}
	h.released = true
	o := h.obj
	o.refs--
	if o.refs > 0 {
		return
	}
	o.del(o.ctx, o.name)
	o.ctx.unref()
}

func (h *handle) use() *object {
	if h.released {
		panic(fmt.Sprintf("glbind: use of released %s", h.obj.kind))
	}
	return h.obj
}

func (h *handle) share() handle {
	o := h.use()
	o.refs++
	return handle{obj: o}
}
