// SPDX-License-Identifier: Unlicense OR MIT

package glbind

import (
	"errors"
	"strings"

	"gioui.org/shader"

	"gioui.org/glbind/internal/gl"
)

// Program is a handle to a linked shader program. Handles returned by
// Clone share the program, which is deleted when the last one is
// released.
type Program struct {
	handle
}

// Compile compiles and links a program from GLSL ES vertex and
// fragment sources. Compile and link failures are reported as a
// *CompileError unless the Context was built with UncheckedShaders.
func (c *Context) Compile(vsSrc, fsSrc string) (*Program, error) {
	c.mustLive()
	return c.compile(vsSrc, fsSrc, nil)
}

// CompileSources is like Compile for shaders from the gioui.org/shader
// toolchain. Vertex inputs are bound to their reflected locations and
// samplers to their texture units.
func (c *Context) CompileSources(vs, fs shader.Sources) (*Program, error) {
	c.mustLive()
	var attrs []string
	for _, inp := range vs.Inputs {
		for len(attrs) <= inp.Location {
			attrs = append(attrs, "")
		}
		attrs[inp.Location] = inp.Name
	}
	p, err := c.compile(vs.GLSL100ES, fs.GLSL100ES, attrs)
	if err != nil {
		var cerr *CompileError
		if errors.As(err, &cerr) {
			cerr.Name = vs.Name
			if cerr.Stage == "fragment" {
				cerr.Name = fs.Name
			}
		}
		return nil, err
	}
	o := p.use()
	prog := gl.Program{V: o.name}
	for _, texs := range [][]shader.TextureBinding{vs.Textures, fs.Textures} {
		for _, tex := range texs {
			u := c.f.GetUniformLocation(prog, tex.Name)
			c.check()
			if u.Valid() {
				c.useProgram(prog)
				c.f.Uniform1i(u, tex.Binding)
				c.check()
			}
		}
	}
	return p, nil
}

func (c *Context) compile(vsSrc, fsSrc string, attrs []string) (*Program, error) {
	p, err := gl.CreateProgram(c.f, vsSrc, fsSrc, attrs, c.cnf.checkShaders)
	c.check()
	if err != nil {
		var serr *gl.ShaderError
		if errors.As(err, &serr) {
			return nil, &CompileError{Stage: serr.Stage, Log: serr.Log}
		}
		return nil, err
	}
	return &Program{newHandle(c, "Program", p.V, (*Context).deleteProgram)}, nil
}

// Clone returns a new handle to the same program.
func (p *Program) Clone() *Program {
	return &Program{p.share()}
}

// Bind makes the program current.
func (p *Program) Bind() {
	o := p.use()
	o.ctx.useProgram(gl.Program{V: o.name})
}

// DrawArrays binds the program and draws count vertices starting at
// first from the enabled vertex arrays.
func (p *Program) DrawArrays(t Topology, first, count int) {
	mode := t.mode()
	o := p.use()
	c := o.ctx
	c.useProgram(gl.Program{V: o.name})
	c.f.DrawArrays(mode, first, count)
	c.check()
}

// Uniform looks up the named uniform. A trailing NUL in name is
// ignored. If the program has no such active uniform, the returned
// Uniform reports IsNone and its setters do nothing.
func (p *Program) Uniform(name string) Uniform {
	o := p.use()
	loc := o.ctx.f.GetUniformLocation(gl.Program{V: o.name}, glName(name))
	o.ctx.check()
	if !loc.Valid() {
		return Uniform{}
	}
	return Uniform{prog: o, loc: loc}
}

// MustUniform is like Uniform but panics with a *LookupError if the
// uniform doesn't exist.
func (p *Program) MustUniform(name string) Uniform {
	u := p.Uniform(name)
	if u.IsNone() {
		panic(&LookupError{Kind: "uniform", Name: glName(name)})
	}
	return u
}

// VertexData looks up the named attribute and enables its vertex
// array. A trailing NUL in name is ignored. If the program has no such
// active attribute, the returned VertexData reports IsNone and Set
// does nothing.
func (p *Program) VertexData(name string) *VertexData {
	o := p.use()
	c := o.ctx
	loc := c.f.GetAttribLocation(gl.Program{V: o.name}, glName(name))
	c.check()
	if !loc.Valid() {
		return &VertexData{ctx: c, loc: loc}
	}
	c.f.EnableVertexAttribArray(gl.Attrib(loc.V))
	c.check()
	return &VertexData{ctx: c, loc: loc}
}

// MustVertexData is like VertexData but panics with a *LookupError if
// the attribute doesn't exist.
func (p *Program) MustVertexData(name string) *VertexData {
	v := p.VertexData(name)
	if v.IsNone() {
		panic(&LookupError{Kind: "attribute", Name: glName(name)})
	}
	return v
}

func glName(name string) string {
	return strings.TrimSuffix(name, "\x00")
}
