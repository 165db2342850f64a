// SPDX-License-Identifier: Unlicense OR MIT

// Package gltest provides a recording implementation of gl.API for
// tests that run without a GPU.
package gltest

import (
	"fmt"
	"regexp"
	"strings"

	"gioui.org/glbind/internal/gl"
)

// Fake records every call and emulates just enough of OpenGL ES to
// compile trivial programs and look up their uniforms and attributes.
type Fake struct {
	// Calls lists every call in order, formatted as Name(args).
	Calls []string
	// Errors are returned by GetError, one per call, before NO_ERROR.
	Errors []gl.Enum
	// CompileLog makes compiling a stage of that type fail with the log.
	CompileLog map[gl.Enum]string
	// LinkLog makes linking fail with the log when non-empty.
	LinkLog string
	// Strings is returned by GetString.
	Strings map[gl.Enum]string

	next     uint
	shaders  map[uint]*shader
	programs map[uint]*program
	deleted  map[string][]uint
}

type shader struct {
	typ      gl.Enum
	src      string
	compiled bool
}

type program struct {
	attached []uint
	bound    map[string]int
	uniforms map[string]int
	attribs  map[string]int
	linked   bool
}

var (
	uniformDecl   = regexp.MustCompile(`(?m)^\s*uniform\s+(?:(?:lowp|mediump|highp)\s+)?\w+\s+(\w+)`)
	attributeDecl = regexp.MustCompile(`(?m)^\s*(?:attribute|in)\s+(?:(?:lowp|mediump|highp)\s+)?\w+\s+(\w+)`)
)

// New returns an empty Fake.
func New() *Fake {
	return &Fake{
		CompileLog: make(map[gl.Enum]string),
		Strings:    make(map[gl.Enum]string),
		shaders:    make(map[uint]*shader),
		programs:   make(map[uint]*program),
		deleted:    make(map[string][]uint),
	}
}

// Count returns the number of calls to the named method.
func (f *Fake) Count(method string) int {
	n := 0
	prefix := method + "("
	for _, c := range f.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// Deleted returns the object names passed to the named delete method,
// such as "DeleteBuffer".
func (f *Fake) Deleted(method string) []uint {
	return f.deleted[method]
}

// Reset forgets the recorded calls.
func (f *Fake) Reset() {
	f.Calls = f.Calls[:0]
}

func (f *Fake) record(method string, args ...any) {
	s := make([]string, len(args))
	for i, a := range args {
		s[i] = fmt.Sprint(a)
	}
	f.Calls = append(f.Calls, method+"("+strings.Join(s, ", ")+")")
}

func (f *Fake) alloc() uint {
	f.next++
	return f.next
}

func (f *Fake) AttachShader(p gl.Program, s gl.Shader) {
	f.record("AttachShader", p.V, s.V)
	if prog, ok := f.programs[p.V]; ok {
		prog.attached = append(prog.attached, s.V)
	}
}

func (f *Fake) BindAttribLocation(p gl.Program, a gl.Attrib, name string) {
	f.record("BindAttribLocation", p.V, a, name)
	if prog, ok := f.programs[p.V]; ok {
		prog.bound[strings.TrimSuffix(name, "\x00")] = int(a)
	}
}

func (f *Fake) BindBuffer(target gl.Enum, b gl.Buffer) {
	f.record("BindBuffer", target, b.V)
}

func (f *Fake) BindTexture(target gl.Enum, t gl.Texture) {
	f.record("BindTexture", target, t.V)
}

func (f *Fake) BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA gl.Enum) {
	f.record("BlendFuncSeparate", srcRGB, dstRGB, srcA, dstA)
}

func (f *Fake) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	f.record("BufferData", target, len(src), usage)
}

func (f *Fake) Clear(mask gl.Enum) {
	f.record("Clear", mask)
}

func (f *Fake) ClearColor(red, green, blue, alpha float32) {
	f.record("ClearColor", red, green, blue, alpha)
}

func (f *Fake) CompileShader(s gl.Shader) {
	f.record("CompileShader", s.V)
	sh, ok := f.shaders[s.V]
	if !ok {
		return
	}
	_, fail := f.CompileLog[sh.typ]
	sh.compiled = !fail
}

func (f *Fake) CreateBuffer() gl.Buffer {
	b := gl.Buffer{V: f.alloc()}
	f.record("CreateBuffer")
	return b
}

func (f *Fake) CreateProgram() gl.Program {
	p := gl.Program{V: f.alloc()}
	f.programs[p.V] = &program{bound: make(map[string]int)}
	f.record("CreateProgram")
	return p
}

func (f *Fake) CreateShader(ty gl.Enum) gl.Shader {
	s := gl.Shader{V: f.alloc()}
	f.shaders[s.V] = &shader{typ: ty}
	f.record("CreateShader", ty)
	return s
}

func (f *Fake) CreateTexture() gl.Texture {
	t := gl.Texture{V: f.alloc()}
	f.record("CreateTexture")
	return t
}

func (f *Fake) DeleteBuffer(b gl.Buffer) {
	f.record("DeleteBuffer", b.V)
	f.deleted["DeleteBuffer"] = append(f.deleted["DeleteBuffer"], b.V)
}

func (f *Fake) DeleteProgram(p gl.Program) {
	f.record("DeleteProgram", p.V)
	f.deleted["DeleteProgram"] = append(f.deleted["DeleteProgram"], p.V)
	delete(f.programs, p.V)
}

func (f *Fake) DeleteShader(s gl.Shader) {
	f.record("DeleteShader", s.V)
	f.deleted["DeleteShader"] = append(f.deleted["DeleteShader"], s.V)
}

func (f *Fake) DeleteTexture(t gl.Texture) {
	f.record("DeleteTexture", t.V)
	f.deleted["DeleteTexture"] = append(f.deleted["DeleteTexture"], t.V)
}

func (f *Fake) DetachShader(p gl.Program, s gl.Shader) {
	f.record("DetachShader", p.V, s.V)
}

func (f *Fake) Disable(cap gl.Enum) {
	f.record("Disable", cap)
}

func (f *Fake) DrawArrays(mode gl.Enum, first, count int) {
	f.record("DrawArrays", mode, first, count)
}

func (f *Fake) Enable(cap gl.Enum) {
	f.record("Enable", cap)
}

func (f *Fake) EnableVertexAttribArray(a gl.Attrib) {
	f.record("EnableVertexAttribArray", a)
}

func (f *Fake) GenerateMipmap(target gl.Enum) {
	f.record("GenerateMipmap", target)
}

func (f *Fake) GetAttribLocation(p gl.Program, name string) gl.Attribute {
	f.record("GetAttribLocation", p.V, name)
	prog, ok := f.programs[p.V]
	if !ok || !prog.linked {
		return gl.Attribute{V: -1}
	}
	if loc, ok := prog.attribs[strings.TrimSuffix(name, "\x00")]; ok {
		return gl.Attribute{V: loc}
	}
	return gl.Attribute{V: -1}
}

func (f *Fake) GetError() gl.Enum {
	f.record("GetError")
	if len(f.Errors) == 0 {
		return gl.NO_ERROR
	}
	e := f.Errors[0]
	f.Errors = f.Errors[1:]
	return e
}

func (f *Fake) GetProgrami(p gl.Program, pname gl.Enum) int {
	f.record("GetProgrami", p.V, pname)
	prog, ok := f.programs[p.V]
	switch {
	case !ok:
		return 0
	case pname == gl.LINK_STATUS && prog.linked:
		return gl.TRUE
	case pname == gl.INFO_LOG_LENGTH:
		return len(f.LinkLog) + 1
	}
	return 0
}

func (f *Fake) GetProgramInfoLog(p gl.Program) string {
	f.record("GetProgramInfoLog", p.V)
	return f.LinkLog
}

func (f *Fake) GetShaderi(s gl.Shader, pname gl.Enum) int {
	f.record("GetShaderi", s.V, pname)
	sh, ok := f.shaders[s.V]
	switch {
	case !ok:
		return 0
	case pname == gl.COMPILE_STATUS && sh.compiled:
		return gl.TRUE
	case pname == gl.INFO_LOG_LENGTH:
		return len(f.CompileLog[sh.typ]) + 1
	}
	return 0
}

func (f *Fake) GetShaderInfoLog(s gl.Shader) string {
	f.record("GetShaderInfoLog", s.V)
	if sh, ok := f.shaders[s.V]; ok {
		return f.CompileLog[sh.typ]
	}
	return ""
}

func (f *Fake) GetString(pname gl.Enum) string {
	f.record("GetString", pname)
	return f.Strings[pname]
}

func (f *Fake) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	f.record("GetUniformLocation", p.V, name)
	prog, ok := f.programs[p.V]
	if !ok || !prog.linked {
		return gl.Uniform{V: -1}
	}
	if loc, ok := prog.uniforms[strings.TrimSuffix(name, "\x00")]; ok {
		return gl.Uniform{V: loc}
	}
	return gl.Uniform{V: -1}
}

func (f *Fake) LinkProgram(p gl.Program) {
	f.record("LinkProgram", p.V)
	prog, ok := f.programs[p.V]
	if !ok {
		return
	}
	prog.uniforms = make(map[string]int)
	prog.attribs = make(map[string]int)
	prog.linked = f.LinkLog == ""
	next := 0
	for _, id := range prog.attached {
		sh := f.shaders[id]
		if sh == nil || !sh.compiled {
			prog.linked = false
			continue
		}
		for _, m := range uniformDecl.FindAllStringSubmatch(sh.src, -1) {
			if _, dup := prog.uniforms[m[1]]; !dup {
				prog.uniforms[m[1]] = len(prog.uniforms)
			}
		}
		if sh.typ != gl.VERTEX_SHADER {
			continue
		}
		for _, m := range attributeDecl.FindAllStringSubmatch(sh.src, -1) {
			if loc, ok := prog.bound[m[1]]; ok {
				prog.attribs[m[1]] = loc
				continue
			}
			for taken(prog, next) {
				next++
			}
			prog.attribs[m[1]] = next
			next++
		}
	}
}

func taken(p *program, loc int) bool {
	for _, l := range p.bound {
		if l == loc {
			return true
		}
	}
	return false
}

func (f *Fake) ShaderSource(s gl.Shader, src string) {
	f.record("ShaderSource", s.V)
	if sh, ok := f.shaders[s.V]; ok {
		sh.src = src
	}
}

func (f *Fake) TexImage2D(target gl.Enum, level int, internalFormat gl.Enum, width, height int, format, ty gl.Enum, data []byte) {
	f.record("TexImage2D", target, level, internalFormat, width, height, format, ty, len(data))
}

func (f *Fake) TexParameteri(target, pname gl.Enum, param int) {
	f.record("TexParameteri", target, pname, param)
}

func (f *Fake) TexSubImage2D(target gl.Enum, level int, x, y, width, height int, format, ty gl.Enum, data []byte) {
	f.record("TexSubImage2D", target, level, x, y, width, height, format, ty, len(data))
}

func (f *Fake) Uniform1f(dst gl.Uniform, v float32) {
	f.record("Uniform1f", dst.V, v)
}

func (f *Fake) Uniform1i(dst gl.Uniform, v int) {
	f.record("Uniform1i", dst.V, v)
}

func (f *Fake) Uniform2f(dst gl.Uniform, v0, v1 float32) {
	f.record("Uniform2f", dst.V, v0, v1)
}

func (f *Fake) Uniform3f(dst gl.Uniform, v0, v1, v2 float32) {
	f.record("Uniform3f", dst.V, v0, v1, v2)
}

func (f *Fake) Uniform4f(dst gl.Uniform, v0, v1, v2, v3 float32) {
	f.record("Uniform4f", dst.V, v0, v1, v2, v3)
}

func (f *Fake) UniformMatrix4fv(dst gl.Uniform, transpose bool, m []float32) {
	f.record("UniformMatrix4fv", dst.V, transpose, len(m))
}

func (f *Fake) UseProgram(p gl.Program) {
	f.record("UseProgram", p.V)
}

func (f *Fake) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	f.record("VertexAttribPointer", dst, size, ty, normalized, stride, offset)
}

func (f *Fake) Viewport(x, y, width, height int) {
	f.record("Viewport", x, y, width, height)
}

var _ gl.API = (*Fake)(nil)
