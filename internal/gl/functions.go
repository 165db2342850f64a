// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"runtime"
	"strings"
	"unsafe"

	"github.com/ebitengine/purego"

	gunsafe "gioui.org/glbind/internal/unsafe"
)

// Functions implements API by calling entry points resolved at load time.
type Functions struct {
	glAttachShader            func(uint32, uint32)
	glBindAttribLocation      func(uint32, uint32, *byte)
	glBindBuffer              func(uint32, uint32)
	glBindTexture             func(uint32, uint32)
	glBlendFuncSeparate       func(uint32, uint32, uint32, uint32)
	glBufferData              func(uint32, int, unsafe.Pointer, uint32)
	glClear                   func(uint32)
	glClearColor              func(float32, float32, float32, float32)
	glCompileShader           func(uint32)
	glCreateProgram           func() uint32
	glCreateShader            func(uint32) uint32
	glDeleteBuffers           func(int32, *uint32)
	glDeleteProgram           func(uint32)
	glDeleteShader            func(uint32)
	glDeleteTextures          func(int32, *uint32)
	glDetachShader            func(uint32, uint32)
	glDisable                 func(uint32)
	glDrawArrays              func(uint32, int32, int32)
	glEnable                  func(uint32)
	glEnableVertexAttribArray func(uint32)
	glGenBuffers              func(int32, *uint32)
	glGenTextures             func(int32, *uint32)
	glGenerateMipmap          func(uint32)
	glGetAttribLocation       func(uint32, *byte) int32
	glGetError                func() uint32
	glGetProgramInfoLog       func(uint32, int32, *int32, *byte)
	glGetProgramiv            func(uint32, uint32, *int32)
	glGetShaderInfoLog        func(uint32, int32, *int32, *byte)
	glGetShaderiv             func(uint32, uint32, *int32)
	glGetString               func(uint32) *byte
	glGetUniformLocation      func(uint32, *byte) int32
	glLinkProgram             func(uint32)
	glShaderSource            func(uint32, int32, **byte, *int32)
	glTexImage2D              func(uint32, int32, int32, int32, int32, int32, uint32, uint32, unsafe.Pointer)
	glTexParameteri           func(uint32, uint32, int32)
	glTexSubImage2D           func(uint32, int32, int32, int32, int32, int32, uint32, uint32, unsafe.Pointer)
	glUniform1f               func(int32, float32)
	glUniform1i               func(int32, int32)
	glUniform2f               func(int32, float32, float32)
	glUniform3f               func(int32, float32, float32, float32)
	glUniform4f               func(int32, float32, float32, float32, float32)
	glUniformMatrix4fv        func(int32, int32, uint8, *float32)
	glUseProgram              func(uint32)
	glVertexAttribPointer     func(uint32, int32, uint32, uint8, int32, uintptr)
	glViewport                func(int32, int32, int32, int32)
}

// Resolver returns the address of a named entry point, or an error if
// the platform doesn't provide it.
type Resolver func(name string) (uintptr, error)

// Load resolves every entry point of Functions with resolve. A missing
// entry point fails the whole load.
func Load(resolve Resolver) (*Functions, error) {
	f := new(Functions)
	procs := []struct {
		name string
		fn   any
	}{
		{"glAttachShader", &f.glAttachShader},
		{"glBindAttribLocation", &f.glBindAttribLocation},
		{"glBindBuffer", &f.glBindBuffer},
		{"glBindTexture", &f.glBindTexture},
		{"glBlendFuncSeparate", &f.glBlendFuncSeparate},
		{"glBufferData", &f.glBufferData},
		{"glClear", &f.glClear},
		{"glClearColor", &f.glClearColor},
		{"glCompileShader", &f.glCompileShader},
		{"glCreateProgram", &f.glCreateProgram},
		{"glCreateShader", &f.glCreateShader},
		{"glDeleteBuffers", &f.glDeleteBuffers},
		{"glDeleteProgram", &f.glDeleteProgram},
		{"glDeleteShader", &f.glDeleteShader},
		{"glDeleteTextures", &f.glDeleteTextures},
		{"glDetachShader", &f.glDetachShader},
		{"glDisable", &f.glDisable},
		{"glDrawArrays", &f.glDrawArrays},
		{"glEnable", &f.glEnable},
		{"glEnableVertexAttribArray", &f.glEnableVertexAttribArray},
		{"glGenBuffers", &f.glGenBuffers},
		{"glGenTextures", &f.glGenTextures},
		{"glGenerateMipmap", &f.glGenerateMipmap},
		{"glGetAttribLocation", &f.glGetAttribLocation},
		{"glGetError", &f.glGetError},
		{"glGetProgramInfoLog", &f.glGetProgramInfoLog},
		{"glGetProgramiv", &f.glGetProgramiv},
		{"glGetShaderInfoLog", &f.glGetShaderInfoLog},
		{"glGetShaderiv", &f.glGetShaderiv},
		{"glGetString", &f.glGetString},
		{"glGetUniformLocation", &f.glGetUniformLocation},
		{"glLinkProgram", &f.glLinkProgram},
		{"glShaderSource", &f.glShaderSource},
		{"glTexImage2D", &f.glTexImage2D},
		{"glTexParameteri", &f.glTexParameteri},
		{"glTexSubImage2D", &f.glTexSubImage2D},
		{"glUniform1f", &f.glUniform1f},
		{"glUniform1i", &f.glUniform1i},
		{"glUniform2f", &f.glUniform2f},
		{"glUniform3f", &f.glUniform3f},
		{"glUniform4f", &f.glUniform4f},
		{"glUniformMatrix4fv", &f.glUniformMatrix4fv},
		{"glUseProgram", &f.glUseProgram},
		{"glVertexAttribPointer", &f.glVertexAttribPointer},
		{"glViewport", &f.glViewport},
	}
	for _, p := range procs {
		addr, err := resolve(p.name)
		if err != nil {
			return nil, err
		}
		purego.RegisterFunc(p.fn, addr)
	}
	return f, nil
}

func (f *Functions) AttachShader(p Program, s Shader) {
	f.glAttachShader(uint32(p.V), uint32(s.V))
}

func (f *Functions) BindAttribLocation(p Program, a Attrib, name string) {
	cname := gunsafe.CString(name)
	f.glBindAttribLocation(uint32(p.V), uint32(a), &cname[0])
	runtime.KeepAlive(cname)
}

func (f *Functions) BindBuffer(target Enum, b Buffer) {
	f.glBindBuffer(uint32(target), uint32(b.V))
}

func (f *Functions) BindTexture(target Enum, t Texture) {
	f.glBindTexture(uint32(target), uint32(t.V))
}

func (f *Functions) BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA Enum) {
	f.glBlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcA), uint32(dstA))
}

func (f *Functions) BufferData(target Enum, src []byte, usage Enum) {
	var p unsafe.Pointer
	if len(src) > 0 {
		p = unsafe.Pointer(&src[0])
	}
	f.glBufferData(uint32(target), len(src), p, uint32(usage))
	runtime.KeepAlive(src)
}

func (f *Functions) Clear(mask Enum) {
	f.glClear(uint32(mask))
}

func (f *Functions) ClearColor(red, green, blue, alpha float32) {
	f.glClearColor(red, green, blue, alpha)
}

func (f *Functions) CompileShader(s Shader) {
	f.glCompileShader(uint32(s.V))
}

func (f *Functions) CreateBuffer() Buffer {
	var b uint32
	f.glGenBuffers(1, &b)
	return Buffer{uint(b)}
}

func (f *Functions) CreateProgram() Program {
	return Program{uint(f.glCreateProgram())}
}

func (f *Functions) CreateShader(ty Enum) Shader {
	return Shader{uint(f.glCreateShader(uint32(ty)))}
}

func (f *Functions) CreateTexture() Texture {
	var t uint32
	f.glGenTextures(1, &t)
	return Texture{uint(t)}
}

func (f *Functions) DeleteBuffer(b Buffer) {
	v := uint32(b.V)
	f.glDeleteBuffers(1, &v)
}

func (f *Functions) DeleteProgram(p Program) {
	f.glDeleteProgram(uint32(p.V))
}

func (f *Functions) DeleteShader(s Shader) {
	f.glDeleteShader(uint32(s.V))
}

func (f *Functions) DeleteTexture(t Texture) {
	v := uint32(t.V)
	f.glDeleteTextures(1, &v)
}

func (f *Functions) DetachShader(p Program, s Shader) {
	f.glDetachShader(uint32(p.V), uint32(s.V))
}

func (f *Functions) Disable(cap Enum) {
	f.glDisable(uint32(cap))
}

func (f *Functions) DrawArrays(mode Enum, first, count int) {
	f.glDrawArrays(uint32(mode), int32(first), int32(count))
}

func (f *Functions) Enable(cap Enum) {
	f.glEnable(uint32(cap))
}

func (f *Functions) EnableVertexAttribArray(a Attrib) {
	f.glEnableVertexAttribArray(uint32(a))
}

func (f *Functions) GenerateMipmap(target Enum) {
	f.glGenerateMipmap(uint32(target))
}

func (f *Functions) GetAttribLocation(p Program, name string) Attribute {
	cname := gunsafe.CString(name)
	loc := f.glGetAttribLocation(uint32(p.V), &cname[0])
	runtime.KeepAlive(cname)
	return Attribute{int(loc)}
}

func (f *Functions) GetError() Enum {
	return Enum(f.glGetError())
}

func (f *Functions) GetProgrami(p Program, pname Enum) int {
	var v int32
	f.glGetProgramiv(uint32(p.V), uint32(pname), &v)
	return int(v)
}

func (f *Functions) GetProgramInfoLog(p Program) string {
	n := f.GetProgrami(p, INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	f.glGetProgramInfoLog(uint32(p.V), int32(len(buf)), nil, &buf[0])
	return gunsafe.GoString(buf)
}

func (f *Functions) GetShaderi(s Shader, pname Enum) int {
	var v int32
	f.glGetShaderiv(uint32(s.V), uint32(pname), &v)
	return int(v)
}

func (f *Functions) GetShaderInfoLog(s Shader) string {
	n := f.GetShaderi(s, INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	f.glGetShaderInfoLog(uint32(s.V), int32(len(buf)), nil, &buf[0])
	return gunsafe.GoString(buf)
}

func (f *Functions) GetString(pname Enum) string {
	return gunsafe.StringAt(f.glGetString(uint32(pname)))
}

func (f *Functions) GetUniformLocation(p Program, name string) Uniform {
	cname := gunsafe.CString(name)
	loc := f.glGetUniformLocation(uint32(p.V), &cname[0])
	runtime.KeepAlive(cname)
	return Uniform{int(loc)}
}

func (f *Functions) LinkProgram(p Program) {
	f.glLinkProgram(uint32(p.V))
}

func (f *Functions) ShaderSource(s Shader, src string) {
	csrc := gunsafe.CString(src)
	srcs := []*byte{&csrc[0]}
	lens := []int32{int32(len(strings.TrimSuffix(src, "\x00")))}
	f.glShaderSource(uint32(s.V), 1, &srcs[0], &lens[0])
	runtime.KeepAlive(csrc)
	runtime.KeepAlive(srcs)
	runtime.KeepAlive(lens)
}

func (f *Functions) TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	f.glTexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(ty), p)
	runtime.KeepAlive(data)
}

func (f *Functions) TexParameteri(target, pname Enum, param int) {
	f.glTexParameteri(uint32(target), uint32(pname), int32(param))
}

func (f *Functions) TexSubImage2D(target Enum, level int, x, y, width, height int, format, ty Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	f.glTexSubImage2D(uint32(target), int32(level), int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), p)
	runtime.KeepAlive(data)
}

func (f *Functions) Uniform1f(dst Uniform, v float32) {
	f.glUniform1f(int32(dst.V), v)
}

func (f *Functions) Uniform1i(dst Uniform, v int) {
	f.glUniform1i(int32(dst.V), int32(v))
}

func (f *Functions) Uniform2f(dst Uniform, v0, v1 float32) {
	f.glUniform2f(int32(dst.V), v0, v1)
}

func (f *Functions) Uniform3f(dst Uniform, v0, v1, v2 float32) {
	f.glUniform3f(int32(dst.V), v0, v1, v2)
}

func (f *Functions) Uniform4f(dst Uniform, v0, v1, v2, v3 float32) {
	f.glUniform4f(int32(dst.V), v0, v1, v2, v3)
}

func (f *Functions) UniformMatrix4fv(dst Uniform, transpose bool, m []float32) {
	if len(m)%16 != 0 || len(m) == 0 {
		panic("gl: matrix data must be a non-empty multiple of 16 floats")
	}
	f.glUniformMatrix4fv(int32(dst.V), int32(len(m)/16), glBool(transpose), &m[0])
	runtime.KeepAlive(m)
}

func (f *Functions) UseProgram(p Program) {
	f.glUseProgram(uint32(p.V))
}

func (f *Functions) VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int) {
	f.glVertexAttribPointer(uint32(dst), int32(size), uint32(ty), glBool(normalized), int32(stride), uintptr(offset))
}

func (f *Functions) Viewport(x, y, width, height int) {
	f.glViewport(int32(x), int32(y), int32(width), int32(height))
}

func glBool(b bool) uint8 {
	if b {
		return TRUE
	}
	return FALSE
}
