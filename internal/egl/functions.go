// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"github.com/ebitengine/purego"

	"gioui.org/glbind/internal/dl"
)

type (
	EGLint            int32
	EGLBoolean        uint32
	EGLenum           uint32
	EGLDisplay        uintptr
	EGLConfig         uintptr
	EGLContext        uintptr
	EGLSurface        uintptr
	NativeDisplayType uintptr
	NativeWindowType  uintptr
)

// Functions is the table of EGL entry points.
type Functions struct {
	BindAPI             func(api EGLenum) EGLBoolean
	ChooseConfig        func(disp EGLDisplay, attribs *EGLint, configs *EGLConfig, size EGLint, num *EGLint) EGLBoolean
	CreateContext       func(disp EGLDisplay, cfg EGLConfig, share EGLContext, attribs *EGLint) EGLContext
	CreateWindowSurface func(disp EGLDisplay, cfg EGLConfig, win NativeWindowType, attribs *EGLint) EGLSurface
	DestroyContext      func(disp EGLDisplay, ctx EGLContext) EGLBoolean
	DestroySurface      func(disp EGLDisplay, surf EGLSurface) EGLBoolean
	GetConfigAttrib     func(disp EGLDisplay, cfg EGLConfig, attr EGLint, val *EGLint) EGLBoolean
	GetDisplay          func(disp NativeDisplayType) EGLDisplay
	GetError            func() EGLint
	GetProcAddress      func(name string) uintptr
	Initialize          func(disp EGLDisplay, major, minor *EGLint) EGLBoolean
	MakeCurrent         func(disp EGLDisplay, draw, read EGLSurface, ctx EGLContext) EGLBoolean
	QueryString         func(disp EGLDisplay, name EGLint) string
	ReleaseThread       func() EGLBoolean
	SwapBuffers         func(disp EGLDisplay, surf EGLSurface) EGLBoolean
	SwapInterval        func(disp EGLDisplay, interval EGLint) EGLBoolean
	Terminate           func(disp EGLDisplay) EGLBoolean
}

// Load resolves every EGL entry point from lib. Any missing entry point
// fails the load.
func Load(lib *dl.Library) (*Functions, error) {
	f := new(Functions)
	procs := []struct {
		name string
		fn   any
	}{
		{"eglBindAPI", &f.BindAPI},
		{"eglChooseConfig", &f.ChooseConfig},
		{"eglCreateContext", &f.CreateContext},
		{"eglCreateWindowSurface", &f.CreateWindowSurface},
		{"eglDestroyContext", &f.DestroyContext},
		{"eglDestroySurface", &f.DestroySurface},
		{"eglGetConfigAttrib", &f.GetConfigAttrib},
		{"eglGetDisplay", &f.GetDisplay},
		{"eglGetError", &f.GetError},
		{"eglGetProcAddress", &f.GetProcAddress},
		{"eglInitialize", &f.Initialize},
		{"eglMakeCurrent", &f.MakeCurrent},
		{"eglQueryString", &f.QueryString},
		{"eglReleaseThread", &f.ReleaseThread},
		{"eglSwapBuffers", &f.SwapBuffers},
		{"eglSwapInterval", &f.SwapInterval},
		{"eglTerminate", &f.Terminate},
	}
	for _, p := range procs {
		addr, err := lib.Sym(p.name)
		if err != nil {
			return nil, err
		}
		purego.RegisterFunc(p.fn, addr)
	}
	return f, nil
}
