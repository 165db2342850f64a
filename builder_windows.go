// SPDX-License-Identifier: Unlicense OR MIT

package glbind

import (
	"gioui.org/glbind/internal/dl"
	"gioui.org/glbind/internal/wgl"
)

var (
	defaultEGLLibraries = []string{"libEGL.dll"}
	defaultGLLibraries  = []string{"opengl32.dll"}
)

type wglPlatform struct {
	f   *wgl.Functions
	lib *dl.Library
	ctx *wgl.Context
}

func newPlatform(cnf *config) (platform, int, error) {
	lib, err := dl.Open(cnf.glLibs...)
	if err != nil {
		return nil, 0, err
	}
	Logger().Debug("gl library loaded", "name", lib.Name)
	f, err := wgl.Load(lib)
	if err != nil {
		return nil, 0, err
	}
	return &wglPlatform{f: f, lib: lib}, 0, nil
}

// bind ignores the VSync option: wglSwapIntervalEXT is an extension
// this binding doesn't load.
func (p *wglPlatform) bind(win NativeWindow) error {
	c, err := wgl.Bootstrap(p.f, uintptr(win), Logger())
	if err != nil {
		return err
	}
	p.ctx = c
	return nil
}

func (p *wglPlatform) resolve(name string) (uintptr, error) {
	addr, err := dl.Resolve(name, p.ctx.GetProcAddress, p.lib)
	if err == nil {
		Logger().Debug("gl function resolved", "name", name)
	}
	return addr, err
}

func (p *wglPlatform) swap() error {
	return p.ctx.SwapBuffers()
}

func (p *wglPlatform) info() DisplayInfo {
	return DisplayInfo{Vendor: "WGL", ClientAPIs: "OpenGL"}
}

func (p *wglPlatform) release() {
	if p.ctx != nil {
		p.ctx.Release()
		p.ctx = nil
	}
}
