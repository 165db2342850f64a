// SPDX-License-Identifier: Unlicense OR MIT

//go:build !windows

package glbind

import (
	"gioui.org/glbind/internal/dl"
	"gioui.org/glbind/internal/egl"
)

var (
	defaultEGLLibraries = []string{"libEGL.so.1", "libEGL.so"}
	defaultGLLibraries  = []string{"libGLESv2.so.2", "libGLESv2.so", "libGL.so.1"}
)

type eglPlatform struct {
	ctx          *egl.Context
	swapInterval int
	// libs are searched for entry points eglGetProcAddress doesn't
	// return.
	libs []*dl.Library
}

func newPlatform(cnf *config) (platform, int, error) {
	lib, err := dl.Open(cnf.eglLibs...)
	if err != nil {
		return nil, 0, err
	}
	Logger().Debug("egl library loaded", "name", lib.Name)
	f, err := egl.Load(lib)
	if err != nil {
		return nil, 0, err
	}
	libs := []*dl.Library{lib}
	if glLib, err := dl.Open(cnf.glLibs...); err == nil {
		Logger().Debug("gl library loaded", "name", glLib.Name)
		libs = append([]*dl.Library{glLib}, libs...)
	} else {
		Logger().Debug("no gl library, relying on eglGetProcAddress", "err", err)
	}
	p, visID, err := bootstrapEGL(f, cnf, libs)
	if err != nil {
		return nil, 0, err
	}
	return p, visID, nil
}

// bootstrapEGL connects to the display, chooses a configuration and
// creates a rendering context. On failure, every completed step is
// undone.
func bootstrapEGL(f *egl.Functions, cnf *config, libs []*dl.Library) (*eglPlatform, int, error) {
	c := egl.NewContext(f, Logger())
	if err := c.Connect(egl.NativeDisplayType(cnf.display)); err != nil {
		c.Release()
		return nil, 0, err
	}
	err := c.Configure(egl.Config{
		RedBits:   cnf.redBits,
		GreenBits: cnf.greenBits,
		BlueBits:  cnf.blueBits,
		DepthBits: cnf.depthBits,
		Samples:   cnf.samples,
	})
	if err != nil {
		c.Release()
		return nil, 0, err
	}
	visID, err := c.CreateContext(cnf.clientVersion)
	if err != nil {
		c.Release()
		return nil, 0, err
	}
	return &eglPlatform{ctx: c, swapInterval: cnf.swapInterval, libs: libs}, visID, nil
}

func (p *eglPlatform) bind(win NativeWindow) error {
	if err := p.ctx.BindSurface(egl.NativeWindowType(win)); err != nil {
		return err
	}
	if p.swapInterval >= 0 {
		p.ctx.EnableVSync(p.swapInterval > 0)
	}
	return nil
}

func (p *eglPlatform) resolve(name string) (uintptr, error) {
	addr, err := dl.Resolve(name, p.ctx.GetProcAddress, p.libs...)
	if err == nil {
		Logger().Debug("gl function resolved", "name", name)
	}
	return addr, err
}

func (p *eglPlatform) swap() error {
	return p.ctx.SwapBuffers()
}

func (p *eglPlatform) info() DisplayInfo {
	return DisplayInfo{
		Vendor:        p.ctx.QueryString(egl.Vendor),
		Version:       p.ctx.QueryString(egl.Version),
		ClientAPIs:    p.ctx.QueryString(egl.ClientAPIs),
		Extensions:    p.ctx.Extensions(),
		ClientVersion: p.ctx.ClientVersion(),
	}
}

func (p *eglPlatform) release() {
	p.ctx.Release()
}
