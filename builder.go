// SPDX-License-Identifier: Unlicense OR MIT

package glbind

import (
	"runtime"

	"gioui.org/glbind/internal/gl"
)

// Builder holds a display connection with a chosen framebuffer
// configuration and a rendering context, waiting for a window. It is
// the first phase of the bootstrap: the windowing system needs the
// visual id NewBuilder returns to create a compatible window, which is
// then passed to Complete.
type Builder struct {
	cnf  config
	plat platform
	load func(resolve gl.Resolver) (gl.API, error)
}

// DisplayInfo describes the display connection of a Builder.
type DisplayInfo struct {
	Vendor     string
	Version    string
	ClientAPIs string
	Extensions []string
	// ClientVersion is the OpenGL ES version of the rendering context.
	ClientVersion int
}

// platform is the window system binding of a Builder, and later of
// its Context.
type platform interface {
	// bind creates a surface for win and makes it current together
	// with the rendering context.
	bind(win NativeWindow) error
	resolve(name string) (uintptr, error)
	swap() error
	info() DisplayInfo
	release()
}

// NewBuilder loads the platform libraries, connects to the display,
// chooses a framebuffer configuration and creates a rendering context.
// It returns the Builder and the native visual id of the chosen
// configuration. On Windows the visual id is always 0 and the work is
// deferred to Complete, because WGL needs the window first.
func NewBuilder(opts ...Option) (*Builder, int, error) {
	cnf := newConfig(opts)
	plat, visID, err := newPlatform(&cnf)
	if err != nil {
		return nil, 0, err
	}
	return &Builder{cnf: cnf, plat: plat, load: loadFunctions}, visID, nil
}

// Complete binds win to the rendering context, makes it current on the
// calling thread and resolves the OpenGL ES entry points. The Builder
// is consumed, whether Complete succeeds or not.
//
// On success the calling goroutine is locked to its OS thread until the
// Context and every object created from it are released. The Context
// must only be used from that goroutine.
func (b *Builder) Complete(win NativeWindow) (*Context, error) {
	if b == nil || b.plat == nil {
		return nil, ErrNotConfigured
	}
	plat := b.plat
	b.plat = nil
	lockOSThread()
	if err := plat.bind(win); err != nil {
		plat.release()
		unlockOSThread()
		return nil, err
	}
	f, err := b.load(plat.resolve)
	if err != nil {
		plat.release()
		unlockOSThread()
		return nil, err
	}
	return newContext(f, plat, b.cnf), nil
}

// Info describes the display connection. It returns the zero
// DisplayInfo for a Builder that isn't configured.
func (b *Builder) Info() DisplayInfo {
	if b == nil || b.plat == nil {
		return DisplayInfo{}
	}
	return b.plat.info()
}

// Release abandons the bootstrap and frees everything NewBuilder
// acquired. It is a no-op for a completed Builder.
func (b *Builder) Release() {
	if b == nil || b.plat == nil {
		return
	}
	b.plat.release()
	b.plat = nil
}

// Replaced in tests.
var (
	lockOSThread   = runtime.LockOSThread
	unlockOSThread = runtime.UnlockOSThread
)

func loadFunctions(resolve gl.Resolver) (gl.API, error) {
	f, err := gl.Load(resolve)
	if err != nil {
		return nil, err
	}
	return f, nil
}
