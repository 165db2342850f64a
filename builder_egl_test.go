// SPDX-License-Identifier: Unlicense OR MIT

//go:build !windows

package glbind

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/glbind/internal/egl"
	"gioui.org/glbind/internal/gl"
	"gioui.org/glbind/internal/gl/gltest"
)

// eglDisplay records the calls that matter to the bootstrap of a
// single configuration display.
type eglDisplay struct {
	noDisplay bool
	swaps     int
	surface   egl.NativeWindowType
	destroyed []string
	intervals []egl.EGLint
}

func (d *eglDisplay) functions() *egl.Functions {
	ok := func() egl.EGLBoolean { return 1 }
	return &egl.Functions{
		BindAPI: func(egl.EGLenum) egl.EGLBoolean { return ok() },
		ChooseConfig: func(_ egl.EGLDisplay, _ *egl.EGLint, cfg *egl.EGLConfig, _ egl.EGLint, n *egl.EGLint) egl.EGLBoolean {
			*cfg, *n = 1, 1
			return ok()
		},
		CreateContext: func(egl.EGLDisplay, egl.EGLConfig, egl.EGLContext, *egl.EGLint) egl.EGLContext {
			return 1
		},
		CreateWindowSurface: func(_ egl.EGLDisplay, _ egl.EGLConfig, win egl.NativeWindowType, _ *egl.EGLint) egl.EGLSurface {
			d.surface = win
			return 1
		},
		DestroyContext: func(egl.EGLDisplay, egl.EGLContext) egl.EGLBoolean {
			d.destroyed = append(d.destroyed, "context")
			return ok()
		},
		DestroySurface: func(egl.EGLDisplay, egl.EGLSurface) egl.EGLBoolean {
			d.destroyed = append(d.destroyed, "surface")
			return ok()
		},
		GetConfigAttrib: func(_ egl.EGLDisplay, _ egl.EGLConfig, _ egl.EGLint, v *egl.EGLint) egl.EGLBoolean {
			*v = 0x2a
			return ok()
		},
		GetDisplay: func(egl.NativeDisplayType) egl.EGLDisplay {
			if d.noDisplay {
				return 0
			}
			return 1
		},
		GetError:       func() egl.EGLint { return 0x3008 },
		GetProcAddress: func(string) uintptr { return 0 },
		Initialize: func(_ egl.EGLDisplay, major, minor *egl.EGLint) egl.EGLBoolean {
			*major, *minor = 1, 4
			return ok()
		},
		MakeCurrent: func(egl.EGLDisplay, egl.EGLSurface, egl.EGLSurface, egl.EGLContext) egl.EGLBoolean {
			return ok()
		},
		QueryString: func(_ egl.EGLDisplay, name egl.EGLint) string {
			switch name {
			case egl.Vendor:
				return "Mesa Project"
			case egl.Extensions:
				return "EGL_KHR_create_context EGL_EXT_buffer_age"
			}
			return ""
		},
		ReleaseThread: ok,
		SwapBuffers: func(egl.EGLDisplay, egl.EGLSurface) egl.EGLBoolean {
			d.swaps++
			return ok()
		},
		SwapInterval: func(_ egl.EGLDisplay, interval egl.EGLint) egl.EGLBoolean {
			d.intervals = append(d.intervals, interval)
			return ok()
		},
		Terminate: func(egl.EGLDisplay) egl.EGLBoolean {
			d.destroyed = append(d.destroyed, "display")
			return ok()
		},
	}
}

func TestEGLBootstrap(t *testing.T) {
	stubThreadLock(t)
	d := new(eglDisplay)
	cnf := newConfig(nil)
	plat, visID, err := bootstrapEGL(d.functions(), &cnf, nil)
	require.NoError(t, err)
	assert.Equal(t, 0x2a, visID)

	f := gltest.New()
	b := &Builder{cnf: cnf, plat: plat, load: func(gl.Resolver) (gl.API, error) { return f, nil }}
	info := b.Info()
	assert.Equal(t, "Mesa Project", info.Vendor)
	assert.Equal(t, []string{"EGL_KHR_create_context", "EGL_EXT_buffer_age"}, info.Extensions)
	assert.Equal(t, 2, info.ClientVersion)

	c, err := b.Complete(0x99)
	require.NoError(t, err)
	assert.Equal(t, egl.NativeWindowType(0x99), d.surface)
	assert.Empty(t, d.intervals)

	buf := c.NewBuffer()
	require.NoError(t, c.Present())
	assert.Equal(t, 1, d.swaps)

	c.Release()
	assert.Empty(t, d.destroyed)
	buf.Release()
	assert.Equal(t, []string{"surface", "context", "display"}, d.destroyed)
}

func TestEGLVSync(t *testing.T) {
	for _, enable := range []bool{false, true} {
		d := new(eglDisplay)
		cnf := newConfig([]Option{VSync(enable)})
		plat, _, err := bootstrapEGL(d.functions(), &cnf, nil)
		require.NoError(t, err)
		assert.Empty(t, d.intervals)
		require.NoError(t, plat.bind(0x99))
		want := egl.EGLint(0)
		if enable {
			want = 1
		}
		assert.Equal(t, []egl.EGLint{want}, d.intervals)
		plat.release()
	}
}

func TestEGLBootstrapFailure(t *testing.T) {
	d := &eglDisplay{noDisplay: true}
	cnf := newConfig(nil)
	_, _, err := bootstrapEGL(d.functions(), &cnf, nil)
	assert.ErrorIs(t, err, ErrDisplayUnavailable)
	assert.Empty(t, d.destroyed)
}

func TestEGLResolveMissing(t *testing.T) {
	d := new(eglDisplay)
	cnf := newConfig(nil)
	plat, _, err := bootstrapEGL(d.functions(), &cnf, nil)
	require.NoError(t, err)
	defer plat.release()
	_, err = plat.resolve("glDrawArrays")
	var serr *SymbolError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "glDrawArrays", serr.Symbol)
}

func TestNewBuilderMissingLibrary(t *testing.T) {
	_, _, err := NewBuilder(EGLLibraries("libglbind-missing.so.1", "libglbind-missing.so"))
	var lerr *LoadError
	require.True(t, errors.As(err, &lerr), "got %v", err)
	assert.Equal(t, []string{"libglbind-missing.so.1", "libglbind-missing.so"}, lerr.Names)
}
