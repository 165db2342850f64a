// SPDX-License-Identifier: Unlicense OR MIT

// Package egl implements the EGL display, context and surface bootstrap.
package egl

import (
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/exp/slices"

	"gioui.org/glbind/internal/gl"
)

// Context walks an EGL display through the bootstrap states. Each step
// must be called in order; out of order calls fail with gl.ErrBadState.
type Context struct {
	f     *Functions
	log   *slog.Logger
	state State

	disp     EGLDisplay
	config   EGLConfig
	ctx      EGLContext
	surf     EGLSurface
	visualID int
	version  int
}

// Config describes the framebuffer configuration requested from EGL.
type Config struct {
	RedBits, GreenBits, BlueBits int
	DepthBits                    int
	// Samples enables multisampling when larger than zero.
	Samples int
}

// State is a bootstrap state.
type State uint8

const (
	Unopened State = iota
	Connected
	Configured
	ContextCreated
	SurfaceBound
	Released
)

var (
	nilEGLDisplay EGLDisplay
	nilEGLSurface EGLSurface
	nilEGLContext EGLContext
	nilEGLConfig  EGLConfig
)

const (
	_EGL_BLUE_SIZE              = 0x3022
	_EGL_CLIENT_APIS            = 0x308d
	_EGL_CONTEXT_CLIENT_VERSION = 0x3098
	_EGL_DEPTH_SIZE             = 0x3025
	_EGL_EXTENSIONS             = 0x3055
	_EGL_GREEN_SIZE             = 0x3023
	_EGL_NATIVE_VISUAL_ID       = 0x302e
	_EGL_NONE                   = 0x3038
	_EGL_OPENGL_ES2_BIT         = 0x4
	_EGL_OPENGL_ES_API          = 0x30a0
	_EGL_RED_SIZE               = 0x3024
	_EGL_RENDERABLE_TYPE        = 0x3040
	_EGL_SAMPLES                = 0x3031
	_EGL_SAMPLE_BUFFERS         = 0x3032
	_EGL_SURFACE_TYPE           = 0x3033
	_EGL_VENDOR                 = 0x3053
	_EGL_VERSION                = 0x3054
	_EGL_WINDOW_BIT             = 0x4
)

// Names for QueryString.
const (
	Vendor     EGLint = _EGL_VENDOR
	Version    EGLint = _EGL_VERSION
	Extensions EGLint = _EGL_EXTENSIONS
	ClientAPIs EGLint = _EGL_CLIENT_APIS
)

// NewContext returns an Unopened context calling through f. A nil
// logger discards output.
func NewContext(f *Functions, log *slog.Logger) *Context {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Context{f: f, log: log}
}

// State returns the current bootstrap state.
func (c *Context) State() State {
	return c.state
}

// Connect opens the display connection and initializes EGL on it.
func (c *Context) Connect(disp NativeDisplayType) error {
	if err := c.expect(Unopened); err != nil {
		return err
	}
	eglDisp := c.f.GetDisplay(disp)
	// eglGetDisplay can return EGL_NO_DISPLAY yet no error.
	if eglDisp == nilEGLDisplay {
		return fmt.Errorf("egl: %w: eglGetDisplay failed: 0x%x", gl.ErrDisplayUnavailable, c.f.GetError())
	}
	var major, minor EGLint
	if c.f.Initialize(eglDisp, &major, &minor) == 0 {
		return fmt.Errorf("egl: %w: eglInitialize failed: 0x%x", gl.ErrDisplayUnavailable, c.f.GetError())
	}
	c.disp = eglDisp
	c.state = Connected
	c.log.Info("egl display connected", "version", fmt.Sprintf("%d.%d", major, minor))
	return nil
}

// Configure chooses a framebuffer configuration matching cfg.
func (c *Context) Configure(cfg Config) error {
	if err := c.expect(Connected); err != nil {
		return err
	}
	attribs := []EGLint{
		_EGL_RENDERABLE_TYPE, _EGL_OPENGL_ES2_BIT,
		_EGL_SURFACE_TYPE, _EGL_WINDOW_BIT,
		_EGL_RED_SIZE, EGLint(cfg.RedBits),
		_EGL_GREEN_SIZE, EGLint(cfg.GreenBits),
		_EGL_BLUE_SIZE, EGLint(cfg.BlueBits),
		_EGL_DEPTH_SIZE, EGLint(cfg.DepthBits),
	}
	if cfg.Samples > 0 {
		attribs = append(attribs, _EGL_SAMPLE_BUFFERS, 1, _EGL_SAMPLES, EGLint(cfg.Samples))
	}
	attribs = append(attribs, _EGL_NONE)
	var eglCfg EGLConfig
	var n EGLint
	if c.f.ChooseConfig(c.disp, &attribs[0], &eglCfg, 1, &n) == 0 {
		return fmt.Errorf("egl: %w: eglChooseConfig failed: 0x%x", gl.ErrNoMatchingConfig, c.f.GetError())
	}
	if n == 0 || eglCfg == nilEGLConfig {
		return fmt.Errorf("egl: %w: eglChooseConfig returned 0 configs", gl.ErrNoMatchingConfig)
	}
	c.config = eglCfg
	c.state = Configured
	return nil
}

// CreateContext binds the OpenGL ES API, creates a rendering context of
// the requested client version and returns the native visual id
// matching the chosen configuration. If the version is refused,
// version 2 is tried instead.
func (c *Context) CreateContext(clientVersion int) (int, error) {
	if err := c.expect(Configured); err != nil {
		return 0, err
	}
	if c.f.BindAPI(_EGL_OPENGL_ES_API) == 0 {
		return 0, fmt.Errorf("egl: %w: eglBindAPI failed: 0x%x", gl.ErrContextCreationFailed, c.f.GetError())
	}
	ctxAttribs := []EGLint{
		_EGL_CONTEXT_CLIENT_VERSION, EGLint(clientVersion),
		_EGL_NONE,
	}
	eglCtx := c.f.CreateContext(c.disp, c.config, nilEGLContext, &ctxAttribs[0])
	if eglCtx == nilEGLContext && clientVersion > 2 {
		c.log.Warn("egl context refused, falling back to OpenGL ES 2", "version", clientVersion)
		clientVersion = 2
		ctxAttribs[1] = 2
		eglCtx = c.f.CreateContext(c.disp, c.config, nilEGLContext, &ctxAttribs[0])
	}
	if eglCtx == nilEGLContext {
		return 0, fmt.Errorf("egl: %w: eglCreateContext failed: 0x%x", gl.ErrContextCreationFailed, c.f.GetError())
	}
	var visID EGLint
	if c.f.GetConfigAttrib(c.disp, c.config, _EGL_NATIVE_VISUAL_ID, &visID) == 0 {
		c.f.DestroyContext(c.disp, eglCtx)
		return 0, fmt.Errorf("egl: %w: eglGetConfigAttrib for EGL_NATIVE_VISUAL_ID failed: 0x%x", gl.ErrContextCreationFailed, c.f.GetError())
	}
	c.ctx = eglCtx
	c.visualID = int(visID)
	c.version = clientVersion
	c.state = ContextCreated
	c.log.Info("egl context created", "client_version", clientVersion, "visual_id", c.visualID)
	return c.visualID, nil
}

// BindSurface creates a window surface for win and makes it current
// together with the rendering context on the calling thread.
func (c *Context) BindSurface(win NativeWindowType) error {
	if err := c.expect(ContextCreated); err != nil {
		return err
	}
	attribs := []EGLint{_EGL_NONE}
	eglSurf := c.f.CreateWindowSurface(c.disp, c.config, win, &attribs[0])
	if eglSurf == nilEGLSurface {
		return fmt.Errorf("egl: %w: eglCreateWindowSurface failed: 0x%x", gl.ErrSurfaceBindFailed, c.f.GetError())
	}
	if c.f.MakeCurrent(c.disp, eglSurf, eglSurf, c.ctx) == 0 {
		code := c.f.GetError()
		c.f.DestroySurface(c.disp, eglSurf)
		return fmt.Errorf("egl: %w: eglMakeCurrent failed: 0x%x", gl.ErrMakeCurrentFailed, code)
	}
	c.surf = eglSurf
	c.state = SurfaceBound
	return nil
}

// SwapBuffers presents the surface. It panics if no surface is bound.
func (c *Context) SwapBuffers() error {
	if c.state != SurfaceBound {
		panic(fmt.Sprintf("egl: SwapBuffers in state %v; no surface is bound", c.state))
	}
	if c.f.SwapBuffers(c.disp, c.surf) == 0 {
		return fmt.Errorf("egl: eglSwapBuffers failed: 0x%x", c.f.GetError())
	}
	return nil
}

// EnableVSync sets the swap interval of the current surface.
func (c *Context) EnableVSync(enable bool) {
	if c.state != SurfaceBound {
		return
	}
	var interval EGLint
	if enable {
		interval = 1
	}
	c.f.SwapInterval(c.disp, interval)
}

// GetProcAddress is eglGetProcAddress.
func (c *Context) GetProcAddress(name string) uintptr {
	return c.f.GetProcAddress(name)
}

// QueryString returns an EGL string of the connected display.
func (c *Context) QueryString(name EGLint) string {
	if c.state < Connected || c.state == Released {
		return ""
	}
	return c.f.QueryString(c.disp, name)
}

// Extensions returns the EGL extensions of the connected display.
func (c *Context) Extensions() []string {
	return strings.Fields(c.QueryString(Extensions))
}

// HasExtension reports whether the connected display supports ext.
func (c *Context) HasExtension(ext string) bool {
	return slices.Contains(c.Extensions(), ext)
}

// ClientVersion returns the OpenGL ES version of the created context.
func (c *Context) ClientVersion() int {
	return c.version
}

// Release undoes every completed step. It is safe to call in any state
// and more than once.
func (c *Context) Release() {
	if c.state == Released {
		return
	}
	if c.surf != nilEGLSurface {
		c.f.MakeCurrent(c.disp, nilEGLSurface, nilEGLSurface, nilEGLContext)
		c.f.DestroySurface(c.disp, c.surf)
		c.surf = nilEGLSurface
	}
	if c.ctx != nilEGLContext {
		c.f.DestroyContext(c.disp, c.ctx)
		c.ctx = nilEGLContext
	}
	if c.disp != nilEGLDisplay {
		c.f.Terminate(c.disp)
		c.f.ReleaseThread()
		c.disp = nilEGLDisplay
	}
	c.state = Released
}

func (c *Context) expect(s State) error {
	if c.state != s {
		return fmt.Errorf("egl: %w: in state %v, want %v", gl.ErrBadState, c.state, s)
	}
	return nil
}

func (s State) String() string {
	switch s {
	case Unopened:
		return "Unopened"
	case Connected:
		return "Connected"
	case Configured:
		return "Configured"
	case ContextCreated:
		return "ContextCreated"
	case SurfaceBound:
		return "SurfaceBound"
	case Released:
		return "Released"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}
