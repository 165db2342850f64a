// SPDX-License-Identifier: Unlicense OR MIT

package wgl

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/ebitengine/purego"
	syscall "golang.org/x/sys/windows"

	"gioui.org/glbind/internal/dl"
	"gioui.org/glbind/internal/gl"
)

// Functions is the table of WGL entry points in opengl32.dll.
type Functions struct {
	CreateContext  func(hdc uintptr) uintptr
	DeleteContext  func(hglrc uintptr) int32
	GetProcAddress func(name string) uintptr
	MakeCurrent    func(hdc, hglrc uintptr) int32
}

// Context is a device context with a current WGL rendering context.
type Context struct {
	f    *Functions
	hwnd uintptr
	hdc  uintptr
	rc   uintptr
}

type pixelFormatDescriptor struct {
	Size           uint16
	Version        uint16
	Flags          uint32
	PixelType      uint8
	ColorBits      uint8
	RedBits        uint8
	RedShift       uint8
	GreenBits      uint8
	GreenShift     uint8
	BlueBits       uint8
	BlueShift      uint8
	AlphaBits      uint8
	AlphaShift     uint8
	AccumBits      uint8
	AccumRedBits   uint8
	AccumGreenBits uint8
	AccumBlueBits  uint8
	AccumAlphaBits uint8
	DepthBits      uint8
	StencilBits    uint8
	AuxBuffers     uint8
	LayerType      uint8
	Reserved       uint8
	LayerMask      uint32
	VisibleMask    uint32
	DamageMask     uint32
}

const (
	_PFD_DOUBLEBUFFER   = 0x1
	_PFD_DRAW_TO_WINDOW = 0x4
	_PFD_SUPPORT_OPENGL = 0x20
	_PFD_TYPE_RGBA      = 0
	_PFD_MAIN_PLANE     = 0
)

var (
	gdi32              = syscall.NewLazySystemDLL("gdi32.dll")
	_ChoosePixelFormat = gdi32.NewProc("ChoosePixelFormat")
	_SetPixelFormat    = gdi32.NewProc("SetPixelFormat")
	_SwapBuffers       = gdi32.NewProc("SwapBuffers")

	user32     = syscall.NewLazySystemDLL("user32.dll")
	_GetDC     = user32.NewProc("GetDC")
	_ReleaseDC = user32.NewProc("ReleaseDC")
)

// Load resolves the WGL entry points from lib, usually opengl32.dll.
func Load(lib *dl.Library) (*Functions, error) {
	f := new(Functions)
	procs := []struct {
		name string
		fn   any
	}{
		{"wglCreateContext", &f.CreateContext},
		{"wglDeleteContext", &f.DeleteContext},
		{"wglGetProcAddress", &f.GetProcAddress},
		{"wglMakeCurrent", &f.MakeCurrent},
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

// Bootstrap derives a device context from hwnd, sets its pixel format
// and makes a new rendering context current, all in one step.
func Bootstrap(f *Functions, hwnd uintptr, log *slog.Logger) (*Context, error) {
	hdc, _, _ := _GetDC.Call(hwnd)
	if hdc == 0 {
		return nil, fmt.Errorf("wgl: %w: GetDC failed", gl.ErrDisplayUnavailable)
	}
	c := &Context{f: f, hwnd: hwnd, hdc: hdc}
	pfd := pixelFormatDescriptor{
		Version:     1,
		Flags:       _PFD_DRAW_TO_WINDOW | _PFD_SUPPORT_OPENGL | _PFD_DOUBLEBUFFER,
		PixelType:   _PFD_TYPE_RGBA,
		ColorBits:   24,
		DepthBits:   24,
		StencilBits: 8,
		LayerType:   _PFD_MAIN_PLANE,
	}
	pfd.Size = uint16(unsafe.Sizeof(pfd))
	format, _, err := _ChoosePixelFormat.Call(hdc, uintptr(unsafe.Pointer(&pfd)))
	if format == 0 {
		c.Release()
		return nil, fmt.Errorf("wgl: %w: ChoosePixelFormat failed: %v", gl.ErrNoMatchingConfig, err)
	}
	if r, _, err := _SetPixelFormat.Call(hdc, format, uintptr(unsafe.Pointer(&pfd))); r == 0 {
		c.Release()
		return nil, fmt.Errorf("wgl: %w: SetPixelFormat failed: %v", gl.ErrNoMatchingConfig, err)
	}
	c.rc = f.CreateContext(hdc)
	if c.rc == 0 {
		c.Release()
		return nil, fmt.Errorf("wgl: %w: wglCreateContext failed", gl.ErrContextCreationFailed)
	}
	if f.MakeCurrent(hdc, c.rc) == 0 {
		c.Release()
		return nil, fmt.Errorf("wgl: %w: wglMakeCurrent failed", gl.ErrMakeCurrentFailed)
	}
	log.Info("wgl context created", "pixel_format", format)
	return c, nil
}

// GetProcAddress is wglGetProcAddress.
func (c *Context) GetProcAddress(name string) uintptr {
	return c.f.GetProcAddress(name)
}

func (c *Context) SwapBuffers() error {
	if c.hdc == 0 {
		panic("wgl: SwapBuffers on a released context")
	}
	if r, _, err := _SwapBuffers.Call(c.hdc); r == 0 {
		return fmt.Errorf("wgl: SwapBuffers failed: %v", err)
	}
	return nil
}

// Release deletes the rendering context and releases the device
// context.
func (c *Context) Release() {
	if c.rc != 0 {
		c.f.MakeCurrent(0, 0)
		c.f.DeleteContext(c.rc)
		c.rc = 0
	}
	if c.hdc != 0 {
		_ReleaseDC.Call(c.hwnd, c.hdc)
		c.hdc = 0
	}
}
