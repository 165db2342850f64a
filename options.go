// SPDX-License-Identifier: Unlicense OR MIT

package glbind

import "os"

// Option configures a Builder. Options are evaluated once, by
// NewBuilder.
type Option func(cnf *config)

type config struct {
	eglLibs []string
	glLibs  []string
	display uintptr

	redBits, greenBits, blueBits int
	depthBits                    int
	samples                      int
	clientVersion                int
	// swapInterval is -1 for the driver default.
	swapInterval int

	// debug queries glGetError after every call.
	debug bool
	// checkShaders queries compile and link status.
	checkShaders bool
}

func defaultConfig() config {
	return config{
		eglLibs:       defaultEGLLibraries,
		glLibs:        defaultGLLibraries,
		redBits:       8,
		greenBits:     8,
		blueBits:      8,
		depthBits:     24,
		clientVersion: 2,
		swapInterval:  -1,
		checkShaders:  true,
	}
}

func newConfig(opts []Option) config {
	cnf := defaultConfig()
	if os.Getenv("GLBIND_DEBUG") == "1" {
		cnf.debug = true
	}
	for _, o := range opts {
		o(&cnf)
	}
	return cnf
}

// EGLLibraries replaces the candidate names of the EGL library. The
// first one that loads is used. It has no effect on Windows.
func EGLLibraries(names ...string) Option {
	if len(names) == 0 {
		panic("no EGL library names")
	}
	return func(cnf *config) {
		cnf.eglLibs = names
	}
}

// GLLibraries replaces the candidate names of the library searched for
// GL entry points the platform loader doesn't return.
func GLLibraries(names ...string) Option {
	if len(names) == 0 {
		panic("no GL library names")
	}
	return func(cnf *config) {
		cnf.glLibs = names
	}
}

// NativeDisplay sets the native display connection, such as an X11
// Display pointer, handed to eglGetDisplay. The default is
// EGL_DEFAULT_DISPLAY.
func NativeDisplay(d uintptr) Option {
	return func(cnf *config) {
		cnf.display = d
	}
}

// ColorBits sets the minimum red, green and blue channel sizes.
func ColorBits(r, g, b int) Option {
	if r < 0 || g < 0 || b < 0 {
		panic("color bits must be larger than or equal to 0")
	}
	return func(cnf *config) {
		cnf.redBits, cnf.greenBits, cnf.blueBits = r, g, b
	}
}

// DepthBits sets the minimum depth buffer size.
func DepthBits(n int) Option {
	if n < 0 {
		panic("depth bits must be larger than or equal to 0")
	}
	return func(cnf *config) {
		cnf.depthBits = n
	}
}

// Samples requests a multisampled framebuffer with n samples per pixel.
func Samples(n int) Option {
	if n < 0 {
		panic("samples must be larger than or equal to 0")
	}
	return func(cnf *config) {
		cnf.samples = n
	}
}

// ClientVersion sets the requested OpenGL ES major version. Versions
// the display refuses fall back to 2.
func ClientVersion(v int) Option {
	if v < 2 {
		panic("client version must be at least 2")
	}
	return func(cnf *config) {
		cnf.clientVersion = v
	}
}

// VSync sets whether Present waits for the vertical blank. Without the
// option the driver default is kept. It has no effect on Windows.
func VSync(enable bool) Option {
	return func(cnf *config) {
		cnf.swapInterval = 0
		if enable {
			cnf.swapInterval = 1
		}
	}
}

// Debug makes the Context check glGetError after every call and panic
// with a *gl.Error describing the failure. Setting GLBIND_DEBUG=1 in
// the environment has the same effect.
func Debug() Option {
	return func(cnf *config) {
		cnf.debug = true
	}
}

// UncheckedShaders skips the compile and link status queries of
// Compile. Broken shaders then surface as undefined rendering instead
// of a CompileError.
func UncheckedShaders() Option {
	return func(cnf *config) {
		cnf.checkShaders = false
	}
}
