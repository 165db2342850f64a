// SPDX-License-Identifier: Unlicense OR MIT

package glbind

import (
	"fmt"

	"gioui.org/glbind/internal/gl"
)

// NativeWindow is a platform window handle: an X11 Window or
// ANativeWindow pointer for EGL, a HWND on Windows.
type NativeWindow uintptr

// Feature is a server-side capability toggled with Context.Enable and
// Context.Disable.
type Feature uint32

const (
	Dither    Feature = gl.DITHER
	CullFace  Feature = gl.CULL_FACE
	Blend     Feature = gl.BLEND
	DepthTest Feature = gl.DEPTH_TEST
)

// Topology is the primitive type of Program.DrawArrays.
type Topology uint8

const (
	Points Topology = iota
	Lines
	LineLoop
	LineStrip
	Triangles
	TriangleStrip
	TriangleFan
)

func (f Feature) String() string {
	switch f {
	case Dither:
		return "Dither"
	case CullFace:
		return "CullFace"
	case Blend:
		return "Blend"
	case DepthTest:
		return "DepthTest"
	default:
		return fmt.Sprintf("Feature(0x%x)", uint32(f))
	}
}

func (t Topology) String() string {
	switch t {
	case Points:
		return "Points"
	case Lines:
		return "Lines"
	case LineLoop:
		return "LineLoop"
	case LineStrip:
		return "LineStrip"
	case Triangles:
		return "Triangles"
	case TriangleStrip:
		return "TriangleStrip"
	case TriangleFan:
		return "TriangleFan"
	default:
		return fmt.Sprintf("Topology(%d)", uint8(t))
	}
}

func (t Topology) mode() gl.Enum {
	if t > TriangleFan {
		panic(fmt.Errorf("glbind: invalid topology %v", t))
	}
	return gl.POINTS + gl.Enum(t)
}
