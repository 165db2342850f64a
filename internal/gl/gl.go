// SPDX-License-Identifier: Unlicense OR MIT

// Package gl binds the OpenGL ES 2 entry points used by glbind.
// Enum values are the ones defined by the Khronos headers.
package gl

type (
	Attrib uint
	Enum   uint
)

const (
	ARRAY_BUFFER         = 0x8892
	BLEND                = 0xbe2
	COLOR_BUFFER_BIT     = 0x4000
	COMPILE_STATUS       = 0x8b81
	CULL_FACE            = 0xb44
	DEPTH_BUFFER_BIT     = 0x100
	DEPTH_TEST           = 0xb71
	DITHER               = 0xbd0
	DST_ALPHA            = 0x304
	DYNAMIC_DRAW         = 0x88e8
	FALSE                = 0
	FLOAT                = 0x1406
	FRAGMENT_SHADER      = 0x8b30
	INFO_LOG_LENGTH      = 0x8b84
	LINEAR               = 0x2601
	LINEAR_MIPMAP_LINEAR = 0x2703
	LINK_STATUS          = 0x8b82
	NO_ERROR             = 0x0
	ONE_MINUS_SRC_ALPHA  = 0x303
	RENDERER             = 0x1f01
	RGBA                 = 0x1908
	SRC_ALPHA            = 0x302
	TEXTURE_2D           = 0xde1
	TEXTURE_MAG_FILTER   = 0x2800
	TEXTURE_MIN_FILTER   = 0x2801
	TRUE                 = 1
	UNSIGNED_BYTE        = 0x1401
	VENDOR               = 0x1f00
	VERSION              = 0x1f02
	VERTEX_SHADER        = 0x8b31

	// Primitive topologies.
	POINTS         = 0x0
	LINES          = 0x1
	LINE_LOOP      = 0x2
	LINE_STRIP     = 0x3
	TRIANGLES      = 0x4
	TRIANGLE_STRIP = 0x5
	TRIANGLE_FAN   = 0x6

	// glGetError codes.
	INVALID_ENUM      = 0x500
	INVALID_VALUE     = 0x501
	INVALID_OPERATION = 0x502
	STACK_OVERFLOW    = 0x503
	STACK_UNDERFLOW   = 0x504
	OUT_OF_MEMORY     = 0x505
)
