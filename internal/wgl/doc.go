// SPDX-License-Identifier: Unlicense OR MIT

// Package wgl creates OpenGL contexts for Windows windows. The pixel
// format, rendering context and current binding are set up in a single
// step, because WGL needs the window's device context for all of them.
package wgl
