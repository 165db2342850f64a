// SPDX-License-Identifier: Unlicense OR MIT

/*
Package glbind binds a native window to an OpenGL ES 2 context and wraps
the handful of GL objects a simple renderer needs.

The platform libraries (EGL and GLESv2, or opengl32.dll on Windows) are
loaded at runtime; no cgo or link time dependency is involved.

# Bootstrap

A context is created in two phases, because X11 and similar window
systems need the visual id of the framebuffer configuration before the
window can be created:

	b, visualID, err := glbind.NewBuilder(glbind.Samples(4))
	if err != nil {
		...
	}
	win := createWindow(visualID)
	ctx, err := b.Complete(glbind.NativeWindow(win))

Complete makes the context current on the calling thread and locks the
calling goroutine to it with runtime.LockOSThread. The Context and
every object created from it must only be used from that goroutine;
the lock is released together with the last of them.

# Objects

Buffers, textures and programs are reference counted handles. Clone
returns another handle to the same object, and the object is deleted
when its last handle is released. Binding goes through a cache that
skips redundant glBind* and glUseProgram calls.

# Debugging

The Debug option, or GLBIND_DEBUG=1 in the environment, makes every GL
call check glGetError and panic with a descriptive error. Use SetLogger
to receive diagnostics through log/slog.
*/
package glbind
