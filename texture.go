// SPDX-License-Identifier: Unlicense OR MIT

package glbind

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"gioui.org/glbind/internal/gl"
)

// Texture is a handle to a 2D texture with linear, mipmapped
// filtering. Handles returned by Clone share the texture, which is
// deleted when the last one is released.
type Texture struct {
	handle
}

// NewTexture creates a texture and leaves it bound.
func (c *Context) NewTexture() *Texture {
	c.mustLive()
	t := c.f.CreateTexture()
	c.check()
	c.bindTexture(t)
	c.f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	c.check()
	c.f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	c.check()
	return &Texture{newHandle(c, "Texture", t.V, (*Context).deleteTexture)}
}

// Clone returns a new handle to the same texture.
func (t *Texture) Clone() *Texture {
	return &Texture{t.share()}
}

// Bind binds the texture to the 2D texture target.
func (t *Texture) Bind() {
	o := t.use()
	o.ctx.bindTexture(gl.Texture{V: o.name})
}

// SetPixels replaces the texture storage with width×height RGBA pixels
// and regenerates the mipmaps. It panics if pixels is not exactly
// width*height*4 bytes.
func (t *Texture) SetPixels(width, height int, pixels []byte) {
	checkPixels(width, height, pixels)
	o := t.use()
	c := o.ctx
	c.bindTexture(gl.Texture{V: o.name})
	c.f.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, width, height, gl.RGBA, gl.UNSIGNED_BYTE, pixels)
	c.check()
	c.f.GenerateMipmap(gl.TEXTURE_2D)
	c.check()
}

// UpdatePixels overwrites the width×height region at the origin. The
// texture must already be at least that large. Mipmaps are not
// regenerated.
func (t *Texture) UpdatePixels(width, height int, pixels []byte) {
	checkPixels(width, height, pixels)
	o := t.use()
	c := o.ctx
	c.bindTexture(gl.Texture{V: o.name})
	c.f.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, width, height, gl.RGBA, gl.UNSIGNED_BYTE, pixels)
	c.check()
}

// SetImage is like SetPixels for an image of any format.
func (t *Texture) SetImage(img image.Image) {
	rgba := toRGBA(img)
	sz := rgba.Bounds().Size()
	t.SetPixels(sz.X, sz.Y, rgba.Pix[:4*sz.X*sz.Y])
}

// UpdateImage is like UpdatePixels for an image of any format.
func (t *Texture) UpdateImage(img image.Image) {
	rgba := toRGBA(img)
	sz := rgba.Bounds().Size()
	t.UpdatePixels(sz.X, sz.Y, rgba.Pix[:4*sz.X*sz.Y])
}

func checkPixels(width, height int, pixels []byte) {
	if width < 0 || height < 0 {
		panic(fmt.Errorf("glbind: negative texture size %dx%d", width, height))
	}
	if n := width * height * 4; len(pixels) != n {
		panic(fmt.Errorf("glbind: %dx%d texture needs %d bytes of pixels, got %d", width, height, n, len(pixels)))
	}
}

// toRGBA returns img as a tightly packed *image.RGBA at the origin,
// converting if necessary.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
		return rgba
	}
	dst := image.NewRGBA(image.Rectangle{Max: b.Size()})
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
