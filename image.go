package gfx

import (
	"image"
	stdcolor "image/color"

	xdraw "golang.org/x/image/draw"
)

// NRGBA converts the packed color to the standard library's
// non-premultiplied RGBA representation.
func (c Color) NRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// FromStdColor converts a standard library color to a packed Color,
// quantizing to 8 bits per channel.
func FromStdColor(c stdcolor.Color) Color {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return ARGB(n.A, n.R, n.G, n.B)
}

// ColorModel implements image.Image.
func (v *View) ColorModel() stdcolor.Model {
	return stdcolor.NRGBAModel
}

// Bounds implements image.Image.
func (v *View) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(v.desc.Width), int(v.desc.Height))
}

// At implements image.Image. Unlike GetPixel it is total: out-of-range
// coordinates return transparent, as the image interfaces require.
func (v *View) At(x, y int) stdcolor.Color {
	if x < 0 || y < 0 {
		return stdcolor.NRGBA{}
	}
	c, err := v.GetPixel(uint32(x), uint32(y))
	if err != nil {
		return stdcolor.NRGBA{}
	}
	return c.NRGBA()
}

// Set implements draw.Image. Out-of-range coordinates are ignored, as
// the draw interfaces require.
func (v *ViewMut) Set(x, y int, c stdcolor.Color) {
	if x < 0 || y < 0 {
		return
	}
	_ = v.SetPixel(uint32(x), uint32(y), FromStdColor(c))
}

// DrawImage copies img into the view with its top-left corner at,
// converting pixels through the view's format codec. Pixels falling
// outside the view are clipped. Source alpha replaces destination
// alpha (no compositing); use BlendMode for color math.
func (v *ViewMut) DrawImage(img image.Image, at Point) {
	xdraw.Copy(v, image.Pt(int(at.X), int(at.Y)), img, img.Bounds(), xdraw.Src, nil)
}
