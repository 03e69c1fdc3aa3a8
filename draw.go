package mipmap

import (
	"image"
	"image/color"

	"github.com/registrohoras/mipmap/imop"
	"github.com/registrohoras/mipmap/utils"
	"golang.org/x/image/vector"
)

// kappa is the control point distance used to approximate
// a quarter circle with a cubic Bézier curve.
const kappa = 0.5522847498

var (
	// PrimaryColor fills the placeholder background and the clock hands.
	PrimaryColor = color.NRGBA{R: 33, G: 150, B: 243, A: 255}
	// AccentColor fills the dot at the clock center.
	AccentColor = color.NRGBA{R: 255, G: 193, B: 7, A: 255}
	clockFace   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Canvas rasterizes anti-aliased shapes onto an NRGBA image.
// Boxes follow the inclusive pixel convention: the (x0, y0)-(x1, y1) box
// covers the pixels x0..x1 and y0..y1, so its edges lie on x0 and x1+1.
type Canvas struct {
	Img *image.NRGBA
	r   *vector.Rasterizer
}

// NewCanvas returns a fully transparent square canvas.
func NewCanvas(size int) *Canvas {
	return &Canvas{
		Img: image.NewNRGBA(image.Rect(0, 0, size, size)),
		r:   vector.NewRasterizer(size, size),
	}
}

// fill paints the current path with the color c and resets the rasterizer.
func (c *Canvas) fill(col color.Color) {
	b := c.Img.Bounds()
	c.r.Draw(c.Img, b, image.NewUniform(col), image.Point{})
	c.r.Reset(b.Dx(), b.Dy())
}

// DrawEllipse fills the ellipse inscribed in the (x0, y0)-(x1, y1) box.
func (c *Canvas) DrawEllipse(x0, y0, x1, y1 float32, col color.Color) {
	if x1 < x0 || y1 < y0 {
		return
	}
	c.ellipse(x0, y0, x1+1, y1+1)
	c.fill(col)
}

func (c *Canvas) ellipse(x0, y0, x1, y1 float32) {
	rx, ry := (x1-x0)/2, (y1-y0)/2
	cx, cy := x0+rx, y0+ry
	kx, ky := rx*kappa, ry*kappa

	c.r.MoveTo(cx+rx, cy)
	c.r.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	c.r.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	c.r.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	c.r.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	c.r.ClosePath()
}

// DrawRect fills the (x0, y0)-(x1, y1) box.
func (c *Canvas) DrawRect(x0, y0, x1, y1 float32, col color.Color) {
	if x1 < x0 || y1 < y0 {
		return
	}
	c.rect(x0, y0, x1+1, y1+1)
	c.fill(col)
}

func (c *Canvas) rect(x0, y0, x1, y1 float32) {
	c.r.MoveTo(x0, y0)
	c.r.LineTo(x1, y0)
	c.r.LineTo(x1, y1)
	c.r.LineTo(x0, y1)
	c.r.ClosePath()
}

// DrawRoundedRect fills the (x0, y0)-(x1, y1) box with corners of the given radius.
func (c *Canvas) DrawRoundedRect(x0, y0, x1, y1, radius float32, col color.Color) {
	if x1 < x0 || y1 < y0 {
		return
	}
	x1, y1 = x1+1, y1+1
	radius = utils.Min(radius, utils.Min(x1-x0, y1-y0)/2)
	if radius <= 0 {
		c.rect(x0, y0, x1, y1)
		c.fill(col)
		return
	}
	k := radius * kappa

	c.r.MoveTo(x0+radius, y0)
	c.r.LineTo(x1-radius, y0)
	c.r.CubeTo(x1-radius+k, y0, x1, y0+radius-k, x1, y0+radius)
	c.r.LineTo(x1, y1-radius)
	c.r.CubeTo(x1, y1-radius+k, x1-radius+k, y1, x1-radius, y1)
	c.r.LineTo(x0+radius, y1)
	c.r.CubeTo(x0+radius-k, y1, x0, y1-radius+k, x0, y1-radius)
	c.r.LineTo(x0, y0+radius)
	c.r.CubeTo(x0, y0+radius-k, x0+radius-k, y0, x0+radius, y0)
	c.r.ClosePath()
	c.fill(col)
}

// DrawLine strokes an axis aligned segment between the (x0, y0) and (x1, y1)
// pixels. The stroke of the given width is centered on the pixel centers.
func (c *Canvas) DrawLine(x0, y0, x1, y1, width float32, col color.Color) {
	half := width / 2
	switch {
	case y0 == y1:
		cy := y0 + 0.5
		c.rect(utils.Min(x0, x1), cy-half, utils.Max(x0, x1)+1, cy+half)
	case x0 == x1:
		cx := x0 + 0.5
		c.rect(cx-half, utils.Min(y0, y1), cx+half, utils.Max(y0, y1)+1)
	default:
		return
	}
	c.fill(col)
}

// drawPlaceholder draws the clock placeholder icon used when no source image is available.
func drawPlaceholder(size int, round bool) *image.NRGBA {
	c := NewCanvas(size)
	s := float32(size)

	// Background shape.
	if round {
		c.DrawEllipse(2, 2, s-2, s-2, PrimaryColor)
	} else {
		margin := float32(size / 16)
		c.DrawRoundedRect(margin, margin, s-margin, s-margin, float32(size/8), PrimaryColor)
	}

	center := float32(size / 2)
	clockSize := size / 3
	half := float32(clockSize / 2)

	// Clock face.
	c.DrawEllipse(center-half, center-half, center+half, center+half, clockFace)

	// Hour hand pointing to 3 o'clock, minute hand pointing to 12 o'clock.
	handLength := clockSize / 3
	c.DrawLine(center, center, center+float32(handLength/2), center,
		float32(utils.Max(1, size/24)), PrimaryColor)
	c.DrawLine(center, center, center, center-float32(handLength),
		float32(utils.Max(1, size/32)), PrimaryColor)

	// Center dot.
	dot := float32(utils.Max(2, size/16) / 2)
	c.DrawEllipse(center-dot, center-dot, center+dot, center+dot, AccentColor)

	return c.Img
}

// circleMask returns a mask which is opaque inside the circle inscribed
// in the size x size square and transparent outside.
func circleMask(size int) *image.NRGBA {
	c := NewCanvas(size)
	s := float32(size)
	c.DrawEllipse(0, 0, s-1, s-1, color.White)
	return c.Img
}

// applyCircleMask cuts the image to the circle inscribed in its bounds by
// scaling its alpha with the mask coverage. The corners become fully transparent.
func applyCircleMask(img *image.NRGBA) *image.NRGBA {
	img = imgToNRGBA(img)
	op := imop.InitOp()
	op.Set(imop.DstIn)

	return op.Draw(nil, circleMask(img.Bounds().Dx()), img).Img
}

// cutToCircle replaces the alpha channel of the image with the circle mask,
// keeping its colors. The inside of the circle is opaque whatever the
// transparency of the image was. The image is modified in place.
func cutToCircle(img *image.NRGBA) *image.NRGBA {
	img = imgToNRGBA(img)
	mask := circleMask(img.Bounds().Dx())

	for y := 0; y < mask.Rect.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+mask.Rect.Dx()*4]
		alpha := mask.Pix[y*mask.Stride : y*mask.Stride+mask.Rect.Dx()*4]
		for i := 3; i < len(src); i += 4 {
			src[i] = alpha[i]
		}
	}
	return img
}
