// Package imop implements the Porter-Duff composition operations
// used for mixing a graphic element with its backdrop.
// Porter and Duff presented in their paper 12 different composition operation,
// but the image/draw core package implements only the source-over-destination and source.
// This package adds the destination-in operation next to source-over.
//
// It is mainly used to cut the round launcher icons out of their square
// rendering: the circular mask is the source and the icon is the backdrop
// of a DstIn composition.
package imop

import (
	"image"
	"image/color"
	"math"

	"github.com/registrohoras/mipmap/utils"
)

const (
	SrcOver = "src_over"
	DstIn   = "dst_in"
)

// Bitmap holds the result of a composition.
type Bitmap struct {
	Img *image.NRGBA
}

// Composite holds the currently active composition operation.
type Composite struct {
	current string
	ops     []string
}

// NewBitmap initializes a new, fully transparent Bitmap.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// InitOp initializes a new Composite using SrcOver as the default operation.
func InitOp() *Composite {
	return &Composite{
		current: SrcOver,
		ops:     []string{SrcOver, DstIn},
	}
}

// Set activates one of the supported composition operations.
// Unsupported operations are ignored.
func (op *Composite) Set(cop string) {
	if utils.Contains(op.ops, cop) {
		op.current = cop
	}
}

// Get returns the currently active composition operation.
func (op *Composite) Get() string {
	return op.current
}

// Draw composes the source over the backdrop (dst) using the active
// operation and writes the result into the bitmap. The bitmap is
// allocated when nil. Both images are expected to share the same bounds.
func (op *Composite) Draw(bitmap *Bitmap, src, dst *image.NRGBA) *Bitmap {
	if bitmap == nil {
		bitmap = NewBitmap(src.Bounds())
	}
	b := src.Bounds()

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			s := src.NRGBAAt(x, y)
			d := dst.NRGBAAt(x, y)

			as := float64(s.A) / 255
			ab := float64(d.A) / 255

			// Fs and Fb are the Porter-Duff fractions of the source and backdrop.
			var fs, fb float64
			switch op.current {
			case SrcOver:
				fs, fb = 1, 1-as
			case DstIn:
				fs, fb = 0, as
			}

			// Premultiplied result of the composition.
			an := as*fs + ab*fb
			if an <= 0 {
				bitmap.Img.SetNRGBA(x, y, color.NRGBA{})
				continue
			}
			rn := as*fs*norm(s.R) + ab*fb*norm(d.R)
			gn := as*fs*norm(s.G) + ab*fb*norm(d.G)
			bn := as*fs*norm(s.B) + ab*fb*norm(d.B)

			bitmap.Img.SetNRGBA(x, y, color.NRGBA{
				R: denorm(rn / an),
				G: denorm(gn / an),
				B: denorm(bn / an),
				A: denorm(an),
			})
		}
	}
	return bitmap
}

func norm(c uint8) float64 {
	return float64(c) / 255
}

func denorm(v float64) uint8 {
	return uint8(math.Round(utils.Min(utils.Max(v, 0), 1) * 255))
}
