package imop

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComp_Basic(t *testing.T) {
	assert := assert.New(t)

	op := InitOp()
	assert.Equal(SrcOver, op.Get())

	op.Set(DstIn)
	assert.Equal(DstIn, op.Get())
	op.Set("unsupported_composite_operation")
	assert.Equal(DstIn, op.Get())
}

func TestComp_Ops(t *testing.T) {
	assert := assert.New(t)
	op := InitOp()

	transparent := color.NRGBA{R: 0, G: 0, B: 0, A: 0}
	cyan := color.NRGBA{R: 33, G: 150, B: 243, A: 255}
	magenta := color.NRGBA{R: 233, G: 30, B: 99, A: 255}

	rect := image.Rect(0, 0, 10, 10)
	bmp := NewBitmap(rect)
	source := image.NewNRGBA(rect)
	backdrop := image.NewNRGBA(rect)

	draw.Draw(source, image.Rect(0, 4, 6, 10), &image.Uniform{cyan}, image.Point{}, draw.Src)
	draw.Draw(backdrop, image.Rect(4, 0, 10, 6), &image.Uniform{magenta}, image.Point{}, draw.Src)

	// Pick three representative points/pixels from the generated image output.
	// Depending on the applied composition operation the colors of the
	// selected pixels should be the source color, the destination color or transparent.
	tests := []struct {
		op                           string
		topRight, bottomLeft, center color.NRGBA
	}{
		{SrcOver, magenta, cyan, cyan},
		{DstIn, transparent, transparent, magenta},
	}
	for _, tt := range tests {
		op.Set(tt.op)
		op.Draw(bmp, source, backdrop)

		assert.Equal(tt.topRight, bmp.Img.NRGBAAt(9, 0), tt.op)
		assert.Equal(tt.bottomLeft, bmp.Img.NRGBAAt(0, 9), tt.op)
		assert.Equal(tt.center, bmp.Img.NRGBAAt(5, 5), tt.op)
	}
}

func TestComp_DstInMask(t *testing.T) {
	assert := assert.New(t)
	op := InitOp()
	op.Set(DstIn)

	rect := image.Rect(0, 0, 4, 4)
	icon := image.NewNRGBA(rect)
	mask := image.NewNRGBA(rect)

	blue := color.NRGBA{R: 33, G: 150, B: 243, A: 255}
	draw.Draw(icon, rect, &image.Uniform{blue}, image.Point{}, draw.Src)
	mask.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	mask.SetNRGBA(2, 2, color.NRGBA{R: 255, G: 255, B: 255, A: 128})

	bmp := op.Draw(nil, mask, icon)

	// The backdrop color is kept, only its alpha is scaled by the mask coverage.
	assert.Equal(blue, bmp.Img.NRGBAAt(1, 1))
	assert.Equal(color.NRGBA{R: 33, G: 150, B: 243, A: 128}, bmp.Img.NRGBAAt(2, 2))
	assert.Equal(color.NRGBA{}, bmp.Img.NRGBAAt(0, 0))
	assert.Equal(color.NRGBA{}, bmp.Img.NRGBAAt(3, 3))
}
