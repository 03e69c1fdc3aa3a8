package mipmap

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDraw_Placeholder(t *testing.T) {
	for _, d := range Densities() {
		t.Run(d.Name, func(t *testing.T) {
			assert := assert.New(t)
			s := d.Size

			std := drawPlaceholder(s, false)
			assert.Equal(s, std.Bounds().Dx())
			assert.Equal(s, std.Bounds().Dy())

			// The rounded rectangle leaves a transparent margin.
			assert.Equal(uint8(0), std.NRGBAAt(0, 0).A)
			assert.Equal(uint8(0), std.NRGBAAt(s-1, s-1).A)

			// Inside the margin, away from the clock, the background is the primary color.
			assert.Equal(PrimaryColor, std.NRGBAAt(s/4, s/2))

			// The accent dot is drawn last, at the center.
			assert.Equal(AccentColor, std.NRGBAAt(s/2, s/2))

			// The clock face is white, below the center.
			assert.Equal(color.NRGBA{R: 255, G: 255, B: 255, A: 255}, std.NRGBAAt(s/2, s/2+s/8))

			round := drawPlaceholder(s, true)
			assert.Equal(uint8(0), round.NRGBAAt(0, 0).A)
			assert.Equal(PrimaryColor, round.NRGBAAt(s/2, 4))
			assert.Equal(AccentColor, round.NRGBAAt(s/2, s/2))
		})
	}
}

func TestDraw_CircleMask(t *testing.T) {
	assert := assert.New(t)

	const size = 48
	mask := circleMask(size)

	for _, p := range [][2]int{{0, 0}, {size - 1, 0}, {0, size - 1}, {size - 1, size - 1}} {
		assert.Equal(uint8(0), mask.NRGBAAt(p[0], p[1]).A)
	}
	assert.Equal(uint8(255), mask.NRGBAAt(size/2, size/2).A)
	assert.Equal(uint8(255), mask.NRGBAAt(size/2, 1).A)
}

func TestDraw_Line(t *testing.T) {
	assert := assert.New(t)

	c := NewCanvas(10)
	c.DrawLine(2, 5, 8, 5, 3, PrimaryColor)

	assert.Equal(PrimaryColor, c.Img.NRGBAAt(4, 4))
	assert.Equal(PrimaryColor, c.Img.NRGBAAt(4, 5))
	assert.Equal(uint8(0), c.Img.NRGBAAt(4, 7).A)
	assert.Equal(uint8(0), c.Img.NRGBAAt(9, 5).A)

	// Degenerate shapes are ignored.
	c = NewCanvas(10)
	c.DrawEllipse(5, 5, 4, 8, PrimaryColor)
	c.DrawRect(6, 2, 3, 4, PrimaryColor)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			assert.Equal(uint8(0), c.Img.NRGBAAt(x, y).A)
		}
	}
}
