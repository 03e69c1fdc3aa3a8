package mipmap

import (
	"image"

	"github.com/disintegration/imaging"
)

// Strategy renders the icon of a given edge size. The round kind is returned
// already cut to the circle inscribed in the icon square.
// A single strategy is selected per generation run and used for every density.
type Strategy interface {
	Name() string
	Render(size int, kind Kind) *image.NRGBA
}

var (
	_ Strategy = (*SourceStrategy)(nil)
	_ Strategy = SyntheticStrategy{}
)

// SourceStrategy resamples one shared base image with a Lanczos filter.
type SourceStrategy struct {
	base *image.NRGBA
}

// NewSourceStrategy returns a strategy resampling img.
func NewSourceStrategy(img image.Image) *SourceStrategy {
	return &SourceStrategy{base: imgToNRGBA(img)}
}

// Name implements the Strategy interface.
func (s *SourceStrategy) Name() string { return "source" }

// Render implements the Strategy interface. Both kinds get the same resampling;
// the alpha channel of the round kind is replaced by the circle mask.
func (s *SourceStrategy) Render(size int, kind Kind) *image.NRGBA {
	icon := imaging.Resize(s.base, size, size, imaging.Lanczos)
	if kind == Round {
		icon = cutToCircle(icon)
	}
	return icon
}

// SyntheticStrategy draws the placeholder clock icon.
type SyntheticStrategy struct{}

// Name implements the Strategy interface.
func (SyntheticStrategy) Name() string { return "synthetic" }

// Render implements the Strategy interface. The round kind is drawn on a
// circular background and masked, the standard kind on a rounded rectangle.
func (SyntheticStrategy) Render(size int, kind Kind) *image.NRGBA {
	if kind == Round {
		return applyCircleMask(drawPlaceholder(size, true))
	}
	return drawPlaceholder(size, false)
}
