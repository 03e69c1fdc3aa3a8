package mipmap

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/encoder"
	kwebp "github.com/kolesa-team/go-webp/webp"
	"github.com/registrohoras/mipmap/utils"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DefaultQuality is the lossy WebP quality used for every generated icon.
const DefaultQuality = 90

var (
	// ErrNoSource is returned when no source image has been provided.
	ErrNoSource = errors.New("no source image provided")
	// ErrUnsupportedImage is returned when the source file is not an image.
	ErrUnsupportedImage = errors.New("the source should be an image file")
)

// decodeImg decodes an image file to type *image.NRGBA.
func decodeImg(src string) (*image.NRGBA, error) {
	if src == "" {
		return nil, ErrNoSource
	}
	ctype, err := utils.DetectContentType(src)
	if err != nil {
		return nil, fmt.Errorf("could not open the source image: %w", err)
	}
	if !strings.Contains(ctype, "image") {
		return nil, fmt.Errorf("%s: %w", ctype, ErrUnsupportedImage)
	}

	file, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("could not open the source image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("could not decode the source image: %w", err)
	}
	return imgToNRGBA(img), nil
}

// imgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func imgToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if src, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return src
	}
	return imaging.Clone(img)
}

// Encoder encodes a rendered icon into its on-disk representation.
type Encoder interface {
	Encode(w io.Writer, img image.Image) error
}

// WebPEncoder encodes icons as lossy WebP. The alpha channel is preserved.
type WebPEncoder struct {
	Quality float32
}

// Encode implements the Encoder interface.
func (e WebPEncoder) Encode(w io.Writer, img image.Image) error {
	q := e.Quality
	if q <= 0 {
		q = DefaultQuality
	}
	opts, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, q)
	if err != nil {
		return fmt.Errorf("webp encoder options: %w", err)
	}
	return kwebp.Encode(w, imgToNRGBA(img), opts)
}

// Prober reads the pixel dimensions of an image file.
type Prober interface {
	Probe(path string) (width, height int, err error)
}

// HeaderProber reads the dimensions from the image header only,
// without decoding the pixel data.
type HeaderProber struct{}

// Probe implements the Prober interface.
func (HeaderProber) Probe(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
