package mipmap

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/registrohoras/mipmap/utils"
)

// Generator writes the launcher icons of every density bucket.
type Generator struct {
	// Encoder encodes the rendered icons. WebPEncoder at DefaultQuality is used when nil.
	Encoder Encoder
	// Logger receives the diagnostic messages. slog.Default is used when nil.
	Logger *slog.Logger
	// NoFallback disables the placeholder icons when the source image cannot be read.
	NoFallback bool
	// DownloadTimeout bounds the download of a source image given as URL.
	DownloadTimeout time.Duration
	// OnWrite, when set, is called after each icon has been written.
	OnWrite func(File)
}

// File describes a written icon.
type File struct {
	Artifact Artifact
	Path     string
	Bytes    int64
}

// Result holds the outcome of a generation run.
type Result struct {
	Strategy string
	Success  bool
	Files    []File
	// Err holds the reason why the source image was rejected when nothing was generated.
	Err error
}

// NewGenerator returns a Generator encoding lossy WebP icons at the given quality.
func NewGenerator(quality float32) *Generator {
	return &Generator{
		Encoder:         WebPEncoder{Quality: quality},
		DownloadTimeout: 30 * time.Second,
	}
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}

func (g *Generator) encoder() Encoder {
	if g.Encoder != nil {
		return g.Encoder
	}
	return WebPEncoder{Quality: DefaultQuality}
}

// Generate renders the icons from the source image into outputDir.
// The source is a local file or an http(s) URL; an empty source selects the
// placeholder icons. When the source cannot be read the placeholder icons are
// generated instead, unless NoFallback is set: in that case nothing is written
// and the result is not successful. The returned error reports a directory,
// encoding or write failure, which aborts the run.
func (g *Generator) Generate(source, outputDir string) (*Result, error) {
	strategy, err := g.selectStrategy(source)
	if err != nil {
		return &Result{Success: false, Err: err}, nil
	}
	return g.Run(strategy, outputDir)
}

// Run writes the icons of every density bucket rendered by the strategy.
func (g *Generator) Run(strategy Strategy, outputDir string) (*Result, error) {
	res := &Result{Strategy: strategy.Name()}

	for _, d := range Densities() {
		dir := filepath.Join(outputDir, d.Dir())
		if err := os.MkdirAll(dir, 0755); err != nil {
			return res, fmt.Errorf("unable to create the %s directory: %w", dir, err)
		}

		for _, k := range Kinds() {
			art := Artifact{Density: d, Kind: k}
			icon := Render(strategy, art)

			path := art.Path(outputDir)
			n, err := g.write(icon, path)
			if err != nil {
				return res, err
			}
			f := File{Artifact: art, Path: path, Bytes: n}
			res.Files = append(res.Files, f)

			g.logger().Debug("generated icon", "path", path, "size", d.Size, "bytes", n)
			if g.OnWrite != nil {
				g.OnWrite(f)
			}
		}
	}
	res.Success = true

	return res, nil
}

// Render returns the final image of the artifact.
func Render(strategy Strategy, art Artifact) *image.NRGBA {
	return strategy.Render(art.Density.Size, art.Kind)
}

// selectStrategy decodes the source image once. It returns the synthetic
// strategy when there is no usable source and falling back is allowed.
func (g *Generator) selectStrategy(source string) (Strategy, error) {
	log := g.logger()
	if source == "" {
		log.Info("no source image provided, generating default icons")
		return SyntheticStrategy{}, nil
	}

	img, err := g.loadSource(source)
	if err != nil {
		log.Warn("error opening source image", "source", source, "error", err)
		if g.NoFallback {
			return nil, err
		}
		log.Info("falling back to default icons")
		return SyntheticStrategy{}, nil
	}
	log.Info("using source image", "source", source,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	return NewSourceStrategy(img), nil
}

func (g *Generator) loadSource(source string) (*image.NRGBA, error) {
	if !utils.IsValidUrl(source) {
		return decodeImg(source)
	}

	g.logger().Debug("downloading source image", "url", source)
	tmp, err := utils.DownloadImage(source, g.DownloadTimeout)
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	return decodeImg(tmp.Name())
}

// write encodes the icon into path and returns the number of bytes written.
// The destination file is removed in case of an error.
func (g *Generator) write(icon image.Image, path string) (int64, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return 0, fmt.Errorf("unable to create the destination file: %w", err)
	}

	if err := g.encoder().Encode(f, icon); err != nil {
		f.Close()
		os.Remove(path)
		return 0, fmt.Errorf("unable to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return 0, fmt.Errorf("unable to write %s: %w", path, err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}
