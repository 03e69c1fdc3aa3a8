package mipmap

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngEncoder keeps the pixels untouched, which makes the generated files comparable.
type pngEncoder struct{}

func (pngEncoder) Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func newTestGenerator(enc Encoder) *Generator {
	g := NewGenerator(DefaultQuality)
	g.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	if enc != nil {
		g.Encoder = enc
	}
	return g
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func decodeFile(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, _, err := image.Decode(f)
	require.NoError(t, err)
	return img
}

func TestGenerator_SyntheticWebP(t *testing.T) {
	out := t.TempDir()
	g := newTestGenerator(nil)

	res, err := g.Generate("", out)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "synthetic", res.Strategy)
	require.Len(t, res.Files, 10)

	for _, art := range Artifacts() {
		path := art.Path(out)
		img := decodeFile(t, path)
		size := art.Density.Size
		assert.Equal(t, image.Rect(0, 0, size, size), img.Bounds(), path)

		if art.Kind == Round {
			n := size - 1
			for _, p := range []image.Point{{0, 0}, {n, 0}, {0, n}, {n, n}} {
				_, _, _, a := img.At(p.X, p.Y).RGBA()
				assert.Zero(t, a, "%s corner %v", path, p)
			}
			_, _, _, a := img.At(size/2, size/2).RGBA()
			assert.Equal(t, uint32(0xffff), a, "%s center", path)
		}
	}
}

func TestGenerator_FromSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "logo.png")
	writePNG(t, src, makeSourceImage(200, 200))

	out := filepath.Join(dir, "res")
	res, err := newTestGenerator(pngEncoder{}).Generate(src, out)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "source", res.Strategy)

	base := decodeFile(t, src)
	strategy := NewSourceStrategy(base)
	for _, f := range res.Files {
		got := imgToNRGBA(decodeFile(t, f.Path))
		want := Render(strategy, f.Artifact)
		assert.Equal(t, want.Pix, got.Pix, f.Path)

		fi, err := os.Stat(f.Path)
		require.NoError(t, err)
		assert.Equal(t, fi.Size(), f.Bytes)
	}
}

func TestGenerator_Fallback(t *testing.T) {
	dir := t.TempDir()
	notImage := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(notImage, []byte("not an image"), 0644))

	sources := map[string]string{
		"missing":   filepath.Join(dir, "missing.png"),
		"not-image": notImage,
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			out := t.TempDir()
			res, err := newTestGenerator(pngEncoder{}).Generate(src, out)
			require.NoError(t, err)
			assert.True(t, res.Success)
			assert.Equal(t, "synthetic", res.Strategy)
			assert.Len(t, res.Files, 10)
		})
	}
}

func TestGenerator_NoFallback(t *testing.T) {
	out := t.TempDir()
	g := newTestGenerator(pngEncoder{})
	g.NoFallback = true

	res, err := g.Generate(filepath.Join(out, "missing.png"), out)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Empty(t, res.Files)
	assert.ErrorIs(t, res.Err, os.ErrNotExist)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing should be written")
}

func TestGenerator_SourceURL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, makeSourceImage(64, 64)))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/logo.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(buf.Bytes())
	}))
	defer srv.Close()

	res, err := newTestGenerator(pngEncoder{}).Generate(srv.URL+"/logo.png", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "source", res.Strategy)

	res, err = newTestGenerator(pngEncoder{}).Generate(srv.URL+"/missing.png", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "synthetic", res.Strategy)
}

func TestGenerator_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "res")
	// A regular file where the output directory is expected.
	require.NoError(t, os.WriteFile(out, nil, 0644))

	res, err := newTestGenerator(pngEncoder{}).Generate("", out)
	assert.Error(t, err)
	assert.False(t, res.Success)
}

func TestGenerator_Idempotent(t *testing.T) {
	out := t.TempDir()
	g := newTestGenerator(nil)

	_, err := g.Generate("", out)
	require.NoError(t, err)
	first := make(map[string][]byte)
	for _, art := range Artifacts() {
		b, err := os.ReadFile(art.Path(out))
		require.NoError(t, err)
		first[art.Path(out)] = b
	}

	_, err = g.Generate("", out)
	require.NoError(t, err)
	for path, b := range first {
		again, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, b, again, path)
	}
}
