package compose

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivemoreminix/qoverlay/ui/overlay"
	"github.com/fivemoreminix/qoverlay/ui/pointer"
)

type nopPointers struct{}

func (nopPointers) Subscribe(pointer.Listener) *pointer.Subscription { return nil }

func TestCompositionDefaults(t *testing.T) {
	c := New(Options{})

	w, h := c.Size()
	assert.Equal(t, 210.0, w)
	assert.Equal(t, 297.0, h)
}

func TestCompositionFollowsImageAspect(t *testing.T) {
	c := New(Options{BaseImage: image.NewRGBA(image.Rect(0, 0, 400, 200)), PageWidth: 100})

	w, h := c.Size()
	assert.Equal(t, 100.0, w)
	assert.Equal(t, 50.0, h)
}

func TestCompositionUpdateKeepsLatestPerIndex(t *testing.T) {
	c := New(Options{})

	c.Update(overlay.Spec{Index: 2, Text: "b"})
	c.Update(overlay.Spec{Index: 0, Text: "a"})
	c.Update(overlay.Spec{Index: 2, Text: "b2", X: 0.5})

	specs := c.Specs()
	require.Len(t, specs, 2)
	assert.Equal(t, 0, specs[0].Index)
	assert.Equal(t, "b2", specs[1].Text)

	c.Remove(0)
	_, ok := c.Get(0)
	assert.False(t, ok)
	assert.Len(t, c.Specs(), 1)
}

func TestCompositionReceivesEditorUpdates(t *testing.T) {
	c := New(Options{})
	e := overlay.NewEditor(3, nopPointers{}, nil, c.Update)
	e.Mount()
	e.SetText("hello")

	spec, ok := c.Get(3)
	require.True(t, ok)
	assert.Equal(t, "hello", spec.Text)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("out/Result.PNG")
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, f)

	f, err = FormatFromPath("result.pdf")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	_, err = FormatFromPath("result.svg")
	assert.Error(t, err)
}

func TestRenderPDF(t *testing.T) {
	c := New(Options{PageWidth: 100, PageHeight: 60})
	c.Update(overlay.Spec{Index: 0, Text: "Hello", X: 0.5, Y: 0.5, Background: "1A2B3C", HasBackground: true})
	c.Update(overlay.Spec{Index: 1, Text: " ", X: 1, Y: 0})

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf, FormatPDF))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestRenderPNG(t *testing.T) {
	base := image.NewRGBA(image.Rect(0, 0, 80, 40))
	for x := 0; x < 80; x++ {
		for y := 0; y < 40; y++ {
			base.Set(x, y, color.RGBA{200, 10, 10, 255})
		}
	}
	c := New(Options{BaseImage: base, PageWidth: 40, DPMM: 2})
	c.Update(overlay.Spec{Index: 0, Text: "Hi", X: 0.25, Y: 0.5})

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf, FormatPNG))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.InDelta(t, 80, img.Bounds().Dx(), 1)
	assert.InDelta(t, 40, img.Bounds().Dy(), 1)
}

func TestRenderRejectsInvalidBackground(t *testing.T) {
	c := New(Options{})
	c.Update(overlay.Spec{Index: 4, Text: "x", Background: "zzz", HasBackground: true})

	err := c.Render(&bytes.Buffer{}, FormatPDF)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlay 4 background")
}

func TestWriteManifest(t *testing.T) {
	c := New(Options{BaseImagePath: "photo.png", PageWidth: 100, PageHeight: 50})
	c.Update(overlay.Spec{Index: 1, Text: "caption", X: 0.25, Y: 1, Background: "FFFFFF", HasBackground: true})
	c.Update(overlay.Spec{Index: 0, Text: " "})

	var buf bytes.Buffer
	require.NoError(t, c.WriteManifest(&buf))

	var got manifest
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "photo.png", got.Image)
	require.Len(t, got.Overlays, 2)
	assert.Equal(t, manifestOverlay{Index: 0, Text: " "}, got.Overlays[0])
	assert.Equal(t, manifestOverlay{Index: 1, Text: "caption", X: 0.25, Y: 1, Background: "FFFFFF"}, got.Overlays[1])
}

func TestLoadImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "base.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 3, 2))))
	require.NoError(t, f.Close())

	img, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())

	_, err = LoadImage(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}
