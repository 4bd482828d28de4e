package compose

import (
	"fmt"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/fivemoreminix/qoverlay/ui/overlay"
)

// Format is an output format for Render.
type Format uint8

const (
	FormatPDF Format = iota
	FormatPNG
)

func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatPNG:
		return "png"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the output format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF, nil
	case ".png":
		return FormatPNG, nil
	default:
		return 0, fmt.Errorf("unsupported output format %q (use .pdf or .png)", filepath.Ext(path))
	}
}

// Padding around overlay text inside its background, in millimeters.
const backgroundPadding = 1.5

// Render draws the base image and every overlay and writes the result to w.
func (c *Composition) Render(w io.Writer, format Format) error {
	cv, err := c.draw()
	if err != nil {
		return err
	}

	switch format {
	case FormatPDF:
		writer := pdf.New(w, c.opts.PageWidth, c.opts.PageHeight, nil)
		cv.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
	case FormatPNG:
		img := rasterizer.Draw(cv, canvas.DPMM(c.opts.DPMM), canvas.DefaultColorSpace)
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("write png: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format %v", format)
	}
	return nil
}

func (c *Composition) draw() (*canvas.Canvas, error) {
	width, height := c.Size()
	cv := canvas.New(width, height)
	ctx := canvas.NewContext(cv)
	ctx.SetCoordSystem(canvas.CartesianIV) // origin in the top-left, like the surface

	if img := c.opts.BaseImage; img != nil && img.Bounds().Dx() > 0 {
		dpmm := float64(img.Bounds().Dx()) / width
		ctx.DrawImage(0, 0, img, canvas.DPMM(dpmm))
	}

	textColor, err := parseColor(c.opts.TextColor)
	if err != nil {
		return nil, fmt.Errorf("text color: %w", err)
	}
	family := canvas.NewFontFamily("go")
	if err := family.LoadFont(goregular.TTF, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	face := family.Face(c.opts.FontSize, textColor, canvas.FontRegular, canvas.FontNormal)

	for _, spec := range c.Specs() {
		if err := drawOverlay(ctx, face, spec, width, height); err != nil {
			return nil, err
		}
	}
	return cv, nil
}

// drawOverlay centers the overlay text on its position, with the background
// rectangle behind it when the overlay has one.
func drawOverlay(ctx *canvas.Context, face *canvas.FontFace, spec overlay.Spec, width, height float64) error {
	cx, cy := spec.X*width, spec.Y*height
	textWidth := face.TextWidth(spec.Text)
	metrics := face.Metrics()
	textHeight := metrics.Ascent + metrics.Descent
	top := cy - textHeight/2

	if bg, ok := spec.BackgroundColor(); ok {
		fill, err := parseColor("#" + bg)
		if err != nil {
			return fmt.Errorf("overlay %d background: %w", spec.Index, err)
		}
		ctx.SetFillColor(fill)
		ctx.SetStrokeColor(color.RGBA{0, 0, 0, 0})
		ctx.DrawPath(cx-textWidth/2-backgroundPadding, top-backgroundPadding,
			canvas.Rectangle(textWidth+2*backgroundPadding, textHeight+2*backgroundPadding))
	}

	ctx.DrawText(cx, top+metrics.Ascent, canvas.NewTextLine(face, spec.Text, canvas.Center))
	return nil
}

func parseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return c, nil
}
