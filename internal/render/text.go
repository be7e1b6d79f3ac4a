// Package render measures and rasterizes title text.
package render

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Ellipsis is appended to truncated titles.
const Ellipsis = "…"

// TextRenderer draws single-line text with one font face.
type TextRenderer struct {
	face    font.Face
	height  int
	ascent  int
	closeFn func() error
}

// NewTextRenderer wraps an existing face. The caller keeps ownership of it.
func NewTextRenderer(face font.Face) *TextRenderer {
	m := face.Metrics()
	return &TextRenderer{
		face:   face,
		height: m.Height.Ceil(),
		ascent: m.Ascent.Ceil(),
	}
}

// NewDefaultTextRenderer uses the bundled Go Regular font at size points.
func NewDefaultTextRenderer(size float64) (*TextRenderer, error) {
	return newOpenTypeRenderer(goregular.TTF, size)
}

// LoadTextRenderer parses a TrueType or OpenType file at size points.
func LoadTextRenderer(path string, size float64) (*TextRenderer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	return newOpenTypeRenderer(data, size)
}

func newOpenTypeRenderer(data []byte, size float64) (*TextRenderer, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     96,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	r := NewTextRenderer(face)
	r.closeFn = face.Close
	return r, nil
}

// Close releases a face created by this package.
func (r *TextRenderer) Close() error {
	if r.closeFn == nil {
		return nil
	}
	return r.closeFn()
}

// Height is the line height in pixels.
func (r *TextRenderer) Height() int {
	return r.height
}

// Measure returns the natural pixel width of text.
func (r *TextRenderer) Measure(text string) int {
	return font.MeasureString(r.face, text).Ceil()
}

// Fit returns text itself when it fits in maxWidth, or the longest prefix
// followed by an ellipsis that does. ok is false if not even the ellipsis
// fits.
func (r *TextRenderer) Fit(text string, maxWidth int) (fitted string, width int, truncated, ok bool) {
	if w := r.Measure(text); w <= maxWidth {
		return text, w, false, true
	}
	runes := []rune(text)
	for n := len(runes) - 1; n >= 0; n-- {
		candidate := strings.TrimRightFunc(string(runes[:n]), unicode.IsSpace) + Ellipsis
		if w := r.Measure(candidate); w <= maxWidth {
			return candidate, w, true, true
		}
	}
	return "", 0, true, false
}

// RenderText rasterizes text in c, truncating it to maxWidth. It returns the
// image, its width and whether the text had to be truncated. Empty or
// unfittable text yields a nil image.
func (r *TextRenderer) RenderText(text string, maxWidth int, c color.Color) (image.Image, int, bool) {
	if text == "" {
		return nil, 0, false
	}
	if maxWidth <= 0 {
		return nil, 0, true
	}
	fitted, width, truncated, ok := r.Fit(text, maxWidth)
	if !ok || width == 0 {
		return nil, 0, truncated
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, r.height))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: r.face,
		Dot:  fixed.P(0, r.ascent),
	}
	d.DrawString(fitted)
	return img, width, truncated
}
