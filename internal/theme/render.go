package theme

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

func toRGBA(c color.NRGBA) gg.RGBA {
	return gg.RGBA2(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
}

func transparent(c color.NRGBA) gg.RGBA {
	out := toRGBA(c)
	out.A = 0
	return out
}

func finish(dc *gg.Context, what string) (image.Image, error) {
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	img := dc.Image()
	if err := dc.Close(); err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	return img, nil
}

// renderShadowCorner draws a quarter radial gradient fading out from the
// top-left corner of a radius x radius image.
func renderShadowCorner(radius int, c color.NRGBA) (image.Image, error) {
	dc := gg.NewContext(radius, radius)
	r := float64(radius)
	dc.SetFillBrush(gg.NewRadialGradientBrush(0, 0, 0, r).
		AddColorStop(0, toRGBA(c)).
		AddColorStop(1, transparent(c)))
	dc.DrawRectangle(0, 0, r, r)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("shadow corner: %w", err)
	}
	return finish(dc, "shadow corner")
}

// renderShadowEdge draws a radius x 1 gradient fading out to the right.
func renderShadowEdge(radius int, c color.NRGBA) (image.Image, error) {
	dc := gg.NewContext(radius, 1)
	r := float64(radius)
	dc.SetFillBrush(gg.NewLinearGradientBrush(0, 0, r, 0).
		AddColorStop(0, toRGBA(c)).
		AddColorStop(1, transparent(c)))
	dc.DrawRectangle(0, 0, r, 1)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("shadow edge: %w", err)
	}
	return finish(dc, "shadow edge")
}

// renderCorners draws the rounded top-left and top-right titlebar corners,
// each width x height with the border along the outer sides. The rounded
// rectangles are oversized so only the outer corner is visible.
func renderCorners(width, height, border, radius int, borderColor, bg color.NRGBA) (image.Image, image.Image, error) {
	w, h := float64(width), float64(height)
	b, r := float64(border), float64(radius)
	inner := max(r-b, 0)

	draw := func(outerX, innerX float64) (image.Image, error) {
		dc := gg.NewContext(width, height)
		dc.SetColor(borderColor)
		roundedRect(dc, outerX, 0, w+r, h+r, r)
		if err := dc.Fill(); err != nil {
			return nil, err
		}
		dc.SetColor(bg)
		roundedRect(dc, innerX, b, w-b+r, h-b+r, inner)
		if err := dc.Fill(); err != nil {
			return nil, err
		}
		return finish(dc, "corner")
	}

	left, err := draw(0, b)
	if err != nil {
		return nil, nil, fmt.Errorf("top-left corner: %w", err)
	}
	right, err := draw(-r, -r)
	if err != nil {
		return nil, nil, fmt.Errorf("top-right corner: %w", err)
	}
	return left, right, nil
}

func roundedRect(dc *gg.Context, x, y, w, h, r float64) {
	if r <= 0 {
		dc.DrawRectangle(x, y, w, h)
		return
	}
	dc.DrawRoundedRectangle(x, y, w, h, r)
}

// renderIcon draws a size x size button glyph.
func renderIcon(kind ButtonKind, size int, c color.NRGBA) (image.Image, error) {
	dc := gg.NewContext(size, size)
	s := float64(size)
	lw := max(1, s/6)
	dc.SetColor(c)
	dc.SetLineWidth(lw)

	switch kind {
	case ButtonClose:
		dc.DrawLine(lw, lw, s-lw, s-lw)
		dc.DrawLine(s-lw, lw, lw, s-lw)
	case ButtonMaximize:
		dc.DrawRectangle(lw/2, lw/2, s-lw, s-lw)
	case ButtonIconify:
		dc.DrawLine(0, s-lw/2, s, s-lw/2)
	case ButtonWindowMenu:
		for i := 1; i <= 3; i++ {
			y := s * float64(i) / 4
			dc.DrawLine(0, y, s, y)
		}
	default:
		return nil, fmt.Errorf("unknown button kind %d", kind)
	}
	if err := dc.Stroke(); err != nil {
		return nil, err
	}
	return finish(dc, "icon")
}
