package ssd

import (
	"image/color"

	"github.com/1broseidon/decor/internal/geom"
	"github.com/1broseidon/decor/internal/scene"
	"github.com/1broseidon/decor/internal/theme"
)

var (
	borderCorners = []PartType{PartCornerTopLeft, PartCornerTopRight, PartCornerBottomRight, PartCornerBottomLeft}
	borderEdges   = []PartType{PartTop, PartRight, PartBottom, PartLeft}
)

func (d *Decoration) createBorder() {
	t := d.mgr.theme
	d.border.tree = scene.NewTree(d.tree)

	for _, s := range theme.States {
		style := t.Style(s)
		sub := d.border.state(s)
		sub.tree = scene.NewTree(d.border.tree)

		for _, typ := range borderCorners {
			p := d.addRect(sub, typ, sub.tree, 0, 0, 0, 0, style.BorderColor)
			p.Geometry = &geom.Rect{}
		}
		for _, typ := range borderEdges {
			d.addRect(sub, typ, sub.tree, 0, 0, 0, 0, style.BorderColor)
		}
	}
}

// updateBorder lays out the frame around content and titlebar. Corners are
// painted bw squares but grab a larger square reaching into the edges.
func (d *Decoration) updateBorder() {
	if maximizedBoth(d.view) {
		d.border.tree.SetEnabled(false)
		return
	}
	d.border.tree.SetEnabled(true)

	t := d.mgr.theme
	bw := t.BorderWidth
	th := d.titlebarHeight
	width := d.view.Geometry().Width
	height := d.view.EffectiveHeight()

	fullW := width + 2*bw
	fullH := height + th + 2*bw
	grab := bw + ButtonWidth/2

	// The titlebar corner textures paint the top corners and the top border
	// above the corner buttons.
	topInset := 0
	if th > 0 {
		topInset = ButtonWidth
	}

	d.border.tree.SetPosition(-bw, -(th + bw))
	for _, s := range theme.States {
		var topCorner color.Color = t.Style(s).BorderColor
		if th > 0 {
			topCorner = transparent
		}
		for _, p := range d.border.state(s).parts {
			switch p.Type {
			case PartCornerTopLeft:
				setRect(p, 0, 0, bw, bw)
				*p.Geometry = geom.Rect{X: 0, Y: 0, Width: grab, Height: grab}
				p.Node.AsRect().SetColor(topCorner)
			case PartCornerTopRight:
				setRect(p, fullW-bw, 0, bw, bw)
				*p.Geometry = geom.Rect{X: fullW - grab, Y: 0, Width: grab, Height: grab}
				p.Node.AsRect().SetColor(topCorner)
			case PartCornerBottomRight:
				setRect(p, fullW-bw, fullH-bw, bw, bw)
				*p.Geometry = geom.Rect{X: fullW - grab, Y: fullH - grab, Width: grab, Height: grab}
			case PartCornerBottomLeft:
				setRect(p, 0, fullH-bw, bw, bw)
				*p.Geometry = geom.Rect{X: 0, Y: fullH - grab, Width: grab, Height: grab}
			case PartTop:
				setRect(p, bw+topInset, 0, width-2*topInset, bw)
			case PartRight:
				setRect(p, fullW-bw, bw+th, bw, height)
			case PartBottom:
				setRect(p, bw, fullH-bw, width, bw)
			case PartLeft:
				setRect(p, 0, bw+th, bw, height)
			}
		}
	}
}
