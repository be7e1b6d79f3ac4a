package ssd

import (
	"github.com/1broseidon/decor/internal/geom"
	"github.com/1broseidon/decor/internal/scene"
	"github.com/1broseidon/decor/internal/view"
)

var extentParts = []PartType{
	PartCornerTopLeft, PartCornerTopRight, PartCornerBottomRight, PartCornerBottomLeft,
	PartTop, PartRight, PartBottom, PartLeft,
}

// createExtents builds the invisible resize handles ringing the frame. They
// have no focus variants.
func (d *Decoration) createExtents() {
	d.extents.tree = scene.NewTree(d.tree)
	for _, typ := range extentParts {
		p := d.addRect(&d.extents, typ, d.extents.tree, 0, 0, 0, 0, transparent)
		p.Geometry = &geom.Rect{}
	}
}

// extentLayout holds the sizes of the extents ring, in the coordinates of
// the extents tree.
type extentLayout struct {
	outerW, outerH int
	corner         int
	sideW, sideH   int
}

func (l extentLayout) target(typ PartType) geom.Rect {
	E, cs := ExtendedArea, l.corner
	switch typ {
	case PartTop:
		return geom.Rect{X: cs, Y: 0, Width: l.sideW, Height: E}
	case PartBottom:
		return geom.Rect{X: cs, Y: l.outerH - E, Width: l.sideW, Height: E}
	case PartLeft:
		return geom.Rect{X: 0, Y: cs, Width: E, Height: l.sideH}
	case PartRight:
		return geom.Rect{X: l.outerW - E, Y: cs, Width: E, Height: l.sideH}
	case PartCornerTopLeft:
		return geom.Rect{X: 0, Y: 0, Width: cs, Height: cs}
	case PartCornerTopRight:
		return geom.Rect{X: l.outerW - cs, Y: 0, Width: cs, Height: cs}
	case PartCornerBottomRight:
		return geom.Rect{X: l.outerW - cs, Y: l.outerH - cs, Width: cs, Height: cs}
	case PartCornerBottomLeft:
		return geom.Rect{X: 0, Y: l.outerH - cs, Width: cs, Height: cs}
	default:
		return geom.Rect{}
	}
}

// updateExtents lays out the handles and clips them to the usable area of
// the view's output, so they never reach under panels or off screen.
func (d *Decoration) updateExtents() {
	v := d.view
	if v.Maximized() != view.AxisNone || v.Fullscreen() {
		d.extents.tree.SetEnabled(false)
		return
	}
	d.extents.tree.SetEnabled(true)

	bw := d.mgr.theme.BorderWidth
	th := d.titlebarHeight
	E := ExtendedArea

	fullW := v.Geometry().Width + 2*bw
	fullH := v.EffectiveHeight() + th + 2*bw
	l := extentLayout{
		outerW: fullW + 2*E,
		outerH: fullH + 2*E,
		corner: E + bw + ButtonWidth/2,
	}
	l.sideW = l.outerW - 2*l.corner
	l.sideH = l.outerH - 2*l.corner

	d.extents.tree.SetPosition(-(bw + E), -(th + bw + E))

	usable, clip := v.UsableArea()
	baseX, baseY, _ := d.extents.tree.Coords()

	for _, p := range d.extents.parts {
		box := l.target(p.Type)
		if clip {
			visible := box.Translate(baseX, baseY).Intersect(usable)
			if visible.Empty() {
				p.Node.SetEnabled(false)
				continue
			}
			box = visible.Translate(-baseX, -baseY)
		}
		p.Node.SetEnabled(true)
		setRect(p, box.X, box.Y, box.Width, box.Height)
		*p.Geometry = box
	}
}
