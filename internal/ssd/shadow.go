package ssd

import (
	"github.com/1broseidon/decor/internal/scene"
	"github.com/1broseidon/decor/internal/theme"
)

// Shadow textures are drawn for the bottom-right corner and the right edge.
// The other sides are clockwise rotations of them.
var shadowParts = []struct {
	typ       PartType
	edge      bool
	transform scene.Transform
}{
	{PartCornerBottomRight, false, scene.TransformNormal},
	{PartCornerBottomLeft, false, scene.Transform90},
	{PartCornerTopLeft, false, scene.Transform180},
	{PartCornerTopRight, false, scene.Transform270},
	{PartRight, true, scene.TransformNormal},
	{PartBottom, true, scene.Transform90},
	{PartLeft, true, scene.Transform180},
	{PartTop, true, scene.Transform270},
}

func neverAcceptsInput(*scene.Buffer, float64, float64) bool {
	return false
}

func (d *Decoration) createShadow() {
	t := d.mgr.theme
	d.shadow.tree = scene.NewTree(d.tree)
	d.shadow.tree.LowerToBottom()

	for _, s := range theme.States {
		style := t.Style(s)
		sub := d.shadow.state(s)
		sub.tree = scene.NewTree(d.shadow.tree)

		for _, sp := range shadowParts {
			tex := style.ShadowCorner
			if sp.edge {
				tex = style.ShadowEdge
			}
			p := d.addBuffer(sub, sp.typ, sub.tree, tex, 0, 0)
			p.Buffer.SetTransform(sp.transform)
			p.Buffer.PointAcceptsInput = neverAcceptsInput
		}
	}
	d.shadow.setActive(d.active)

	maximized := maximizedBoth(d.view)
	d.shadow.tree.SetEnabled(!maximized)
	if !maximized {
		d.layoutShadow()
	}
}

func (d *Decoration) updateShadow() {
	if d.shadow.tree == nil {
		return
	}
	maximized := maximizedBoth(d.view)
	if d.shadow.tree.Enabled() == maximized {
		d.shadow.tree.SetEnabled(!maximized)
	}
	if !maximized {
		d.layoutShadow()
	}
}

// layoutShadow places the shadow around content and titlebar. Each part is
// pulled inwards by the state's inset.
func (d *Decoration) layoutShadow() {
	width := d.view.Geometry().Width
	th := d.titlebarHeight
	height := d.view.EffectiveHeight() + th

	for _, s := range theme.States {
		style := d.mgr.theme.Style(s)
		radius, inset := style.ShadowRadius, style.ShadowInset

		for _, p := range d.shadow.state(s).parts {
			switch p.Type {
			case PartCornerBottomRight:
				p.Node.SetPosition(width-inset, -th+height-inset)
			case PartCornerBottomLeft:
				p.Node.SetPosition(-radius+inset, -th+height-inset)
			case PartCornerTopLeft:
				p.Node.SetPosition(-radius+inset, -th-radius+inset)
			case PartCornerTopRight:
				p.Node.SetPosition(width-inset, -th-radius+inset)
			case PartRight:
				p.Node.SetPosition(width-inset, -th+inset)
				p.Buffer.SetDestSize(radius, max(height-2*inset, 0))
			case PartBottom:
				p.Node.SetPosition(inset, -th+height-inset)
				p.Buffer.SetDestSize(max(width-2*inset, 0), radius)
			case PartLeft:
				p.Node.SetPosition(-radius+inset, -th+inset)
				p.Buffer.SetDestSize(radius, max(height-2*inset, 0))
			case PartTop:
				p.Node.SetPosition(inset, -th-radius+inset)
				p.Buffer.SetDestSize(max(width-2*inset, 0), radius)
			}
		}
	}
}
