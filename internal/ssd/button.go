package ssd

import (
	"github.com/1broseidon/decor/internal/geom"
	"github.com/1broseidon/decor/internal/scene"
	"github.com/1broseidon/decor/internal/theme"
)

// button is the extra state of a titlebar button part. It outlives neither
// its decoration nor its icon texture: both detach it.
type button struct {
	typ        PartType
	decoration *Decoration
	view       View

	node   *scene.Node
	bg     *scene.Rect
	corner *scene.Buffer
	icon   *scene.Buffer
	hover  *scene.Node

	listener *scene.Listener
}

var buttonKinds = map[PartType]theme.ButtonKind{
	PartButtonClose:      theme.ButtonClose,
	PartButtonMaximize:   theme.ButtonMaximize,
	PartButtonIconify:    theme.ButtonIconify,
	PartButtonWindowMenu: theme.ButtonWindowMenu,
}

// addButton adds a button of type typ at x in parent: a grouping tree with a
// background, the icon centred on it and a hover overlay on top.
func (d *Decoration) addButton(sub *subTree, typ PartType, parent *scene.Tree, style *theme.StateStyle, x int) *button {
	th := d.mgr.theme.TitleHeight
	part, tree := d.addTree(sub, typ, parent, x, 0)
	part.Geometry = &geom.Rect{X: x, Width: ButtonWidth, Height: th}

	b := &button{
		typ:        typ,
		decoration: d,
		view:       d.view,
		node:       part.Node,
	}
	b.bg = scene.NewRect(tree, ButtonWidth, th, style.TitleBgColor)

	icon := style.Icon(buttonKinds[typ])
	b.icon = scene.NewBuffer(tree, icon)
	iw, ih := icon.Size()
	b.icon.SetPosition((ButtonWidth-iw)/2, (th-ih)/2)

	hover := scene.NewRect(tree, ButtonWidth, th, d.mgr.theme.ButtonHoverColor)
	hover.SetEnabled(false)
	b.hover = &hover.Node

	if icon != nil {
		b.listener = icon.OnDestroy(b.handleIconDestroy)
	}
	d.buttons = append(d.buttons, b)
	d.mgr.buttons[b.node] = b
	return b
}

// addCornerButton adds a button sitting in a rounded titlebar corner. The
// corner texture covers the button and the adjoining border; the flat
// background only shows while corners are squared.
func (d *Decoration) addCornerButton(sub *subTree, typ, corner PartType, parent *scene.Tree, style *theme.StateStyle, x int) *button {
	bw := d.mgr.theme.BorderWidth
	_, root := d.addTree(sub, corner, parent, x, 0)

	tex, offset := style.CornerTopLeft, -bw
	if corner == PartCornerTopRight {
		tex, offset = style.CornerTopRight, 0
	}
	cp := d.addBuffer(sub, corner, root, tex, offset, -bw)

	b := d.addButton(sub, typ, root, style, 0)
	b.corner = cp.Buffer
	b.bg.SetEnabled(false)
	return b
}

// setSquared switches corner buttons between the rounded texture and the
// flat background.
func (d *Decoration) setSquared(squared bool) {
	for _, b := range d.buttons {
		if b.corner == nil {
			continue
		}
		b.corner.SetEnabled(!squared)
		b.bg.SetEnabled(squared)
	}
}

func (b *button) handleIconDestroy() {
	if b.decoration != nil && !b.icon.Destroyed() {
		b.icon.SetTexture(nil)
	}
	b.detach()
}

// detach cuts the button loose from its manager. It is safe to call more
// than once.
func (b *button) detach() {
	b.listener.Remove()
	b.listener = nil

	d := b.decoration
	if d == nil {
		return
	}
	m := d.mgr
	if m.hovered == b {
		b.hover.SetEnabled(false)
		m.hovered = nil
		m.hover = HoverState{}
	}
	delete(m.buttons, b.node)
	b.decoration = nil
	b.view = nil
}
