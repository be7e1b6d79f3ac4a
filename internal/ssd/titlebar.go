package ssd

import (
	"github.com/1broseidon/decor/internal/scene"
	"github.com/1broseidon/decor/internal/theme"
)

// createTitlebar builds both titlebar variants. Buttons are laid out from
// the right, window menu alone on the left:
//
//	[menu][      title      ][iconify][maximize][close]
func (d *Decoration) createTitlebar() {
	t := d.mgr.theme
	d.titlebar.tree = scene.NewTree(d.tree)

	for _, s := range theme.States {
		style := t.Style(s)
		sub := d.titlebar.state(s)
		sub.tree = scene.NewTree(d.titlebar.tree)

		d.addCornerButton(sub, PartButtonClose, PartCornerTopRight, sub.tree, style, 0)
		d.addButton(sub, PartButtonMaximize, sub.tree, style, 0)
		d.addButton(sub, PartButtonIconify, sub.tree, style, 0)
		d.addCornerButton(sub, PartButtonWindowMenu, PartCornerTopLeft, sub.tree, style, 0)
		d.addRect(sub, PartTitlebar, sub.tree, 0, t.TitleHeight, ButtonWidth, 0, style.TitleBgColor)
		d.addBuffer(sub, PartTitle, sub.tree, nil, 0, 0)
	}
}

func (d *Decoration) updateTitlebar() {
	width := d.view.Geometry().Width
	th := d.mgr.theme.TitleHeight

	d.titlebar.tree.SetPosition(0, -d.titlebarHeight)
	for i := range d.titlebar.states {
		for _, p := range d.titlebar.states[i].parts {
			switch p.Type {
			case PartTitlebar:
				setRect(p, ButtonWidth, 0, width-ButtonWidth*ButtonCount, th)
			case PartCornerTopLeft:
				if p.Buffer == nil {
					p.Node.SetPosition(0, 0)
				}
			case PartCornerTopRight:
				if p.Buffer == nil {
					p.Node.SetPosition(width-ButtonWidth, 0)
				}
			case PartButtonIconify:
				moveButton(p, width-3*ButtonWidth)
			case PartButtonMaximize:
				moveButton(p, width-2*ButtonWidth)
			}
		}
	}
	d.setSquared(maximizedBoth(d.view))
	d.UpdateTitle()
}

func moveButton(p *Part, x int) {
	p.Node.SetPosition(x, 0)
	p.Geometry.X = x
}
