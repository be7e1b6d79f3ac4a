package ssd

import (
	"github.com/1broseidon/decor/internal/geom"
	"github.com/1broseidon/decor/internal/scene"
)

// At classifies the layout point (lx, ly).
//
// With a scene, the topmost node under the point decides first: client
// content yields PartClient and anything not belonging to this decoration
// yields PartNone. Without a scene only the view's own content box is
// considered. Otherwise every enabled part is tested and, where parts
// overlap, the one with the lowest type wins.
func (d *Decoration) At(s *scene.Scene, lx, ly float64) PartType {
	if d == nil || d.destroyed {
		return PartNone
	}

	if s != nil {
		node, _, _ := s.NodeAt(lx, ly)
		if node == nil {
			return PartNone
		}
		if !node.IsDescendantOf(d.tree) {
			return d.PartType(node)
		}
		if typ := d.partAt(lx, ly); typ != PartNone {
			return typ
		}
		return d.PartType(node)
	}

	box := d.view.Geometry()
	box.Height = d.view.EffectiveHeight()
	if box.ContainsPoint(lx, ly) {
		return PartClient
	}
	return d.partAt(lx, ly)
}

func (d *Decoration) partAt(lx, ly float64) PartType {
	best := PartNone
	scan := func(sub *subTree) {
		for _, p := range sub.parts {
			if best != PartNone && p.Type >= best {
				continue
			}
			if partContainsPoint(p, lx, ly) {
				best = p.Type
			}
		}
	}

	scan(&d.extents)
	for _, c := range []*category{&d.titlebar, &d.border} {
		for i := range c.states {
			scan(&c.states[i])
		}
	}
	return best
}

// partContainsPoint reports whether the layout point falls on p, either on
// its painted area or inside its hit geometry.
func partContainsPoint(p *Part, lx, ly float64) bool {
	if p == nil || p.Node == nil {
		return false
	}
	nx, ny, enabled := p.Node.Coords()
	if !enabled {
		return false
	}

	if p.Node.Kind() != scene.KindTree {
		w, h := p.Node.Size()
		sx, sy := lx-float64(nx), ly-float64(ny)
		if (geom.Rect{Width: w, Height: h}).ContainsPoint(sx, sy) && p.Node.AcceptsInput(sx, sy) {
			return true
		}
	}

	if p.Geometry != nil {
		x, y := p.Node.Position()
		px, py := float64(nx-x), float64(ny-y)
		return p.Geometry.ContainsPoint(lx-px, ly-py)
	}
	return false
}

// PartType classifies a scene node by walking up from it to the first node
// the decoration knows.
func (d *Decoration) PartType(node *scene.Node) PartType {
	if d == nil || d.destroyed || node == nil {
		return PartNone
	}
	if node.IsDescendantOf(d.shadow.tree) {
		return PartNone
	}

	content := d.view.Content()
	viewTree := d.view.SceneTree()
	for cur := node; cur != nil; cur = cur.ParentNode() {
		if p, ok := d.owners[cur]; ok {
			return p.Type
		}
		switch {
		case cur == &d.tree.Node:
			return PartRoot
		case content != nil && cur == content:
			return PartClient
		case viewTree != nil && cur == &viewTree.Node:
			return PartFrame
		}
	}
	return PartNone
}
