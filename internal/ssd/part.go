package ssd

import (
	"image/color"

	"github.com/1broseidon/decor/internal/geom"
	"github.com/1broseidon/decor/internal/scene"
	"github.com/1broseidon/decor/internal/theme"
)

// PartType classifies decoration parts. The order is the hit-test priority:
// where interactive areas overlap, the lower value wins.
type PartType int

const (
	PartNone PartType = iota
	PartButtonClose
	PartButtonMaximize
	PartButtonIconify
	PartButtonWindowMenu
	PartTitlebar
	PartTitle
	PartCornerTopLeft
	PartCornerTopRight
	PartCornerBottomRight
	PartCornerBottomLeft
	PartTop
	PartRight
	PartBottom
	PartLeft
	PartClient
	PartFrame
	PartRoot
	PartMenu
	PartOSD
	PartLayerSurface
	PartUnmanaged
	partEndMarker
)

var partNames = [...]string{
	PartNone:              "none",
	PartButtonClose:       "button-close",
	PartButtonMaximize:    "button-maximize",
	PartButtonIconify:     "button-iconify",
	PartButtonWindowMenu:  "button-window-menu",
	PartTitlebar:          "titlebar",
	PartTitle:             "title",
	PartCornerTopLeft:     "corner-top-left",
	PartCornerTopRight:    "corner-top-right",
	PartCornerBottomRight: "corner-bottom-right",
	PartCornerBottomLeft:  "corner-bottom-left",
	PartTop:               "top",
	PartRight:             "right",
	PartBottom:            "bottom",
	PartLeft:              "left",
	PartClient:            "client",
	PartFrame:             "frame",
	PartRoot:              "root",
	PartMenu:              "menu",
	PartOSD:               "osd",
	PartLayerSurface:      "layer-surface",
	PartUnmanaged:         "unmanaged",
}

func (t PartType) String() string {
	if !t.Valid() {
		return "invalid"
	}
	return partNames[t]
}

// Valid reports whether t is one of the declared part types.
func (t PartType) Valid() bool {
	return t >= PartNone && t < partEndMarker
}

// ParsePartType is the inverse of String.
func ParsePartType(s string) (PartType, bool) {
	for t, name := range partNames {
		if name == s {
			return PartType(t), true
		}
	}
	return PartNone, false
}

// AllPartTypes lists every valid part type in priority order.
func AllPartTypes() []PartType {
	out := make([]PartType, 0, int(partEndMarker))
	for t := PartNone; t < partEndMarker; t++ {
		out = append(out, t)
	}
	return out
}

// Part is one decoration element.
type Part struct {
	Type PartType
	Node *scene.Node
	// Buffer is set for parts showing a texture.
	Buffer *scene.Buffer
	// Geometry, when set, is the hit area relative to the parent tree of
	// Node, used where it differs from the painted area.
	Geometry *geom.Rect
}

// subTree is a grouping node and its parts in insertion order.
type subTree struct {
	tree  *scene.Tree
	parts []*Part
}

// category is a decoration element with an active and an inactive variant.
type category struct {
	tree   *scene.Tree
	states [2]subTree
}

func (c *category) state(s theme.State) *subTree {
	return &c.states[s]
}

// setActive enables exactly one of the two variants.
func (c *category) setActive(active bool) {
	if c.tree == nil {
		return
	}
	c.states[theme.Active].tree.SetEnabled(active)
	c.states[theme.Inactive].tree.SetEnabled(!active)
}

func (d *Decoration) addPart(sub *subTree, typ PartType) *Part {
	p := &Part{Type: typ}
	sub.parts = append(sub.parts, p)
	return p
}

func (d *Decoration) register(p *Part) {
	d.owners[p.Node] = p
}

func (d *Decoration) addRect(sub *subTree, typ PartType, parent *scene.Tree, w, h, x, y int, c color.Color) *Part {
	p := d.addPart(sub, typ)
	r := scene.NewRect(parent, w, h, c)
	r.SetPosition(x, y)
	p.Node = &r.Node
	d.register(p)
	return p
}

func (d *Decoration) addBuffer(sub *subTree, typ PartType, parent *scene.Tree, tex *scene.Texture, x, y int) *Part {
	p := d.addPart(sub, typ)
	b := scene.NewBuffer(parent, tex)
	b.SetPosition(x, y)
	p.Node = &b.Node
	p.Buffer = b
	d.register(p)
	return p
}

func (d *Decoration) addTree(sub *subTree, typ PartType, parent *scene.Tree, x, y int) (*Part, *scene.Tree) {
	p := d.addPart(sub, typ)
	t := scene.NewTree(parent)
	t.SetPosition(x, y)
	p.Node = &t.Node
	d.register(p)
	return p, t
}

// getPart returns the first part of type typ.
func getPart(parts []*Part, typ PartType) *Part {
	for _, p := range parts {
		if p.Type == typ {
			return p
		}
	}
	return nil
}

// destroyParts releases every part of sub, last first so nested parts go
// before the trees holding them.
func (d *Decoration) destroyParts(sub *subTree) {
	for i := len(sub.parts) - 1; i >= 0; i-- {
		p := sub.parts[i]
		if p.Node != nil {
			delete(d.owners, p.Node)
			p.Node.Destroy()
		}
		p.Node = nil
		p.Buffer = nil
		p.Geometry = nil
	}
	sub.parts = nil
}

func (d *Decoration) destroySubTree(sub *subTree) {
	d.destroyParts(sub)
	if sub.tree != nil {
		sub.tree.Destroy()
		sub.tree = nil
	}
}

func (d *Decoration) destroyCategory(c *category) {
	if c.tree == nil {
		return
	}
	for i := range c.states {
		d.destroySubTree(&c.states[i])
	}
	c.tree.Destroy()
	c.tree = nil
}

func setRect(p *Part, x, y, w, h int) {
	if p == nil {
		return
	}
	p.Node.SetPosition(x, y)
	p.Node.AsRect().SetSize(max(w, 0), max(h, 0))
}
