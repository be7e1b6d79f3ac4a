package ssd

import (
	"fmt"
	"io"
	"strings"

	"github.com/1broseidon/decor/internal/geom"
	"github.com/1broseidon/decor/internal/scene"
	"github.com/1broseidon/decor/internal/theme"
)

// IsRootNode reports whether node is the root of the decoration.
func (d *Decoration) IsRootNode(node *scene.Node) bool {
	return d != nil && !d.destroyed && node != nil && node == &d.tree.Node
}

// NodeName returns a short description of a decoration node for debugging,
// or "" for nodes the decoration does not name.
func (d *Decoration) NodeName(node *scene.Node) string {
	if d == nil || d.destroyed || node == nil {
		return ""
	}
	if node == &d.tree.Node {
		return "decoration"
	}
	if d.extents.tree != nil && node == &d.extents.tree.Node {
		return "extents"
	}

	for _, c := range []struct {
		name string
		cat  *category
	}{
		{"titlebar", &d.titlebar},
		{"border", &d.border},
		{"shadow", &d.shadow},
	} {
		if c.cat.tree == nil {
			continue
		}
		if node == &c.cat.tree.Node {
			return c.name
		}
		for _, s := range theme.States {
			if t := c.cat.state(s).tree; t != nil && node == &t.Node {
				return c.name + "." + s.String()
			}
		}
	}

	if p, ok := d.owners[node]; ok {
		return p.Type.String()
	}
	for _, b := range d.buttons {
		switch node {
		case &b.bg.Node:
			return b.typ.String() + ".bg"
		case &b.icon.Node:
			return b.typ.String() + ".icon"
		case b.hover:
			return b.typ.String() + ".hover"
		}
	}
	return ""
}

// NodeInfo describes one node of the decoration tree.
type NodeInfo struct {
	Node  *scene.Node
	Depth int
	Name  string
	Kind  scene.Kind
	// Type is the part type for part nodes, PartNone otherwise.
	Type PartType
	// Box is the painted area in layout coordinates.
	Box geom.Rect
	// Enabled is true when the node and all of its ancestors are enabled.
	Enabled bool
}

// Walk calls fn for every node of the decoration, parents before children.
func (d *Decoration) Walk(fn func(NodeInfo)) {
	if d == nil || d.destroyed {
		return
	}
	d.walk(&d.tree.Node, 0, fn)
}

func (d *Decoration) walk(n *scene.Node, depth int, fn func(NodeInfo)) {
	lx, ly, enabled := n.Coords()
	w, h := n.Size()
	info := NodeInfo{
		Node:    n,
		Depth:   depth,
		Name:    d.NodeName(n),
		Kind:    n.Kind(),
		Box:     geom.Rect{X: lx, Y: ly, Width: w, Height: h},
		Enabled: enabled,
	}
	if p, ok := d.owners[n]; ok {
		info.Type = p.Type
	}
	fn(info)

	if t := n.AsTree(); t != nil {
		for _, c := range t.Children() {
			d.walk(c, depth+1, fn)
		}
	}
}

// Dump writes the decoration tree as indented text.
func (d *Decoration) Dump(w io.Writer) error {
	var err error
	d.Walk(func(n NodeInfo) {
		if err != nil {
			return
		}
		name := n.Name
		if name == "" {
			name = "-"
		}
		state := ""
		if !n.Enabled {
			state = " (disabled)"
		}
		_, err = fmt.Fprintf(w, "%s%s %s %s%s\n",
			strings.Repeat("  ", n.Depth), n.Kind, name, n.Box, state)
	})
	return err
}
