// Package inspect builds throwaway decorations from a plain description of a
// window and reports their layout and hit-test results in a form suited to
// printing or JSON encoding.
package inspect

import (
	"fmt"

	"github.com/1broseidon/decor/internal/geom"
	"github.com/1broseidon/decor/internal/scene"
	"github.com/1broseidon/decor/internal/ssd"
	"github.com/1broseidon/decor/internal/view"
)

// Scenario describes a window to decorate.
type Scenario struct {
	Box          geom.Rect
	Title        string
	Active       bool
	Maximized    view.Axis
	Fullscreen   bool
	Shaded       bool
	HideTitlebar bool
	Shadow       bool
	// Usable is the usable area of the output. Zero means the window is on
	// no output.
	Usable geom.Rect
}

// Frame is a decorated scenario. Close it when done.
type Frame struct {
	Scene      *scene.Scene
	View       *view.View
	Decoration *ssd.Decoration
}

// Build decorates s in a fresh scene.
func Build(mgr *ssd.Manager, s Scenario) (*Frame, error) {
	if s.Box.Width < ssd.MinViewWidth {
		return nil, fmt.Errorf("width %d is below the minimum of %d", s.Box.Width, ssd.MinViewWidth)
	}
	if s.Box.Height < 0 {
		return nil, fmt.Errorf("negative height %d", s.Box.Height)
	}

	sc := scene.New()
	v := view.New(sc.Root(), s.Box, s.Title)
	v.SetFocused(s.Active)
	v.SetMaximized(s.Maximized)
	v.SetFullscreen(s.Fullscreen)
	v.SetShaded(s.Shaded)
	if !s.Usable.Empty() {
		v.SetUsableArea(s.Usable)
	}

	d := mgr.Create(v, s.Active)
	if d == nil {
		v.Destroy()
		return nil, fmt.Errorf("failed to create decoration")
	}
	d.EnableShadow(s.Shadow)
	d.SetTitlebarVisible(!s.HideTitlebar)
	return &Frame{Scene: sc, View: v, Decoration: d}, nil
}

// Close destroys the decoration and its view.
func (f *Frame) Close() {
	f.Decoration.Destroy()
	f.View.Destroy()
}

// Node is one entry of a layout report.
type Node struct {
	Depth   int       `json:"depth"`
	Name    string    `json:"name,omitempty"`
	Kind    string    `json:"kind"`
	Part    string    `json:"part,omitempty"`
	Box     geom.Rect `json:"box"`
	Enabled bool      `json:"enabled"`
}

// Layout summarizes a decorated frame.
type Layout struct {
	Margin     ssd.Border `json:"margin"`
	MaxExtents geom.Rect  `json:"max_extents"`
	Nodes      []Node     `json:"nodes"`
}

// Layout reports the margin, outer box and node tree of the frame. With
// enabledOnly set, hidden nodes are omitted.
func (f *Frame) Layout(enabledOnly bool) Layout {
	l := Layout{
		Margin:     f.Decoration.Margin(),
		MaxExtents: f.Decoration.MaxExtents(),
	}
	f.Decoration.Walk(func(n ssd.NodeInfo) {
		if enabledOnly && !n.Enabled {
			return
		}
		node := Node{
			Depth:   n.Depth,
			Name:    n.Name,
			Kind:    n.Kind.String(),
			Box:     n.Box,
			Enabled: n.Enabled,
		}
		if n.Type != ssd.PartNone {
			node.Part = n.Type.String()
		}
		l.Nodes = append(l.Nodes, node)
	})
	return l
}

// Hit is the classification of one point.
type Hit struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Part     string `json:"part"`
	Edges    string `json:"edges"`
	IsButton bool   `json:"is_button"`
}

// HitTest classifies the layout point x, y.
func (f *Frame) HitTest(x, y int) Hit {
	part := f.Decoration.At(f.Scene, float64(x), float64(y))
	return Hit{
		X:        x,
		Y:        y,
		Part:     part.String(),
		Edges:    ssd.ResizeEdges(part).String(),
		IsButton: ssd.IsButton(part),
	}
}

// ParseAxis parses none, horizontal, vertical or both. The empty string is
// none.
func ParseAxis(s string) (view.Axis, error) {
	for _, a := range []view.Axis{view.AxisNone, view.AxisHorizontal, view.AxisVertical, view.AxisBoth} {
		if a.String() == s {
			return a, nil
		}
	}
	if s == "" {
		return view.AxisNone, nil
	}
	return view.AxisNone, fmt.Errorf("invalid maximize axis %q (want none, horizontal, vertical or both)", s)
}
