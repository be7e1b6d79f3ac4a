// Package view holds the window state decorations are built around: the
// content box, focus, maximize and fullscreen state and the output the view
// is shown on.
package view

import (
	"image/color"

	"github.com/1broseidon/decor/internal/geom"
	"github.com/1broseidon/decor/internal/scene"
)

// Axis is a bitmask of the directions a view is maximized in.
type Axis uint8

const (
	AxisNone       Axis = 0
	AxisHorizontal Axis = 1 << 0
	AxisVertical   Axis = 1 << 1
	AxisBoth            = AxisHorizontal | AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisNone:
		return "none"
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	case AxisBoth:
		return "both"
	default:
		return "invalid"
	}
}

// View is a toplevel window. Its scene tree is positioned at the top-left
// corner of the content box; decorations hang off the same tree at negative
// offsets.
type View struct {
	box        geom.Rect
	maximized  Axis
	fullscreen bool
	shaded     bool
	focused    bool
	title      string

	usable    geom.Rect
	hasOutput bool

	tree    *scene.Tree
	content *scene.Rect
}

// ContentColor is the fill used for the placeholder client surface.
var ContentColor = color.NRGBA{R: 0x28, G: 0x2c, B: 0x34, A: 0xff}

// New creates a view with a placeholder content surface below parent.
func New(parent *scene.Tree, box geom.Rect, title string) *View {
	v := &View{box: box, title: title}
	v.tree = scene.NewTree(parent)
	v.tree.SetPosition(box.X, box.Y)
	v.content = scene.NewRect(v.tree, box.Width, box.Height, ContentColor)
	return v
}

func (v *View) Geometry() geom.Rect { return v.box }

// EffectiveHeight is the visible content height. Shaded views show no content.
func (v *View) EffectiveHeight() int {
	if v.shaded {
		return 0
	}
	return v.box.Height
}

func (v *View) Maximized() Axis         { return v.maximized }
func (v *View) Fullscreen() bool        { return v.fullscreen }
func (v *View) Focused() bool           { return v.focused }
func (v *View) Shaded() bool            { return v.shaded }
func (v *View) Title() string           { return v.title }
func (v *View) SceneTree() *scene.Tree  { return v.tree }
func (v *View) Content() *scene.Node    { return &v.content.Node }
func (v *View) SetTitle(title string)   { v.title = title }
func (v *View) SetFocused(focused bool) { v.focused = focused }

// UsableArea returns the usable area of the view's output in layout
// coordinates, if the view is on an output.
func (v *View) UsableArea() (geom.Rect, bool) {
	return v.usable, v.hasOutput
}

// SetUsableArea places the view on an output with the given usable area.
func (v *View) SetUsableArea(r geom.Rect) {
	v.usable = r
	v.hasOutput = true
}

// Move changes the position of the content box.
func (v *View) Move(x, y int) {
	v.box.X, v.box.Y = x, y
	v.tree.SetPosition(x, y)
}

// Resize changes the size of the content box.
func (v *View) Resize(width, height int) {
	v.box.Width, v.box.Height = width, height
	v.updateContent()
}

func (v *View) SetMaximized(axis Axis) { v.maximized = axis & AxisBoth }

func (v *View) SetFullscreen(fullscreen bool) { v.fullscreen = fullscreen }

// SetShaded rolls the view up to its titlebar.
func (v *View) SetShaded(shaded bool) {
	v.shaded = shaded
	v.updateContent()
}

func (v *View) updateContent() {
	v.content.SetSize(v.box.Width, v.box.Height)
	v.content.SetEnabled(!v.shaded)
}

// Destroy removes the view and everything attached to its tree.
func (v *View) Destroy() {
	v.tree.Destroy()
}
