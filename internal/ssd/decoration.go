package ssd

import (
	"github.com/1broseidon/decor/internal/geom"
	"github.com/1broseidon/decor/internal/scene"
	"github.com/1broseidon/decor/internal/theme"
	"github.com/1broseidon/decor/internal/view"
)

// Manager holds what decorations of one compositor share: the theme, the
// title renderer and the button hover state.
type Manager struct {
	theme *theme.Theme
	text  TextRenderer

	hover   HoverState
	hovered *button
	buttons map[*scene.Node]*button
}

// NewManager returns a manager building decorations from th. text may be nil,
// in which case titles are left empty.
func NewManager(th *theme.Theme, text TextRenderer) *Manager {
	return &Manager{
		theme:   th,
		text:    text,
		buttons: make(map[*scene.Node]*button),
	}
}

// Theme returns the theme decorations are built from.
func (m *Manager) Theme() *theme.Theme {
	if m == nil {
		return nil
	}
	return m.theme
}

type titleState struct {
	width     int
	truncated bool
}

// geometryCache is what the last geometry pass was computed from.
type geometryCache struct {
	valid      bool
	geometry   geom.Rect
	maximized  view.Axis
	fullscreen bool
	usable     geom.Rect
	hasUsable  bool

	title struct {
		text   string
		set    bool
		states [2]titleState
	}
}

// Decoration is the server-side decoration of one view.
type Decoration struct {
	mgr  *Manager
	view View
	tree *scene.Tree

	active         bool
	titlebarHeight int
	titlebarHidden bool
	state          geometryCache
	margin         Border

	extents  subTree
	titlebar category
	border   category
	shadow   category

	buttons       []*button
	titleTextures [2]*scene.Texture

	// owners maps every part node back to its part.
	owners    map[*scene.Node]*Part
	destroyed bool
}

// Create decorates v. The decoration hangs off v's scene tree, below the
// client content. It returns nil when v has no scene tree.
func (m *Manager) Create(v View, active bool) *Decoration {
	if m == nil || m.theme == nil || v == nil || v.SceneTree() == nil {
		return nil
	}

	d := &Decoration{
		mgr:            m,
		view:           v,
		titlebarHeight: m.theme.TitleHeight,
		owners:         make(map[*scene.Node]*Part),
	}
	d.tree = scene.NewTree(v.SceneTree())
	d.tree.LowerToBottom()

	d.createExtents()
	d.createTitlebar()
	d.createBorder()

	d.SetActive(active)
	d.UpdateGeometry()

	Logger().Debug("decoration created",
		"title", v.Title(),
		"geometry", v.Geometry().String(),
		"active", active)
	return d
}

// SetActive shows the focused or unfocused variant of every element.
func (d *Decoration) SetActive(active bool) {
	if d == nil || d.destroyed {
		return
	}
	d.active = active
	d.titlebar.setActive(active)
	d.border.setActive(active)
	d.shadow.setActive(active)
}

// Active reports which variant is shown.
func (d *Decoration) Active() bool {
	return d != nil && d.active
}

// Tree returns the root of the decoration.
func (d *Decoration) Tree() *scene.Tree {
	if d == nil {
		return nil
	}
	return d.tree
}

// TitlebarHeight is the theme's title height, or zero while the titlebar is
// hidden.
func (d *Decoration) TitlebarHeight() int {
	if d == nil {
		return 0
	}
	return d.titlebarHeight
}

// UpdateGeometry brings the decoration in line with the view's box and
// maximize state. It writes nothing when neither changed since the last call.
func (d *Decoration) UpdateGeometry() {
	if d == nil || d.destroyed {
		return
	}

	box := d.view.Geometry()
	cur := geom.Rect{X: box.X, Y: box.Y, Width: box.Width, Height: d.view.EffectiveHeight()}
	maximized := d.view.Maximized()
	fullscreen := d.view.Fullscreen()
	usable, hasUsable := d.view.UsableArea()

	old := d.state
	if old.valid && cur == old.geometry && maximized == old.maximized && fullscreen == old.fullscreen &&
		usable == old.usable && hasUsable == old.hasUsable {
		return
	}

	if cur.Width > 0 && cur.Width < MinViewWidth {
		Logger().Error("view too narrow for decoration",
			"width", cur.Width,
			"min", MinViewWidth)
		return
	}

	if !old.valid || fullscreen != old.fullscreen {
		d.tree.SetEnabled(!fullscreen)
	}

	areaChanged := !old.valid ||
		cur.Width != old.geometry.Width ||
		cur.Height != old.geometry.Height ||
		(maximized == view.AxisBoth) != (old.maximized == view.AxisBoth)
	if areaChanged {
		d.updateTitlebar()
		d.updateBorder()
		d.updateShadow()
	}
	d.updateExtents()

	d.margin = d.thickness()
	d.state.valid = true
	d.state.geometry = cur
	d.state.maximized = maximized
	d.state.fullscreen = fullscreen
	d.state.usable = usable
	d.state.hasUsable = hasUsable
}

func (d *Decoration) thickness() Border {
	if d.view.Fullscreen() {
		return Border{}
	}
	th := d.titlebarHeight
	if maximizedBoth(d.view) {
		return Border{Top: th}
	}
	bw := d.mgr.theme.BorderWidth
	return Border{Top: th + bw, Right: bw, Bottom: bw, Left: bw}
}

// Margin is the decoration thickness on each side of the content box.
func (d *Decoration) Margin() Border {
	if d == nil || d.destroyed {
		return Border{}
	}
	return d.margin
}

// MaxExtents is the content box grown by the margin.
func (d *Decoration) MaxExtents() geom.Rect {
	if d == nil || d.destroyed {
		return geom.Rect{}
	}
	box := d.view.Geometry()
	m := d.margin
	return geom.Rect{
		X:      box.X - m.Left,
		Y:      box.Y - m.Top,
		Width:  box.Width + m.Left + m.Right,
		Height: d.view.EffectiveHeight() + m.Top + m.Bottom,
	}
}

// SetTitlebarVisible shows or hides the titlebar. A hidden titlebar leaves a
// border-only decoration.
func (d *Decoration) SetTitlebarVisible(visible bool) {
	if d == nil || d.destroyed || d.titlebarHidden == !visible {
		return
	}
	d.titlebarHidden = !visible
	if !visible {
		d.mgr.clearHover(d)
	}
	if visible {
		d.titlebarHeight = d.mgr.theme.TitleHeight
	} else {
		d.titlebarHeight = 0
	}
	d.titlebar.tree.SetEnabled(visible)
	d.state.valid = false
	d.UpdateGeometry()
}

// EnableShadow builds the drop shadow on first enable and tears it down on
// disable.
func (d *Decoration) EnableShadow(enable bool) {
	if d == nil || d.destroyed {
		return
	}
	switch {
	case enable && d.shadow.tree == nil:
		d.createShadow()
	case !enable && d.shadow.tree != nil:
		d.destroyCategory(&d.shadow)
	}
}

// Destroy removes the decoration from the scene. The decoration answers every
// later call with defaults.
func (d *Decoration) Destroy() {
	if d == nil || d.destroyed {
		return
	}
	Logger().Debug("decoration destroyed", "title", d.view.Title())

	for _, b := range d.buttons {
		b.detach()
	}
	d.buttons = nil

	d.destroyCategory(&d.shadow)
	d.destroyCategory(&d.border)
	d.destroyCategory(&d.titlebar)
	d.destroySubTree(&d.extents)

	for i, tex := range d.titleTextures {
		tex.Destroy()
		d.titleTextures[i] = nil
	}
	d.tree.Destroy()

	clear(d.owners)
	d.destroyed = true
	d.view = nil
}
