// Package ssd builds server-side window decorations on top of a scene graph:
// titlebar with buttons, border, invisible resize extents and drop shadow.
// It keeps their geometry in sync with the view and classifies points and
// scene nodes into decoration parts for input handling.
//
// Everything in this package runs on the event loop goroutine. Every entry
// point accepts a nil *Decoration and answers with a default.
package ssd

import (
	"image"
	"image/color"

	"github.com/1broseidon/decor/internal/geom"
	"github.com/1broseidon/decor/internal/scene"
	"github.com/1broseidon/decor/internal/theme"
	"github.com/1broseidon/decor/internal/view"
)

const (
	ButtonCount  = 4
	ButtonWidth  = theme.ButtonWidth
	ExtendedArea = 8

	// MinViewWidth is the narrowest view that still fits every button.
	MinViewWidth = ButtonWidth * ButtonCount
)

// View is the window state a decoration is built around.
type View interface {
	// Geometry is the content box in layout coordinates.
	Geometry() geom.Rect
	// EffectiveHeight is the visible content height, zero when shaded.
	EffectiveHeight() int
	Maximized() view.Axis
	Fullscreen() bool
	Title() string
	// SceneTree is the tree positioned at the top-left of the content box.
	SceneTree() *scene.Tree
	// Content is the client surface node.
	Content() *scene.Node
	// UsableArea is the usable area of the view's output, if it has one.
	UsableArea() (geom.Rect, bool)
}

// TextRenderer rasterizes titles. It returns the image, its pixel width and
// whether the text was truncated to fit maxWidth.
type TextRenderer interface {
	RenderText(text string, maxWidth int, c color.Color) (image.Image, int, bool)
}

// Border is the space between a view's content box and the outer edge of
// its decoration.
type Border struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

var transparent = color.NRGBA{}

func maximizedBoth(v View) bool {
	return v.Maximized() == view.AxisBoth
}
