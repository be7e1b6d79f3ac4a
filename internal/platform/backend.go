package platform

import (
	"context"
	"errors"
	"image"
	"image/color"

	"github.com/1broseidon/decor/internal/geom"
	"github.com/1broseidon/decor/internal/scene"
	"github.com/1broseidon/decor/internal/ssd"
	"github.com/1broseidon/decor/internal/view"
)

// ErrUnsupported is returned on platforms without a window-system backend.
var ErrUnsupported = errors.New("no window-system backend on this platform")

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// Window is the state of a client window a decoration follows.
type Window struct {
	ID         WindowID
	Title      string
	Box        geom.Rect
	Maximized  view.Axis
	Fullscreen bool
	Shaded     bool
}

// Surface is one painted piece of a decoration in root coordinates. Exactly
// one of Color and Image is set; a transparent Color is input only.
type Surface struct {
	Key   *scene.Node
	Box   geom.Rect
	Color color.Color
	Image image.Image
}

// PointerHandlers receive pointer events delivered to rendered surfaces.
type PointerHandlers struct {
	Motion func(x, y int)
	Press  func(x, y, button int)
}

// Backend abstracts the window-system operations the preview needs.
type Backend interface {
	ActiveWindow() (WindowID, error)
	Window(id WindowID) (Window, error)
	// UsableArea returns the usable area of the output showing box.
	UsableArea(box geom.Rect) (geom.Rect, bool)
	Watch(id WindowID, changed func()) error
	Unwatch(id WindowID)
	PublishFrameExtents(id WindowID, margin ssd.Border) error
	Render(surfaces []Surface) error
	SetPointerHandlers(h PointerHandlers)
	EventLoop(ctx context.Context)
	Disconnect()
}

// Surfaces flattens the visible leaves of a decoration, bottom to top.
// Buffers that never take input (shadows) and buffers drawn scaled or
// rotated are left out.
func Surfaces(d *ssd.Decoration) []Surface {
	var out []Surface
	d.Walk(func(n ssd.NodeInfo) {
		if !n.Enabled || n.Box.Empty() {
			return
		}
		switch n.Kind {
		case scene.KindRect:
			out = append(out, Surface{Key: n.Node, Box: n.Box, Color: n.Node.AsRect().Color()})
		case scene.KindBuffer:
			b := n.Node.AsBuffer()
			tex := b.Texture()
			if tex.Image() == nil || b.Transform() != scene.TransformNormal || !n.Node.AcceptsInput(0, 0) {
				return
			}
			if w, h := tex.Size(); w != n.Box.Width || h != n.Box.Height {
				return
			}
			out = append(out, Surface{Key: n.Node, Box: n.Box, Image: tex.Image()})
		}
	})
	return out
}
