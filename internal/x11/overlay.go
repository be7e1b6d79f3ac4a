package x11

import (
	"fmt"
	"image"
	"image/color"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xgraphics"

	"github.com/1broseidon/decor/internal/geom"
)

// Surface is one painted piece of a frame in root coordinates. Exactly one
// of Color and Image is set. Surfaces without paint (a nil or fully
// transparent Color) still receive pointer input.
type Surface struct {
	Key   any
	Box   geom.Rect
	Color color.Color
	Image image.Image
}

type overlayWindow struct {
	id        xproto.Window
	inputOnly bool
	mapped    bool
	image     *xgraphics.Image
}

// FrameOverlay mirrors a decoration onto override-redirect windows stacked
// above everything else. Pointer motion and clicks on any of them are
// reported in root coordinates.
type FrameOverlay struct {
	xu   *xgbutil.XUtil
	root xproto.Window

	windows map[any]*overlayWindow

	OnMotion func(rootX, rootY int)
	OnPress  func(rootX, rootY int, button xproto.Button)
}

// NewFrameOverlay creates an empty overlay on the connection's root window.
func NewFrameOverlay(c *Connection) *FrameOverlay {
	return &FrameOverlay{
		xu:      c.XUtil,
		root:    c.Root,
		windows: make(map[any]*overlayWindow),
	}
}

// Render shows surfaces bottom to top and hides windows of surfaces that
// are no longer present.
func (o *FrameOverlay) Render(surfaces []Surface) error {
	seen := make(map[any]bool, len(surfaces))
	for _, s := range surfaces {
		if s.Box.Empty() {
			continue
		}
		seen[s.Key] = true

		inputOnly := s.Image == nil && transparent(s.Color)
		w, ok := o.windows[s.Key]
		if ok && w.inputOnly != inputOnly {
			o.destroyWindow(w)
			ok = false
		}
		if !ok {
			var err error
			w, err = o.createWindow(inputOnly)
			if err != nil {
				return fmt.Errorf("failed to create overlay window: %w", err)
			}
			o.windows[s.Key] = w
		}
		if err := o.showWindow(w, s); err != nil {
			return err
		}
	}

	for key, w := range o.windows {
		if !seen[key] {
			o.hideWindow(w)
		}
	}
	return nil
}

// Close destroys all overlay windows.
func (o *FrameOverlay) Close() {
	for key, w := range o.windows {
		o.destroyWindow(w)
		delete(o.windows, key)
	}
}

func (o *FrameOverlay) createWindow(inputOnly bool) (*overlayWindow, error) {
	conn := o.xu.Conn()
	screen := o.xu.Screen()

	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return nil, err
	}

	events := uint32(xproto.EventMaskPointerMotion | xproto.EventMaskButtonPress)
	if inputOnly {
		err = xproto.CreateWindowChecked(
			conn,
			0,
			wid,
			o.root,
			0, 0,
			1, 1,
			0,
			xproto.WindowClassInputOnly,
			0,
			xproto.CwOverrideRedirect|xproto.CwEventMask,
			[]uint32{1, events},
		).Check()
	} else {
		// Values follow mask bit order: back pixel, override redirect, event mask.
		err = xproto.CreateWindowChecked(
			conn,
			screen.RootDepth,
			wid,
			o.root,
			0, 0,
			1, 1,
			0,
			xproto.WindowClassInputOutput,
			screen.RootVisual,
			xproto.CwBackPixel|xproto.CwOverrideRedirect|xproto.CwEventMask,
			[]uint32{0, 1, events},
		).Check()
	}
	if err != nil {
		return nil, err
	}

	xevent.MotionNotifyFun(func(_ *xgbutil.XUtil, ev xevent.MotionNotifyEvent) {
		if o.OnMotion != nil {
			o.OnMotion(int(ev.RootX), int(ev.RootY))
		}
	}).Connect(o.xu, wid)
	xevent.ButtonPressFun(func(_ *xgbutil.XUtil, ev xevent.ButtonPressEvent) {
		if o.OnPress != nil {
			o.OnPress(int(ev.RootX), int(ev.RootY), ev.Detail)
		}
	}).Connect(o.xu, wid)

	return &overlayWindow{id: wid, inputOnly: inputOnly}, nil
}

func (o *FrameOverlay) showWindow(w *overlayWindow, s Surface) error {
	conn := o.xu.Conn()

	xproto.ConfigureWindow(
		conn,
		w.id,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight|xproto.ConfigWindowStackMode,
		[]uint32{
			uint32(s.Box.X),
			uint32(s.Box.Y),
			uint32(s.Box.Width),
			uint32(s.Box.Height),
			xproto.StackModeAbove,
		},
	)
	if !w.mapped {
		xproto.MapWindow(conn, w.id)
		w.mapped = true
	}

	switch {
	case w.inputOnly:
	case s.Image != nil:
		if w.image != nil {
			w.image.Destroy()
		}
		w.image = xgraphics.NewConvert(o.xu, s.Image)
		if err := w.image.XSurfaceSet(w.id); err != nil {
			return fmt.Errorf("failed to attach overlay image: %w", err)
		}
		w.image.XDraw()
		w.image.XPaint(w.id)
	default:
		xproto.ChangeWindowAttributes(conn, w.id, xproto.CwBackPixel, []uint32{pixel(s.Color)})
		xproto.ClearArea(conn, false, w.id, 0, 0, 0, 0)
	}
	return nil
}

func (o *FrameOverlay) hideWindow(w *overlayWindow) {
	if !w.mapped {
		return
	}
	xproto.UnmapWindow(o.xu.Conn(), w.id)
	w.mapped = false
}

func (o *FrameOverlay) destroyWindow(w *overlayWindow) {
	xevent.Detach(o.xu, w.id)
	if w.image != nil {
		w.image.Destroy()
		w.image = nil
	}
	xproto.DestroyWindow(o.xu.Conn(), w.id)
}

func transparent(c color.Color) bool {
	if c == nil {
		return true
	}
	_, _, _, a := c.RGBA()
	return a == 0
}

// pixel packs c for a 24-bit TrueColor visual.
func pixel(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}
