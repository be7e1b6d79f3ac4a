package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/1broseidon/decor/internal/geom"
	"github.com/1broseidon/decor/internal/view"
)

// WindowInfo is the state of a client window a decoration depends on.
type WindowInfo struct {
	ID         xproto.Window
	Title      string
	Box        geom.Rect
	Maximized  view.Axis
	Fullscreen bool
	Shaded     bool
}

// ActiveWindow returns the focused client window.
func (c *Connection) ActiveWindow() (xproto.Window, error) {
	win, err := ewmh.ActiveWindowGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to get active window: %w", err)
	}
	if win == 0 {
		return 0, fmt.Errorf("no active window")
	}
	return win, nil
}

// WindowInfo reads geometry, title and EWMH state of a window.
func (c *Connection) WindowInfo(win xproto.Window) (WindowInfo, error) {
	box, err := c.windowBox(win)
	if err != nil {
		return WindowInfo{}, err
	}

	info := WindowInfo{
		ID:    win,
		Title: c.windowTitle(win),
		Box:   box,
	}
	if states, err := ewmh.WmStateGet(c.XUtil, win); err == nil {
		info.Maximized, info.Fullscreen, info.Shaded = parseWmState(states)
	}
	return info, nil
}

func (c *Connection) windowBox(win xproto.Window) (geom.Rect, error) {
	g, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return geom.Rect{}, fmt.Errorf("failed to get window geometry: %w", err)
	}
	translate, err := xproto.TranslateCoordinates(c.XUtil.Conn(), win, c.Root, 0, 0).Reply()
	if err != nil {
		return geom.Rect{}, fmt.Errorf("failed to translate window coordinates: %w", err)
	}
	return geom.Rect{
		X:      int(translate.DstX),
		Y:      int(translate.DstY),
		Width:  int(g.Width),
		Height: int(g.Height),
	}, nil
}

// windowTitle prefers _NET_WM_NAME and falls back to WM_NAME.
func (c *Connection) windowTitle(win xproto.Window) string {
	if name, err := ewmh.WmNameGet(c.XUtil, win); err == nil && name != "" {
		return name
	}
	if name, err := icccm.WmNameGet(c.XUtil, win); err == nil {
		return name
	}
	return ""
}

func parseWmState(states []string) (maximized view.Axis, fullscreen, shaded bool) {
	for _, state := range states {
		switch state {
		case "_NET_WM_STATE_MAXIMIZED_HORZ":
			maximized |= view.AxisHorizontal
		case "_NET_WM_STATE_MAXIMIZED_VERT":
			maximized |= view.AxisVertical
		case "_NET_WM_STATE_FULLSCREEN":
			fullscreen = true
		case "_NET_WM_STATE_SHADED":
			shaded = true
		}
	}
	return maximized, fullscreen, shaded
}

// Watch calls changed whenever a client window is moved, resized or has a
// property (title, EWMH state) updated.
func (c *Connection) Watch(win xproto.Window, changed func()) error {
	err := xproto.ChangeWindowAttributesChecked(
		c.XUtil.Conn(),
		win,
		xproto.CwEventMask,
		[]uint32{xproto.EventMaskStructureNotify | xproto.EventMaskPropertyChange},
	).Check()
	if err != nil {
		return fmt.Errorf("failed to select window events: %w", err)
	}

	xevent.ConfigureNotifyFun(func(*xgbutil.XUtil, xevent.ConfigureNotifyEvent) {
		changed()
	}).Connect(c.XUtil, win)
	xevent.PropertyNotifyFun(func(*xgbutil.XUtil, xevent.PropertyNotifyEvent) {
		changed()
	}).Connect(c.XUtil, win)
	return nil
}

// Unwatch drops the callbacks installed by Watch.
func (c *Connection) Unwatch(win xproto.Window) {
	xevent.Detach(c.XUtil, win)
}

// GetFrameExtents returns the decoration sizes published on a window.
func (c *Connection) GetFrameExtents(win xproto.Window) (left, right, top, bottom int, err error) {
	extents, err := ewmh.FrameExtentsGet(c.XUtil, win)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to get frame extents: %w", err)
	}
	return int(extents.Left), int(extents.Right), int(extents.Top), int(extents.Bottom), nil
}

// SetFrameExtents publishes the decoration sizes as _NET_FRAME_EXTENTS.
func (c *Connection) SetFrameExtents(win xproto.Window, left, right, top, bottom int) error {
	err := ewmh.FrameExtentsSet(c.XUtil, win, &ewmh.FrameExtents{
		Left:   left,
		Right:  right,
		Top:    top,
		Bottom: bottom,
	})
	if err != nil {
		return fmt.Errorf("failed to set frame extents: %w", err)
	}
	return nil
}
