//go:build linux

package platform

import (
	"context"
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/decor/internal/geom"
	"github.com/1broseidon/decor/internal/ssd"
	"github.com/1broseidon/decor/internal/x11"
)

// LinuxBackend wraps an X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn     *x11.Connection
	overlay  *x11.FrameOverlay
	monitors []x11.Monitor
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{
		conn:    conn,
		overlay: x11.NewFrameOverlay(conn),
	}
}

// NewBackend opens display, or $DISPLAY when display is empty.
func NewBackend(display string) (Backend, error) {
	conn, err := x11.NewConnectionDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return NewLinuxBackend(conn), nil
}

// Disconnect destroys the overlay and closes the X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b == nil || b.conn == nil {
		return
	}
	b.overlay.Close()
	b.conn.Close()
}

// EventLoop runs the X11 event loop until ctx is done.
func (b *LinuxBackend) EventLoop(ctx context.Context) {
	if b != nil && b.conn != nil {
		b.conn.EventLoop(ctx)
	}
}

// ActiveWindow returns the currently focused window ID.
func (b *LinuxBackend) ActiveWindow() (WindowID, error) {
	wid, err := b.conn.ActiveWindow()
	if err != nil {
		return 0, err
	}
	return WindowID(wid), nil
}

// Window reads the geometry, title and state of a window.
func (b *LinuxBackend) Window(id WindowID) (Window, error) {
	info, err := b.conn.WindowInfo(xproto.Window(id))
	if err != nil {
		return Window{}, err
	}
	return Window{
		ID:         id,
		Title:      info.Title,
		Box:        info.Box,
		Maximized:  info.Maximized,
		Fullscreen: info.Fullscreen,
		Shaded:     info.Shaded,
	}, nil
}

// UsableArea returns the strut-reduced area of the monitor showing box.
// Monitors are queried once and cached.
func (b *LinuxBackend) UsableArea(box geom.Rect) (geom.Rect, bool) {
	if b.monitors == nil {
		monitors, err := b.conn.GetMonitors()
		if err != nil {
			return geom.Rect{}, false
		}
		b.monitors = monitors
	}
	m, ok := x11.MonitorFor(b.monitors, box)
	if !ok {
		return geom.Rect{}, false
	}
	return b.conn.UsableArea(m), true
}

func (b *LinuxBackend) Watch(id WindowID, changed func()) error {
	return b.conn.Watch(xproto.Window(id), changed)
}

func (b *LinuxBackend) Unwatch(id WindowID) {
	b.conn.Unwatch(xproto.Window(id))
}

// PublishFrameExtents sets _NET_FRAME_EXTENTS on the window.
func (b *LinuxBackend) PublishFrameExtents(id WindowID, margin ssd.Border) error {
	return b.conn.SetFrameExtents(xproto.Window(id), margin.Left, margin.Right, margin.Top, margin.Bottom)
}

// Render mirrors surfaces onto override-redirect windows.
func (b *LinuxBackend) Render(surfaces []Surface) error {
	out := make([]x11.Surface, 0, len(surfaces))
	for _, s := range surfaces {
		out = append(out, x11.Surface{Key: s.Key, Box: s.Box, Color: s.Color, Image: s.Image})
	}
	return b.overlay.Render(out)
}

func (b *LinuxBackend) SetPointerHandlers(h PointerHandlers) {
	b.overlay.OnMotion = h.Motion
	if h.Press == nil {
		b.overlay.OnPress = nil
		return
	}
	b.overlay.OnPress = func(x, y int, button xproto.Button) {
		h.Press(x, y, int(button))
	}
}
