package x11

import (
	"fmt"
	"slices"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/1broseidon/decor/internal/geom"
)

// Monitor is one enabled CRTC in root coordinates.
type Monitor struct {
	ID     int
	Name   string
	Bounds geom.Rect
}

// GetMonitors lists the enabled outputs via RandR. Outputs whose name
// cannot be read are called "crtc<N>".
func (c *Connection) GetMonitors() ([]Monitor, error) {
	xc := c.XUtil.Conn()
	if err := randr.Init(xc); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}
	res, err := randr.GetScreenResources(xc, c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	monitors := make([]Monitor, 0, len(res.Crtcs))
	for id, crtc := range res.Crtcs {
		info, err := randr.GetCrtcInfo(xc, crtc, res.ConfigTimestamp).Reply()
		if err != nil || len(info.Outputs) == 0 || info.Width == 0 || info.Height == 0 {
			continue
		}
		m := Monitor{
			ID:     id,
			Name:   fmt.Sprintf("crtc%d", id),
			Bounds: geom.Rect{X: int(info.X), Y: int(info.Y), Width: int(info.Width), Height: int(info.Height)},
		}
		if out, err := randr.GetOutputInfo(xc, info.Outputs[0], res.ConfigTimestamp).Reply(); err == nil {
			m.Name = string(out.Name)
		}
		monitors = append(monitors, m)
	}
	return monitors, nil
}

// MonitorFor returns the monitor holding the centre of box, or the one it
// overlaps most.
func MonitorFor(monitors []Monitor, box geom.Rect) (Monitor, bool) {
	cx := float64(box.X) + float64(box.Width)/2
	cy := float64(box.Y) + float64(box.Height)/2
	for _, m := range monitors {
		if m.Bounds.ContainsPoint(cx, cy) {
			return m, true
		}
	}

	best, bestArea := -1, 0
	for i, m := range monitors {
		isect := m.Bounds.Intersect(box)
		if area := isect.Width * isect.Height; area > bestArea {
			best, bestArea = i, area
		}
	}
	if best < 0 {
		return Monitor{}, false
	}
	return monitors[best], true
}

// UsableArea returns the part of m not reserved by docks and panels. Dock
// struts are preferred; the EWMH work area is the fallback.
func (c *Connection) UsableArea(m Monitor) geom.Rect {
	if usable, ok := c.strutArea(m); ok {
		return usable
	}

	areas, err := ewmh.WorkareaGet(c.XUtil)
	if err != nil || len(areas) == 0 {
		return m.Bounds
	}
	wa := areas[0]
	if desk, err := ewmh.CurrentDesktopGet(c.XUtil); err == nil && int(desk) < len(areas) {
		wa = areas[desk]
	}
	isect := m.Bounds.Intersect(geom.Rect{X: int(wa.X), Y: int(wa.Y), Width: int(wa.Width), Height: int(wa.Height)})
	if isect.Empty() {
		return m.Bounds
	}
	return isect
}

func (c *Connection) strutArea(m Monitor) (geom.Rect, bool) {
	rg, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return geom.Rect{}, false
	}
	root := geom.Rect{Width: int(rg.Width), Height: int(rg.Height)}

	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return geom.Rect{}, false
	}

	var struts []ewmh.WmStrutPartial
	for _, win := range clients {
		types, err := ewmh.WmWindowTypeGet(c.XUtil, win)
		if err != nil || !slices.Contains(types, "_NET_WM_WINDOW_TYPE_DOCK") {
			continue
		}
		if sp, err := ewmh.WmStrutPartialGet(c.XUtil, win); err == nil {
			struts = append(struts, *sp)
		} else if s, err := ewmh.WmStrutGet(c.XUtil, win); err == nil {
			// legacy _NET_WM_STRUT spans the whole edge
			struts = append(struts, ewmh.WmStrutPartial{
				Left:       s.Left,
				Right:      s.Right,
				Top:        s.Top,
				Bottom:     s.Bottom,
				LeftEndY:   uint(root.Height - 1),
				RightEndY:  uint(root.Height - 1),
				TopEndX:    uint(root.Width - 1),
				BottomEndX: uint(root.Width - 1),
			})
		}
	}
	return applyStruts(m.Bounds, root, struts)
}

// applyStruts shrinks monitor by every strut reaching into it. It reports
// false when no strut applies.
func applyStruts(monitor, root geom.Rect, struts []ewmh.WmStrutPartial) (geom.Rect, bool) {
	var left, right, top, bottom int
	for _, sp := range struts {
		if sp.Top > 0 {
			band := geom.Rect{X: int(sp.TopStartX), Y: 0, Width: int(sp.TopEndX) - int(sp.TopStartX) + 1, Height: int(sp.Top)}
			top = max(top, monitor.Intersect(band).Height)
		}
		if sp.Bottom > 0 {
			band := geom.Rect{X: int(sp.BottomStartX), Y: root.Height - int(sp.Bottom), Width: int(sp.BottomEndX) - int(sp.BottomStartX) + 1, Height: int(sp.Bottom)}
			bottom = max(bottom, monitor.Intersect(band).Height)
		}
		if sp.Left > 0 {
			band := geom.Rect{X: 0, Y: int(sp.LeftStartY), Width: int(sp.Left), Height: int(sp.LeftEndY) - int(sp.LeftStartY) + 1}
			left = max(left, monitor.Intersect(band).Width)
		}
		if sp.Right > 0 {
			band := geom.Rect{X: root.Width - int(sp.Right), Y: int(sp.RightStartY), Width: int(sp.Right), Height: int(sp.RightEndY) - int(sp.RightStartY) + 1}
			right = max(right, monitor.Intersect(band).Width)
		}
	}

	if left == 0 && right == 0 && top == 0 && bottom == 0 {
		return monitor, false
	}
	return geom.Rect{
		X:      monitor.X + left,
		Y:      monitor.Y + top,
		Width:  max(monitor.Width-left-right, 1),
		Height: max(monitor.Height-top-bottom, 1),
	}, true
}
