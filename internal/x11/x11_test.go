package x11

import (
	"image/color"
	"testing"

	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/1broseidon/decor/internal/geom"
	"github.com/1broseidon/decor/internal/view"
)

var dualHead = []Monitor{
	{ID: 0, Name: "DP-1", Bounds: geom.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
	{ID: 1, Name: "DP-2", Bounds: geom.Rect{X: 1920, Y: 0, Width: 1920, Height: 1080}},
}

func TestMonitorFor(t *testing.T) {
	tests := []struct {
		name string
		box  geom.Rect
		want string
		ok   bool
	}{
		{"centre on first", geom.Rect{X: 100, Y: 100, Width: 400, Height: 300}, "DP-1", true},
		{"centre on second", geom.Rect{X: 1800, Y: 100, Width: 600, Height: 300}, "DP-2", true},
		{"centre off screen, overlap wins", geom.Rect{X: 3700, Y: 900, Width: 400, Height: 400}, "DP-2", true},
		{"nowhere", geom.Rect{X: 5000, Y: 5000, Width: 10, Height: 10}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MonitorFor(dualHead, tt.box)
			if ok != tt.ok || got.Name != tt.want {
				t.Fatalf("MonitorFor = %q, %v; want %q, %v", got.Name, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestApplyStruts(t *testing.T) {
	root := geom.Rect{Width: 3840, Height: 1080}
	struts := []ewmh.WmStrutPartial{
		{Top: 30, TopStartX: 0, TopEndX: 1919},
		{Bottom: 40, BottomStartX: 1920, BottomEndX: 3839},
	}

	first, ok := applyStruts(dualHead[0].Bounds, root, struts)
	if !ok || first != (geom.Rect{X: 0, Y: 30, Width: 1920, Height: 1050}) {
		t.Fatalf("first monitor = %v, %v", first, ok)
	}
	second, ok := applyStruts(dualHead[1].Bounds, root, struts)
	if !ok || second != (geom.Rect{X: 1920, Y: 0, Width: 1920, Height: 1040}) {
		t.Fatalf("second monitor = %v, %v", second, ok)
	}

	if got, ok := applyStruts(dualHead[1].Bounds, root, struts[:1]); ok || got != dualHead[1].Bounds {
		t.Fatalf("strut on another monitor must not apply, got %v, %v", got, ok)
	}
}

func TestParseWmState(t *testing.T) {
	axis, fs, shaded := parseWmState([]string{"_NET_WM_STATE_MAXIMIZED_VERT", "_NET_WM_STATE_ABOVE"})
	if axis != view.AxisVertical || fs || shaded {
		t.Fatalf("got %s %v %v", axis, fs, shaded)
	}

	axis, fs, shaded = parseWmState([]string{
		"_NET_WM_STATE_MAXIMIZED_HORZ",
		"_NET_WM_STATE_MAXIMIZED_VERT",
		"_NET_WM_STATE_FULLSCREEN",
		"_NET_WM_STATE_SHADED",
	})
	if axis != view.AxisBoth || !fs || !shaded {
		t.Fatalf("got %s %v %v", axis, fs, shaded)
	}
}

func TestPixel(t *testing.T) {
	if got := pixel(color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}); got != 0x123456 {
		t.Fatalf("pixel = %#x", got)
	}
	if !transparent(nil) || !transparent(color.NRGBA{}) || transparent(color.Black) {
		t.Fatalf("transparent misclassified")
	}
}
