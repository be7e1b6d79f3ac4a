package ssd

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/basicfont"

	"github.com/1broseidon/decor/internal/config"
	"github.com/1broseidon/decor/internal/geom"
	"github.com/1broseidon/decor/internal/render"
	"github.com/1broseidon/decor/internal/scene"
	"github.com/1broseidon/decor/internal/theme"
	"github.com/1broseidon/decor/internal/view"
)

type placed struct {
	Box       geom.Rect
	Transform scene.Transform
}

func shadowLayout(sub *subTree) map[PartType]placed {
	out := make(map[PartType]placed)
	for _, p := range sub.parts {
		out[p.Type] = placed{Box: p.Node.Bounds(), Transform: p.Buffer.Transform()}
	}
	return out
}

func TestShadowLayout(t *testing.T) {
	f := newFixture(t, func(c *config.Config) {
		c.Theme.Active.Shadow.Radius = 20
		c.Theme.Active.Shadow.Inset = 4
	})
	d := f.deco
	d.EnableShadow(true)

	w, th := 400, f.th()
	h := 300 + th
	r, in := 20, 4

	want := map[PartType]placed{
		PartCornerBottomRight: {geom.Rect{X: w - in, Y: -th + h - in, Width: r, Height: r}, scene.TransformNormal},
		PartCornerBottomLeft:  {geom.Rect{X: -r + in, Y: -th + h - in, Width: r, Height: r}, scene.Transform90},
		PartCornerTopLeft:     {geom.Rect{X: -r + in, Y: -th - r + in, Width: r, Height: r}, scene.Transform180},
		PartCornerTopRight:    {geom.Rect{X: w - in, Y: -th - r + in, Width: r, Height: r}, scene.Transform270},
		PartRight:             {geom.Rect{X: w - in, Y: -th + in, Width: r, Height: h - 2*in}, scene.TransformNormal},
		PartBottom:            {geom.Rect{X: in, Y: -th + h - in, Width: w - 2*in, Height: r}, scene.Transform90},
		PartLeft:              {geom.Rect{X: -r + in, Y: -th + in, Width: r, Height: h - 2*in}, scene.Transform180},
		PartTop:               {geom.Rect{X: in, Y: -th - r + in, Width: w - 2*in, Height: r}, scene.Transform270},
	}
	if diff := cmp.Diff(want, shadowLayout(d.shadow.state(theme.Active))); diff != "" {
		t.Fatalf("active shadow layout mismatch (-want +got):\n%s", diff)
	}

	// The inactive variant follows its own radius.
	ir := f.theme.Style(theme.Inactive).ShadowRadius
	got := shadowLayout(d.shadow.state(theme.Inactive))
	if br := got[PartCornerBottomRight].Box; br.Width != ir || br.X != w {
		t.Fatalf("inactive bottom-right = %v", br)
	}
}

func TestShadowSkippedWhileMaximized(t *testing.T) {
	f := newFixture(t)
	d := f.deco
	d.EnableShadow(true)
	br := getPart(d.shadow.state(theme.Active).parts, PartCornerBottomRight)
	prev := br.Node.Bounds()

	f.view.SetMaximized(view.AxisBoth)
	f.view.Resize(1920, 1040)
	d.UpdateGeometry()
	if d.shadow.tree.Enabled() {
		t.Fatalf("shadow visible while maximized")
	}
	if got := br.Node.Bounds(); got != prev {
		t.Fatalf("hidden shadow was laid out: %v", got)
	}

	f.view.SetMaximized(view.AxisNone)
	d.UpdateGeometry()
	if got := br.Node.Bounds(); got.X != 1920 {
		t.Fatalf("shadow not laid out after unmaximize: %v", got)
	}
}

func TestShadowCreatedWhileMaximizedStartsHidden(t *testing.T) {
	f := newFixture(t)
	f.view.SetMaximized(view.AxisBoth)
	f.deco.UpdateGeometry()

	f.deco.EnableShadow(true)
	if f.deco.shadow.tree.Enabled() {
		t.Fatalf("new shadow must start hidden on a maximized view")
	}
}

func extentBoxes(d *Decoration) map[PartType]geom.Rect {
	out := make(map[PartType]geom.Rect)
	for _, p := range d.extents.parts {
		x, y, enabled := p.Node.Coords()
		if !enabled {
			continue
		}
		w, h := p.Node.Size()
		out[p.Type] = geom.Rect{X: x, Y: y, Width: w, Height: h}
	}
	return out
}

func TestExtentsLayout(t *testing.T) {
	f := newFixture(t)
	d := f.deco
	bw, th, E := f.bw(), f.th(), ExtendedArea

	if x, y := d.extents.tree.Position(); x != -(bw+E) || y != -(th+bw+E) {
		t.Fatalf("extents at %d,%d", x, y)
	}

	ox, oy := 100-bw-E, 100-th-bw-E
	ow, oh := 400+2*bw+2*E, 300+th+2*bw+2*E
	cs := E + bw + ButtonWidth/2
	want := map[PartType]geom.Rect{
		PartCornerTopLeft:     {X: ox, Y: oy, Width: cs, Height: cs},
		PartCornerTopRight:    {X: ox + ow - cs, Y: oy, Width: cs, Height: cs},
		PartCornerBottomRight: {X: ox + ow - cs, Y: oy + oh - cs, Width: cs, Height: cs},
		PartCornerBottomLeft:  {X: ox, Y: oy + oh - cs, Width: cs, Height: cs},
		PartTop:               {X: ox + cs, Y: oy, Width: ow - 2*cs, Height: E},
		PartBottom:            {X: ox + cs, Y: oy + oh - E, Width: ow - 2*cs, Height: E},
		PartLeft:              {X: ox, Y: oy + cs, Width: E, Height: oh - 2*cs},
		PartRight:             {X: ox + ow - E, Y: oy + cs, Width: E, Height: oh - 2*cs},
	}
	if diff := cmp.Diff(want, extentBoxes(d)); diff != "" {
		t.Fatalf("extents mismatch (-want +got):\n%s", diff)
	}
	for _, p := range d.extents.parts {
		if c := p.Node.AsRect().Color(); c != transparent {
			t.Fatalf("%s extent is painted %v", p.Type, c)
		}
	}
}

func TestExtentsClippedToUsableArea(t *testing.T) {
	f := newFixture(t)
	d := f.deco
	f.view.SetUsableArea(geom.Rect{X: 0, Y: 0, Width: 1920, Height: 1080})
	f.view.Move(5, 100)
	d.UpdateGeometry()

	boxes := extentBoxes(d)
	left := boxes[PartLeft]
	if left.X != 0 || left.Width != 5-f.bw() {
		t.Fatalf("left extent not clipped: %v", left)
	}
	if tl := boxes[PartCornerTopLeft]; tl.X != 0 {
		t.Fatalf("top-left extent not clipped: %v", tl)
	}
	p := getPart(d.extents.parts, PartLeft)
	if p.Geometry.Width != left.Width {
		t.Fatalf("hit geometry %v does not follow the clipped box", p.Geometry)
	}
	if got := d.At(nil, -2, 250); got != PartNone {
		t.Fatalf("clipped-away extent reported %s", got)
	}

	f.view.Move(-20, 100)
	d.UpdateGeometry()
	boxes = extentBoxes(d)
	if _, ok := boxes[PartLeft]; ok {
		t.Fatalf("left extent outside the usable area must be disabled")
	}
	if _, ok := boxes[PartRight]; !ok {
		t.Fatalf("right extent must stay")
	}

	f.view.Move(300, 300)
	d.UpdateGeometry()
	if len(extentBoxes(d)) != 8 {
		t.Fatalf("extents must come back inside the usable area")
	}
}

func TestExtentsFollowUsableAreaChange(t *testing.T) {
	f := newFixture(t)
	d := f.deco
	E := ExtendedArea

	left := extentBoxes(d)[PartLeft]
	if left.X != 100-f.bw()-E || left.Width != E {
		t.Fatalf("unclipped left extent %v", left)
	}

	// A panel reserves the left 98 columns; the view itself does not move.
	f.view.SetUsableArea(geom.Rect{X: 98, Width: 1822, Height: 1080})
	d.UpdateGeometry()
	left = extentBoxes(d)[PartLeft]
	if left.X != 98 || left.Width != 100-f.bw()-98 {
		t.Fatalf("left extent not reclipped: %v", left)
	}

	before := f.scene.Mutations()
	d.UpdateGeometry()
	if f.scene.Mutations() != before {
		t.Fatalf("unchanged usable area must not relayout")
	}
}

func titlePart(d *Decoration, s theme.State) *Part {
	return getPart(d.titlebar.state(s).parts, PartTitle)
}

func TestTitleRenderedAndCentred(t *testing.T) {
	f := newFixture(t)
	d := f.deco
	text := render.NewTextRenderer(basicfont.Face7x13)

	for _, s := range theme.States {
		p := titlePart(d, s)
		w, h := p.Node.Size()
		if w != text.Measure("Terminal") {
			t.Fatalf("%s title width %d", s, w)
		}
		if x, y := p.Node.Position(); x != (400-w)/2 || y != (f.th()-h)/2 {
			t.Fatalf("%s title at %d,%d", s, x, y)
		}
	}
}

func TestTitleJustification(t *testing.T) {
	for _, tt := range []struct {
		justify string
		x       func(w, pad int) int
	}{
		{"left", func(w, pad int) int { return ButtonWidth + pad }},
		{"right", func(w, pad int) int { return ButtonWidth + (400 - ButtonWidth*ButtonCount) - w - pad }},
	} {
		t.Run(tt.justify, func(t *testing.T) {
			f := newFixture(t, func(c *config.Config) {
				c.Decoration.TitleJustify = tt.justify
				c.Theme.PaddingWidth = 5
			})
			p := titlePart(f.deco, theme.Active)
			w, _ := p.Node.Size()
			if x, _ := p.Node.Position(); x != tt.x(w, 5) {
				t.Fatalf("title x = %d, want %d", x, tt.x(w, 5))
			}
		})
	}
}

func TestTitleTruncationRoundTrip(t *testing.T) {
	f := newFixture(t)
	d := f.deco
	long := strings.Repeat("abcdefghij", 6)
	avail := 400 - ButtonWidth*ButtonCount - 2*f.theme.PaddingWidth

	f.view.SetTitle(long)
	d.UpdateTitle()
	for _, s := range theme.States {
		st := d.state.title.states[s]
		if !st.truncated || st.width > avail {
			t.Fatalf("%s: %+v, want truncated within %d", s, st, avail)
		}
		if w, _ := titlePart(d, s).Node.Size(); w != st.width {
			t.Fatalf("%s: buffer width %d, cached %d", s, w, st.width)
		}
	}

	old := d.titleTextures[theme.Active]
	f.view.Resize(1000, 300)
	d.UpdateGeometry()
	full := render.NewTextRenderer(basicfont.Face7x13).Measure(long)
	for _, s := range theme.States {
		st := d.state.title.states[s]
		if st.truncated || st.width != full {
			t.Fatalf("%s after widening: %+v, want full width %d", s, st, full)
		}
	}
	if !old.Destroyed() {
		t.Fatalf("replaced title texture must be destroyed")
	}
}

func TestTitleCacheSkipsUnchanged(t *testing.T) {
	f := newFixture(t)
	d := f.deco
	tex := d.titleTextures[theme.Active]

	d.UpdateTitle()
	f.view.Resize(500, 300)
	d.UpdateGeometry()
	if d.titleTextures[theme.Active] != tex {
		t.Fatalf("unchanged fitting title was re-rendered")
	}

	f.view.SetTitle("Editor")
	d.UpdateTitle()
	if d.titleTextures[theme.Active] == tex {
		t.Fatalf("changed title was not re-rendered")
	}
}

func TestTitleHiddenWithoutRoom(t *testing.T) {
	f := newFixture(t)
	d := f.deco

	f.view.Resize(MinViewWidth, 300)
	d.UpdateGeometry()
	if titlePart(d, theme.Active).Node.Enabled() {
		t.Fatalf("title must be hidden when buttons fill the titlebar")
	}

	f.view.Resize(400, 300)
	d.UpdateGeometry()
	if !titlePart(d, theme.Active).Node.Enabled() {
		t.Fatalf("title must come back")
	}
}

func TestTitleWithoutRenderer(t *testing.T) {
	th, err := theme.Build(config.DefaultConfig(), testFontHeight)
	if err != nil {
		t.Fatalf("build theme: %v", err)
	}
	defer th.Destroy()

	s := scene.New()
	v := view.New(s.Root(), geom.Rect{X: 0, Y: 30, Width: 300, Height: 200}, "untitled")
	d := NewManager(th, nil).Create(v, false)
	if d == nil {
		t.Fatalf("Create returned nil")
	}
	if tex := titlePart(d, theme.Inactive).Buffer.Texture(); tex != nil {
		t.Fatalf("title rendered without a renderer")
	}
	d.Destroy()
}
