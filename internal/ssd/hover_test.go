package ssd

import (
	"testing"

	"github.com/1broseidon/decor/internal/theme"
)

func findButton(t *testing.T, d *Decoration, typ PartType, s theme.State) *button {
	t.Helper()
	part := getPart(d.titlebar.state(s).parts, typ)
	for _, b := range d.buttons {
		if b.node == part.Node {
			return b
		}
	}
	t.Fatalf("no %s %s button", s, typ)
	return nil
}

func TestUpdateButtonHover(t *testing.T) {
	f := newFixture(t)
	m := f.mgr
	maxBtn := findButton(t, f.deco, PartButtonMaximize, theme.Active)
	closeBtn := findButton(t, f.deco, PartButtonClose, theme.Active)

	m.UpdateButtonHover(&maxBtn.icon.Node)
	if got := m.Hover(); got.Node != maxBtn.hover || got.View != View(f.view) {
		t.Fatalf("hover = %+v", got)
	}
	if !maxBtn.hover.Enabled() {
		t.Fatalf("hover overlay not shown")
	}

	before := f.scene.Mutations()
	m.UpdateButtonHover(&maxBtn.bg.Node)
	if f.scene.Mutations() != before {
		t.Fatalf("re-hovering the same button must not write")
	}

	m.UpdateButtonHover(closeBtn.node)
	if maxBtn.hover.Enabled() || !closeBtn.hover.Enabled() {
		t.Fatalf("hover did not move to close")
	}
	if m.Hover().Node != closeBtn.hover {
		t.Fatalf("hover state not updated")
	}

	m.UpdateButtonHover(f.view.Content())
	if closeBtn.hover.Enabled() || m.Hover() != (HoverState{}) {
		t.Fatalf("non-button node must clear hover")
	}

	m.UpdateButtonHover(closeBtn.node)
	m.UpdateButtonHover(nil)
	if closeBtn.hover.Enabled() || m.Hover() != (HoverState{}) {
		t.Fatalf("nil node must clear hover")
	}
}

func TestButtonHoverOverlayOnTop(t *testing.T) {
	f := newFixture(t)
	b := findButton(t, f.deco, PartButtonIconify, theme.Active)

	children := b.node.AsTree().Children()
	if children[len(children)-1] != b.hover {
		t.Fatalf("hover overlay must be the topmost child")
	}
	if b.hover.Enabled() {
		t.Fatalf("hover overlay must start hidden")
	}
	iw, ih := b.icon.Node.Size()
	if x, y := b.icon.Node.Position(); x != (ButtonWidth-iw)/2 || y != (f.th()-ih)/2 {
		t.Fatalf("icon at %d,%d not centred", x, y)
	}
}

func TestIconDestroyDetachesButtons(t *testing.T) {
	f := newFixture(t)
	m := f.mgr
	b := findButton(t, f.deco, PartButtonClose, theme.Active)
	m.UpdateButtonHover(b.node)

	f.theme.Destroy()

	if len(m.buttons) != 0 {
		t.Fatalf("manager still tracks %d buttons", len(m.buttons))
	}
	if m.Hover() != (HoverState{}) || b.hover.Enabled() {
		t.Fatalf("hover must be cleared when its button detaches")
	}
	for _, b := range f.deco.buttons {
		if b.decoration != nil || b.view != nil || b.listener != nil {
			t.Fatalf("%s still attached", b.typ)
		}
		if b.icon.Texture() != nil {
			t.Fatalf("%s still shows the destroyed icon", b.typ)
		}
	}

	// Detached buttons no longer react.
	m.UpdateButtonHover(b.node)
	if m.Hover() != (HoverState{}) {
		t.Fatalf("detached button took hover")
	}
	f.deco.Destroy()
}

func TestHiddenTitlebarClearsHover(t *testing.T) {
	f := newFixture(t)
	m := f.mgr
	closeBtn := findButton(t, f.deco, PartButtonClose, theme.Active)

	m.UpdateButtonHover(closeBtn.node)
	if m.Hover().Node == nil {
		t.Fatalf("close not hovered")
	}

	f.deco.SetTitlebarVisible(false)
	if m.Hover() != (HoverState{}) {
		t.Fatalf("hover kept after hiding the titlebar: %+v", m.Hover())
	}
	if closeBtn.hover.Enabled() {
		t.Fatalf("hover overlay still enabled")
	}

	other := newFixture(t)
	otherClose := findButton(t, other.deco, PartButtonClose, theme.Active)
	m.UpdateButtonHover(closeBtn.node)
	f.deco.SetTitlebarVisible(true)
	m.clearHover(other.deco)
	if m.Hover().Node != closeBtn.hover || otherClose.hover.Enabled() {
		t.Fatalf("clearing another decoration must keep this hover")
	}
}
