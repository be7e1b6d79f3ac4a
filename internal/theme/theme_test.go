package theme

import (
	"testing"

	"github.com/1broseidon/decor/internal/config"
)

func TestBuild_TextureSizes(t *testing.T) {
	cfg := config.DefaultConfig()
	th, err := Build(cfg, 13)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer th.Destroy()

	if th.TitleHeight != 13+2*cfg.Theme.PaddingHeight {
		t.Fatalf("unexpected title height %d", th.TitleHeight)
	}
	for _, s := range States {
		style := th.Style(s)
		w, h := style.CornerTopLeft.Size()
		if w != ButtonWidth+th.BorderWidth || h != th.TitleHeight+th.BorderWidth {
			t.Fatalf("%s corner size %dx%d", s, w, h)
		}
		if w2, h2 := style.CornerTopRight.Size(); w2 != w || h2 != h {
			t.Fatalf("%s right corner size %dx%d", s, w2, h2)
		}

		r := style.ShadowRadius
		if w, h := style.ShadowCorner.Size(); w != r || h != r {
			t.Fatalf("%s shadow corner %dx%d, want %dx%d", s, w, h, r, r)
		}
		if w, h := style.ShadowEdge.Size(); w != r || h != 1 {
			t.Fatalf("%s shadow edge %dx%d, want %dx1", s, w, h, r)
		}
		for kind := ButtonClose; kind < buttonKindCount; kind++ {
			if style.Icon(kind) == nil {
				t.Fatalf("%s missing %s icon", s, kind)
			}
		}
	}
}

func TestBuild_ShadowCornerFades(t *testing.T) {
	th, err := Build(config.DefaultConfig(), 10)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer th.Destroy()

	img := th.Style(Active).ShadowCorner.Image()
	_, _, _, near := img.At(0, 0).RGBA()
	r := th.Style(Active).ShadowRadius
	_, _, _, far := img.At(r-1, r-1).RGBA()
	if near == 0 || far >= near {
		t.Fatalf("expected alpha to fade from the corner, near=%d far=%d", near, far)
	}
}

func TestBuild_NoShadowWithZeroRadius(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Theme.Inactive.Shadow.Radius = 0
	th, err := Build(cfg, 10)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer th.Destroy()
	if th.Style(Inactive).ShadowCorner != nil || th.Style(Inactive).ShadowEdge != nil {
		t.Fatalf("expected no inactive shadow textures")
	}
}

func TestBuild_CornerRadiusClamped(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Decoration.CornerRadius = 100
	cfg.Theme.PaddingHeight = 0
	th, err := Build(cfg, 10)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer th.Destroy()
	if th.CornerRadius != th.TitleHeight-1 {
		t.Fatalf("corner radius %d not clamped below title height %d", th.CornerRadius, th.TitleHeight)
	}
}

func TestBuild_BadJustify(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Decoration.TitleJustify = "middle"
	if _, err := Build(cfg, 10); err == nil {
		t.Fatalf("expected error")
	}
}

func TestDestroyNotifiesIconSubscribers(t *testing.T) {
	th, err := Build(config.DefaultConfig(), 10)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	fired := 0
	th.Style(Active).Icon(ButtonClose).OnDestroy(func() { fired++ })
	th.Destroy()
	th.Destroy()
	if fired != 1 {
		t.Fatalf("expected one notification, got %d", fired)
	}
}

func TestStateFor(t *testing.T) {
	if StateFor(true) != Active || StateFor(false) != Inactive {
		t.Fatalf("StateFor mismatch")
	}
}
