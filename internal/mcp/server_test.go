package mcp

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/basicfont"

	"github.com/1broseidon/decor/internal/config"
	"github.com/1broseidon/decor/internal/geom"
	"github.com/1broseidon/decor/internal/inspect"
	"github.com/1broseidon/decor/internal/render"
	"github.com/1broseidon/decor/internal/ssd"
	"github.com/1broseidon/decor/internal/theme"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	th, err := theme.Build(config.DefaultConfig(), 13)
	if err != nil {
		t.Fatalf("build theme: %v", err)
	}
	t.Cleanup(th.Destroy)
	mgr := ssd.NewManager(th, render.NewTextRenderer(basicfont.Face7x13))
	return NewServer(mgr, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func intPtr(v int) *int { return &v }

func TestDecorationLayout_Defaults(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleDecorationLayout(context.Background(), nil, DecorationLayoutInput{})
	if err != nil {
		t.Fatalf("decoration_layout: %v", err)
	}
	if diff := cmp.Diff(ssd.Border{Top: 20, Right: 1, Bottom: 1, Left: 1}, out.Margin); diff != "" {
		t.Fatalf("margin mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(geom.Rect{X: 99, Y: 80, Width: 402, Height: 321}, out.MaxExtents); diff != "" {
		t.Fatalf("max extents mismatch (-want +got):\n%s", diff)
	}
	for _, n := range out.Nodes {
		if !n.Enabled {
			t.Fatalf("disabled node %q listed without include_hidden", n.Name)
		}
	}

	_, all, err := s.handleDecorationLayout(context.Background(), nil, DecorationLayoutInput{IncludeHidden: true})
	if err != nil {
		t.Fatalf("decoration_layout: %v", err)
	}
	if len(all.Nodes) <= len(out.Nodes) {
		t.Fatalf("include_hidden listed %d nodes, default %d", len(all.Nodes), len(out.Nodes))
	}
}

func TestDecorationLayout_Maximized(t *testing.T) {
	s := newTestServer(t)

	in := DecorationLayoutInput{Window: WindowInput{
		X: intPtr(0), Y: intPtr(19), Width: intPtr(1920), Height: intPtr(1061),
		Maximized: "both",
	}}
	_, out, err := s.handleDecorationLayout(context.Background(), nil, in)
	if err != nil {
		t.Fatalf("decoration_layout: %v", err)
	}
	if out.Margin != (ssd.Border{Top: 19}) {
		t.Fatalf("maximized margin = %+v", out.Margin)
	}
}

func TestDecorationLayout_BadInput(t *testing.T) {
	s := newTestServer(t)

	for name, w := range map[string]WindowInput{
		"axis":  {Maximized: "diagonal"},
		"width": {Width: intPtr(50)},
	} {
		if _, _, err := s.handleDecorationLayout(context.Background(), nil, DecorationLayoutInput{Window: w}); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestHitTest(t *testing.T) {
	s := newTestServer(t)

	in := HitTestInput{Points: []Point{{487, 90}, {300, 250}, {92, 73}}}
	_, out, err := s.handleHitTest(context.Background(), nil, in)
	if err != nil {
		t.Fatalf("hit_test: %v", err)
	}
	want := []inspect.Hit{
		{X: 487, Y: 90, Part: "button-close", Edges: "none", IsButton: true},
		{X: 300, Y: 250, Part: "client", Edges: "none"},
		{X: 92, Y: 73, Part: "corner-top-left", Edges: "top|left"},
	}
	if diff := cmp.Diff(want, out.Hits); diff != "" {
		t.Fatalf("hits mismatch (-want +got):\n%s", diff)
	}

	if _, _, err := s.handleHitTest(context.Background(), nil, HitTestInput{}); err == nil {
		t.Fatalf("expected error without points")
	}
}

func TestHitTest_InactiveWindowStillClassifies(t *testing.T) {
	s := newTestServer(t)

	in := HitTestInput{Window: WindowInput{Inactive: true}, Points: []Point{{487, 90}}}
	_, out, err := s.handleHitTest(context.Background(), nil, in)
	if err != nil {
		t.Fatalf("hit_test: %v", err)
	}
	if out.Hits[0].Part != "button-close" {
		t.Fatalf("inactive close button = %s", out.Hits[0].Part)
	}
}

func TestResizeEdges(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleResizeEdges(context.Background(), nil, ResizeEdgesInput{Part: "corner-bottom-right"})
	if err != nil {
		t.Fatalf("resize_edges: %v", err)
	}
	want := ResizeEdgesOutput{Edges: "bottom|right", Bottom: true, Right: true}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	if _, _, err := s.handleResizeEdges(context.Background(), nil, ResizeEdgesInput{Part: "nope"}); err == nil {
		t.Fatalf("expected error for unknown part")
	}
}

func TestPartContains(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		whole, candidate string
		want             bool
	}{
		{"titlebar", "button-close", true},
		{"frame", "client", true},
		{"top", "corner-bottom-left", false},
	}
	for _, tt := range tests {
		_, out, err := s.handlePartContains(context.Background(), nil, PartContainsInput{Whole: tt.whole, Candidate: tt.candidate})
		if err != nil {
			t.Fatalf("part_contains(%s, %s): %v", tt.whole, tt.candidate, err)
		}
		if out.Contains != tt.want {
			t.Fatalf("part_contains(%s, %s) = %v", tt.whole, tt.candidate, out.Contains)
		}
	}
}

func TestListParts(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleListParts(context.Background(), nil, struct{}{})
	if err != nil {
		t.Fatalf("list_parts: %v", err)
	}
	if len(out.Parts) != len(ssd.AllPartTypes()) || out.Parts[0] != "none" || out.Parts[1] != "button-close" {
		t.Fatalf("parts = %v", out.Parts)
	}
}
