package ssd

import "testing"

func TestResizeEdges_Totality(t *testing.T) {
	want := map[PartType]Edges{
		PartTop:               EdgeTop,
		PartRight:             EdgeRight,
		PartBottom:            EdgeBottom,
		PartLeft:              EdgeLeft,
		PartCornerTopLeft:     EdgeTop | EdgeLeft,
		PartCornerTopRight:    EdgeTop | EdgeRight,
		PartCornerBottomRight: EdgeBottom | EdgeRight,
		PartCornerBottomLeft:  EdgeBottom | EdgeLeft,
	}
	all := EdgeTop | EdgeBottom | EdgeLeft | EdgeRight

	for _, typ := range AllPartTypes() {
		got := ResizeEdges(typ)
		if got&^all != 0 {
			t.Fatalf("%s: stray bits in %b", typ, got)
		}
		if got != want[typ] {
			t.Fatalf("ResizeEdges(%s) = %s, want %s", typ, got, want[typ])
		}
	}
	if ResizeEdges(partEndMarker) != EdgeNone || ResizeEdges(-1) != EdgeNone {
		t.Fatalf("out of range types must map to no edges")
	}
}

func TestEdgesString(t *testing.T) {
	if got := (EdgeTop | EdgeLeft).String(); got != "top|left" {
		t.Fatalf("String = %q", got)
	}
	if got := EdgeNone.String(); got != "none" {
		t.Fatalf("String = %q", got)
	}
}

func TestIsButton(t *testing.T) {
	for _, typ := range AllPartTypes() {
		want := typ == PartButtonClose || typ == PartButtonMaximize ||
			typ == PartButtonIconify || typ == PartButtonWindowMenu
		if IsButton(typ) != want {
			t.Fatalf("IsButton(%s) = %v", typ, !want)
		}
	}
}

func TestPartContains(t *testing.T) {
	tests := []struct {
		whole, candidate PartType
		want             bool
	}{
		{PartTitlebar, PartTitlebar, true},
		{PartTitlebar, PartButtonClose, true},
		{PartTitlebar, PartTitle, true},
		{PartTitlebar, PartCornerTopLeft, false},
		{PartFrame, PartClient, true},
		{PartFrame, PartLeft, true},
		{PartFrame, PartRoot, false},
		{PartTop, PartCornerTopLeft, true},
		{PartTop, PartCornerTopRight, true},
		{PartTop, PartCornerBottomLeft, false},
		{PartRight, PartCornerBottomRight, true},
		{PartBottom, PartCornerBottomLeft, true},
		{PartLeft, PartCornerTopLeft, true},
		{PartLeft, PartCornerTopRight, false},
		{PartClient, PartTitle, false},
		{PartNone, PartNone, true},
		{partEndMarker, PartNone, false},
		{PartTitlebar, partEndMarker, false},
	}
	for _, tt := range tests {
		if got := PartContains(tt.whole, tt.candidate); got != tt.want {
			t.Fatalf("PartContains(%s, %s) = %v, want %v", tt.whole, tt.candidate, got, tt.want)
		}
	}
}

func TestParsePartType(t *testing.T) {
	for _, typ := range AllPartTypes() {
		got, ok := ParsePartType(typ.String())
		if !ok || got != typ {
			t.Fatalf("ParsePartType(%q) = %s, %v", typ.String(), got, ok)
		}
	}
	if _, ok := ParsePartType("invalid"); ok {
		t.Fatalf("invalid must not parse")
	}
	if got := partEndMarker.String(); got != "invalid" {
		t.Fatalf("String = %q", got)
	}
}
