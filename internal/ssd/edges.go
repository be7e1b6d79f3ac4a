package ssd

import (
	"slices"
	"strings"
)

// Edges is a bitmask of the window sides a resize affects.
type Edges uint32

const (
	EdgeNone   Edges = 0
	EdgeTop    Edges = 1 << 0
	EdgeBottom Edges = 1 << 1
	EdgeLeft   Edges = 1 << 2
	EdgeRight  Edges = 1 << 3
)

func (e Edges) String() string {
	if e == EdgeNone {
		return "none"
	}
	var names []string
	for _, n := range []struct {
		edge Edges
		name string
	}{
		{EdgeTop, "top"},
		{EdgeBottom, "bottom"},
		{EdgeLeft, "left"},
		{EdgeRight, "right"},
	} {
		if e&n.edge != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// ResizeEdges returns the edges a drag on a part of type t resizes.
func ResizeEdges(t PartType) Edges {
	switch t {
	case PartTop:
		return EdgeTop
	case PartRight:
		return EdgeRight
	case PartBottom:
		return EdgeBottom
	case PartLeft:
		return EdgeLeft
	case PartCornerTopLeft:
		return EdgeTop | EdgeLeft
	case PartCornerTopRight:
		return EdgeTop | EdgeRight
	case PartCornerBottomRight:
		return EdgeBottom | EdgeRight
	case PartCornerBottomLeft:
		return EdgeBottom | EdgeLeft
	default:
		return EdgeNone
	}
}

// IsButton reports whether t is one of the titlebar buttons.
func IsButton(t PartType) bool {
	return t >= PartButtonClose && t <= PartButtonWindowMenu
}

func partRange(from, to PartType) []PartType {
	var out []PartType
	for t := from; t <= to; t++ {
		out = append(out, t)
	}
	return out
}

// containment lists, for each composite part, the parts it contains besides
// itself.
var containment = map[PartType][]PartType{
	PartTitlebar: partRange(PartButtonClose, PartTitle),
	PartFrame:    partRange(PartButtonClose, PartClient),
	PartTop:      {PartCornerTopLeft, PartCornerTopRight},
	PartRight:    {PartCornerTopRight, PartCornerBottomRight},
	PartBottom:   {PartCornerBottomRight, PartCornerBottomLeft},
	PartLeft:     {PartCornerTopLeft, PartCornerBottomLeft},
}

// PartContains reports whether candidate is whole or lies within it.
func PartContains(whole, candidate PartType) bool {
	if !whole.Valid() || !candidate.Valid() {
		return false
	}
	if whole == candidate {
		return true
	}
	return slices.Contains(containment[whole], candidate)
}
