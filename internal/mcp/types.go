package mcp

import (
	"github.com/1broseidon/decor/internal/geom"
	"github.com/1broseidon/decor/internal/inspect"
	"github.com/1broseidon/decor/internal/ssd"
)

// WindowInput describes the window to decorate. Omitted fields take the
// values of a focused 400x300 window at 100,100 on a 1920x1080 output.
type WindowInput struct {
	X            *int   `json:"x,omitempty" jsonschema:"Content box left edge in layout coordinates (default 100)"`
	Y            *int   `json:"y,omitempty" jsonschema:"Content box top edge in layout coordinates (default 100)"`
	Width        *int   `json:"width,omitempty" jsonschema:"Content box width, at least 104 (default 400)"`
	Height       *int   `json:"height,omitempty" jsonschema:"Content box height (default 300)"`
	Title        string `json:"title,omitempty" jsonschema:"Window title (default Terminal)"`
	Inactive     bool   `json:"inactive,omitempty" jsonschema:"Use the unfocused variant"`
	Maximized    string `json:"maximized,omitempty" jsonschema:"Maximize axis: none, horizontal, vertical or both"`
	Fullscreen   bool   `json:"fullscreen,omitempty" jsonschema:"Fullscreen window (no decoration)"`
	Shaded       bool   `json:"shaded,omitempty" jsonschema:"Rolled up to the titlebar"`
	HideTitlebar bool   `json:"hide_titlebar,omitempty" jsonschema:"Border-only decoration"`
	Shadow       bool   `json:"shadow,omitempty" jsonschema:"Build the drop shadow"`
	OutputWidth  *int   `json:"output_width,omitempty" jsonschema:"Usable output width starting at 0,0 (default 1920; 0 means no output)"`
	OutputHeight *int   `json:"output_height,omitempty" jsonschema:"Usable output height starting at 0,0 (default 1080; 0 means no output)"`
}

// DecorationLayoutInput is the input of decoration_layout.
type DecorationLayoutInput struct {
	Window        WindowInput `json:"window,omitempty" jsonschema:"Window to decorate"`
	IncludeHidden bool        `json:"include_hidden,omitempty" jsonschema:"Also list disabled nodes"`
}

// DecorationLayoutOutput is the output of decoration_layout.
type DecorationLayoutOutput struct {
	Margin     ssd.Border     `json:"margin"`
	MaxExtents geom.Rect      `json:"max_extents"`
	Nodes      []inspect.Node `json:"nodes"`
}

// Point is a layout coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// HitTestInput is the input of hit_test.
type HitTestInput struct {
	Window WindowInput `json:"window,omitempty" jsonschema:"Window to decorate"`
	Points []Point      `json:"points" jsonschema:"Layout points to classify"`
}

// HitTestOutput is the output of hit_test.
type HitTestOutput struct {
	Hits []inspect.Hit `json:"hits"`
}

// ResizeEdgesInput is the input of resize_edges.
type ResizeEdgesInput struct {
	Part string `json:"part" jsonschema:"Part type name, e.g. corner-top-left"`
}

// ResizeEdgesOutput is the output of resize_edges.
type ResizeEdgesOutput struct {
	Edges    string `json:"edges"`
	Top      bool   `json:"top"`
	Right    bool   `json:"right"`
	Bottom   bool   `json:"bottom"`
	Left     bool   `json:"left"`
	IsButton bool   `json:"is_button"`
}

// PartContainsInput is the input of part_contains.
type PartContainsInput struct {
	Whole     string `json:"whole" jsonschema:"Enclosing part type name, e.g. titlebar"`
	Candidate string `json:"candidate" jsonschema:"Part type name tested for containment"`
}

// PartContainsOutput is the output of part_contains.
type PartContainsOutput struct {
	Contains bool `json:"contains"`
}

// ListPartsOutput is the output of list_parts.
type ListPartsOutput struct {
	Parts []string `json:"parts"`
}
