package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/decor/internal/geom"
	"github.com/1broseidon/decor/internal/inspect"
	"github.com/1broseidon/decor/internal/ssd"
)

const (
	defaultX            = 100
	defaultY            = 100
	defaultWidth        = 400
	defaultHeight       = 300
	defaultTitle        = "Terminal"
	defaultOutputWidth  = 1920
	defaultOutputHeight = 1080
)

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func (w WindowInput) scenario() (inspect.Scenario, error) {
	axis, err := inspect.ParseAxis(w.Maximized)
	if err != nil {
		return inspect.Scenario{}, err
	}
	title := w.Title
	if title == "" {
		title = defaultTitle
	}
	return inspect.Scenario{
		Box: geom.Rect{
			X:      intOr(w.X, defaultX),
			Y:      intOr(w.Y, defaultY),
			Width:  intOr(w.Width, defaultWidth),
			Height: intOr(w.Height, defaultHeight),
		},
		Title:        title,
		Active:       !w.Inactive,
		Maximized:    axis,
		Fullscreen:   w.Fullscreen,
		Shaded:       w.Shaded,
		HideTitlebar: w.HideTitlebar,
		Shadow:       w.Shadow,
		Usable: geom.Rect{
			Width:  intOr(w.OutputWidth, defaultOutputWidth),
			Height: intOr(w.OutputHeight, defaultOutputHeight),
		},
	}, nil
}

// withFrame decorates w and calls fn with the result while holding the
// server lock.
func (s *Server) withFrame(w WindowInput, fn func(*inspect.Frame)) error {
	sc, err := w.scenario()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := inspect.Build(s.mgr, sc)
	if err != nil {
		return err
	}
	defer f.Close()
	fn(f)
	return nil
}

func (s *Server) handleDecorationLayout(_ context.Context, _ *mcpsdk.CallToolRequest, args DecorationLayoutInput) (*mcpsdk.CallToolResult, DecorationLayoutOutput, error) {
	var out DecorationLayoutOutput
	err := s.withFrame(args.Window, func(f *inspect.Frame) {
		l := f.Layout(!args.IncludeHidden)
		out = DecorationLayoutOutput{Margin: l.Margin, MaxExtents: l.MaxExtents, Nodes: l.Nodes}
	})
	if err != nil {
		return nil, DecorationLayoutOutput{}, err
	}
	s.logger.Debug("decoration_layout", "nodes", len(out.Nodes))
	return nil, out, nil
}

func (s *Server) handleHitTest(_ context.Context, _ *mcpsdk.CallToolRequest, args HitTestInput) (*mcpsdk.CallToolResult, HitTestOutput, error) {
	if len(args.Points) == 0 {
		return nil, HitTestOutput{}, fmt.Errorf("points must not be empty")
	}
	out := HitTestOutput{Hits: make([]inspect.Hit, 0, len(args.Points))}
	err := s.withFrame(args.Window, func(f *inspect.Frame) {
		for _, p := range args.Points {
			out.Hits = append(out.Hits, f.HitTest(p.X, p.Y))
		}
	})
	if err != nil {
		return nil, HitTestOutput{}, err
	}
	s.logger.Debug("hit_test", "points", len(args.Points))
	return nil, out, nil
}

func parsePart(name string) (ssd.PartType, error) {
	t, ok := ssd.ParsePartType(name)
	if !ok {
		return ssd.PartNone, fmt.Errorf("unknown part type %q", name)
	}
	return t, nil
}

func (s *Server) handleResizeEdges(_ context.Context, _ *mcpsdk.CallToolRequest, args ResizeEdgesInput) (*mcpsdk.CallToolResult, ResizeEdgesOutput, error) {
	part, err := parsePart(args.Part)
	if err != nil {
		return nil, ResizeEdgesOutput{}, err
	}
	e := ssd.ResizeEdges(part)
	return nil, ResizeEdgesOutput{
		Edges:    e.String(),
		Top:      e&ssd.EdgeTop != 0,
		Right:    e&ssd.EdgeRight != 0,
		Bottom:   e&ssd.EdgeBottom != 0,
		Left:     e&ssd.EdgeLeft != 0,
		IsButton: ssd.IsButton(part),
	}, nil
}

func (s *Server) handlePartContains(_ context.Context, _ *mcpsdk.CallToolRequest, args PartContainsInput) (*mcpsdk.CallToolResult, PartContainsOutput, error) {
	whole, err := parsePart(args.Whole)
	if err != nil {
		return nil, PartContainsOutput{}, err
	}
	candidate, err := parsePart(args.Candidate)
	if err != nil {
		return nil, PartContainsOutput{}, err
	}
	return nil, PartContainsOutput{Contains: ssd.PartContains(whole, candidate)}, nil
}

func (s *Server) handleListParts(_ context.Context, _ *mcpsdk.CallToolRequest, _ struct{}) (*mcpsdk.CallToolResult, ListPartsOutput, error) {
	var out ListPartsOutput
	for _, t := range ssd.AllPartTypes() {
		out.Parts = append(out.Parts, t.String())
	}
	return nil, out, nil
}
