package mcp

import (
	"context"
	"log/slog"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/decor/internal/ssd"
)

const (
	ServerName    = "decor"
	ServerVersion = "0.1.0"
)

// Server is the MCP server exposing decoration layout and hit-testing.
type Server struct {
	mcpServer *mcpsdk.Server
	logger    *slog.Logger

	// mu serializes decoration builds; the manager's hover and button
	// registries are not safe for concurrent use.
	mu  sync.Mutex
	mgr *ssd.Manager
}

// NewServer creates an MCP server that decorates with mgr.
func NewServer(mgr *ssd.Manager, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{mgr: mgr, logger: logger}
	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)
	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "decoration_layout",
		Description: "Decorate a window described by position, size, title and state, and return the decoration margin, the outer box and every node of the decoration tree with its part type and layout box.",
	}, s.handleDecorationLayout)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "hit_test",
		Description: "Decorate a window and classify layout points: which decoration part is under each point, the edges a drag there would resize, and whether it is a caption button.",
	}, s.handleHitTest)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resize_edges",
		Description: "Return the window edges a drag on the given part type resizes.",
	}, s.handleResizeEdges)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "part_contains",
		Description: "Report whether a part type is the same as, or part of, an enclosing part type (e.g. titlebar contains button-close).",
	}, s.handlePartContains)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_parts",
		Description: "List every decoration part type name in hit-test priority order.",
	}, s.handleListParts)
}
