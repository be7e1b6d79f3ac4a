package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/1broseidon/decor/internal/config"
	"github.com/1broseidon/decor/internal/render"
	"github.com/1broseidon/decor/internal/ssd"
	"github.com/1broseidon/decor/internal/theme"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "dump":
		os.Exit(runDump(os.Args[2:]))
	case "hit":
		os.Exit(runHit(os.Args[2:]))
	case "preview":
		os.Exit(runPreview(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: decor <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  dump                Print the decoration tree of a window")
	fmt.Fprintln(w, "  hit                 Classify a point against a decorated window")
	fmt.Fprintln(w, "  preview             Decorate the active X11 window with overlay windows")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "  config explain      Explain a config value")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Serve decoration tools over MCP (stdio)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'decor <command> --help' for command-specific options.")
}

// engine bundles everything a command needs to decorate windows.
type engine struct {
	cfg    *config.Config
	logger *slog.Logger
	text   *render.TextRenderer
	theme  *theme.Theme
	mgr    *ssd.Manager
}

func loadConfig(path string) (*config.LoadResult, error) {
	if path == "" {
		return config.LoadWithSources()
	}
	return config.LoadFromPath(path)
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log_level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// newEngine loads the configuration at path (the default location when
// empty) and builds the theme, text renderer and decoration manager.
func newEngine(path string) (*engine, error) {
	res, err := loadConfig(path)
	if err != nil {
		return nil, err
	}
	cfg := res.Config

	logger, err := newLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	ssd.SetLogger(logger)

	var text *render.TextRenderer
	if cfg.Decoration.FontFile != "" {
		text, err = render.LoadTextRenderer(cfg.Decoration.FontFile, cfg.Decoration.FontSize)
	} else {
		text, err = render.NewDefaultTextRenderer(cfg.Decoration.FontSize)
	}
	if err != nil {
		return nil, err
	}

	th, err := theme.Build(cfg, text.Height())
	if err != nil {
		text.Close()
		return nil, fmt.Errorf("failed to build theme: %w", err)
	}
	logger.Debug("engine ready",
		"files", len(res.Files),
		"theme", cfg.Theme.Inherits,
		"title_height", th.TitleHeight)

	return &engine{
		cfg:    cfg,
		logger: logger,
		text:   text,
		theme:  th,
		mgr:    ssd.NewManager(th, text),
	}, nil
}

func (e *engine) Close() {
	e.theme.Destroy()
	if err := e.text.Close(); err != nil {
		e.logger.Warn("failed to close font", "error", err)
	}
}
