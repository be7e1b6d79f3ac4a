package main

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/1broseidon/decor/internal/config"
	"github.com/1broseidon/decor/internal/geom"
	"github.com/1broseidon/decor/internal/inspect"
	"github.com/1broseidon/decor/internal/ssd"
	"github.com/1broseidon/decor/internal/view"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected log output %q", out)
	}

	if _, err := newLogger(io.Discard, "loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestWindowFlags_Scenario(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	wf := addWindowFlags(fs)
	if err := fs.Parse([]string{"-width", "640", "-maximized", "vertical", "-inactive", "-title", "vim"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Decoration.Shadows = false
	cfg.Decoration.Titlebar = false
	sc, err := wf.scenario(&engine{cfg: cfg})
	if err != nil {
		t.Fatalf("scenario: %v", err)
	}
	want := inspect.Scenario{
		Box:          geom.Rect{X: 100, Y: 100, Width: 640, Height: 300},
		Title:        "vim",
		Maximized:    view.AxisVertical,
		HideTitlebar: true,
		Usable:       geom.Rect{Width: 1920, Height: 1080},
	}
	if sc != want {
		t.Fatalf("scenario = %+v, want %+v", sc, want)
	}

	bad := flag.NewFlagSet("test", flag.ContinueOnError)
	wf = addWindowFlags(bad)
	if err := bad.Parse([]string{"-maximized", "sideways"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := wf.scenario(&engine{cfg: cfg}); err == nil {
		t.Fatalf("expected error for bad axis")
	}
}

func TestWriteLayout_Plain(t *testing.T) {
	l := inspect.Layout{
		Margin:     ssd.Border{Top: 20, Right: 1, Bottom: 1, Left: 1},
		MaxExtents: geom.Rect{X: 99, Y: 80, Width: 402, Height: 321},
		Nodes: []inspect.Node{
			{Depth: 0, Name: "decoration", Kind: "tree", Enabled: true},
			{Depth: 1, Name: "button-close", Kind: "tree", Part: "button-close", Box: geom.Rect{X: 474, Y: 81, Width: 26, Height: 19}, Enabled: true},
			{Depth: 1, Name: "border.inactive", Kind: "tree", Enabled: false},
			{Depth: 2, Kind: "rect", Part: "top", Box: geom.Rect{Width: 10, Height: 1}, Enabled: true},
		},
	}
	var buf bytes.Buffer
	writeLayout(&buf, l, newDumpStyles(false))

	want := strings.Join([]string{
		"margin: top=20 right=1 bottom=1 left=1",
		"max extents: 402x321+99+80",
		"tree decoration 0x0+0+0",
		"  tree button-close 26x19+474+81",
		"  tree border.inactive 0x0+0+0 (disabled)",
		"    rect - [top] 10x1+0+0",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("layout output:\n%s\nwant:\n%s", got, want)
	}
}

func TestRunConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("theme:\n  border_width: 3\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("decoration:\n  title_justify: middle\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		code     int
		stdout   []string
		stderr   []string
		noStdout bool
	}{
		{name: "validate", args: []string{"validate", "-path", path}, stdout: []string{"config: ok (1 file(s))"}},
		{name: "validate invalid", args: []string{"validate", "-path", bad}, code: 1, stderr: []string{"decoration.title_justify"}, noStdout: true},
		{name: "print", args: []string{"print", "-path", path}, stdout: []string{"border_width: 3", "title_justify: center"}},
		{name: "print defaults", args: []string{"print", "-path", path, "-defaults"}, stdout: []string{"border_width: 1"}},
		{name: "explain file value", args: []string{"explain", "-path", path, "theme.border_width"}, stdout: []string{
			"path: theme.border_width", "source: " + resolved + ":2:", "value:\n3\n",
		}},
		{name: "explain default", args: []string{"explain", "-path", path, "decoration.titlebar"}, stdout: []string{"source: default", "true"}},
		{name: "explain unknown", args: []string{"explain", "-path", path, "theme.nope"}, code: 1, stderr: []string{"unknown path"}},
		{name: "explain without path lists keys", args: []string{"explain", "-path", path}, code: 2, stderr: []string{"theme.border_width"}},
		{name: "unknown subcommand", args: []string{"lint"}, code: 2, stderr: []string{"Unknown config subcommand: lint"}},
		{name: "no subcommand", code: 2, stderr: []string{"decor config validate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := runConfigTo(&stdout, &stderr, tt.args); code != tt.code {
				t.Fatalf("exit code %d, want %d (stderr %q)", code, tt.code, stderr.String())
			}
			for _, want := range tt.stdout {
				if !strings.Contains(stdout.String(), want) {
					t.Fatalf("stdout missing %q:\n%s", want, stdout.String())
				}
			}
			for _, want := range tt.stderr {
				if !strings.Contains(stderr.String(), want) {
					t.Fatalf("stderr missing %q:\n%s", want, stderr.String())
				}
			}
			if tt.noStdout && stdout.Len() != 0 {
				t.Fatalf("unexpected stdout %q", stdout.String())
			}
		})
	}
}
