package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/1broseidon/decor/internal/geom"
	"github.com/1broseidon/decor/internal/inspect"
)

// windowFlags registers the flags describing the window to decorate.
type windowFlags struct {
	path         *string
	x, y         *int
	width        *int
	height       *int
	title        *string
	inactive     *bool
	maximized    *string
	fullscreen   *bool
	shaded       *bool
	noTitlebar   *bool
	shadow       *bool
	outputWidth  *int
	outputHeight *int
}

func addWindowFlags(fs *flag.FlagSet) *windowFlags {
	return &windowFlags{
		path:         fs.String("path", "", configPathUsage),
		x:            fs.Int("x", 100, "Content box left edge"),
		y:            fs.Int("y", 100, "Content box top edge"),
		width:        fs.Int("width", 400, "Content box width"),
		height:       fs.Int("height", 300, "Content box height"),
		title:        fs.String("title", "Terminal", "Window title"),
		inactive:     fs.Bool("inactive", false, "Use the unfocused variant"),
		maximized:    fs.String("maximized", "none", "Maximize axis: none, horizontal, vertical, both"),
		fullscreen:   fs.Bool("fullscreen", false, "Fullscreen window"),
		shaded:       fs.Bool("shaded", false, "Rolled up to the titlebar"),
		noTitlebar:   fs.Bool("no-titlebar", false, "Border-only decoration (overrides decoration.titlebar)"),
		shadow:       fs.Bool("shadow", false, "Build the drop shadow (in addition to decoration.shadows)"),
		outputWidth:  fs.Int("output-width", 1920, "Usable output width from 0,0 (0: no output)"),
		outputHeight: fs.Int("output-height", 1080, "Usable output height from 0,0 (0: no output)"),
	}
}

func (f *windowFlags) scenario(e *engine) (inspect.Scenario, error) {
	axis, err := inspect.ParseAxis(*f.maximized)
	if err != nil {
		return inspect.Scenario{}, err
	}
	return inspect.Scenario{
		Box:          geom.Rect{X: *f.x, Y: *f.y, Width: *f.width, Height: *f.height},
		Title:        *f.title,
		Active:       !*f.inactive,
		Maximized:    axis,
		Fullscreen:   *f.fullscreen,
		Shaded:       *f.shaded,
		HideTitlebar: *f.noTitlebar || !e.cfg.Decoration.Titlebar,
		Shadow:       *f.shadow || e.cfg.Decoration.Shadows,
		Usable:       geom.Rect{Width: *f.outputWidth, Height: *f.outputHeight},
	}, nil
}

// buildFrame loads the engine and decorates the window described by f.
func (f *windowFlags) buildFrame() (*engine, *inspect.Frame, error) {
	e, err := newEngine(*f.path)
	if err != nil {
		return nil, nil, err
	}
	sc, err := f.scenario(e)
	if err != nil {
		e.Close()
		return nil, nil, err
	}
	frame, err := inspect.Build(e.mgr, sc)
	if err != nil {
		e.Close()
		return nil, nil, err
	}
	return e, frame, nil
}

type dumpStyles struct {
	name     lipgloss.Style
	part     lipgloss.Style
	box      lipgloss.Style
	disabled lipgloss.Style
	header   lipgloss.Style
}

func newDumpStyles(color bool) dumpStyles {
	if !color {
		plain := lipgloss.NewStyle()
		return dumpStyles{name: plain, part: plain, box: plain, disabled: plain, header: plain}
	}
	return dumpStyles{
		name:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		part:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		box:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	}
}

func writeLayout(w io.Writer, l inspect.Layout, st dumpStyles) {
	m := l.Margin
	fmt.Fprintln(w, st.header.Render(fmt.Sprintf("margin: top=%d right=%d bottom=%d left=%d", m.Top, m.Right, m.Bottom, m.Left)))
	fmt.Fprintln(w, st.header.Render("max extents: "+l.MaxExtents.String()))
	for _, n := range l.Nodes {
		name := n.Name
		if name == "" {
			name = "-"
		}
		line := strings.Repeat("  ", n.Depth) + n.Kind + " " + st.name.Render(name)
		if n.Part != "" && n.Part != name {
			line += " " + st.part.Render("["+n.Part+"]")
		}
		line += " " + st.box.Render(n.Box.String())
		if !n.Enabled {
			line = st.disabled.Render(line + " (disabled)")
		}
		fmt.Fprintln(w, line)
	}
}

func runDump(args []string) int {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	wf := addWindowFlags(fs)
	enabledOnly := fs.Bool("enabled-only", false, "Omit disabled nodes")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: decor dump [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Print the decoration tree of a window: node names, part types, layout boxes")
		fmt.Fprintln(os.Stderr, "and enabled state.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	e, frame, err := wf.buildFrame()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer e.Close()
	defer frame.Close()

	color := term.IsTerminal(int(os.Stdout.Fd()))
	writeLayout(os.Stdout, frame.Layout(*enabledOnly), newDumpStyles(color))
	return 0
}

func runHit(args []string) int {
	fs := flag.NewFlagSet("hit", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	wf := addWindowFlags(fs)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: decor hit [options] X,Y [X,Y...]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Classify layout points: part type, resize edges and whether the part is a")
		fmt.Fprintln(os.Stderr, "caption button.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	points := make([][2]int, 0, fs.NArg())
	for _, arg := range fs.Args() {
		var x, y int
		if _, err := fmt.Sscanf(arg, "%d,%d", &x, &y); err != nil {
			fmt.Fprintf(os.Stderr, "invalid point %q (want X,Y)\n", arg)
			return 2
		}
		points = append(points, [2]int{x, y})
	}

	e, frame, err := wf.buildFrame()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer e.Close()
	defer frame.Close()

	for _, p := range points {
		h := frame.HitTest(p[0], p[1])
		fmt.Printf("%d,%d\t%s\tedges=%s\tbutton=%t\n", h.X, h.Y, h.Part, h.Edges, h.IsButton)
	}
	return 0
}
