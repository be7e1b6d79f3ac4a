package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/1broseidon/decor/internal/platform"
)

func runPreview(args []string) int {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", configPathUsage)
	duration := fs.Duration("duration", 0, "Stop after this long (0: until interrupted)")
	publish := fs.Bool("publish-extents", false, "Write the decoration margin as _NET_FRAME_EXTENTS on the window")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: decor preview [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Decorate the active X11 window with override-redirect overlay windows.")
		fmt.Fprintln(os.Stderr, "The decoration follows the window; hover and clicks are logged.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	e, err := newEngine(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer e.Close()

	backend, err := platform.NewBackend(e.cfg.Display)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to display: %v\n", err)
		return 1
	}
	defer backend.Disconnect()

	preview := platform.NewPreview(backend, e.mgr, e.logger, platform.PreviewOptions{
		PublishExtents: *publish,
		Shadows:        e.cfg.Decoration.Shadows,
		HideTitlebar:   !e.cfg.Decoration.Titlebar,
	})
	if err := preview.AttachActive(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer preview.Detach()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if *duration > 0 {
		var stop context.CancelFunc
		ctx, stop = context.WithTimeout(ctx, *duration)
		defer stop()
	}

	start := time.Now()
	backend.EventLoop(ctx)
	e.logger.Info("preview stopped", "after", time.Since(start).Round(time.Millisecond).String())
	return 0
}
