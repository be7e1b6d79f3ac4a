package x11

import (
	"context"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"
)

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// NewConnectionDisplay connects to a specific display. An empty name means
// $DISPLAY.
func NewConnectionDisplay(display string) (*Connection, error) {
	xu, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, err
	}
	// EWMH and RandR extensions are initialized lazily by their callers.
	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// EventLoop runs the X11 event loop until ctx is done or Quit is called.
// Callbacks run on the loop goroutine while EventLoop waits, so they never
// overlap with code running after EventLoop returns.
func (c *Connection) EventLoop(ctx context.Context) {
	before, after, quit := xevent.MainPing(c.XUtil)
	for {
		select {
		case <-before:
			<-after
		case <-quit:
			return
		case <-ctx.Done():
			xevent.Quit(c.XUtil)
			return
		}
	}
}

// Quit makes EventLoop return after the current event.
func (c *Connection) Quit() {
	xevent.Quit(c.XUtil)
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
