package platform

import (
	"fmt"
	"log/slog"

	"github.com/1broseidon/decor/internal/scene"
	"github.com/1broseidon/decor/internal/ssd"
	"github.com/1broseidon/decor/internal/view"
)

// PreviewOptions configures a Preview.
type PreviewOptions struct {
	// PublishExtents writes the decoration margin onto the client window.
	PublishExtents bool
	Shadows        bool
	HideTitlebar   bool
}

// Preview decorates one client window of a Backend. It keeps a private
// scene holding a view that mirrors the client, lays out the decoration
// there and renders it through the backend.
type Preview struct {
	backend Backend
	mgr     *ssd.Manager
	logger  *slog.Logger
	opts    PreviewOptions

	scene  *scene.Scene
	view   *view.View
	deco   *ssd.Decoration
	window WindowID
}

// NewPreview creates a preview that is not attached to any window yet.
func NewPreview(backend Backend, mgr *ssd.Manager, logger *slog.Logger, opts PreviewOptions) *Preview {
	if logger == nil {
		logger = slog.Default()
	}
	return &Preview{
		backend: backend,
		mgr:     mgr,
		logger:  logger,
		opts:    opts,
		scene:   scene.New(),
	}
}

// Decoration returns the decoration of the attached window, or nil.
func (p *Preview) Decoration() *ssd.Decoration { return p.deco }

// Scene returns the scene the decoration lives in.
func (p *Preview) Scene() *scene.Scene { return p.scene }

// AttachActive decorates the currently focused window.
func (p *Preview) AttachActive() error {
	id, err := p.backend.ActiveWindow()
	if err != nil {
		return err
	}
	return p.Attach(id)
}

// Attach decorates the window id, replacing any previous one.
func (p *Preview) Attach(id WindowID) error {
	win, err := p.backend.Window(id)
	if err != nil {
		return fmt.Errorf("failed to read window %d: %w", id, err)
	}
	p.Detach()

	p.window = id
	p.view = view.New(p.scene.Root(), win.Box, win.Title)
	p.view.SetFocused(true)
	p.apply(win)
	p.deco = p.mgr.Create(p.view, true)
	if p.deco == nil {
		p.view.Destroy()
		p.view = nil
		return fmt.Errorf("failed to decorate window %d", id)
	}
	p.deco.EnableShadow(p.opts.Shadows)
	p.deco.SetTitlebarVisible(!p.opts.HideTitlebar)

	p.backend.SetPointerHandlers(PointerHandlers{
		Motion: p.Motion,
		Press:  func(x, y, button int) { p.Press(x, y, button) },
	})
	if err := p.backend.Watch(id, p.changed); err != nil {
		p.Detach()
		return fmt.Errorf("failed to watch window %d: %w", id, err)
	}
	p.logger.Info("decorating window", "window", id, "title", win.Title, "box", win.Box.String())
	return p.render()
}

// Detach drops the decoration and stops following the window.
func (p *Preview) Detach() {
	if p.deco == nil {
		return
	}
	p.backend.Unwatch(p.window)
	p.backend.SetPointerHandlers(PointerHandlers{})
	p.deco.Destroy()
	p.view.Destroy()
	p.deco = nil
	p.view = nil
	p.window = 0
	if err := p.backend.Render(nil); err != nil {
		p.logger.Warn("failed to clear overlay", "error", err)
	}
}

func (p *Preview) changed() {
	if err := p.Refresh(); err != nil {
		p.logger.Warn("refresh failed", "window", p.window, "error", err)
	}
}

// Refresh re-reads the window and relayouts the decoration.
func (p *Preview) Refresh() error {
	if p.deco == nil {
		return nil
	}
	win, err := p.backend.Window(p.window)
	if err != nil {
		return fmt.Errorf("failed to read window %d: %w", p.window, err)
	}

	titleChanged := win.Title != p.view.Title()
	p.apply(win)
	if active, err := p.backend.ActiveWindow(); err == nil {
		p.view.SetFocused(active == p.window)
		p.deco.SetActive(active == p.window)
	}
	if titleChanged {
		p.deco.UpdateTitle()
	}
	p.deco.UpdateGeometry()
	return p.render()
}

// apply copies window state onto the view.
func (p *Preview) apply(win Window) {
	v := p.view
	v.SetTitle(win.Title)
	v.Move(win.Box.X, win.Box.Y)
	v.Resize(win.Box.Width, win.Box.Height)
	v.SetMaximized(win.Maximized)
	v.SetFullscreen(win.Fullscreen)
	v.SetShaded(win.Shaded)
	if usable, ok := p.backend.UsableArea(win.Box); ok {
		v.SetUsableArea(usable)
	}
}

func (p *Preview) render() error {
	if p.opts.PublishExtents {
		if err := p.backend.PublishFrameExtents(p.window, p.deco.Margin()); err != nil {
			p.logger.Warn("failed to publish frame extents", "window", p.window, "error", err)
		}
	}
	return p.backend.Render(Surfaces(p.deco))
}

// Motion updates the hovered button for a pointer at root position x, y.
func (p *Preview) Motion(x, y int) {
	if p.deco == nil {
		return
	}
	before := p.mgr.Hover()
	node, _, _ := p.scene.NodeAt(float64(x), float64(y))
	p.mgr.UpdateButtonHover(node)
	if p.mgr.Hover() == before {
		return
	}
	if err := p.render(); err != nil {
		p.logger.Warn("render failed", "error", err)
	}
}

// Press reports the part under a click and the edges a drag there resizes.
func (p *Preview) Press(x, y, button int) ssd.PartType {
	part := p.deco.At(p.scene, float64(x), float64(y))
	p.logger.Info("press",
		"x", x,
		"y", y,
		"button", button,
		"part", part.String(),
		"edges", ssd.ResizeEdges(part).String(),
		"is_button", ssd.IsButton(part),
	)
	return part
}
