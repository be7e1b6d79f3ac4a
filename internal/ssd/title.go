package ssd

import (
	"github.com/1broseidon/decor/internal/scene"
	"github.com/1broseidon/decor/internal/theme"
)

// UpdateTitle renders the view's title into both titlebar variants. A
// variant is left alone when the text is unchanged and its last rendering
// was complete and still fits.
func (d *Decoration) UpdateTitle() {
	if d == nil || d.destroyed {
		return
	}
	t := d.mgr.theme
	text := d.view.Title()
	width := d.view.Geometry().Width
	avail := width - ButtonWidth*ButtonCount - 2*t.PaddingWidth

	cache := &d.state.title
	unchanged := cache.set && cache.text == text

	if d.mgr.text != nil {
		for _, s := range theme.States {
			part := getPart(d.titlebar.state(s).parts, PartTitle)
			if part == nil || part.Buffer == nil {
				continue
			}
			st := &cache.states[s]
			if unchanged && !st.truncated && st.width <= avail {
				continue
			}

			img, w, truncated := d.mgr.text.RenderText(text, avail, t.Style(s).LabelTextColor)
			var tex *scene.Texture
			if img != nil {
				tex = scene.NewTexture(img)
			}
			part.Buffer.SetTexture(tex)
			d.titleTextures[s].Destroy()
			d.titleTextures[s] = tex
			*st = titleState{width: w, truncated: truncated}
		}
	}
	cache.text = text
	cache.set = true

	d.updateTitlePositions(width)
}

func (d *Decoration) updateTitlePositions(width int) {
	t := d.mgr.theme
	bgWidth := width - ButtonWidth*ButtonCount

	for _, s := range theme.States {
		part := getPart(d.titlebar.state(s).parts, PartTitle)
		if part == nil {
			continue
		}
		if bgWidth <= 0 {
			part.Node.SetEnabled(false)
			continue
		}
		part.Node.SetEnabled(true)

		bufWidth, bufHeight := part.Node.Size()
		x := ButtonWidth
		y := (t.TitleHeight - bufHeight) / 2
		switch t.TitleJustify {
		case theme.JustifyCenter:
			if bufWidth+2*ButtonWidth <= bgWidth {
				// Centred on the whole titlebar when there is room.
				x = (width - bufWidth) / 2
			} else {
				x += (bgWidth - bufWidth) / 2
			}
		case theme.JustifyRight:
			x += bgWidth - bufWidth - t.PaddingWidth
		default:
			x += t.PaddingWidth
		}
		part.Node.SetPosition(x, y)
	}
}
