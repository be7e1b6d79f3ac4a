package ssd

import "github.com/1broseidon/decor/internal/scene"

// HoverState names the button overlay currently shown under the pointer.
type HoverState struct {
	View View
	Node *scene.Node
}

// Hover returns the current hover state. The zero value means no button is
// hovered.
func (m *Manager) Hover() HoverState {
	if m == nil {
		return HoverState{}
	}
	return m.hover
}

// UpdateButtonHover moves the hover overlay to the button containing node.
// A nil node, or one outside any button, clears it.
func (m *Manager) UpdateButtonHover(node *scene.Node) {
	if m == nil {
		return
	}
	b := m.buttonFor(node)
	if b == m.hovered {
		return
	}
	if m.hovered != nil {
		m.hovered.hover.SetEnabled(false)
	}
	m.hovered = b
	if b == nil {
		m.hover = HoverState{}
		return
	}
	b.hover.SetEnabled(true)
	m.hover = HoverState{View: b.view, Node: b.hover}
}

func (m *Manager) buttonFor(node *scene.Node) *button {
	for cur := node; cur != nil; cur = cur.ParentNode() {
		if b, ok := m.buttons[cur]; ok {
			return b
		}
	}
	return nil
}

// clearHover drops the hover overlay if it belongs to d.
func (m *Manager) clearHover(d *Decoration) {
	if m.hovered == nil || m.hovered.decoration != d {
		return
	}
	m.hovered.hover.SetEnabled(false)
	m.hovered = nil
	m.hover = HoverState{}
}
