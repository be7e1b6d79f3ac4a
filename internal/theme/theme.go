// Package theme turns the effective config into the metrics, colors and
// pre-rendered textures decorations are built from.
package theme

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/1broseidon/decor/internal/config"
	"github.com/1broseidon/decor/internal/scene"
)

// ButtonWidth is the width of every titlebar button.
const ButtonWidth = 26

// State selects the focused or unfocused variant of a theme.
type State int

const (
	Active State = iota
	Inactive
)

// States lists both variants in index order.
var States = [2]State{Active, Inactive}

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Inactive:
		return "inactive"
	default:
		return "invalid"
	}
}

// StateFor maps a focus flag to its state.
func StateFor(active bool) State {
	if active {
		return Active
	}
	return Inactive
}

type Justify int

const (
	JustifyLeft Justify = iota
	JustifyCenter
	JustifyRight
)

func (j Justify) String() string {
	switch j {
	case JustifyLeft:
		return "left"
	case JustifyCenter:
		return "center"
	case JustifyRight:
		return "right"
	default:
		return "invalid"
	}
}

func ParseJustify(s string) (Justify, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return JustifyLeft, nil
	case "center":
		return JustifyCenter, nil
	case "right":
		return JustifyRight, nil
	default:
		return 0, fmt.Errorf("unknown title justification %q", s)
	}
}

type ButtonKind int

const (
	ButtonClose ButtonKind = iota
	ButtonMaximize
	ButtonIconify
	ButtonWindowMenu
	buttonKindCount
)

func (k ButtonKind) String() string {
	switch k {
	case ButtonClose:
		return "close"
	case ButtonMaximize:
		return "maximize"
	case ButtonIconify:
		return "iconify"
	case ButtonWindowMenu:
		return "menu"
	default:
		return "invalid"
	}
}

// StateStyle holds the colors and textures of one focus state.
type StateStyle struct {
	BorderColor    color.NRGBA
	TitleBgColor   color.NRGBA
	LabelTextColor color.NRGBA
	ButtonColor    color.NRGBA

	ShadowRadius int
	ShadowInset  int
	ShadowColor  color.NRGBA

	// CornerTopLeft and CornerTopRight are the rounded titlebar corners,
	// (ButtonWidth+BorderWidth) x (TitleHeight+BorderWidth), border included.
	CornerTopLeft  *scene.Texture
	CornerTopRight *scene.Texture

	// ShadowCorner is the bottom-right corner, ShadowRadius square.
	// ShadowEdge is the right edge, ShadowRadius x 1. Other sides are rotations.
	ShadowCorner *scene.Texture
	ShadowEdge   *scene.Texture

	Icons [buttonKindCount]*scene.Texture
}

// Icon returns the icon texture for a button kind.
func (s *StateStyle) Icon(kind ButtonKind) *scene.Texture {
	if kind < 0 || kind >= buttonKindCount {
		return nil
	}
	return s.Icons[kind]
}

type Theme struct {
	BorderWidth      int
	TitleHeight      int
	PaddingWidth     int
	PaddingHeight    int
	CornerRadius     int
	TitleJustify     Justify
	ButtonHoverColor color.NRGBA

	States [2]StateStyle
}

// Style returns the style of state s.
func (t *Theme) Style(s State) *StateStyle {
	if s != Active {
		s = Inactive
	}
	return &t.States[s]
}

// Build parses the theme section of cfg and renders its textures. fontHeight
// is the line height of the title font.
func Build(cfg *config.Config, fontHeight int) (*Theme, error) {
	justify, err := ParseJustify(cfg.Decoration.TitleJustify)
	if err != nil {
		return nil, err
	}
	hover, err := config.ParseColor(cfg.Theme.ButtonHoverColor)
	if err != nil {
		return nil, fmt.Errorf("button_hover_color: %w", err)
	}

	t := &Theme{
		BorderWidth:      cfg.Theme.BorderWidth,
		PaddingWidth:     cfg.Theme.PaddingWidth,
		PaddingHeight:    cfg.Theme.PaddingHeight,
		TitleHeight:      max(1, fontHeight+2*cfg.Theme.PaddingHeight),
		TitleJustify:     justify,
		ButtonHoverColor: hover,
	}
	t.CornerRadius = min(cfg.Decoration.CornerRadius, t.TitleHeight-1, ButtonWidth-1)
	t.CornerRadius = max(t.CornerRadius, 0)

	for _, s := range States {
		src := cfg.Theme.Active
		if s == Inactive {
			src = cfg.Theme.Inactive
		}
		if err := t.buildState(s, src); err != nil {
			t.Destroy()
			return nil, fmt.Errorf("theme %s: %w", s, err)
		}
	}
	return t, nil
}

func (t *Theme) buildState(s State, src config.StateConfig) error {
	style := &t.States[s]

	var err error
	colors := []struct {
		name string
		in   string
		out  *color.NRGBA
	}{
		{"border_color", src.BorderColor, &style.BorderColor},
		{"title_bg_color", src.TitleBgColor, &style.TitleBgColor},
		{"label_text_color", src.LabelTextColor, &style.LabelTextColor},
		{"button_color", src.ButtonColor, &style.ButtonColor},
		{"shadow.color", src.Shadow.Color, &style.ShadowColor},
	}
	for _, c := range colors {
		if *c.out, err = config.ParseColor(c.in); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
	}
	style.ShadowRadius = src.Shadow.Radius
	style.ShadowInset = src.Shadow.Inset

	left, right, err := renderCorners(ButtonWidth+t.BorderWidth, t.TitleHeight+t.BorderWidth,
		t.BorderWidth, t.CornerRadius, style.BorderColor, style.TitleBgColor)
	if err != nil {
		return err
	}
	style.CornerTopLeft = scene.NewTexture(left)
	style.CornerTopRight = scene.NewTexture(right)

	if style.ShadowRadius > 0 {
		corner, err := renderShadowCorner(style.ShadowRadius, style.ShadowColor)
		if err != nil {
			return err
		}
		edge, err := renderShadowEdge(style.ShadowRadius, style.ShadowColor)
		if err != nil {
			return err
		}
		style.ShadowCorner = scene.NewTexture(corner)
		style.ShadowEdge = scene.NewTexture(edge)
	}

	size := max(2, min(ButtonWidth, t.TitleHeight)/2)
	for kind := ButtonClose; kind < buttonKindCount; kind++ {
		img, err := renderIcon(kind, size, style.ButtonColor)
		if err != nil {
			return fmt.Errorf("icon %s: %w", kind, err)
		}
		style.Icons[kind] = scene.NewTexture(img)
	}
	return nil
}

// Destroy releases every texture. Buttons still showing an icon are notified
// through the texture's destroy signal.
func (t *Theme) Destroy() {
	if t == nil {
		return
	}
	for i := range t.States {
		s := &t.States[i]
		s.CornerTopLeft.Destroy()
		s.CornerTopRight.Destroy()
		s.ShadowCorner.Destroy()
		s.ShadowEdge.Destroy()
		for _, icon := range s.Icons {
			icon.Destroy()
		}
	}
}
