package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Config is the effective configuration after defaults, the selected builtin
// theme and every config file have been applied.
type Config struct {
	LogLevel   string           `yaml:"log_level"`
	Display    string           `yaml:"display"`
	Decoration DecorationConfig `yaml:"decoration"`
	Theme      ThemeConfig      `yaml:"theme"`
}

// DecorationConfig selects which decoration elements are built.
type DecorationConfig struct {
	Titlebar     bool    `yaml:"titlebar"`
	Shadows      bool    `yaml:"shadows"`
	CornerRadius int     `yaml:"corner_radius"`
	TitleJustify string  `yaml:"title_justify"`
	FontSize     float64 `yaml:"font_size"`
	// FontFile is an optional TrueType/OpenType file used for titles. The
	// bundled Go Regular face is used when empty.
	FontFile string `yaml:"font_file,omitempty"`
}

// ThemeConfig holds the metrics and colors decorations are drawn with.
type ThemeConfig struct {
	Inherits         string      `yaml:"inherits"`
	BorderWidth      int         `yaml:"border_width"`
	PaddingHeight    int         `yaml:"padding_height"`
	PaddingWidth     int         `yaml:"padding_width"`
	ButtonHoverColor string      `yaml:"button_hover_color"`
	Active           StateConfig `yaml:"active"`
	Inactive         StateConfig `yaml:"inactive"`
}

// StateConfig is the per-focus-state part of a theme.
type StateConfig struct {
	BorderColor    string       `yaml:"border_color"`
	TitleBgColor   string       `yaml:"title_bg_color"`
	LabelTextColor string       `yaml:"label_text_color"`
	ButtonColor    string       `yaml:"button_color"`
	Shadow         ShadowConfig `yaml:"shadow"`
}

type ShadowConfig struct {
	Radius int    `yaml:"radius"`
	Inset  int    `yaml:"inset"`
	Color  string `yaml:"color"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	theme := BuiltinThemes()[DefaultBuiltinTheme]
	return &Config{
		LogLevel: "info",
		Decoration: DecorationConfig{
			Titlebar:     true,
			Shadows:      true,
			CornerRadius: 8,
			TitleJustify: "center",
			FontSize:     10,
		},
		Theme: theme,
	}
}

// Validate checks ranges and enumerations of the effective config.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warn, error")}
	}

	d := c.Decoration
	if d.CornerRadius < 0 {
		return &ValidationError{Path: "decoration.corner_radius", Err: fmt.Errorf("corner_radius must be >= 0")}
	}
	switch d.TitleJustify {
	case "left", "center", "right":
	default:
		return &ValidationError{Path: "decoration.title_justify", Err: fmt.Errorf("title_justify must be one of: left, center, right")}
	}
	if d.FontSize <= 0 {
		return &ValidationError{Path: "decoration.font_size", Err: fmt.Errorf("font_size must be > 0")}
	}

	t := c.Theme
	if t.BorderWidth < 0 {
		return &ValidationError{Path: "theme.border_width", Err: fmt.Errorf("border_width must be >= 0")}
	}
	if t.PaddingHeight < 0 {
		return &ValidationError{Path: "theme.padding_height", Err: fmt.Errorf("padding_height must be >= 0")}
	}
	if t.PaddingWidth < 0 {
		return &ValidationError{Path: "theme.padding_width", Err: fmt.Errorf("padding_width must be >= 0")}
	}
	if _, err := ParseColor(t.ButtonHoverColor); err != nil {
		return &ValidationError{Path: "theme.button_hover_color", Err: err}
	}
	if err := t.Active.validate("theme.active"); err != nil {
		return err
	}
	return t.Inactive.validate("theme.inactive")
}

func (s StateConfig) validate(prefix string) error {
	colors := []struct {
		key   string
		value string
	}{
		{"border_color", s.BorderColor},
		{"title_bg_color", s.TitleBgColor},
		{"label_text_color", s.LabelTextColor},
		{"button_color", s.ButtonColor},
		{"shadow.color", s.Shadow.Color},
	}
	for _, c := range colors {
		if _, err := ParseColor(c.value); err != nil {
			return &ValidationError{Path: prefix + "." + c.key, Err: err}
		}
	}
	if s.Shadow.Radius < 0 {
		return &ValidationError{Path: prefix + ".shadow.radius", Err: fmt.Errorf("radius must be >= 0")}
	}
	if s.Shadow.Inset < 0 {
		return &ValidationError{Path: prefix + ".shadow.inset", Err: fmt.Errorf("inset must be >= 0")}
	}
	return nil
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q: expected #rgb, #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
