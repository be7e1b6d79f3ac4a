package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// IncludeList supports either:
//
//	include: "/path/to/theme.yaml"
//
// or:
//
//	include:
//	  - "/path/to/theme.yaml"
//	  - "/path/to/dir"
type IncludeList []string

func (l *IncludeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		*l = nil
		return nil
	case yaml.ScalarNode:
		if value.Tag != "!!str" {
			return fmt.Errorf("include must be a string or list of strings")
		}
		*l = []string{value.Value}
		return nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return fmt.Errorf("include entries must be strings")
			}
			out = append(out, item.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("include must be a string or list of strings")
	}
}

type RawShadow struct {
	Radius *int    `yaml:"radius"`
	Inset  *int    `yaml:"inset"`
	Color  *string `yaml:"color"`
}

type RawState struct {
	BorderColor    *string    `yaml:"border_color"`
	TitleBgColor   *string    `yaml:"title_bg_color"`
	LabelTextColor *string    `yaml:"label_text_color"`
	ButtonColor    *string    `yaml:"button_color"`
	Shadow         *RawShadow `yaml:"shadow"`
}

type RawTheme struct {
	Inherits         *string   `yaml:"inherits"`
	BorderWidth      *int      `yaml:"border_width"`
	PaddingHeight    *int      `yaml:"padding_height"`
	PaddingWidth     *int      `yaml:"padding_width"`
	ButtonHoverColor *string   `yaml:"button_hover_color"`
	Active           *RawState `yaml:"active"`
	Inactive         *RawState `yaml:"inactive"`
}

type RawDecoration struct {
	Titlebar     *bool    `yaml:"titlebar"`
	Shadows      *bool    `yaml:"shadows"`
	CornerRadius *int     `yaml:"corner_radius"`
	TitleJustify *string  `yaml:"title_justify"`
	FontSize     *float64 `yaml:"font_size"`
	FontFile     *string  `yaml:"font_file"`
}

type RawConfig struct {
	Include    IncludeList    `yaml:"include"`
	LogLevel   *string        `yaml:"log_level"`
	Display    *string        `yaml:"display"`
	Decoration *RawDecoration `yaml:"decoration"`
	Theme      *RawTheme      `yaml:"theme"`
}

func (c RawConfig) merge(overlay RawConfig) RawConfig {
	out := c

	if overlay.LogLevel != nil {
		out.LogLevel = overlay.LogLevel
	}
	if overlay.Display != nil {
		out.Display = overlay.Display
	}
	if overlay.Decoration != nil {
		base := RawDecoration{}
		if out.Decoration != nil {
			base = *out.Decoration
		}
		merged := mergeRawDecoration(base, *overlay.Decoration)
		out.Decoration = &merged
	}
	if overlay.Theme != nil {
		base := RawTheme{}
		if out.Theme != nil {
			base = *out.Theme
		}
		merged := mergeRawTheme(base, *overlay.Theme)
		out.Theme = &merged
	}

	return out
}

func mergeRawDecoration(base RawDecoration, overlay RawDecoration) RawDecoration {
	out := base
	if overlay.Titlebar != nil {
		out.Titlebar = overlay.Titlebar
	}
	if overlay.Shadows != nil {
		out.Shadows = overlay.Shadows
	}
	if overlay.CornerRadius != nil {
		out.CornerRadius = overlay.CornerRadius
	}
	if overlay.TitleJustify != nil {
		out.TitleJustify = overlay.TitleJustify
	}
	if overlay.FontSize != nil {
		out.FontSize = overlay.FontSize
	}
	if overlay.FontFile != nil {
		out.FontFile = overlay.FontFile
	}
	return out
}

func mergeRawTheme(base RawTheme, overlay RawTheme) RawTheme {
	out := base
	if overlay.Inherits != nil {
		out.Inherits = overlay.Inherits
	}
	if overlay.BorderWidth != nil {
		out.BorderWidth = overlay.BorderWidth
	}
	if overlay.PaddingHeight != nil {
		out.PaddingHeight = overlay.PaddingHeight
	}
	if overlay.PaddingWidth != nil {
		out.PaddingWidth = overlay.PaddingWidth
	}
	if overlay.ButtonHoverColor != nil {
		out.ButtonHoverColor = overlay.ButtonHoverColor
	}
	out.Active = mergeRawStatePtr(out.Active, overlay.Active)
	out.Inactive = mergeRawStatePtr(out.Inactive, overlay.Inactive)
	return out
}

func mergeRawStatePtr(base *RawState, overlay *RawState) *RawState {
	if overlay == nil {
		return base
	}
	merged := RawState{}
	if base != nil {
		merged = *base
	}
	merged = mergeRawState(merged, *overlay)
	return &merged
}

func mergeRawState(base RawState, overlay RawState) RawState {
	out := base
	if overlay.BorderColor != nil {
		out.BorderColor = overlay.BorderColor
	}
	if overlay.TitleBgColor != nil {
		out.TitleBgColor = overlay.TitleBgColor
	}
	if overlay.LabelTextColor != nil {
		out.LabelTextColor = overlay.LabelTextColor
	}
	if overlay.ButtonColor != nil {
		out.ButtonColor = overlay.ButtonColor
	}
	if overlay.Shadow != nil {
		shadow := RawShadow{}
		if out.Shadow != nil {
			shadow = *out.Shadow
		}
		if overlay.Shadow.Radius != nil {
			shadow.Radius = overlay.Shadow.Radius
		}
		if overlay.Shadow.Inset != nil {
			shadow.Inset = overlay.Shadow.Inset
		}
		if overlay.Shadow.Color != nil {
			shadow.Color = overlay.Shadow.Color
		}
		out.Shadow = &shadow
	}
	return out
}
