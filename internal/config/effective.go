package config

import (
	"fmt"
	"sort"
	"strings"
)

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BuildEffectiveConfig applies raw on top of the defaults and the builtin
// theme named by theme.inherits.
func BuildEffectiveConfig(raw RawConfig) (*Config, error) {
	cfg := DefaultConfig()

	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}
	if raw.Display != nil {
		cfg.Display = *raw.Display
	}
	if d := raw.Decoration; d != nil {
		if d.Titlebar != nil {
			cfg.Decoration.Titlebar = *d.Titlebar
		}
		if d.Shadows != nil {
			cfg.Decoration.Shadows = *d.Shadows
		}
		if d.CornerRadius != nil {
			cfg.Decoration.CornerRadius = *d.CornerRadius
		}
		if d.TitleJustify != nil {
			cfg.Decoration.TitleJustify = strings.ToLower(strings.TrimSpace(*d.TitleJustify))
		}
		if d.FontSize != nil {
			cfg.Decoration.FontSize = *d.FontSize
		}
		if d.FontFile != nil {
			cfg.Decoration.FontFile = *d.FontFile
		}
	}

	if raw.Theme != nil {
		theme, err := applyTheme(*raw.Theme)
		if err != nil {
			return nil, err
		}
		cfg.Theme = theme
	}

	return cfg, nil
}

func applyTheme(raw RawTheme) (ThemeConfig, error) {
	builtin := BuiltinThemes()
	name := DefaultBuiltinTheme
	if raw.Inherits != nil {
		name = strings.TrimSpace(*raw.Inherits)
	}
	theme, ok := builtin[name]
	if !ok {
		return ThemeConfig{}, &ValidationError{
			Path: "theme.inherits",
			Err:  fmt.Errorf("unknown builtin theme %q (available: %s)", name, strings.Join(sortedKeys(builtin), ", ")),
		}
	}

	if raw.BorderWidth != nil {
		theme.BorderWidth = *raw.BorderWidth
	}
	if raw.PaddingHeight != nil {
		theme.PaddingHeight = *raw.PaddingHeight
	}
	if raw.PaddingWidth != nil {
		theme.PaddingWidth = *raw.PaddingWidth
	}
	if raw.ButtonHoverColor != nil {
		theme.ButtonHoverColor = *raw.ButtonHoverColor
	}
	if raw.Active != nil {
		theme.Active = applyState(theme.Active, *raw.Active)
	}
	if raw.Inactive != nil {
		theme.Inactive = applyState(theme.Inactive, *raw.Inactive)
	}
	return theme, nil
}

func applyState(base StateConfig, raw RawState) StateConfig {
	out := base
	out.BorderColor = derefString(raw.BorderColor, out.BorderColor)
	out.TitleBgColor = derefString(raw.TitleBgColor, out.TitleBgColor)
	out.LabelTextColor = derefString(raw.LabelTextColor, out.LabelTextColor)
	out.ButtonColor = derefString(raw.ButtonColor, out.ButtonColor)
	if raw.Shadow != nil {
		out.Shadow.Radius = derefInt(raw.Shadow.Radius, out.Shadow.Radius)
		out.Shadow.Inset = derefInt(raw.Shadow.Inset, out.Shadow.Inset)
		out.Shadow.Color = derefString(raw.Shadow.Color, out.Shadow.Color)
	}
	return out
}

func derefInt(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func derefString(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
