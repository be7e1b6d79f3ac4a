package config

import (
	"fmt"
	"strings"
)

// Explain returns the effective value at the given YAML-like path and its
// source. Paths mirror the file layout, for example:
//
//	log_level
//	decoration.corner_radius
//	theme.border_width
//	theme.active.shadow.radius
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, ok := res.Config.values()[path]
	if !ok {
		return nil, Source{}, fmt.Errorf("unknown path: %s", path)
	}

	// Exact-path file source wins.
	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}

	if strings.HasPrefix(path, "theme.") {
		return value, Source{Kind: SourceBuiltin, Name: res.Config.Theme.Inherits}, nil
	}
	return value, Source{Kind: SourceDefault, Name: "defaults"}, nil
}

// Paths lists every path accepted by Explain.
func Paths() []string {
	return sortedKeys(DefaultConfig().values())
}

func (c *Config) values() map[string]any {
	out := map[string]any{
		"log_level":                c.LogLevel,
		"display":                  c.Display,
		"decoration.titlebar":      c.Decoration.Titlebar,
		"decoration.shadows":       c.Decoration.Shadows,
		"decoration.corner_radius": c.Decoration.CornerRadius,
		"decoration.title_justify": c.Decoration.TitleJustify,
		"decoration.font_size":     c.Decoration.FontSize,
		"decoration.font_file":     c.Decoration.FontFile,
		"theme.inherits":           c.Theme.Inherits,
		"theme.border_width":       c.Theme.BorderWidth,
		"theme.padding_height":     c.Theme.PaddingHeight,
		"theme.padding_width":      c.Theme.PaddingWidth,
		"theme.button_hover_color": c.Theme.ButtonHoverColor,
	}
	for prefix, s := range map[string]StateConfig{
		"theme.active":   c.Theme.Active,
		"theme.inactive": c.Theme.Inactive,
	} {
		out[prefix+".border_color"] = s.BorderColor
		out[prefix+".title_bg_color"] = s.TitleBgColor
		out[prefix+".label_text_color"] = s.LabelTextColor
		out[prefix+".button_color"] = s.ButtonColor
		out[prefix+".shadow.radius"] = s.Shadow.Radius
		out[prefix+".shadow.inset"] = s.Shadow.Inset
		out[prefix+".shadow.color"] = s.Shadow.Color
	}
	return out
}

// FormatSource renders a source for human readable output.
func FormatSource(src Source) string {
	switch src.Kind {
	case SourceFile:
		return fmt.Sprintf("%s:%d:%d", src.File, src.Line, src.Column)
	case SourceBuiltin:
		return "builtin theme " + src.Name
	default:
		return "default"
	}
}
