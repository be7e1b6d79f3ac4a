package config

const DefaultBuiltinTheme = "default"

// BuiltinThemes returns the themes selectable with theme.inherits.
func BuiltinThemes() map[string]ThemeConfig {
	return map[string]ThemeConfig{
		"default": {
			Inherits:         "default",
			BorderWidth:      1,
			PaddingHeight:    3,
			PaddingWidth:     0,
			ButtonHoverColor: "#00000020",
			Active: StateConfig{
				BorderColor:    "#e1dedb",
				TitleBgColor:   "#e1dedb",
				LabelTextColor: "#000000",
				ButtonColor:    "#000000",
				Shadow:         ShadowConfig{Radius: 60, Inset: 0, Color: "#00000060"},
			},
			Inactive: StateConfig{
				BorderColor:    "#f6f5f4",
				TitleBgColor:   "#f6f5f4",
				LabelTextColor: "#000000",
				ButtonColor:    "#000000",
				Shadow:         ShadowConfig{Radius: 40, Inset: 0, Color: "#00000040"},
			},
		},
		"dark": {
			Inherits:         "dark",
			BorderWidth:      2,
			PaddingHeight:    4,
			PaddingWidth:     4,
			ButtonHoverColor: "#ffffff30",
			Active: StateConfig{
				BorderColor:    "#3b4252",
				TitleBgColor:   "#3b4252",
				LabelTextColor: "#eceff4",
				ButtonColor:    "#d8dee9",
				Shadow:         ShadowConfig{Radius: 48, Inset: 4, Color: "#00000080"},
			},
			Inactive: StateConfig{
				BorderColor:    "#2e3440",
				TitleBgColor:   "#2e3440",
				LabelTextColor: "#7b8394",
				ButtonColor:    "#7b8394",
				Shadow:         ShadowConfig{Radius: 32, Inset: 4, Color: "#00000060"},
			},
		},
	}
}
