package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
	Color1  string // text and path entries
	Color2  string // numeric spinners
	Color3  string // checkboxes and switches
	Color4  string // select boxes
	Color5  string // composite entries
	Color6  string // date/time entries
	Color7  string // disabled entries
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{
	"default",
	"mono",
	"ocean",
	"contrast",
}

// ThemeNames lists all themes with explicit dark/light variants.
var ThemeNames = []string{
	"default-dark", "default-light",
	"mono-dark", "mono-light",
	"ocean-dark", "ocean-light",
	"contrast-dark", "contrast-light",
}

// Themes contains the built-in color themes.
// Dark themes use BRIGHT colors (high contrast on dark backgrounds).
// Light themes use DARK colors (high contrast on light/white backgrounds).
var Themes = map[string]ColorConfig{
	// Classic dark - traditional bright terminal colors for dark backgrounds.
	// Uses the standard 16-color palette for maximum compatibility.
	"default-dark": {
		Success: "10",  // bright green
		Warning: "11",  // bright yellow
		Error:   "9",   // bright red
		Info:    "14",  // bright cyan
		Muted:   "245", // gray
		Header:  "bold",
		Color1:  "10",
		Color2:  "13",
		Color3:  "12",
		Color4:  "14",
		Color5:  "11",
		Color6:  "8",
		Color7:  "240",
	},

	"default-light": {
		Success: "2",   // dark green
		Warning: "3",   // dark yellow
		Error:   "1",   // dark red
		Info:    "4",   // dark blue
		Muted:   "243", // medium gray
		Header:  "bold",
		Color1:  "2",
		Color2:  "5",
		Color3:  "4",
		Color4:  "6",
		Color5:  "3",
		Color6:  "8",
		Color7:  "245",
	},

	// Mono - single-hue grays for distraction-free terminals.
	"mono-dark": {
		Success: "252",
		Warning: "250",
		Error:   "255",
		Info:    "248",
		Muted:   "242",
		Header:  "bold",
		Color1:  "252",
		Color2:  "250",
		Color3:  "248",
		Color4:  "246",
		Color5:  "244",
		Color6:  "242",
		Color7:  "238",
	},

	"mono-light": {
		Success: "235",
		Warning: "238",
		Error:   "232",
		Info:    "240",
		Muted:   "247",
		Header:  "bold",
		Color1:  "235",
		Color2:  "238",
		Color3:  "240",
		Color4:  "242",
		Color5:  "244",
		Color6:  "246",
		Color7:  "250",
	},

	// Ocean - cool blues and teals.
	"ocean-dark": {
		Success: "48",  // spring green
		Warning: "222", // light gold
		Error:   "203", // soft red
		Info:    "81",  // sky blue
		Muted:   "244",
		Header:  "bold",
		Color1:  "48",
		Color2:  "111",
		Color3:  "75",
		Color4:  "81",
		Color5:  "87",
		Color6:  "67",
		Color7:  "240",
	},

	"ocean-light": {
		Success: "29", // sea green
		Warning: "94", // dark gold
		Error:   "88", // dark red
		Info:    "25", // deep blue
		Muted:   "243",
		Header:  "bold",
		Color1:  "29",
		Color2:  "26",
		Color3:  "24",
		Color4:  "25",
		Color5:  "30",
		Color6:  "60",
		Color7:  "245",
	},

	// Contrast dark - maximum readability with pure primaries.
	// High contrast, accessibility-focused.
	"contrast-dark": {
		Success: "46",  // pure bright green
		Warning: "226", // pure bright yellow
		Error:   "196", // pure bright red
		Info:    "51",  // pure bright cyan
		Muted:   "250", // bright gray
		Header:  "bold",
		Color1:  "46",
		Color2:  "201",
		Color3:  "21",
		Color4:  "51",
		Color5:  "226",
		Color6:  "245",
		Color7:  "231",
	},

	// Contrast light - maximum readability for light backgrounds.
	// Pure dark primaries, very accessible.
	"contrast-light": {
		Success: "22",  // dark green
		Warning: "130", // dark orange (yellow hard to read on white)
		Error:   "124", // dark red
		Info:    "21",  // dark blue
		Muted:   "240", // dark gray
		Header:  "bold",
		Color1:  "22",
		Color2:  "90",
		Color3:  "19",
		Color4:  "30",
		Color5:  "130",
		Color6:  "243",
		Color7:  "232",
	},
}

// colorConfigKeys maps config/env key names to ColorConfig field names.
var colorConfigKeys = map[string]string{
	"color_success": "Success",
	"color_warning": "Warning",
	"color_error":   "Error",
	"color_info":    "Info",
	"color_muted":   "Muted",
	"color_header":  "Header",
	"color_1":       "Color1",
	"color_2":       "Color2",
	"color_3":       "Color3",
	"color_4":       "Color4",
	"color_5":       "Color5",
	"color_6":       "Color6",
	"color_7":       "Color7",
}

// IsDarkBackground returns true if the terminal has a dark background.
// Uses termenv to query the terminal. Returns true if detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName takes a theme name and returns the full theme name.
// If the name doesn't have a -dark/-light suffix, it appends one based
// on terminal background detection.
func ResolveThemeName(name string) string {
	// If already has suffix, return as-is
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}

	// Auto-detect and append suffix
	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig from the given configuration map.
// Resolution priority:
// 1. Environment variable (CLIFORM_COLOR_*)
// 2. Config file value
// 3. Theme value (from theme config)
// 4. Default theme (auto-detected based on terminal background)
func LoadColorConfig(cfg map[string]string) ColorConfig {
	// Start with auto-detected default
	themeName := ResolveThemeName("default")

	// Check env for theme override
	if envTheme := os.Getenv("CLIFORM_COLOR_THEME"); envTheme != "" {
		themeName = ResolveThemeName(envTheme)
	} else if cfgTheme, ok := cfg["theme"]; ok && cfgTheme != "" {
		themeName = ResolveThemeName(cfgTheme)
	}

	// Get base theme (fall back to default-dark if unknown)
	theme, ok := Themes[themeName]
	if !ok {
		theme = Themes["default-dark"]
	}

	// Apply overrides from config and env
	result := theme

	for configKey, fieldName := range colorConfigKeys {
		// Check env first (highest priority)
		envKey := "CLIFORM_" + toUpperSnake(configKey)
		if envVal := os.Getenv(envKey); envVal != "" {
			setColorField(&result, fieldName, envVal)
			continue
		}

		// Check config file
		if cfgVal, ok := cfg[configKey]; ok && cfgVal != "" {
			setColorField(&result, fieldName, cfgVal)
		}
	}

	return result
}

// setColorField sets a field on ColorConfig by name.
func setColorField(c *ColorConfig, field, value string) {
	switch field {
	case "Success":
		c.Success = value
	case "Warning":
		c.Warning = value
	case "Error":
		c.Error = value
	case "Info":
		c.Info = value
	case "Muted":
		c.Muted = value
	case "Header":
		c.Header = value
	case "Color1":
		c.Color1 = value
	case "Color2":
		c.Color2 = value
	case "Color3":
		c.Color3 = value
	case "Color4":
		c.Color4 = value
	case "Color5":
		c.Color5 = value
	case "Color6":
		c.Color6 = value
	case "Color7":
		c.Color7 = value
	}
}

// toUpperSnake converts "color_success" to "COLOR_SUCCESS".
func toUpperSnake(s string) string {
	result := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			result[i] = c - 'a' + 'A'
		} else {
			result[i] = c
		}
	}
	return string(result)
}
