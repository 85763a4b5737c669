package util

import (
    "os"

    "github.com/charmbracelet/lipgloss"

    "contextmd/internal/config"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
    if explicit {
        return true
    }
    return os.Getenv("NO_COLOR") != ""
}

// Palette defines a small set of colors used across widgets.
type Palette struct {
    Primary lipgloss.Color
    Success lipgloss.Color
    Danger  lipgloss.Color
    Text    lipgloss.Color
    Muted   lipgloss.Color
    Border  lipgloss.Color
    Surface lipgloss.Color
    ChipFg  lipgloss.Color
}

// DarkPalette is used when the effective theme is dark.
func DarkPalette() Palette {
    return Palette{
        Primary: lipgloss.Color("#6D8EFF"),
        Success: lipgloss.Color("#2AA876"),
        Danger:  lipgloss.Color("#D9534F"),
        Text:    lipgloss.Color("#E6EDF3"),
        Muted:   lipgloss.Color("#8B949E"),
        Border:  lipgloss.Color("#3D444D"),
        Surface: lipgloss.Color("#161B22"),
        ChipFg:  lipgloss.Color("#FFFFFF"),
    }
}

// LightPalette is used when the effective theme is light.
func LightPalette() Palette {
    return Palette{
        Primary: lipgloss.Color("#3D6DFF"),
        Success: lipgloss.Color("#1A7F52"),
        Danger:  lipgloss.Color("#C0392B"),
        Text:    lipgloss.Color("#1F2328"),
        Muted:   lipgloss.Color("#6C757D"),
        Border:  lipgloss.Color("#D0D7DE"),
        Surface: lipgloss.Color("#F6F8FA"),
        ChipFg:  lipgloss.Color("#FFFFFF"),
    }
}

// PaletteFor picks the palette for an effective (non-system) theme.
func PaletteFor(theme config.ThemeMode) Palette {
    if theme == config.Light {
        return LightPalette()
    }
    return DarkPalette()
}
