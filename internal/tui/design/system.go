package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Spacing units
const (
	SpaceXS = 1
	SpaceSM = 2

	// Swatch dimensions in cells
	SwatchWidth  = 14
	SwatchHeight = 5
)

// Color Palette - Semantic colors with consistent light/dark mode support
var (
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}

	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}

	ColorBackground = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#0F0F0F",
	}
	ColorSurfaceAlt = lipgloss.AdaptiveColor{
		Light: "#F3F4F6",
		Dark:  "#262626",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#404040",
	}

	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	ColorHighlight = lipgloss.AdaptiveColor{
		Light: "#EEF2FF",
		Dark:  "#312E81",
	}
)

// Base Styles
var (
	TextSecondaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	TextErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, SpaceXS)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)
)

// Notation list styles
var (
	RowStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, SpaceXS)

	RowSelectedStyle = RowStyle.
				Bold(true).
				Background(ColorHighlight)

	RowLabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Width(10)
)

// Status Bar Styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurfaceAlt).
			Foreground(ColorText).
			Padding(0, SpaceSM).
			Height(1)

	StatusBarSuccessStyle = StatusBarStyle.
				Background(ColorSuccess).
				Foreground(ColorBackground)

	StatusBarErrorStyle = StatusBarStyle.
				Background(ColorError).
				Foreground(ColorBackground)

	StatusBarWarningStyle = StatusBarStyle.
				Background(ColorWarning).
				Foreground(ColorBackground)

	StatusBarInfoStyle = StatusBarStyle.
				Background(ColorInfo).
				Foreground(ColorBackground)
)

// SwatchStyle paints a block in the given "#RRGGBB" color.
func SwatchStyle(hex string) lipgloss.Style {
	return BorderStyle.
		Background(lipgloss.Color(hex)).
		Width(SwatchWidth).
		Height(SwatchHeight)
}

// EmptySwatchStyle is shown while the input does not parse.
var EmptySwatchStyle = BorderStyle.
	Width(SwatchWidth).
	Height(SwatchHeight).
	Foreground(ColorTextSecondary).
	Align(lipgloss.Center, lipgloss.Center)
