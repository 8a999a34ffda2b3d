package main

import "github.com/charmbracelet/lipgloss"

// XRPL blue on dark or light backgrounds.
const (
	colorBrand     lipgloss.Color = "#3052ff"
	colorBrandDark lipgloss.Color = "#6f88ff"
	colorGreen     lipgloss.Color = "#2e9e52"
	colorRed       lipgloss.Color = "#d93b3b"
	colorYellow    lipgloss.Color = "#c99a00"

	colorTextDark  lipgloss.Color = "#e6e8f0"
	colorMutedDark lipgloss.Color = "#8a90a6"
	colorLineDark  lipgloss.Color = "#3b3f51"

	colorTextLight  lipgloss.Color = "#1b1e2b"
	colorMutedLight lipgloss.Color = "#6b7085"
	colorLineLight  lipgloss.Color = "#c9ccd8"
)

type theme struct {
	dark bool

	title   lipgloss.Style
	heading lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	warn    lipgloss.Style
	box     lipgloss.Style
	footer  lipgloss.Style
}

func themeFor(dark bool) theme {
	if dark {
		return newTheme(true, colorBrandDark, colorTextDark, colorMutedDark, colorLineDark)
	}
	return newTheme(false, colorBrand, colorTextLight, colorMutedLight, colorLineLight)
}

func newTheme(dark bool, brand, text, muted, line lipgloss.Color) theme {
	return theme{
		dark:    dark,
		title:   lipgloss.NewStyle().Bold(true).Foreground(brand),
		heading: lipgloss.NewStyle().Bold(true).Foreground(text),
		label:   lipgloss.NewStyle().Foreground(muted).Width(26),
		value:   lipgloss.NewStyle().Foreground(text),
		muted:   lipgloss.NewStyle().Foreground(muted),
		good:    lipgloss.NewStyle().Foreground(colorGreen),
		bad:     lipgloss.NewStyle().Foreground(colorRed),
		warn:    lipgloss.NewStyle().Foreground(colorYellow),
		box:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(line).Padding(0, 1),
		footer:  lipgloss.NewStyle().Foreground(muted).MarginTop(1),
	}
}
