package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Design System Colors - Adaptive based on terminal background
var (
	ColorPrimary   lipgloss.Color
	ColorSecondary lipgloss.Color
	ColorAccent    lipgloss.Color

	// Semantic colors
	ColorSuccess lipgloss.Color
	ColorWarning lipgloss.Color
	ColorError   lipgloss.Color
	ColorInfo    lipgloss.Color

	// Neutral colors (contrast-adaptive)
	ColorText      lipgloss.Color
	ColorTextMuted lipgloss.Color
	ColorTextDim   lipgloss.Color
	ColorBorder    lipgloss.Color
	ColorSurface   lipgloss.Color
)

func init() {
	initializeColors()
	initializeStyles()
}

// initializeColors sets up adaptive colors based on terminal background
func initializeColors() {
	if os.Getenv("GLAMOUR_STYLE") == "light" {
		setLightThemeColors()
		return
	}
	if os.Getenv("GLAMOUR_STYLE") == "dark" {
		setDarkThemeColors()
		return
	}

	if lipgloss.HasDarkBackground() {
		setDarkThemeColors()
	} else {
		setLightThemeColors()
	}
}

func setDarkThemeColors() {
	ColorPrimary = lipgloss.Color("33")   // Bright blue
	ColorSecondary = lipgloss.Color("45") // Cyan
	ColorAccent = lipgloss.Color("214")   // Bright orange

	ColorSuccess = lipgloss.Color("10") // Bright green
	ColorWarning = lipgloss.Color("11") // Bright yellow
	ColorError = lipgloss.Color("9")    // Bright red
	ColorInfo = lipgloss.Color("12")    // Bright blue

	ColorText = lipgloss.Color("252")      // Near white
	ColorTextMuted = lipgloss.Color("244") // Light gray
	ColorTextDim = lipgloss.Color("240")   // Medium gray
	ColorBorder = lipgloss.Color("238")    // Dark gray
	ColorSurface = lipgloss.Color("236")   // Slightly lighter dark gray
}

func setLightThemeColors() {
	ColorPrimary = lipgloss.Color("24")   // Darker blue
	ColorSecondary = lipgloss.Color("30") // Darker cyan
	ColorAccent = lipgloss.Color("130")   // Darker orange

	ColorSuccess = lipgloss.Color("22")  // Dark green
	ColorWarning = lipgloss.Color("136") // Dark yellow/orange
	ColorError = lipgloss.Color("160")   // Dark red
	ColorInfo = lipgloss.Color("24")     // Dark blue

	ColorText = lipgloss.Color("232")      // Near black
	ColorTextMuted = lipgloss.Color("240") // Dark gray
	ColorTextDim = lipgloss.Color("244")   // Medium gray
	ColorBorder = lipgloss.Color("248")    // Light gray
	ColorSurface = lipgloss.Color("254")   // Off-white
}

// Component Styles
var (
	StyleTitle lipgloss.Style

	StyleText      lipgloss.Style
	StyleTextMuted lipgloss.Style
	StyleTextDim   lipgloss.Style

	StyleSuccess lipgloss.Style
	StyleWarning lipgloss.Style
	StyleError   lipgloss.Style
	StyleInfo    lipgloss.Style

	StyleFormLabel lipgloss.Style
	StyleFormHelp  lipgloss.Style

	StyleBanner lipgloss.Style

	StyleFocused    lipgloss.Style
	StyleUnselected lipgloss.Style
)

func initializeStyles() {
	StyleTitle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	StyleText = lipgloss.NewStyle().
		Foreground(ColorText)

	StyleTextMuted = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	StyleTextDim = lipgloss.NewStyle().
		Foreground(ColorTextDim)

	StyleSuccess = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)

	StyleWarning = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true)

	StyleError = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	StyleInfo = lipgloss.NewStyle().
		Foreground(ColorInfo).
		Bold(true)

	StyleFormLabel = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)

	StyleFormHelp = lipgloss.NewStyle().
		Foreground(ColorTextDim).
		Italic(true)

	StyleBanner = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 2)

	StyleFocused = lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Background(ColorSecondary).
		Bold(true).
		Padding(0, 1)

	StyleUnselected = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)
}

// Status glyphs used in front of status lines
const (
	GlyphSuccess = "✔"
	GlyphWarning = "⚠"
	GlyphError   = "✖"
	GlyphInfo    = "ℹ"
)

// Success renders a green success line with its glyph.
func Success(text string) string {
	return StyleSuccess.Render(GlyphSuccess+" ") + StyleText.Render(text)
}

// Warning renders a yellow warning line with its glyph.
func Warning(text string) string {
	return StyleWarning.Render(GlyphWarning+" ") + StyleText.Render(text)
}

// Error renders a red error line with its glyph.
func Error(text string) string {
	return StyleError.Render(GlyphError+" ") + StyleText.Render(text)
}

// Info renders a blue informational line with its glyph.
func Info(text string) string {
	return StyleInfo.Render(GlyphInfo+" ") + StyleText.Render(text)
}
