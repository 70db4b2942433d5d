package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors matching existing output/colors.go scheme
var (
	colorCyan    = lipgloss.Color("6")  // Cyan - categories
	colorYellow  = lipgloss.Color("3")  // Yellow - prices, loading
	colorRed     = lipgloss.Color("1")  // Red - favorites, errors
	colorGreen   = lipgloss.Color("2")  // Green - paid, success
	colorMagenta = lipgloss.Color("5")  // Magenta - MRT stations
	colorWhite   = lipgloss.Color("15") // White - names, text
	colorGray    = lipgloss.Color("8")  // Gray - muted text
)

// Text styles
var (
	styleName     = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleCategory = lipgloss.NewStyle().Foreground(colorCyan)
	styleMRT      = lipgloss.NewStyle().Foreground(colorMagenta)
	stylePrice    = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	styleFavorite = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleSuccess  = lipgloss.NewStyle().Foreground(colorGreen)
	styleMuted    = lipgloss.NewStyle().Foreground(colorGray)
	styleHeader   = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
)

// Panel border styles
var (
	stylePanelFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorCyan)

	stylePanelNormal = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorGray)
)

// Selected item in a list
var styleSelected = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)

// Focused chip cursor in the MRT bar — reverse-video style
var styleChipCursor = lipgloss.NewStyle().
	Foreground(lipgloss.Color("0")).
	Background(colorCyan).
	Bold(true)

// Status bar at the bottom
var styleStatusBar = lipgloss.NewStyle().
	Foreground(colorGray).
	Background(lipgloss.Color("0"))

// Loading indicator
var styleLoading = lipgloss.NewStyle().Foreground(colorYellow).Italic(true)

// Error text
var styleError = lipgloss.NewStyle().Foreground(colorRed)

// Logo/brand style
var styleLogo = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
