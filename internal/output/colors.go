package output

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode represents the color output mode
type ColorMode int

const (
	// ColorAuto enables colors if output is a TTY
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever disables colors
	ColorNever
)

// Colors holds the color functions for different output types
type Colors struct {
	Name     func(format string, a ...interface{}) string
	Category func(format string, a ...interface{}) string
	MRT      func(format string, a ...interface{}) string
	Address  func(format string, a ...interface{}) string
	Price    func(format string, a ...interface{}) string
	Favorite func(format string, a ...interface{}) string
	Paid     func(format string, a ...interface{}) string
	Unpaid   func(format string, a ...interface{}) string
	Header   func(format string, a ...interface{}) string
	Muted    func(format string, a ...interface{}) string
}

// NewColors creates a new Colors instance based on the color mode
func NewColors(mode ColorMode) *Colors {
	// Determine if we should use colors
	useColors := false
	switch mode {
	case ColorAlways:
		useColors = true
		color.NoColor = false // Force colors on
	case ColorNever:
		useColors = false
	case ColorAuto:
		useColors = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	if !useColors {
		// Return no-op color functions
		noColor := func(format string, a ...interface{}) string {
			if len(a) == 0 {
				return format
			}
			return color.New().Sprintf(format, a...)
		}
		return &Colors{
			Name:     noColor,
			Category: noColor,
			MRT:      noColor,
			Address:  noColor,
			Price:    noColor,
			Favorite: noColor,
			Paid:     noColor,
			Unpaid:   noColor,
			Header:   noColor,
			Muted:    noColor,
		}
	}

	// Create colored functions
	return &Colors{
		Name:     color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Category: color.New(color.FgCyan).SprintfFunc(),
		MRT:      color.New(color.FgMagenta).SprintfFunc(),
		Address:  color.New(color.FgWhite).SprintfFunc(),
		Price:    color.New(color.FgYellow, color.Bold).SprintfFunc(),
		Favorite: color.New(color.FgRed, color.Bold).SprintfFunc(),
		Paid:     color.New(color.FgGreen).SprintfFunc(),
		Unpaid:   color.New(color.FgRed, color.Bold).SprintfFunc(),
		Header:   color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Muted:    color.New(color.FgHiBlack).SprintfFunc(),
	}
}

// FormatPayment renders a payment outcome with the matching color.
func (c *Colors) FormatPayment(paid bool, message string) string {
	if message == "" {
		if paid {
			message = "paid"
		} else {
			message = "unpaid"
		}
	}
	if paid {
		return c.Paid("%s", message)
	}
	return c.Unpaid("%s", message)
}

// ParseColorMode parses a color mode string
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}
