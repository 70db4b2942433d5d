package output

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/taipei-trip/trip-cli/internal/testutil"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input string
		want  ColorMode
	}{
		{"always", ColorAlways},
		{"never", ColorNever},
		{"auto", ColorAuto},
		{"", ColorAuto},        // default
		{"invalid", ColorAuto}, // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseColorMode(tt.input)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestNewColors_NeverMode(t *testing.T) {
	// Save and restore color state
	oldNoColor := color.NoColor
	defer func() { color.NoColor = oldNoColor }()
	color.NoColor = true

	c := NewColors(ColorNever)

	// Test that all color functions return uncolored strings
	testutil.AssertEqual(t, c.Name("平安鐘"), "平安鐘")
	testutil.AssertEqual(t, c.Category("公共藝術"), "公共藝術")
	testutil.AssertEqual(t, c.MRT("忠孝復興"), "忠孝復興")
	testutil.AssertEqual(t, c.Address("臺北市大安區"), "臺北市大安區")
	testutil.AssertEqual(t, c.Price("TWD 2000"), "TWD 2000")
	testutil.AssertEqual(t, c.Favorite("♥"), "♥")
	testutil.AssertEqual(t, c.Paid("paid"), "paid")
	testutil.AssertEqual(t, c.Unpaid("unpaid"), "unpaid")
	testutil.AssertEqual(t, c.Header("Orders:"), "Orders:")
	testutil.AssertEqual(t, c.Muted("details"), "details")
}

func TestNewColors_AlwaysMode(t *testing.T) {
	c := NewColors(ColorAlways)

	// Test that color functions return ANSI-escaped strings
	// We check for ANSI escape sequences (starting with \033[)
	result := c.Name("平安鐘")
	testutil.AssertContains(t, result, "\033[")
	testutil.AssertContains(t, result, "平安鐘")

	result = c.Price("TWD %d", 2000)
	testutil.AssertContains(t, result, "\033[")
	testutil.AssertContains(t, result, "TWD 2000")
}

func TestFormatPayment(t *testing.T) {
	// Disable colors so we compare plain strings
	oldNoColor := color.NoColor
	defer func() { color.NoColor = oldNoColor }()
	color.NoColor = true

	c := NewColors(ColorNever)

	tests := []struct {
		name    string
		paid    bool
		message string
		want    string
	}{
		{name: "paid with server message", paid: true, message: "付款成功", want: "付款成功"},
		{name: "unpaid with server message", paid: false, message: "付款失敗", want: "付款失敗"},
		{name: "paid without message", paid: true, message: "", want: "paid"},
		{name: "unpaid without message", paid: false, message: "", want: "unpaid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.FormatPayment(tt.paid, tt.message)
			if !strings.Contains(got, tt.want) {
				t.Errorf("FormatPayment(%v, %q) = %q, want substring %q", tt.paid, tt.message, got, tt.want)
			}
		})
	}
}
