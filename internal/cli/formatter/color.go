package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// AmountColor returns red for negative amounts and dim for zero.
func AmountColor(d decimal.Decimal) lipgloss.Style {
	switch d.Sign() {
	case -1:
		return StyleRed
	case 0:
		return StyleDim
	default:
		return StyleFg
	}
}

// Amount renders a money amount with AmountColor applied.
func Amount(d decimal.Decimal) string {
	return AmountColor(d).Render(FormatMoney(d))
}

// SharedOut renders an amount leaving a project, e.g. "-1,200.00".
func SharedOut(d decimal.Decimal) string {
	if d.IsZero() {
		return StyleDim.Render(FormatMoney(d))
	}
	return StyleYellow.Render("-" + FormatMoney(d))
}

// SharedIn renders an amount arriving at a project, e.g. "+1,200.00".
func SharedIn(d decimal.Decimal) string {
	if d.IsZero() {
		return StyleDim.Render(FormatMoney(d))
	}
	return StyleBlue.Render("+" + FormatMoney(d))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
