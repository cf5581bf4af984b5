package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences so assertions see plain text.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"zero", "0", "0.00"},
		{"small", "500", "500.00"},
		{"thousands", "17010", "17,010.00"},
		{"millions", "1234567.891", "1,234,567.89"},
		{"fraction", "1020.6", "1,020.60"},
		{"negative", "-2500.5", "-2,500.50"},
		{"rounds to zero", "-0.001", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(decimal.RequireFromString(tt.input)))
		})
	}
}

func TestFormatPercent_TrimsTrailingZeros(t *testing.T) {
	assert.Equal(t, "30%", FormatPercent(decimal.RequireFromString("30.00")))
	assert.Equal(t, "12.5%", FormatPercent(decimal.RequireFromString("12.50")))
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "January 2024", PeriodLabel(2024, 1))
	assert.Equal(t, "February 2023", PeriodLabel(2023, 2))
}

func TestActivePill(t *testing.T) {
	assert.Contains(t, stripANSI(ActivePill(true)), "Active")
	assert.Contains(t, stripANSI(ActivePill(false)), "Inactive")
}

func TestSharedOutAndIn_Signs(t *testing.T) {
	amount := decimal.NewFromInt(1200)

	assert.Equal(t, "-1,200.00", stripANSI(SharedOut(amount)))
	assert.Equal(t, "+1,200.00", stripANSI(SharedIn(amount)))
	assert.Equal(t, "0.00", stripANSI(SharedOut(decimal.Zero)))
	assert.Equal(t, "0.00", stripANSI(SharedIn(decimal.Zero)))
}

func TestRenderBox_UppercasesTitle(t *testing.T) {
	out := stripANSI(RenderBox("cost report", "body"))

	assert.Contains(t, out, "COST REPORT")
	assert.Contains(t, out, "body")
	assert.True(t, strings.Contains(out, "╭"), "expected rounded border")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"NAME", "AMOUNT"},
		[][]string{{"North", "5.00"}, {"South site", "1,200.00"}},
		1,
	))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "NAME"+strings.Repeat(" ", 10)+"AMOUNT", lines[0])
	assert.Equal(t, "North"+strings.Repeat(" ", 11)+"5.00", lines[2])
	assert.Equal(t, "South site  1,200.00", lines[3])
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}
