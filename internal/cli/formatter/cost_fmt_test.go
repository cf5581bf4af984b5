package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleCalc() *domain.CostSharingCalculation {
	return &domain.CostSharingCalculation{
		ProjectID:    "a",
		ProjectName:  "North",
		OriginalCost: dec("17010"),
		SharedOut:    dec("5103"),
		SharedIn:     dec("1000"),
		NetCost:      dec("12907"),
		Outgoing: []domain.ShareLine{
			{CounterpartyID: "b", CounterpartyName: "South", Percentage: dec("30"), Base: dec("17010"), Amount: dec("5103")},
		},
		Incoming: []domain.ShareLine{
			{CounterpartyID: "c", CounterpartyName: "East", Percentage: dec("10"), Base: dec("10000"), Amount: dec("1000")},
		},
	}
}

func TestFormatProjectCost_ShowsBreakdown(t *testing.T) {
	out := stripANSI(FormatProjectCost(sampleCalc(), 2024, 1))

	assert.Contains(t, out, "COST BREAKDOWN")
	assert.Contains(t, out, "North")
	assert.Contains(t, out, "January 2024")
	assert.Contains(t, out, "17,010.00")
	assert.Contains(t, out, "-5,103.00")
	assert.Contains(t, out, "+1,000.00")
	assert.Contains(t, out, "12,907.00")
	assert.Contains(t, out, "South")
	assert.Contains(t, out, "East")
}

func TestFormatProjectCost_OmitsEmptyShareSections(t *testing.T) {
	calc := &domain.CostSharingCalculation{
		ProjectName:  "Solo",
		OriginalCost: dec("500"),
		NetCost:      dec("500"),
	}

	out := stripANSI(FormatProjectCost(calc, 2024, 2))

	assert.NotContains(t, out, "SHARED OUT")
	assert.Equal(t, 2, strings.Count(out, "500.00"))
}

func TestFormatCostReport_AddsTotals(t *testing.T) {
	calcs := []*domain.CostSharingCalculation{
		{ProjectName: "Alpha", OriginalCost: dec("1000"), SharedOut: dec("300"), NetCost: dec("700")},
		{ProjectName: "Bravo", OriginalCost: dec("500"), SharedIn: dec("300"), NetCost: dec("800")},
	}

	out := stripANSI(FormatCostReport(calcs, 2024, 1))

	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "1,500.00")
	assert.Less(t, strings.Index(out, "Alpha"), strings.Index(out, "Bravo"))
}

func TestFormatCostReport_Empty(t *testing.T) {
	assert.Contains(t, stripANSI(FormatCostReport(nil, 2024, 1)), "No active projects")
}

func TestFormatStaffCosts(t *testing.T) {
	project := &domain.Project{ShortID: "SITE01", Name: "North"}
	costs := []domain.StaffCost{
		{StaffID: "s1", StaffCode: "S001", StaffName: "Anan", WagePerDay: dec("500"), WorkedDays: 20, Total: dec("10000")},
		{StaffID: "s2", StaffCode: "S002", StaffName: "Boon", WagePerDay: dec("700.50"), WorkedDays: 10, Total: dec("7005")},
	}

	out := stripANSI(FormatStaffCosts(project, costs, 2024, 1))

	assert.Contains(t, out, "S001")
	assert.Contains(t, out, "700.50")
	assert.Contains(t, out, "17,005.00")
	assert.Contains(t, out, "30")
}
