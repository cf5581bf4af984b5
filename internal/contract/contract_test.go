package contract

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestNewCostReport_TotalsSummedAsDecimals(t *testing.T) {
	calcs := []*domain.CostSharingCalculation{
		{ProjectID: "a", ProjectName: "Alpha", OriginalCost: dec("0.1"), SharedOut: dec("0"), SharedIn: dec("0"), NetCost: dec("0.1")},
		{ProjectID: "b", ProjectName: "Bravo", OriginalCost: dec("0.2"), SharedOut: dec("0"), SharedIn: dec("0"), NetCost: dec("0.2")},
	}

	report := NewCostReport(calcs, 2024, 1)
	assert.Equal(t, "2024-01", report.Period)
	require.Len(t, report.Projects, 2)
	// 0.1 + 0.2 in float64 would be 0.30000000000000004.
	assert.Equal(t, 0.3, report.Totals.TotalOriginal)
	assert.Equal(t, 0.3, report.Totals.TotalNet)
}

func TestProjectCostView_JSONUsesPlainNumbers(t *testing.T) {
	calc := &domain.CostSharingCalculation{
		ProjectID:    "b",
		ProjectName:  "Bravo",
		OriginalCost: dec("500"),
		SharedOut:    dec("0"),
		SharedIn:     dec("1000"),
		NetCost:      dec("1500"),
		Incoming: []domain.ShareLine{
			{CounterpartyID: "a", CounterpartyName: "Alpha", Percentage: dec("100"), Base: dec("1000"), Amount: dec("1000")},
		},
	}

	data, err := json.Marshal(NewProjectCostView(calc, 2024, 1))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, 1500.0, raw["net_cost"])
	assert.Equal(t, []any{}, raw["outgoing"])
	incoming := raw["incoming"].([]any)
	require.Len(t, incoming, 1)
	assert.Equal(t, 100.0, incoming[0].(map[string]any)["percentage"])
}

func TestNewRosterView_GroupsByStaff(t *testing.T) {
	sheet := &domain.RosterSheet{
		Roster: domain.Roster{ProjectID: "p", Year: 2024, Month: 2},
		Lines: []domain.RosterLine{
			{StaffID: "1", StaffCode: "A", Day: 1, ShiftCode: "1"},
			{StaffID: "1", StaffCode: "A", Day: 2, ShiftCode: "OFF"},
			{StaffID: "2", StaffCode: "B", Day: 1, ShiftCode: "ดึก"},
		},
	}

	v := NewRosterView(sheet)
	assert.Equal(t, "2024-02", v.Period)
	require.Len(t, v.Staff, 2)
	assert.Equal(t, map[int]string{1: "1", 2: "OFF"}, v.Staff[0].Days)
	assert.Equal(t, "ดึก", v.Staff[1].Days[1])
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorCode
	}{
		{fmt.Errorf("project x: %w", domain.ErrNotFound), ErrorNotFound},
		{fmt.Errorf("edge: %w", domain.ErrCycleRejected), ErrorCycleRejected},
		{domain.ErrInvalidPercentage, ErrorInvalidPercentage},
		{domain.ErrInvalidInput, ErrorInvalidInput},
		{errors.New("database is locked"), ErrorStoreUnavailable},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, CodeOf(tc.err), tc.err.Error())
	}
}
