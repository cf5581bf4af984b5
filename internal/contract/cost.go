// Package contract holds the JSON-facing records the CLI prints. Decimal
// amounts become plain numbers here and nowhere earlier.
package contract

import (
	"fmt"

	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/shopspring/decimal"
)

// ShareView is one edge's contribution to a project's cost.
type ShareView struct {
	ProjectID   string  `json:"project_id"`
	ProjectName string  `json:"project_name"`
	Percentage  float64 `json:"percentage"`
	Base        float64 `json:"base"`
	Amount      float64 `json:"amount"`
}

// ProjectCostView is a project's cost for one period after sharing.
type ProjectCostView struct {
	ProjectID    string      `json:"project_id"`
	ProjectName  string      `json:"project_name"`
	Period       string      `json:"period"`
	OriginalCost float64     `json:"original_cost"`
	SharedOut    float64     `json:"shared_out"`
	SharedIn     float64     `json:"shared_in"`
	NetCost      float64     `json:"net_cost"`
	Outgoing     []ShareView `json:"outgoing"`
	Incoming     []ShareView `json:"incoming"`
}

// CostTotals sums a report. Shared amounts cancel out across the report, so
// TotalNet equals TotalOriginal unless some edges point at inactive projects.
type CostTotals struct {
	TotalOriginal  float64 `json:"total_original"`
	TotalSharedOut float64 `json:"total_shared_out"`
	TotalSharedIn  float64 `json:"total_shared_in"`
	TotalNet       float64 `json:"total_net"`
}

// CostReport is the multi-project report for a period.
type CostReport struct {
	Period   string            `json:"period"`
	Projects []ProjectCostView `json:"projects"`
	Totals   CostTotals        `json:"totals"`
}

// Number converts a decimal for serialization.
func Number(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// Period formats a year and month as YYYY-MM.
func Period(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

func newShareViews(lines []domain.ShareLine) []ShareView {
	out := make([]ShareView, 0, len(lines))
	for _, l := range lines {
		out = append(out, ShareView{
			ProjectID:   l.CounterpartyID,
			ProjectName: l.CounterpartyName,
			Percentage:  Number(l.Percentage),
			Base:        Number(l.Base),
			Amount:      Number(l.Amount),
		})
	}
	return out
}

func NewProjectCostView(calc *domain.CostSharingCalculation, year, month int) ProjectCostView {
	return ProjectCostView{
		ProjectID:    calc.ProjectID,
		ProjectName:  calc.ProjectName,
		Period:       Period(year, month),
		OriginalCost: Number(calc.OriginalCost),
		SharedOut:    Number(calc.SharedOut),
		SharedIn:     Number(calc.SharedIn),
		NetCost:      Number(calc.NetCost),
		Outgoing:     newShareViews(calc.Outgoing),
		Incoming:     newShareViews(calc.Incoming),
	}
}

// NewCostReport builds the report view. Totals are summed as decimals
// before conversion.
func NewCostReport(calcs []*domain.CostSharingCalculation, year, month int) CostReport {
	report := CostReport{
		Period:   Period(year, month),
		Projects: make([]ProjectCostView, 0, len(calcs)),
	}
	original, out, in, net := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, c := range calcs {
		report.Projects = append(report.Projects, NewProjectCostView(c, year, month))
		original = original.Add(c.OriginalCost)
		out = out.Add(c.SharedOut)
		in = in.Add(c.SharedIn)
		net = net.Add(c.NetCost)
	}
	report.Totals = CostTotals{
		TotalOriginal:  Number(original),
		TotalSharedOut: Number(out),
		TotalSharedIn:  Number(in),
		TotalNet:       Number(net),
	}
	return report
}
