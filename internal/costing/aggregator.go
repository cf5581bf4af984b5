package costing

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/shopspring/decimal"
)

// Aggregator computes a project's pre-sharing labor cost for a month: one
// daily wage per worked day per staff member.
type Aggregator struct {
	store    Store
	fallback []string
}

// NewAggregator creates an Aggregator. fallback is the set of working codes
// used while the shift type table is empty; nil means
// domain.DefaultWorkShiftCodes.
func NewAggregator(store Store, fallback []string) *Aggregator {
	if fallback == nil {
		fallback = domain.DefaultWorkShiftCodes
	}
	return &Aggregator{store: store, fallback: fallback}
}

// staffAccumulator collects one staff member's worked days within a single
// aggregation.
type staffAccumulator struct {
	line  domain.RosterLine
	days  int
	total decimal.Decimal
}

// ProjectOriginalCost returns the project's labor cost for the period before
// any sharing. A period with no roster costs exactly zero.
func (a *Aggregator) ProjectOriginalCost(ctx context.Context, projectID string, year, month int) (decimal.Decimal, error) {
	acc, err := a.accumulate(ctx, projectID, year, month)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, s := range acc {
		total = total.Add(s.total)
	}
	return total, nil
}

// StaffCosts returns the per-staff breakdown behind ProjectOriginalCost,
// sorted by staff code. Staff with no worked day are included with a zero
// total when they appear on the roster.
func (a *Aggregator) StaffCosts(ctx context.Context, projectID string, year, month int) ([]domain.StaffCost, error) {
	acc, err := a.accumulate(ctx, projectID, year, month)
	if err != nil {
		return nil, err
	}
	out := make([]domain.StaffCost, 0, len(acc))
	for _, s := range acc {
		out = append(out, domain.StaffCost{
			StaffID:    s.line.StaffID,
			StaffCode:  s.line.StaffCode,
			StaffName:  s.line.StaffName,
			WagePerDay: s.line.WagePerDay,
			WorkedDays: s.days,
			Total:      s.total,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StaffCode != out[j].StaffCode {
			return out[i].StaffCode < out[j].StaffCode
		}
		return out[i].StaffID < out[j].StaffID
	})
	return out, nil
}

func (a *Aggregator) accumulate(ctx context.Context, projectID string, year, month int) (map[string]*staffAccumulator, error) {
	sheet, err := a.store.FindRoster(ctx, projectID, year, month)
	if errors.Is(err, domain.ErrNotFound) {
		return map[string]*staffAccumulator{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading roster for project %s %04d-%02d: %w", projectID, year, month, err)
	}

	cls, err := LoadClassifier(ctx, a.store, a.fallback)
	if err != nil {
		return nil, err
	}

	acc := make(map[string]*staffAccumulator)
	for _, line := range sheet.Lines {
		s, ok := acc[line.StaffID]
		if !ok {
			s = &staffAccumulator{line: line, total: decimal.Zero}
			acc[line.StaffID] = s
		}
		if cls.IsWorkingShift(line.ShiftCode) {
			s.days++
			s.total = s.total.Add(line.WagePerDay)
		}
	}
	return acc, nil
}
