package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CostSharing is a directed edge: Percentage of the source project's
// original cost is moved onto the destination project's books.
type CostSharing struct {
	ID                   string
	SourceProjectID      string
	DestinationProjectID string
	Percentage           decimal.Decimal
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// ValidatePercentage checks that pct lies in (0,100].
func ValidatePercentage(pct decimal.Decimal) error {
	if !pct.IsPositive() || pct.GreaterThan(hundred) {
		return fmt.Errorf("percentage %s must be greater than 0 and at most 100: %w", pct.String(), ErrInvalidPercentage)
	}
	return nil
}

// Validate checks the edge's own invariants. Cycle checks need the rest of
// the graph and live in the costing package.
func (c *CostSharing) Validate() error {
	if c.SourceProjectID == "" || c.DestinationProjectID == "" {
		return fmt.Errorf("source and destination projects are required: %w", ErrInvalidInput)
	}
	if c.SourceProjectID == c.DestinationProjectID {
		return fmt.Errorf("project %s cannot share cost with itself: %w", c.SourceProjectID, ErrInvalidInput)
	}
	return ValidatePercentage(c.Percentage)
}

// Share returns the part of amount this edge moves: amount * pct / 100.
func (c *CostSharing) Share(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(c.Percentage).Div(hundred)
}
