package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Staff is a rostered employee. Each staff member belongs to exactly one
// project and is paid a flat wage per worked day.
type Staff struct {
	ID         string
	ProjectID  string
	Code       string
	Name       string
	WagePerDay decimal.Decimal
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks the fields required before a staff record is persisted.
func (s *Staff) Validate() error {
	if s.ProjectID == "" {
		return fmt.Errorf("staff project is required: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(s.Code) == "" {
		return fmt.Errorf("staff code is required: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("staff name is required: %w", ErrInvalidInput)
	}
	if !s.WagePerDay.IsPositive() {
		return fmt.Errorf("wage per day must be positive, got %s: %w", s.WagePerDay.String(), ErrInvalidInput)
	}
	return nil
}

// StaffCost is one staff member's labor cost for a roster period.
type StaffCost struct {
	StaffID    string
	StaffCode  string
	StaffName  string
	WagePerDay decimal.Decimal
	WorkedDays int
	Total      decimal.Decimal
}
