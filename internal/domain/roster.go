package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Roster is one project's shift schedule for a calendar month.
// (ProjectID, Year, Month) is unique.
type Roster struct {
	ID        string
	ProjectID string
	Year      int
	Month     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RosterEntry assigns a shift code to one staff member on one day.
// At most one entry exists per (RosterID, StaffID, Day).
type RosterEntry struct {
	RosterID  string
	StaffID   string
	Day       int
	ShiftCode string
	UpdatedAt time.Time
}

// RosterLine is a roster entry joined with the staff wage, as read by the
// cost aggregator.
type RosterLine struct {
	StaffID    string
	StaffCode  string
	StaffName  string
	Day        int
	ShiftCode  string
	WagePerDay decimal.Decimal
}

// RosterSheet is a roster with all of its entries.
type RosterSheet struct {
	Roster Roster
	Lines  []RosterLine
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ValidatePeriod checks that year and month describe a real calendar month.
func ValidatePeriod(year, month int) error {
	if year < 1970 || year > 9999 {
		return fmt.Errorf("year %d out of range: %w", year, ErrInvalidInput)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("month %d out of range 1-12: %w", month, ErrInvalidInput)
	}
	return nil
}

// ValidateDay checks that day falls within the roster's month.
func (r *Roster) ValidateDay(day int) error {
	n := DaysInMonth(r.Year, r.Month)
	if day < 1 || day > n {
		return fmt.Errorf("day %d out of range 1-%d for %04d-%02d: %w", day, n, r.Year, r.Month, ErrInvalidInput)
	}
	return nil
}

// Period formats the roster month as YYYY-MM.
func (r *Roster) Period() string {
	return fmt.Sprintf("%04d-%02d", r.Year, r.Month)
}
