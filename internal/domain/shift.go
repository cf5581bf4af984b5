package domain

import (
	"fmt"
	"strings"
	"time"
)

// ShiftType describes a roster shift code. Only codes flagged IsWorkShift
// count toward labor cost.
type ShiftType struct {
	Code        string
	Name        string
	Color       string
	IsWorkShift bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s *ShiftType) Validate() error {
	if strings.TrimSpace(s.Code) == "" {
		return fmt.Errorf("shift code is required: %w", ErrInvalidInput)
	}
	return nil
}

// DefaultWorkShiftCodes are the codes treated as worked when no ShiftType
// records exist yet: morning, afternoon, evening and night ("ดึก").
var DefaultWorkShiftCodes = []string{"1", "2", "3", "ดึก"}

// DefaultShiftTypes is the reference catalogue inserted by "shift seed".
func DefaultShiftTypes() []*ShiftType {
	return []*ShiftType{
		{Code: "1", Name: "Morning", Color: "#8ec07c", IsWorkShift: true},
		{Code: "2", Name: "Afternoon", Color: "#83a598", IsWorkShift: true},
		{Code: "3", Name: "Evening", Color: "#d3869b", IsWorkShift: true},
		{Code: "ดึก", Name: "Night", Color: "#fabd2f", IsWorkShift: true},
		{Code: "OFF", Name: "Day off", Color: "#928374"},
		{Code: "ลา", Name: "Leave", Color: "#928374"},
		{Code: "ขาด", Name: "Absent", Color: "#fb4934"},
	}
}
