package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var testShortIDCounter atomic.Int64

// Project options
type ProjectOption func(*domain.Project)

func WithShortID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ShortID = id
	}
}

func WithInactive() ProjectOption {
	return func(p *domain.Project) {
		p.Active = false
	}
}

func WithProjectID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ID = id
	}
}

func defaultShortID(name string) string {
	upper := strings.ToUpper(name)
	var letters []byte
	for i := 0; i < len(upper) && len(letters) < 3; i++ {
		if upper[i] >= 'A' && upper[i] <= 'Z' {
			letters = append(letters, upper[i])
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	n := testShortIDCounter.Add(1) % 10000
	return fmt.Sprintf("%s%02d", string(letters), n)
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		ShortID:   defaultShortID(name),
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Staff options
type StaffOption func(*domain.Staff)

func WithWage(w string) StaffOption {
	return func(s *domain.Staff) {
		s.WagePerDay = decimal.RequireFromString(w)
	}
}

func WithStaffName(n string) StaffOption {
	return func(s *domain.Staff) {
		s.Name = n
	}
}

func WithStaffInactive() StaffOption {
	return func(s *domain.Staff) {
		s.Active = false
	}
}

// NewTestStaff creates an active staff member earning 500 per day.
func NewTestStaff(projectID, code string, opts ...StaffOption) *domain.Staff {
	now := time.Now().UTC()
	s := &domain.Staff{
		ID:         uuid.New().String(),
		ProjectID:  projectID,
		Code:       code,
		Name:       "Staff " + code,
		WagePerDay: decimal.NewFromInt(500),
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewTestRoster(projectID string, year, month int) *domain.Roster {
	now := time.Now().UTC()
	return &domain.Roster{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Year:      year,
		Month:     month,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestEdge creates a cost-sharing edge; pct is a decimal string such as "33.3".
func NewTestEdge(sourceID, destinationID, pct string) *domain.CostSharing {
	now := time.Now().UTC()
	return &domain.CostSharing{
		ID:                   uuid.New().String(),
		SourceProjectID:      sourceID,
		DestinationProjectID: destinationID,
		Percentage:           decimal.RequireFromString(pct),
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// Lines builds roster lines for one staff member, one per shift code
// starting at day 1. Empty codes are skipped.
func Lines(s *domain.Staff, codes ...string) []domain.RosterLine {
	var out []domain.RosterLine
	for i, c := range codes {
		if c == "" {
			continue
		}
		out = append(out, domain.RosterLine{
			StaffID:    s.ID,
			StaffCode:  s.Code,
			StaffName:  s.Name,
			Day:        i + 1,
			ShiftCode:  c,
			WagePerDay: s.WagePerDay,
		})
	}
	return out
}

// Repeat returns code n times, for building long roster rows.
func Repeat(code string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = code
	}
	return out
}
