package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/rostercost/internal/domain"
)

// Convert turns a validated grid into roster entries for rosterID.
// staffByCode maps the project's staff codes to staff records; rows naming
// an unknown code are reported and produce no entries. Call
// ValidateRosterImport first.
func Convert(schema *RosterImport, rosterID string, staffByCode map[string]*domain.Staff) ([]*domain.RosterEntry, []error) {
	now := time.Now().UTC()
	var entries []*domain.RosterEntry
	var errs []error

	for i, row := range schema.Rows {
		code := strings.TrimSpace(row.Staff)
		staff, ok := staffByCode[code]
		if !ok {
			errs = append(errs, fmt.Errorf("rows[%d].staff: unknown staff code %q in project %s", i, code, schema.Project))
			continue
		}
		for d, shift := range row.Shifts {
			shift = strings.TrimSpace(shift)
			if shift == "" {
				continue
			}
			entries = append(entries, &domain.RosterEntry{
				RosterID:  rosterID,
				StaffID:   staff.ID,
				Day:       d + 1,
				ShiftCode: shift,
				UpdatedAt: now,
			})
		}
	}

	return entries, errs
}
