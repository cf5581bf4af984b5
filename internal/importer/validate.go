package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rostercost/internal/domain"
)

// ValidateRosterImport checks the grid for structural errors before any
// staff lookup. It returns every error found.
func ValidateRosterImport(schema *RosterImport) []error {
	var errs []error

	if strings.TrimSpace(schema.Project) == "" {
		errs = append(errs, fmt.Errorf("project is required"))
	}

	periodOK := true
	if err := domain.ValidatePeriod(schema.Year, schema.Month); err != nil {
		errs = append(errs, fmt.Errorf("period: %w", err))
		periodOK = false
	}

	if len(schema.Rows) == 0 {
		errs = append(errs, fmt.Errorf("rows: at least one row is required"))
	}

	seen := make(map[string]int)
	for i, row := range schema.Rows {
		field := fmt.Sprintf("rows[%d]", i)
		code := strings.TrimSpace(row.Staff)
		if code == "" {
			errs = append(errs, fmt.Errorf("%s.staff is required", field))
		} else if first, dup := seen[code]; dup {
			errs = append(errs, fmt.Errorf("%s.staff: %q already listed at rows[%d]", field, code, first))
		} else {
			seen[code] = i
		}

		if periodOK {
			if n := domain.DaysInMonth(schema.Year, schema.Month); len(row.Shifts) > n {
				errs = append(errs, fmt.Errorf("%s.shifts: %d cells but %04d-%02d has %d days", field, len(row.Shifts), schema.Year, schema.Month, n))
			}
		}
	}

	return errs
}
