package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/spf13/pflag"
)

// resolveProject finds a project by short ID (case-insensitive), full UUID,
// or unambiguous UUID prefix. Inactive projects are included.
func resolveProject(ctx context.Context, app *App, input string) (*domain.Project, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("project is required (use --project flag): %w", domain.ErrInvalidInput)
	}

	projects, err := app.Projects.List(ctx, true)
	if err != nil {
		return nil, err
	}

	// 1. Exact short ID match (case-insensitive)
	for _, p := range projects {
		if strings.EqualFold(p.ShortID, input) {
			return p, nil
		}
	}

	// 2. Exact UUID match
	for _, p := range projects {
		if p.ID == input {
			return p, nil
		}
	}

	// 3. UUID prefix match
	var matches []*domain.Project
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("project %q: %w", input, domain.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("project ID prefix %q is ambiguous (%d matches): %w", input, len(matches), domain.ErrInvalidInput)
	}
}

// resolveStaff finds a staff member of projectID by code.
func resolveStaff(ctx context.Context, app *App, projectID, code string) (*domain.Staff, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("staff code is required (use --staff flag): %w", domain.ErrInvalidInput)
	}
	st, err := app.Staff.GetByCode(ctx, projectID, code)
	if err != nil {
		return nil, fmt.Errorf("staff %q: %w", code, err)
	}
	return st, nil
}

// projectNames maps every project ID to its display ID.
func projectNames(ctx context.Context, app *App) (map[string]string, error) {
	projects, err := app.Projects.List(ctx, true)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.DisplayID()
	}
	return names, nil
}

// periodValue is a pflag.Value accepting YYYY-MM.
type periodValue struct {
	year, month int
}

var _ pflag.Value = (*periodValue)(nil)

func (p *periodValue) String() string {
	if p.year == 0 {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", p.year, p.month)
}

func (p *periodValue) Set(s string) error {
	y, m, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return fmt.Errorf("period %q must be YYYY-MM", s)
	}
	year, err := strconv.Atoi(y)
	if err != nil {
		return fmt.Errorf("period %q must be YYYY-MM", s)
	}
	month, err := strconv.Atoi(m)
	if err != nil {
		return fmt.Errorf("period %q must be YYYY-MM", s)
	}
	if err := domain.ValidatePeriod(year, month); err != nil {
		return err
	}
	p.year, p.month = year, month
	return nil
}

func (p *periodValue) Type() string {
	return "YYYY-MM"
}

// periodFlags are the --period, --year and --month flags shared by every
// command that works on one roster month. Unset parts default to the
// current month.
type periodFlags struct {
	period periodValue
	year   int
	month  int
}

func (f *periodFlags) register(fs *pflag.FlagSet) {
	fs.Var(&f.period, "period", "Roster period (YYYY-MM, default: current month)")
	fs.IntVar(&f.year, "year", 0, "Roster year (default: current year)")
	fs.IntVar(&f.month, "month", 0, "Roster month 1-12 (default: current month)")
}

func (f *periodFlags) resolve(app *App) (int, int, error) {
	if f.period.year != 0 {
		if f.year != 0 || f.month != 0 {
			return 0, 0, fmt.Errorf("use either --period or --year/--month: %w", domain.ErrInvalidInput)
		}
		return f.period.year, f.period.month, nil
	}

	now := app.now()
	year, month := now.Year(), int(now.Month())
	if f.year != 0 {
		year = f.year
	}
	if f.month != 0 {
		month = f.month
	}
	if err := domain.ValidatePeriod(year, month); err != nil {
		return 0, 0, err
	}
	return year, month, nil
}
