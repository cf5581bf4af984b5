package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/rostercost/internal/db"
	"github.com/alexanderramin/rostercost/internal/domain"
)

const rosterColumns = `id, project_id, year, month, created_at, updated_at`

// SQLiteRosterRepo implements RosterRepo using a SQLite database.
type SQLiteRosterRepo struct {
	db db.DBTX
}

// NewSQLiteRosterRepo creates a new SQLiteRosterRepo.
func NewSQLiteRosterRepo(db db.DBTX) *SQLiteRosterRepo {
	return &SQLiteRosterRepo{db: db}
}

func (r *SQLiteRosterRepo) Create(ctx context.Context, ro *domain.Roster) error {
	query := `INSERT INTO rosters (` + rosterColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		ro.ID,
		ro.ProjectID,
		ro.Year,
		ro.Month,
		formatTime(ro.CreatedAt),
		formatTime(ro.UpdatedAt),
	)
	if err != nil {
		return mapWriteError("inserting roster", err)
	}
	return nil
}

func (r *SQLiteRosterRepo) GetByID(ctx context.Context, id string) (*domain.Roster, error) {
	query := `SELECT ` + rosterColumns + ` FROM rosters WHERE id = ?`
	ro, err := scanRoster(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapRowError("roster "+id, err)
	}
	return ro, nil
}

func (r *SQLiteRosterRepo) GetByPeriod(ctx context.Context, projectID string, year, month int) (*domain.Roster, error) {
	query := `SELECT ` + rosterColumns + ` FROM rosters WHERE project_id = ? AND year = ? AND month = ?`
	ro, err := scanRoster(r.db.QueryRowContext(ctx, query, projectID, year, month))
	if err != nil {
		return nil, mapRowError(fmt.Sprintf("roster %s %04d-%02d", projectID, year, month), err)
	}
	return ro, nil
}

func (r *SQLiteRosterRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Roster, error) {
	query := `SELECT ` + rosterColumns + ` FROM rosters WHERE project_id = ? ORDER BY year DESC, month DESC`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing rosters: %w", err)
	}
	defer rows.Close()

	var out []*domain.Roster
	for rows.Next() {
		ro, err := scanRoster(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning roster row: %w", err)
		}
		out = append(out, ro)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rosters: %w", err)
	}
	return out, nil
}

// UpsertEntry writes the shift for (roster, staff, day), replacing any
// existing code for that cell.
func (r *SQLiteRosterRepo) UpsertEntry(ctx context.Context, e *domain.RosterEntry) error {
	query := `INSERT INTO roster_entries (roster_id, staff_id, day, shift_code, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(roster_id, staff_id, day) DO UPDATE SET
			shift_code = excluded.shift_code,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query, e.RosterID, e.StaffID, e.Day, e.ShiftCode, formatTime(e.UpdatedAt))
	if err != nil {
		return mapWriteError("upserting roster entry", err)
	}
	return nil
}

func (r *SQLiteRosterRepo) DeleteEntry(ctx context.Context, rosterID, staffID string, day int) error {
	query := `DELETE FROM roster_entries WHERE roster_id = ? AND staff_id = ? AND day = ?`
	res, err := r.db.ExecContext(ctx, query, rosterID, staffID, day)
	if err != nil {
		return fmt.Errorf("deleting roster entry: %w", err)
	}
	return requireAffected(res, fmt.Sprintf("roster entry %s day %d", staffID, day))
}

// ListLines returns the roster's entries joined with each staff member's
// current wage, ordered by staff code then day.
func (r *SQLiteRosterRepo) ListLines(ctx context.Context, rosterID string) ([]domain.RosterLine, error) {
	query := `SELECT e.staff_id, s.code, s.name, e.day, e.shift_code, s.wage_per_day
		FROM roster_entries e
		JOIN staff s ON s.id = e.staff_id
		WHERE e.roster_id = ?
		ORDER BY s.code, e.day`
	rows, err := r.db.QueryContext(ctx, query, rosterID)
	if err != nil {
		return nil, fmt.Errorf("listing roster lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.RosterLine
	for rows.Next() {
		var l domain.RosterLine
		var wageStr string
		if err := rows.Scan(&l.StaffID, &l.StaffCode, &l.StaffName, &l.Day, &l.ShiftCode, &wageStr); err != nil {
			return nil, fmt.Errorf("scanning roster line: %w", err)
		}
		if l.WagePerDay, err = parseDecimal("wage_per_day", wageStr); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating roster lines: %w", err)
	}
	return lines, nil
}

func scanRoster(row rowScanner) (*domain.Roster, error) {
	var ro domain.Roster
	var createdAtStr, updatedAtStr string

	if err := row.Scan(&ro.ID, &ro.ProjectID, &ro.Year, &ro.Month, &createdAtStr, &updatedAtStr); err != nil {
		return nil, err
	}

	var err error
	if ro.CreatedAt, err = parseTime("created_at", createdAtStr); err != nil {
		return nil, err
	}
	if ro.UpdatedAt, err = parseTime("updated_at", updatedAtStr); err != nil {
		return nil, err
	}
	return &ro, nil
}
