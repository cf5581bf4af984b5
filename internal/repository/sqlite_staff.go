package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/rostercost/internal/db"
	"github.com/alexanderramin/rostercost/internal/domain"
)

const staffColumns = `id, project_id, code, name, wage_per_day, active, created_at, updated_at`

// SQLiteStaffRepo implements StaffRepo using a SQLite database.
type SQLiteStaffRepo struct {
	db db.DBTX
}

// NewSQLiteStaffRepo creates a new SQLiteStaffRepo.
func NewSQLiteStaffRepo(db db.DBTX) *SQLiteStaffRepo {
	return &SQLiteStaffRepo{db: db}
}

func (r *SQLiteStaffRepo) Create(ctx context.Context, s *domain.Staff) error {
	query := `INSERT INTO staff (` + staffColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.ProjectID,
		s.Code,
		s.Name,
		s.WagePerDay.String(),
		boolToInt(s.Active),
		formatTime(s.CreatedAt),
		formatTime(s.UpdatedAt),
	)
	if err != nil {
		return mapWriteError("inserting staff", err)
	}
	return nil
}

func (r *SQLiteStaffRepo) GetByID(ctx context.Context, id string) (*domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = ?`
	s, err := scanStaff(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapRowError("staff "+id, err)
	}
	return s, nil
}

func (r *SQLiteStaffRepo) GetByCode(ctx context.Context, projectID, code string) (*domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE project_id = ? AND code = ?`
	s, err := scanStaff(r.db.QueryRowContext(ctx, query, projectID, code))
	if err != nil {
		return nil, mapRowError("staff "+code, err)
	}
	return s, nil
}

func (r *SQLiteStaffRepo) ListByProject(ctx context.Context, projectID string, includeInactive bool) ([]*domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE project_id = ? AND active = 1 ORDER BY code`
	if includeInactive {
		query = `SELECT ` + staffColumns + ` FROM staff WHERE project_id = ? ORDER BY code`
	}
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing staff: %w", err)
	}
	defer rows.Close()

	var out []*domain.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning staff row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating staff: %w", err)
	}
	return out, nil
}

func (r *SQLiteStaffRepo) Update(ctx context.Context, s *domain.Staff) error {
	query := `UPDATE staff SET code = ?, name = ?, wage_per_day = ?, active = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Code,
		s.Name,
		s.WagePerDay.String(),
		boolToInt(s.Active),
		formatTime(s.UpdatedAt),
		s.ID,
	)
	if err != nil {
		return mapWriteError("updating staff", err)
	}
	return requireAffected(res, "staff "+s.ID)
}

func (r *SQLiteStaffRepo) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE staff SET active = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, boolToInt(active), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("setting staff active flag: %w", err)
	}
	return requireAffected(res, "staff "+id)
}

func scanStaff(row rowScanner) (*domain.Staff, error) {
	var s domain.Staff
	var wageStr, createdAtStr, updatedAtStr string
	var active int

	if err := row.Scan(&s.ID, &s.ProjectID, &s.Code, &s.Name, &wageStr, &active, &createdAtStr, &updatedAtStr); err != nil {
		return nil, err
	}
	s.Active = intToBool(active)

	var err error
	if s.WagePerDay, err = parseDecimal("wage_per_day", wageStr); err != nil {
		return nil, err
	}
	if s.CreatedAt, err = parseTime("created_at", createdAtStr); err != nil {
		return nil, err
	}
	if s.UpdatedAt, err = parseTime("updated_at", updatedAtStr); err != nil {
		return nil, err
	}
	return &s, nil
}
