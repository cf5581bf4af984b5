package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/rostercost/internal/db"
	"github.com/alexanderramin/rostercost/internal/domain"
)

const shiftTypeColumns = `code, name, color, is_work_shift, created_at, updated_at`

// SQLiteShiftTypeRepo implements ShiftTypeRepo using a SQLite database.
type SQLiteShiftTypeRepo struct {
	db db.DBTX
}

// NewSQLiteShiftTypeRepo creates a new SQLiteShiftTypeRepo.
func NewSQLiteShiftTypeRepo(db db.DBTX) *SQLiteShiftTypeRepo {
	return &SQLiteShiftTypeRepo{db: db}
}

// Upsert inserts the shift type or replaces the display attributes and work
// flag of an existing code. created_at is kept on update.
func (r *SQLiteShiftTypeRepo) Upsert(ctx context.Context, s *domain.ShiftType) error {
	query := `INSERT INTO shift_types (` + shiftTypeColumns + `) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET
			name = excluded.name,
			color = excluded.color,
			is_work_shift = excluded.is_work_shift,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		s.Code,
		s.Name,
		s.Color,
		boolToInt(s.IsWorkShift),
		formatTime(s.CreatedAt),
		formatTime(s.UpdatedAt),
	)
	if err != nil {
		return mapWriteError("upserting shift type", err)
	}
	return nil
}

func (r *SQLiteShiftTypeRepo) GetByCode(ctx context.Context, code string) (*domain.ShiftType, error) {
	query := `SELECT ` + shiftTypeColumns + ` FROM shift_types WHERE code = ?`
	s, err := scanShiftType(r.db.QueryRowContext(ctx, query, code))
	if err != nil {
		return nil, mapRowError("shift type "+code, err)
	}
	return s, nil
}

func (r *SQLiteShiftTypeRepo) List(ctx context.Context) ([]*domain.ShiftType, error) {
	query := `SELECT ` + shiftTypeColumns + ` FROM shift_types ORDER BY code`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing shift types: %w", err)
	}
	defer rows.Close()

	var out []*domain.ShiftType
	for rows.Next() {
		s, err := scanShiftType(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning shift type row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shift types: %w", err)
	}
	return out, nil
}

func (r *SQLiteShiftTypeRepo) Delete(ctx context.Context, code string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shift_types WHERE code = ?`, code)
	if err != nil {
		return fmt.Errorf("deleting shift type: %w", err)
	}
	return requireAffected(res, "shift type "+code)
}

func scanShiftType(row rowScanner) (*domain.ShiftType, error) {
	var s domain.ShiftType
	var work int
	var createdAtStr, updatedAtStr string

	if err := row.Scan(&s.Code, &s.Name, &s.Color, &work, &createdAtStr, &updatedAtStr); err != nil {
		return nil, err
	}
	s.IsWorkShift = intToBool(work)

	var err error
	if s.CreatedAt, err = parseTime("created_at", createdAtStr); err != nil {
		return nil, err
	}
	if s.UpdatedAt, err = parseTime("updated_at", updatedAtStr); err != nil {
		return nil, err
	}
	return &s, nil
}
