package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/rostercost/internal/db"
	"github.com/alexanderramin/rostercost/internal/domain"
)

const projectColumns = `id, short_id, name, active, created_at, updated_at`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(db db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.ShortID,
		p.Name,
		boolToInt(p.Active),
		formatTime(p.CreatedAt),
		formatTime(p.UpdatedAt),
	)
	if err != nil {
		return mapWriteError("inserting project", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	p, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapRowError("project "+id, err)
	}
	return p, nil
}

func (r *SQLiteProjectRepo) GetByShortID(ctx context.Context, shortID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE UPPER(short_id) = UPPER(?)`
	p, err := scanProject(r.db.QueryRowContext(ctx, query, shortID))
	if err != nil {
		return nil, mapRowError("project "+shortID, err)
	}
	return p, nil
}

// List returns projects in creation order. That order is what the cost
// report iterates in; it carries no meaning beyond being stable.
func (r *SQLiteProjectRepo) List(ctx context.Context, includeInactive bool) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE active = 1 ORDER BY created_at, id`
	if includeInactive {
		query = `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at, id`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET short_id = ?, name = ?, active = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.ShortID,
		p.Name,
		boolToInt(p.Active),
		formatTime(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return mapWriteError("updating project", err)
	}
	return requireAffected(res, "project "+p.ID)
}

func (r *SQLiteProjectRepo) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE projects SET active = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, boolToInt(active), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("setting project active flag: %w", err)
	}
	return requireAffected(res, "project "+id)
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var active int
	var createdAtStr, updatedAtStr string

	if err := row.Scan(&p.ID, &p.ShortID, &p.Name, &active, &createdAtStr, &updatedAtStr); err != nil {
		return nil, err
	}
	p.Active = intToBool(active)

	var err error
	if p.CreatedAt, err = parseTime("created_at", createdAtStr); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime("updated_at", updatedAtStr); err != nil {
		return nil, err
	}
	return &p, nil
}
