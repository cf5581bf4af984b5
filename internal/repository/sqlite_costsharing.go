package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/rostercost/internal/db"
	"github.com/alexanderramin/rostercost/internal/domain"
)

const costSharingColumns = `id, source_project_id, destination_project_id, percentage, created_at, updated_at`

// SQLiteCostSharingRepo implements CostSharingRepo using a SQLite database.
type SQLiteCostSharingRepo struct {
	db db.DBTX
}

// NewSQLiteCostSharingRepo creates a new SQLiteCostSharingRepo.
func NewSQLiteCostSharingRepo(db db.DBTX) *SQLiteCostSharingRepo {
	return &SQLiteCostSharingRepo{db: db}
}

func (r *SQLiteCostSharingRepo) Get(ctx context.Context, sourceID, destinationID string) (*domain.CostSharing, error) {
	query := `SELECT ` + costSharingColumns + ` FROM cost_sharings
		WHERE source_project_id = ? AND destination_project_id = ?`
	c, err := scanCostSharing(r.db.QueryRowContext(ctx, query, sourceID, destinationID))
	if err != nil {
		return nil, mapRowError(fmt.Sprintf("cost sharing %s -> %s", sourceID, destinationID), err)
	}
	return c, nil
}

func (r *SQLiteCostSharingRepo) ListOutgoing(ctx context.Context, projectID string) ([]*domain.CostSharing, error) {
	query := `SELECT ` + costSharingColumns + ` FROM cost_sharings
		WHERE source_project_id = ? ORDER BY created_at, id`
	return r.list(ctx, "outgoing cost sharings", query, projectID)
}

func (r *SQLiteCostSharingRepo) ListIncoming(ctx context.Context, projectID string) ([]*domain.CostSharing, error) {
	query := `SELECT ` + costSharingColumns + ` FROM cost_sharings
		WHERE destination_project_id = ? ORDER BY created_at, id`
	return r.list(ctx, "incoming cost sharings", query, projectID)
}

func (r *SQLiteCostSharingRepo) ListAll(ctx context.Context) ([]*domain.CostSharing, error) {
	query := `SELECT ` + costSharingColumns + ` FROM cost_sharings ORDER BY source_project_id, created_at, id`
	return r.list(ctx, "cost sharings", query)
}

// ReplaceOutgoing deletes every outgoing edge of projectID and inserts edges.
// It is not atomic on its own; run it through a db.UnitOfWork.
func (r *SQLiteCostSharingRepo) ReplaceOutgoing(ctx context.Context, projectID string, edges []*domain.CostSharing) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cost_sharings WHERE source_project_id = ?`, projectID); err != nil {
		return fmt.Errorf("deleting outgoing cost sharings: %w", err)
	}

	query := `INSERT INTO cost_sharings (` + costSharingColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	for _, e := range edges {
		if e.SourceProjectID != projectID {
			return fmt.Errorf("edge %s does not start at project %s: %w", e.ID, projectID, domain.ErrInvalidInput)
		}
		_, err := r.db.ExecContext(ctx, query,
			e.ID,
			e.SourceProjectID,
			e.DestinationProjectID,
			e.Percentage.String(),
			formatTime(e.CreatedAt),
			formatTime(e.UpdatedAt),
		)
		if err != nil {
			return mapWriteError("inserting cost sharing", err)
		}
	}
	return nil
}

func (r *SQLiteCostSharingRepo) list(ctx context.Context, what, query string, args ...any) ([]*domain.CostSharing, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", what, err)
	}
	defer rows.Close()

	var out []*domain.CostSharing
	for rows.Next() {
		c, err := scanCostSharing(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", what, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", what, err)
	}
	return out, nil
}

func scanCostSharing(row rowScanner) (*domain.CostSharing, error) {
	var c domain.CostSharing
	var pctStr, createdAtStr, updatedAtStr string

	if err := row.Scan(&c.ID, &c.SourceProjectID, &c.DestinationProjectID, &pctStr, &createdAtStr, &updatedAtStr); err != nil {
		return nil, err
	}

	var err error
	if c.Percentage, err = parseDecimal("percentage", pctStr); err != nil {
		return nil, err
	}
	if c.CreatedAt, err = parseTime("created_at", createdAtStr); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseTime("updated_at", updatedAtStr); err != nil {
		return nil, err
	}
	return &c, nil
}
