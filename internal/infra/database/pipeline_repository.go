package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/pipetrack/pipetrack/internal/entity"
)

type PipelineRepository struct {
	DB *sql.DB
}

func NewPipelineRepository(db *sql.DB) *PipelineRepository {
	return &PipelineRepository{DB: db}
}

func (r *PipelineRepository) Create(ctx context.Context, p *entity.Pipeline) error {
	query := `
		INSERT INTO pipelines (id, name, description, steps, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Description,
		pq.Array(p.Steps),
		p.OwnerID,
		p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	return nil
}

func (r *PipelineRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Pipeline, error) {
	query := `
		SELECT id, name, description, steps, owner_id, created_at
		FROM pipelines
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pipelines: %w", err)
	}
	defer rows.Close()

	var pipelines []entity.Pipeline
	for rows.Next() {
		var p entity.Pipeline
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			pq.Array(&p.Steps),
			&p.OwnerID,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pipeline: %w", err)
		}
		pipelines = append(pipelines, p)
	}

	return pipelines, rows.Err()
}

func (r *PipelineRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM pipelines WHERE owner_id = $1`, ownerID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pipelines: %w", err)
	}
	return count, nil
}

// NamesByIDs resolves pipeline ids to names for list enrichment. IDs missing
// from the result were not found (or belong to someone else).
func (r *PipelineRepository) NamesByIDs(ctx context.Context, ownerID string, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	query := `
		SELECT id, name
		FROM pipelines
		WHERE owner_id = $1 AND id = ANY($2)
	`

	rows, err := r.DB.QueryContext(ctx, query, ownerID, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve pipeline names: %w", err)
	}
	defer rows.Close()

	names := make(map[string]string, len(ids))
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan pipeline name: %w", err)
		}
		names[id] = name
	}

	return names, rows.Err()
}
