package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pipetrack/pipetrack/internal/entity"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{DB: db}
}

func (r *JobRepository) Create(ctx context.Context, j *entity.Job) error {
	query := `
		INSERT INTO jobs (
			id,
			title,
			customer_id,
			pipeline_id,
			current_step,
			status,
			due_date,
			progress,
			owner_id,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	var due sql.NullTime
	if j.DueDate != nil {
		due = sql.NullTime{Time: *j.DueDate, Valid: true}
	}

	_, err := r.DB.ExecContext(ctx, query,
		j.ID,
		j.Title,
		j.CustomerID,
		j.PipelineID,
		j.CurrentStep,
		string(j.Status),
		due,
		j.Progress,
		j.OwnerID,
		j.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

func (r *JobRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Job, error) {
	query := `
		SELECT id, title, customer_id, pipeline_id, current_step, status, due_date, progress, owner_id, created_at
		FROM jobs
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []entity.Job
	for rows.Next() {
		var j entity.Job
		var status string
		var due sql.NullTime
		if err := rows.Scan(
			&j.ID,
			&j.Title,
			&j.CustomerID,
			&j.PipelineID,
			&j.CurrentStep,
			&status,
			&due,
			&j.Progress,
			&j.OwnerID,
			&j.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		j.Status = entity.JobStatus(status)
		if due.Valid {
			d := due.Time
			j.DueDate = &d
		}
		jobs = append(jobs, j)
	}

	return jobs, rows.Err()
}

func (r *JobRepository) CountActiveByOwner(ctx context.Context, ownerID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM jobs WHERE owner_id = $1 AND status = 'active'`, ownerID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active jobs: %w", err)
	}
	return count, nil
}

// CountActiveDueBetween counts active jobs whose due date falls in [from, to],
// both bounds inclusive.
func (r *JobRepository) CountActiveDueBetween(ctx context.Context, ownerID string, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM jobs
		WHERE owner_id = $1
		  AND status = 'active'
		  AND due_date IS NOT NULL
		  AND due_date BETWEEN $2 AND $3
	`

	var count int
	err := r.DB.QueryRowContext(ctx, query, ownerID, from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count jobs due: %w", err)
	}
	return count, nil
}

// CountsByCustomer returns total and active job counts for one customer in a
// single round trip.
func (r *JobRepository) CountsByCustomer(ctx context.Context, ownerID, customerID string) (total, active int, err error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'active')
		FROM jobs
		WHERE owner_id = $1 AND customer_id = $2
	`

	err = r.DB.QueryRowContext(ctx, query, ownerID, customerID).Scan(&total, &active)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count customer jobs: %w", err)
	}
	return total, active, nil
}

func (r *JobRepository) CountActiveByPipeline(ctx context.Context, ownerID, pipelineID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM jobs
		WHERE owner_id = $1 AND pipeline_id = $2 AND status = 'active'
	`

	var count int
	err := r.DB.QueryRowContext(ctx, query, ownerID, pipelineID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pipeline jobs: %w", err)
	}
	return count, nil
}
