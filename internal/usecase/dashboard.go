package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

type DashboardStats struct {
	ActiveJobs      int `json:"activeJobs"`
	TotalCustomers  int `json:"totalCustomers"`
	TotalPipelines  int `json:"totalPipelines"`
	JobsDueThisWeek int `json:"jobsDueThisWeek"`
}

type DashboardUseCase struct {
	Jobs      JobRepository
	Customers CustomerRepository
	Pipelines PipelineRepository
}

func NewDashboardUseCase(jobs JobRepository, customers CustomerRepository, pipelines PipelineRepository) *DashboardUseCase {
	return &DashboardUseCase{
		Jobs:      jobs,
		Customers: customers,
		Pipelines: pipelines,
	}
}

// Execute computes the four dashboard counts concurrently. The counts are
// independent queries with no snapshot isolation between them; read-committed
// is good enough at this write rate.
func (uc *DashboardUseCase) Execute(ctx context.Context, ownerID string) (*DashboardStats, error) {
	now := time.Now()
	weekEnd := now.AddDate(0, 0, 7)

	var stats DashboardStats
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := uc.Jobs.CountActiveByOwner(ctx, ownerID)
		stats.ActiveJobs = n
		return err
	})
	g.Go(func() error {
		n, err := uc.Customers.CountByOwner(ctx, ownerID)
		stats.TotalCustomers = n
		return err
	})
	g.Go(func() error {
		n, err := uc.Pipelines.CountByOwner(ctx, ownerID)
		stats.TotalPipelines = n
		return err
	})
	g.Go(func() error {
		n, err := uc.Jobs.CountActiveDueBetween(ctx, ownerID, now, weekEnd)
		stats.JobsDueThisWeek = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to compute dashboard stats: " + err.Error()}
	}

	return &stats, nil
}
