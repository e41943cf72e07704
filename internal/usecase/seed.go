package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/pipetrack/pipetrack/internal/entity"
)

// Seeder creates the demonstration records for a brand new account: two
// pipelines, three customers and three jobs. It runs exactly once, right after
// the user row is created; there is no re-seeding path.
type Seeder struct {
	Pipelines PipelineRepository
	Customers CustomerRepository
	Jobs      JobRepository
}

func NewSeeder(pipelines PipelineRepository, customers CustomerRepository, jobs JobRepository) *Seeder {
	return &Seeder{
		Pipelines: pipelines,
		Customers: customers,
		Jobs:      jobs,
	}
}

func (s *Seeder) Run(ctx context.Context, ownerID string) error {
	web, err := entity.NewPipeline(ownerID,
		"Web Development",
		"Standard website and web app delivery",
		[]string{"Discovery", "Proposal", "Design", "Development", "Review", "Launch"},
	)
	if err != nil {
		return err
	}

	mobile, err := entity.NewPipeline(ownerID,
		"Mobile App Development",
		"Native and cross-platform mobile builds",
		[]string{"Planning", "Wireframes", "UI Design", "Development", "Beta Testing", "App Store Release"},
	)
	if err != nil {
		return err
	}

	for _, p := range []*entity.Pipeline{web, mobile} {
		if err := s.Pipelines.Create(ctx, p); err != nil {
			return fmt.Errorf("seed pipeline %q: %w", p.Name, err)
		}
	}

	acme, _ := entity.NewCustomer(ownerID, "Acme Corp", "contact@acmecorp.com", "+1 (555) 010-7788")
	northwind, _ := entity.NewCustomer(ownerID, "Northwind Traders", "hello@northwind.io", "+1 (555) 012-3344")
	globex, _ := entity.NewCustomer(ownerID, "Globex Industries", "projects@globex.net", "+1 (555) 014-9920")

	for _, c := range []*entity.Customer{acme, northwind, globex} {
		if err := s.Customers.Create(ctx, c); err != nil {
			return fmt.Errorf("seed customer %q: %w", c.Name, err)
		}
	}

	dueSoon := time.Now().AddDate(0, 0, 5)
	dueLater := time.Now().AddDate(0, 0, 21)

	jobs := []struct {
		title      string
		customerID string
		pipelineID string
		step       string
		status     entity.JobStatus
		due        *time.Time
		progress   int
	}{
		{"Corporate website redesign", acme.ID, web.ID, "Design", entity.StatusActive, &dueSoon, 35},
		{"Customer portal MVP", northwind.ID, web.ID, "Development", entity.StatusActive, &dueLater, 60},
		{"iOS loyalty app", globex.ID, mobile.ID, "Wireframes", entity.StatusPaused, nil, 15},
	}

	for _, jd := range jobs {
		job, err := entity.NewJob(ownerID, jd.title, jd.customerID, jd.pipelineID, jd.step, jd.status, jd.due, jd.progress)
		if err != nil {
			return err
		}
		if err := s.Jobs.Create(ctx, job); err != nil {
			return fmt.Errorf("seed job %q: %w", jd.title, err)
		}
	}

	return nil
}
