package usecase

import (
	"context"
)

// JobView is a job enriched with the names of its customer and pipeline, due
// date rendered as a calendar date (null when unset).
type JobView struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Customer    string  `json:"customer"`
	Pipeline    string  `json:"pipeline"`
	CurrentStep string  `json:"currentStep"`
	Status      string  `json:"status"`
	DueDate     *string `json:"dueDate"`
	Progress    int     `json:"progress"`
}

type ListJobsUseCase struct {
	Jobs      JobRepository
	Customers CustomerRepository
	Pipelines PipelineRepository
}

func NewListJobsUseCase(jobs JobRepository, customers CustomerRepository, pipelines PipelineRepository) *ListJobsUseCase {
	return &ListJobsUseCase{
		Jobs:      jobs,
		Customers: customers,
		Pipelines: pipelines,
	}
}

func (uc *ListJobsUseCase) Execute(ctx context.Context, ownerID string) ([]JobView, error) {
	jobs, err := uc.Jobs.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to list jobs: " + err.Error()}
	}

	customerIDs := make([]string, 0, len(jobs))
	pipelineIDs := make([]string, 0, len(jobs))
	seenCustomer := map[string]bool{}
	seenPipeline := map[string]bool{}
	for _, j := range jobs {
		if !seenCustomer[j.CustomerID] {
			seenCustomer[j.CustomerID] = true
			customerIDs = append(customerIDs, j.CustomerID)
		}
		if !seenPipeline[j.PipelineID] {
			seenPipeline[j.PipelineID] = true
			pipelineIDs = append(pipelineIDs, j.PipelineID)
		}
	}

	customerNames, err := uc.Customers.NamesByIDs(ctx, ownerID, customerIDs)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to resolve customers: " + err.Error()}
	}
	pipelineNames, err := uc.Pipelines.NamesByIDs(ctx, ownerID, pipelineIDs)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to resolve pipelines: " + err.Error()}
	}

	views := make([]JobView, 0, len(jobs))
	for _, j := range jobs {
		view := JobView{
			ID:          j.ID,
			Title:       j.Title,
			Customer:    customerNames[j.CustomerID], // "" for a dangling reference
			Pipeline:    pipelineNames[j.PipelineID],
			CurrentStep: j.CurrentStep,
			Status:      string(j.Status),
			Progress:    j.Progress,
		}
		if j.DueDate != nil {
			d := j.DueDate.Format(dueDateLayout)
			view.DueDate = &d
		}
		views = append(views, view)
	}

	return views, nil
}
