package usecase

import (
	"context"
)

type PipelineView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
	JobCount    int      `json:"jobCount"`
	CreatedAt   string   `json:"createdAt"`
}

type ListPipelinesUseCase struct {
	Pipelines PipelineRepository
	Jobs      JobRepository
}

func NewListPipelinesUseCase(pipelines PipelineRepository, jobs JobRepository) *ListPipelinesUseCase {
	return &ListPipelinesUseCase{
		Pipelines: pipelines,
		Jobs:      jobs,
	}
}

func (uc *ListPipelinesUseCase) Execute(ctx context.Context, ownerID string) ([]PipelineView, error) {
	pipelines, err := uc.Pipelines.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to list pipelines: " + err.Error()}
	}

	views := make([]PipelineView, 0, len(pipelines))
	for _, p := range pipelines {
		count, err := uc.Jobs.CountActiveByPipeline(ctx, ownerID, p.ID)
		if err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to count jobs: " + err.Error()}
		}

		steps := p.Steps
		if steps == nil {
			steps = []string{}
		}

		views = append(views, PipelineView{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Steps:       steps,
			JobCount:    count,
			CreatedAt:   p.CreatedAt.Format(dueDateLayout),
		})
	}

	return views, nil
}
