package usecase

import (
	"context"

	"github.com/pipetrack/pipetrack/internal/entity"
	"github.com/pipetrack/pipetrack/internal/infra/queue"
)

type CreatePipelineInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
}

type CreatePipelineOutput struct {
	Success    bool   `json:"success"`
	PipelineID string `json:"pipelineId"`
}

type CreatePipelineUseCase struct {
	Pipelines PipelineRepository
	Producer  EventProducer
}

func NewCreatePipelineUseCase(pipelines PipelineRepository, producer EventProducer) *CreatePipelineUseCase {
	return &CreatePipelineUseCase{
		Pipelines: pipelines,
		Producer:  producer,
	}
}

func (uc *CreatePipelineUseCase) Execute(ctx context.Context, ownerID string, input CreatePipelineInput) (*CreatePipelineOutput, error) {
	if errs := ValidateCreatePipelineInput(input); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}

	pipeline, err := entity.NewPipeline(ownerID, input.Name, input.Description, input.Steps)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Pipelines.Create(ctx, pipeline); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist pipeline: " + err.Error()}
	}

	publishRecordCreated(ctx, uc.Producer, queue.RecordCreatedPayload{
		Kind:      "pipeline",
		ID:        pipeline.ID,
		OwnerID:   ownerID,
		Label:     pipeline.Name,
		CreatedAt: pipeline.CreatedAt,
	})

	return &CreatePipelineOutput{Success: true, PipelineID: pipeline.ID}, nil
}
