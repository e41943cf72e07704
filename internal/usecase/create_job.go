package usecase

import (
	"context"
	"log"
	"time"

	"github.com/pipetrack/pipetrack/internal/entity"
	"github.com/pipetrack/pipetrack/internal/infra/queue"
)

type CreateJobInput struct {
	Title       string `json:"title"`
	CustomerID  string `json:"customerId"`
	PipelineID  string `json:"pipelineId"`
	CurrentStep string `json:"currentStep"`
	Status      string `json:"status"`
	DueDate     string `json:"dueDate"`
	Progress    int    `json:"progress"`
}

type CreateJobOutput struct {
	Success bool   `json:"success"`
	JobID   string `json:"jobId"`
}

type CreateJobUseCase struct {
	Jobs      JobRepository
	Customers CustomerRepository
	Pipelines PipelineRepository
	Producer  EventProducer
}

func NewCreateJobUseCase(jobs JobRepository, customers CustomerRepository, pipelines PipelineRepository, producer EventProducer) *CreateJobUseCase {
	return &CreateJobUseCase{
		Jobs:      jobs,
		Customers: customers,
		Pipelines: pipelines,
		Producer:  producer,
	}
}

func (uc *CreateJobUseCase) Execute(ctx context.Context, ownerID string, input CreateJobInput) (*CreateJobOutput, error) {
	if errs := ValidateCreateJobInput(input); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}

	status := entity.StatusActive
	if input.Status != "" {
		status, _ = entity.ParseJobStatus(input.Status)
	}

	var due *time.Time
	if input.DueDate != "" {
		d, _ := time.Parse(dueDateLayout, input.DueDate)
		due = &d
	}

	// A reference to another owner's record must look exactly like a missing
	// record, otherwise creation probes would leak existence.
	customers, err := uc.Customers.NamesByIDs(ctx, ownerID, []string{input.CustomerID})
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to resolve customer: " + err.Error()}
	}
	if _, ok := customers[input.CustomerID]; !ok {
		return nil, &DomainError{Code: "CUSTOMER_NOT_FOUND", Message: "customer not found"}
	}

	pipelines, err := uc.Pipelines.NamesByIDs(ctx, ownerID, []string{input.PipelineID})
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to resolve pipeline: " + err.Error()}
	}
	if _, ok := pipelines[input.PipelineID]; !ok {
		return nil, &DomainError{Code: "PIPELINE_NOT_FOUND", Message: "pipeline not found"}
	}

	job, err := entity.NewJob(ownerID, input.Title, input.CustomerID, input.PipelineID, input.CurrentStep, status, due, input.Progress)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Jobs.Create(ctx, job); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist job: " + err.Error()}
	}

	publishRecordCreated(ctx, uc.Producer, queue.RecordCreatedPayload{
		Kind:      "job",
		ID:        job.ID,
		OwnerID:   ownerID,
		Label:     job.Title,
		CreatedAt: job.CreatedAt,
	})

	return &CreateJobOutput{Success: true, JobID: job.ID}, nil
}

// publishRecordCreated is fire-and-forget: event delivery never fails a write.
func publishRecordCreated(ctx context.Context, producer EventProducer, payload queue.RecordCreatedPayload) {
	if producer == nil {
		return
	}
	if err := producer.PublishRecordCreated(ctx, payload); err != nil {
		log.Printf("record event publish failed for %s %s: %v", payload.Kind, payload.ID, err)
	}
}
