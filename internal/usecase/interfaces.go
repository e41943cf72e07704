package usecase

import (
	"context"
	"time"

	"github.com/pipetrack/pipetrack/internal/entity"
	"github.com/pipetrack/pipetrack/internal/infra/queue"
)

type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

type PipelineRepository interface {
	Create(ctx context.Context, p *entity.Pipeline) error
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Pipeline, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
	NamesByIDs(ctx context.Context, ownerID string, ids []string) (map[string]string, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, c *entity.Customer) error
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Customer, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
	NamesByIDs(ctx context.Context, ownerID string, ids []string) (map[string]string, error)
}

type JobRepository interface {
	Create(ctx context.Context, j *entity.Job) error
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Job, error)
	CountActiveByOwner(ctx context.Context, ownerID string) (int, error)
	CountActiveDueBetween(ctx context.Context, ownerID string, from, to time.Time) (int, error)
	CountsByCustomer(ctx context.Context, ownerID, customerID string) (total, active int, err error)
	CountActiveByPipeline(ctx context.Context, ownerID, pipelineID string) (int, error)
}

type EventProducer interface {
	PublishRecordCreated(ctx context.Context, payload queue.RecordCreatedPayload) error
}

type EmailService interface {
	SendWelcome(to, name string) error
}
