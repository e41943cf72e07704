package usecase

import (
	"context"

	"github.com/pipetrack/pipetrack/internal/entity"
	"github.com/pipetrack/pipetrack/internal/infra/queue"
)

type CreateCustomerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CreateCustomerOutput struct {
	Success    bool   `json:"success"`
	CustomerID string `json:"customerId"`
}

type CreateCustomerUseCase struct {
	Customers CustomerRepository
	Producer  EventProducer
}

func NewCreateCustomerUseCase(customers CustomerRepository, producer EventProducer) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{
		Customers: customers,
		Producer:  producer,
	}
}

func (uc *CreateCustomerUseCase) Execute(ctx context.Context, ownerID string, input CreateCustomerInput) (*CreateCustomerOutput, error) {
	if errs := ValidateCreateCustomerInput(input); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}

	customer, err := entity.NewCustomer(ownerID, input.Name, input.Email, input.Phone)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Customers.Create(ctx, customer); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist customer: " + err.Error()}
	}

	publishRecordCreated(ctx, uc.Producer, queue.RecordCreatedPayload{
		Kind:      "customer",
		ID:        customer.ID,
		OwnerID:   ownerID,
		Label:     customer.Name,
		CreatedAt: customer.CreatedAt,
	})

	return &CreateCustomerOutput{Success: true, CustomerID: customer.ID}, nil
}
