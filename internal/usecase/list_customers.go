package usecase

import (
	"context"
)

// CustomerView is a customer enriched with its job counts. The counts come
// from one extra query per customer, which is fine at this scale.
type CustomerView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	ActiveJobs int    `json:"activeJobs"`
	TotalJobs  int    `json:"totalJobs"`
}

type ListCustomersUseCase struct {
	Customers CustomerRepository
	Jobs      JobRepository
}

func NewListCustomersUseCase(customers CustomerRepository, jobs JobRepository) *ListCustomersUseCase {
	return &ListCustomersUseCase{
		Customers: customers,
		Jobs:      jobs,
	}
}

func (uc *ListCustomersUseCase) Execute(ctx context.Context, ownerID string) ([]CustomerView, error) {
	customers, err := uc.Customers.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to list customers: " + err.Error()}
	}

	views := make([]CustomerView, 0, len(customers))
	for _, c := range customers {
		total, active, err := uc.Jobs.CountsByCustomer(ctx, ownerID, c.ID)
		if err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to count jobs: " + err.Error()}
		}

		views = append(views, CustomerView{
			ID:         c.ID,
			Name:       c.Name,
			Email:      c.Email,
			Phone:      c.Phone,
			ActiveJobs: active,
			TotalJobs:  total,
		})
	}

	return views, nil
}
