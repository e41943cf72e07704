package usecase

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/pipetrack/pipetrack/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// dueDateLayout is the calendar-date wire format for job due dates.
const dueDateLayout = "2006-01-02"

func ValidateCreateJobInput(input CreateJobInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.Title) == "" {
		errs = append(errs, ValidationError{"title", "is required"})
	} else if len(input.Title) > 200 {
		errs = append(errs, ValidationError{"title", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.CustomerID) == "" {
		errs = append(errs, ValidationError{"customerId", "is required"})
	}
	if strings.TrimSpace(input.PipelineID) == "" {
		errs = append(errs, ValidationError{"pipelineId", "is required"})
	}

	if input.Status != "" {
		if _, err := entity.ParseJobStatus(input.Status); err != nil {
			errs = append(errs, ValidationError{"status", "must be one of active, completed, paused"})
		}
	}

	if input.DueDate != "" {
		if _, err := time.Parse(dueDateLayout, input.DueDate); err != nil {
			errs = append(errs, ValidationError{"dueDate", "must be a valid date (YYYY-MM-DD)"})
		}
	}

	return errs
}

func ValidateCreateCustomerInput(input CreateCustomerInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errs = append(errs, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}

	return errs
}

func ValidateCreatePipelineInput(input CreatePipelineInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errs = append(errs, ValidationError{"name", "must not exceed 200 characters"})
	}

	for i, step := range input.Steps {
		if strings.TrimSpace(step) == "" {
			errs = append(errs, ValidationError{"steps", fmt.Sprintf("step %d must not be empty", i)})
			break
		}
	}

	return errs
}

func validationDomainError(errs []ValidationError) *DomainError {
	msg := "validation failed: "
	for _, e := range errs {
		msg += e.Field + " (" + e.Message + "), "
	}
	return &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: strings.TrimSuffix(msg, ", "),
	}
}
