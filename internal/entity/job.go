package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JobStatus is a closed set; every write path must go through ParseJobStatus
// so an unknown value never reaches the store.
type JobStatus string

const (
	StatusActive    JobStatus = "active"
	StatusCompleted JobStatus = "completed"
	StatusPaused    JobStatus = "paused"
)

func ParseJobStatus(s string) (JobStatus, error) {
	switch JobStatus(s) {
	case StatusActive, StatusCompleted, StatusPaused:
		return JobStatus(s), nil
	}
	return "", fmt.Errorf("invalid job status %q", s)
}

// Job tracks one Customer's progress through one Pipeline. CurrentStep is free
// text and deliberately not checked against the pipeline's step list.
type Job struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	CustomerID  string     `json:"customer_id"`
	PipelineID  string     `json:"pipeline_id"`
	CurrentStep string     `json:"current_step"`
	Status      JobStatus  `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Progress    int        `json:"progress"`
	OwnerID     string     `json:"owner_id"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewJob(ownerID, title, customerID, pipelineID, currentStep string, status JobStatus, dueDate *time.Time, progress int) (*Job, error) {
	j := &Job{
		ID:          uuid.New().String(),
		Title:       title,
		CustomerID:  customerID,
		PipelineID:  pipelineID,
		CurrentStep: currentStep,
		Status:      status,
		DueDate:     dueDate,
		Progress:    ClampProgress(progress),
		OwnerID:     ownerID,
		CreatedAt:   time.Now(),
	}

	if err := j.Validate(); err != nil {
		return nil, err
	}

	return j, nil
}

func (j *Job) Validate() error {
	if j.Title == "" {
		return errors.New("title is required")
	}
	if j.CustomerID == "" {
		return errors.New("customer is required")
	}
	if j.PipelineID == "" {
		return errors.New("pipeline is required")
	}
	if j.OwnerID == "" {
		return errors.New("owner is required")
	}
	if _, err := ParseJobStatus(string(j.Status)); err != nil {
		return err
	}
	return nil
}

func ClampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
