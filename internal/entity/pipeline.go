package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Pipeline is a named, ordered list of workflow step labels. The order is
// display/workflow order only; nothing enforces transitions between steps.
type Pipeline struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Steps       []string  `json:"steps"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewPipeline(ownerID, name, description string, steps []string) (*Pipeline, error) {
	p := &Pipeline{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Steps:       steps,
		OwnerID:     ownerID,
		CreatedAt:   time.Now(),
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Pipeline) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.OwnerID == "" {
		return errors.New("owner is required")
	}
	return nil
}
