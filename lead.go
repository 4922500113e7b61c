package gymapi

import (
	"context"
	"errors"
	"time"
)

var ErrLeadNotFound = errors.New("lead not found")

// DefaultProgram is assigned to submissions that leave the program blank.
const DefaultProgram = "General Inquiry"

// Lead is a contact-form submission from the public site.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Program   string    `json:"program"`
	CreatedAt time.Time `json:"createdAt"`
}

// LeadService persists and retrieves leads. Listing returns leads ordered
// newest first. Delete is a hard delete.
type LeadService interface {
	Create(ctx context.Context, lead Lead) error
	List(ctx context.Context) ([]Lead, error)
	Delete(ctx context.Context, id string) error
}
