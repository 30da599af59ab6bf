package domain

import (
	"context"

	"github.com/google/uuid"
)

// CharityProjectRepository defines the interface for project persistence operations
type CharityProjectRepository interface {
	// Create inserts the project and assigns its ID
	Create(ctx context.Context, project *CharityProject) error

	// GetByID returns ErrNotFound when the project does not exist
	GetByID(ctx context.Context, id int64) (*CharityProject, error)

	// GetIDByName returns nil when no project carries the name
	GetIDByName(ctx context.Context, name string) (*int64, error)

	// GetAll lists every project ordered by creation
	GetAll(ctx context.Context) ([]*CharityProject, error)

	// GetOpen lists projects that are not fully invested, oldest first.
	// Inside a transaction the returned rows stay locked until it ends.
	GetOpen(ctx context.Context) ([]*CharityProject, error)

	// GetByCompletionDuration lists closed projects, fastest funded first
	GetByCompletionDuration(ctx context.Context) ([]*CharityProject, error)

	// Update persists name, description and financial fields
	Update(ctx context.Context, project *CharityProject) error

	Delete(ctx context.Context, project *CharityProject) error
}

// DonationRepository defines the interface for donation persistence operations
type DonationRepository interface {
	Create(ctx context.Context, donation *Donation) error
	GetByID(ctx context.Context, id int64) (*Donation, error)
	GetAll(ctx context.Context) ([]*Donation, error)

	// GetOpen lists donations that are not fully invested, oldest first.
	// Inside a transaction the returned rows stay locked until it ends.
	GetOpen(ctx context.Context) ([]*Donation, error)

	GetByUser(ctx context.Context, userID uuid.UUID) ([]*Donation, error)
	Update(ctx context.Context, donation *Donation) error
}

// Transactor runs fn as one atomic unit of work. Repository calls made with
// the context handed to fn join the transaction; any error returned by fn
// rolls everything back.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
