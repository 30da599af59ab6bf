package project

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/simaogato/charityflow-backend/internal/domain"
	"github.com/simaogato/charityflow-backend/internal/metrics"
	"github.com/simaogato/charityflow-backend/internal/usecase/distributor"
	"github.com/simaogato/charityflow-backend/internal/usecase/validator"
)

// CreateProjectInput represents the input for creating a charity project
type CreateProjectInput struct {
	Name        string
	Description string
	FullAmount  decimal.Decimal
}

// UpdateProjectInput carries the fields an administrator may change.
// Nil fields are left untouched.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	FullAmount  *decimal.Decimal
}

// ProjectService handles charity project operations
type ProjectService struct {
	ProjectRepo  domain.CharityProjectRepository
	DonationRepo domain.DonationRepository
	Transactor   domain.Transactor
	Logger       zerolog.Logger
	Now          func() time.Time
}

// NewProjectService creates a new ProjectService instance
func NewProjectService(
	projectRepo domain.CharityProjectRepository,
	donationRepo domain.DonationRepository,
	transactor domain.Transactor,
	logger zerolog.Logger,
) *ProjectService {
	return &ProjectService{
		ProjectRepo:  projectRepo,
		DonationRepo: donationRepo,
		Transactor:   transactor,
		Logger:       logger,
		Now:          func() time.Time { return time.Now().UTC() },
	}
}

// Create opens a new project and immediately funds it from open donations.
// Logic (one transaction):
//  1. Reject a duplicate name
//  2. Insert the project with nothing invested
//  3. Fetch open donations and run the distributor with the project as source
//  4. Persist every touched donation and the project
func (s *ProjectService) Create(ctx context.Context, input CreateProjectInput) (*domain.CharityProject, error) {
	project := &domain.CharityProject{
		Investment:  domain.NewInvestment(input.FullAmount, s.Now()),
		Name:        input.Name,
		Description: input.Description,
	}
	if err := project.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	err := s.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		existingID, err := s.ProjectRepo.GetIDByName(ctx, project.Name)
		if err != nil {
			return err
		}
		if err := validator.CheckNameDuplicate(existingID, project.Name); err != nil {
			return err
		}

		if err := s.ProjectRepo.Create(ctx, project); err != nil {
			return err
		}

		donations, err := s.DonationRepo.GetOpen(ctx)
		if err != nil {
			return err
		}

		result := distributor.Distribute(project, donations, s.Now())
		for _, donation := range result.Targets {
			if err := s.DonationRepo.Update(ctx, donation); err != nil {
				return err
			}
		}
		if err := s.ProjectRepo.Update(ctx, project); err != nil {
			return err
		}

		allocated, _ := result.Allocated.Float64()
		metrics.RecordDistribution("charity_project", result.Closed, allocated)
		s.Logger.Debug().
			Int64("project_id", project.ID).
			Int("donations_touched", len(result.Targets)).
			Str("allocated", result.Allocated.String()).
			Bool("fully_invested", project.FullyInvested).
			Msg("project funded from open donations")
		return nil
	})
	if err != nil {
		return nil, err
	}

	return project, nil
}

// Get returns a single project
func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.CharityProject, error) {
	return s.ProjectRepo.GetByID(ctx, id)
}

// List returns every project ordered by creation
func (s *ProjectService) List(ctx context.Context) ([]*domain.CharityProject, error) {
	return s.ProjectRepo.GetAll(ctx)
}

// Update edits a project that is still open.
// The goal can never drop below what was already invested; raising or lowering
// it to exactly the invested amount closes the project.
func (s *ProjectService) Update(ctx context.Context, id int64, input UpdateProjectInput) (*domain.CharityProject, error) {
	var project *domain.CharityProject

	err := s.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		project, err = s.ProjectRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := validator.CheckProjectOpen(project); err != nil {
			return err
		}

		if input.Name != nil && *input.Name != project.Name {
			existingID, err := s.ProjectRepo.GetIDByName(ctx, *input.Name)
			if err != nil {
				return err
			}
			if err := validator.CheckNameDuplicate(existingID, *input.Name); err != nil {
				return err
			}
			project.Name = *input.Name
		}
		if input.Description != nil {
			project.Description = *input.Description
		}
		if input.FullAmount != nil {
			if err := validator.CheckFullAmountNotBelowInvested(project, *input.FullAmount); err != nil {
				return err
			}
			project.FullAmount = *input.FullAmount
			if project.Remaining().IsZero() {
				project.Close(s.Now())
			}
		}

		if err := project.Validate(); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}

		return s.ProjectRepo.Update(ctx, project)
	})
	if err != nil {
		return nil, err
	}

	return project, nil
}

// Delete removes a project that never received any money
func (s *ProjectService) Delete(ctx context.Context, id int64) (*domain.CharityProject, error) {
	var project *domain.CharityProject

	err := s.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		project, err = s.ProjectRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := validator.CheckProjectDeletable(project); err != nil {
			return err
		}
		return s.ProjectRepo.Delete(ctx, project)
	})
	if err != nil {
		return nil, err
	}

	return project, nil
}
