package donation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/simaogato/charityflow-backend/internal/domain"
	"github.com/simaogato/charityflow-backend/internal/metrics"
	"github.com/simaogato/charityflow-backend/internal/usecase/distributor"
)

// MakeDonationInput represents the input for making a donation
type MakeDonationInput struct {
	FullAmount decimal.Decimal
	Comment    string
}

// DonationService handles donation operations
type DonationService struct {
	DonationRepo domain.DonationRepository
	ProjectRepo  domain.CharityProjectRepository
	Transactor   domain.Transactor
	Logger       zerolog.Logger
	Now          func() time.Time
}

// NewDonationService creates a new DonationService instance
func NewDonationService(
	donationRepo domain.DonationRepository,
	projectRepo domain.CharityProjectRepository,
	transactor domain.Transactor,
	logger zerolog.Logger,
) *DonationService {
	return &DonationService{
		DonationRepo: donationRepo,
		ProjectRepo:  projectRepo,
		Transactor:   transactor,
		Logger:       logger,
		Now:          func() time.Time { return time.Now().UTC() },
	}
}

// Donate records a donation for userID and spreads it over open projects,
// oldest project first. Whatever cannot be placed stays on the donation until
// a new project is created.
func (s *DonationService) Donate(ctx context.Context, userID uuid.UUID, input MakeDonationInput) (*domain.Donation, error) {
	donation := &domain.Donation{
		Investment: domain.NewInvestment(input.FullAmount, s.Now()),
		UserID:     userID,
		Comment:    input.Comment,
	}
	if err := donation.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	err := s.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.DonationRepo.Create(ctx, donation); err != nil {
			return err
		}

		projects, err := s.ProjectRepo.GetOpen(ctx)
		if err != nil {
			return err
		}

		result := distributor.Distribute(donation, projects, s.Now())
		for _, project := range result.Targets {
			if err := s.ProjectRepo.Update(ctx, project); err != nil {
				return err
			}
		}
		if err := s.DonationRepo.Update(ctx, donation); err != nil {
			return err
		}

		allocated, _ := result.Allocated.Float64()
		metrics.RecordDistribution("donation", result.Closed, allocated)
		s.Logger.Debug().
			Int64("donation_id", donation.ID).
			Int("projects_touched", len(result.Targets)).
			Str("allocated", result.Allocated.String()).
			Bool("fully_invested", donation.FullyInvested).
			Msg("donation distributed to open projects")
		return nil
	})
	if err != nil {
		return nil, err
	}

	return donation, nil
}

// ListAll returns every donation; reserved for superusers by the transports
func (s *DonationService) ListAll(ctx context.Context) ([]*domain.Donation, error) {
	return s.DonationRepo.GetAll(ctx)
}

// ListByUser returns the donations made by userID
func (s *DonationService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Donation, error) {
	return s.DonationRepo.GetByUser(ctx, userID)
}
