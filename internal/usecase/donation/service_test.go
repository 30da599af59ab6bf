package donation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/charityflow-backend/internal/domain"
	"github.com/simaogato/charityflow-backend/internal/domain/mocks"
)

var fixedNow = time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

func newTestService() (*DonationService, *mocks.DonationRepository, *mocks.CharityProjectRepository) {
	donationRepo := new(mocks.DonationRepository)
	projectRepo := new(mocks.CharityProjectRepository)

	service := NewDonationService(donationRepo, projectRepo, &mocks.Transactor{}, zerolog.Nop())
	service.Now = func() time.Time { return fixedNow }

	return service, donationRepo, projectRepo
}

func openProject(id int64, full int64, createdAt time.Time) *domain.CharityProject {
	inv := domain.NewInvestment(decimal.NewFromInt(full), createdAt)
	inv.ID = id
	return &domain.CharityProject{Investment: inv, Name: "project", Description: "description"}
}

// expectDonation wires the calls shared by every successful Donate
func expectDonation(ctx context.Context, donationRepo *mocks.DonationRepository, projectRepo *mocks.CharityProjectRepository, open []*domain.CharityProject) {
	donationRepo.On("Create", ctx, mock.AnythingOfType("*domain.Donation")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Donation).ID = 100
		}).
		Return(nil).Once()
	projectRepo.On("GetOpen", ctx).Return(open, nil).Once()
	donationRepo.On("Update", ctx, mock.AnythingOfType("*domain.Donation")).Return(nil).Once()
}

func TestDonate_SingleProjectTwoDonations(t *testing.T) {
	ctx := context.Background()
	service, donationRepo, projectRepo := newTestService()
	userID := uuid.New()
	project := openProject(1, 100, fixedNow.Add(-time.Hour))

	// Donation of 60: fully placed, project stays open
	expectDonation(ctx, donationRepo, projectRepo, []*domain.CharityProject{project})
	projectRepo.On("Update", ctx, project).Return(nil).Twice()

	first, err := service.Donate(ctx, userID, MakeDonationInput{FullAmount: decimal.NewFromInt(60)})

	require.NoError(t, err)
	assert.True(t, first.FullyInvested)
	assert.True(t, first.InvestedAmount.Equal(decimal.NewFromInt(60)))
	assert.True(t, project.InvestedAmount.Equal(decimal.NewFromInt(60)))
	assert.False(t, project.FullyInvested)

	// Donation of 50: only 40 capacity left, project closes
	expectDonation(ctx, donationRepo, projectRepo, []*domain.CharityProject{project})

	second, err := service.Donate(ctx, userID, MakeDonationInput{FullAmount: decimal.NewFromInt(50)})

	require.NoError(t, err)
	assert.False(t, second.FullyInvested)
	assert.Nil(t, second.CloseDate)
	assert.True(t, second.InvestedAmount.Equal(decimal.NewFromInt(40)))
	assert.True(t, project.FullyInvested)
	require.NotNil(t, project.CloseDate)
	assert.Equal(t, fixedNow, *project.CloseDate)

	donationRepo.AssertExpectations(t)
	projectRepo.AssertExpectations(t)
}

func TestDonate_SpreadsOverProjectsOldestFirst(t *testing.T) {
	ctx := context.Background()
	service, donationRepo, projectRepo := newTestService()
	first := openProject(1, 30, fixedNow.Add(-2*time.Hour))
	second := openProject(2, 20, fixedNow.Add(-time.Hour))

	expectDonation(ctx, donationRepo, projectRepo, []*domain.CharityProject{first, second})
	projectRepo.On("Update", ctx, first).Return(nil).Once()
	projectRepo.On("Update", ctx, second).Return(nil).Once()

	donation, err := service.Donate(ctx, uuid.New(), MakeDonationInput{FullAmount: decimal.NewFromInt(45), Comment: "for the cats"})

	require.NoError(t, err)
	assert.Equal(t, int64(100), donation.ID)
	assert.Equal(t, "for the cats", donation.Comment)
	assert.True(t, donation.FullyInvested)
	assert.True(t, first.FullyInvested)
	assert.True(t, second.InvestedAmount.Equal(decimal.NewFromInt(15)))
	assert.False(t, second.FullyInvested)
	projectRepo.AssertExpectations(t)
}

func TestDonate_ZeroAmountClosesImmediately(t *testing.T) {
	ctx := context.Background()
	service, donationRepo, projectRepo := newTestService()
	project := openProject(1, 100, fixedNow.Add(-time.Hour))

	expectDonation(ctx, donationRepo, projectRepo, []*domain.CharityProject{project})

	donation, err := service.Donate(ctx, uuid.New(), MakeDonationInput{FullAmount: decimal.Zero})

	require.NoError(t, err)
	assert.True(t, donation.FullyInvested)
	assert.True(t, donation.InvestedAmount.IsZero())
	require.NotNil(t, donation.CloseDate)
	assert.Equal(t, fixedNow, *donation.CloseDate)
	assert.NoError(t, donation.Validate())
	assert.True(t, project.InvestedAmount.IsZero())
	assert.False(t, project.FullyInvested)
	projectRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDonate_Validation(t *testing.T) {
	service, donationRepo, _ := newTestService()

	_, err := service.Donate(context.Background(), uuid.Nil, MakeDonationInput{FullAmount: decimal.NewFromInt(5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = service.Donate(context.Background(), uuid.New(), MakeDonationInput{FullAmount: decimal.NewFromInt(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "full amount cannot be negative")

	donationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDonate_CommitFailure(t *testing.T) {
	ctx := context.Background()
	donationRepo := new(mocks.DonationRepository)
	projectRepo := new(mocks.CharityProjectRepository)
	commitErr := errors.New("commit failed")
	service := NewDonationService(donationRepo, projectRepo, &mocks.Transactor{Err: commitErr}, zerolog.Nop())

	expectDonation(ctx, donationRepo, projectRepo, []*domain.CharityProject{})

	donation, err := service.Donate(ctx, uuid.New(), MakeDonationInput{FullAmount: decimal.NewFromInt(5)})

	assert.Nil(t, donation)
	assert.ErrorIs(t, err, commitErr)
}

func TestListByUser(t *testing.T) {
	ctx := context.Background()
	service, donationRepo, _ := newTestService()
	userID := uuid.New()
	expected := []*domain.Donation{{UserID: userID}}

	donationRepo.On("GetByUser", ctx, userID).Return(expected, nil)

	result, err := service.ListByUser(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, result)
}
