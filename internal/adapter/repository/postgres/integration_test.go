//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/charityflow-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/charityflow-backend/internal/domain"
	"github.com/simaogato/charityflow-backend/internal/usecase/donation"
	"github.com/simaogato/charityflow-backend/internal/usecase/project"
)

var db *postgres.DB

// TestMain connects to the database named by TEST_DATABASE_URL and migrates it
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		fmt.Println("TEST_DATABASE_URL not set, skipping integration tests")
		os.Exit(0)
	}

	var err error
	db, err = postgres.NewDB(context.Background(), dsn)
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	if err := postgres.Migrate(db); err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}

	code := m.Run()
	db.Close()
	os.Exit(code)
}

type services struct {
	projects  *project.ProjectService
	donations *donation.DonationService
	projRepo  domain.CharityProjectRepository
	donRepo   domain.DonationRepository
}

func setup(t *testing.T) services {
	t.Helper()
	_, err := db.ExecContext(context.Background(), `TRUNCATE donation, charity_project RESTART IDENTITY`)
	require.NoError(t, err)

	projectRepo := postgres.NewCharityProjectRepository(db)
	donationRepo := postgres.NewDonationRepository(db)
	transactor := postgres.NewTransactor(db)

	return services{
		projects:  project.NewProjectService(projectRepo, donationRepo, transactor, zerolog.Nop()),
		donations: donation.NewDonationService(donationRepo, projectRepo, transactor, zerolog.Nop()),
		projRepo:  projectRepo,
		donRepo:   donationRepo,
	}
}

func TestIntegration_DonationsFundProjectsInOrder(t *testing.T) {
	ctx := context.Background()
	s := setup(t)
	user := uuid.New()

	p1, err := s.projects.Create(ctx, project.CreateProjectInput{Name: "Shelter", Description: "roof", FullAmount: decimal.NewFromInt(100)})
	require.NoError(t, err)

	_, err = s.donations.Donate(ctx, user, donation.MakeDonationInput{FullAmount: decimal.NewFromInt(60)})
	require.NoError(t, err)
	d2, err := s.donations.Donate(ctx, user, donation.MakeDonationInput{FullAmount: decimal.NewFromInt(60)})
	require.NoError(t, err)

	stored, err := s.projRepo.GetByID(ctx, p1.ID)
	require.NoError(t, err)
	assert.True(t, stored.FullyInvested)
	assert.NotNil(t, stored.CloseDate)
	assert.True(t, d2.InvestedAmount.Equal(decimal.NewFromInt(40)))

	// The leftover 20 funds the next project
	p2, err := s.projects.Create(ctx, project.CreateProjectInput{Name: "School", Description: "books", FullAmount: decimal.NewFromInt(50)})
	require.NoError(t, err)
	assert.True(t, p2.InvestedAmount.Equal(decimal.NewFromInt(20)))

	storedDonation, err := s.donRepo.GetByID(ctx, d2.ID)
	require.NoError(t, err)
	assert.True(t, storedDonation.FullyInvested)
	require.NoError(t, storedDonation.Validate())

	mine, err := s.donations.ListByUser(ctx, user)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	completed, err := s.projRepo.GetByCompletionDuration(ctx)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "Shelter", completed[0].Name)
}

func TestIntegration_DuplicateNameAndDeletion(t *testing.T) {
	ctx := context.Background()
	s := setup(t)

	p, err := s.projects.Create(ctx, project.CreateProjectInput{Name: "Well", Description: "water", FullAmount: decimal.NewFromInt(10)})
	require.NoError(t, err)

	_, err = s.projects.Create(ctx, project.CreateProjectInput{Name: "Well", Description: "again", FullAmount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	deleted, err := s.projects.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, deleted.ID)

	_, err = s.projects.Get(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIntegration_ConcurrentDonationsNeverOverfund(t *testing.T) {
	ctx := context.Background()
	s := setup(t)

	_, err := s.projects.Create(ctx, project.CreateProjectInput{Name: "Clinic", Description: "beds", FullAmount: decimal.NewFromInt(100)})
	require.NoError(t, err)

	const donors = 20
	var wg sync.WaitGroup
	errs := make(chan error, donors)
	for i := 0; i < donors; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.donations.Donate(ctx, uuid.New(), donation.MakeDonationInput{FullAmount: decimal.NewFromInt(10)})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	projects, err := s.projRepo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.True(t, projects[0].InvestedAmount.Equal(decimal.NewFromInt(100)))
	assert.True(t, projects[0].FullyInvested)

	donations, err := s.donRepo.GetAll(ctx)
	require.NoError(t, err)
	invested := decimal.Zero
	for _, d := range donations {
		require.NoError(t, d.Validate())
		invested = invested.Add(d.InvestedAmount)
	}
	assert.True(t, invested.Equal(decimal.NewFromInt(100)), "allocated %s", invested)
}

func TestIntegration_ZeroAmountEntitiesArePersistedClosed(t *testing.T) {
	ctx := context.Background()
	s := setup(t)
	user := uuid.New()

	open, err := s.projects.Create(ctx, project.CreateProjectInput{Name: "Library", Description: "shelves", FullAmount: decimal.NewFromInt(30)})
	require.NoError(t, err)

	d, err := s.donations.Donate(ctx, user, donation.MakeDonationInput{FullAmount: decimal.Zero, Comment: "zero"})
	require.NoError(t, err)
	storedDonation, err := s.donRepo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.True(t, storedDonation.FullyInvested)
	assert.NotNil(t, storedDonation.CloseDate)

	p, err := s.projects.Create(ctx, project.CreateProjectInput{Name: "Placeholder", Description: "nothing", FullAmount: decimal.Zero})
	require.NoError(t, err)
	storedProject, err := s.projRepo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, storedProject.FullyInvested)
	assert.NotNil(t, storedProject.CloseDate)

	stillOpen, err := s.projRepo.GetByID(ctx, open.ID)
	require.NoError(t, err)
	assert.True(t, stillOpen.InvestedAmount.IsZero())
	assert.False(t, stillOpen.FullyInvested)
}
