package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/charityflow-backend/internal/domain"
)

var created = time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return &DB{DB: sqlDB}, mock
}

func projectRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "description", "full_amount", "invested_amount", "fully_invested", "create_date", "close_date"})
}

func donationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "comment", "full_amount", "invested_amount", "fully_invested", "create_date", "close_date"})
}

func TestCharityProjectRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCharityProjectRepository(db)

	project := &domain.CharityProject{
		Investment:  domain.NewInvestment(decimal.NewFromInt(100), created),
		Name:        "Shelter",
		Description: "Roof repair",
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO charity_project")).
		WithArgs("Shelter", "Roof repair", "100", "0", false, created, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	require.NoError(t, repo.Create(context.Background(), project))
	assert.Equal(t, int64(7), project.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCharityProjectRepository_CreateDuplicateName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCharityProjectRepository(db)

	project := &domain.CharityProject{
		Investment:  domain.NewInvestment(decimal.NewFromInt(100), created),
		Name:        "Shelter",
		Description: "Roof repair",
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO charity_project")).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := repo.Create(context.Background(), project)
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

func TestCharityProjectRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCharityProjectRepository(db)
	closed := created.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("FROM charity_project WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(projectRows().AddRow(int64(3), "Shelter", "Roof repair", "100.50", "100.50", true, created, closed))

	project, err := repo.GetByID(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "Shelter", project.Name)
	assert.True(t, project.FullAmount.Equal(decimal.RequireFromString("100.50")))
	assert.True(t, project.FullyInvested)
	require.NotNil(t, project.CloseDate)
	assert.Equal(t, closed, *project.CloseDate)
	assert.NoError(t, project.Validate())
}

func TestCharityProjectRepository_GetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCharityProjectRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM charity_project WHERE id = $1")).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	project, err := repo.GetByID(context.Background(), 404)

	assert.Nil(t, project)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCharityProjectRepository_GetIDByName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCharityProjectRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM charity_project WHERE name = $1")).
		WithArgs("Shelter").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM charity_project WHERE name = $1")).
		WithArgs("Unknown").
		WillReturnError(sql.ErrNoRows)

	id, err := repo.GetIDByName(context.Background(), "Shelter")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, int64(2), *id)

	id, err = repo.GetIDByName(context.Background(), "Unknown")
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestCharityProjectRepository_GetOpenLocksRowsInCreationOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCharityProjectRepository(db)

	mock.ExpectQuery(`WHERE fully_invested = false\s+ORDER BY create_date, id\s+FOR UPDATE`).
		WillReturnRows(projectRows().
			AddRow(int64(1), "First", "d", "30", "0", false, created, nil).
			AddRow(int64(2), "Second", "d", "20", "5", false, created.Add(time.Minute), nil))

	projects, err := repo.GetOpen(context.Background())

	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "First", projects[0].Name)
	assert.True(t, projects[1].InvestedAmount.Equal(decimal.NewFromInt(5)))
	assert.Nil(t, projects[1].CloseDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCharityProjectRepository_GetByCompletionDuration(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCharityProjectRepository(db)

	mock.ExpectQuery(`WHERE fully_invested = true\s+ORDER BY close_date - create_date, id`).
		WillReturnRows(projectRows().
			AddRow(int64(4), "Quick", "d", "10", "10", true, created, created.Add(time.Minute)))

	projects, err := repo.GetByCompletionDuration(context.Background())

	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Quick", projects[0].Name)
}

func TestCharityProjectRepository_UpdateMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCharityProjectRepository(db)

	project := &domain.CharityProject{
		Investment:  domain.NewInvestment(decimal.NewFromInt(100), created),
		Name:        "Shelter",
		Description: "Roof repair",
	}
	project.ID = 9

	mock.ExpectExec(regexp.QuoteMeta("UPDATE charity_project")).
		WithArgs(int64(9), "Shelter", "Roof repair", "100", "0", false, nil).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), project)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCharityProjectRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCharityProjectRepository(db)
	project := &domain.CharityProject{}
	project.ID = 5

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM charity_project WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), project))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDonationRepository_CreateAndUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDonationRepository(db)
	userID := uuid.New()

	donation := &domain.Donation{
		Investment: domain.NewInvestment(decimal.NewFromInt(60), created),
		UserID:     userID,
		Comment:    "for the cats",
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO donation")).
		WithArgs(userID, "for the cats", "60", "0", false, created, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE donation")).
		WithArgs(int64(12), "60", true, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, donation))
	assert.Equal(t, int64(12), donation.ID)

	donation.Invest(decimal.NewFromInt(60), created.Add(time.Hour))
	require.NoError(t, repo.Update(ctx, donation))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDonationRepository_GetByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDonationRepository(db)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM donation WHERE user_id = $1")).
		WithArgs(userID).
		WillReturnRows(donationRows().
			AddRow(int64(1), userID.String(), "", "25", "10", false, created, nil))

	donations, err := repo.GetByUser(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, donations, 1)
	assert.Equal(t, userID, donations[0].UserID)
	assert.True(t, donations[0].Remaining().Equal(decimal.NewFromInt(15)))
}

func TestDonationRepository_GetOpenScanError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDonationRepository(db)

	mock.ExpectQuery(`FROM donation\s+WHERE fully_invested = false`).
		WillReturnRows(donationRows().
			AddRow(int64(1), uuid.NewString(), "", "not-a-number", "0", false, created, nil))

	donations, err := repo.GetOpen(context.Background())

	assert.Nil(t, donations)
	assert.Contains(t, err.Error(), "failed to parse full_amount")
}

func TestTransactor_CommitsAndJoinsRepositories(t *testing.T) {
	db, mock := newMockDB(t)
	transactor := NewTransactor(db)
	repo := NewDonationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1)")).
		WithArgs(allocationLockKey).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`FROM donation\s+WHERE fully_invested = false`).
		WillReturnRows(donationRows())
	mock.ExpectCommit()

	err := transactor.WithinTransaction(context.Background(), func(ctx context.Context) error {
		_, err := repo.GetOpen(ctx)
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	transactor := NewTransactor(db)
	failure := errors.New("validation failed")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1)")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := transactor.WithinTransaction(context.Background(), func(ctx context.Context) error {
		return failure
	})

	assert.ErrorIs(t, err, failure)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_NestedCallsJoinOuterTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	transactor := NewTransactor(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1)")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	inner := 0
	err := transactor.WithinTransaction(context.Background(), func(ctx context.Context) error {
		return transactor.WithinTransaction(ctx, func(ctx context.Context) error {
			inner++
			return nil
		})
	})

	require.NoError(t, err)
	assert.Equal(t, 1, inner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_CommitFailure(t *testing.T) {
	db, mock := newMockDB(t)
	transactor := NewTransactor(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1)")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	err := transactor.WithinTransaction(context.Background(), func(ctx context.Context) error {
		return nil
	})

	assert.Contains(t, err.Error(), "failed to commit transaction")
}
