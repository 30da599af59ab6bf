package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/charityflow-backend/internal/domain"
)

const donationColumns = `id, user_id, comment, full_amount, invested_amount, fully_invested, create_date, close_date`

// donationRepository implements domain.DonationRepository
type donationRepository struct {
	db *DB
}

// NewDonationRepository creates a new donation repository
func NewDonationRepository(db *DB) domain.DonationRepository {
	return &donationRepository{db: db}
}

// Create inserts the donation and assigns its ID
func (r *donationRepository) Create(ctx context.Context, donation *domain.Donation) error {
	query := `
		INSERT INTO donation (user_id, comment, full_amount, invested_amount, fully_invested, create_date, close_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.conn(ctx).QueryRowContext(ctx, query,
		donation.UserID,
		donation.Comment,
		donation.FullAmount.String(),
		donation.InvestedAmount.String(),
		donation.FullyInvested,
		donation.CreateDate,
		nullTime(donation.CloseDate),
	).Scan(&donation.ID)
	if err != nil {
		return fmt.Errorf("failed to create donation: %w", err)
	}

	return nil
}

// GetByID retrieves a donation by its ID
func (r *donationRepository) GetByID(ctx context.Context, id int64) (*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donation WHERE id = $1`

	donation, err := scanDonation(r.db.conn(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("donation %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get donation by ID: %w", err)
	}

	return donation, nil
}

// GetAll lists every donation ordered by creation
func (r *donationRepository) GetAll(ctx context.Context) ([]*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donation ORDER BY create_date, id`
	return r.list(ctx, query)
}

// GetOpen lists open donations oldest first and locks them for the rest of the transaction
func (r *donationRepository) GetOpen(ctx context.Context) ([]*domain.Donation, error) {
	query := `
		SELECT ` + donationColumns + `
		FROM donation
		WHERE fully_invested = false
		ORDER BY create_date, id
		FOR UPDATE
	`
	return r.list(ctx, query)
}

// GetByUser lists the donations of one user ordered by creation
func (r *donationRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donation WHERE user_id = $1 ORDER BY create_date, id`
	return r.list(ctx, query, userID)
}

// Update persists the financial fields of the donation
func (r *donationRepository) Update(ctx context.Context, donation *domain.Donation) error {
	query := `
		UPDATE donation
		SET invested_amount = $2, fully_invested = $3, close_date = $4
		WHERE id = $1
	`

	res, err := r.db.conn(ctx).ExecContext(ctx, query,
		donation.ID,
		donation.InvestedAmount.String(),
		donation.FullyInvested,
		nullTime(donation.CloseDate),
	)
	if err != nil {
		return fmt.Errorf("failed to update donation: %w", err)
	}

	return checkAffected(res, "donation", donation.ID)
}

func (r *donationRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Donation, error) {
	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	defer rows.Close()

	donations := make([]*domain.Donation, 0)
	for rows.Next() {
		donation, err := scanDonation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan donation: %w", err)
		}
		donations = append(donations, donation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate donations: %w", err)
	}

	return donations, nil
}

func scanDonation(row scanner) (*domain.Donation, error) {
	var donation domain.Donation
	var fullStr, investedStr string
	var closeDate sql.NullTime

	err := row.Scan(
		&donation.ID,
		&donation.UserID,
		&donation.Comment,
		&fullStr,
		&investedStr,
		&donation.FullyInvested,
		&donation.CreateDate,
		&closeDate,
	)
	if err != nil {
		return nil, err
	}

	if err := parseInvestment(&donation.Investment, fullStr, investedStr, closeDate); err != nil {
		return nil, err
	}

	return &donation, nil
}
