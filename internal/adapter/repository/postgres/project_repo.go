package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/simaogato/charityflow-backend/internal/domain"
)

const projectColumns = `id, name, description, full_amount, invested_amount, fully_invested, create_date, close_date`

// charityProjectRepository implements domain.CharityProjectRepository
type charityProjectRepository struct {
	db *DB
}

// NewCharityProjectRepository creates a new charity project repository
func NewCharityProjectRepository(db *DB) domain.CharityProjectRepository {
	return &charityProjectRepository{db: db}
}

// Create inserts the project and assigns its ID
func (r *charityProjectRepository) Create(ctx context.Context, project *domain.CharityProject) error {
	query := `
		INSERT INTO charity_project (name, description, full_amount, invested_amount, fully_invested, create_date, close_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.conn(ctx).QueryRowContext(ctx, query,
		project.Name,
		project.Description,
		project.FullAmount.String(),
		project.InvestedAmount.String(),
		project.FullyInvested,
		project.CreateDate,
		nullTime(project.CloseDate),
	).Scan(&project.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateName, project.Name)
		}
		return fmt.Errorf("failed to create charity project: %w", err)
	}

	return nil
}

// GetByID retrieves a project by its ID
func (r *charityProjectRepository) GetByID(ctx context.Context, id int64) (*domain.CharityProject, error) {
	query := `SELECT ` + projectColumns + ` FROM charity_project WHERE id = $1`

	project, err := scanProject(r.db.conn(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("charity project %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get charity project by ID: %w", err)
	}

	return project, nil
}

// GetIDByName returns the ID of the project carrying name, or nil
func (r *charityProjectRepository) GetIDByName(ctx context.Context, name string) (*int64, error) {
	query := `SELECT id FROM charity_project WHERE name = $1`

	var id int64
	err := r.db.conn(ctx).QueryRowContext(ctx, query, name).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up charity project by name: %w", err)
	}

	return &id, nil
}

// GetAll lists every project ordered by creation
func (r *charityProjectRepository) GetAll(ctx context.Context) ([]*domain.CharityProject, error) {
	query := `SELECT ` + projectColumns + ` FROM charity_project ORDER BY create_date, id`
	return r.list(ctx, query)
}

// GetOpen lists open projects oldest first and locks them for the rest of the transaction
func (r *charityProjectRepository) GetOpen(ctx context.Context) ([]*domain.CharityProject, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM charity_project
		WHERE fully_invested = false
		ORDER BY create_date, id
		FOR UPDATE
	`
	return r.list(ctx, query)
}

// GetByCompletionDuration lists closed projects by how long they took to get funded
func (r *charityProjectRepository) GetByCompletionDuration(ctx context.Context) ([]*domain.CharityProject, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM charity_project
		WHERE fully_invested = true
		ORDER BY close_date - create_date, id
	`
	return r.list(ctx, query)
}

// Update persists every mutable column of the project
func (r *charityProjectRepository) Update(ctx context.Context, project *domain.CharityProject) error {
	query := `
		UPDATE charity_project
		SET name = $2, description = $3, full_amount = $4, invested_amount = $5, fully_invested = $6, close_date = $7
		WHERE id = $1
	`

	res, err := r.db.conn(ctx).ExecContext(ctx, query,
		project.ID,
		project.Name,
		project.Description,
		project.FullAmount.String(),
		project.InvestedAmount.String(),
		project.FullyInvested,
		nullTime(project.CloseDate),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateName, project.Name)
		}
		return fmt.Errorf("failed to update charity project: %w", err)
	}

	return checkAffected(res, "charity project", project.ID)
}

// Delete removes the project row
func (r *charityProjectRepository) Delete(ctx context.Context, project *domain.CharityProject) error {
	res, err := r.db.conn(ctx).ExecContext(ctx, `DELETE FROM charity_project WHERE id = $1`, project.ID)
	if err != nil {
		return fmt.Errorf("failed to delete charity project: %w", err)
	}

	return checkAffected(res, "charity project", project.ID)
}

func (r *charityProjectRepository) list(ctx context.Context, query string, args ...any) ([]*domain.CharityProject, error) {
	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list charity projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*domain.CharityProject, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan charity project: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate charity projects: %w", err)
	}

	return projects, nil
}

func scanProject(row scanner) (*domain.CharityProject, error) {
	var project domain.CharityProject
	var fullStr, investedStr string
	var closeDate sql.NullTime

	err := row.Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&fullStr,
		&investedStr,
		&project.FullyInvested,
		&project.CreateDate,
		&closeDate,
	)
	if err != nil {
		return nil, err
	}

	if err := parseInvestment(&project.Investment, fullStr, investedStr, closeDate); err != nil {
		return nil, err
	}

	return &project, nil
}
