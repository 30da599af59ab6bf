// Package mocks provides testify mocks of the domain repositories shared by
// the use case and adapter tests.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/simaogato/charityflow-backend/internal/domain"
)

// CharityProjectRepository is a mock implementation of domain.CharityProjectRepository
type CharityProjectRepository struct {
	mock.Mock
}

func (m *CharityProjectRepository) Create(ctx context.Context, project *domain.CharityProject) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *CharityProjectRepository) GetByID(ctx context.Context, id int64) (*domain.CharityProject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CharityProject), args.Error(1)
}

func (m *CharityProjectRepository) GetIDByName(ctx context.Context, name string) (*int64, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int64), args.Error(1)
}

func (m *CharityProjectRepository) GetAll(ctx context.Context) ([]*domain.CharityProject, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CharityProject), args.Error(1)
}

func (m *CharityProjectRepository) GetOpen(ctx context.Context) ([]*domain.CharityProject, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CharityProject), args.Error(1)
}

func (m *CharityProjectRepository) GetByCompletionDuration(ctx context.Context) ([]*domain.CharityProject, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CharityProject), args.Error(1)
}

func (m *CharityProjectRepository) Update(ctx context.Context, project *domain.CharityProject) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *CharityProjectRepository) Delete(ctx context.Context, project *domain.CharityProject) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

// DonationRepository is a mock implementation of domain.DonationRepository
type DonationRepository struct {
	mock.Mock
}

func (m *DonationRepository) Create(ctx context.Context, donation *domain.Donation) error {
	args := m.Called(ctx, donation)
	return args.Error(0)
}

func (m *DonationRepository) GetByID(ctx context.Context, id int64) (*domain.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}

func (m *DonationRepository) GetAll(ctx context.Context) ([]*domain.Donation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Donation), args.Error(1)
}

func (m *DonationRepository) GetOpen(ctx context.Context) ([]*domain.Donation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Donation), args.Error(1)
}

func (m *DonationRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Donation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Donation), args.Error(1)
}

func (m *DonationRepository) Update(ctx context.Context, donation *domain.Donation) error {
	args := m.Called(ctx, donation)
	return args.Error(0)
}

// Transactor runs the unit of work inline with the caller's context.
// Err, when set, is returned instead of the unit of work's result to simulate
// a failed commit.
type Transactor struct {
	Calls int
	Err   error
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.Calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return t.Err
}
