package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Fundable is the financial capability shared by donations and charity projects.
// The distribution engine is written against it so both sides of an allocation
// go through the same code.
type Fundable interface {
	Key() int64
	CreatedAt() time.Time
	Remaining() decimal.Decimal
	IsOpen() bool
	Invest(amount decimal.Decimal, now time.Time)
	Close(now time.Time)
}

// Investment holds the financial fields common to donations and projects.
// FullAmount is the face value of a donation or the goal of a project.
type Investment struct {
	ID             int64
	FullAmount     decimal.Decimal
	InvestedAmount decimal.Decimal
	FullyInvested  bool
	CreateDate     time.Time
	CloseDate      *time.Time // NULL until FullyInvested
}

// NewInvestment returns an investment with nothing allocated yet.
// A zero target has nothing left to fund, so it starts closed at createdAt.
func NewInvestment(fullAmount decimal.Decimal, createdAt time.Time) Investment {
	inv := Investment{
		FullAmount:     fullAmount,
		InvestedAmount: decimal.Zero,
		CreateDate:     createdAt,
	}
	if fullAmount.IsZero() {
		inv.Close(createdAt)
	}
	return inv
}

func (i *Investment) Key() int64 {
	return i.ID
}

func (i *Investment) CreatedAt() time.Time {
	return i.CreateDate
}

// Remaining returns the capacity left: FullAmount - InvestedAmount
func (i *Investment) Remaining() decimal.Decimal {
	return i.FullAmount.Sub(i.InvestedAmount)
}

func (i *Investment) IsOpen() bool {
	return !i.FullyInvested
}

// Invest adds amount to the invested total and closes the investment once
// nothing remains. Closed investments are never touched again.
func (i *Investment) Invest(amount decimal.Decimal, now time.Time) {
	if i.FullyInvested || !amount.IsPositive() {
		return
	}
	i.InvestedAmount = i.InvestedAmount.Add(amount)
	if i.Remaining().IsZero() {
		i.Close(now)
	}
}

// Close marks the investment as fully invested. The first close date wins.
func (i *Investment) Close(now time.Time) {
	if i.FullyInvested {
		return
	}
	closedAt := now
	i.FullyInvested = true
	i.CloseDate = &closedAt
}

// Validate checks the amount invariants that must hold for every stored entity
func (i *Investment) Validate() error {
	if i.FullAmount.IsNegative() {
		return errors.New("full amount cannot be negative")
	}
	if i.InvestedAmount.IsNegative() {
		return errors.New("invested amount cannot be negative")
	}
	if i.InvestedAmount.GreaterThan(i.FullAmount) {
		return errors.New("invested amount cannot exceed full amount")
	}
	if i.FullyInvested != i.InvestedAmount.Equal(i.FullAmount) {
		return errors.New("fully invested flag must match invested amount")
	}
	if i.FullyInvested != (i.CloseDate != nil) {
		return errors.New("close date must be set exactly when fully invested")
	}
	return nil
}
