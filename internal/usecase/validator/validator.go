// Package validator holds the guard clauses that run before any ledger mutation.
// Every check is read-only and works on data the caller already fetched.
package validator

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/charityflow-backend/internal/domain"
)

// CheckNameDuplicate fails when a project with the name already exists
func CheckNameDuplicate(existingID *int64, name string) error {
	if existingID != nil {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateName, name)
	}
	return nil
}

// CheckProjectOpen fails when the project is already fully invested
func CheckProjectOpen(project *domain.CharityProject) error {
	if project.FullyInvested {
		return fmt.Errorf("%w: project %q", domain.ErrProjectClosed, project.Name)
	}
	return nil
}

// CheckFullAmountNotBelowInvested fails when the new goal is below what was already invested
func CheckFullAmountNotBelowInvested(project *domain.CharityProject, fullAmount decimal.Decimal) error {
	if fullAmount.LessThan(project.InvestedAmount) {
		return fmt.Errorf("%w: already invested %s", domain.ErrTargetBelowInvested, project.InvestedAmount)
	}
	return nil
}

// CheckProjectDeletable fails when money was already allocated to the project
func CheckProjectDeletable(project *domain.CharityProject) error {
	if project.HasInvestments() {
		return fmt.Errorf("%w: project %q", domain.ErrProjectNotDeletable, project.Name)
	}
	return nil
}
