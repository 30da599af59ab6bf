package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrDuplicateName       = errors.New("project name already exists")
	ErrProjectClosed       = errors.New("project is closed for edits")
	ErrTargetBelowInvested = errors.New("full amount is below invested amount")
	ErrProjectNotDeletable = errors.New("project has investments and cannot be deleted")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
)

// IsConflict reports whether err violates a ledger precondition
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicateName) ||
		errors.Is(err, ErrProjectClosed) ||
		errors.Is(err, ErrTargetBelowInvested) ||
		errors.Is(err, ErrProjectNotDeletable)
}
