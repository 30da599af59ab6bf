package domain

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// MaxProjectNameLength is the column width of charity_project.name
const MaxProjectNameLength = 100

// CharityProject is a fundraising goal that receives money from donations
type CharityProject struct {
	Investment
	Name        string
	Description string
}

// Validate ensures the project adheres to domain rules
func (p *CharityProject) Validate() error {
	if p.Name == "" {
		return errors.New("project name cannot be empty")
	}
	if utf8.RuneCountInString(p.Name) > MaxProjectNameLength {
		return fmt.Errorf("project name cannot be longer than %d characters", MaxProjectNameLength)
	}
	if p.Description == "" {
		return errors.New("project description cannot be empty")
	}
	return p.Investment.Validate()
}

// HasInvestments reports whether any donation has been allocated to the project
func (p *CharityProject) HasInvestments() bool {
	return p.InvestedAmount.IsPositive()
}
