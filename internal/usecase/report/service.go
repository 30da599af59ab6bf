package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simaogato/charityflow-backend/internal/domain"
)

// ProjectCompletion describes how long a closed project took to get funded
type ProjectCompletion struct {
	Project  *domain.CharityProject
	Duration time.Duration
}

// CompletionReport lists closed projects, fastest funded first
type CompletionReport struct {
	Projects    []ProjectCompletion
	TotalRaised decimal.Decimal
}

// ReportService builds read-only views over the ledger
type ReportService struct {
	ProjectRepo domain.CharityProjectRepository
}

// NewReportService creates a new ReportService instance
func NewReportService(projectRepo domain.CharityProjectRepository) *ReportService {
	return &ReportService{ProjectRepo: projectRepo}
}

// CompletionRate returns closed projects ordered by close_date - create_date.
// The repository already orders them; durations are computed here for display.
func (s *ReportService) CompletionRate(ctx context.Context) (*CompletionReport, error) {
	projects, err := s.ProjectRepo.GetByCompletionDuration(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list closed projects: %w", err)
	}

	report := &CompletionReport{
		Projects:    make([]ProjectCompletion, 0, len(projects)),
		TotalRaised: decimal.Zero,
	}
	for _, project := range projects {
		if project.CloseDate == nil {
			continue
		}
		report.Projects = append(report.Projects, ProjectCompletion{
			Project:  project,
			Duration: project.CloseDate.Sub(project.CreateDate),
		})
		report.TotalRaised = report.TotalRaised.Add(project.InvestedAmount)
	}

	return report, nil
}
