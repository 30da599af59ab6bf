package httpapi

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/charityflow-backend/internal/domain"
	"github.com/simaogato/charityflow-backend/internal/usecase/report"
)

type createProjectRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	FullAmount  *decimal.Decimal `json:"full_amount"`
}

type updateProjectRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	FullAmount  *decimal.Decimal `json:"full_amount"`
}

type createDonationRequest struct {
	FullAmount *decimal.Decimal `json:"full_amount"`
	Comment    string           `json:"comment"`
}

type projectResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	FullAmount     decimal.Decimal `json:"full_amount"`
	InvestedAmount decimal.Decimal `json:"invested_amount"`
	FullyInvested  bool            `json:"fully_invested"`
	CreateDate     time.Time       `json:"create_date"`
	CloseDate      *time.Time      `json:"close_date,omitempty"`
}

// userDonationResponse is what a donor sees of their own donations
type userDonationResponse struct {
	ID         int64           `json:"id"`
	FullAmount decimal.Decimal `json:"full_amount"`
	Comment    string          `json:"comment,omitempty"`
	CreateDate time.Time       `json:"create_date"`
}

type adminDonationResponse struct {
	userDonationResponse
	UserID         uuid.UUID       `json:"user_id"`
	InvestedAmount decimal.Decimal `json:"invested_amount"`
	FullyInvested  bool            `json:"fully_invested"`
	CloseDate      *time.Time      `json:"close_date,omitempty"`
}

type projectCompletionResponse struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	FullAmount      decimal.Decimal `json:"full_amount"`
	CollectionTime  string          `json:"collection_time"`
	DurationSeconds float64         `json:"duration_seconds"`
}

type completionReportResponse struct {
	Projects    []projectCompletionResponse `json:"projects"`
	TotalRaised decimal.Decimal             `json:"total_raised"`
}

func toProjectResponse(p *domain.CharityProject) projectResponse {
	return projectResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		FullAmount:     p.FullAmount,
		InvestedAmount: p.InvestedAmount,
		FullyInvested:  p.FullyInvested,
		CreateDate:     p.CreateDate,
		CloseDate:      p.CloseDate,
	}
}

func toProjectResponses(projects []*domain.CharityProject) []projectResponse {
	out := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	return out
}

func toUserDonationResponse(d *domain.Donation) userDonationResponse {
	return userDonationResponse{
		ID:         d.ID,
		FullAmount: d.FullAmount,
		Comment:    d.Comment,
		CreateDate: d.CreateDate,
	}
}

func toUserDonationResponses(donations []*domain.Donation) []userDonationResponse {
	out := make([]userDonationResponse, 0, len(donations))
	for _, d := range donations {
		out = append(out, toUserDonationResponse(d))
	}
	return out
}

func toAdminDonationResponses(donations []*domain.Donation) []adminDonationResponse {
	out := make([]adminDonationResponse, 0, len(donations))
	for _, d := range donations {
		out = append(out, adminDonationResponse{
			userDonationResponse: toUserDonationResponse(d),
			UserID:               d.UserID,
			InvestedAmount:       d.InvestedAmount,
			FullyInvested:        d.FullyInvested,
			CloseDate:            d.CloseDate,
		})
	}
	return out
}

func toCompletionReportResponse(r *report.CompletionReport) completionReportResponse {
	out := completionReportResponse{
		Projects:    make([]projectCompletionResponse, 0, len(r.Projects)),
		TotalRaised: r.TotalRaised,
	}
	for _, c := range r.Projects {
		out.Projects = append(out.Projects, projectCompletionResponse{
			ID:              c.Project.ID,
			Name:            c.Project.Name,
			Description:     c.Project.Description,
			FullAmount:      c.Project.FullAmount,
			CollectionTime:  c.Duration.String(),
			DurationSeconds: c.Duration.Seconds(),
		})
	}
	return out
}
