package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	charityv1 "github.com/simaogato/charityflow-backend/internal/adapter/grpc/charity/v1"
	"github.com/simaogato/charityflow-backend/internal/auth"
	"github.com/simaogato/charityflow-backend/internal/domain"
	"github.com/simaogato/charityflow-backend/internal/usecase/donation"
	"github.com/simaogato/charityflow-backend/internal/usecase/project"
	"github.com/simaogato/charityflow-backend/internal/usecase/report"
)

// Server implements the CharityService gRPC server
type Server struct {
	charityv1.UnimplementedCharityServiceServer

	ProjectService  *project.ProjectService
	DonationService *donation.DonationService
	ReportService   *report.ReportService
}

// NewServer creates a new gRPC server instance
func NewServer(
	projectService *project.ProjectService,
	donationService *donation.DonationService,
	reportService *report.ReportService,
) *Server {
	return &Server{
		ProjectService:  projectService,
		DonationService: donationService,
		ReportService:   reportService,
	}
}

// CreateProject handles the CreateProject RPC
func (s *Server) CreateProject(ctx context.Context, req *charityv1.CreateProjectRequest) (*charityv1.Project, error) {
	if _, err := auth.RequireSuperuser(ctx); err != nil {
		return nil, mapError(err)
	}

	amount, err := parsePositiveAmount(req.FullAmount)
	if err != nil {
		return nil, err
	}

	p, err := s.ProjectService.Create(ctx, project.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		FullAmount:  amount,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return domainProjectToMessage(p), nil
}

// GetProject handles the GetProject RPC
func (s *Server) GetProject(ctx context.Context, req *charityv1.GetProjectRequest) (*charityv1.Project, error) {
	p, err := s.ProjectService.Get(ctx, req.Id)
	if err != nil {
		return nil, mapError(err)
	}
	return domainProjectToMessage(p), nil
}

// ListProjects handles the ListProjects RPC
func (s *Server) ListProjects(ctx context.Context, _ *charityv1.ListProjectsRequest) (*charityv1.ListProjectsResponse, error) {
	projects, err := s.ProjectService.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &charityv1.ListProjectsResponse{Projects: make([]*charityv1.Project, 0, len(projects))}
	for _, p := range projects {
		resp.Projects = append(resp.Projects, domainProjectToMessage(p))
	}
	return resp, nil
}

// UpdateProject handles the UpdateProject RPC
func (s *Server) UpdateProject(ctx context.Context, req *charityv1.UpdateProjectRequest) (*charityv1.Project, error) {
	if _, err := auth.RequireSuperuser(ctx); err != nil {
		return nil, mapError(err)
	}

	input := project.UpdateProjectInput{
		Name:        optionalString(req.Name),
		Description: optionalString(req.Description),
	}
	if req.FullAmount != nil {
		amount, err := parsePositiveAmount(req.FullAmount.GetValue())
		if err != nil {
			return nil, err
		}
		input.FullAmount = &amount
	}

	p, err := s.ProjectService.Update(ctx, req.Id, input)
	if err != nil {
		return nil, mapError(err)
	}
	return domainProjectToMessage(p), nil
}

// DeleteProject handles the DeleteProject RPC
func (s *Server) DeleteProject(ctx context.Context, req *charityv1.DeleteProjectRequest) (*charityv1.Project, error) {
	if _, err := auth.RequireSuperuser(ctx); err != nil {
		return nil, mapError(err)
	}

	p, err := s.ProjectService.Delete(ctx, req.Id)
	if err != nil {
		return nil, mapError(err)
	}
	return domainProjectToMessage(p), nil
}

// CreateDonation handles the CreateDonation RPC
func (s *Server) CreateDonation(ctx context.Context, req *charityv1.CreateDonationRequest) (*charityv1.Donation, error) {
	principal, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	amount, err := parsePositiveAmount(req.FullAmount)
	if err != nil {
		return nil, err
	}

	d, err := s.DonationService.Donate(ctx, principal.UserID, donation.MakeDonationInput{
		FullAmount: amount,
		Comment:    req.Comment,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return domainDonationToMessage(d, false), nil
}

// ListDonations handles the ListDonations RPC
func (s *Server) ListDonations(ctx context.Context, _ *charityv1.ListDonationsRequest) (*charityv1.ListDonationsResponse, error) {
	if _, err := auth.RequireSuperuser(ctx); err != nil {
		return nil, mapError(err)
	}

	donations, err := s.DonationService.ListAll(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return donationsToMessage(donations, true), nil
}

// ListMyDonations handles the ListMyDonations RPC
func (s *Server) ListMyDonations(ctx context.Context, _ *charityv1.ListMyDonationsRequest) (*charityv1.ListDonationsResponse, error) {
	principal, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	donations, err := s.DonationService.ListByUser(ctx, principal.UserID)
	if err != nil {
		return nil, mapError(err)
	}
	return donationsToMessage(donations, false), nil
}

// GetCompletionReport handles the GetCompletionReport RPC
func (s *Server) GetCompletionReport(ctx context.Context, _ *charityv1.CompletionReportRequest) (*charityv1.CompletionReportResponse, error) {
	rep, err := s.ReportService.CompletionRate(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &charityv1.CompletionReportResponse{
		Projects:    make([]*charityv1.ProjectCompletion, 0, len(rep.Projects)),
		TotalRaised: rep.TotalRaised.String(),
	}
	for _, c := range rep.Projects {
		resp.Projects = append(resp.Projects, &charityv1.ProjectCompletion{
			Project:         domainProjectToMessage(c.Project),
			DurationSeconds: c.Duration.Seconds(),
		})
	}
	return resp, nil
}

// parsePositiveAmount parses a whole number string that must be greater than zero
func parsePositiveAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, status.Errorf(codes.InvalidArgument, "invalid amount format: %v", err)
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, status.Error(codes.InvalidArgument, "full_amount must be greater than zero")
	}
	if !amount.IsInteger() {
		return decimal.Decimal{}, status.Error(codes.InvalidArgument, "full_amount must be a whole number")
	}
	return amount, nil
}

// optionalString unwraps a field the caller may have left unset
func optionalString(v *wrapperspb.StringValue) *string {
	if v == nil {
		return nil
	}
	value := v.GetValue()
	return &value
}

// optionalTimestamp converts a close date that is nil while still open
func optionalTimestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

// domainProjectToMessage converts a domain CharityProject to its wire message
func domainProjectToMessage(p *domain.CharityProject) *charityv1.Project {
	return &charityv1.Project{
		Id:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		FullAmount:     p.FullAmount.String(),
		InvestedAmount: p.InvestedAmount.String(),
		FullyInvested:  p.FullyInvested,
		CreateDate:     timestamppb.New(p.CreateDate),
		CloseDate:      optionalTimestamp(p.CloseDate),
	}
}

// domainDonationToMessage converts a domain Donation; admin views include the internals
func domainDonationToMessage(d *domain.Donation, admin bool) *charityv1.Donation {
	msg := &charityv1.Donation{
		Id:         d.ID,
		FullAmount: d.FullAmount.String(),
		Comment:    d.Comment,
		CreateDate: timestamppb.New(d.CreateDate),
	}
	if admin {
		msg.UserId = d.UserID.String()
		msg.InvestedAmount = d.InvestedAmount.String()
		msg.FullyInvested = wrapperspb.Bool(d.FullyInvested)
		msg.CloseDate = optionalTimestamp(d.CloseDate)
	}
	return msg
}

func donationsToMessage(donations []*domain.Donation, admin bool) *charityv1.ListDonationsResponse {
	resp := &charityv1.ListDonationsResponse{Donations: make([]*charityv1.Donation, 0, len(donations))}
	for _, d := range donations {
		resp.Donations = append(resp.Donations, domainDonationToMessage(d, admin))
	}
	return resp
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return status.Errorf(codes.InvalidArgument, "%s", err)
	case errors.Is(err, domain.ErrDuplicateName):
		return status.Errorf(codes.AlreadyExists, "%s", err)
	case domain.IsConflict(err):
		return status.Errorf(codes.FailedPrecondition, "%s", err)
	case errors.Is(err, domain.ErrNotFound):
		return status.Errorf(codes.NotFound, "%s", err)
	case errors.Is(err, domain.ErrUnauthorized):
		return status.Errorf(codes.Unauthenticated, "%s", err)
	case errors.Is(err, domain.ErrForbidden):
		return status.Errorf(codes.PermissionDenied, "%s", err)
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

var _ charityv1.CharityServiceServer = (*Server)(nil)
