// Package httpapi exposes the ledger over a JSON HTTP API.
package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/simaogato/charityflow-backend/internal/auth"
	"github.com/simaogato/charityflow-backend/internal/domain"
	"github.com/simaogato/charityflow-backend/internal/metrics"
	"github.com/simaogato/charityflow-backend/internal/usecase/donation"
	"github.com/simaogato/charityflow-backend/internal/usecase/project"
	"github.com/simaogato/charityflow-backend/internal/usecase/report"
)

// ProjectService is the project use case consumed by the handlers
type ProjectService interface {
	Create(ctx context.Context, input project.CreateProjectInput) (*domain.CharityProject, error)
	Get(ctx context.Context, id int64) (*domain.CharityProject, error)
	List(ctx context.Context) ([]*domain.CharityProject, error)
	Update(ctx context.Context, id int64, input project.UpdateProjectInput) (*domain.CharityProject, error)
	Delete(ctx context.Context, id int64) (*domain.CharityProject, error)
}

// DonationService is the donation use case consumed by the handlers
type DonationService interface {
	Donate(ctx context.Context, userID uuid.UUID, input donation.MakeDonationInput) (*domain.Donation, error)
	ListAll(ctx context.Context) ([]*domain.Donation, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Donation, error)
}

// ReportService is the reporting use case consumed by the handlers
type ReportService interface {
	CompletionRate(ctx context.Context) (*report.CompletionReport, error)
}

// Handler serves the HTTP API
type Handler struct {
	projects  ProjectService
	donations DonationService
	reports   ReportService
	auth      *auth.Authenticator
	logger    zerolog.Logger
}

// NewHandler creates a new Handler
func NewHandler(
	projects ProjectService,
	donations DonationService,
	reports ReportService,
	authenticator *auth.Authenticator,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		projects:  projects,
		donations: donations,
		reports:   reports,
		auth:      authenticator,
		logger:    logger,
	}
}

// Router builds the chi router with every route and middleware
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.RealIP, requestLogger(h.logger), chimw.Recoverer, metrics.InstrumentHandler)

	r.Get("/healthz", h.health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(h.authenticate)

		r.Route("/charity_project", func(r chi.Router) {
			r.Get("/", h.listProjects)
			r.Get("/{id}", h.getProject)
			r.With(requireSuperuser).Post("/", h.createProject)
			r.With(requireSuperuser).Patch("/{id}", h.updateProject)
			r.With(requireSuperuser).Delete("/{id}", h.deleteProject)
		})

		r.Route("/donation", func(r chi.Router) {
			r.With(requireUser).Post("/", h.createDonation)
			r.With(requireUser).Get("/my", h.myDonations)
			r.With(requireSuperuser).Get("/", h.listDonations)
		})

		r.Get("/reports/completion", h.completionReport)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
