package httpapi

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/simaogato/charityflow-backend/internal/auth"
	"github.com/simaogato/charityflow-backend/internal/domain"
	"github.com/simaogato/charityflow-backend/internal/usecase/donation"
	"github.com/simaogato/charityflow-backend/internal/usecase/project"
)

func checkPositiveAmount(amount *decimal.Decimal, required bool) error {
	if amount == nil {
		if required {
			return fmt.Errorf("%w: full_amount is required", domain.ErrInvalidInput)
		}
		return nil
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: full_amount must be greater than zero", domain.ErrInvalidInput)
	}
	if !amount.IsInteger() {
		return fmt.Errorf("%w: full_amount must be a whole number", domain.ErrInvalidInput)
	}
	return nil
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := checkPositiveAmount(req.FullAmount, true); err != nil {
		h.writeError(w, r, err)
		return
	}

	created, err := h.projects.Create(r.Context(), project.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		FullAmount:  *req.FullAmount,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(created))
}

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponses(projects))
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	p, err := h.projects.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req updateProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := checkPositiveAmount(req.FullAmount, false); err != nil {
		h.writeError(w, r, err)
		return
	}

	updated, err := h.projects.Update(r.Context(), id, project.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		FullAmount:  req.FullAmount,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponse(updated))
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	deleted, err := h.projects.Delete(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponse(deleted))
}

func (h *Handler) createDonation(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.RequireUser(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req createDonationRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := checkPositiveAmount(req.FullAmount, true); err != nil {
		h.writeError(w, r, err)
		return
	}

	created, err := h.donations.Donate(r.Context(), principal.UserID, donation.MakeDonationInput{
		FullAmount: *req.FullAmount,
		Comment:    req.Comment,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserDonationResponse(created))
}

func (h *Handler) listDonations(w http.ResponseWriter, r *http.Request) {
	donations, err := h.donations.ListAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAdminDonationResponses(donations))
}

func (h *Handler) myDonations(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.RequireUser(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	donations, err := h.donations.ListByUser(r.Context(), principal.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserDonationResponses(donations))
}

func (h *Handler) completionReport(w http.ResponseWriter, r *http.Request) {
	rep, err := h.reports.CompletionRate(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCompletionReportResponse(rep))
}
