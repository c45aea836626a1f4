package httpx

import (
	"net/http"

	"github.com/qatalent/jobboard/internal/domain/model"
	"github.com/qatalent/jobboard/internal/service"
)

// ApplicationHandlers provides HTTP handlers for the application ledger.
type ApplicationHandlers struct {
	Ledger LedgerServiceInterface
}

// MyApplications lists the current user's applications with job summaries.
// GET /api/applications/my-applications.
func (h *ApplicationHandlers) MyApplications(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	apps, err := h.Ledger.ListForApplicant(r.Context(), user.ID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"applications": apps})
}

// Get serves one application visible to the current user (applicant or
// owning employer). GET /api/applications/{id}.
func (h *ApplicationHandlers) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	app, err := h.Ledger.GetByID(r.Context(), r.PathValue("id"), user.ID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, app)
}

// updateStatusRequest is the body for PATCH /api/applications/{id}/status.
type updateStatusRequest struct {
	Status model.ApplicationStatus `json:"status"`
}

// UpdateStatus moves an application through its review states on behalf of
// the owning employer. PATCH /api/applications/{id}/status.
func (h *ApplicationHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	var req updateStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	app, err := h.Ledger.UpdateStatus(r.Context(), service.UpdateStatusParams{
		ID:         r.PathValue("id"),
		EmployerID: user.ID,
		Status:     req.Status,
	})
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, app)
}
