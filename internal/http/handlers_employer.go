package httpx

import (
	"net/http"

	"github.com/qatalent/jobboard/internal/data"
	"github.com/qatalent/jobboard/internal/domain/model"
)

// EmployerHandlers provides HTTP handlers for the employer dashboard surface.
type EmployerHandlers struct {
	Catalog CatalogServiceInterface
	Ledger  LedgerServiceInterface
}

// ListJobs lists the employer's own postings across all statuses.
// GET /api/employer/jobs.
func (h *EmployerHandlers) ListJobs(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	paging := ParsePaging(r)
	page, err := h.Catalog.ListByEmployer(r.Context(), user.ID, paging.Page, paging.Limit)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, page)
}

// CreateJob publishes a new posting.
// POST /api/employer/jobs.
func (h *EmployerHandlers) CreateJob(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	var params model.CreateJobParams
	if !DecodeJSON(w, r, &params) {
		return
	}
	if err := params.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_job", Err: err})
		return
	}

	job, err := h.Catalog.Create(r.Context(), user.ID, &params)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, job)
}

// UpdateJob applies a partial update to the employer's own posting.
// PATCH /api/employer/jobs/{id}. A posting owned by someone else is a 404.
func (h *EmployerHandlers) UpdateJob(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	var params model.UpdateJobParams
	if !DecodeJSON(w, r, &params) {
		return
	}
	if err := params.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_job", Err: err})
		return
	}

	job, err := h.Catalog.Update(r.Context(), r.PathValue("id"), user.ID, params)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// DeleteJob removes the employer's own posting.
// DELETE /api/employer/jobs/{id}.
func (h *EmployerHandlers) DeleteJob(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	deleted, err := h.Catalog.Delete(r.Context(), r.PathValue("id"), user.ID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	if !deleted {
		WriteDomainError(w, data.ErrJobNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListJobApplications lists applications for one of the employer's postings.
// GET /api/employer/jobs/{id}/applications. A posting the employer does not
// own yields an empty list.
func (h *EmployerHandlers) ListJobApplications(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	apps, err := h.Ledger.ListForJob(r.Context(), r.PathValue("id"), user.ID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"applications": apps})
}

// Stats serves the employer's application counts by status.
// GET /api/employer/stats.
func (h *EmployerHandlers) Stats(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	stats, err := h.Ledger.StatsForEmployer(r.Context(), user.ID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}
