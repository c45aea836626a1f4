package httpx

import (
	"net/http"

	"github.com/qatalent/jobboard/internal/domain/model"
)

// JobHandlers provides HTTP handlers for the public job catalog and the job
// seeker's application actions.
type JobHandlers struct {
	Catalog CatalogServiceInterface
	Ledger  LedgerServiceInterface
}

// List serves the public job listing.
// GET /api/jobs?page=&limit=&search=&location=&company=&salary_min=&salary_max=.
func (h *JobHandlers) List(w http.ResponseWriter, r *http.Request) {
	paging := ParsePaging(r)
	filters := ParseJobFilters(r)

	page, err := h.Catalog.List(r.Context(), filters, paging.Page, paging.Limit)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, page)
}

// Get serves a single posting with employer summary and application count.
// GET /api/jobs/{id}.
func (h *JobHandlers) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.Catalog.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// applyRequest is the body for POST /api/jobs/{id}/apply.
type applyRequest struct {
	CoverLetter *string `json:"cover_letter,omitempty"`
}

// Apply submits an application to a posting on behalf of the current job
// seeker. POST /api/jobs/{id}/apply.
func (h *JobHandlers) Apply(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	var req applyRequest
	if r.ContentLength != 0 && !DecodeJSON(w, r, &req) {
		return
	}

	app, err := h.Ledger.Submit(r.Context(), &model.SubmitApplicationParams{
		JobID:       r.PathValue("id"),
		ApplicantID: user.ID,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, app)
}

// ApplicationStatus reports whether the current user already applied.
// GET /api/jobs/{id}/application-status.
func (h *JobHandlers) ApplicationStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	applied, err := h.Ledger.HasApplied(r.Context(), r.PathValue("id"), user.ID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"applied": applied})
}
