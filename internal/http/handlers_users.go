package httpx

import (
	"errors"
	"net/http"

	domainauth "github.com/qatalent/jobboard/internal/domain/auth"
	"github.com/qatalent/jobboard/internal/domain/model"
)

// UserHandlers provides HTTP handlers for the user directory surface.
type UserHandlers struct {
	Directory DirectoryServiceInterface
}

// currentUserResponse is the shape served by GET /api/auth/user.
type currentUserResponse struct {
	*model.UserWithProfiles
	HasCompletedProfile bool `json:"has_completed_profile"`
}

// CurrentUser returns the provisioned user for the current session.
// GET /api/auth/user. 404 means the subject was never provisioned; the client
// should POST /api/auth/user to create the account.
func (h *UserHandlers) CurrentUser(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	user, err := h.Directory.Resolve(r.Context(), session.SubjectID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	me, err := h.Directory.GetMe(r.Context(), user.ID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, currentUserResponse{
		UserWithProfiles:    me,
		HasCompletedProfile: me.HasCompletedProfile(),
	})
}

// provisionRequest is the body for POST /api/auth/user.
type provisionRequest struct {
	Role domainauth.Role `json:"role"`
}

// ProvisionUser creates the internal account for the session's subject.
// POST /api/auth/user. The requested role defaults to the session role; a
// non-admin session cannot provision an ADMIN account.
func (h *UserHandlers) ProvisionUser(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	var req provisionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	role := req.Role
	if role == "" {
		role = session.Role
	}
	if !role.Valid() {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_role",
			Err:     errors.New("role must be one of JOBSEEKER, EMPLOYER, ADMIN"),
		})
		return
	}
	if role == domainauth.RoleAdmin && session.Role != domainauth.RoleAdmin {
		WriteError(w, ErrorParams{
			Code:    http.StatusForbidden,
			ErrCode: "insufficient_permissions",
			Err:     errors.New("only admin sessions may provision admin accounts"),
		})
		return
	}

	params := &model.ProvisionUserParams{
		AuthSubjectID: session.SubjectID,
		Email:         session.Email,
		Name:          session.Name,
		Role:          role,
	}
	if session.ImageURL != "" {
		params.ImageURL = &session.ImageURL
	}

	user, err := h.Directory.Provision(r.Context(), params)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, user)
}

// SetJobSeekerProfile upserts the current user's job seeker profile.
// POST /api/profile/job-seeker.
func (h *UserHandlers) SetJobSeekerProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	var params model.JobSeekerProfileParams
	if !DecodeJSON(w, r, &params) {
		return
	}

	profile, err := h.Directory.SetJobSeekerProfile(r.Context(), user.ID, &params)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, profile)
}

// SetEmployerProfile upserts the current user's employer profile.
// POST /api/profile/employer.
func (h *UserHandlers) SetEmployerProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	var params model.EmployerProfileParams
	if !DecodeJSON(w, r, &params) {
		return
	}
	if err := params.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_profile", Err: err})
		return
	}

	profile, err := h.Directory.SetEmployerProfile(r.Context(), user.ID, &params)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, profile)
}

// AdminStats serves account counts by role.
// GET /api/admin/stats.
func (h *UserHandlers) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Directory.Stats(r.Context())
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}
