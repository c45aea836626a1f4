package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qatalent/jobboard/internal/data"
	domainauth "github.com/qatalent/jobboard/internal/domain/auth"
	"github.com/qatalent/jobboard/internal/domain/model"
	"github.com/qatalent/jobboard/internal/service"
)

func employerRouter(t *testing.T, catalog *fakeCatalogService, ledger *fakeLedgerService) http.Handler {
	t.Helper()
	employer := testUser("emp-1", "sub-emp", domainauth.RoleEmployer)
	seeker := testUser("seeker-1", "sub-seeker", domainauth.RoleJobSeeker)
	auth, directory := sessionFixtures(employer, seeker)
	return NewRouter(RouterServices{Auth: auth, Directory: directory, Catalog: catalog, Ledger: ledger})
}

func TestEmployerRoutes_CreateJob(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalogService{
		CreateFunc: func(_ context.Context, employerID string, params *model.CreateJobParams) (*model.Job, error) {
			assert.Equal(t, "emp-1", employerID)
			return &model.Job{ID: "job-1", Title: params.Title, Status: model.JobStatusActive, EmployerID: employerID}, nil
		},
	}
	router := employerRouter(t, catalog, &fakeLedgerService{})

	body := strings.NewReader(`{
		"title": "Backend Engineer",
		"description": "Build things.",
		"location": "Doha, Qatar",
		"company": "Qatar Cloud",
		"salary_min": 10000,
		"salary_max": 17000
	}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/employer/jobs", body), "sub-emp")
	rec := doRequest(router, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ACTIVE"`)
}

func TestEmployerRoutes_CreateJobValidation(t *testing.T) {
	t.Parallel()

	router := employerRouter(t, &fakeCatalogService{}, &fakeLedgerService{})

	body := strings.NewReader(`{"title": "Backend Engineer"}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/employer/jobs", body), "sub-emp")
	rec := doRequest(router, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_job")
}

func TestEmployerRoutes_CreateJobSalaryOrdering(t *testing.T) {
	t.Parallel()

	router := employerRouter(t, &fakeCatalogService{}, &fakeLedgerService{})

	body := strings.NewReader(`{
		"title": "Backend Engineer",
		"description": "Build things.",
		"location": "Doha, Qatar",
		"company": "Qatar Cloud",
		"salary_min": 20000,
		"salary_max": 10000
	}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/employer/jobs", body), "sub-emp")
	rec := doRequest(router, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEmployerRoutes_CreateJobRoleGate(t *testing.T) {
	t.Parallel()

	router := employerRouter(t, &fakeCatalogService{}, &fakeLedgerService{})

	body := strings.NewReader(`{}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/employer/jobs", body), "sub-seeker")
	rec := doRequest(router, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestEmployerRoutes_UpdateJobNotOwner(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalogService{
		UpdateFunc: func(_ context.Context, _, _ string, _ model.UpdateJobParams) (*model.Job, error) {
			return nil, data.ErrJobNotFound
		},
	}
	router := employerRouter(t, catalog, &fakeLedgerService{})

	body := strings.NewReader(`{"title": "New Title"}`)
	req := withSession(httptest.NewRequest(http.MethodPatch, "/api/employer/jobs/job-1", body), "sub-emp")
	rec := doRequest(router, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "job_not_found")
}

func TestEmployerRoutes_DeleteJob(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalogService{
		DeleteFunc: func(_ context.Context, id, employerID string) (bool, error) {
			return id == "job-1" && employerID == "emp-1", nil
		},
	}
	router := employerRouter(t, catalog, &fakeLedgerService{})

	req := withSession(httptest.NewRequest(http.MethodDelete, "/api/employer/jobs/job-1", nil), "sub-emp")
	rec := doRequest(router, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req = withSession(httptest.NewRequest(http.MethodDelete, "/api/employer/jobs/other-job", nil), "sub-emp")
	rec = doRequest(router, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEmployerRoutes_ListJobApplicationsNonOwnerEmpty(t *testing.T) {
	t.Parallel()

	ledger := &fakeLedgerService{
		ListForJobFunc: func(_ context.Context, _, employerID string) ([]*model.ApplicationWithDetails, error) {
			if employerID != "the-owner" {
				return []*model.ApplicationWithDetails{}, nil
			}
			return []*model.ApplicationWithDetails{{Application: model.Application{ID: "app-1"}}}, nil
		},
	}
	router := employerRouter(t, &fakeCatalogService{}, ledger)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/employer/jobs/job-1/applications", nil), "sub-emp")
	rec := doRequest(router, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"applications":[]}`, rec.Body.String())
}

func TestEmployerRoutes_UpdateApplicationStatus(t *testing.T) {
	t.Parallel()

	ledger := &fakeLedgerService{
		UpdateStatusFunc: func(_ context.Context, params service.UpdateStatusParams) (*model.Application, error) {
			assert.Equal(t, "app-1", params.ID)
			assert.Equal(t, "emp-1", params.EmployerID)
			require.Equal(t, model.ApplicationStatusReviewed, params.Status)
			return &model.Application{ID: params.ID, Status: params.Status}, nil
		},
	}
	router := employerRouter(t, &fakeCatalogService{}, ledger)

	body := strings.NewReader(`{"status":"REVIEWED"}`)
	req := withSession(httptest.NewRequest(http.MethodPatch, "/api/applications/app-1/status", body), "sub-emp")
	rec := doRequest(router, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"REVIEWED"`)
}

func TestEmployerRoutes_UpdateApplicationStatusErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"invalid status", service.ErrInvalidStatus, http.StatusBadRequest, "invalid_status"},
		{"illegal transition", service.ErrIllegalTransition, http.StatusBadRequest, "illegal_transition"},
		{"not owner", data.ErrApplicationNotFound, http.StatusNotFound, "application_not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ledger := &fakeLedgerService{
				UpdateStatusFunc: func(_ context.Context, _ service.UpdateStatusParams) (*model.Application, error) {
					return nil, tt.err
				},
			}
			router := employerRouter(t, &fakeCatalogService{}, ledger)

			body := strings.NewReader(`{"status":"REVIEWED"}`)
			req := withSession(httptest.NewRequest(http.MethodPatch, "/api/applications/app-1/status", body), "sub-emp")
			rec := doRequest(router, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestEmployerRoutes_Stats(t *testing.T) {
	t.Parallel()

	ledger := &fakeLedgerService{
		StatsForEmployerFunc: func(_ context.Context, employerID string) (*model.ApplicationStats, error) {
			assert.Equal(t, "emp-1", employerID)
			return &model.ApplicationStats{Total: 5, Pending: 2, Reviewed: 1, Accepted: 1, Rejected: 1}, nil
		},
	}
	router := employerRouter(t, &fakeCatalogService{}, ledger)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/employer/stats", nil), "sub-emp")
	rec := doRequest(router, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":5`)
}
