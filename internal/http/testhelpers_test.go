package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	domainauth "github.com/qatalent/jobboard/internal/domain/auth"
	"github.com/qatalent/jobboard/internal/data"
	"github.com/qatalent/jobboard/internal/domain/model"
	"github.com/qatalent/jobboard/internal/service"
)

// Fake services with per-test function fields.

var errFakeNotConfigured = errors.New("fake method not configured")

type fakeAuthService struct {
	BeginLoginFunc    func(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error)
	CompleteLoginFunc func(ctx context.Context, input service.CompleteLoginInput) (*service.CompleteLoginResult, error)
	GetSessionFunc    func(ctx context.Context, sessionID string) (*domainauth.Session, error)
	LogoutFunc        func(ctx context.Context, sessionID string) error
}

var _ AuthServiceInterface = (*fakeAuthService)(nil)

func (f *fakeAuthService) BeginLogin(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error) {
	if f.BeginLoginFunc == nil {
		return nil, errFakeNotConfigured
	}
	return f.BeginLoginFunc(ctx, redirectURL)
}

func (f *fakeAuthService) CompleteLogin(ctx context.Context, input service.CompleteLoginInput) (*service.CompleteLoginResult, error) {
	if f.CompleteLoginFunc == nil {
		return nil, errFakeNotConfigured
	}
	return f.CompleteLoginFunc(ctx, input)
}

func (f *fakeAuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if f.GetSessionFunc == nil {
		return nil, errFakeNotConfigured
	}
	return f.GetSessionFunc(ctx, sessionID)
}

func (f *fakeAuthService) Logout(ctx context.Context, sessionID string) error {
	if f.LogoutFunc == nil {
		return errFakeNotConfigured
	}
	return f.LogoutFunc(ctx, sessionID)
}

type fakeDirectoryService struct {
	ResolveFunc             func(ctx context.Context, authSubjectID string) (*model.User, error)
	ProvisionFunc           func(ctx context.Context, params *model.ProvisionUserParams) (*model.User, error)
	GetMeFunc               func(ctx context.Context, userID string) (*model.UserWithProfiles, error)
	SetJobSeekerProfileFunc func(ctx context.Context, userID string, params *model.JobSeekerProfileParams) (*model.JobSeekerProfile, error)
	SetEmployerProfileFunc  func(ctx context.Context, userID string, params *model.EmployerProfileParams) (*model.EmployerProfile, error)
	StatsFunc               func(ctx context.Context) (*model.UserStats, error)
}

var _ DirectoryServiceInterface = (*fakeDirectoryService)(nil)

func (f *fakeDirectoryService) Resolve(ctx context.Context, authSubjectID string) (*model.User, error) {
	if f.ResolveFunc == nil {
		return nil, errFakeNotConfigured
	}
	return f.ResolveFunc(ctx, authSubjectID)
}

func (f *fakeDirectoryService) Provision(ctx context.Context, params *model.ProvisionUserParams) (*model.User, error) {
	if f.ProvisionFunc == nil {
		return nil, errFakeNotConfigured
	}
	return f.ProvisionFunc(ctx, params)
}

func (f *fakeDirectoryService) GetMe(ctx context.Context, userID string) (*model.UserWithProfiles, error) {
	if f.GetMeFunc == nil {
		return nil, errFakeNotConfigured
	}
	return f.GetMeFunc(ctx, userID)
}

func (f *fakeDirectoryService) SetJobSeekerProfile(ctx context.Context, userID string, params *model.JobSeekerProfileParams) (*model.JobSeekerProfile, error) {
	if f.SetJobSeekerProfileFunc == nil {
		return nil, errFakeNotConfigured
	}
	return f.SetJobSeekerProfileFunc(ctx, userID, params)
}

func (f *fakeDirectoryService) SetEmployerProfile(ctx context.Context, userID string, params *model.EmployerProfileParams) (*model.EmployerProfile, error) {
	if f.SetEmployerProfileFunc == nil {
		return nil, errFakeNotConfigured
	}
	return f.SetEmployerProfileFunc(ctx, userID, params)
}

func (f *fakeDirectoryService) Stats(ctx context.Context) (*model.UserStats, error) {
	if f.StatsFunc == nil {
		return nil, errFakeNotConfigured
	}
	return f.StatsFunc(ctx)
}

type fakeCatalogService struct {
	ListFunc           func(ctx context.Context, filters model.JobFilters, page, pageSize int) (*model.JobPage, error)
	GetByIDFunc        func(ctx context.Context, id string) (*model.JobWithEmployer, error)
	ListByEmployerFunc func(ctx context.Context, employerID string, page, pageSize int) (*model.JobPage, error)
	CreateFunc         func(ctx context.Context, employerID string, params *model.CreateJobParams) (*model.Job, error)
	UpdateFunc         func(ctx context.Context, jobID, employerID string, params model.UpdateJobParams) (*model.Job, error)
	DeleteFunc         func(ctx context.Context, jobID, employerID string) (bool, error)
}

var _ CatalogServiceInterface = (*fakeCatalogService)(nil)

func (f *fakeCatalogService) List(ctx context.Context, filters model.JobFilters, page, pageSize int) (*model.JobPage, error) {
	if f.ListFunc == nil {
		return nil, errFakeNotConfigured
	}
	return f.ListFunc(ctx, filters, page, pageSize)
}

func (f *fakeCatalogService) GetByID(ctx context.Context, id string) (*model.JobWithEmployer, error) {
	if f.GetByIDFunc == nil {
		return nil, errFakeNotConfigured
	}
	return f.GetByIDFunc(ctx, id)
}

func (f *fakeCatalogService) ListByEmployer(ctx context.Context, employerID string, page, pageSize int) (*model.JobPage, error) {
	if f.ListByEmployerFunc == nil {
		return nil, errFakeNotConfigured
	}
	return f.ListByEmployerFunc(ctx, employerID, page, pageSize)
}

func (f *fakeCatalogService) Create(ctx context.Context, employerID string, params *model.CreateJobParams) (*model.Job, error) {
	if f.CreateFunc == nil {
		return nil, errFakeNotConfigured
	}
	return f.CreateFunc(ctx, employerID, params)
}

func (f *fakeCatalogService) Update(ctx context.Context, jobID, employerID string, params model.UpdateJobParams) (*model.Job, error) {
	if f.UpdateFunc == nil {
		return nil, errFakeNotConfigured
	}
	return f.UpdateFunc(ctx, jobID, employerID, params)
}

func (f *fakeCatalogService) Delete(ctx context.Context, jobID, employerID string) (bool, error) {
	if f.DeleteFunc == nil {
		return false, errFakeNotConfigured
	}
	return f.DeleteFunc(ctx, jobID, employerID)
}

type fakeLedgerService struct {
	SubmitFunc           func(ctx context.Context, params *model.SubmitApplicationParams) (*model.Application, error)
	HasAppliedFunc       func(ctx context.Context, jobID, applicantID string) (bool, error)
	ListForJobFunc       func(ctx context.Context, jobID, employerID string) ([]*model.ApplicationWithDetails, error)
	ListForApplicantFunc func(ctx context.Context, applicantID string) ([]*model.ApplicationWithDetails, error)
	GetByIDFunc          func(ctx context.Context, id, requestingUserID string) (*model.Application, error)
	UpdateStatusFunc     func(ctx context.Context, params service.UpdateStatusParams) (*model.Application, error)
	StatsForEmployerFunc func(ctx context.Context, employerID string) (*model.ApplicationStats, error)
}

var _ LedgerServiceInterface = (*fakeLedgerService)(nil)

func (f *fakeLedgerService) Submit(ctx context.Context, params *model.SubmitApplicationParams) (*model.Application, error) {
	if f.SubmitFunc == nil {
		return nil, errFakeNotConfigured
	}
	return f.SubmitFunc(ctx, params)
}

func (f *fakeLedgerService) HasApplied(ctx context.Context, jobID, applicantID string) (bool, error) {
	if f.HasAppliedFunc == nil {
		return false, errFakeNotConfigured
	}
	return f.HasAppliedFunc(ctx, jobID, applicantID)
}

func (f *fakeLedgerService) ListForJob(ctx context.Context, jobID, employerID string) ([]*model.ApplicationWithDetails, error) {
	if f.ListForJobFunc == nil {
		return nil, errFakeNotConfigured
	}
	return f.ListForJobFunc(ctx, jobID, employerID)
}

func (f *fakeLedgerService) ListForApplicant(ctx context.Context, applicantID string) ([]*model.ApplicationWithDetails, error) {
	if f.ListForApplicantFunc == nil {
		return nil, errFakeNotConfigured
	}
	return f.ListForApplicantFunc(ctx, applicantID)
}

func (f *fakeLedgerService) GetByID(ctx context.Context, id, requestingUserID string) (*model.Application, error) {
	if f.GetByIDFunc == nil {
		return nil, errFakeNotConfigured
	}
	return f.GetByIDFunc(ctx, id, requestingUserID)
}

func (f *fakeLedgerService) UpdateStatus(ctx context.Context, params service.UpdateStatusParams) (*model.Application, error) {
	if f.UpdateStatusFunc == nil {
		return nil, errFakeNotConfigured
	}
	return f.UpdateStatusFunc(ctx, params)
}

func (f *fakeLedgerService) StatsForEmployer(ctx context.Context, employerID string) (*model.ApplicationStats, error) {
	if f.StatsForEmployerFunc == nil {
		return nil, errFakeNotConfigured
	}
	return f.StatsForEmployerFunc(ctx, employerID)
}

// sessionFixtures wires a fakeAuthService and fakeDirectoryService so that a
// request carrying the cookie "session_id=<subject>" authenticates as the
// given user.
func sessionFixtures(users ...*model.User) (*fakeAuthService, *fakeDirectoryService) {
	bySubject := make(map[string]*model.User, len(users))
	for _, u := range users {
		bySubject[u.AuthSubjectID] = u
	}

	auth := &fakeAuthService{
		GetSessionFunc: func(_ context.Context, sessionID string) (*domainauth.Session, error) {
			u, ok := bySubject[sessionID]
			if !ok {
				return nil, errors.New("session not found")
			}
			return &domainauth.Session{
				ID:        sessionID,
				SubjectID: u.AuthSubjectID,
				Name:      u.Name,
				Email:     u.Email,
				Role:      u.Role,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
	}
	directory := &fakeDirectoryService{
		ResolveFunc: func(_ context.Context, authSubjectID string) (*model.User, error) {
			u, ok := bySubject[authSubjectID]
			if !ok {
				return nil, data.ErrUserNotFound
			}
			return u, nil
		},
	}
	return auth, directory
}

func withSession(req *http.Request, subject string) *http.Request {
	req.AddCookie(&http.Cookie{Name: "session_id", Value: subject})
	return req
}

func testUser(id, subject string, role domainauth.Role) *model.User {
	return &model.User{
		ID:            id,
		AuthSubjectID: subject,
		Email:         subject + "@example.com",
		Name:          "User " + id,
		Role:          role,
	}
}

func doRequest(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}
