package httpx

import (
	"context"

	domainauth "github.com/qatalent/jobboard/internal/domain/auth"
	"github.com/qatalent/jobboard/internal/domain/model"
	"github.com/qatalent/jobboard/internal/service"
)

// Service interfaces consumed by the handlers. Declared here so handler tests
// can substitute lightweight fakes.

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	BeginLogin(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error)
	CompleteLogin(ctx context.Context, input service.CompleteLoginInput) (*service.CompleteLoginResult, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// DirectoryServiceInterface defines the interface for user directory operations.
type DirectoryServiceInterface interface {
	Resolve(ctx context.Context, authSubjectID string) (*model.User, error)
	Provision(ctx context.Context, params *model.ProvisionUserParams) (*model.User, error)
	GetMe(ctx context.Context, userID string) (*model.UserWithProfiles, error)
	SetJobSeekerProfile(ctx context.Context, userID string, params *model.JobSeekerProfileParams) (*model.JobSeekerProfile, error)
	SetEmployerProfile(ctx context.Context, userID string, params *model.EmployerProfileParams) (*model.EmployerProfile, error)
	Stats(ctx context.Context) (*model.UserStats, error)
}

// CatalogServiceInterface defines the interface for job catalog operations.
type CatalogServiceInterface interface {
	List(ctx context.Context, filters model.JobFilters, page, pageSize int) (*model.JobPage, error)
	GetByID(ctx context.Context, id string) (*model.JobWithEmployer, error)
	ListByEmployer(ctx context.Context, employerID string, page, pageSize int) (*model.JobPage, error)
	Create(ctx context.Context, employerID string, params *model.CreateJobParams) (*model.Job, error)
	Update(ctx context.Context, jobID, employerID string, params model.UpdateJobParams) (*model.Job, error)
	Delete(ctx context.Context, jobID, employerID string) (bool, error)
}

// LedgerServiceInterface defines the interface for application ledger operations.
type LedgerServiceInterface interface {
	Submit(ctx context.Context, params *model.SubmitApplicationParams) (*model.Application, error)
	HasApplied(ctx context.Context, jobID, applicantID string) (bool, error)
	ListForJob(ctx context.Context, jobID, employerID string) ([]*model.ApplicationWithDetails, error)
	ListForApplicant(ctx context.Context, applicantID string) ([]*model.ApplicationWithDetails, error)
	GetByID(ctx context.Context, id, requestingUserID string) (*model.Application, error)
	UpdateStatus(ctx context.Context, params service.UpdateStatusParams) (*model.Application, error)
	StatsForEmployer(ctx context.Context, employerID string) (*model.ApplicationStats, error)
}
