package core

import (
	"context"

	"github.com/qatalent/jobboard/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// UserRepository defines the interface for user and profile data operations.
type UserRepository interface {
	Create(ctx context.Context, params *model.ProvisionUserParams) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByAuthSubjectID(ctx context.Context, subjectID string) (*model.User, error)
	GetWithProfiles(ctx context.Context, id string) (*model.UserWithProfiles, error)
	UpsertJobSeekerProfile(ctx context.Context, userID string, params *model.JobSeekerProfileParams) (*model.JobSeekerProfile, error)
	UpsertEmployerProfile(ctx context.Context, userID string, params *model.EmployerProfileParams) (*model.EmployerProfile, error)
	Stats(ctx context.Context) (*model.UserStats, error)
}

// JobRepository defines the interface for job posting data operations.
type JobRepository interface {
	ListActive(ctx context.Context, filters model.JobFilters, limit, offset int) ([]*model.JobWithEmployer, int, error)
	GetByID(ctx context.Context, id string) (*model.JobWithEmployer, error)
	ListByEmployer(ctx context.Context, employerID string, limit, offset int) ([]*model.JobWithEmployer, int, error)
	Create(ctx context.Context, employerID string, params *model.CreateJobParams) (*model.Job, error)
	Update(ctx context.Context, id, employerID string, params model.UpdateJobParams) (*model.Job, error)
	Delete(ctx context.Context, id, employerID string) (bool, error)
}

// ApplicationRepository defines the interface for application data operations.
type ApplicationRepository interface {
	Create(ctx context.Context, params *model.SubmitApplicationParams) (*model.Application, error)
	Exists(ctx context.Context, jobID, applicantID string) (bool, error)
	GetByID(ctx context.Context, id string) (*model.Application, error)
	GetByIDForEmployer(ctx context.Context, id, employerID string) (*model.Application, error)
	UpdateStatus(ctx context.Context, id, employerID string, status model.ApplicationStatus) (*model.Application, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]*model.ApplicationWithDetails, error)
	ListByJob(ctx context.Context, jobID string) ([]*model.ApplicationWithDetails, error)
	StatsByEmployer(ctx context.Context, employerID string) (*model.ApplicationStats, error)
}
