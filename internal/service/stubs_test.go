package service

import (
	"context"
	"errors"

	"github.com/qatalent/jobboard/internal/core"
	"github.com/qatalent/jobboard/internal/domain/model"
)

// Hand-written repository doubles with per-test function fields. Calls to
// methods a test did not stub fail loudly.

var errStubNotConfigured = errors.New("stub method not configured")

type stubUserRepo struct {
	CreateFunc                 func(ctx context.Context, params *model.ProvisionUserParams) (*model.User, error)
	GetByIDFunc                func(ctx context.Context, id string) (*model.User, error)
	GetByAuthSubjectIDFunc     func(ctx context.Context, subjectID string) (*model.User, error)
	GetWithProfilesFunc        func(ctx context.Context, id string) (*model.UserWithProfiles, error)
	UpsertJobSeekerProfileFunc func(ctx context.Context, userID string, params *model.JobSeekerProfileParams) (*model.JobSeekerProfile, error)
	UpsertEmployerProfileFunc  func(ctx context.Context, userID string, params *model.EmployerProfileParams) (*model.EmployerProfile, error)
	StatsFunc                  func(ctx context.Context) (*model.UserStats, error)
}

var _ core.UserRepository = (*stubUserRepo)(nil)

func (s *stubUserRepo) Create(ctx context.Context, params *model.ProvisionUserParams) (*model.User, error) {
	if s.CreateFunc == nil {
		return nil, errStubNotConfigured
	}
	return s.CreateFunc(ctx, params)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if s.GetByIDFunc == nil {
		return nil, errStubNotConfigured
	}
	return s.GetByIDFunc(ctx, id)
}

func (s *stubUserRepo) GetByAuthSubjectID(ctx context.Context, subjectID string) (*model.User, error) {
	if s.GetByAuthSubjectIDFunc == nil {
		return nil, errStubNotConfigured
	}
	return s.GetByAuthSubjectIDFunc(ctx, subjectID)
}

func (s *stubUserRepo) GetWithProfiles(ctx context.Context, id string) (*model.UserWithProfiles, error) {
	if s.GetWithProfilesFunc == nil {
		return nil, errStubNotConfigured
	}
	return s.GetWithProfilesFunc(ctx, id)
}

func (s *stubUserRepo) UpsertJobSeekerProfile(ctx context.Context, userID string, params *model.JobSeekerProfileParams) (*model.JobSeekerProfile, error) {
	if s.UpsertJobSeekerProfileFunc == nil {
		return nil, errStubNotConfigured
	}
	return s.UpsertJobSeekerProfileFunc(ctx, userID, params)
}

func (s *stubUserRepo) UpsertEmployerProfile(ctx context.Context, userID string, params *model.EmployerProfileParams) (*model.EmployerProfile, error) {
	if s.UpsertEmployerProfileFunc == nil {
		return nil, errStubNotConfigured
	}
	return s.UpsertEmployerProfileFunc(ctx, userID, params)
}

func (s *stubUserRepo) Stats(ctx context.Context) (*model.UserStats, error) {
	if s.StatsFunc == nil {
		return nil, errStubNotConfigured
	}
	return s.StatsFunc(ctx)
}

type stubJobRepo struct {
	ListActiveFunc     func(ctx context.Context, filters model.JobFilters, limit, offset int) ([]*model.JobWithEmployer, int, error)
	GetByIDFunc        func(ctx context.Context, id string) (*model.JobWithEmployer, error)
	ListByEmployerFunc func(ctx context.Context, employerID string, limit, offset int) ([]*model.JobWithEmployer, int, error)
	CreateFunc         func(ctx context.Context, employerID string, params *model.CreateJobParams) (*model.Job, error)
	UpdateFunc         func(ctx context.Context, id, employerID string, params model.UpdateJobParams) (*model.Job, error)
	DeleteFunc         func(ctx context.Context, id, employerID string) (bool, error)
}

var _ core.JobRepository = (*stubJobRepo)(nil)

func (s *stubJobRepo) ListActive(ctx context.Context, filters model.JobFilters, limit, offset int) ([]*model.JobWithEmployer, int, error) {
	if s.ListActiveFunc == nil {
		return nil, 0, errStubNotConfigured
	}
	return s.ListActiveFunc(ctx, filters, limit, offset)
}

func (s *stubJobRepo) GetByID(ctx context.Context, id string) (*model.JobWithEmployer, error) {
	if s.GetByIDFunc == nil {
		return nil, errStubNotConfigured
	}
	return s.GetByIDFunc(ctx, id)
}

func (s *stubJobRepo) ListByEmployer(ctx context.Context, employerID string, limit, offset int) ([]*model.JobWithEmployer, int, error) {
	if s.ListByEmployerFunc == nil {
		return nil, 0, errStubNotConfigured
	}
	return s.ListByEmployerFunc(ctx, employerID, limit, offset)
}

func (s *stubJobRepo) Create(ctx context.Context, employerID string, params *model.CreateJobParams) (*model.Job, error) {
	if s.CreateFunc == nil {
		return nil, errStubNotConfigured
	}
	return s.CreateFunc(ctx, employerID, params)
}

func (s *stubJobRepo) Update(ctx context.Context, id, employerID string, params model.UpdateJobParams) (*model.Job, error) {
	if s.UpdateFunc == nil {
		return nil, errStubNotConfigured
	}
	return s.UpdateFunc(ctx, id, employerID, params)
}

func (s *stubJobRepo) Delete(ctx context.Context, id, employerID string) (bool, error) {
	if s.DeleteFunc == nil {
		return false, errStubNotConfigured
	}
	return s.DeleteFunc(ctx, id, employerID)
}

type stubApplicationRepo struct {
	CreateFunc             func(ctx context.Context, params *model.SubmitApplicationParams) (*model.Application, error)
	ExistsFunc             func(ctx context.Context, jobID, applicantID string) (bool, error)
	GetByIDFunc            func(ctx context.Context, id string) (*model.Application, error)
	GetByIDForEmployerFunc func(ctx context.Context, id, employerID string) (*model.Application, error)
	UpdateStatusFunc       func(ctx context.Context, id, employerID string, status model.ApplicationStatus) (*model.Application, error)
	ListByApplicantFunc    func(ctx context.Context, applicantID string) ([]*model.ApplicationWithDetails, error)
	ListByJobFunc          func(ctx context.Context, jobID string) ([]*model.ApplicationWithDetails, error)
	StatsByEmployerFunc    func(ctx context.Context, employerID string) (*model.ApplicationStats, error)
}

var _ core.ApplicationRepository = (*stubApplicationRepo)(nil)

func (s *stubApplicationRepo) Create(ctx context.Context, params *model.SubmitApplicationParams) (*model.Application, error) {
	if s.CreateFunc == nil {
		return nil, errStubNotConfigured
	}
	return s.CreateFunc(ctx, params)
}

func (s *stubApplicationRepo) Exists(ctx context.Context, jobID, applicantID string) (bool, error) {
	if s.ExistsFunc == nil {
		return false, errStubNotConfigured
	}
	return s.ExistsFunc(ctx, jobID, applicantID)
}

func (s *stubApplicationRepo) GetByID(ctx context.Context, id string) (*model.Application, error) {
	if s.GetByIDFunc == nil {
		return nil, errStubNotConfigured
	}
	return s.GetByIDFunc(ctx, id)
}

func (s *stubApplicationRepo) GetByIDForEmployer(ctx context.Context, id, employerID string) (*model.Application, error) {
	if s.GetByIDForEmployerFunc == nil {
		return nil, errStubNotConfigured
	}
	return s.GetByIDForEmployerFunc(ctx, id, employerID)
}

func (s *stubApplicationRepo) UpdateStatus(ctx context.Context, id, employerID string, status model.ApplicationStatus) (*model.Application, error) {
	if s.UpdateStatusFunc == nil {
		return nil, errStubNotConfigured
	}
	return s.UpdateStatusFunc(ctx, id, employerID, status)
}

func (s *stubApplicationRepo) ListByApplicant(ctx context.Context, applicantID string) ([]*model.ApplicationWithDetails, error) {
	if s.ListByApplicantFunc == nil {
		return nil, errStubNotConfigured
	}
	return s.ListByApplicantFunc(ctx, applicantID)
}

func (s *stubApplicationRepo) ListByJob(ctx context.Context, jobID string) ([]*model.ApplicationWithDetails, error) {
	if s.ListByJobFunc == nil {
		return nil, errStubNotConfigured
	}
	return s.ListByJobFunc(ctx, jobID)
}

func (s *stubApplicationRepo) StatsByEmployer(ctx context.Context, employerID string) (*model.ApplicationStats, error) {
	if s.StatsByEmployerFunc == nil {
		return nil, errStubNotConfigured
	}
	return s.StatsByEmployerFunc(ctx, employerID)
}
