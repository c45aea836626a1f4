package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/qatalent/jobboard/internal/core"
	"github.com/qatalent/jobboard/internal/data"
	"github.com/qatalent/jobboard/internal/domain/model"
)

// LedgerServiceOptions groups dependencies for LedgerService.
type LedgerServiceOptions struct {
	Applications core.ApplicationRepository
	Jobs         core.JobRepository

	// StrictTransitions enforces the application status state machine.
	StrictTransitions bool

	// CoverLetterMaxLen caps cover letter length in characters; zero disables.
	CoverLetterMaxLen int
}

// LedgerService manages the application ledger: submissions by job seekers
// and status reviews by the owning employer.
type LedgerService struct {
	applications      core.ApplicationRepository
	jobs              core.JobRepository
	strictTransitions bool
	coverLetterMaxLen int
}

// NewLedgerService constructs a new LedgerService.
func NewLedgerService(opts LedgerServiceOptions) *LedgerService {
	return &LedgerService{
		applications:      opts.Applications,
		jobs:              opts.Jobs,
		strictTransitions: opts.StrictTransitions,
		coverLetterMaxLen: opts.CoverLetterMaxLen,
	}
}

// Submit records a new application. The job must exist and be ACTIVE, and a
// job seeker can apply to a given job at most once; the database unique
// constraint is the authoritative duplicate guard.
func (s *LedgerService) Submit(ctx context.Context, params *model.SubmitApplicationParams) (*model.Application, error) {
	if params == nil {
		return nil, errors.New("submit params are required")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if s.coverLetterMaxLen > 0 && params.CoverLetter != nil &&
		utf8.RuneCountInString(*params.CoverLetter) > s.coverLetterMaxLen {
		return nil, fmt.Errorf("%w: limit is %d characters", ErrCoverLetterTooLong, s.coverLetterMaxLen)
	}

	job, err := s.jobs.GetByID(ctx, params.JobID)
	if err != nil {
		return nil, err
	}
	if job.Status != model.JobStatusActive {
		return nil, ErrJobNotOpen
	}

	return s.applications.Create(ctx, params)
}

// HasApplied reports whether the applicant already applied to the job.
func (s *LedgerService) HasApplied(ctx context.Context, jobID, applicantID string) (bool, error) {
	if jobID == "" || applicantID == "" {
		return false, errors.New("job id and applicant id are required")
	}
	return s.applications.Exists(ctx, jobID, applicantID)
}

// ListForJob returns the applications for a job the employer owns, newest
// first. A non-owner, or a missing job, gets an empty slice rather than an
// error so the surface does not leak which postings exist.
func (s *LedgerService) ListForJob(ctx context.Context, jobID, employerID string) ([]*model.ApplicationWithDetails, error) {
	if jobID == "" || employerID == "" {
		return nil, errors.New("job id and employer id are required")
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, data.ErrJobNotFound) {
			return []*model.ApplicationWithDetails{}, nil
		}
		return nil, err
	}
	if job.EmployerID != employerID {
		return []*model.ApplicationWithDetails{}, nil
	}

	return s.applications.ListByJob(ctx, jobID)
}

// ListForApplicant returns the applicant's applications with job and
// employer summaries, newest first.
func (s *LedgerService) ListForApplicant(ctx context.Context, applicantID string) ([]*model.ApplicationWithDetails, error) {
	if applicantID == "" {
		return nil, errors.New("applicant id is required")
	}
	return s.applications.ListByApplicant(ctx, applicantID)
}

// GetByID returns one application when the requester is its applicant or
// the owning employer; anyone else sees data.ErrApplicationNotFound.
func (s *LedgerService) GetByID(ctx context.Context, id, requestingUserID string) (*model.Application, error) {
	if id == "" || requestingUserID == "" {
		return nil, errors.New("application id and requesting user id are required")
	}

	app, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.ApplicantID == requestingUserID {
		return app, nil
	}
	return s.applications.GetByIDForEmployer(ctx, id, requestingUserID)
}

// UpdateStatusParams groups inputs for an application status review.
type UpdateStatusParams struct {
	ID         string
	EmployerID string
	Status     model.ApplicationStatus
}

// UpdateStatus moves an application to a new status on behalf of the owning
// employer. Unknown statuses are ErrInvalidStatus; when strict transitions
// are on, edges outside PENDING → REVIEWED → {ACCEPTED, REJECTED} are
// ErrIllegalTransition. Non-owners see data.ErrApplicationNotFound.
func (s *LedgerService) UpdateStatus(ctx context.Context, params UpdateStatusParams) (*model.Application, error) {
	if params.ID == "" || params.EmployerID == "" {
		return nil, errors.New("application id and employer id are required")
	}
	if !params.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, params.Status)
	}

	if s.strictTransitions {
		current, err := s.applications.GetByIDForEmployer(ctx, params.ID, params.EmployerID)
		if err != nil {
			return nil, err
		}
		if !current.Status.CanTransitionTo(params.Status) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current.Status, params.Status)
		}
	}

	return s.applications.UpdateStatus(ctx, params.ID, params.EmployerID, params.Status)
}

// StatsForEmployer counts applications by status across the employer's jobs.
func (s *LedgerService) StatsForEmployer(ctx context.Context, employerID string) (*model.ApplicationStats, error) {
	if employerID == "" {
		return nil, errors.New("employer id is required")
	}
	return s.applications.StatsByEmployer(ctx, employerID)
}
