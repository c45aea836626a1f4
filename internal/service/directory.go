package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/qatalent/jobboard/internal/core"
	"github.com/qatalent/jobboard/internal/data"
	domainauth "github.com/qatalent/jobboard/internal/domain/auth"
	"github.com/qatalent/jobboard/internal/domain/model"
)

// DirectoryServiceOptions groups dependencies for DirectoryService.
type DirectoryServiceOptions struct {
	Users core.UserRepository
}

// DirectoryService manages internal user accounts provisioned from external
// identities, together with their role profiles.
type DirectoryService struct {
	users core.UserRepository
}

// NewDirectoryService constructs a new DirectoryService.
func NewDirectoryService(opts DirectoryServiceOptions) *DirectoryService {
	return &DirectoryService{users: opts.Users}
}

// Resolve looks up the internal user for an identity provider subject.
// Returns data.ErrUserNotFound for subjects never provisioned.
func (s *DirectoryService) Resolve(ctx context.Context, authSubjectID string) (*model.User, error) {
	if authSubjectID == "" {
		return nil, errors.New("auth subject id is required")
	}
	return s.users.GetByAuthSubjectID(ctx, authSubjectID)
}

// Provision creates the internal account for a subject seen for the first
// time. Two concurrent first requests race on the unique subject constraint;
// the loser re-resolves and returns the winner's row.
func (s *DirectoryService) Provision(ctx context.Context, params *model.ProvisionUserParams) (*model.User, error) {
	if params == nil {
		return nil, errors.New("provision params are required")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, params)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, data.ErrUserExists) {
		return nil, fmt.Errorf("provision user: %w", err)
	}

	existing, resolveErr := s.users.GetByAuthSubjectID(ctx, params.AuthSubjectID)
	if resolveErr != nil {
		return nil, fmt.Errorf("resolve existing user after conflict: %w", resolveErr)
	}
	return existing, nil
}

// GetMe returns the user with whichever role profile exists.
func (s *DirectoryService) GetMe(ctx context.Context, userID string) (*model.UserWithProfiles, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	return s.users.GetWithProfiles(ctx, userID)
}

// SetJobSeekerProfile upserts the job seeker profile for a JOBSEEKER user.
func (s *DirectoryService) SetJobSeekerProfile(
	ctx context.Context,
	userID string,
	params *model.JobSeekerProfileParams,
) (*model.JobSeekerProfile, error) {
	if params == nil {
		return nil, errors.New("profile params are required")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != domainauth.RoleJobSeeker {
		return nil, ErrWrongRole
	}

	return s.users.UpsertJobSeekerProfile(ctx, userID, params)
}

// SetEmployerProfile upserts the employer profile for an EMPLOYER user.
func (s *DirectoryService) SetEmployerProfile(
	ctx context.Context,
	userID string,
	params *model.EmployerProfileParams,
) (*model.EmployerProfile, error) {
	if params == nil {
		return nil, errors.New("profile params are required")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != domainauth.RoleEmployer {
		return nil, ErrWrongRole
	}

	return s.users.UpsertEmployerProfile(ctx, userID, params)
}

// Stats returns account counts by role.
func (s *DirectoryService) Stats(ctx context.Context) (*model.UserStats, error) {
	return s.users.Stats(ctx)
}
