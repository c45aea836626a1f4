// Package model defines the core data types and structures of the job board.
package model

import (
	"errors"
	"strings"
	"time"

	domainauth "github.com/qatalent/jobboard/internal/domain/auth"
)

// User is an internal account provisioned from an external identity.
// AuthSubjectID carries the identity provider's stable subject and is unique.
type User struct {
	ID            string          `json:"id"              db:"id"`
	AuthSubjectID string          `json:"auth_subject_id" db:"auth_subject_id"`
	Email         string          `json:"email"           db:"email"`
	Name          string          `json:"name"            db:"name"`
	Role          domainauth.Role `json:"role"            db:"role"`
	ImageURL      *string         `json:"image_url,omitempty" db:"image_url"`
	CreatedAt     time.Time       `json:"created_at"      db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"      db:"updated_at"`
}

// JobSeekerProfile is the 1:1 role profile for JOBSEEKER users.
type JobSeekerProfile struct {
	ID        string    `json:"id"                   db:"id"`
	UserID    string    `json:"user_id"              db:"user_id"`
	Bio       *string   `json:"bio,omitempty"        db:"bio"`
	Skills    []string  `json:"skills"               db:"skills"`
	ResumeURL *string   `json:"resume_url,omitempty" db:"resume_url"`
	CreatedAt time.Time `json:"created_at"           db:"created_at"`
	UpdatedAt time.Time `json:"updated_at"           db:"updated_at"`
}

// EmployerProfile is the 1:1 role profile for EMPLOYER users.
type EmployerProfile struct {
	ID          string    `json:"id"                    db:"id"`
	UserID      string    `json:"user_id"               db:"user_id"`
	CompanyName string    `json:"company_name"          db:"company_name"`
	Website     *string   `json:"website,omitempty"     db:"website"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at"            db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"            db:"updated_at"`
}

// UserWithProfiles carries a user together with whichever role profile exists.
type UserWithProfiles struct {
	User
	JobSeekerProfile *JobSeekerProfile `json:"job_seeker_profile,omitempty"`
	EmployerProfile  *EmployerProfile  `json:"employer_profile,omitempty"`
}

// HasCompletedProfile reports whether the role-specific profile has been set up.
// Admins have no profile requirement.
func (u *UserWithProfiles) HasCompletedProfile() bool {
	switch u.Role {
	case domainauth.RoleJobSeeker:
		return u.JobSeekerProfile != nil
	case domainauth.RoleEmployer:
		return u.EmployerProfile != nil && strings.TrimSpace(u.EmployerProfile.CompanyName) != ""
	default:
		return true
	}
}

// ProvisionUserParams groups inputs for creating a user on first sight of an
// external subject id.
type ProvisionUserParams struct {
	AuthSubjectID string
	Email         string
	Name          string
	Role          domainauth.Role
	ImageURL      *string
}

// Validate checks required provisioning fields.
func (p *ProvisionUserParams) Validate() error {
	if strings.TrimSpace(p.AuthSubjectID) == "" {
		return errors.New("auth subject id is required")
	}
	if strings.TrimSpace(p.Email) == "" {
		return errors.New("email is required")
	}
	if !p.Role.Valid() {
		return errors.New("role must be one of JOBSEEKER, EMPLOYER, ADMIN")
	}
	return nil
}

// JobSeekerProfileParams groups fields for upserting a job seeker profile.
type JobSeekerProfileParams struct {
	Bio       *string  `json:"bio,omitempty"`
	Skills    []string `json:"skills,omitempty"`
	ResumeURL *string  `json:"resume_url,omitempty"`
}

// EmployerProfileParams groups fields for upserting an employer profile.
type EmployerProfileParams struct {
	CompanyName string  `json:"company_name"`
	Website     *string `json:"website,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Validate checks required employer profile fields.
func (p *EmployerProfileParams) Validate() error {
	if strings.TrimSpace(p.CompanyName) == "" {
		return errors.New("company name is required")
	}
	return nil
}

// UserStats summarizes account counts by role for the admin surface.
type UserStats struct {
	Total      int `json:"total"`
	JobSeekers int `json:"job_seekers"`
	Employers  int `json:"employers"`
	Admins     int `json:"admins"`
}
