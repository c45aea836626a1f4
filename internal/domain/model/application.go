package model

import (
	"fmt"
	"strings"
	"time"
)

// ApplicationStatus represents the state of a job application.
type ApplicationStatus string

const (
	// ApplicationStatusPending is the only initial state.
	ApplicationStatusPending ApplicationStatus = "PENDING"
	// ApplicationStatusReviewed indicates the employer has looked at the application.
	ApplicationStatusReviewed ApplicationStatus = "REVIEWED"
	// ApplicationStatusAccepted is terminal.
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	// ApplicationStatusRejected is terminal.
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// Valid returns true if the ApplicationStatus is valid.
func (s ApplicationStatus) Valid() bool {
	return s == ApplicationStatusPending || s == ApplicationStatusReviewed ||
		s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// Terminal reports whether the status admits no further transitions.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// CanTransitionTo reports whether moving from s to next is a legal forward
// edge: PENDING → REVIEWED → {ACCEPTED, REJECTED}, with REVIEWED skippable.
// Terminal states have no exits; a no-op transition to the same status is
// allowed.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	if s.Terminal() {
		return false
	}
	switch s {
	case ApplicationStatusPending:
		return true // REVIEWED, ACCEPTED, or REJECTED
	case ApplicationStatusReviewed:
		return next.Terminal()
	default:
		return false
	}
}

// Application records one job seeker's application to one job. The pair
// (JobID, ApplicantID) is unique for all time.
type Application struct {
	ID          string            `json:"id"           db:"id"`
	JobID       string            `json:"job_id"       db:"job_id"`
	ApplicantID string            `json:"applicant_id" db:"applicant_id"`
	CoverLetter *string           `json:"cover_letter,omitempty" db:"cover_letter"`
	Status      ApplicationStatus `json:"status"       db:"status"`
	CreatedAt   time.Time         `json:"created_at"   db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"   db:"updated_at"`
}

// ApplicationJobSummary is the job slice attached to ledger reads.
type ApplicationJobSummary struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Company  string          `json:"company"`
	Location string          `json:"location"`
	Employer EmployerSummary `json:"employer"`
}

// ApplicantSummary is the applicant slice attached to employer-facing reads.
type ApplicantSummary struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Bio       *string  `json:"bio,omitempty"`
	Skills    []string `json:"skills,omitempty"`
	ResumeURL *string  `json:"resume_url,omitempty"`
}

// ApplicationWithDetails is an application joined with its job and applicant
// summaries, the shape served by ledger listing endpoints.
type ApplicationWithDetails struct {
	Application
	Job       ApplicationJobSummary `json:"job"`
	Applicant ApplicantSummary      `json:"applicant"`
}

// SubmitApplicationParams groups inputs for submitting an application.
type SubmitApplicationParams struct {
	JobID       string  `json:"job_id"`
	ApplicantID string  `json:"applicant_id"`
	CoverLetter *string `json:"cover_letter,omitempty"`
}

// Validate checks required submission fields.
func (p *SubmitApplicationParams) Validate() error {
	if strings.TrimSpace(p.JobID) == "" {
		return fmt.Errorf("job_id is required")
	}
	if strings.TrimSpace(p.ApplicantID) == "" {
		return fmt.Errorf("applicant_id is required")
	}
	return nil
}

// ApplicationStats counts an employer's applications by status.
type ApplicationStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Reviewed int `json:"reviewed"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}
