package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// JobStatus represents the lifecycle status of a job posting.
type JobStatus string

const (
	// JobStatusActive indicates a posting open to applications and publicly listed.
	JobStatusActive JobStatus = "ACTIVE"
	// JobStatusClosed indicates a posting no longer accepting applications.
	JobStatusClosed JobStatus = "CLOSED"
	// JobStatusDraft indicates a posting not yet published.
	JobStatusDraft JobStatus = "DRAFT"
)

// Valid returns true if the JobStatus is valid.
func (s JobStatus) Valid() bool {
	return s == JobStatusActive || s == JobStatusClosed || s == JobStatusDraft
}

// Job represents a job posting owned by an employer.
type Job struct {
	ID          string    `json:"id"          db:"id"`
	Title       string    `json:"title"       db:"title"`
	Description string    `json:"description" db:"description"`
	Location    string    `json:"location"    db:"location"`
	Company     string    `json:"company"     db:"company"`
	SalaryMin   *int      `json:"salary_min,omitempty" db:"salary_min"`
	SalaryMax   *int      `json:"salary_max,omitempty" db:"salary_max"`
	Status      JobStatus `json:"status"      db:"status"`
	EmployerID  string    `json:"employer_id" db:"employer_id"`
	CreatedAt   time.Time `json:"created_at"  db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"  db:"updated_at"`
}

// EmployerSummary is the public slice of an employer attached to listings.
type EmployerSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
}

// JobWithEmployer is a job annotated with its employer summary and live
// application count, the shape served by listing and detail endpoints.
type JobWithEmployer struct {
	Job
	Employer         EmployerSummary `json:"employer"`
	ApplicationCount int             `json:"application_count"`
}

// JobFilters narrows public job listings. All fields are optional; string
// matches are case-insensitive substring matches, with Search ORed across
// title, description, and company.
type JobFilters struct {
	Search    string `json:"search,omitempty"`
	Location  string `json:"location,omitempty"`
	Company   string `json:"company,omitempty"`
	SalaryMin *int   `json:"salary_min,omitempty"`
	SalaryMax *int   `json:"salary_max,omitempty"`
}

// IsZero reports whether no filter is set.
func (f JobFilters) IsZero() bool {
	return f.Search == "" && f.Location == "" && f.Company == "" &&
		f.SalaryMin == nil && f.SalaryMax == nil
}

// JobPage is one page of a filtered job listing.
type JobPage struct {
	Items      []*JobWithEmployer `json:"jobs"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}

// PageCount returns ceil(total/pageSize), never less than 1 so that an empty
// result still renders a single page.
func PageCount(total, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// CreateJobParams groups fields for creating a posting. Status is not a
// parameter: new postings are always created ACTIVE.
type CreateJobParams struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Company     string `json:"company"`
	SalaryMin   *int   `json:"salary_min,omitempty"`
	SalaryMax   *int   `json:"salary_max,omitempty"`
}

// Validate checks required fields and salary bound ordering.
func (p *CreateJobParams) Validate() error {
	for _, f := range []struct{ name, val string }{
		{"title", p.Title},
		{"description", p.Description},
		{"location", p.Location},
		{"company", p.Company},
	} {
		if strings.TrimSpace(f.val) == "" {
			return fmt.Errorf("%s is required", f.name)
		}
	}
	if p.SalaryMin != nil && *p.SalaryMin < 0 {
		return errors.New("salary_min must not be negative")
	}
	if p.SalaryMax != nil && *p.SalaryMax < 0 {
		return errors.New("salary_max must not be negative")
	}
	if p.SalaryMin != nil && p.SalaryMax != nil && *p.SalaryMin > *p.SalaryMax {
		return errors.New("salary_min must not exceed salary_max")
	}
	return nil
}

// UpdateJobParams carries a partial update to a posting. Nil fields are left
// untouched.
type UpdateJobParams struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Company     *string    `json:"company,omitempty"`
	SalaryMin   *int       `json:"salary_min,omitempty"`
	SalaryMax   *int       `json:"salary_max,omitempty"`
	Status      *JobStatus `json:"status,omitempty"`
}

// Validate rejects blank required fields and unknown statuses in a patch.
func (p *UpdateJobParams) Validate() error {
	for _, f := range []struct {
		name string
		val  *string
	}{
		{"title", p.Title},
		{"description", p.Description},
		{"location", p.Location},
		{"company", p.Company},
	} {
		if f.val != nil && strings.TrimSpace(*f.val) == "" {
			return fmt.Errorf("%s must not be blank", f.name)
		}
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("invalid job status: %q", *p.Status)
	}
	return nil
}
