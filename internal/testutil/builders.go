package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	domainauth "github.com/qatalent/jobboard/internal/domain/auth"
	"github.com/qatalent/jobboard/internal/domain/model"
)

var seq atomic.Int64

func nextID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, seq.Add(1))
}

// UserBuilder provides a fluent interface for building users for testing.
type UserBuilder struct {
	user model.User
}

// NewUser creates a UserBuilder with job-seeker defaults.
func NewUser() *UserBuilder {
	id := nextID("user")
	return &UserBuilder{
		user: model.User{
			ID:            id,
			AuthSubjectID: "sub-" + id,
			Email:         id + "@example.com",
			Name:          "Test User",
			Role:          domainauth.RoleJobSeeker,
			CreatedAt:     TestTime(),
			UpdatedAt:     TestTime(),
		},
	}
}

func (b *UserBuilder) WithID(id string) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) WithAuthSubjectID(sub string) *UserBuilder {
	b.user.AuthSubjectID = sub
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.user.Name = name
	return b
}

func (b *UserBuilder) WithRole(role domainauth.Role) *UserBuilder {
	b.user.Role = role
	return b
}

// AsEmployer marks the user as an employer.
func (b *UserBuilder) AsEmployer() *UserBuilder {
	return b.WithRole(domainauth.RoleEmployer)
}

// AsAdmin marks the user as an admin.
func (b *UserBuilder) AsAdmin() *UserBuilder {
	return b.WithRole(domainauth.RoleAdmin)
}

// Build returns the constructed user.
func (b *UserBuilder) Build() model.User {
	return b.user
}

// JobBuilder provides a fluent interface for building jobs for testing.
type JobBuilder struct {
	job model.Job
}

// NewJob creates a JobBuilder with an active posting and sensible defaults.
func NewJob() *JobBuilder {
	return &JobBuilder{
		job: model.Job{
			ID:          nextID("job"),
			Title:       "Backend Engineer",
			Description: "Build and run APIs.",
			Location:    "Doha, Qatar",
			Company:     "Qatar Cloud",
			Status:      model.JobStatusActive,
			EmployerID:  "employer-1",
			CreatedAt:   TestTime(),
			UpdatedAt:   TestTime(),
		},
	}
}

func (b *JobBuilder) WithID(id string) *JobBuilder {
	b.job.ID = id
	return b
}

func (b *JobBuilder) WithTitle(title string) *JobBuilder {
	b.job.Title = title
	return b
}

func (b *JobBuilder) WithDescription(desc string) *JobBuilder {
	b.job.Description = desc
	return b
}

func (b *JobBuilder) WithLocation(location string) *JobBuilder {
	b.job.Location = location
	return b
}

func (b *JobBuilder) WithCompany(company string) *JobBuilder {
	b.job.Company = company
	return b
}

func (b *JobBuilder) WithSalaryRange(minSalary, maxSalary int) *JobBuilder {
	b.job.SalaryMin = &minSalary
	b.job.SalaryMax = &maxSalary
	return b
}

func (b *JobBuilder) WithStatus(status model.JobStatus) *JobBuilder {
	b.job.Status = status
	return b
}

func (b *JobBuilder) WithEmployerID(id string) *JobBuilder {
	b.job.EmployerID = id
	return b
}

func (b *JobBuilder) WithCreatedAt(t time.Time) *JobBuilder {
	b.job.CreatedAt = t
	return b
}

// Build returns the constructed job.
func (b *JobBuilder) Build() model.Job {
	return b.job
}

// BuildWithEmployer wraps the job with an employer summary for listing shapes.
func (b *JobBuilder) BuildWithEmployer(employer model.EmployerSummary) *model.JobWithEmployer {
	return &model.JobWithEmployer{Job: b.job, Employer: employer}
}

// ApplicationBuilder provides a fluent interface for building applications for testing.
type ApplicationBuilder struct {
	app model.Application
}

// NewApplication creates an ApplicationBuilder with a pending application.
func NewApplication() *ApplicationBuilder {
	return &ApplicationBuilder{
		app: model.Application{
			ID:          nextID("app"),
			JobID:       "job-1",
			ApplicantID: "user-1",
			Status:      model.ApplicationStatusPending,
			CreatedAt:   TestTime(),
			UpdatedAt:   TestTime(),
		},
	}
}

func (b *ApplicationBuilder) WithID(id string) *ApplicationBuilder {
	b.app.ID = id
	return b
}

func (b *ApplicationBuilder) WithJobID(jobID string) *ApplicationBuilder {
	b.app.JobID = jobID
	return b
}

func (b *ApplicationBuilder) WithApplicantID(id string) *ApplicationBuilder {
	b.app.ApplicantID = id
	return b
}

func (b *ApplicationBuilder) WithStatus(status model.ApplicationStatus) *ApplicationBuilder {
	b.app.Status = status
	return b
}

func (b *ApplicationBuilder) WithCoverLetter(letter string) *ApplicationBuilder {
	b.app.CoverLetter = &letter
	return b
}

// Build returns the constructed application.
func (b *ApplicationBuilder) Build() model.Application {
	return b.app
}
