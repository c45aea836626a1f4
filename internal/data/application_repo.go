package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/qatalent/jobboard/internal/data/pgxutil"
	"github.com/qatalent/jobboard/internal/domain/model"
)

// ApplicationRepo provides database operations for job applications.
type ApplicationRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewApplicationRepo creates a new ApplicationRepo with the real time provider.
func NewApplicationRepo(db *sql.DB) *ApplicationRepo {
	return &ApplicationRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewApplicationRepoWithTimeProvider creates a new ApplicationRepo with a custom time provider.
func NewApplicationRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ApplicationRepo {
	return &ApplicationRepo{DB: db, timeProvider: tp}
}

const applicationColumns = `id, job_id, applicant_id, cover_letter, status, created_at, updated_at`

// Create inserts a new PENDING application. The (job_id, applicant_id) unique
// constraint is the arbiter for duplicate submissions, even under concurrency.
func (r *ApplicationRepo) Create(ctx context.Context, params *model.SubmitApplicationParams) (*model.Application, error) {
	if params == nil {
		return nil, errors.New("submit application params are required")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.Application
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO applications (job_id, applicant_id, cover_letter, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
			RETURNING `+applicationColumns,
			params.JobID,
			params.ApplicantID,
			params.CoverLetter,
			model.ApplicationStatusPending,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Application])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// Exists reports whether the applicant has ever applied to the job.
func (r *ApplicationRepo) Exists(ctx context.Context, jobID, applicantID string) (bool, error) {
	var exists bool
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`,
			jobID, applicantID,
		).Scan(&exists)
	})
	if err != nil {
		return false, fmt.Errorf("failed to check application existence: %w", err)
	}
	return exists, nil
}

// GetByID retrieves a bare application by ID.
func (r *ApplicationRepo) GetByID(ctx context.Context, id string) (*model.Application, error) {
	var app model.Application
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		app, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Application])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application by ID: %w", err)
	}
	return &app, nil
}

// GetByIDForEmployer retrieves an application only when its job belongs to
// employerID. Foreign applications report ErrApplicationNotFound so their
// existence never leaks.
func (r *ApplicationRepo) GetByIDForEmployer(ctx context.Context, id, employerID string) (*model.Application, error) {
	var app model.Application
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT a.id, a.job_id, a.applicant_id, a.cover_letter, a.status, a.created_at, a.updated_at
			FROM applications a
			JOIN jobs j ON j.id = a.job_id
			WHERE a.id = $1 AND j.employer_id = $2`, id, employerID)
		if err != nil {
			return err
		}
		defer rows.Close()
		app, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Application])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application for employer: %w", err)
	}
	return &app, nil
}

// UpdateStatus sets the status of an application whose job belongs to
// employerID. The ownership join keeps the write from touching anyone else's
// rows; no matching row reports ErrApplicationNotFound.
func (r *ApplicationRepo) UpdateStatus(
	ctx context.Context,
	id, employerID string,
	status model.ApplicationStatus,
) (*model.Application, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid application status: %q", status)
	}

	now := r.timeProvider.Now().UTC()
	var app model.Application
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE applications a
			SET status = $3, updated_at = $4
			FROM jobs j
			WHERE a.id = $1 AND a.job_id = j.id AND j.employer_id = $2
			RETURNING a.id, a.job_id, a.applicant_id, a.cover_letter, a.status, a.created_at, a.updated_at`,
			id, employerID, status, now)
		if err != nil {
			return err
		}
		defer rows.Close()
		app, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Application])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	return &app, nil
}

const applicationDetailQuery = `
	SELECT a.id, a.job_id, a.applicant_id, a.cover_letter, a.status, a.created_at, a.updated_at,
	       j.title AS job_title, j.company AS job_company, j.location AS job_location,
	       eu.id AS employer_id, eu.name AS employer_name, eu.email AS employer_email,
	       ep.company_name AS employer_company_name,
	       au.name AS applicant_name, au.email AS applicant_email,
	       jsp.bio AS applicant_bio, jsp.skills AS applicant_skills, jsp.resume_url AS applicant_resume_url
	FROM applications a
	JOIN jobs j ON j.id = a.job_id
	JOIN users eu ON eu.id = j.employer_id
	LEFT JOIN employer_profiles ep ON ep.user_id = eu.id
	JOIN users au ON au.id = a.applicant_id
	LEFT JOIN job_seeker_profiles jsp ON jsp.user_id = au.id`

// ListByApplicant retrieves a job seeker's applications with job details,
// newest first.
func (r *ApplicationRepo) ListByApplicant(ctx context.Context, applicantID string) ([]*model.ApplicationWithDetails, error) {
	return r.listDetails(ctx,
		applicationDetailQuery+` WHERE a.applicant_id = $1 ORDER BY a.created_at DESC`,
		"failed to list applications by applicant", applicantID)
}

// ListByJob retrieves a job's applications with applicant details, newest first.
func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID string) ([]*model.ApplicationWithDetails, error) {
	return r.listDetails(ctx,
		applicationDetailQuery+` WHERE a.job_id = $1 ORDER BY a.created_at DESC`,
		"failed to list applications by job", jobID)
}

// StatsByEmployer counts applications across all of an employer's postings.
func (r *ApplicationRepo) StatsByEmployer(ctx context.Context, employerID string) (*model.ApplicationStats, error) {
	var stats model.ApplicationStats
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `
			SELECT COUNT(*),
			       COUNT(*) FILTER (WHERE a.status = 'PENDING'),
			       COUNT(*) FILTER (WHERE a.status = 'REVIEWED'),
			       COUNT(*) FILTER (WHERE a.status = 'ACCEPTED'),
			       COUNT(*) FILTER (WHERE a.status = 'REJECTED')
			FROM applications a
			JOIN jobs j ON j.id = a.job_id
			WHERE j.employer_id = $1`, employerID,
		).Scan(&stats.Total, &stats.Pending, &stats.Reviewed, &stats.Accepted, &stats.Rejected)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get application stats: %w", err)
	}
	return &stats, nil
}

// --- helpers ---

func (r *ApplicationRepo) listDetails(
	ctx context.Context,
	query, errMsg string,
	args ...any,
) ([]*model.ApplicationWithDetails, error) {
	var out []*model.ApplicationWithDetails
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				d        model.ApplicationWithDetails
				skills   []string
				employer model.EmployerSummary
			)
			if scanErr := rows.Scan(
				&d.ID, &d.JobID, &d.ApplicantID, &d.CoverLetter, &d.Status, &d.CreatedAt, &d.UpdatedAt,
				&d.Job.Title, &d.Job.Company, &d.Job.Location,
				&employer.ID, &employer.Name, &employer.Email, &employer.CompanyName,
				&d.Applicant.Name, &d.Applicant.Email,
				&d.Applicant.Bio, &skills, &d.Applicant.ResumeURL,
			); scanErr != nil {
				return scanErr
			}
			d.Job.ID = d.JobID
			d.Job.Employer = employer
			d.Applicant.ID = d.ApplicantID
			d.Applicant.Skills = skills
			out = append(out, &d)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return out, nil
}

func (r *ApplicationRepo) mapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrAlreadyApplied
		case pgerrcode.ForeignKeyViolation:
			if strings.Contains(pgErr.ConstraintName, "job_id") {
				return ErrJobNotFound
			}
			return ErrUserNotFound
		}
	}
	return err
}
