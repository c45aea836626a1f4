package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/qatalent/jobboard/internal/data/database"
	"github.com/qatalent/jobboard/internal/data/pgxutil"
	"github.com/qatalent/jobboard/internal/domain/model"
)

// JobRepo provides database operations for job postings.
type JobRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider

	// NullSalaryMatchesMax lets postings without an upper salary bound satisfy
	// an upper-bound filter. Off by default: unbounded postings are excluded.
	NullSalaryMatchesMax bool
}

// NewJobRepo creates a new JobRepo with the real time provider.
func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewJobRepoWithTimeProvider creates a new JobRepo with a custom time provider (useful for tests).
func NewJobRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *JobRepo {
	return &JobRepo{DB: db, timeProvider: tp}
}

// jobColumns returns the standard column list for job queries.
func jobColumns() []string {
	return []string{
		"id",
		"title",
		"description",
		"location",
		"company",
		"salary_min",
		"salary_max",
		"status",
		"employer_id",
		"created_at",
		"updated_at",
	}
}

// ListActive retrieves one page of ACTIVE postings matching the filters,
// newest first, together with the total matching count.
func (r *JobRepo) ListActive(
	ctx context.Context,
	filters model.JobFilters,
	limit, offset int,
) ([]*model.JobWithEmployer, int, error) {
	if limit <= 0 {
		limit = 10
	}
	offset = max(offset, 0)

	conds := buildJobConditions(filters, r.NullSalaryMatchesMax)
	conds = append([]database.Condition{
		database.WhereCond("status", database.Equal, string(model.JobStatusActive)),
	}, conds...)

	countQuery, countArgs := database.BuildListQuery(database.NewListQueryOptions("jobs",
		database.WithCountOnly(),
		database.WithConditions(conds...),
	))
	pageQuery, pageArgs := database.BuildListQuery(database.NewListQueryOptions("jobs",
		database.WithColumns(jobColumns()...),
		database.WithConditions(conds...),
		database.WithOrderBy("created_at", "DESC"),
		database.WithLimit(limit),
		database.WithOffset(offset),
	))

	var (
		total   int
		results []*model.JobWithEmployer
	)
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		if scanErr := conn.QueryRow(ctx, countQuery, countArgs...).Scan(&total); scanErr != nil {
			return scanErr
		}

		rows, err := conn.Query(ctx, pageQuery, pageArgs...)
		if err != nil {
			return err
		}
		jobs, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Job])
		rows.Close()
		if err != nil {
			return err
		}

		results, err = attachEmployerDetails(ctx, conn, jobs)
		return err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}
	return results, total, nil
}

// GetByID retrieves a posting with its employer summary and application count.
func (r *JobRepo) GetByID(ctx context.Context, id string) (*model.JobWithEmployer, error) {
	var out *model.JobWithEmployer
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, title, description, location, company, salary_min, salary_max,
			       status, employer_id, created_at, updated_at
			FROM jobs
			WHERE id = $1`, id)
		if err != nil {
			return err
		}
		job, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		rows.Close()
		if err != nil {
			return err
		}

		results, err := attachEmployerDetails(ctx, conn, []model.Job{job})
		if err != nil {
			return err
		}
		out = results[0]
		return nil
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job by ID: %w", err)
	}
	return out, nil
}

// ListByEmployer retrieves one page of an employer's own postings across all
// statuses, newest first, with the total count.
func (r *JobRepo) ListByEmployer(
	ctx context.Context,
	employerID string,
	limit, offset int,
) ([]*model.JobWithEmployer, int, error) {
	if limit <= 0 {
		limit = 10
	}
	offset = max(offset, 0)

	cond := database.WhereCond("employer_id", database.Equal, employerID)

	countQuery, countArgs := database.BuildListQuery(database.NewListQueryOptions("jobs",
		database.WithCountOnly(),
		database.WithCondition(cond),
	))
	pageQuery, pageArgs := database.BuildListQuery(database.NewListQueryOptions("jobs",
		database.WithColumns(jobColumns()...),
		database.WithCondition(cond),
		database.WithOrderBy("created_at", "DESC"),
		database.WithLimit(limit),
		database.WithOffset(offset),
	))

	var (
		total   int
		results []*model.JobWithEmployer
	)
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		if scanErr := conn.QueryRow(ctx, countQuery, countArgs...).Scan(&total); scanErr != nil {
			return scanErr
		}

		rows, err := conn.Query(ctx, pageQuery, pageArgs...)
		if err != nil {
			return err
		}
		jobs, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Job])
		rows.Close()
		if err != nil {
			return err
		}

		results, err = attachEmployerDetails(ctx, conn, jobs)
		return err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employer jobs: %w", err)
	}
	return results, total, nil
}

// Create inserts a new posting. New postings are always ACTIVE.
func (r *JobRepo) Create(
	ctx context.Context,
	employerID string,
	params *model.CreateJobParams,
) (*model.Job, error) {
	if params == nil {
		return nil, errors.New("create job params are required")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO jobs (title, description, location, company, salary_min, salary_max, status, employer_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
			RETURNING id, title, description, location, company, salary_min, salary_max, status, employer_id, created_at, updated_at`,
			strings.TrimSpace(params.Title),
			strings.TrimSpace(params.Description),
			strings.TrimSpace(params.Location),
			strings.TrimSpace(params.Company),
			params.SalaryMin,
			params.SalaryMax,
			model.JobStatusActive,
			employerID,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return &out, nil
}

// Update applies a partial update to a posting owned by employerID. Ownership
// is part of the WHERE clause, so updating someone else's posting reports
// ErrJobNotFound rather than leaking its existence.
func (r *JobRepo) Update(
	ctx context.Context,
	id, employerID string,
	params model.UpdateJobParams,
) (*model.Job, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var out model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		setClause, args := r.buildUpdateClause(params)
		if setClause == "" {
			rows, err := conn.Query(ctx, `
				SELECT id, title, description, location, company, salary_min, salary_max, status, employer_id, created_at, updated_at
				FROM jobs WHERE id = $1 AND employer_id = $2`, id, employerID)
			if err != nil {
				return err
			}
			defer rows.Close()
			var e error
			out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
			return e
		}
		args = append(args, id, employerID)
		query := "UPDATE jobs SET " + setClause +
			" WHERE id = $" + strconv.Itoa(len(args)-1) +
			" AND employer_id = $" + strconv.Itoa(len(args)) +
			" RETURNING id, title, description, location, company, salary_min, salary_max, status, employer_id, created_at, updated_at"
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return e
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return &out, nil
}

// Delete removes a posting owned by employerID. Returns false when no such
// posting exists for that employer.
func (r *JobRepo) Delete(ctx context.Context, id, employerID string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM jobs WHERE id = $1 AND employer_id = $2`, id, employerID)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete job: %w", err)
	}
	return rows > 0, nil
}

// --- helpers ---

// buildUpdateClause builds the SQL SET clause and args for a partial job update.
func (r *JobRepo) buildUpdateClause(params model.UpdateJobParams) (string, []any) {
	setParts := make([]string, 0, 8)
	args := make([]any, 0, 8)
	nextIdx := func() int { return len(args) + 1 }

	if params.Title != nil {
		setParts = append(setParts, fmt.Sprintf("title = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*params.Title))
	}
	if params.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*params.Description))
	}
	if params.Location != nil {
		setParts = append(setParts, fmt.Sprintf("location = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*params.Location))
	}
	if params.Company != nil {
		setParts = append(setParts, fmt.Sprintf("company = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*params.Company))
	}
	if params.SalaryMin != nil {
		setParts = append(setParts, fmt.Sprintf("salary_min = $%d", nextIdx()))
		args = append(args, *params.SalaryMin)
	}
	if params.SalaryMax != nil {
		setParts = append(setParts, fmt.Sprintf("salary_max = $%d", nextIdx()))
		args = append(args, *params.SalaryMax)
	}
	if params.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", nextIdx()))
		args = append(args, *params.Status)
	}

	if len(setParts) == 0 {
		return "", nil
	}

	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	return strings.Join(setParts, ", "), args
}

// buildJobConditions translates listing filters into query conditions.
func buildJobConditions(filters model.JobFilters, nullSalaryMatchesMax bool) []database.Condition {
	conds := make([]database.Condition, 0, 4)

	if q := strings.TrimSpace(filters.Search); q != "" {
		conds = append(conds, database.WhereRawCond(
			"(title ILIKE $1 OR description ILIKE $1 OR company ILIKE $1)",
			"%"+q+"%",
		))
	}
	if loc := strings.TrimSpace(filters.Location); loc != "" {
		conds = append(conds, database.WhereCond("location", database.ILike, "%"+loc+"%"))
	}
	if company := strings.TrimSpace(filters.Company); company != "" {
		conds = append(conds, database.WhereCond("company", database.ILike, "%"+company+"%"))
	}
	// Salary filters compare against the posting's own bounds: the floor
	// filter requires salary_min at or above it, the ceiling filter requires
	// salary_max at or below it. Postings missing the filtered bound never
	// match, unless the upper-bound policy is relaxed.
	if filters.SalaryMin != nil {
		conds = append(conds, database.WhereCond("salary_min", database.GreaterThanOrEqual, *filters.SalaryMin))
	}
	if filters.SalaryMax != nil {
		if nullSalaryMatchesMax {
			conds = append(conds, database.WhereRawCond(
				"(salary_max <= $1 OR salary_max IS NULL)",
				*filters.SalaryMax,
			))
		} else {
			conds = append(conds, database.WhereCond("salary_max", database.LessThanOrEqual, *filters.SalaryMax))
		}
	}

	return conds
}

// employerSummaryRow is the flat row shape for employer summaries.
type employerSummaryRow struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Email       string  `db:"email"`
	CompanyName *string `db:"company_name"`
}

// attachEmployerDetails joins employer summaries and live application counts
// onto a page of jobs, preserving order.
func attachEmployerDetails(ctx context.Context, conn *pgx.Conn, jobs []model.Job) ([]*model.JobWithEmployer, error) {
	results := make([]*model.JobWithEmployer, len(jobs))
	if len(jobs) == 0 {
		return results, nil
	}

	jobIDs := make([]string, len(jobs))
	employerIDs := make([]string, 0, len(jobs))
	seen := make(map[string]struct{}, len(jobs))
	for i, j := range jobs {
		jobIDs[i] = j.ID
		if _, ok := seen[j.EmployerID]; !ok {
			seen[j.EmployerID] = struct{}{}
			employerIDs = append(employerIDs, j.EmployerID)
		}
	}

	rows, err := conn.Query(ctx, `
		SELECT u.id, u.name, u.email, ep.company_name
		FROM users u
		LEFT JOIN employer_profiles ep ON ep.user_id = u.id
		WHERE u.id = ANY($1)`, employerIDs)
	if err != nil {
		return nil, err
	}
	employerRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[employerSummaryRow])
	rows.Close()
	if err != nil {
		return nil, err
	}
	employers := make(map[string]model.EmployerSummary, len(employerRows))
	for _, e := range employerRows {
		employers[e.ID] = model.EmployerSummary{
			ID:          e.ID,
			Name:        e.Name,
			Email:       e.Email,
			CompanyName: e.CompanyName,
		}
	}

	counts := make(map[string]int, len(jobIDs))
	countRows, err := conn.Query(ctx, `
		SELECT job_id, COUNT(*) AS n
		FROM applications
		WHERE job_id = ANY($1)
		GROUP BY job_id`, jobIDs)
	if err != nil {
		return nil, err
	}
	for countRows.Next() {
		var jobID string
		var n int
		if scanErr := countRows.Scan(&jobID, &n); scanErr != nil {
			countRows.Close()
			return nil, scanErr
		}
		counts[jobID] = n
	}
	iterErr := countRows.Err()
	countRows.Close()
	if iterErr != nil {
		return nil, iterErr
	}

	for i, j := range jobs {
		results[i] = &model.JobWithEmployer{
			Job:              j,
			Employer:         employers[j.EmployerID],
			ApplicationCount: counts[j.ID],
		}
	}
	return results, nil
}
