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
	domainauth "github.com/qatalent/jobboard/internal/domain/auth"
	"github.com/qatalent/jobboard/internal/domain/model"
)

// UserRepo provides database operations for users and their role profiles.
type UserRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewUserRepo creates a new UserRepo with the real time provider.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewUserRepoWithTimeProvider creates a new UserRepo with a custom time provider (useful for tests).
func NewUserRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *UserRepo {
	return &UserRepo{DB: db, timeProvider: tp}
}

const userColumns = `id, auth_subject_id, email, name, role, image_url, created_at, updated_at`

// Create inserts a new user provisioned from an external identity.
func (r *UserRepo) Create(ctx context.Context, params *model.ProvisionUserParams) (*model.User, error) {
	if params == nil {
		return nil, errors.New("provision user params are required")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO users (auth_subject_id, email, name, role, image_url, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $6)
			RETURNING `+userColumns,
			strings.TrimSpace(params.AuthSubjectID),
			strings.TrimSpace(params.Email),
			strings.TrimSpace(params.Name),
			params.Role,
			params.ImageURL,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// GetByID retrieves a user by internal ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.getByQuery(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, "failed to get user by ID", id)
}

// GetByAuthSubjectID retrieves a user by the identity provider's subject.
func (r *UserRepo) GetByAuthSubjectID(ctx context.Context, subjectID string) (*model.User, error) {
	return r.getByQuery(ctx,
		`SELECT `+userColumns+` FROM users WHERE auth_subject_id = $1`,
		"failed to get user by auth subject", subjectID)
}

// GetWithProfiles retrieves a user together with whichever role profile exists.
func (r *UserRepo) GetWithProfiles(ctx context.Context, id string) (*model.UserWithProfiles, error) {
	var out model.UserWithProfiles
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
		if err != nil {
			return err
		}
		user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		rows.Close()
		if err != nil {
			return err
		}
		out.User = user

		switch user.Role {
		case domainauth.RoleJobSeeker:
			out.JobSeekerProfile, err = collectOptional[model.JobSeekerProfile](ctx, conn, `
				SELECT id, user_id, bio, skills, resume_url, created_at, updated_at
				FROM job_seeker_profiles WHERE user_id = $1`, id)
		case domainauth.RoleEmployer:
			out.EmployerProfile, err = collectOptional[model.EmployerProfile](ctx, conn, `
				SELECT id, user_id, company_name, website, description, created_at, updated_at
				FROM employer_profiles WHERE user_id = $1`, id)
		}
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user with profiles: %w", err)
	}
	return &out, nil
}

// UpsertJobSeekerProfile creates or replaces the 1:1 job seeker profile.
func (r *UserRepo) UpsertJobSeekerProfile(
	ctx context.Context,
	userID string,
	params *model.JobSeekerProfileParams,
) (*model.JobSeekerProfile, error) {
	if params == nil {
		return nil, errors.New("job seeker profile params are required")
	}

	skills := params.Skills
	if skills == nil {
		skills = []string{}
	}

	now := r.timeProvider.Now().UTC()
	var out model.JobSeekerProfile
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO job_seeker_profiles (user_id, bio, skills, resume_url, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
			ON CONFLICT (user_id) DO UPDATE SET
				bio = EXCLUDED.bio,
				skills = EXCLUDED.skills,
				resume_url = EXCLUDED.resume_url,
				updated_at = EXCLUDED.updated_at
			RETURNING id, user_id, bio, skills, resume_url, created_at, updated_at`,
			userID, params.Bio, skills, params.ResumeURL, now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobSeekerProfile])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// UpsertEmployerProfile creates or replaces the 1:1 employer profile.
func (r *UserRepo) UpsertEmployerProfile(
	ctx context.Context,
	userID string,
	params *model.EmployerProfileParams,
) (*model.EmployerProfile, error) {
	if params == nil {
		return nil, errors.New("employer profile params are required")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.EmployerProfile
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO employer_profiles (user_id, company_name, website, description, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
			ON CONFLICT (user_id) DO UPDATE SET
				company_name = EXCLUDED.company_name,
				website = EXCLUDED.website,
				description = EXCLUDED.description,
				updated_at = EXCLUDED.updated_at
			RETURNING id, user_id, company_name, website, description, created_at, updated_at`,
			userID, strings.TrimSpace(params.CompanyName), params.Website, params.Description, now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.EmployerProfile])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// Stats counts accounts by role.
func (r *UserRepo) Stats(ctx context.Context) (*model.UserStats, error) {
	var stats model.UserStats
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `
			SELECT COUNT(*),
			       COUNT(*) FILTER (WHERE role = 'JOBSEEKER'),
			       COUNT(*) FILTER (WHERE role = 'EMPLOYER'),
			       COUNT(*) FILTER (WHERE role = 'ADMIN')
			FROM users`,
		).Scan(&stats.Total, &stats.JobSeekers, &stats.Employers, &stats.Admins)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}
	return &stats, nil
}

// --- helpers ---

func (r *UserRepo) getByQuery(ctx context.Context, q, errMsg string, args ...any) (*model.User, error) {
	var user model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		user, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return &user, nil
}

func (r *UserRepo) mapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrUserExists
	}
	return err
}

// collectOptional returns a pointer to the single matching row, or nil when absent.
func collectOptional[T any](ctx context.Context, conn *pgx.Conn, q string, args ...any) (*T, error) {
	rows, err := conn.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}
