// Package devseed populates a development database with a ready-to-use
// employer account and a handful of job postings so the catalog is not empty
// on first boot. It only runs in dev mode and is idempotent.
package devseed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/qatalent/jobboard/config"
	"github.com/qatalent/jobboard/internal/data"
	domainauth "github.com/qatalent/jobboard/internal/domain/auth"
	"github.com/qatalent/jobboard/internal/domain/model"
)

func intPtr(v int) *int { return &v }

var seedJobs = []*model.CreateJobParams{
	{
		Title:       "Frontend Developer",
		Description: "Build and maintain the customer-facing job board UI.",
		Location:    "Doha, Qatar",
		Company:     "Doha Tech",
		SalaryMin:   intPtr(9000),
		SalaryMax:   intPtr(15000),
	},
	{
		Title:       "Backend Engineer",
		Description: "Design and operate the APIs behind the job board.",
		Location:    "Doha, Qatar",
		Company:     "Qatar Cloud",
		SalaryMin:   intPtr(10000),
		SalaryMax:   intPtr(17000),
	},
	{
		Title:       "Product Designer",
		Description: "Own the end-to-end design of the hiring experience.",
		Location:    "Al Wakrah, Qatar",
		Company:     "Gulf Design Studio",
		SalaryMin:   intPtr(8000),
		SalaryMax:   intPtr(14000),
	},
}

// Run seeds the dev employer account and sample postings. Safe to call on
// every startup; existing data is left untouched.
func Run(ctx context.Context, db *sql.DB, cfg *config.AppConfig, logger *slog.Logger) error {
	if cfg == nil || !cfg.IsDev {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "devseed")

	users := data.NewUserRepo(db)
	jobs := data.NewJobRepo(db)

	employer, err := ensureDevEmployer(ctx, users, cfg.Auth.DevAuth, logger)
	if err != nil {
		return err
	}

	return ensureSeedJobs(ctx, jobs, employer, logger)
}

func ensureDevEmployer(
	ctx context.Context,
	users *data.UserRepo,
	devAuth config.DevAuthConfig,
	logger *slog.Logger,
) (*model.User, error) {
	existing, err := users.GetByAuthSubjectID(ctx, devAuth.SubjectID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, data.ErrUserNotFound) {
		return nil, fmt.Errorf("look up dev employer: %w", err)
	}

	user, err := users.Create(ctx, &model.ProvisionUserParams{
		AuthSubjectID: devAuth.SubjectID,
		Email:         devAuth.Email,
		Name:          devAuth.Name,
		Role:          domainauth.RoleEmployer,
	})
	if err != nil {
		if errors.Is(err, data.ErrUserExists) {
			// Lost a race with another seeding process; re-read the winner.
			return users.GetByAuthSubjectID(ctx, devAuth.SubjectID)
		}
		return nil, fmt.Errorf("create dev employer: %w", err)
	}

	if _, profileErr := users.UpsertEmployerProfile(ctx, user.ID, &model.EmployerProfileParams{
		CompanyName: "Doha Tech",
	}); profileErr != nil {
		return nil, fmt.Errorf("create dev employer profile: %w", profileErr)
	}

	logger.InfoContext(ctx, "seeded dev employer", "user_id", user.ID, "email", user.Email)
	return user, nil
}

func ensureSeedJobs(ctx context.Context, jobs *data.JobRepo, employer *model.User, logger *slog.Logger) error {
	_, total, err := jobs.ListByEmployer(ctx, employer.ID, 1, 0)
	if err != nil {
		return fmt.Errorf("count dev employer jobs: %w", err)
	}
	if total > 0 {
		return nil
	}

	for _, params := range seedJobs {
		if _, createErr := jobs.Create(ctx, employer.ID, params); createErr != nil {
			return fmt.Errorf("seed job %q: %w", params.Title, createErr)
		}
	}

	logger.InfoContext(ctx, "seeded sample jobs", "count", len(seedJobs), "employer_id", employer.ID)
	return nil
}
