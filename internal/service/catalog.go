package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/qatalent/jobboard/internal/core"
	"github.com/qatalent/jobboard/internal/data"
	"github.com/qatalent/jobboard/internal/domain/model"
)

// CatalogServiceOptions groups dependencies for CatalogService.
type CatalogServiceOptions struct {
	Jobs     core.JobRepository
	Fallback *FallbackCatalog
	Logger   *slog.Logger

	// FallbackEnabled turns public reads fail-soft: repository failures are
	// answered from the fallback set instead of surfacing.
	FallbackEnabled bool

	DefaultPageSize int
	MaxPageSize     int
}

// CatalogService serves the public job catalog and the employer's own
// posting management. Public reads degrade to a static fallback set when the
// database is unreachable; authenticated employer operations fail hard.
type CatalogService struct {
	jobs            core.JobRepository
	fallback        *FallbackCatalog
	logger          *slog.Logger
	fallbackEnabled bool
	defaultPageSize int
	maxPageSize     int
}

// NewCatalogService constructs a new CatalogService.
func NewCatalogService(opts CatalogServiceOptions) *CatalogService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	defaultPageSize := opts.DefaultPageSize
	if defaultPageSize <= 0 {
		defaultPageSize = 10
	}
	maxPageSize := opts.MaxPageSize
	if maxPageSize <= 0 {
		maxPageSize = 100
	}
	return &CatalogService{
		jobs:            opts.Jobs,
		fallback:        opts.Fallback,
		logger:          logger.With("component", "catalog"),
		fallbackEnabled: opts.FallbackEnabled && opts.Fallback != nil,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// normalizePage clamps caller-supplied paging to configured bounds.
func (s *CatalogService) normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = s.defaultPageSize
	}
	if pageSize > s.maxPageSize {
		pageSize = s.maxPageSize
	}
	return page, pageSize
}

// List returns one page of ACTIVE postings matching the filters, newest
// first. When fallback is enabled, repository failures degrade to the seed
// set with identical filter semantics instead of erroring.
func (s *CatalogService) List(
	ctx context.Context,
	filters model.JobFilters,
	page, pageSize int,
) (*model.JobPage, error) {
	page, pageSize = s.normalizePage(page, pageSize)

	items, total, err := s.jobs.ListActive(ctx, filters, pageSize, (page-1)*pageSize)
	if err != nil {
		if !s.fallbackEnabled {
			return nil, err
		}
		s.logger.Warn("job listing degraded to fallback catalog", "error", err)
		return s.fallback.List(filters, page, pageSize), nil
	}

	return &model.JobPage{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: model.PageCount(total, pageSize),
	}, nil
}

// GetByID returns a posting with its employer summary and application count,
// or data.ErrJobNotFound. Backend failures degrade to the fallback set.
func (s *CatalogService) GetByID(ctx context.Context, id string) (*model.JobWithEmployer, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err == nil {
		return job, nil
	}
	if errors.Is(err, data.ErrJobNotFound) || !s.fallbackEnabled {
		return nil, err
	}
	s.logger.Warn("job lookup degraded to fallback catalog", "job_id", id, "error", err)
	return s.fallback.GetByID(id)
}

// ListByEmployer returns one page of the employer's own postings across all
// statuses, newest first. This is an authenticated surface and fails hard.
func (s *CatalogService) ListByEmployer(
	ctx context.Context,
	employerID string,
	page, pageSize int,
) (*model.JobPage, error) {
	if employerID == "" {
		return nil, errors.New("employer id is required")
	}
	page, pageSize = s.normalizePage(page, pageSize)

	items, total, err := s.jobs.ListByEmployer(ctx, employerID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	return &model.JobPage{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: model.PageCount(total, pageSize),
	}, nil
}

// Create publishes a new posting for the employer. New postings are always
// ACTIVE.
func (s *CatalogService) Create(
	ctx context.Context,
	employerID string,
	params *model.CreateJobParams,
) (*model.Job, error) {
	if employerID == "" {
		return nil, errors.New("employer id is required")
	}
	if params == nil {
		return nil, errors.New("create job params are required")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.jobs.Create(ctx, employerID, params)
}

// Update applies a partial update to an employer's own posting. Updating a
// posting the employer does not own reports data.ErrJobNotFound.
func (s *CatalogService) Update(
	ctx context.Context,
	jobID, employerID string,
	params model.UpdateJobParams,
) (*model.Job, error) {
	if jobID == "" || employerID == "" {
		return nil, errors.New("job id and employer id are required")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.jobs.Update(ctx, jobID, employerID, params)
}

// Delete removes an employer's own posting. Returns false when the posting
// does not exist for that employer.
func (s *CatalogService) Delete(ctx context.Context, jobID, employerID string) (bool, error) {
	if jobID == "" || employerID == "" {
		return false, errors.New("job id and employer id are required")
	}
	return s.jobs.Delete(ctx, jobID, employerID)
}
