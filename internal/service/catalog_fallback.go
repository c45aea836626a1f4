package service

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/qatalent/jobboard/internal/data"
	"github.com/qatalent/jobboard/internal/domain/model"
)

// FallbackCatalog serves a static set of postings when the database is
// unreachable, so the public listing degrades instead of failing. It mirrors
// the SQL listing semantics exactly: same filters, same ordering, same
// salary-null policy.
type FallbackCatalog struct {
	jobs                 []*model.JobWithEmployer
	nullSalaryMatchesMax bool
}

// FallbackCatalogOptions configures fallback catalog construction.
type FallbackCatalogOptions struct {
	// Path points to a JSON file holding the seed postings. Empty means the
	// compiled-in seed.
	Path string

	// NullSalaryMatchesMax mirrors the live catalog's upper-bound policy.
	NullSalaryMatchesMax bool
}

// NewFallbackCatalog loads the seed postings once at startup.
func NewFallbackCatalog(opts FallbackCatalogOptions) (*FallbackCatalog, error) {
	jobs := defaultSeedJobs()
	if opts.Path != "" {
		loaded, err := loadSeedFile(opts.Path)
		if err != nil {
			return nil, fmt.Errorf("load fallback catalog: %w", err)
		}
		jobs = loaded
	}

	// Newest first, matching the live listing order.
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})

	return &FallbackCatalog{
		jobs:                 jobs,
		nullSalaryMatchesMax: opts.NullSalaryMatchesMax,
	}, nil
}

// List returns one page of seed postings matching the filters.
func (c *FallbackCatalog) List(filters model.JobFilters, page, pageSize int) *model.JobPage {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	matched := make([]*model.JobWithEmployer, 0, len(c.jobs))
	for _, j := range c.jobs {
		if c.matches(j, filters) {
			matched = append(matched, j)
		}
	}

	total := len(matched)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := min(start+pageSize, total)

	return &model.JobPage{
		Items:      matched[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: model.PageCount(total, pageSize),
	}
}

// GetByID returns a seed posting by id, or data.ErrJobNotFound.
func (c *FallbackCatalog) GetByID(id string) (*model.JobWithEmployer, error) {
	for _, j := range c.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, data.ErrJobNotFound
}

// matches applies the listing filters to one posting, mirroring the SQL
// WHERE clause semantics.
func (c *FallbackCatalog) matches(j *model.JobWithEmployer, f model.JobFilters) bool {
	if j.Status != model.JobStatusActive {
		return false
	}
	if q := strings.TrimSpace(f.Search); q != "" {
		if !containsFold(j.Title, q) && !containsFold(j.Description, q) && !containsFold(j.Company, q) {
			return false
		}
	}
	if loc := strings.TrimSpace(f.Location); loc != "" && !containsFold(j.Location, loc) {
		return false
	}
	if company := strings.TrimSpace(f.Company); company != "" && !containsFold(j.Company, company) {
		return false
	}
	if f.SalaryMin != nil {
		if j.SalaryMin == nil || *j.SalaryMin < *f.SalaryMin {
			return false
		}
	}
	if f.SalaryMax != nil {
		if j.SalaryMax == nil {
			if !c.nullSalaryMatchesMax {
				return false
			}
		} else if *j.SalaryMax > *f.SalaryMax {
			return false
		}
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// loadSeedFile reads seed postings from a JSON file. Missing statuses default
// to ACTIVE so hand-maintained seed files stay terse.
func loadSeedFile(path string) ([]*model.JobWithEmployer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var jobs []*model.JobWithEmployer
	if err := json.Unmarshal(raw, &jobs); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	for _, j := range jobs {
		if j.Status == "" {
			j.Status = model.JobStatusActive
		}
	}
	return jobs, nil
}

// defaultSeedJobs is the compiled-in seed served when no seed file is
// configured.
func defaultSeedJobs() []*model.JobWithEmployer {
	base := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	seed := func(n int, title, company, location, description string, salaryMin, salaryMax int) *model.JobWithEmployer {
		return &model.JobWithEmployer{
			Job: model.Job{
				ID:          fmt.Sprintf("seed-%d", n),
				Title:       title,
				Description: description,
				Location:    location,
				Company:     company,
				SalaryMin:   &salaryMin,
				SalaryMax:   &salaryMax,
				Status:      model.JobStatusActive,
				EmployerID:  fmt.Sprintf("seed-employer-%d", n),
				CreatedAt:   base.Add(time.Duration(n) * time.Hour),
				UpdatedAt:   base.Add(time.Duration(n) * time.Hour),
			},
			Employer: model.EmployerSummary{
				ID:          fmt.Sprintf("seed-employer-%d", n),
				Name:        company,
				CompanyName: &company,
			},
		}
	}

	return []*model.JobWithEmployer{
		seed(1, "Frontend Developer", "Doha Tech", "Doha, Qatar",
			"Build and maintain web interfaces for our customer portal.", 9000, 15000),
		seed(2, "Backend Engineer", "Qatar Cloud", "Doha, Qatar",
			"Design and operate Go services backing our platform APIs.", 10000, 17000),
		seed(3, "Product Designer", "Gulf Design Studio", "Al Wakrah, Qatar",
			"Own product design from research through high-fidelity prototypes.", 8000, 14000),
	}
}
