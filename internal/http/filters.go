package httpx

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/qatalent/jobboard/internal/domain/model"
)

// Paging carries normalized page/limit query parameters. Zero values mean
// "use the service defaults".
type Paging struct {
	Page  int
	Limit int
}

// ParsePaging reads page and limit from the query string. Malformed or
// non-positive values fall back to zero rather than erroring, matching the
// forgiving behavior of the public listing.
func ParsePaging(r *http.Request) Paging {
	return Paging{
		Page:  positiveIntParam(r, "page"),
		Limit: positiveIntParam(r, "limit"),
	}
}

// ParseJobFilters reads catalog filter parameters from the query string.
func ParseJobFilters(r *http.Request) model.JobFilters {
	q := r.URL.Query()
	filters := model.JobFilters{
		Search:   strings.TrimSpace(q.Get("search")),
		Location: strings.TrimSpace(q.Get("location")),
		Company:  strings.TrimSpace(q.Get("company")),
	}
	if v := positiveIntParamOK(r, "salary_min"); v != nil {
		filters.SalaryMin = v
	}
	if v := positiveIntParamOK(r, "salary_max"); v != nil {
		filters.SalaryMax = v
	}
	return filters
}

func positiveIntParam(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0
	}
	return n
}

func positiveIntParamOK(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}
