package service

import (
	"context"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"jobportal/internal/repository"
)

// Filters lists the values the job search UI offers.
type Filters struct {
	Locations []string `json:"locations"`
	Companies []string `json:"companies"`
}

// FilterService aggregates distinct filter values.
type FilterService interface {
	Filters(ctx context.Context) (*Filters, error)
	DistinctLocations(ctx context.Context) ([]string, error)
	DistinctCompanyNames(ctx context.Context) ([]string, error)
}

type filterService struct {
	jobs      repository.JobRepository
	companies repository.CompanyRepository
}

// NewFilterService builds a FilterService.
func NewFilterService(jobs repository.JobRepository, companies repository.CompanyRepository) FilterService {
	return &filterService{jobs: jobs, companies: companies}
}

func (s *filterService) Filters(ctx context.Context) (*Filters, error) {
	locations, err := s.DistinctLocations(ctx)
	if err != nil {
		return nil, err
	}
	companies, err := s.DistinctCompanyNames(ctx)
	if err != nil {
		return nil, err
	}
	return &Filters{Locations: locations, Companies: companies}, nil
}

// DistinctLocations returns every non-empty job location.
func (s *filterService) DistinctLocations(ctx context.Context) ([]string, error) {
	locations, err := s.jobs.DistinctLocations(ctx)
	if err != nil {
		return nil, internal("list locations", err)
	}
	return sortedDistinct(locations), nil
}

// DistinctCompanyNames prefers the company directory and falls back to
// the names stored on jobs when the directory is empty.
func (s *filterService) DistinctCompanyNames(ctx context.Context) ([]string, error) {
	names, err := s.companies.Names(ctx)
	if err != nil {
		return nil, internal("list company names", err)
	}
	if names = sortedDistinct(names); len(names) > 0 {
		return names, nil
	}

	names, err = s.jobs.DistinctCompanyNames(ctx)
	if err != nil {
		return nil, internal("list job company names", err)
	}
	return sortedDistinct(names), nil
}

// sortedDistinct trims, drops blanks and duplicates, and sorts with an
// English case-insensitive collator.
func sortedDistinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	collate.New(language.English, collate.IgnoreCase).SortStrings(out)
	return out
}
