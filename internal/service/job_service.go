package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"jobportal/internal/auth"
	apperrors "jobportal/internal/errors"
	"jobportal/internal/model"
	"jobportal/internal/repository"
)

const (
	defaultJobRole      = "fullstack"
	defaultSalaryPeriod = "month"
)

// ErrDuplicateJobURL is returned when another job already uses the url.
var ErrDuplicateJobURL = apperrors.Conflict("a job with this url already exists")

// JobInput holds the writable job fields. Nil fields are left unchanged on
// update. WorkMode and EmploymentType are accepted as aliases of Type.
type JobInput struct {
	Title           *string
	Description     *string
	Location        *string
	Type            *string
	WorkMode        *string
	EmploymentType  *string
	Role            *string
	Level           *string
	SalaryMin       *decimal.Decimal
	SalaryMax       *decimal.Decimal
	SalaryPeriod    *string
	ExperienceYears *int
	CompanyID       *string
	CompanyName     *string
	Image           *string
	Source          *string
	URL             *string
	PostedAt        *time.Time
}

// JobQuery holds the raw list parameters.
type JobQuery struct {
	Q        string
	Location string
	Type     string
	Role     string
	Level    string
	Company  string
	URL      string
	Sort     string
	Page     int
	Limit    int
}

// JobService exposes the job catalog.
type JobService interface {
	Create(ctx context.Context, caller auth.Identity, in JobInput) (*model.Job, error)
	List(ctx context.Context, q JobQuery) (model.Page[model.Job], error)
	Get(ctx context.Context, id uuid.UUID) (*model.Job, error)
	Update(ctx context.Context, caller auth.Identity, id uuid.UUID, in JobInput) (*model.Job, error)
	Delete(ctx context.Context, caller auth.Identity, id uuid.UUID) error
	ListMine(ctx context.Context, caller auth.Identity, page model.PageRequest) (model.Page[model.Job], error)
}

type jobService struct {
	jobs      repository.JobRepository
	companies repository.CompanyRepository
	now       func() time.Time
}

// NewJobService builds a JobService.
func NewJobService(jobs repository.JobRepository, companies repository.CompanyRepository) JobService {
	return &jobService{jobs: jobs, companies: companies, now: time.Now}
}

var sortParams = map[string]repository.JobSort{
	"":           repository.SortNewest,
	"newest":     repository.SortNewest,
	"-createdAt": repository.SortNewest,
	"oldest":     repository.SortOldest,
	"createdAt":  repository.SortOldest,
	"-postedAt":  repository.SortPostedDesc,
	"postedAt":   repository.SortPostedAsc,
}

// Create stores a new posting owned by caller.
func (s *jobService) Create(ctx context.Context, caller auth.Identity, in JobInput) (*model.Job, error) {
	if err := auth.Authorize(auth.ActionJobCreate, caller, caller.UserID); err != nil {
		return nil, err
	}
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		return nil, apperrors.Validation("title is required")
	}

	job := &model.Job{
		Role:         defaultJobRole,
		Level:        model.LevelMid,
		SalaryPeriod: defaultSalaryPeriod,
		PostedByID:   caller.UserID,
	}
	if err := s.apply(ctx, job, in); err != nil {
		return nil, err
	}
	if job.PostedAt.IsZero() {
		job.PostedAt = s.now()
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateJobURL
		}
		return nil, internal("create job", err)
	}
	return s.Get(ctx, job.ID)
}

// List returns one filtered page of jobs.
func (s *jobService) List(ctx context.Context, q JobQuery) (model.Page[model.Job], error) {
	page := model.NewPageRequest(q.Page, q.Limit)

	filter, err := s.filter(ctx, q)
	if err != nil {
		return model.Page[model.Job]{}, err
	}

	jobs, total, err := s.jobs.List(ctx, filter, page)
	if err != nil {
		return model.Page[model.Job]{}, internal("list jobs", err)
	}
	return model.NewPage(jobs, total, page), nil
}

func (s *jobService) filter(ctx context.Context, q JobQuery) (repository.JobFilter, error) {
	var f repository.JobFilter

	sort, ok := sortParams[strings.TrimSpace(q.Sort)]
	if !ok {
		return f, apperrors.Validation("invalid sort")
	}
	f.Sort = sort

	f.Query = filterValue(q.Q)
	f.Location = filterValue(q.Location)
	f.Role = filterValue(q.Role)
	f.URL = filterValue(q.URL)

	if v := filterValue(q.Type); v != "" {
		mode, emp, ok := model.ParseJobType(strings.ToLower(v))
		if !ok {
			return f, apperrors.Validation("invalid job type")
		}
		f.WorkMode, f.EmploymentType = mode, emp
	}
	if v := filterValue(q.Level); v != "" {
		level := model.Level(strings.ToLower(v))
		if !level.Valid() {
			return f, apperrors.Validation("invalid level")
		}
		f.Level = level
	}

	if v := filterValue(q.Company); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			f.CompanyID = &id
		} else {
			f.CompanyName = v
			company, err := s.companies.FindByName(ctx, v)
			switch {
			case err == nil:
				f.CompanyID = &company.ID
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return f, internal("find company", err)
			}
		}
	}
	return f, nil
}

// filterValue treats "all" and blank values as no filter.
func filterValue(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "all") {
		return ""
	}
	return v
}

// Get returns a job with its company and poster.
func (s *jobService) Get(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	job, err := s.jobs.FindWithRelations(ctx, id)
	if err != nil {
		return nil, lookupError(err, ErrJobNotFound, "find job")
	}
	return job, nil
}

// Update merges the supplied fields into the job.
func (s *jobService) Update(ctx context.Context, caller auth.Identity, id uuid.UUID, in JobInput) (*model.Job, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, ErrJobNotFound, "find job")
	}
	if err := auth.Authorize(auth.ActionJobUpdate, caller, job.PostedByID); err != nil {
		return nil, err
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, apperrors.Validation("title is required")
	}

	if err := s.apply(ctx, job, in); err != nil {
		return nil, err
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateJobURL
		}
		return nil, internal("update job", err)
	}
	return s.Get(ctx, job.ID)
}

// Delete removes the job with its applications and saved entries.
func (s *jobService) Delete(ctx context.Context, caller auth.Identity, id uuid.UUID) error {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return lookupError(err, ErrJobNotFound, "find job")
	}
	if err := auth.Authorize(auth.ActionJobDelete, caller, job.PostedByID); err != nil {
		return err
	}
	if err := s.jobs.Delete(ctx, job.ID); err != nil {
		return lookupError(err, ErrJobNotFound, "delete job")
	}
	return nil
}

// ListMine returns the caller's postings, newest first.
func (s *jobService) ListMine(ctx context.Context, caller auth.Identity, page model.PageRequest) (model.Page[model.Job], error) {
	if err := auth.Authorize(auth.ActionJobListMine, caller, caller.UserID); err != nil {
		return model.Page[model.Job]{}, err
	}
	jobs, total, err := s.jobs.List(ctx, repository.JobFilter{PostedByID: &caller.UserID}, page)
	if err != nil {
		return model.Page[model.Job]{}, internal("list jobs", err)
	}
	return model.NewPage(jobs, total, page), nil
}

// apply copies the supplied fields onto job and normalizes them.
func (s *jobService) apply(ctx context.Context, job *model.Job, in JobInput) error {
	if in.Title != nil {
		job.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		job.Description = *in.Description
	}
	if in.Location != nil {
		job.Location = strings.TrimSpace(*in.Location)
	}

	if t := firstSet(in.Type, in.WorkMode, in.EmploymentType); t != nil {
		if !job.SetType(strings.ToLower(strings.TrimSpace(*t))) {
			return apperrors.Validation("invalid job type")
		}
	}

	if in.Role != nil {
		job.Role = strings.TrimSpace(*in.Role)
	}
	if in.Level != nil {
		level := model.Level(strings.ToLower(strings.TrimSpace(*in.Level)))
		if !level.Valid() {
			return apperrors.Validation("invalid level")
		}
		job.Level = level
	}

	if in.SalaryMin != nil {
		job.SalaryMin = decimal.NewNullDecimal(*in.SalaryMin)
	}
	if in.SalaryMax != nil {
		job.SalaryMax = decimal.NewNullDecimal(*in.SalaryMax)
	}
	if job.SalaryMin.Valid && job.SalaryMax.Valid && job.SalaryMin.Decimal.GreaterThan(job.SalaryMax.Decimal) {
		return apperrors.Validation("salaryMin cannot exceed salaryMax")
	}
	if in.SalaryPeriod != nil {
		job.SalaryPeriod = strings.TrimSpace(*in.SalaryPeriod)
	}
	if in.ExperienceYears != nil {
		if *in.ExperienceYears < 0 {
			return apperrors.Validation("experienceYears cannot be negative")
		}
		job.ExperienceYears = *in.ExperienceYears
	}

	if in.CompanyName != nil {
		job.CompanyName = strings.TrimSpace(*in.CompanyName)
		// A free-form name replaces any linked company.
		if in.CompanyID == nil {
			job.CompanyID = nil
		}
	}
	if in.CompanyID != nil {
		if err := s.attachCompany(ctx, job, strings.TrimSpace(*in.CompanyID)); err != nil {
			return err
		}
	}

	if in.Image != nil {
		job.Image = strings.TrimSpace(*in.Image)
	}
	if in.Source != nil {
		job.Source = strings.TrimSpace(*in.Source)
	}
	if in.URL != nil {
		if err := s.setURL(ctx, job, strings.TrimSpace(*in.URL)); err != nil {
			return err
		}
	}
	if in.PostedAt != nil {
		job.PostedAt = *in.PostedAt
	}
	return nil
}

// attachCompany links the job to a company and copies its name. An empty
// id detaches the job.
func (s *jobService) attachCompany(ctx context.Context, job *model.Job, raw string) error {
	if raw == "" {
		job.CompanyID = nil
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return apperrors.Validation("invalid company id")
	}
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return lookupError(err, ErrCompanyNotFound, "find company")
	}
	job.CompanyID = &company.ID
	job.CompanyName = company.Name
	return nil
}

// setURL stores a non-empty url, rejecting one another job already uses.
func (s *jobService) setURL(ctx context.Context, job *model.Job, url string) error {
	if url == "" {
		job.URL = nil
		return nil
	}
	taken, err := s.jobs.ExistsByURL(ctx, url, job.ID)
	if err != nil {
		return internal("check job url", err)
	}
	if taken {
		return ErrDuplicateJobURL
	}
	job.URL = &url
	return nil
}

func firstSet(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
