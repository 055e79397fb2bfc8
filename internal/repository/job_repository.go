package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobportal/internal/model"
)

// JobSort is an allow-listed ordering for job listings.
type JobSort int

const (
	SortNewest JobSort = iota
	SortOldest
	SortPostedDesc
	SortPostedAsc
)

var jobOrder = map[JobSort]string{
	SortNewest:     "created_at DESC",
	SortOldest:     "created_at ASC",
	SortPostedDesc: "posted_at DESC",
	SortPostedAsc:  "posted_at ASC",
}

// JobFilter narrows a job listing. Zero values disable a criterion. String
// criteria are compared case-insensitively except URL.
type JobFilter struct {
	Query          string
	Location       string
	WorkMode       model.WorkMode
	EmploymentType model.EmploymentType
	Role           string
	Level          model.Level
	CompanyID      *uuid.UUID
	CompanyName    string
	URL            string
	PostedByID     *uuid.UUID
	Sort           JobSort
}

// JobRepository defines job persistence operations.
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	Update(ctx context.Context, job *model.Job) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error)
	FindWithRelations(ctx context.Context, id uuid.UUID) (*model.Job, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByURL(ctx context.Context, url string, exclude uuid.UUID) (bool, error)
	List(ctx context.Context, filter JobFilter, page model.PageRequest) ([]model.Job, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DistinctLocations(ctx context.Context) ([]string, error)
	DistinctCompanyNames(ctx context.Context) ([]string, error)
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// WithJobRelations preloads the company and a public projection of the poster.
func WithJobRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Company").Preload("PostedBy", publicUserColumns)
}

func publicUserColumns(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email", "role")
}

// Create creates a new job record.
func (r *jobRepository) Create(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(job).Error
}

// Update writes every column of job.
func (r *jobRepository) Update(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(job).Error
}

// FindByID finds a job by ID without relations.
func (r *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var job model.Job
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// FindWithRelations finds a job by ID with company and poster.
func (r *jobRepository) FindWithRelations(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var job model.Job
	if err := r.db.WithContext(ctx).Scopes(WithJobRelations).Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Job{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByURL reports whether another job already uses url.
func (r *jobRepository) ExistsByURL(ctx context.Context, url string, exclude uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Job{}).
		Where("url = ? AND id <> ?", url, exclude).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns one page of jobs matching filter plus the total match count.
func (r *jobRepository) List(ctx context.Context, filter JobFilter, page model.PageRequest) ([]model.Job, int64, error) {
	base := func() *gorm.DB {
		return applyJobFilter(r.db.WithContext(ctx).Model(&model.Job{}), filter)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, ok := jobOrder[filter.Sort]
	if !ok {
		order = jobOrder[SortNewest]
	}

	var jobs []model.Job
	err := base().Scopes(WithJobRelations).
		Order(order).Order("id ASC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func applyJobFilter(q *gorm.DB, f JobFilter) *gorm.DB {
	if f.Query != "" {
		pattern := "%" + escapeLike(strings.ToLower(f.Query)) + "%"
		q = q.Where(
			"(LOWER(title) LIKE ? ESCAPE '!' OR LOWER(description) LIKE ? ESCAPE '!' OR LOWER(company_name) LIKE ? ESCAPE '!')",
			pattern, pattern, pattern,
		)
	}
	if f.Location != "" {
		q = q.Where("LOWER(location) = ?", strings.ToLower(f.Location))
	}
	if f.WorkMode != "" {
		q = q.Where("work_mode = ?", f.WorkMode)
	}
	if f.EmploymentType != "" {
		q = q.Where("employment_type = ?", f.EmploymentType)
	}
	if f.Role != "" {
		q = q.Where("LOWER(role) = ?", strings.ToLower(f.Role))
	}
	if f.Level != "" {
		q = q.Where("level = ?", f.Level)
	}
	switch {
	case f.CompanyID != nil && f.CompanyName != "":
		q = q.Where("(company_id = ? OR LOWER(company_name) = ?)", *f.CompanyID, strings.ToLower(f.CompanyName))
	case f.CompanyID != nil:
		q = q.Where("company_id = ?", *f.CompanyID)
	case f.CompanyName != "":
		q = q.Where("LOWER(company_name) = ?", strings.ToLower(f.CompanyName))
	}
	if f.URL != "" {
		q = q.Where("url = ?", f.URL)
	}
	if f.PostedByID != nil {
		q = q.Where("posted_by_id = ?", *f.PostedByID)
	}
	return q
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Delete removes the job with its applications and saved-job entries.
func (r *jobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&model.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", id).Delete(&model.SavedJob{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Job{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// DistinctLocations returns the non-empty job locations.
func (r *jobRepository) DistinctLocations(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "location")
}

// DistinctCompanyNames returns the non-empty free-form company names on jobs.
func (r *jobRepository) DistinctCompanyNames(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "company_name")
}

func (r *jobRepository) distinct(ctx context.Context, column string) ([]string, error) {
	var values []string
	err := r.db.WithContext(ctx).Model(&model.Job{}).
		Where(column+" IS NOT NULL AND "+column+" <> ''").
		Distinct().
		Pluck(column, &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}
