package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobportal/internal/model"
)

// ApplicationFilter selects the applications to list. PostedByID restricts
// to applications on jobs posted by that user.
type ApplicationFilter struct {
	JobID      *uuid.UUID
	UserID     *uuid.UUID
	PostedByID *uuid.UUID
}

// ApplicationRepository defines application persistence operations.
type ApplicationRepository interface {
	Create(ctx context.Context, app *model.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error)
	FindWithRelations(ctx context.Context, id uuid.UUID) (*model.Application, error)
	FindByJobAndUser(ctx context.Context, jobID, userID uuid.UUID) (*model.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.ApplicationStatus) error
	List(ctx context.Context, filter ApplicationFilter, page model.PageRequest) ([]model.Application, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func withApplicationRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Job").
		Preload("Job.Company").
		Preload("User", publicUserColumns)
}

// Create inserts the application. The (job_id, user_id) unique index
// rejects a second application for the same pair.
func (r *applicationRepository) Create(ctx context.Context, app *model.Application) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(app).Error
}

// FindByID finds an application by ID without relations.
func (r *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var app model.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// FindWithRelations finds an application with its job and applicant.
func (r *applicationRepository) FindWithRelations(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var app model.Application
	if err := r.db.WithContext(ctx).Scopes(withApplicationRelations).Where("id = ?", id).First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) FindByJobAndUser(ctx context.Context, jobID, userID uuid.UUID) (*model.Application, error) {
	var app model.Application
	if err := r.db.WithContext(ctx).Where("job_id = ? AND user_id = ?", jobID, userID).First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// UpdateStatus sets the status column only.
func (r *applicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ApplicationStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List returns one page of applications, newest first.
func (r *applicationRepository) List(ctx context.Context, filter ApplicationFilter, page model.PageRequest) ([]model.Application, int64, error) {
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&model.Application{})
		if filter.JobID != nil {
			q = q.Where("job_id = ?", *filter.JobID)
		}
		if filter.UserID != nil {
			q = q.Where("user_id = ?", *filter.UserID)
		}
		if filter.PostedByID != nil {
			postedJobs := r.db.Model(&model.Job{}).Select("id").Where("posted_by_id = ?", *filter.PostedByID)
			q = q.Where("job_id IN (?)", postedJobs)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []model.Application
	err := base().Scopes(withApplicationRelations).
		Order("created_at DESC").Order("id ASC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (r *applicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Application{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
