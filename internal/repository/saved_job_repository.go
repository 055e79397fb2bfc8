package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobportal/internal/model"
)

// SavedJobRepository stores each user's set of bookmarked jobs.
type SavedJobRepository interface {
	Add(ctx context.Context, userID, jobID uuid.UUID) error
	Remove(ctx context.Context, userID, jobID uuid.UUID) error
	Contains(ctx context.Context, userID, jobID uuid.UUID) (bool, error)
	ListJobs(ctx context.Context, userID uuid.UUID, page model.PageRequest) ([]model.Job, int64, error)
}

type savedJobRepository struct {
	db *gorm.DB
}

// NewSavedJobRepository creates a new saved-job repository.
func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &savedJobRepository{db: db}
}

// Add inserts the pair unless it is already present.
func (r *savedJobRepository) Add(ctx context.Context, userID, jobID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.SavedJob{UserID: userID, JobID: jobID}).Error
}

// Remove deletes the pair; removing an absent pair is not an error.
func (r *savedJobRepository) Remove(ctx context.Context, userID, jobID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Delete(&model.SavedJob{}).Error
}

func (r *savedJobRepository) Contains(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SavedJob{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListJobs returns one page of the user's saved jobs, newest job first.
func (r *savedJobRepository) ListJobs(ctx context.Context, userID uuid.UUID, page model.PageRequest) ([]model.Job, int64, error) {
	base := func() *gorm.DB {
		saved := r.db.Model(&model.SavedJob{}).Select("job_id").Where("user_id = ?", userID)
		return r.db.WithContext(ctx).Model(&model.Job{}).Where("id IN (?)", saved)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []model.Job
	err := base().Scopes(WithJobRelations).
		Order("created_at DESC").Order("id ASC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}
