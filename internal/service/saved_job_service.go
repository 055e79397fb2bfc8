package service

import (
	"context"

	"github.com/google/uuid"

	"jobportal/internal/auth"
	"jobportal/internal/model"
	"jobportal/internal/repository"
)

// SavedJobService manages a user's saved-jobs set.
type SavedJobService interface {
	IsSaved(ctx context.Context, caller auth.Identity, jobID uuid.UUID) (bool, error)
	Save(ctx context.Context, caller auth.Identity, jobID uuid.UUID) error
	Unsave(ctx context.Context, caller auth.Identity, jobID uuid.UUID) error
	List(ctx context.Context, caller auth.Identity, page model.PageRequest) (model.Page[model.Job], error)
}

type savedJobService struct {
	saved repository.SavedJobRepository
	jobs  repository.JobRepository
}

// NewSavedJobService builds a SavedJobService.
func NewSavedJobService(saved repository.SavedJobRepository, jobs repository.JobRepository) SavedJobService {
	return &savedJobService{saved: saved, jobs: jobs}
}

func (s *savedJobService) IsSaved(ctx context.Context, caller auth.Identity, jobID uuid.UUID) (bool, error) {
	if err := auth.Authorize(auth.ActionSavedJobManage, caller, caller.UserID); err != nil {
		return false, err
	}
	saved, err := s.saved.Contains(ctx, caller.UserID, jobID)
	if err != nil {
		return false, internal("check saved job", err)
	}
	return saved, nil
}

// Save adds the job to the set. Saving twice is a no-op.
func (s *savedJobService) Save(ctx context.Context, caller auth.Identity, jobID uuid.UUID) error {
	if err := auth.Authorize(auth.ActionSavedJobManage, caller, caller.UserID); err != nil {
		return err
	}
	exists, err := s.jobs.Exists(ctx, jobID)
	if err != nil {
		return internal("check job", err)
	}
	if !exists {
		return ErrJobNotFound
	}
	if err := s.saved.Add(ctx, caller.UserID, jobID); err != nil {
		return internal("save job", err)
	}
	return nil
}

// Unsave removes the job from the set. Removing an absent job is a no-op.
func (s *savedJobService) Unsave(ctx context.Context, caller auth.Identity, jobID uuid.UUID) error {
	if err := auth.Authorize(auth.ActionSavedJobManage, caller, caller.UserID); err != nil {
		return err
	}
	if err := s.saved.Remove(ctx, caller.UserID, jobID); err != nil {
		return internal("unsave job", err)
	}
	return nil
}

// List returns the saved jobs, most recently saved first.
func (s *savedJobService) List(ctx context.Context, caller auth.Identity, page model.PageRequest) (model.Page[model.Job], error) {
	if err := auth.Authorize(auth.ActionSavedJobManage, caller, caller.UserID); err != nil {
		return model.Page[model.Job]{}, err
	}
	jobs, total, err := s.saved.ListJobs(ctx, caller.UserID, page)
	if err != nil {
		return model.Page[model.Job]{}, internal("list saved jobs", err)
	}
	return model.NewPage(jobs, total, page), nil
}
