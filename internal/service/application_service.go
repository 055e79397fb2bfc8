package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobportal/internal/auth"
	apperrors "jobportal/internal/errors"
	"jobportal/internal/model"
	"jobportal/internal/repository"
)

// ErrAlreadyApplied is returned for a second application to the same job.
var ErrAlreadyApplied = apperrors.Conflict("you already applied for this job")

// ApplyInput carries the optional application fields.
type ApplyInput struct {
	CoverLetter string
	ResumeURL   string
}

// ApplicationService tracks applications and their status.
type ApplicationService interface {
	Apply(ctx context.Context, caller auth.Identity, jobID uuid.UUID, in ApplyInput) (*model.Application, error)
	SetStatus(ctx context.Context, caller auth.Identity, id uuid.UUID, status model.ApplicationStatus) (*model.Application, error)
	ListForJob(ctx context.Context, caller auth.Identity, jobID uuid.UUID, page model.PageRequest) (model.Page[model.Application], error)
	ListMine(ctx context.Context, caller auth.Identity, page model.PageRequest) (model.Page[model.Application], error)
	ListForMyJobs(ctx context.Context, caller auth.Identity, page model.PageRequest) (model.Page[model.Application], error)
	ListAll(ctx context.Context, caller auth.Identity, page model.PageRequest) (model.Page[model.Application], error)
	Delete(ctx context.Context, caller auth.Identity, id uuid.UUID) error
}

type applicationService struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	users        repository.UserRepository
}

// NewApplicationService builds an ApplicationService.
func NewApplicationService(applications repository.ApplicationRepository, jobs repository.JobRepository, users repository.UserRepository) ApplicationService {
	return &applicationService{applications: applications, jobs: jobs, users: users}
}

// Apply records caller's application to the job. Without a resume url the
// caller's uploaded resume is attached.
func (s *applicationService) Apply(ctx context.Context, caller auth.Identity, jobID uuid.UUID, in ApplyInput) (*model.Application, error) {
	if err := auth.Authorize(auth.ActionApplicationCreate, caller, caller.UserID); err != nil {
		return nil, err
	}

	coverLetter := strings.TrimSpace(in.CoverLetter)
	if utf8.RuneCountInString(coverLetter) > model.MaxCoverLetterLength {
		return nil, apperrors.Validation("cover letter is too long")
	}

	exists, err := s.jobs.Exists(ctx, jobID)
	if err != nil {
		return nil, internal("check job", err)
	}
	if !exists {
		return nil, ErrJobNotFound
	}

	if _, err := s.applications.FindByJobAndUser(ctx, jobID, caller.UserID); err == nil {
		return nil, ErrAlreadyApplied
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, internal("check application", err)
	}

	resumeURL := strings.TrimSpace(in.ResumeURL)
	if resumeURL == "" {
		user, err := s.users.FindByID(ctx, caller.UserID)
		if err != nil {
			return nil, lookupError(err, ErrUserNotFound, "find user")
		}
		resumeURL = user.Resume.URL
	}

	app := &model.Application{
		JobID:       jobID,
		UserID:      caller.UserID,
		Status:      model.ApplicationStatusApplied,
		CoverLetter: coverLetter,
		ResumeURL:   resumeURL,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		// The unique (job, user) index decides concurrent applies.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyApplied
		}
		if _, findErr := s.applications.FindByJobAndUser(ctx, jobID, caller.UserID); findErr == nil {
			return nil, ErrAlreadyApplied
		}
		return nil, internal("create application", err)
	}
	return app, nil
}

// SetStatus moves an application to status. Only the job's poster or an
// admin may do so.
func (s *applicationService) SetStatus(ctx context.Context, caller auth.Identity, id uuid.UUID, status model.ApplicationStatus) (*model.Application, error) {
	if !status.Valid() {
		return nil, apperrors.Validation("invalid status")
	}

	app, err := s.applications.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, ErrApplicationNotFound, "find application")
	}
	job, err := s.jobs.FindByID(ctx, app.JobID)
	if err != nil {
		return nil, lookupError(err, ErrJobNotFound, "find job")
	}
	if err := auth.Authorize(auth.ActionApplicationSetStatus, caller, job.PostedByID); err != nil {
		return nil, err
	}

	if err := s.applications.UpdateStatus(ctx, app.ID, status); err != nil {
		return nil, lookupError(err, ErrApplicationNotFound, "update application status")
	}

	updated, err := s.applications.FindWithRelations(ctx, app.ID)
	if err != nil {
		return nil, lookupError(err, ErrApplicationNotFound, "find application")
	}
	return updated, nil
}

// ListForJob lists the applications to one job for its poster or an admin.
func (s *applicationService) ListForJob(ctx context.Context, caller auth.Identity, jobID uuid.UUID, page model.PageRequest) (model.Page[model.Application], error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return model.Page[model.Application]{}, lookupError(err, ErrJobNotFound, "find job")
	}
	if err := auth.Authorize(auth.ActionApplicationListForJob, caller, job.PostedByID); err != nil {
		return model.Page[model.Application]{}, err
	}
	return s.list(ctx, repository.ApplicationFilter{JobID: &job.ID}, page)
}

// ListMine lists caller's own applications.
func (s *applicationService) ListMine(ctx context.Context, caller auth.Identity, page model.PageRequest) (model.Page[model.Application], error) {
	if err := auth.Authorize(auth.ActionApplicationListMine, caller, caller.UserID); err != nil {
		return model.Page[model.Application]{}, err
	}
	return s.list(ctx, repository.ApplicationFilter{UserID: &caller.UserID}, page)
}

// ListForMyJobs lists applications to jobs caller posted. Admins see all.
func (s *applicationService) ListForMyJobs(ctx context.Context, caller auth.Identity, page model.PageRequest) (model.Page[model.Application], error) {
	if err := auth.Authorize(auth.ActionApplicationListForMyJobs, caller, caller.UserID); err != nil {
		return model.Page[model.Application]{}, err
	}
	var filter repository.ApplicationFilter
	if !caller.IsAdmin() {
		filter.PostedByID = &caller.UserID
	}
	return s.list(ctx, filter, page)
}

// ListAll lists every application.
func (s *applicationService) ListAll(ctx context.Context, caller auth.Identity, page model.PageRequest) (model.Page[model.Application], error) {
	if err := auth.Authorize(auth.ActionApplicationListAll, caller, caller.UserID); err != nil {
		return model.Page[model.Application]{}, err
	}
	return s.list(ctx, repository.ApplicationFilter{}, page)
}

// Delete removes an application.
func (s *applicationService) Delete(ctx context.Context, caller auth.Identity, id uuid.UUID) error {
	if err := auth.Authorize(auth.ActionApplicationDelete, caller, caller.UserID); err != nil {
		return err
	}
	if err := s.applications.Delete(ctx, id); err != nil {
		return lookupError(err, ErrApplicationNotFound, "delete application")
	}
	return nil
}

func (s *applicationService) list(ctx context.Context, filter repository.ApplicationFilter, page model.PageRequest) (model.Page[model.Application], error) {
	apps, total, err := s.applications.List(ctx, filter, page)
	if err != nil {
		return model.Page[model.Application]{}, internal("list applications", err)
	}
	return model.NewPage(apps, total, page), nil
}
