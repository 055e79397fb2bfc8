package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal/internal/auth"
	apperrors "jobportal/internal/errors"
	"jobportal/internal/model"
)

func TestApplicationService_ApplyOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	recruiter := env.createUser(t, "rita", model.RoleRecruiter)
	applicant := env.createUser(t, "bob", model.RoleUser)
	job := env.createJob(t, recruiter, "Go Engineer")
	svc := env.applicationService()

	app, err := svc.Apply(ctx, applicant, job.ID, ApplyInput{CoverLetter: "  hello  ", ResumeURL: "https://cv.example.com/bob.pdf"})
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusApplied, app.Status)
	assert.Equal(t, "hello", app.CoverLetter)
	assert.Equal(t, "https://cv.example.com/bob.pdf", app.ResumeURL)
	assert.Equal(t, applicant.UserID, app.UserID)

	_, err = svc.Apply(ctx, applicant, job.ID, ApplyInput{})
	assert.ErrorIs(t, err, ErrAlreadyApplied)

	page, err := svc.ListMine(ctx, applicant, model.NewPageRequest(1, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
}

func TestApplicationService_ApplyUsesUploadedResume(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	recruiter := env.createUser(t, "rita", model.RoleRecruiter)
	applicant := env.createUser(t, "bob", model.RoleUser)
	job := env.createJob(t, recruiter, "Go Engineer")

	user, err := env.users.FindByID(ctx, applicant.UserID)
	require.NoError(t, err)
	user.Resume.URL = "/uploads/resumes/bob.pdf"
	require.NoError(t, env.users.Update(ctx, user))

	app, err := env.applicationService().Apply(ctx, applicant, job.ID, ApplyInput{})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/resumes/bob.pdf", app.ResumeURL)
}

func TestApplicationService_ApplyValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	recruiter := env.createUser(t, "rita", model.RoleRecruiter)
	applicant := env.createUser(t, "bob", model.RoleUser)
	job := env.createJob(t, recruiter, "Go Engineer")
	svc := env.applicationService()

	_, err := svc.Apply(ctx, applicant, uuid.New(), ApplyInput{})
	assert.ErrorIs(t, err, ErrJobNotFound)

	long := strings.Repeat("a", model.MaxCoverLetterLength+1)
	_, err = svc.Apply(ctx, applicant, job.ID, ApplyInput{CoverLetter: long})
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestApplicationService_SetStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "owner", model.RoleRecruiter)
	other := env.createUser(t, "other", model.RoleRecruiter)
	admin := env.createUser(t, "admin", model.RoleAdmin)
	applicant := env.createUser(t, "bob", model.RoleUser)
	job := env.createJob(t, owner, "Go Engineer")
	svc := env.applicationService()

	app, err := svc.Apply(ctx, applicant, job.ID, ApplyInput{})
	require.NoError(t, err)

	tests := []struct {
		name     string
		caller   string
		status   model.ApplicationStatus
		wantKind apperrors.Kind
		ok       bool
	}{
		{name: "other recruiter", caller: "other", status: model.ApplicationStatusAccepted, wantKind: apperrors.KindForbidden},
		{name: "applicant", caller: "applicant", status: model.ApplicationStatusAccepted, wantKind: apperrors.KindForbidden},
		{name: "invalid status", caller: "owner", status: "hired", wantKind: apperrors.KindValidation},
		{name: "owner accepts", caller: "owner", status: model.ApplicationStatusAccepted, ok: true},
		{name: "admin reviews", caller: "admin", status: model.ApplicationStatusReview, ok: true},
	}

	callers := map[string]auth.Identity{
		"owner":     owner,
		"other":     other,
		"admin":     admin,
		"applicant": applicant,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, err := env.applications.FindByID(ctx, app.ID)
			require.NoError(t, err)

			updated, err := svc.SetStatus(ctx, callers[tt.caller], app.ID, tt.status)
			if !tt.ok {
				assert.Equal(t, tt.wantKind, apperrors.KindOf(err))
				after, err := env.applications.FindByID(ctx, app.ID)
				require.NoError(t, err)
				assert.Equal(t, before.Status, after.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, updated.Status)
			require.NotNil(t, updated.Job)
			assert.Equal(t, job.ID, updated.Job.ID)
		})
	}

	_, err = svc.SetStatus(ctx, owner, uuid.New(), model.ApplicationStatusRejected)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestApplicationService_Listings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "owner", model.RoleRecruiter)
	other := env.createUser(t, "other", model.RoleRecruiter)
	admin := env.createUser(t, "admin", model.RoleAdmin)
	bob := env.createUser(t, "bob", model.RoleUser)
	amy := env.createUser(t, "amy", model.RoleUser)
	mine := env.createJob(t, owner, "Mine")
	theirs := env.createJob(t, other, "Theirs")
	svc := env.applicationService()

	for _, pair := range []struct {
		who   string
		jobID uuid.UUID
	}{{"bob", mine.ID}, {"amy", mine.ID}, {"bob", theirs.ID}} {
		applicant := bob
		if pair.who == "amy" {
			applicant = amy
		}
		_, err := svc.Apply(ctx, applicant, pair.jobID, ApplyInput{})
		require.NoError(t, err)
	}

	page := model.NewPageRequest(1, 20)

	forMine, err := svc.ListForMyJobs(ctx, owner, page)
	require.NoError(t, err)
	assert.Equal(t, int64(2), forMine.Total)
	for _, a := range forMine.Items {
		assert.Equal(t, mine.ID, a.JobID)
	}

	forAdmin, err := svc.ListForMyJobs(ctx, admin, page)
	require.NoError(t, err)
	assert.Equal(t, int64(3), forAdmin.Total)

	forJob, err := svc.ListForJob(ctx, owner, mine.ID, page)
	require.NoError(t, err)
	assert.Equal(t, int64(2), forJob.Total)

	_, err = svc.ListForJob(ctx, other, mine.ID, page)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	_, err = svc.ListForJob(ctx, owner, uuid.New(), page)
	assert.ErrorIs(t, err, ErrJobNotFound)

	bobs, err := svc.ListMine(ctx, bob, page)
	require.NoError(t, err)
	assert.Equal(t, int64(2), bobs.Total)

	_, err = svc.ListForMyJobs(ctx, bob, page)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	_, err = svc.ListAll(ctx, owner, page)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	all, err := svc.ListAll(ctx, admin, page)
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Total)
}

func TestApplicationService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "owner", model.RoleRecruiter)
	admin := env.createUser(t, "admin", model.RoleAdmin)
	bob := env.createUser(t, "bob", model.RoleUser)
	job := env.createJob(t, owner, "Job")
	svc := env.applicationService()

	app, err := svc.Apply(ctx, bob, job.ID, ApplyInput{})
	require.NoError(t, err)

	err = svc.Delete(ctx, owner, app.ID)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	require.NoError(t, svc.Delete(ctx, admin, app.ID))
	assert.ErrorIs(t, svc.Delete(ctx, admin, app.ID), ErrApplicationNotFound)

	// Deleting frees the pair for a new application.
	_, err = svc.Apply(ctx, bob, job.ID, ApplyInput{})
	require.NoError(t, err)
}
