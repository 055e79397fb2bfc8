package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "jobportal/internal/errors"
	"jobportal/internal/model"
)

var samplePDF = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

func pdfUpload(name string, body []byte) ResumeUpload {
	return ResumeUpload{Filename: name, Size: int64(len(body)), Body: bytes.NewReader(body)}
}

func TestUserService_UploadResume(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	bob := env.createUser(t, "bob", model.RoleUser)
	svc, files := env.userService(t, 1<<20)

	user, err := svc.UploadResume(ctx, bob, pdfUpload("cv.pdf", samplePDF))
	require.NoError(t, err)
	first := user.Resume
	assert.Equal(t, "cv.pdf", first.OriginalName)
	assert.Equal(t, int64(len(samplePDF)), first.Size)
	assert.True(t, strings.HasPrefix(first.Key, "resumes/"+bob.UserID.String()+"-"))
	assert.Equal(t, "/uploads/"+first.Key, first.URL)
	require.NotNil(t, first.UploadedAt)

	stored, err := os.ReadFile(filepath.Join(files.BasePath(), first.Key))
	require.NoError(t, err)
	assert.Equal(t, samplePDF, stored)

	user, err = svc.UploadResume(ctx, bob, pdfUpload("cv-v2.pdf", samplePDF))
	require.NoError(t, err)
	assert.NotEqual(t, first.Key, user.Resume.Key)

	_, err = os.Stat(filepath.Join(files.BasePath(), first.Key))
	assert.True(t, os.IsNotExist(err), "previous resume should be removed")
	_, err = os.Stat(filepath.Join(files.BasePath(), user.Resume.Key))
	assert.NoError(t, err)

	me, err := svc.GetMe(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, user.Resume.URL, me.Resume.URL)
}

func TestUserService_UploadResumeRejects(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	bob := env.createUser(t, "bob", model.RoleUser)
	svc, files := env.userService(t, 64)

	tests := []struct {
		name    string
		upload  ResumeUpload
		message string
	}{
		{name: "missing", upload: ResumeUpload{}, message: "resume file is required"},
		{name: "too large", upload: pdfUpload("cv.pdf", bytes.Repeat([]byte("%PDF-"), 20)), message: "resume must be at most 64 B"},
		{name: "not a pdf", upload: pdfUpload("cv.pdf", []byte("just some plain text")), message: "resume must be a PDF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UploadResume(ctx, bob, tt.upload)
			require.Error(t, err)
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
			assert.EqualError(t, err, tt.message)
		})
	}

	entries, err := os.ReadDir(files.BasePath())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUserService_DeleteResume(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	bob := env.createUser(t, "bob", model.RoleUser)
	svc, files := env.userService(t, 1<<20)

	user, err := svc.DeleteResume(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, user.Resume.URL)

	user, err = svc.UploadResume(ctx, bob, pdfUpload("cv.pdf", samplePDF))
	require.NoError(t, err)
	key := user.Resume.Key

	user, err = svc.DeleteResume(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, model.Resume{}, user.Resume)

	_, err = os.Stat(filepath.Join(files.BasePath(), key))
	assert.True(t, os.IsNotExist(err))

	_, err = svc.DeleteResume(ctx, bob)
	require.NoError(t, err)
}

func TestUserService_UpdateMe(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	bob := env.createUser(t, "bob", model.RoleUser)
	svc, _ := env.userService(t, 1<<20)

	user, err := svc.UpdateMe(ctx, bob, "  Bob Builder ")
	require.NoError(t, err)
	assert.Equal(t, "Bob Builder", user.Name)

	_, err = svc.UpdateMe(ctx, bob, " ")
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	ghost := bob
	ghost.UserID = uuid.New()
	_, err = svc.GetMe(ctx, ghost)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_Administration(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.createUser(t, "admin", model.RoleAdmin)
	recruiter := env.createUser(t, "rita", model.RoleRecruiter)
	bob := env.createUser(t, "bob", model.RoleUser)
	job := env.createJob(t, recruiter, "Go Engineer")
	svc, files := env.userService(t, 1<<20)

	_, err := env.applicationService().Apply(ctx, bob, job.ID, ApplyInput{})
	require.NoError(t, err)
	require.NoError(t, env.savedJobService().Save(ctx, bob, job.ID))
	user, err := svc.UploadResume(ctx, bob, pdfUpload("cv.pdf", samplePDF))
	require.NoError(t, err)

	_, err = svc.ListUsers(ctx, recruiter, model.NewPageRequest(1, 20))
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	page, err := svc.ListUsers(ctx, admin, model.NewPageRequest(1, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.Pages)
	assert.Len(t, page.Items, 2)

	err = svc.DeleteUser(ctx, admin, admin.UserID)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	err = svc.DeleteUser(ctx, recruiter, bob.UserID)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	require.NoError(t, svc.DeleteUser(ctx, admin, bob.UserID))
	assert.ErrorIs(t, svc.DeleteUser(ctx, admin, bob.UserID), ErrUserNotFound)

	var apps, saved int64
	require.NoError(t, env.db.Model(&model.Application{}).Count(&apps).Error)
	require.NoError(t, env.db.Model(&model.SavedJob{}).Count(&saved).Error)
	assert.Zero(t, apps)
	assert.Zero(t, saved)

	_, err = os.Stat(filepath.Join(files.BasePath(), user.Resume.Key))
	assert.True(t, os.IsNotExist(err))

	// Jobs posted by other users survive.
	_, err = env.jobService().Get(ctx, job.ID)
	require.NoError(t, err)
}
