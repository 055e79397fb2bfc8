package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal/internal/model"
)

func TestSavedJobService_SaveIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	recruiter := env.createUser(t, "rita", model.RoleRecruiter)
	bob := env.createUser(t, "bob", model.RoleUser)
	job := env.createJob(t, recruiter, "Go Engineer")
	svc := env.savedJobService()

	saved, err := svc.IsSaved(ctx, bob, job.ID)
	require.NoError(t, err)
	assert.False(t, saved)

	require.NoError(t, svc.Save(ctx, bob, job.ID))
	require.NoError(t, svc.Save(ctx, bob, job.ID))

	saved, err = svc.IsSaved(ctx, bob, job.ID)
	require.NoError(t, err)
	assert.True(t, saved)

	page, err := svc.List(ctx, bob, model.NewPageRequest(1, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, job.ID, page.Items[0].ID)

	require.NoError(t, svc.Unsave(ctx, bob, job.ID))
	require.NoError(t, svc.Unsave(ctx, bob, job.ID))

	saved, err = svc.IsSaved(ctx, bob, job.ID)
	require.NoError(t, err)
	assert.False(t, saved)

	page, err = svc.List(ctx, bob, model.NewPageRequest(1, 20))
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
}

func TestSavedJobService_SetsArePerUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	recruiter := env.createUser(t, "rita", model.RoleRecruiter)
	bob := env.createUser(t, "bob", model.RoleUser)
	amy := env.createUser(t, "amy", model.RoleUser)
	job := env.createJob(t, recruiter, "Go Engineer")
	svc := env.savedJobService()

	require.NoError(t, svc.Save(ctx, bob, job.ID))

	saved, err := svc.IsSaved(ctx, amy, job.ID)
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestSavedJobService_SaveMissingJob(t *testing.T) {
	env := newTestEnv(t)
	bob := env.createUser(t, "bob", model.RoleUser)

	err := env.savedJobService().Save(context.Background(), bob, uuid.New())
	assert.ErrorIs(t, err, ErrJobNotFound)
}
