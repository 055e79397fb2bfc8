package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal/internal/model"
)

func TestSavedJobRepository_Set(t *testing.T) {
	gormDB := newTestDB(t)
	jobs := NewJobRepository(gormDB)
	repo := NewSavedJobRepository(gormDB)
	ctx := context.Background()
	userID := uuid.New()

	job := &model.Job{Title: "a", PostedByID: uuid.New()}
	require.NoError(t, jobs.Create(ctx, job))

	require.NoError(t, repo.Add(ctx, userID, job.ID))
	require.NoError(t, repo.Add(ctx, userID, job.ID))

	listed, total, err := repo.ListJobs(ctx, userID, model.NewPageRequest(1, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, listed, 1)
	assert.Equal(t, job.ID, listed[0].ID)

	ok, err := repo.Contains(ctx, userID, job.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Remove(ctx, userID, job.ID))
	require.NoError(t, repo.Remove(ctx, userID, job.ID))

	ok, err = repo.Contains(ctx, userID, job.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
