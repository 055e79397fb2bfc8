package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jobportal/internal/db"
	"jobportal/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := db.NewSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	t.Cleanup(func() { _ = db.Close(gormDB) })
	return gormDB
}

func seedJobs(t *testing.T, repo JobRepository, n int) uuid.UUID {
	t.Helper()
	poster := uuid.New()
	for i := 0; i < n; i++ {
		job := &model.Job{Title: fmt.Sprintf("job %02d", i), PostedByID: poster, Level: model.LevelMid}
		require.NoError(t, repo.Create(context.Background(), job))
	}
	return poster
}

func TestJobRepository_ListPaginates(t *testing.T) {
	repo := NewJobRepository(newTestDB(t))
	ctx := context.Background()
	const total = 23
	seedJobs(t, repo, total)

	for _, limit := range []int{1, 5, 10, 23, 50} {
		t.Run(fmt.Sprintf("limit %d", limit), func(t *testing.T) {
			wantPages := (total + limit - 1) / limit
			seen := make(map[uuid.UUID]bool, total)

			for p := 1; p <= wantPages+1; p++ {
				req := model.NewPageRequest(p, limit)
				jobs, count, err := repo.List(ctx, JobFilter{}, req)
				require.NoError(t, err)
				assert.Equal(t, int64(total), count)

				page := model.NewPage(jobs, count, req)
				assert.Equal(t, wantPages, page.Pages)
				assert.LessOrEqual(t, len(jobs), limit)
				if p > wantPages {
					assert.Empty(t, jobs)
				}
				for _, j := range jobs {
					assert.False(t, seen[j.ID], "job %s repeated", j.ID)
					seen[j.ID] = true
				}
			}
			assert.Len(t, seen, total)
		})
	}
}

func TestJobRepository_ListFiltersByPoster(t *testing.T) {
	repo := NewJobRepository(newTestDB(t))
	ctx := context.Background()
	mine := seedJobs(t, repo, 3)
	seedJobs(t, repo, 2)

	jobs, total, err := repo.List(ctx, JobFilter{PostedByID: &mine}, model.NewPageRequest(1, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	for _, j := range jobs {
		assert.Equal(t, mine, j.PostedByID)
	}
}

func TestJobRepository_DeleteMissing(t *testing.T) {
	repo := NewJobRepository(newTestDB(t))

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestJobRepository_URLIsUnique(t *testing.T) {
	repo := NewJobRepository(newTestDB(t))
	ctx := context.Background()
	url := "https://jobs.example.com/go"
	poster := uuid.New()

	first := &model.Job{Title: "a", PostedByID: poster, URL: &url}
	require.NoError(t, repo.Create(ctx, first))

	taken, err := repo.ExistsByURL(ctx, url, uuid.Nil)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.ExistsByURL(ctx, url, first.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	err = repo.Create(ctx, &model.Job{Title: "b", PostedByID: poster, URL: &url})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// Jobs without a url do not collide.
	require.NoError(t, repo.Create(ctx, &model.Job{Title: "c", PostedByID: poster}))
	require.NoError(t, repo.Create(ctx, &model.Job{Title: "d", PostedByID: poster}))
}

func TestJobRepository_Distinct(t *testing.T) {
	repo := NewJobRepository(newTestDB(t))
	ctx := context.Background()
	poster := uuid.New()

	for _, j := range []model.Job{
		{Title: "a", Location: "Paris", CompanyName: "Acme"},
		{Title: "b", Location: "Paris"},
		{Title: "c", Location: "", CompanyName: "Globex"},
	} {
		job := j
		job.PostedByID = poster
		require.NoError(t, repo.Create(ctx, &job))
	}

	locations, err := repo.DistinctLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Paris"}, locations)

	names, err := repo.DistinctCompanyNames(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Acme", "Globex"}, names)
}
