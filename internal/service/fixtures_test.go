package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jobportal/internal/auth"
	"jobportal/internal/db"
	"jobportal/internal/logger"
	"jobportal/internal/model"
	"jobportal/internal/repository"
	"jobportal/internal/storage"
)

// testEnv wires real repositories over an in-memory SQLite database.
type testEnv struct {
	db           *gorm.DB
	users        repository.UserRepository
	companies    repository.CompanyRepository
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
	saved        repository.SavedJobRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gormDB, err := db.NewSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	t.Cleanup(func() { _ = db.Close(gormDB) })

	return &testEnv{
		db:           gormDB,
		users:        repository.NewUserRepository(gormDB),
		companies:    repository.NewCompanyRepository(gormDB),
		jobs:         repository.NewJobRepository(gormDB),
		applications: repository.NewApplicationRepository(gormDB),
		saved:        repository.NewSavedJobRepository(gormDB),
	}
}

func (e *testEnv) jobService() JobService {
	return NewJobService(e.jobs, e.companies)
}

func (e *testEnv) applicationService() ApplicationService {
	return NewApplicationService(e.applications, e.jobs, e.users)
}

func (e *testEnv) savedJobService() SavedJobService {
	return NewSavedJobService(e.saved, e.jobs)
}

func (e *testEnv) filterService() FilterService {
	return NewFilterService(e.jobs, e.companies)
}

func (e *testEnv) companyService() CompanyService {
	return NewCompanyService(e.companies)
}

func (e *testEnv) userService(t *testing.T, maxResume int64) (UserService, *storage.LocalStorage) {
	t.Helper()
	files, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir(), BaseURL: "/uploads"})
	require.NoError(t, err)
	return NewUserService(e.users, files, maxResume, logger.Discard()), files
}

// createUser stores a user and returns its identity.
func (e *testEnv) createUser(t *testing.T, name string, role model.Role) auth.Identity {
	t.Helper()
	user := &model.User{Name: name, Email: name + "@example.com", PasswordHash: "x", Role: role}
	require.NoError(t, e.users.Create(context.Background(), user))
	return auth.Identity{UserID: user.ID, Role: role}
}

// createJob posts a job as poster.
func (e *testEnv) createJob(t *testing.T, poster auth.Identity, title string) *model.Job {
	t.Helper()
	job, err := e.jobService().Create(context.Background(), poster, JobInput{Title: strPtr(title)})
	require.NoError(t, err)
	return job
}

func strPtr(s string) *string { return &s }
