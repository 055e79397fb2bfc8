package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"jobportal/internal/auth"
	"jobportal/internal/model"
	"jobportal/internal/repository"
)

// SeedResult counts the records a seed run created.
type SeedResult struct {
	Users        int `json:"users"`
	Companies    int `json:"companies"`
	Jobs         int `json:"jobs"`
	Applications int `json:"applications"`
}

// SeedService loads demo data. Records that already exist are skipped, so
// running it twice is harmless.
type SeedService interface {
	Seed(ctx context.Context) (*SeedResult, error)
}

type seedService struct {
	users        repository.UserRepository
	companies    repository.CompanyRepository
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
	now          func() time.Time
}

// NewSeedService builds a SeedService.
func NewSeedService(users repository.UserRepository, companies repository.CompanyRepository, jobs repository.JobRepository, applications repository.ApplicationRepository) SeedService {
	return &seedService{
		users:        users,
		companies:    companies,
		jobs:         jobs,
		applications: applications,
		now:          time.Now,
	}
}

type seedUser struct {
	name, email, password string
	role                  model.Role
}

var seedUsers = []seedUser{
	{"Admin User", "admin@example.com", "Admin@123", model.RoleAdmin},
	{"Jane Doe", "jane@example.com", "User@123", model.RoleUser},
	{"Rick Recruiter", "recruiter@example.com", "Recruiter@123", model.RoleRecruiter},
}

var seedCompanies = []model.Company{
	{Name: "Google", Website: "https://google.com", Location: "United States", Size: "10k+"},
	{Name: "Microsoft", Website: "https://microsoft.com", Location: "United States", Size: "10k+"},
	{Name: "Amazon", Website: "https://amazon.com", Location: "United States", Size: "10k+"},
}

type seedJob struct {
	title, description, location, jobType, role string
	level                                       model.Level
	salaryMin, salaryMax                        int64
	experience                                  int
	company                                     string
	age                                         time.Duration
	image, url                                  string
}

const day = 24 * time.Hour

var seedJobs = []seedJob{
	{
		"Frontend Developer", "Build delightful UI in React.", "United States", "remote", "frontend",
		model.LevelMid, 4000, 7000, 2, "Google", 7 * day,
		"https://images.unsplash.com/photo-1518779578993-ec3579fee39f?w=800&q=60",
		"https://jobs.example.com/frontend-developer",
	},
	{
		"Backend Engineer", "Design scalable APIs in Go.", "India", "hybrid", "backend",
		model.LevelSenior, 5000, 9000, 4, "Microsoft", 3 * day,
		"https://images.unsplash.com/photo-1519389950473-47ba0277781c?w=800&q=60",
		"https://jobs.example.com/backend-engineer",
	},
	{
		"Full-Stack Developer", "Own features across the web stack.", "United Kingdom", "full-time", "fullstack",
		model.LevelJunior, 3200, 5200, 1, "Amazon", 10 * day,
		"https://images.unsplash.com/photo-1555066931-4365d14bab8c?w=800&q=60",
		"https://jobs.example.com/full-stack-developer",
	},
	{
		"Data Analyst", "Analyze product metrics and build dashboards.", "Remote", "remote", "data",
		model.LevelMid, 3800, 6000, 2, "Google", 1 * day,
		"https://images.unsplash.com/photo-1517245386807-bb43f82c33c4?w=800&q=60",
		"https://jobs.example.com/data-analyst",
	},
}

func (s *seedService) Seed(ctx context.Context) (*SeedResult, error) {
	var result SeedResult

	users := make(map[model.Role]*model.User, len(seedUsers))
	for _, su := range seedUsers {
		user, created, err := s.ensureUser(ctx, su)
		if err != nil {
			return nil, err
		}
		if created {
			result.Users++
		}
		users[su.role] = user
	}

	companies := make(map[string]*model.Company, len(seedCompanies))
	for _, sc := range seedCompanies {
		company, created, err := s.ensureCompany(ctx, sc)
		if err != nil {
			return nil, err
		}
		if created {
			result.Companies++
		}
		companies[company.Name] = company
	}

	var first *model.Job
	for _, sj := range seedJobs {
		job, created, err := s.ensureJob(ctx, sj, companies[sj.company], users[model.RoleAdmin])
		if err != nil {
			return nil, err
		}
		if created {
			result.Jobs++
		}
		if first == nil {
			first = job
		}
	}

	if first != nil {
		created, err := s.ensureApplication(ctx, first, users[model.RoleUser])
		if err != nil {
			return nil, err
		}
		if created {
			result.Applications++
		}
	}
	return &result, nil
}

func (s *seedService) ensureUser(ctx context.Context, su seedUser) (*model.User, bool, error) {
	existing, err := s.users.FindByEmail(ctx, su.email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, internal("find seed user", err)
	}

	hash, err := auth.HashPassword(su.password)
	if err != nil {
		return nil, false, internal("hash password", err)
	}
	user := &model.User{Name: su.name, Email: su.email, PasswordHash: hash, Role: su.role}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, false, internal("create seed user", err)
	}
	return user, true, nil
}

func (s *seedService) ensureCompany(ctx context.Context, sc model.Company) (*model.Company, bool, error) {
	existing, err := s.companies.FindByName(ctx, sc.Name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, internal("find seed company", err)
	}

	company := sc
	if err := s.companies.Create(ctx, &company); err != nil {
		return nil, false, internal("create seed company", err)
	}
	return &company, true, nil
}

func (s *seedService) ensureJob(ctx context.Context, sj seedJob, company *model.Company, poster *model.User) (*model.Job, bool, error) {
	existing, _, err := s.jobs.List(ctx, repository.JobFilter{URL: sj.url}, model.NewPageRequest(1, 1))
	if err != nil {
		return nil, false, internal("find seed job", err)
	}
	if len(existing) > 0 {
		return &existing[0], false, nil
	}

	url := sj.url
	job := &model.Job{
		Title:           sj.title,
		Description:     sj.description,
		Location:        sj.location,
		Role:            sj.role,
		Level:           sj.level,
		SalaryMin:       decimal.NewNullDecimal(decimal.NewFromInt(sj.salaryMin)),
		SalaryMax:       decimal.NewNullDecimal(decimal.NewFromInt(sj.salaryMax)),
		SalaryPeriod:    defaultSalaryPeriod,
		ExperienceYears: sj.experience,
		CompanyID:       &company.ID,
		CompanyName:     company.Name,
		PostedByID:      poster.ID,
		Image:           sj.image,
		URL:             &url,
		PostedAt:        s.now().Add(-sj.age),
	}
	job.SetType(sj.jobType)
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, false, internal("create seed job", err)
	}
	return job, true, nil
}

func (s *seedService) ensureApplication(ctx context.Context, job *model.Job, applicant *model.User) (bool, error) {
	_, err := s.applications.FindByJobAndUser(ctx, job.ID, applicant.ID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, internal("find seed application", err)
	}
	app := &model.Application{JobID: job.ID, UserID: applicant.ID, Status: model.ApplicationStatusApplied}
	if err := s.applications.Create(ctx, app); err != nil {
		return false, internal("create seed application", err)
	}
	return true, nil
}
