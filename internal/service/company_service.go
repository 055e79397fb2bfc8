package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobportal/internal/auth"
	apperrors "jobportal/internal/errors"
	"jobportal/internal/model"
	"jobportal/internal/repository"
)

// ErrCompanyExists is returned when the company name is taken.
var ErrCompanyExists = apperrors.Conflict("company already exists")

// CompanyInput holds the writable company fields. Nil fields are left
// unchanged on update.
type CompanyInput struct {
	Name     *string
	Website  *string
	Logo     *string
	Location *string
	Size     *string
}

// CompanyService exposes the company directory.
type CompanyService interface {
	List(ctx context.Context) ([]model.Company, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Company, error)
	Create(ctx context.Context, caller auth.Identity, in CompanyInput) (*model.Company, error)
	Update(ctx context.Context, caller auth.Identity, id uuid.UUID, in CompanyInput) (*model.Company, error)
}

type companyService struct {
	companies repository.CompanyRepository
}

// NewCompanyService builds a CompanyService.
func NewCompanyService(companies repository.CompanyRepository) CompanyService {
	return &companyService{companies: companies}
}

func (s *companyService) List(ctx context.Context) ([]model.Company, error) {
	companies, err := s.companies.List(ctx)
	if err != nil {
		return nil, internal("list companies", err)
	}
	if companies == nil {
		companies = []model.Company{}
	}
	return companies, nil
}

func (s *companyService) Get(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, ErrCompanyNotFound, "find company")
	}
	return company, nil
}

// Create adds a company owned by caller.
func (s *companyService) Create(ctx context.Context, caller auth.Identity, in CompanyInput) (*model.Company, error) {
	if err := auth.Authorize(auth.ActionCompanyCreate, caller, caller.UserID); err != nil {
		return nil, err
	}
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, apperrors.Validation("company name is required")
	}

	company := &model.Company{CreatedByID: &caller.UserID}
	if err := s.merge(ctx, company, in); err != nil {
		return nil, err
	}
	if err := s.companies.Create(ctx, company); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCompanyExists
		}
		return nil, internal("create company", err)
	}
	return company, nil
}

// Update merges the supplied fields. Only the creator or an admin may
// update a company.
func (s *companyService) Update(ctx context.Context, caller auth.Identity, id uuid.UUID, in CompanyInput) (*model.Company, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, ErrCompanyNotFound, "find company")
	}

	var owner uuid.UUID
	if company.CreatedByID != nil {
		owner = *company.CreatedByID
	}
	if err := auth.Authorize(auth.ActionCompanyUpdate, caller, owner); err != nil {
		return nil, err
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, apperrors.Validation("company name is required")
	}

	if err := s.merge(ctx, company, in); err != nil {
		return nil, err
	}
	if err := s.companies.Update(ctx, company); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCompanyExists
		}
		return nil, internal("update company", err)
	}
	return company, nil
}

func (s *companyService) merge(ctx context.Context, company *model.Company, in CompanyInput) error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		existing, err := s.companies.FindByName(ctx, name)
		switch {
		case err == nil && existing.ID != company.ID:
			return ErrCompanyExists
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			return internal("find company", err)
		}
		company.Name = name
	}
	if in.Website != nil {
		company.Website = strings.TrimSpace(*in.Website)
	}
	if in.Logo != nil {
		company.Logo = strings.TrimSpace(*in.Logo)
	}
	if in.Location != nil {
		company.Location = strings.TrimSpace(*in.Location)
	}
	if in.Size != nil {
		company.Size = strings.TrimSpace(*in.Size)
	}
	return nil
}
