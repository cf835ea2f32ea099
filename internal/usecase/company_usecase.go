package usecase

import (
	"context"
	"time"

	"go-interview-tracker/internal/domain"
	"go-interview-tracker/pkg/apperror"
)

type companyUsecase struct {
	repo domain.CompanyRepository
	now  func() time.Time
}

func NewCompanyUsecase(repo domain.CompanyRepository) domain.CompanyUsecase {
	return &companyUsecase{repo: repo, now: time.Now}
}

func (u *companyUsecase) CreateCompany(ctx context.Context, company *domain.Company) error {
	if company.Name == "" {
		return apperror.BadRequest("Name is required")
	}
	company.CreatedAt = u.now()
	return u.repo.Create(ctx, company)
}

func (u *companyUsecase) GetCompany(ctx context.Context, id int64) (*domain.Company, error) {
	company, err := u.repo.GetByID(ctx, id)
	if err == domain.ErrNotFound {
		return nil, apperror.NotFound("Company not found")
	}
	return company, err
}

func (u *companyUsecase) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	return u.repo.Fetch(ctx)
}

func (u *companyUsecase) UpdateCompany(ctx context.Context, company *domain.Company) error {
	if company.Name == "" {
		return apperror.BadRequest("Name is required")
	}
	err := u.repo.Update(ctx, company)
	if err == domain.ErrNotFound {
		return apperror.NotFound("Company not found")
	}
	return err
}

func (u *companyUsecase) DeleteCompany(ctx context.Context, id int64) error {
	err := u.repo.Delete(ctx, id)
	if err == domain.ErrNotFound {
		return apperror.NotFound("Company not found")
	}
	return err
}
