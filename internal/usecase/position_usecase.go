package usecase

import (
	"context"
	"time"

	"go-interview-tracker/internal/domain"
	"go-interview-tracker/pkg/apperror"
)

type positionUsecase struct {
	repo        domain.PositionRepository
	companyRepo domain.CompanyRepository
	now         func() time.Time
}

func NewPositionUsecase(repo domain.PositionRepository, companyRepo domain.CompanyRepository) domain.PositionUsecase {
	return &positionUsecase{repo: repo, companyRepo: companyRepo, now: time.Now}
}

func (u *positionUsecase) CreatePosition(ctx context.Context, position *domain.Position) error {
	if position.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	// A position without a company is invalid
	if position.CompanyID == 0 {
		return apperror.BadRequest("Company is required")
	}
	if _, err := u.companyRepo.GetByID(ctx, position.CompanyID); err != nil {
		if err == domain.ErrNotFound {
			return apperror.BadRequest("Company does not exist")
		}
		return err
	}
	position.CreatedAt = u.now()
	return u.repo.Create(ctx, position)
}

func (u *positionUsecase) GetPosition(ctx context.Context, id int64) (*domain.PositionWithCompany, error) {
	position, err := u.repo.GetByID(ctx, id)
	if err == domain.ErrNotFound {
		return nil, apperror.NotFound("Position not found")
	}
	return position, err
}

func (u *positionUsecase) ListPositions(ctx context.Context, companyID int64) ([]domain.PositionWithCompany, error) {
	return u.repo.Fetch(ctx, companyID)
}

func (u *positionUsecase) UpdatePosition(ctx context.Context, position *domain.Position) error {
	if position.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	err := u.repo.Update(ctx, position)
	if err == domain.ErrNotFound {
		return apperror.NotFound("Position not found")
	}
	return err
}

func (u *positionUsecase) DeletePosition(ctx context.Context, id int64) error {
	err := u.repo.Delete(ctx, id)
	if err == domain.ErrNotFound {
		return apperror.NotFound("Position not found")
	}
	return err
}
