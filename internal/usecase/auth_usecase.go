package usecase

import (
	"context"

	"go-interview-tracker/internal/domain"
	"go-interview-tracker/pkg/apperror"
)

type authUsecase struct {
	userRepo domain.UserRepository
}

func NewAuthUsecase(userRepo domain.UserRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo}
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err == domain.ErrNotFound {
		return nil, apperror.Unauthorized("User not found")
	}
	return user, err
}
