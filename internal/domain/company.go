package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type Company struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     string    `json:"website"`
	CreatedAt   time.Time `json:"created_time"`
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id int64) (*Company, error)
	// GetOrCreateByName resolves a free-text company name to a stable record.
	// Implemented as a conflict-handling upsert so concurrent callers with the
	// same name converge on a single row. now stamps created_at on insert.
	GetOrCreateByName(ctx context.Context, name, description string, now time.Time) (*Company, error)
	Fetch(ctx context.Context) ([]Company, error)
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id int64) error
}

type CompanyUsecase interface {
	CreateCompany(ctx context.Context, company *Company) error
	GetCompany(ctx context.Context, id int64) (*Company, error)
	ListCompanies(ctx context.Context) ([]Company, error)
	UpdateCompany(ctx context.Context, company *Company) error
	DeleteCompany(ctx context.Context, id int64) error
}
