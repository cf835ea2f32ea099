package domain

import (
	"context"
	"time"
)

type Position struct {
	ID           int64     `json:"id"`
	CompanyID    int64     `json:"company_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Level        string    `json:"level"`
	SalaryRange  string    `json:"salary_range"`
	CreatedAt    time.Time `json:"created_time"`
}

// PositionWithCompany extends Position with the owning company's name
type PositionWithCompany struct {
	Position
	CompanyName string `json:"company_name"`
}

type PositionRepository interface {
	Create(ctx context.Context, position *Position) error
	GetByID(ctx context.Context, id int64) (*PositionWithCompany, error)
	// GetOrCreate resolves (companyID, title) to a stable position record via
	// a conflict-handling upsert. now stamps created_at on insert.
	GetOrCreate(ctx context.Context, companyID int64, title, description, requirements, level string, now time.Time) (*Position, error)
	Fetch(ctx context.Context, companyID int64) ([]PositionWithCompany, error)
	Update(ctx context.Context, position *Position) error
	Delete(ctx context.Context, id int64) error
}

type PositionUsecase interface {
	CreatePosition(ctx context.Context, position *Position) error
	GetPosition(ctx context.Context, id int64) (*PositionWithCompany, error)
	ListPositions(ctx context.Context, companyID int64) ([]PositionWithCompany, error)
	UpdatePosition(ctx context.Context, position *Position) error
	DeletePosition(ctx context.Context, id int64) error
}
