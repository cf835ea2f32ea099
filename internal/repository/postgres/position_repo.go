package postgres

import (
	"context"
	"errors"
	"go-interview-tracker/internal/domain"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type positionRepo struct {
	db *pgxpool.Pool
}

func NewPositionRepository(db *pgxpool.Pool) domain.PositionRepository {
	return &positionRepo{db: db}
}

func (r *positionRepo) Create(ctx context.Context, position *domain.Position) error {
	query := `INSERT INTO positions (company_id, title, description, requirements, level, salary_range, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRow(ctx, query,
		position.CompanyID, position.Title, position.Description, position.Requirements,
		position.Level, position.SalaryRange, position.CreatedAt,
	).Scan(&position.ID)
}

func (r *positionRepo) GetByID(ctx context.Context, id int64) (*domain.PositionWithCompany, error) {
	query := `
		SELECT p.id, p.company_id, p.title, p.description, p.requirements, p.level,
		       p.salary_range, p.created_at, c.name
		FROM positions p
		JOIN companies c ON p.company_id = c.id
		WHERE p.id = $1`
	var position domain.PositionWithCompany
	err := r.db.QueryRow(ctx, query, id).Scan(
		&position.ID, &position.CompanyID, &position.Title, &position.Description,
		&position.Requirements, &position.Level, &position.SalaryRange, &position.CreatedAt,
		&position.CompanyName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &position, nil
}

// GetOrCreate upserts on the (company_id, title) unique pair so repeated
// interview saves with the same free-text title reuse one position row.
func (r *positionRepo) GetOrCreate(ctx context.Context, companyID int64, title, description, requirements, level string, now time.Time) (*domain.Position, error) {
	query := `INSERT INTO positions (company_id, title, description, requirements, level, salary_range, created_at)
              VALUES ($1, $2, $3, $4, $5, '', $6)
              ON CONFLICT (company_id, title) DO UPDATE SET title = EXCLUDED.title
              RETURNING id, company_id, title, description, requirements, level, salary_range, created_at`
	var position domain.Position
	err := r.db.QueryRow(ctx, query, companyID, title, description, requirements, level, now).Scan(
		&position.ID, &position.CompanyID, &position.Title, &position.Description,
		&position.Requirements, &position.Level, &position.SalaryRange, &position.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &position, nil
}

func (r *positionRepo) Fetch(ctx context.Context, companyID int64) ([]domain.PositionWithCompany, error) {
	query := `
		SELECT p.id, p.company_id, p.title, p.description, p.requirements, p.level,
		       p.salary_range, p.created_at, c.name
		FROM positions p
		JOIN companies c ON p.company_id = c.id`
	args := []interface{}{}
	if companyID > 0 {
		query += ` WHERE p.company_id = $1`
		args = append(args, companyID)
	}
	query += ` ORDER BY p.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []domain.PositionWithCompany
	for rows.Next() {
		var position domain.PositionWithCompany
		if err := rows.Scan(
			&position.ID, &position.CompanyID, &position.Title, &position.Description,
			&position.Requirements, &position.Level, &position.SalaryRange, &position.CreatedAt,
			&position.CompanyName,
		); err != nil {
			return nil, err
		}
		positions = append(positions, position)
	}
	return positions, rows.Err()
}

func (r *positionRepo) Update(ctx context.Context, position *domain.Position) error {
	query := `UPDATE positions SET title = $2, description = $3, requirements = $4, level = $5, salary_range = $6 WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		position.ID, position.Title, position.Description, position.Requirements,
		position.Level, position.SalaryRange,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *positionRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
