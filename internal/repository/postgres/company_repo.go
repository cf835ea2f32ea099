package postgres

import (
	"context"
	"errors"
	"go-interview-tracker/internal/domain"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	query := `INSERT INTO companies (name, description, website, created_at)
              VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRow(ctx, query,
		company.Name, company.Description, company.Website, company.CreatedAt,
	).Scan(&company.ID)
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `SELECT id, name, description, website, created_at FROM companies WHERE id = $1`
	var company domain.Company
	err := r.db.QueryRow(ctx, query, id).Scan(
		&company.ID, &company.Name, &company.Description, &company.Website, &company.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetOrCreateByName is an idempotent upsert keyed on the unique name column.
// The no-op DO UPDATE makes the insert return the existing row instead of
// failing, so concurrent callers converge on one record.
func (r *companyRepo) GetOrCreateByName(ctx context.Context, name, description string, now time.Time) (*domain.Company, error) {
	query := `INSERT INTO companies (name, description, website, created_at)
              VALUES ($1, $2, '', $3)
              ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
              RETURNING id, name, description, website, created_at`
	var company domain.Company
	err := r.db.QueryRow(ctx, query, name, description, now).Scan(
		&company.ID, &company.Name, &company.Description, &company.Website, &company.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepo) Fetch(ctx context.Context) ([]domain.Company, error) {
	query := `SELECT id, name, description, website, created_at FROM companies ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var company domain.Company
		if err := rows.Scan(&company.ID, &company.Name, &company.Description, &company.Website, &company.CreatedAt); err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}

func (r *companyRepo) Update(ctx context.Context, company *domain.Company) error {
	query := `UPDATE companies SET name = $2, description = $3, website = $4 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, company.ID, company.Name, company.Description, company.Website)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
