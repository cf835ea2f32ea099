package postgres

import (
	"context"
	"errors"
	"fmt"
	"go-interview-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const studentColumns = `id, name, id_card, phone, father_phone, mother_phone, home_address,
	education_level, graduation_date, school_name, major, education_status,
	project_manager, employment_guide, marketing_department, certificates,
	created_at, updated_at`

type studentRepo struct {
	db *pgxpool.Pool
}

func NewStudentRepository(db *pgxpool.Pool) domain.StudentRepository {
	return &studentRepo{db: db}
}

func scanStudent(row pgx.Row, s *domain.Student) error {
	return row.Scan(
		&s.ID, &s.Name, &s.IDCard, &s.Phone, &s.FatherPhone, &s.MotherPhone, &s.HomeAddress,
		&s.EducationLevel, &s.GraduationDate, &s.SchoolName, &s.Major, &s.EducationStatus,
		&s.ProjectManager, &s.EmploymentGuide, &s.MarketingDepartment, &s.Certificates,
		&s.CreatedAt, &s.UpdatedAt,
	)
}

func (r *studentRepo) Create(ctx context.Context, s *domain.Student) error {
	query := `INSERT INTO students (
		name, id_card, phone, father_phone, mother_phone, home_address,
		education_level, graduation_date, school_name, major, education_status,
		project_manager, employment_guide, marketing_department, certificates,
		created_at, updated_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
	RETURNING id`
	return r.db.QueryRow(ctx, query,
		s.Name, s.IDCard, s.Phone, s.FatherPhone, s.MotherPhone, s.HomeAddress,
		s.EducationLevel, s.GraduationDate, s.SchoolName, s.Major, s.EducationStatus,
		s.ProjectManager, s.EmploymentGuide, s.MarketingDepartment, s.Certificates,
		s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
}

func (r *studentRepo) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	var s domain.Student
	err := scanStudent(r.db.QueryRow(ctx, query, id), &s)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *studentRepo) Fetch(ctx context.Context, filter domain.StudentFilter) ([]domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students`
	var args []interface{}
	var where []string

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR id_card ILIKE $%d OR phone ILIKE $%d OR school_name ILIKE $%d)", n, n, n, n))
	}
	if filter.Department != "" {
		args = append(args, filter.Department)
		where = append(where, fmt.Sprintf("marketing_department = $%d", len(args)))
	}
	if filter.Education != "" {
		args = append(args, filter.Education)
		where = append(where, fmt.Sprintf("education_level = $%d", len(args)))
	}

	for i, cond := range where {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []domain.Student
	for rows.Next() {
		var s domain.Student
		if err := scanStudent(rows, &s); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func (r *studentRepo) Update(ctx context.Context, s *domain.Student) error {
	query := `UPDATE students SET
		name = $2, id_card = $3, phone = $4, father_phone = $5, mother_phone = $6,
		home_address = $7, education_level = $8, graduation_date = $9, school_name = $10,
		major = $11, education_status = $12, project_manager = $13, employment_guide = $14,
		marketing_department = $15, certificates = $16, updated_at = $17
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		s.ID, s.Name, s.IDCard, s.Phone, s.FatherPhone, s.MotherPhone,
		s.HomeAddress, s.EducationLevel, s.GraduationDate, s.SchoolName,
		s.Major, s.EducationStatus, s.ProjectManager, s.EmploymentGuide,
		s.MarketingDepartment, s.Certificates, s.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *studentRepo) Delete(ctx context.Context, id int64) error {
	// education_histories and certificates cascade via FK
	result, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpsertByIDCard inserts or updates keyed on the unique id_card column.
// xmax = 0 distinguishes a fresh insert from a conflict update.
func (r *studentRepo) UpsertByIDCard(ctx context.Context, s *domain.Student) (bool, error) {
	query := `INSERT INTO students (
		name, id_card, phone, father_phone, mother_phone, home_address,
		education_level, graduation_date, school_name, major, education_status,
		project_manager, employment_guide, marketing_department, certificates,
		created_at, updated_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
	ON CONFLICT (id_card) DO UPDATE SET
		name = EXCLUDED.name, phone = EXCLUDED.phone,
		father_phone = EXCLUDED.father_phone, mother_phone = EXCLUDED.mother_phone,
		home_address = EXCLUDED.home_address, education_level = EXCLUDED.education_level,
		graduation_date = EXCLUDED.graduation_date, school_name = EXCLUDED.school_name,
		major = EXCLUDED.major, project_manager = EXCLUDED.project_manager,
		employment_guide = EXCLUDED.employment_guide,
		marketing_department = EXCLUDED.marketing_department,
		certificates = EXCLUDED.certificates, updated_at = EXCLUDED.updated_at
	RETURNING id, (xmax = 0) AS inserted`
	var inserted bool
	err := r.db.QueryRow(ctx, query,
		s.Name, s.IDCard, s.Phone, s.FatherPhone, s.MotherPhone, s.HomeAddress,
		s.EducationLevel, s.GraduationDate, s.SchoolName, s.Major, s.EducationStatus,
		s.ProjectManager, s.EmploymentGuide, s.MarketingDepartment, s.Certificates,
		s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID, &inserted)
	return inserted, err
}

func (r *studentRepo) FetchEducationHistories(ctx context.Context, studentID int64) ([]domain.EducationHistory, error) {
	query := `SELECT id, student_id, education_level, graduation_date, school_name, major
		FROM education_histories`
	var args []interface{}
	if studentID > 0 {
		query += ` WHERE student_id = $1`
		args = append(args, studentID)
	}
	query += ` ORDER BY graduation_date DESC`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var histories []domain.EducationHistory
	for rows.Next() {
		var h domain.EducationHistory
		if err := rows.Scan(&h.ID, &h.StudentID, &h.EducationLevel, &h.GraduationDate, &h.SchoolName, &h.Major); err != nil {
			return nil, err
		}
		histories = append(histories, h)
	}
	return histories, rows.Err()
}

func (r *studentRepo) GetEducationHistory(ctx context.Context, id int64) (*domain.EducationHistory, error) {
	query := `SELECT id, student_id, education_level, graduation_date, school_name, major
		FROM education_histories WHERE id = $1`
	var h domain.EducationHistory
	err := r.db.QueryRow(ctx, query, id).Scan(&h.ID, &h.StudentID, &h.EducationLevel, &h.GraduationDate, &h.SchoolName, &h.Major)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *studentRepo) CreateEducationHistory(ctx context.Context, h *domain.EducationHistory) error {
	query := `INSERT INTO education_histories (student_id, education_level, graduation_date, school_name, major)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRow(ctx, query, h.StudentID, h.EducationLevel, h.GraduationDate, h.SchoolName, h.Major).Scan(&h.ID)
}

func (r *studentRepo) UpdateEducationHistory(ctx context.Context, h *domain.EducationHistory) error {
	query := `UPDATE education_histories
		SET education_level = $2, graduation_date = $3, school_name = $4, major = $5
		WHERE id = $1`
	result, err := r.db.Exec(ctx, query, h.ID, h.EducationLevel, h.GraduationDate, h.SchoolName, h.Major)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *studentRepo) DeleteEducationHistory(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM education_histories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *studentRepo) FetchCertificates(ctx context.Context, studentID int64) ([]domain.Certificate, error) {
	query := `SELECT id, student_id, name, issue_date, issuing_authority, certificate_number
		FROM certificates`
	var args []interface{}
	if studentID > 0 {
		query += ` WHERE student_id = $1`
		args = append(args, studentID)
	}
	query += ` ORDER BY issue_date DESC`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certificates []domain.Certificate
	for rows.Next() {
		var c domain.Certificate
		if err := rows.Scan(&c.ID, &c.StudentID, &c.Name, &c.IssueDate, &c.IssuingAuthority, &c.CertificateNumber); err != nil {
			return nil, err
		}
		certificates = append(certificates, c)
	}
	return certificates, rows.Err()
}

func (r *studentRepo) GetCertificate(ctx context.Context, id int64) (*domain.Certificate, error) {
	query := `SELECT id, student_id, name, issue_date, issuing_authority, certificate_number
		FROM certificates WHERE id = $1`
	var c domain.Certificate
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.StudentID, &c.Name, &c.IssueDate, &c.IssuingAuthority, &c.CertificateNumber)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *studentRepo) CreateCertificate(ctx context.Context, c *domain.Certificate) error {
	query := `INSERT INTO certificates (student_id, name, issue_date, issuing_authority, certificate_number)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRow(ctx, query, c.StudentID, c.Name, c.IssueDate, c.IssuingAuthority, c.CertificateNumber).Scan(&c.ID)
}

func (r *studentRepo) UpdateCertificate(ctx context.Context, c *domain.Certificate) error {
	query := `UPDATE certificates
		SET name = $2, issue_date = $3, issuing_authority = $4, certificate_number = $5
		WHERE id = $1`
	result, err := r.db.Exec(ctx, query, c.ID, c.Name, c.IssueDate, c.IssuingAuthority, c.CertificateNumber)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *studentRepo) DeleteCertificate(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM certificates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
