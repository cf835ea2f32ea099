package postgres

import (
	"context"
	"errors"
	"fmt"
	"go-interview-tracker/internal/domain"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const interviewColumns = `id, candidate_name, candidate_phone, candidate_email,
	company_name, position_title, position_description, company_id, position_id,
	interview_method, interview_round, scheduled_time, duration,
	interviewer_id, interviewer_notes, status, result, score, feedback,
	recording, created_at, updated_at, completed_at`

type interviewRepo struct {
	db *pgxpool.Pool
}

func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

func scanInterview(row pgx.Row, iv *domain.Interview) error {
	return row.Scan(
		&iv.ID, &iv.CandidateName, &iv.CandidatePhone, &iv.CandidateEmail,
		&iv.CompanyName, &iv.PositionTitle, &iv.PositionDescription, &iv.CompanyID, &iv.PositionID,
		&iv.InterviewMethod, &iv.InterviewRound, &iv.ScheduledTime, &iv.Duration,
		&iv.InterviewerID, &iv.InterviewerNotes, &iv.Status, &iv.Result, &iv.Score, &iv.Feedback,
		&iv.Recording, &iv.CreatedAt, &iv.UpdatedAt, &iv.CompletedAt,
	)
}

func (r *interviewRepo) Create(ctx context.Context, iv *domain.Interview) error {
	query := `INSERT INTO interviews (
		candidate_name, candidate_phone, candidate_email,
		company_name, position_title, position_description, company_id, position_id,
		interview_method, interview_round, scheduled_time, duration,
		interviewer_id, interviewer_notes, status, result, score, feedback,
		recording, created_at, updated_at, completed_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)
	RETURNING id`
	return r.db.QueryRow(ctx, query,
		iv.CandidateName, iv.CandidatePhone, iv.CandidateEmail,
		iv.CompanyName, iv.PositionTitle, iv.PositionDescription, iv.CompanyID, iv.PositionID,
		iv.InterviewMethod, iv.InterviewRound, iv.ScheduledTime, iv.Duration,
		iv.InterviewerID, iv.InterviewerNotes, iv.Status, iv.Result, iv.Score, iv.Feedback,
		iv.Recording, iv.CreatedAt, iv.UpdatedAt, iv.CompletedAt,
	).Scan(&iv.ID)
}

func (r *interviewRepo) GetByID(ctx context.Context, id int64) (*domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE id = $1`
	var iv domain.Interview
	err := scanInterview(r.db.QueryRow(ctx, query, id), &iv)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

func (r *interviewRepo) Fetch(ctx context.Context, filter domain.InterviewFilter) ([]domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews`
	var args []interface{}
	var where []string

	if filter.InterviewerID != nil {
		args = append(args, *filter.InterviewerID)
		where = append(where, fmt.Sprintf("interviewer_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.DateFrom != "" && filter.DateTo != "" {
		args = append(args, filter.DateFrom, filter.DateTo)
		where = append(where, fmt.Sprintf("scheduled_time::date BETWEEN $%d AND $%d", len(args)-1, len(args)))
	}

	for i, cond := range where {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY scheduled_time DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interviews []domain.Interview
	for rows.Next() {
		var iv domain.Interview
		if err := scanInterview(rows, &iv); err != nil {
			return nil, err
		}
		interviews = append(interviews, iv)
	}
	return interviews, rows.Err()
}

func (r *interviewRepo) FetchUpcoming(ctx context.Context, now time.Time, limit int) ([]domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews
		WHERE scheduled_time >= $1 AND status IN ('scheduled', 'in_progress')
		ORDER BY scheduled_time ASC LIMIT $2`
	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interviews []domain.Interview
	for rows.Next() {
		var iv domain.Interview
		if err := scanInterview(rows, &iv); err != nil {
			return nil, err
		}
		interviews = append(interviews, iv)
	}
	return interviews, rows.Err()
}

func (r *interviewRepo) Update(ctx context.Context, iv *domain.Interview) error {
	query := `UPDATE interviews SET
		candidate_name = $2, candidate_phone = $3, candidate_email = $4,
		company_name = $5, position_title = $6, position_description = $7,
		company_id = $8, position_id = $9,
		interview_method = $10, interview_round = $11, scheduled_time = $12, duration = $13,
		interviewer_id = $14, interviewer_notes = $15, status = $16, result = $17,
		score = $18, feedback = $19, recording = $20, updated_at = $21, completed_at = $22
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		iv.ID, iv.CandidateName, iv.CandidatePhone, iv.CandidateEmail,
		iv.CompanyName, iv.PositionTitle, iv.PositionDescription,
		iv.CompanyID, iv.PositionID,
		iv.InterviewMethod, iv.InterviewRound, iv.ScheduledTime, iv.Duration,
		iv.InterviewerID, iv.InterviewerNotes, iv.Status, iv.Result,
		iv.Score, iv.Feedback, iv.Recording, iv.UpdatedAt, iv.CompletedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *interviewRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM interviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scopeClause appends an interviewer filter when the caller is not staff.
func scopeClause(interviewerID *int64, args []interface{}, prefix string) (string, []interface{}) {
	if interviewerID == nil {
		return "", args
	}
	args = append(args, *interviewerID)
	return fmt.Sprintf("%s interviewer_id = $%d", prefix, len(args)), args
}

func (r *interviewRepo) CountInRange(ctx context.Context, interviewerID *int64, from, to time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM interviews WHERE scheduled_time >= $1 AND scheduled_time < $2`
	args := []interface{}{from, to}
	clause, args := scopeClause(interviewerID, args, " AND")
	var count int64
	err := r.db.QueryRow(ctx, query+clause, args...).Scan(&count)
	return count, err
}

func (r *interviewRepo) CountByStatus(ctx context.Context, interviewerID *int64) ([]domain.StatusCount, error) {
	query := `SELECT status, COUNT(*) FROM interviews`
	var args []interface{}
	clause, args := scopeClause(interviewerID, args, " WHERE")
	rows, err := r.db.Query(ctx, query+clause+` GROUP BY status`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.StatusCount
	for rows.Next() {
		var sc domain.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		stats = append(stats, sc)
	}
	return stats, rows.Err()
}

func (r *interviewRepo) CountMissingRecording(ctx context.Context, interviewerID *int64) (int64, error) {
	query := `SELECT COUNT(*) FROM interviews WHERE status = 'completed' AND (recording IS NULL OR recording = '')`
	var args []interface{}
	clause, args := scopeClause(interviewerID, args, " AND")
	var count int64
	err := r.db.QueryRow(ctx, query+clause, args...).Scan(&count)
	return count, err
}

func (r *interviewRepo) CountTotal(ctx context.Context, interviewerID *int64) (int64, error) {
	query := `SELECT COUNT(*) FROM interviews`
	var args []interface{}
	clause, args := scopeClause(interviewerID, args, " WHERE")
	var count int64
	err := r.db.QueryRow(ctx, query+clause, args...).Scan(&count)
	return count, err
}

func (r *interviewRepo) Calendar(ctx context.Context, interviewerID *int64, year, month int) ([]domain.CalendarEntry, error) {
	query := `SELECT scheduled_time::date AS day,
		COUNT(*),
		COUNT(*) FILTER (WHERE status = 'completed'),
		COUNT(*) FILTER (WHERE status = 'scheduled')
	FROM interviews`

	var args []interface{}
	var where []string
	if interviewerID != nil {
		args = append(args, *interviewerID)
		where = append(where, fmt.Sprintf("interviewer_id = $%d", len(args)))
	}
	if year > 0 && month > 0 {
		args = append(args, year, month)
		where = append(where, fmt.Sprintf("EXTRACT(YEAR FROM scheduled_time) = $%d AND EXTRACT(MONTH FROM scheduled_time) = $%d", len(args)-1, len(args)))
	}
	for i, cond := range where {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " GROUP BY day ORDER BY day"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.CalendarEntry
	for rows.Next() {
		var day time.Time
		var entry domain.CalendarEntry
		if err := rows.Scan(&day, &entry.Count, &entry.Completed, &entry.Scheduled); err != nil {
			return nil, err
		}
		entry.Date = day.Format("2006-01-02")
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
