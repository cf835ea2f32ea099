package domain

import (
	"context"
	"encoding/json"
	"io"
	"time"
)

// Interview method values
const (
	MethodPhone  = "phone"
	MethodVideo  = "video"
	MethodOnsite = "onsite"
)

// Interview round values
const (
	RoundFirst  = "first"
	RoundSecond = "second"
	RoundThird  = "third"
	RoundFinal  = "final"
	RoundOther  = "other"
)

// Interview status values
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Interview result values
const (
	ResultPending  = "pending"
	ResultPassed   = "passed"
	ResultRejected = "rejected"
	ResultOffer    = "offer"
	ResultDeclined = "declined"
)

type Interview struct {
	ID int64 `json:"id"`

	// Candidate
	CandidateName  string `json:"candidate_name" validate:"required"`
	CandidatePhone string `json:"candidate_phone" validate:"required"`
	CandidateEmail string `json:"candidate_email" validate:"required,email"`

	// Denormalized free text, always present
	CompanyName         string `json:"company_name" validate:"required"`
	PositionTitle       string `json:"position_title" validate:"required"`
	PositionDescription string `json:"position_description"`

	// Relational links, populated lazily by auto-linking
	CompanyID  *int64 `json:"company_id"`
	PositionID *int64 `json:"position_id"`

	InterviewMethod string    `json:"interview_method" validate:"required,oneof=phone video onsite"`
	InterviewRound  string    `json:"interview_round" validate:"required,oneof=first second third final other"`
	ScheduledTime   time.Time `json:"scheduled_time" validate:"required"`
	Duration        int       `json:"duration" validate:"gt=0"`

	InterviewerID    *int64 `json:"interviewer_id"`
	InterviewerNotes string `json:"interviewer_notes"`

	Status    string  `json:"status" validate:"required,oneof=scheduled in_progress completed cancelled"`
	Result    string  `json:"result" validate:"required,oneof=pending passed rejected offer declined"`
	Score     *int    `json:"score" validate:"omitempty,min=1,max=100"`
	Feedback  string  `json:"feedback"`
	Recording *string `json:"recording"`

	CreatedAt   time.Time  `json:"created_time"`
	UpdatedAt   time.Time  `json:"updated_time"`
	CompletedAt *time.Time `json:"completed_time"`
}

// RecordingUploaded is derived from the presence of a recording reference.
// It is intentionally not a stored field so it can never drift.
func (i *Interview) RecordingUploaded() bool {
	return i.Recording != nil && *i.Recording != ""
}

// MarshalJSON includes the derived recording_uploaded flag in API output.
func (i Interview) MarshalJSON() ([]byte, error) {
	type alias Interview
	return json.Marshal(struct {
		alias
		RecordingUploaded bool `json:"recording_uploaded"`
	}{alias(i), i.RecordingUploaded()})
}

// CanTransition reports whether the status machine allows moving to target.
// completed and cancelled are terminal.
func (i *Interview) CanTransition(target string) bool {
	if target == i.Status {
		return true
	}
	switch i.Status {
	case StatusScheduled:
		return target == StatusInProgress || target == StatusCompleted || target == StatusCancelled
	case StatusInProgress:
		return target == StatusCompleted || target == StatusCancelled
	default:
		return false
	}
}

// InterviewPatch carries partial-update fields; nil means "leave unchanged".
type InterviewPatch struct {
	CandidateName       *string    `json:"candidate_name"`
	CandidatePhone      *string    `json:"candidate_phone"`
	CandidateEmail      *string    `json:"candidate_email"`
	CompanyName         *string    `json:"company_name"`
	PositionTitle       *string    `json:"position_title"`
	PositionDescription *string    `json:"position_description"`
	InterviewMethod     *string    `json:"interview_method" binding:"omitempty,oneof=phone video onsite"`
	InterviewRound      *string    `json:"interview_round" binding:"omitempty,oneof=first second third final other"`
	ScheduledTime       *time.Time `json:"scheduled_time"`
	Duration            *int       `json:"duration" binding:"omitempty,gt=0"`
	InterviewerID       *int64     `json:"interviewer_id"`
	InterviewerNotes    *string    `json:"interviewer_notes"`
	Status              *string    `json:"status" binding:"omitempty,oneof=scheduled in_progress completed cancelled"`
	Result              *string    `json:"result" binding:"omitempty,oneof=pending passed rejected offer declined"`
	Score               *int       `json:"score" binding:"omitempty,min=1,max=100"`
	Feedback            *string    `json:"feedback"`
}

// InterviewFilter narrows interview listings. InterviewerID is set by the
// usecase for non-staff callers; it is never client-controlled.
type InterviewFilter struct {
	Status        string
	DateFrom      string // inclusive calendar date, 2006-01-02
	DateTo        string
	InterviewerID *int64
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type DashboardStats struct {
	TodayCount    int64         `json:"today_count"`
	WeekCount     int64         `json:"week_count"`
	StatusStats   []StatusCount `json:"status_stats"`
	NeedRecording int64         `json:"need_recording"`
	TotalCount    int64         `json:"total_count"`
}

type CalendarEntry struct {
	Date      string `json:"date"`
	Count     int64  `json:"count"`
	Completed int64  `json:"completed"`
	Scheduled int64  `json:"scheduled"`
}

type InterviewRepository interface {
	Create(ctx context.Context, interview *Interview) error
	GetByID(ctx context.Context, id int64) (*Interview, error)
	Fetch(ctx context.Context, filter InterviewFilter) ([]Interview, error)
	FetchUpcoming(ctx context.Context, now time.Time, limit int) ([]Interview, error)
	Update(ctx context.Context, interview *Interview) error
	Delete(ctx context.Context, id int64) error

	// Aggregates, scoped to an interviewer when interviewerID is non-nil.
	CountInRange(ctx context.Context, interviewerID *int64, from, to time.Time) (int64, error)
	CountByStatus(ctx context.Context, interviewerID *int64) ([]StatusCount, error)
	CountMissingRecording(ctx context.Context, interviewerID *int64) (int64, error)
	CountTotal(ctx context.Context, interviewerID *int64) (int64, error)
	Calendar(ctx context.Context, interviewerID *int64, year, month int) ([]CalendarEntry, error)
}

type InterviewUsecase interface {
	CreateInterview(ctx context.Context, interview *Interview) error
	GetInterview(ctx context.Context, id int64) (*Interview, error)
	ListInterviews(ctx context.Context, filter InterviewFilter) ([]Interview, error)
	UpdateInterview(ctx context.Context, id int64, patch *InterviewPatch) (*Interview, error)
	DeleteInterview(ctx context.Context, id int64) error
	UploadRecording(ctx context.Context, id int64, filename string, file io.Reader, size int64) (*Interview, error)
	CompleteInterview(ctx context.Context, id int64) (*Interview, error)
	UpcomingInterviews(ctx context.Context) ([]Interview, error)
	MyInterviews(ctx context.Context, status string) ([]Interview, error)
}

type DashboardUsecase interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	Calendar(ctx context.Context, year, month int) ([]CalendarEntry, error)
}
