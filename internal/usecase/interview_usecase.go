package usecase

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"time"

	"go-interview-tracker/internal/domain"
	"go-interview-tracker/pkg/apperror"
	"go-interview-tracker/pkg/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type interviewUsecase struct {
	interviewRepo domain.InterviewRepository
	companyRepo   domain.CompanyRepository
	positionRepo  domain.PositionRepository
	recordings    storage.RecordingStore
	validate      *validator.Validate
	now           func() time.Time
}

func NewInterviewUsecase(
	interviewRepo domain.InterviewRepository,
	companyRepo domain.CompanyRepository,
	positionRepo domain.PositionRepository,
	recordings storage.RecordingStore,
	validate *validator.Validate,
) domain.InterviewUsecase {
	return &interviewUsecase{
		interviewRepo: interviewRepo,
		companyRepo:   companyRepo,
		positionRepo:  positionRepo,
		recordings:    recordings,
		validate:      validate,
		now:           time.Now,
	}
}

// callerScope returns nil for staff callers (full visibility) and the
// caller's user id otherwise.
func callerScope(ctx context.Context) *int64 {
	if isStaff, _ := ctx.Value(domain.KeyIsStaff).(bool); isStaff {
		return nil
	}
	userID, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok {
		// No identity at all: scope to an id that matches nothing rather
		// than leaking the full collection.
		var none int64 = -1
		return &none
	}
	return &userID
}

// autoLink resolves free-text company/position names into relational links.
// Links are populated at most once: only while the FK is still empty.
func (u *interviewUsecase) autoLink(ctx context.Context, iv *domain.Interview) error {
	if iv.CompanyID == nil && iv.CompanyName != "" {
		company, err := u.companyRepo.GetOrCreateByName(ctx, iv.CompanyName, fmt.Sprintf("%s - 自动创建", iv.CompanyName), u.now())
		if err != nil {
			return err
		}
		iv.CompanyID = &company.ID
	}

	if iv.PositionID == nil && iv.PositionTitle != "" && iv.CompanyID != nil {
		description := iv.PositionDescription
		if description == "" {
			description = fmt.Sprintf("%s - 自动创建", iv.PositionTitle)
		}
		position, err := u.positionRepo.GetOrCreate(ctx, *iv.CompanyID, iv.PositionTitle, description, "暂无要求信息", "未指定", u.now())
		if err != nil {
			return err
		}
		iv.PositionID = &position.ID
	}
	return nil
}

func (u *interviewUsecase) CreateInterview(ctx context.Context, iv *domain.Interview) error {
	if iv.Status == "" {
		iv.Status = domain.StatusScheduled
	}
	if iv.Result == "" {
		iv.Result = domain.ResultPending
	}
	if iv.Duration == 0 {
		iv.Duration = 60
	}

	if err := u.validate.Struct(iv); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if !iv.ScheduledTime.After(u.now()) {
		return apperror.BadRequest("Scheduled time cannot be in the past")
	}

	if err := u.autoLink(ctx, iv); err != nil {
		return err
	}

	now := u.now()
	iv.CreatedAt = now
	iv.UpdatedAt = now

	return u.interviewRepo.Create(ctx, iv)
}

func (u *interviewUsecase) GetInterview(ctx context.Context, id int64) (*domain.Interview, error) {
	iv, err := u.interviewRepo.GetByID(ctx, id)
	if err == domain.ErrNotFound {
		return nil, apperror.NotFound("Interview not found")
	}
	if err != nil {
		return nil, err
	}
	if scope := callerScope(ctx); scope != nil {
		if iv.InterviewerID == nil || *iv.InterviewerID != *scope {
			return nil, apperror.NotFound("Interview not found")
		}
	}
	return iv, nil
}

func (u *interviewUsecase) ListInterviews(ctx context.Context, filter domain.InterviewFilter) ([]domain.Interview, error) {
	filter.InterviewerID = callerScope(ctx)
	return u.interviewRepo.Fetch(ctx, filter)
}

func (u *interviewUsecase) UpdateInterview(ctx context.Context, id int64, patch *domain.InterviewPatch) (*domain.Interview, error) {
	iv, err := u.GetInterview(ctx, id)
	if err != nil {
		return nil, err
	}

	// Delivered interviews are frozen for audit integrity
	if iv.Status == domain.StatusCompleted && iv.RecordingUploaded() {
		return nil, apperror.BadRequest("Completed interviews with an uploaded recording are read-only")
	}

	if patch.ScheduledTime != nil && !patch.ScheduledTime.After(u.now()) {
		return nil, apperror.BadRequest("Scheduled time cannot be in the past")
	}

	if patch.Status != nil && *patch.Status != iv.Status {
		if !iv.CanTransition(*patch.Status) {
			return nil, apperror.BadRequest(fmt.Sprintf("Cannot change status from %s to %s", iv.Status, *patch.Status))
		}
		if *patch.Status == domain.StatusCompleted && !iv.RecordingUploaded() {
			return nil, apperror.BadRequest("A recording must be uploaded before completing the interview")
		}
		iv.Status = *patch.Status
		// completed_time is written once and never overwritten
		if iv.Status == domain.StatusCompleted && iv.CompletedAt == nil {
			completed := u.now()
			iv.CompletedAt = &completed
		}
	}

	applyPatch(iv, patch)

	if err := u.validate.Struct(iv); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	// Names may have arrived before links existed; resolve them now
	if err := u.autoLink(ctx, iv); err != nil {
		return nil, err
	}

	iv.UpdatedAt = u.now()
	if err := u.interviewRepo.Update(ctx, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

func applyPatch(iv *domain.Interview, patch *domain.InterviewPatch) {
	if patch.CandidateName != nil {
		iv.CandidateName = *patch.CandidateName
	}
	if patch.CandidatePhone != nil {
		iv.CandidatePhone = *patch.CandidatePhone
	}
	if patch.CandidateEmail != nil {
		iv.CandidateEmail = *patch.CandidateEmail
	}
	if patch.CompanyName != nil {
		iv.CompanyName = *patch.CompanyName
	}
	if patch.PositionTitle != nil {
		iv.PositionTitle = *patch.PositionTitle
	}
	if patch.PositionDescription != nil {
		iv.PositionDescription = *patch.PositionDescription
	}
	if patch.InterviewMethod != nil {
		iv.InterviewMethod = *patch.InterviewMethod
	}
	if patch.InterviewRound != nil {
		iv.InterviewRound = *patch.InterviewRound
	}
	if patch.ScheduledTime != nil {
		iv.ScheduledTime = *patch.ScheduledTime
	}
	if patch.Duration != nil {
		iv.Duration = *patch.Duration
	}
	if patch.InterviewerID != nil {
		iv.InterviewerID = patch.InterviewerID
	}
	if patch.InterviewerNotes != nil {
		iv.InterviewerNotes = *patch.InterviewerNotes
	}
	if patch.Result != nil {
		iv.Result = *patch.Result
	}
	if patch.Score != nil {
		iv.Score = patch.Score
	}
	if patch.Feedback != nil {
		iv.Feedback = *patch.Feedback
	}
}

func (u *interviewUsecase) DeleteInterview(ctx context.Context, id int64) error {
	if _, err := u.GetInterview(ctx, id); err != nil {
		return err
	}
	return u.interviewRepo.Delete(ctx, id)
}

func (u *interviewUsecase) UploadRecording(ctx context.Context, id int64, filename string, file io.Reader, size int64) (*domain.Interview, error) {
	iv, err := u.GetInterview(ctx, id)
	if err != nil {
		return nil, err
	}

	// The audit freeze covers the recording itself, not just field edits
	if iv.Status == domain.StatusCompleted && iv.RecordingUploaded() {
		return nil, apperror.BadRequest("Completed interviews with an uploaded recording are read-only")
	}

	ext := filepath.Ext(filename)
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := fmt.Sprintf("%s/%s%s", u.now().Format("2006/01/02"), uuid.NewString(), ext)

	ref, err := u.recordings.Save(ctx, key, file, size, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store recording: %w", err)
	}

	iv.Recording = &ref
	iv.UpdatedAt = u.now()
	if err := u.interviewRepo.Update(ctx, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

func (u *interviewUsecase) CompleteInterview(ctx context.Context, id int64) (*domain.Interview, error) {
	iv, err := u.GetInterview(ctx, id)
	if err != nil {
		return nil, err
	}

	if !iv.RecordingUploaded() {
		return nil, apperror.BadRequest("A recording must be uploaded before completing the interview")
	}
	if !iv.CanTransition(domain.StatusCompleted) {
		return nil, apperror.BadRequest(fmt.Sprintf("Cannot complete an interview in status %s", iv.Status))
	}

	iv.Status = domain.StatusCompleted
	if iv.CompletedAt == nil {
		completed := u.now()
		iv.CompletedAt = &completed
	}
	iv.UpdatedAt = u.now()

	if err := u.interviewRepo.Update(ctx, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

func (u *interviewUsecase) UpcomingInterviews(ctx context.Context) ([]domain.Interview, error) {
	return u.interviewRepo.FetchUpcoming(ctx, u.now(), 10)
}

func (u *interviewUsecase) MyInterviews(ctx context.Context, status string) ([]domain.Interview, error) {
	userID, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	return u.interviewRepo.Fetch(ctx, domain.InterviewFilter{
		Status:        status,
		InterviewerID: &userID,
	})
}
