package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"go-interview-tracker/internal/domain"
	"go-interview-tracker/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC) // a Monday

func fixedClock() time.Time { return fixedNow }

func staffCtx() context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, int64(1))
	return context.WithValue(ctx, domain.KeyIsStaff, true)
}

func userCtx(id int64) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, id)
	return context.WithValue(ctx, domain.KeyIsStaff, false)
}

func validInterview(interviewerID int64) *domain.Interview {
	return &domain.Interview{
		ID:              42,
		CandidateName:   "张伟",
		CandidatePhone:  "13812345678",
		CandidateEmail:  "zhangwei@example.com",
		CompanyName:     "阿里巴巴",
		PositionTitle:   "Go开发工程师",
		InterviewMethod: domain.MethodVideo,
		InterviewRound:  domain.RoundFirst,
		ScheduledTime:   fixedNow.Add(48 * time.Hour),
		Duration:        60,
		InterviewerID:   &interviewerID,
		Status:          domain.StatusScheduled,
		Result:          domain.ResultPending,
	}
}

func newInterviewUC(ivRepo *MockInterviewRepo, coRepo *MockCompanyRepo, posRepo *MockPositionRepo, store *MockRecordingStore) domain.InterviewUsecase {
	uc := usecase.NewInterviewUsecase(ivRepo, coRepo, posRepo, store, validator.New())
	usecase.SetClock(uc, fixedClock)
	return uc
}

func TestCreateInterview(t *testing.T) {
	t.Run("Should reject a scheduled time in the past", func(t *testing.T) {
		uc := newInterviewUC(new(MockInterviewRepo), new(MockCompanyRepo), new(MockPositionRepo), new(MockRecordingStore))

		iv := validInterview(1)
		iv.ScheduledTime = fixedNow.Add(-time.Hour)
		err := uc.CreateInterview(staffCtx(), iv)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Scheduled time cannot be in the past")
	})

	t.Run("Should auto-link company and position from free text", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		coRepo := new(MockCompanyRepo)
		posRepo := new(MockPositionRepo)
		uc := newInterviewUC(ivRepo, coRepo, posRepo, new(MockRecordingStore))

		coRepo.On("GetOrCreateByName", mock.Anything, "阿里巴巴", "阿里巴巴 - 自动创建", fixedNow).
			Return(&domain.Company{ID: 3, Name: "阿里巴巴"}, nil)
		posRepo.On("GetOrCreate", mock.Anything, int64(3), "Go开发工程师", mock.Anything, "暂无要求信息", "未指定", fixedNow).
			Return(&domain.Position{ID: 5, CompanyID: 3, Title: "Go开发工程师"}, nil)
		ivRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		iv := validInterview(1)
		iv.Duration = 0 // exercise the default
		err := uc.CreateInterview(staffCtx(), iv)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), *iv.CompanyID)
		assert.Equal(t, int64(5), *iv.PositionID)
		assert.Equal(t, 60, iv.Duration)
		assert.Equal(t, domain.StatusScheduled, iv.Status)
		assert.Equal(t, domain.ResultPending, iv.Result)
		coRepo.AssertExpectations(t)
		posRepo.AssertExpectations(t)
		ivRepo.AssertExpectations(t)
	})

	t.Run("Should not re-link when foreign keys are already set", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		coRepo := new(MockCompanyRepo)
		posRepo := new(MockPositionRepo)
		uc := newInterviewUC(ivRepo, coRepo, posRepo, new(MockRecordingStore))

		ivRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		iv := validInterview(1)
		companyID, positionID := int64(3), int64(5)
		iv.CompanyID = &companyID
		iv.PositionID = &positionID
		err := uc.CreateInterview(staffCtx(), iv)

		assert.NoError(t, err)
		coRepo.AssertNotCalled(t, "GetOrCreateByName", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		posRepo.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should reject missing required fields", func(t *testing.T) {
		uc := newInterviewUC(new(MockInterviewRepo), new(MockCompanyRepo), new(MockPositionRepo), new(MockRecordingStore))

		err := uc.CreateInterview(staffCtx(), &domain.Interview{ScheduledTime: fixedNow.Add(time.Hour)})
		assert.Error(t, err)
	})
}

func TestGetInterviewScoping(t *testing.T) {
	ivRepo := new(MockInterviewRepo)
	uc := newInterviewUC(ivRepo, new(MockCompanyRepo), new(MockPositionRepo), new(MockRecordingStore))

	t.Run("Staff can read any interview", func(t *testing.T) {
		ivRepo.On("GetByID", mock.Anything, int64(42)).Return(validInterview(9), nil).Once()
		iv, err := uc.GetInterview(staffCtx(), 42)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), iv.ID)
	})

	t.Run("Non-staff cannot read another interviewer's interview", func(t *testing.T) {
		ivRepo.On("GetByID", mock.Anything, int64(42)).Return(validInterview(9), nil).Once()
		_, err := uc.GetInterview(userCtx(7), 42)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("Non-staff can read their own interview", func(t *testing.T) {
		ivRepo.On("GetByID", mock.Anything, int64(42)).Return(validInterview(7), nil).Once()
		iv, err := uc.GetInterview(userCtx(7), 42)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), *iv.InterviewerID)
	})
}

func TestListInterviewsScoping(t *testing.T) {
	ivRepo := new(MockInterviewRepo)
	uc := newInterviewUC(ivRepo, new(MockCompanyRepo), new(MockPositionRepo), new(MockRecordingStore))

	t.Run("Staff filter carries no interviewer scope", func(t *testing.T) {
		ivRepo.On("Fetch", mock.Anything, mock.MatchedBy(func(f domain.InterviewFilter) bool {
			return f.InterviewerID == nil
		})).Return([]domain.Interview{}, nil).Once()

		_, err := uc.ListInterviews(staffCtx(), domain.InterviewFilter{})
		assert.NoError(t, err)
	})

	t.Run("Non-staff filter is pinned to the caller", func(t *testing.T) {
		ivRepo.On("Fetch", mock.Anything, mock.MatchedBy(func(f domain.InterviewFilter) bool {
			return f.InterviewerID != nil && *f.InterviewerID == 7
		})).Return([]domain.Interview{}, nil).Once()

		_, err := uc.ListInterviews(userCtx(7), domain.InterviewFilter{})
		assert.NoError(t, err)
	})
}

func TestUpdateInterviewLifecycle(t *testing.T) {
	t.Run("Should refuse completing without a recording", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		uc := newInterviewUC(ivRepo, new(MockCompanyRepo), new(MockPositionRepo), new(MockRecordingStore))
		ivRepo.On("GetByID", mock.Anything, int64(42)).Return(validInterview(1), nil)

		completed := domain.StatusCompleted
		_, err := uc.UpdateInterview(staffCtx(), 42, &domain.InterviewPatch{Status: &completed})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "recording must be uploaded")
	})

	t.Run("Should refuse leaving a terminal status", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		uc := newInterviewUC(ivRepo, new(MockCompanyRepo), new(MockPositionRepo), new(MockRecordingStore))
		iv := validInterview(1)
		iv.Status = domain.StatusCancelled
		ivRepo.On("GetByID", mock.Anything, int64(42)).Return(iv, nil)

		inProgress := domain.StatusInProgress
		_, err := uc.UpdateInterview(staffCtx(), 42, &domain.InterviewPatch{Status: &inProgress})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Cannot change status from cancelled to in_progress")
	})

	t.Run("Should freeze completed interviews that have a recording", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		uc := newInterviewUC(ivRepo, new(MockCompanyRepo), new(MockPositionRepo), new(MockRecordingStore))
		iv := validInterview(1)
		recording := "interview_recordings/2025/06/14/rec.mp3"
		completedAt := fixedNow.Add(-24 * time.Hour)
		iv.Status = domain.StatusCompleted
		iv.Recording = &recording
		iv.CompletedAt = &completedAt
		ivRepo.On("GetByID", mock.Anything, int64(42)).Return(iv, nil)

		notes := "late edit"
		_, err := uc.UpdateInterview(staffCtx(), 42, &domain.InterviewPatch{InterviewerNotes: &notes})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "read-only")
	})

	t.Run("Should stamp completed_time exactly once", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		coRepo := new(MockCompanyRepo)
		posRepo := new(MockPositionRepo)
		uc := newInterviewUC(ivRepo, coRepo, posRepo, new(MockRecordingStore))

		iv := validInterview(1)
		recording := "interview_recordings/2025/06/14/rec.mp3"
		iv.Status = domain.StatusInProgress
		iv.Recording = &recording
		companyID, positionID := int64(3), int64(5)
		iv.CompanyID = &companyID
		iv.PositionID = &positionID
		ivRepo.On("GetByID", mock.Anything, int64(42)).Return(iv, nil)
		ivRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		completed := domain.StatusCompleted
		updated, err := uc.UpdateInterview(staffCtx(), 42, &domain.InterviewPatch{Status: &completed})
		assert.NoError(t, err)
		assert.NotNil(t, updated.CompletedAt)
		assert.Equal(t, fixedNow, *updated.CompletedAt)
	})
}

func TestCompleteInterview(t *testing.T) {
	t.Run("Should refuse without a recording", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		uc := newInterviewUC(ivRepo, new(MockCompanyRepo), new(MockPositionRepo), new(MockRecordingStore))
		ivRepo.On("GetByID", mock.Anything, int64(42)).Return(validInterview(1), nil)

		_, err := uc.CompleteInterview(staffCtx(), 42)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "recording must be uploaded")
	})

	t.Run("Should complete and keep an existing completed_time", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		uc := newInterviewUC(ivRepo, new(MockCompanyRepo), new(MockPositionRepo), new(MockRecordingStore))

		iv := validInterview(1)
		recording := "interview_recordings/2025/06/14/rec.mp3"
		earlier := fixedNow.Add(-2 * time.Hour)
		iv.Status = domain.StatusInProgress
		iv.Recording = &recording
		iv.CompletedAt = &earlier
		ivRepo.On("GetByID", mock.Anything, int64(42)).Return(iv, nil)
		ivRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		updated, err := uc.CompleteInterview(staffCtx(), 42)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, updated.Status)
		assert.Equal(t, earlier, *updated.CompletedAt)
	})

	t.Run("Should refuse completing a cancelled interview", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		uc := newInterviewUC(ivRepo, new(MockCompanyRepo), new(MockPositionRepo), new(MockRecordingStore))

		iv := validInterview(1)
		recording := "interview_recordings/2025/06/14/rec.mp3"
		iv.Status = domain.StatusCancelled
		iv.Recording = &recording
		ivRepo.On("GetByID", mock.Anything, int64(42)).Return(iv, nil)

		_, err := uc.CompleteInterview(staffCtx(), 42)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Cannot complete an interview in status cancelled")
	})
}

func TestUploadRecording(t *testing.T) {
	t.Run("Should store the file and attach the reference", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		store := new(MockRecordingStore)
		uc := newInterviewUC(ivRepo, new(MockCompanyRepo), new(MockPositionRepo), store)

		iv := validInterview(1)
		ivRepo.On("GetByID", mock.Anything, int64(42)).Return(iv, nil)
		store.On("Save", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "2025/06/16/") && strings.HasSuffix(key, ".mp3")
		}), mock.Anything, int64(1024), mock.Anything).
			Return("interview_recordings/2025/06/16/rec.mp3", nil)
		ivRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		updated, err := uc.UploadRecording(staffCtx(), 42, "session.mp3", strings.NewReader("data"), 1024)
		assert.NoError(t, err)
		assert.True(t, updated.RecordingUploaded())
		assert.Equal(t, "interview_recordings/2025/06/16/rec.mp3", *updated.Recording)
		store.AssertExpectations(t)
	})

	t.Run("Should allow replacing the recording while the interview is open", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		store := new(MockRecordingStore)
		uc := newInterviewUC(ivRepo, new(MockCompanyRepo), new(MockPositionRepo), store)

		iv := validInterview(1)
		existing := "interview_recordings/2025/06/14/first-take.mp3"
		iv.Status = domain.StatusInProgress
		iv.Recording = &existing
		ivRepo.On("GetByID", mock.Anything, int64(42)).Return(iv, nil)
		store.On("Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("interview_recordings/2025/06/16/second-take.mp3", nil)
		ivRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		updated, err := uc.UploadRecording(staffCtx(), 42, "second-take.mp3", strings.NewReader("data"), 512)
		assert.NoError(t, err)
		assert.Equal(t, "interview_recordings/2025/06/16/second-take.mp3", *updated.Recording)
	})

	t.Run("Should refuse replacing the recording of a delivered interview", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		store := new(MockRecordingStore)
		uc := newInterviewUC(ivRepo, new(MockCompanyRepo), new(MockPositionRepo), store)

		iv := validInterview(1)
		original := "interview_recordings/2025/06/14/original.mp3"
		completedAt := fixedNow.Add(-24 * time.Hour)
		iv.Status = domain.StatusCompleted
		iv.Recording = &original
		iv.CompletedAt = &completedAt
		ivRepo.On("GetByID", mock.Anything, int64(42)).Return(iv, nil)

		_, err := uc.UploadRecording(staffCtx(), 42, "replacement.mp3", strings.NewReader("data"), 512)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "read-only")
		assert.Equal(t, original, *iv.Recording)
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		ivRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestMyInterviews(t *testing.T) {
	t.Run("Should fail without an authenticated user", func(t *testing.T) {
		uc := newInterviewUC(new(MockInterviewRepo), new(MockCompanyRepo), new(MockPositionRepo), new(MockRecordingStore))
		_, err := uc.MyInterviews(context.Background(), "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not authenticated")
	})

	t.Run("Should query only the caller's interviews", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		uc := newInterviewUC(ivRepo, new(MockCompanyRepo), new(MockPositionRepo), new(MockRecordingStore))
		ivRepo.On("Fetch", mock.Anything, mock.MatchedBy(func(f domain.InterviewFilter) bool {
			return f.InterviewerID != nil && *f.InterviewerID == 7 && f.Status == domain.StatusScheduled
		})).Return([]domain.Interview{}, nil)

		_, err := uc.MyInterviews(userCtx(7), domain.StatusScheduled)
		assert.NoError(t, err)
		ivRepo.AssertExpectations(t)
	})
}

func TestUpcomingInterviews(t *testing.T) {
	ivRepo := new(MockInterviewRepo)
	uc := newInterviewUC(ivRepo, new(MockCompanyRepo), new(MockPositionRepo), new(MockRecordingStore))
	ivRepo.On("FetchUpcoming", mock.Anything, fixedNow, 10).Return([]domain.Interview{}, nil)

	_, err := uc.UpcomingInterviews(staffCtx())
	assert.NoError(t, err)
	ivRepo.AssertExpectations(t)
}
