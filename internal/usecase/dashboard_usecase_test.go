package usecase_test

import (
	"testing"
	"time"

	"go-interview-tracker/internal/domain"
	"go-interview-tracker/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDashboardUC(ivRepo *MockInterviewRepo) domain.DashboardUsecase {
	uc := usecase.NewDashboardUsecase(ivRepo)
	usecase.SetClock(uc, fixedClock)
	return uc
}

func TestDashboardStats(t *testing.T) {
	t.Run("Should bucket today and the Monday-start week", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		uc := newDashboardUC(ivRepo)

		// fixedNow is Monday 2025-06-16 10:00 UTC
		todayStart := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
		todayEnd := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)
		weekStart := todayStart
		weekEnd := time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC)

		ivRepo.On("CountInRange", mock.Anything, (*int64)(nil), todayStart, todayEnd).Return(int64(2), nil)
		ivRepo.On("CountInRange", mock.Anything, (*int64)(nil), weekStart, weekEnd).Return(int64(5), nil)
		ivRepo.On("CountByStatus", mock.Anything, (*int64)(nil)).Return([]domain.StatusCount{
			{Status: domain.StatusScheduled, Count: 3},
			{Status: domain.StatusCompleted, Count: 2},
		}, nil)
		ivRepo.On("CountMissingRecording", mock.Anything, (*int64)(nil)).Return(int64(1), nil)
		ivRepo.On("CountTotal", mock.Anything, (*int64)(nil)).Return(int64(5), nil)

		stats, err := uc.Stats(staffCtx())
		assert.NoError(t, err)
		assert.Equal(t, int64(2), stats.TodayCount)
		assert.Equal(t, int64(5), stats.WeekCount)
		assert.Equal(t, int64(1), stats.NeedRecording)
		assert.Equal(t, int64(5), stats.TotalCount)
		assert.Len(t, stats.StatusStats, 2)
		ivRepo.AssertExpectations(t)
	})

	t.Run("Should scope every count for non-staff callers", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		uc := newDashboardUC(ivRepo)

		scoped := mock.MatchedBy(func(id *int64) bool { return id != nil && *id == 7 })
		ivRepo.On("CountInRange", mock.Anything, scoped, mock.Anything, mock.Anything).Return(int64(0), nil)
		ivRepo.On("CountByStatus", mock.Anything, scoped).Return([]domain.StatusCount{}, nil)
		ivRepo.On("CountMissingRecording", mock.Anything, scoped).Return(int64(0), nil)
		ivRepo.On("CountTotal", mock.Anything, scoped).Return(int64(0), nil)

		stats, err := uc.Stats(userCtx(7))
		assert.NoError(t, err)
		assert.NotNil(t, stats.StatusStats)
		ivRepo.AssertExpectations(t)
	})
}

func TestDashboardCalendar(t *testing.T) {
	t.Run("Should reject year without month", func(t *testing.T) {
		uc := newDashboardUC(new(MockInterviewRepo))
		_, err := uc.Calendar(staffCtx(), 2025, 0)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "together")
	})

	t.Run("Should reject an out-of-range month", func(t *testing.T) {
		uc := newDashboardUC(new(MockInterviewRepo))
		_, err := uc.Calendar(staffCtx(), 2025, 13)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "between 1 and 12")
	})

	t.Run("Should pass year and month through with caller scope", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		uc := newDashboardUC(ivRepo)
		ivRepo.On("Calendar", mock.Anything, (*int64)(nil), 2025, 6).Return([]domain.CalendarEntry{
			{Date: "2025-06-16", Count: 3, Completed: 1, Scheduled: 2},
		}, nil)

		entries, err := uc.Calendar(staffCtx(), 2025, 6)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, "2025-06-16", entries[0].Date)
	})

	t.Run("Should default to the current month and never return nil", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		uc := newDashboardUC(ivRepo)
		ivRepo.On("Calendar", mock.Anything, (*int64)(nil), 2025, 6).Return(nil, nil)

		entries, err := uc.Calendar(staffCtx(), 0, 0)
		assert.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
		ivRepo.AssertExpectations(t)
	})
}
