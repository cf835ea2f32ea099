package usecase

import (
	"context"
	"time"

	"go-interview-tracker/internal/domain"
	"go-interview-tracker/pkg/apperror"
)

type dashboardUsecase struct {
	interviewRepo domain.InterviewRepository
	now           func() time.Time
}

func NewDashboardUsecase(interviewRepo domain.InterviewRepository) domain.DashboardUsecase {
	return &dashboardUsecase{
		interviewRepo: interviewRepo,
		now:           time.Now,
	}
}

func (u *dashboardUsecase) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	scope := callerScope(ctx)
	now := u.now()

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.AddDate(0, 0, 1)

	// Monday-start week containing today
	daysSinceMonday := (int(todayStart.Weekday()) + 6) % 7
	weekStart := todayStart.AddDate(0, 0, -daysSinceMonday)
	weekEnd := weekStart.AddDate(0, 0, 7)

	todayCount, err := u.interviewRepo.CountInRange(ctx, scope, todayStart, todayEnd)
	if err != nil {
		return nil, err
	}
	weekCount, err := u.interviewRepo.CountInRange(ctx, scope, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	statusStats, err := u.interviewRepo.CountByStatus(ctx, scope)
	if err != nil {
		return nil, err
	}
	if statusStats == nil {
		statusStats = []domain.StatusCount{}
	}
	needRecording, err := u.interviewRepo.CountMissingRecording(ctx, scope)
	if err != nil {
		return nil, err
	}
	total, err := u.interviewRepo.CountTotal(ctx, scope)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStats{
		TodayCount:    todayCount,
		WeekCount:     weekCount,
		StatusStats:   statusStats,
		NeedRecording: needRecording,
		TotalCount:    total,
	}, nil
}

func (u *dashboardUsecase) Calendar(ctx context.Context, year, month int) ([]domain.CalendarEntry, error) {
	if (year > 0) != (month > 0) {
		return nil, apperror.BadRequest("year and month must be provided together")
	}
	if month != 0 && (month < 1 || month > 12) {
		return nil, apperror.BadRequest("month must be between 1 and 12")
	}
	if year == 0 && month == 0 {
		now := u.now()
		year, month = now.Year(), int(now.Month())
	}

	entries, err := u.interviewRepo.Calendar(ctx, callerScope(ctx), year, month)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.CalendarEntry{}
	}
	return entries, nil
}
