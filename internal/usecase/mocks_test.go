package usecase_test

import (
	"context"
	"io"
	"time"

	"go-interview-tracker/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockInterviewRepo struct {
	mock.Mock
}

func (m *MockInterviewRepo) Create(ctx context.Context, interview *domain.Interview) error {
	return m.Called(ctx, interview).Error(0)
}

func (m *MockInterviewRepo) GetByID(ctx context.Context, id int64) (*domain.Interview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interview), args.Error(1)
}

func (m *MockInterviewRepo) Fetch(ctx context.Context, filter domain.InterviewFilter) ([]domain.Interview, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interview), args.Error(1)
}

func (m *MockInterviewRepo) FetchUpcoming(ctx context.Context, now time.Time, limit int) ([]domain.Interview, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interview), args.Error(1)
}

func (m *MockInterviewRepo) Update(ctx context.Context, interview *domain.Interview) error {
	return m.Called(ctx, interview).Error(0)
}

func (m *MockInterviewRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockInterviewRepo) CountInRange(ctx context.Context, interviewerID *int64, from, to time.Time) (int64, error) {
	args := m.Called(ctx, interviewerID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInterviewRepo) CountByStatus(ctx context.Context, interviewerID *int64) ([]domain.StatusCount, error) {
	args := m.Called(ctx, interviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusCount), args.Error(1)
}

func (m *MockInterviewRepo) CountMissingRecording(ctx context.Context, interviewerID *int64) (int64, error) {
	args := m.Called(ctx, interviewerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInterviewRepo) CountTotal(ctx context.Context, interviewerID *int64) (int64, error) {
	args := m.Called(ctx, interviewerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInterviewRepo) Calendar(ctx context.Context, interviewerID *int64, year, month int) ([]domain.CalendarEntry, error) {
	args := m.Called(ctx, interviewerID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CalendarEntry), args.Error(1)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Create(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *MockCompanyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) GetOrCreateByName(ctx context.Context, name, description string, now time.Time) (*domain.Company, error) {
	args := m.Called(ctx, name, description, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) Fetch(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) Update(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *MockCompanyRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockPositionRepo struct {
	mock.Mock
}

func (m *MockPositionRepo) Create(ctx context.Context, position *domain.Position) error {
	return m.Called(ctx, position).Error(0)
}

func (m *MockPositionRepo) GetByID(ctx context.Context, id int64) (*domain.PositionWithCompany, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PositionWithCompany), args.Error(1)
}

func (m *MockPositionRepo) GetOrCreate(ctx context.Context, companyID int64, title, description, requirements, level string, now time.Time) (*domain.Position, error) {
	args := m.Called(ctx, companyID, title, description, requirements, level, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Position), args.Error(1)
}

func (m *MockPositionRepo) Fetch(ctx context.Context, companyID int64) ([]domain.PositionWithCompany, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PositionWithCompany), args.Error(1)
}

func (m *MockPositionRepo) Update(ctx context.Context, position *domain.Position) error {
	return m.Called(ctx, position).Error(0)
}

func (m *MockPositionRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockStudentRepo struct {
	mock.Mock
}

func (m *MockStudentRepo) Create(ctx context.Context, student *domain.Student) error {
	return m.Called(ctx, student).Error(0)
}

func (m *MockStudentRepo) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockStudentRepo) Fetch(ctx context.Context, filter domain.StudentFilter) ([]domain.Student, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Student), args.Error(1)
}

func (m *MockStudentRepo) Update(ctx context.Context, student *domain.Student) error {
	return m.Called(ctx, student).Error(0)
}

func (m *MockStudentRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStudentRepo) UpsertByIDCard(ctx context.Context, student *domain.Student) (bool, error) {
	args := m.Called(ctx, student)
	return args.Bool(0), args.Error(1)
}

func (m *MockStudentRepo) FetchEducationHistories(ctx context.Context, studentID int64) ([]domain.EducationHistory, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EducationHistory), args.Error(1)
}

func (m *MockStudentRepo) GetEducationHistory(ctx context.Context, id int64) (*domain.EducationHistory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EducationHistory), args.Error(1)
}

func (m *MockStudentRepo) CreateEducationHistory(ctx context.Context, history *domain.EducationHistory) error {
	return m.Called(ctx, history).Error(0)
}

func (m *MockStudentRepo) UpdateEducationHistory(ctx context.Context, history *domain.EducationHistory) error {
	return m.Called(ctx, history).Error(0)
}

func (m *MockStudentRepo) DeleteEducationHistory(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStudentRepo) FetchCertificates(ctx context.Context, studentID int64) ([]domain.Certificate, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certificate), args.Error(1)
}

func (m *MockStudentRepo) GetCertificate(ctx context.Context, id int64) (*domain.Certificate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certificate), args.Error(1)
}

func (m *MockStudentRepo) CreateCertificate(ctx context.Context, certificate *domain.Certificate) error {
	return m.Called(ctx, certificate).Error(0)
}

func (m *MockStudentRepo) UpdateCertificate(ctx context.Context, certificate *domain.Certificate) error {
	return m.Called(ctx, certificate).Error(0)
}

func (m *MockStudentRepo) DeleteCertificate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockRecordingStore struct {
	mock.Mock
}

func (m *MockRecordingStore) Save(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, key, body, size, contentType)
	return args.String(0), args.Error(1)
}
