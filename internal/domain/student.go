package domain

import (
	"context"
	"io"
	"strconv"
	"time"
)

// Education level values
const (
	EducationMiddleSchool = "middle_school"
	EducationHighSchool   = "high_school"
	EducationSecondary    = "secondary"
	EducationCollege      = "college"
	EducationBachelor     = "bachelor"
	EducationMaster       = "master"
	EducationDoctor       = "doctor"
)

// Education status values
const (
	EduStatusStudying  = "studying"
	EduStatusGraduated = "graduated"
	EduStatusSuspended = "suspended"
	EduStatusDropped   = "dropped"
)

// EducationLevelLabels maps level keys to their Chinese display labels,
// used by the Excel import/export round trip.
var EducationLevelLabels = map[string]string{
	EducationMiddleSchool: "初中",
	EducationHighSchool:   "高中",
	EducationSecondary:    "中专",
	EducationCollege:      "大专",
	EducationBachelor:     "本科",
	EducationMaster:       "硕士",
	EducationDoctor:       "博士",
}

// EduStatusLabels maps status keys to their Chinese display labels.
var EduStatusLabels = map[string]string{
	EduStatusStudying:  "在读",
	EduStatusGraduated: "已毕业",
	EduStatusSuspended: "休学",
	EduStatusDropped:   "退学",
}

type Student struct {
	ID int64 `json:"id"`

	Name        string `json:"name" validate:"required"`
	IDCard      string `json:"id_card" validate:"required,id_card"`
	Phone       string `json:"phone" validate:"required,cn_mobile"`
	FatherPhone string `json:"father_phone" validate:"omitempty,cn_mobile"`
	MotherPhone string `json:"mother_phone" validate:"omitempty,cn_mobile"`
	HomeAddress string `json:"home_address"`

	EducationLevel  string    `json:"education_level" validate:"required,oneof=middle_school high_school secondary college bachelor master doctor"`
	GraduationDate  time.Time `json:"graduation_date"`
	SchoolName      string    `json:"school_name"`
	Major           string    `json:"major"`
	EducationStatus string    `json:"education_status" validate:"omitempty,oneof=studying graduated suspended dropped"`

	ProjectManager      string `json:"project_manager"`
	EmploymentGuide     string `json:"employment_guide"`
	MarketingDepartment string `json:"marketing_department"`

	Certificates string `json:"certificates"`

	CreatedAt time.Time `json:"created_time"`
	UpdatedAt time.Time `json:"updated_time"`
}

// Age derives the student's age from an 18-digit id card; returns nil for
// 15-digit cards which carry only a two-digit birth year.
func (s *Student) Age(today time.Time) *int {
	if len(s.IDCard) != 18 {
		return nil
	}
	year, err1 := strconv.Atoi(s.IDCard[6:10])
	month, err2 := strconv.Atoi(s.IDCard[10:12])
	day, err3 := strconv.Atoi(s.IDCard[12:14])
	if err1 != nil || err2 != nil || err3 != nil {
		return nil
	}
	age := today.Year() - year
	if int(today.Month()) < month || (int(today.Month()) == month && today.Day() < day) {
		age--
	}
	return &age
}

type EducationHistory struct {
	ID             int64     `json:"id"`
	StudentID      int64     `json:"student_id"`
	EducationLevel string    `json:"education_level"`
	GraduationDate time.Time `json:"graduation_date"`
	SchoolName     string    `json:"school_name"`
	Major          string    `json:"major"`
}

type Certificate struct {
	ID                int64     `json:"id"`
	StudentID         int64     `json:"student_id"`
	Name              string    `json:"name"`
	IssueDate         time.Time `json:"issue_date"`
	IssuingAuthority  string    `json:"issuing_authority"`
	CertificateNumber string    `json:"certificate_number"`
}

// StudentDetail bundles a student with its child records.
type StudentDetail struct {
	Student
	Age                *int               `json:"age"`
	EducationHistories []EducationHistory `json:"education_histories"`
	CertificateList    []Certificate      `json:"certificate_list"`
}

type StudentFilter struct {
	Search     string // substring across name / id_card / phone / school_name
	Department string // exact marketing_department
	Education  string // exact education_level
}

// ImportResult reports a partial-success bulk import.
type ImportResult struct {
	Success       bool     `json:"success"`
	ImportedCount int      `json:"imported_count"`
	Errors        []string `json:"errors"`
}

type StudentRepository interface {
	Create(ctx context.Context, student *Student) error
	GetByID(ctx context.Context, id int64) (*Student, error)
	Fetch(ctx context.Context, filter StudentFilter) ([]Student, error)
	Update(ctx context.Context, student *Student) error
	Delete(ctx context.Context, id int64) error
	// UpsertByIDCard inserts or updates keyed on id_card; created reports
	// whether a new row was inserted.
	UpsertByIDCard(ctx context.Context, student *Student) (created bool, err error)

	// Child records. A zero studentID lists across all students.
	FetchEducationHistories(ctx context.Context, studentID int64) ([]EducationHistory, error)
	GetEducationHistory(ctx context.Context, id int64) (*EducationHistory, error)
	CreateEducationHistory(ctx context.Context, history *EducationHistory) error
	UpdateEducationHistory(ctx context.Context, history *EducationHistory) error
	DeleteEducationHistory(ctx context.Context, id int64) error
	FetchCertificates(ctx context.Context, studentID int64) ([]Certificate, error)
	GetCertificate(ctx context.Context, id int64) (*Certificate, error)
	CreateCertificate(ctx context.Context, certificate *Certificate) error
	UpdateCertificate(ctx context.Context, certificate *Certificate) error
	DeleteCertificate(ctx context.Context, id int64) error
}

type StudentUsecase interface {
	CreateStudent(ctx context.Context, student *Student) error
	GetStudent(ctx context.Context, id int64) (*StudentDetail, error)
	ListStudents(ctx context.Context, filter StudentFilter) ([]Student, error)
	UpdateStudent(ctx context.Context, student *Student) error
	DeleteStudent(ctx context.Context, id int64) error
	ImportStudents(ctx context.Context, file io.Reader) (*ImportResult, error)
	ExportStudents(ctx context.Context, filter StudentFilter) ([]byte, error)

	ListEducationHistories(ctx context.Context, studentID int64) ([]EducationHistory, error)
	GetEducationHistory(ctx context.Context, id int64) (*EducationHistory, error)
	AddEducationHistory(ctx context.Context, history *EducationHistory) error
	UpdateEducationHistory(ctx context.Context, history *EducationHistory) error
	RemoveEducationHistory(ctx context.Context, id int64) error
	ListCertificates(ctx context.Context, studentID int64) ([]Certificate, error)
	GetCertificate(ctx context.Context, id int64) (*Certificate, error)
	AddCertificate(ctx context.Context, certificate *Certificate) error
	UpdateCertificate(ctx context.Context, certificate *Certificate) error
	RemoveCertificate(ctx context.Context, id int64) error
}
