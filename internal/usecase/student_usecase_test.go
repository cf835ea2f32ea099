package usecase_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"go-interview-tracker/internal/domain"
	"go-interview-tracker/internal/usecase"
	"go-interview-tracker/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xuri/excelize/v2"
)

func newStudentUC(repo *MockStudentRepo) domain.StudentUsecase {
	validate := validator.New()
	validation.RegisterValidators(validate)
	uc := usecase.NewStudentUsecase(repo, validate)
	usecase.SetClock(uc, fixedClock)
	return uc
}

func validStudent() *domain.Student {
	return &domain.Student{
		Name:           "李娜",
		IDCard:         "110101199003077777",
		Phone:          "13912345678",
		EducationLevel: domain.EducationBachelor,
		GraduationDate: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		SchoolName:     "北京大学",
		Major:          "计算机科学",
	}
}

func TestCreateStudentValidation(t *testing.T) {
	t.Run("Should reject a malformed id card", func(t *testing.T) {
		uc := newStudentUC(new(MockStudentRepo))
		student := validStudent()
		student.IDCard = "12345"
		err := uc.CreateStudent(context.Background(), student)
		assert.Error(t, err)
	})

	t.Run("Should reject a malformed mobile number", func(t *testing.T) {
		uc := newStudentUC(new(MockStudentRepo))
		student := validStudent()
		student.Phone = "12345678901" // second digit out of range
		err := uc.CreateStudent(context.Background(), student)
		assert.Error(t, err)
	})

	t.Run("Should accept a legacy 15-digit id card", func(t *testing.T) {
		repo := new(MockStudentRepo)
		uc := newStudentUC(repo)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		student := validStudent()
		student.IDCard = "110101900307777"
		err := uc.CreateStudent(context.Background(), student)
		assert.NoError(t, err)
		assert.Equal(t, domain.EduStatusStudying, student.EducationStatus)
		assert.Equal(t, fixedNow, student.CreatedAt)
	})
}

func TestStudentAge(t *testing.T) {
	student := validStudent()

	age := student.Age(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC))
	assert.NotNil(t, age)
	assert.Equal(t, 35, *age) // born 1990-03-07

	// Birthday later in the year
	beforeBirthday := student.Age(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 34, *beforeBirthday)

	student.IDCard = "110101900307777" // 15-digit card carries no full birth year
	assert.Nil(t, student.Age(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)))
}

func TestGetStudentDetail(t *testing.T) {
	repo := new(MockStudentRepo)
	uc := newStudentUC(repo)

	repo.On("GetByID", mock.Anything, int64(1)).Return(validStudent(), nil)
	repo.On("FetchEducationHistories", mock.Anything, int64(1)).Return(nil, nil)
	repo.On("FetchCertificates", mock.Anything, int64(1)).Return([]domain.Certificate{
		{ID: 9, StudentID: 1, Name: "CET-6"},
	}, nil)

	detail, err := uc.GetStudent(context.Background(), 1)
	assert.NoError(t, err)
	assert.NotNil(t, detail.Age)
	assert.NotNil(t, detail.EducationHistories)
	assert.Len(t, detail.CertificateList, 1)
}

func importWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	header := []interface{}{
		"学生姓名", "身份证", "学生电话", "父亲电话", "母亲电话", "家庭住址",
		"当前学历", "毕业日期", "毕业院校", "专业", "项目经理", "就业指导", "所属市场部", "所持证书",
	}
	assert.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		assert.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	var buf bytes.Buffer
	assert.NoError(t, f.Write(&buf))
	return &buf
}

func TestImportStudents(t *testing.T) {
	t.Run("Should upsert valid rows and report bad rows without aborting", func(t *testing.T) {
		repo := new(MockStudentRepo)
		uc := newStudentUC(repo)

		buf := importWorkbook(t, [][]interface{}{
			{"李娜", "110101199003077777", "13912345678", "", "", "北京市朝阳区", "本科", "2024-06-30", "北京大学", "计算机科学", "王经理", "赵老师", "华北市场部", "CET-6"},
			{"王强", "110101199105088888", "13712345678", "", "", "", "大专", "2023-07-01", "天津职业学院", "软件技术", "", "", "", ""},
			{"坏行", "12345", "13712345678", "", "", "", "本科", "", "", "", "", "", "", ""},
			{"陈明", "110101199207099999", "13612345678", "", "", "", "硕士", "2022/06/30", "清华大学", "软件工程", "", "", "", ""},
		})

		repo.On("UpsertByIDCard", mock.Anything, mock.MatchedBy(func(s *domain.Student) bool {
			return s.IDCard == "110101199105088888"
		})).Return(false, nil) // pre-existing row, updated in place
		repo.On("UpsertByIDCard", mock.Anything, mock.Anything).Return(true, nil)

		result, err := uc.ImportStudents(context.Background(), buf)
		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 2, result.ImportedCount) // the updated row is not counted
		assert.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "第4行错误")
		assert.Contains(t, result.Errors[0], "身份证号码格式不正确")
	})

	t.Run("Should map Chinese education labels to keys", func(t *testing.T) {
		repo := new(MockStudentRepo)
		uc := newStudentUC(repo)

		buf := importWorkbook(t, [][]interface{}{
			{"李娜", "110101199003077777", "13912345678", "", "", "", "硕士", "2024-06-30", "北京大学", "计算机科学", "", "", "", ""},
		})
		repo.On("UpsertByIDCard", mock.Anything, mock.MatchedBy(func(s *domain.Student) bool {
			return s.EducationLevel == domain.EducationMaster
		})).Return(true, nil)

		result, err := uc.ImportStudents(context.Background(), buf)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.ImportedCount)
		repo.AssertExpectations(t)
	})

	t.Run("Should reject an unreadable file", func(t *testing.T) {
		uc := newStudentUC(new(MockStudentRepo))
		_, err := uc.ImportStudents(context.Background(), bytes.NewReader([]byte("not an xlsx")))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "文件处理错误")
	})

	t.Run("Should report an unknown education level", func(t *testing.T) {
		repo := new(MockStudentRepo)
		uc := newStudentUC(repo)

		buf := importWorkbook(t, [][]interface{}{
			{"李娜", "110101199003077777", "13912345678", "", "", "", "小学", "2024-06-30", "", "", "", "", "", ""},
		})
		result, err := uc.ImportStudents(context.Background(), buf)
		assert.NoError(t, err)
		assert.Equal(t, 0, result.ImportedCount)
		assert.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "未知学历")
		repo.AssertNotCalled(t, "UpsertByIDCard", mock.Anything, mock.Anything)
	})
}

func TestExportStudents(t *testing.T) {
	repo := new(MockStudentRepo)
	uc := newStudentUC(repo)

	student := validStudent()
	student.EducationStatus = domain.EduStatusGraduated
	repo.On("Fetch", mock.Anything, mock.Anything).Return([]domain.Student{*student}, nil)

	data, err := uc.ExportStudents(context.Background(), domain.StudentFilter{})
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("学生信息")
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "学生姓名", rows[0][0])
	assert.Equal(t, "李娜", rows[1][0])
	assert.Equal(t, "本科", rows[1][6])   // level exported as display label
	assert.Equal(t, "已毕业", rows[1][10]) // status exported as display label
}

func TestChildRecords(t *testing.T) {
	t.Run("Should refuse adding history to a missing student", func(t *testing.T) {
		repo := new(MockStudentRepo)
		uc := newStudentUC(repo)
		repo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		err := uc.AddEducationHistory(context.Background(), &domain.EducationHistory{StudentID: 99})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Student not found")
	})

	t.Run("Should add a certificate to an existing student", func(t *testing.T) {
		repo := new(MockStudentRepo)
		uc := newStudentUC(repo)
		repo.On("GetByID", mock.Anything, int64(1)).Return(validStudent(), nil)
		repo.On("CreateCertificate", mock.Anything, mock.Anything).Return(nil)

		err := uc.AddCertificate(context.Background(), &domain.Certificate{StudentID: 1, Name: "CET-6"})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Should list histories across all students when no filter is given", func(t *testing.T) {
		repo := new(MockStudentRepo)
		uc := newStudentUC(repo)
		repo.On("FetchEducationHistories", mock.Anything, int64(0)).
			Return([]domain.EducationHistory{{ID: 1, StudentID: 1}, {ID: 2, StudentID: 7}}, nil)

		histories, err := uc.ListEducationHistories(context.Background(), 0)
		assert.NoError(t, err)
		assert.Len(t, histories, 2)
		repo.AssertExpectations(t)
	})

	t.Run("Should list only the requested student's certificates", func(t *testing.T) {
		repo := new(MockStudentRepo)
		uc := newStudentUC(repo)
		repo.On("FetchCertificates", mock.Anything, int64(7)).
			Return([]domain.Certificate{{ID: 3, StudentID: 7, Name: "CET-4"}}, nil)

		certificates, err := uc.ListCertificates(context.Background(), 7)
		assert.NoError(t, err)
		assert.Len(t, certificates, 1)
		assert.Equal(t, "CET-4", certificates[0].Name)
		repo.AssertExpectations(t)
	})

	t.Run("Should update an existing education history", func(t *testing.T) {
		repo := new(MockStudentRepo)
		uc := newStudentUC(repo)
		repo.On("UpdateEducationHistory", mock.Anything, mock.MatchedBy(func(h *domain.EducationHistory) bool {
			return h.ID == 5 && h.SchoolName == "北京大学"
		})).Return(nil)

		err := uc.UpdateEducationHistory(context.Background(), &domain.EducationHistory{ID: 5, StudentID: 1, SchoolName: "北京大学"})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Should report a missing history as not found on update", func(t *testing.T) {
		repo := new(MockStudentRepo)
		uc := newStudentUC(repo)
		repo.On("UpdateEducationHistory", mock.Anything, mock.Anything).Return(domain.ErrNotFound)

		err := uc.UpdateEducationHistory(context.Background(), &domain.EducationHistory{ID: 99, StudentID: 1})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Education history not found")
	})

	t.Run("Should report a missing certificate as not found on update", func(t *testing.T) {
		repo := new(MockStudentRepo)
		uc := newStudentUC(repo)
		repo.On("UpdateCertificate", mock.Anything, mock.Anything).Return(domain.ErrNotFound)

		err := uc.UpdateCertificate(context.Background(), &domain.Certificate{ID: 99, StudentID: 1})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Certificate not found")
	})

	t.Run("Should fetch a single certificate by id", func(t *testing.T) {
		repo := new(MockStudentRepo)
		uc := newStudentUC(repo)
		repo.On("GetCertificate", mock.Anything, int64(3)).
			Return(&domain.Certificate{ID: 3, StudentID: 7, Name: "CET-4"}, nil)

		certificate, err := uc.GetCertificate(context.Background(), 3)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), certificate.StudentID)
		repo.AssertExpectations(t)
	})
}
