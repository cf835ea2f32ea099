package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go-interview-tracker/internal/domain"
	"go-interview-tracker/pkg/apperror"
	"go-interview-tracker/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
)

// Import/export column order mirrors the fixed Chinese-labeled header set.
var exportColumns = []string{
	"学生姓名", "身份证", "学生电话", "父亲电话", "母亲电话", "家庭住址",
	"当前学历", "毕业日期", "毕业院校", "专业", "在读状态",
	"项目经理", "就业指导", "所属市场部", "所持证书", "创建时间", "更新时间",
}

var dateLayouts = []string{"2006-01-02", "2006/01/02", "2006-01-02 15:04:05", "01-02-06"}

type studentUsecase struct {
	repo     domain.StudentRepository
	validate *validator.Validate
	now      func() time.Time
}

func NewStudentUsecase(repo domain.StudentRepository, validate *validator.Validate) domain.StudentUsecase {
	return &studentUsecase{
		repo:     repo,
		validate: validate,
		now:      time.Now,
	}
}

func (u *studentUsecase) CreateStudent(ctx context.Context, student *domain.Student) error {
	if student.EducationStatus == "" {
		student.EducationStatus = domain.EduStatusStudying
	}
	if err := u.validate.Struct(student); err != nil {
		return apperror.BadRequest(err.Error())
	}
	now := u.now()
	student.CreatedAt = now
	student.UpdatedAt = now
	return u.repo.Create(ctx, student)
}

func (u *studentUsecase) GetStudent(ctx context.Context, id int64) (*domain.StudentDetail, error) {
	student, err := u.repo.GetByID(ctx, id)
	if err == domain.ErrNotFound {
		return nil, apperror.NotFound("Student not found")
	}
	if err != nil {
		return nil, err
	}

	histories, err := u.repo.FetchEducationHistories(ctx, id)
	if err != nil {
		return nil, err
	}
	if histories == nil {
		histories = []domain.EducationHistory{}
	}
	certificates, err := u.repo.FetchCertificates(ctx, id)
	if err != nil {
		return nil, err
	}
	if certificates == nil {
		certificates = []domain.Certificate{}
	}

	return &domain.StudentDetail{
		Student:            *student,
		Age:                student.Age(u.now()),
		EducationHistories: histories,
		CertificateList:    certificates,
	}, nil
}

func (u *studentUsecase) ListStudents(ctx context.Context, filter domain.StudentFilter) ([]domain.Student, error) {
	return u.repo.Fetch(ctx, filter)
}

func (u *studentUsecase) UpdateStudent(ctx context.Context, student *domain.Student) error {
	if err := u.validate.Struct(student); err != nil {
		return apperror.BadRequest(err.Error())
	}
	student.UpdatedAt = u.now()
	err := u.repo.Update(ctx, student)
	if err == domain.ErrNotFound {
		return apperror.NotFound("Student not found")
	}
	return err
}

func (u *studentUsecase) DeleteStudent(ctx context.Context, id int64) error {
	err := u.repo.Delete(ctx, id)
	if err == domain.ErrNotFound {
		return apperror.NotFound("Student not found")
	}
	return err
}

// ImportStudents processes an Excel workbook row by row. A bad row is
// recorded and skipped; it never aborts the batch.
func (u *studentUsecase) ImportStudents(ctx context.Context, file io.Reader) (*domain.ImportResult, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, apperror.BadRequest(fmt.Sprintf("文件处理错误: %v", err))
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperror.BadRequest(fmt.Sprintf("文件处理错误: %v", err))
	}
	if len(rows) < 1 {
		return nil, apperror.BadRequest("文件处理错误: 空文件")
	}

	colIndex := map[string]int{}
	for i, name := range rows[0] {
		colIndex[strings.TrimSpace(name)] = i
	}

	result := &domain.ImportResult{Success: true, Errors: []string{}}

	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, header is row 1

		cell := func(name string) string {
			idx, ok := colIndex[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		student, err := u.studentFromRow(cell)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("第%d行错误: %v", rowNum, err))
			continue
		}

		created, err := u.repo.UpsertByIDCard(ctx, student)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("第%d行错误: %v", rowNum, err))
			continue
		}
		if created {
			result.ImportedCount++
		}
	}

	return result, nil
}

func (u *studentUsecase) studentFromRow(cell func(string) string) (*domain.Student, error) {
	idCard := cell("身份证")
	if idCard == "" {
		return nil, fmt.Errorf("身份证不能为空")
	}
	if !validation.ValidIDCard(idCard) {
		return nil, fmt.Errorf("身份证号码格式不正确: %s", idCard)
	}

	phone := cell("学生电话")
	if phone != "" && !validation.ValidMobile(phone) {
		return nil, fmt.Errorf("手机号码格式不正确: %s", phone)
	}
	for _, field := range []string{"父亲电话", "母亲电话"} {
		if v := cell(field); v != "" && !validation.ValidMobile(v) {
			return nil, fmt.Errorf("手机号码格式不正确: %s", v)
		}
	}

	level := cell("当前学历")
	levelKey := level
	for key, label := range domain.EducationLevelLabels {
		if level == label {
			levelKey = key
			break
		}
	}
	if _, ok := domain.EducationLevelLabels[levelKey]; !ok {
		return nil, fmt.Errorf("未知学历: %s", level)
	}

	graduation := u.now()
	if raw := cell("毕业日期"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("毕业日期格式不正确: %s", raw)
		}
		graduation = parsed
	}

	now := u.now()
	return &domain.Student{
		Name:                cell("学生姓名"),
		IDCard:              idCard,
		Phone:               phone,
		FatherPhone:         cell("父亲电话"),
		MotherPhone:         cell("母亲电话"),
		HomeAddress:         cell("家庭住址"),
		EducationLevel:      levelKey,
		GraduationDate:      graduation,
		SchoolName:          cell("毕业院校"),
		Major:               cell("专业"),
		EducationStatus:     domain.EduStatusStudying,
		ProjectManager:      cell("项目经理"),
		EmploymentGuide:     cell("就业指导"),
		MarketingDepartment: cell("所属市场部"),
		Certificates:        cell("所持证书"),
		CreatedAt:           now,
		UpdatedAt:           now,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date: %s", s)
}

// ExportStudents generates an Excel workbook with the full column set.
func (u *studentUsecase) ExportStudents(ctx context.Context, filter domain.StudentFilter) ([]byte, error) {
	students, err := u.repo.Fetch(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheetName := "学生信息"
	f.SetSheetName("Sheet1", sheetName)

	for i, col := range exportColumns {
		cellName, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cellName, col)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, s := range students {
		values := []interface{}{
			s.Name, s.IDCard, s.Phone, s.FatherPhone, s.MotherPhone, s.HomeAddress,
			displayLabel(domain.EducationLevelLabels, s.EducationLevel),
			s.GraduationDate.Format("2006-01-02"),
			s.SchoolName, s.Major,
			displayLabel(domain.EduStatusLabels, s.EducationStatus),
			s.ProjectManager, s.EmploymentGuide, s.MarketingDepartment, s.Certificates,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
			s.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		for colIdx, value := range values {
			cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cellName, value)
		}
	}

	for i := range exportColumns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 18)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func displayLabel(labels map[string]string, key string) string {
	if label, ok := labels[key]; ok {
		return label
	}
	return key
}

func (u *studentUsecase) ListEducationHistories(ctx context.Context, studentID int64) ([]domain.EducationHistory, error) {
	return u.repo.FetchEducationHistories(ctx, studentID)
}

func (u *studentUsecase) GetEducationHistory(ctx context.Context, id int64) (*domain.EducationHistory, error) {
	history, err := u.repo.GetEducationHistory(ctx, id)
	if err == domain.ErrNotFound {
		return nil, apperror.NotFound("Education history not found")
	}
	return history, err
}

func (u *studentUsecase) AddEducationHistory(ctx context.Context, history *domain.EducationHistory) error {
	if _, err := u.repo.GetByID(ctx, history.StudentID); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Student not found")
		}
		return err
	}
	return u.repo.CreateEducationHistory(ctx, history)
}

func (u *studentUsecase) UpdateEducationHistory(ctx context.Context, history *domain.EducationHistory) error {
	err := u.repo.UpdateEducationHistory(ctx, history)
	if err == domain.ErrNotFound {
		return apperror.NotFound("Education history not found")
	}
	return err
}

func (u *studentUsecase) RemoveEducationHistory(ctx context.Context, id int64) error {
	err := u.repo.DeleteEducationHistory(ctx, id)
	if err == domain.ErrNotFound {
		return apperror.NotFound("Education history not found")
	}
	return err
}

func (u *studentUsecase) ListCertificates(ctx context.Context, studentID int64) ([]domain.Certificate, error) {
	return u.repo.FetchCertificates(ctx, studentID)
}

func (u *studentUsecase) GetCertificate(ctx context.Context, id int64) (*domain.Certificate, error) {
	certificate, err := u.repo.GetCertificate(ctx, id)
	if err == domain.ErrNotFound {
		return nil, apperror.NotFound("Certificate not found")
	}
	return certificate, err
}

func (u *studentUsecase) AddCertificate(ctx context.Context, certificate *domain.Certificate) error {
	if _, err := u.repo.GetByID(ctx, certificate.StudentID); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Student not found")
		}
		return err
	}
	return u.repo.CreateCertificate(ctx, certificate)
}

func (u *studentUsecase) UpdateCertificate(ctx context.Context, certificate *domain.Certificate) error {
	err := u.repo.UpdateCertificate(ctx, certificate)
	if err == domain.ErrNotFound {
		return apperror.NotFound("Certificate not found")
	}
	return err
}

func (u *studentUsecase) RemoveCertificate(ctx context.Context, id int64) error {
	err := u.repo.DeleteCertificate(ctx, id)
	if err == domain.ErrNotFound {
		return apperror.NotFound("Certificate not found")
	}
	return err
}
