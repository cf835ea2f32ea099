package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go-interview-tracker/internal/delivery/http/response"
	"go-interview-tracker/internal/domain"
	"go-interview-tracker/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	studentUC domain.StudentUsecase
}

func NewStudentHandler(protected *gin.RouterGroup, studentUC domain.StudentUsecase) {
	handler := &StudentHandler{studentUC: studentUC}

	students := protected.Group("/students")
	{
		students.GET("/", handler.List)
		students.POST("/", handler.Create)
		students.POST("/import_students/", handler.Import)
		students.GET("/export_students/", handler.Export)
		students.GET("/:id/", handler.Get)
		students.PUT("/:id/", handler.Update)
		students.PATCH("/:id/", handler.Update)
		students.DELETE("/:id/", handler.Delete)
	}

	histories := protected.Group("/students/education_histories")
	{
		histories.GET("/", handler.ListEducationHistories)
		histories.POST("/", handler.AddEducationHistory)
		histories.GET("/:history_id/", handler.GetEducationHistory)
		histories.PUT("/:history_id/", handler.UpdateEducationHistory)
		histories.PATCH("/:history_id/", handler.UpdateEducationHistory)
		histories.DELETE("/:history_id/", handler.RemoveEducationHistory)
	}

	certificates := protected.Group("/students/certificates")
	{
		certificates.GET("/", handler.ListCertificates)
		certificates.POST("/", handler.AddCertificate)
		certificates.GET("/:certificate_id/", handler.GetCertificate)
		certificates.PUT("/:certificate_id/", handler.UpdateCertificate)
		certificates.PATCH("/:certificate_id/", handler.UpdateCertificate)
		certificates.DELETE("/:certificate_id/", handler.RemoveCertificate)
	}
}

type StudentRequest struct {
	Name        string `json:"name" binding:"required"`
	IDCard      string `json:"id_card" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	FatherPhone string `json:"father_phone"`
	MotherPhone string `json:"mother_phone"`
	HomeAddress string `json:"home_address"`

	EducationLevel  string `json:"education_level" binding:"required,oneof=middle_school high_school secondary college bachelor master doctor"`
	GraduationDate  string `json:"graduation_date" binding:"omitempty,datetime=2006-01-02"`
	SchoolName      string `json:"school_name"`
	Major           string `json:"major"`
	EducationStatus string `json:"education_status" binding:"omitempty,oneof=studying graduated suspended dropped"`

	ProjectManager      string `json:"project_manager"`
	EmploymentGuide     string `json:"employment_guide"`
	MarketingDepartment string `json:"marketing_department"`
	Certificates        string `json:"certificates"`
}

func (r *StudentRequest) toDomain(id int64) (*domain.Student, error) {
	student := &domain.Student{
		ID:                  id,
		Name:                r.Name,
		IDCard:              r.IDCard,
		Phone:               r.Phone,
		FatherPhone:         r.FatherPhone,
		MotherPhone:         r.MotherPhone,
		HomeAddress:         r.HomeAddress,
		EducationLevel:      r.EducationLevel,
		SchoolName:          r.SchoolName,
		Major:               r.Major,
		EducationStatus:     r.EducationStatus,
		ProjectManager:      r.ProjectManager,
		EmploymentGuide:     r.EmploymentGuide,
		MarketingDepartment: r.MarketingDepartment,
		Certificates:        r.Certificates,
	}
	if r.GraduationDate != "" {
		parsed, err := time.Parse("2006-01-02", r.GraduationDate)
		if err != nil {
			return nil, fmt.Errorf("invalid graduation_date: %w", err)
		}
		student.GraduationDate = parsed
	}
	return student, nil
}

// Create godoc
// @Summary      Register a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        student  body      StudentRequest  true  "Student JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /students/ [post]
// @Security     BearerAuth
func (h *StudentHandler) Create(c *gin.Context) {
	var req StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	student, err := req.toDomain(0)
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if err := h.studentUC.CreateStudent(c.Request.Context(), student); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Student created", student)
}

// List godoc
// @Summary      List students
// @Tags         students
// @Produce      json
// @Param        search     query  string  false  "Substring across name, id card, phone, school"
// @Param        department  query  string  false  "Marketing department"
// @Param        education   query  string  false  "Education level key"
// @Success      200  {object}  response.Response
// @Router       /students/ [get]
// @Security     BearerAuth
func (h *StudentHandler) List(c *gin.Context) {
	filter := domain.StudentFilter{
		Search:     c.Query("search"),
		Department: c.Query("department"),
		Education:  c.Query("education"),
	}
	students, err := h.studentUC.ListStudents(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	if students == nil {
		students = []domain.Student{}
	}
	response.Success(c, http.StatusOK, "Student list", students)
}

func (h *StudentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}
	detail, err := h.studentUC.GetStudent(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Student details", detail)
}

func (h *StudentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}
	var req StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	student, err := req.toDomain(id)
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if err := h.studentUC.UpdateStudent(c.Request.Context(), student); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Student updated", student)
}

func (h *StudentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}
	if err := h.studentUC.DeleteStudent(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Student deleted", nil)
}

// Import godoc
// @Summary      Import students from an Excel workbook
// @Description  Valid rows are upserted keyed on id card; invalid rows are reported per row number without aborting the batch.
// @Tags         students
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "xlsx workbook"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /students/import_students/ [post]
// @Security     BearerAuth
func (h *StudentHandler) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("No file provided"))
		return
	}
	defer file.Close()

	result, err := h.studentUC.ImportStudents(c.Request.Context(), file)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Import finished", result)
}

// Export godoc
// @Summary      Export students to an Excel workbook
// @Tags         students
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        search      query  string  false  "Substring across name, id card, phone, school"
// @Param        department  query  string  false  "Marketing department"
// @Param        education   query  string  false  "Education level key"
// @Success      200  {file}  file
// @Router       /students/export_students/ [get]
// @Security     BearerAuth
func (h *StudentHandler) Export(c *gin.Context) {
	filter := domain.StudentFilter{
		Search:     c.Query("search"),
		Department: c.Query("department"),
		Education:  c.Query("education"),
	}
	data, err := h.studentUC.ExportStudents(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	filename := fmt.Sprintf("students_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

type EducationHistoryRequest struct {
	StudentID      int64  `json:"student_id" binding:"required"`
	EducationLevel string `json:"education_level" binding:"required,oneof=middle_school high_school secondary college bachelor master doctor"`
	GraduationDate string `json:"graduation_date" binding:"required,datetime=2006-01-02"`
	SchoolName     string `json:"school_name" binding:"required"`
	Major          string `json:"major"`
}

func (r *EducationHistoryRequest) toDomain(id int64) (*domain.EducationHistory, error) {
	graduation, err := time.Parse("2006-01-02", r.GraduationDate)
	if err != nil {
		return nil, fmt.Errorf("invalid graduation_date: %w", err)
	}
	return &domain.EducationHistory{
		ID:             id,
		StudentID:      r.StudentID,
		EducationLevel: r.EducationLevel,
		GraduationDate: graduation,
		SchoolName:     r.SchoolName,
		Major:          r.Major,
	}, nil
}

// ListEducationHistories godoc
// @Summary      List education histories
// @Tags         students
// @Produce      json
// @Param        student_id  query  int  false  "Limit to one student"
// @Success      200  {object}  response.Response
// @Router       /students/education_histories/ [get]
// @Security     BearerAuth
func (h *StudentHandler) ListEducationHistories(c *gin.Context) {
	var studentID int64
	if raw := c.Query("student_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid student_id format"))
			return
		}
		studentID = parsed
	}
	histories, err := h.studentUC.ListEducationHistories(c.Request.Context(), studentID)
	if err != nil {
		c.Error(err)
		return
	}
	if histories == nil {
		histories = []domain.EducationHistory{}
	}
	response.OK(c, "Education history list", histories)
}

func (h *StudentHandler) GetEducationHistory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("history_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}
	history, err := h.studentUC.GetEducationHistory(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, "Education history details", history)
}

func (h *StudentHandler) AddEducationHistory(c *gin.Context) {
	var req EducationHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	history, err := req.toDomain(0)
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if err := h.studentUC.AddEducationHistory(c.Request.Context(), history); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Education history added", history)
}

func (h *StudentHandler) UpdateEducationHistory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("history_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}
	var req EducationHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	history, err := req.toDomain(id)
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if err := h.studentUC.UpdateEducationHistory(c.Request.Context(), history); err != nil {
		c.Error(err)
		return
	}
	response.OK(c, "Education history updated", history)
}

func (h *StudentHandler) RemoveEducationHistory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("history_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}
	if err := h.studentUC.RemoveEducationHistory(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.OK(c, "Education history removed", nil)
}

type CertificateRequest struct {
	StudentID         int64  `json:"student_id" binding:"required"`
	Name              string `json:"name" binding:"required"`
	IssueDate         string `json:"issue_date" binding:"required,datetime=2006-01-02"`
	IssuingAuthority  string `json:"issuing_authority"`
	CertificateNumber string `json:"certificate_number"`
}

func (r *CertificateRequest) toDomain(id int64) (*domain.Certificate, error) {
	issued, err := time.Parse("2006-01-02", r.IssueDate)
	if err != nil {
		return nil, fmt.Errorf("invalid issue_date: %w", err)
	}
	return &domain.Certificate{
		ID:                id,
		StudentID:         r.StudentID,
		Name:              r.Name,
		IssueDate:         issued,
		IssuingAuthority:  r.IssuingAuthority,
		CertificateNumber: r.CertificateNumber,
	}, nil
}

// ListCertificates godoc
// @Summary      List certificates
// @Tags         students
// @Produce      json
// @Param        student_id  query  int  false  "Limit to one student"
// @Success      200  {object}  response.Response
// @Router       /students/certificates/ [get]
// @Security     BearerAuth
func (h *StudentHandler) ListCertificates(c *gin.Context) {
	var studentID int64
	if raw := c.Query("student_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid student_id format"))
			return
		}
		studentID = parsed
	}
	certificates, err := h.studentUC.ListCertificates(c.Request.Context(), studentID)
	if err != nil {
		c.Error(err)
		return
	}
	if certificates == nil {
		certificates = []domain.Certificate{}
	}
	response.OK(c, "Certificate list", certificates)
}

func (h *StudentHandler) GetCertificate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("certificate_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}
	certificate, err := h.studentUC.GetCertificate(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, "Certificate details", certificate)
}

func (h *StudentHandler) AddCertificate(c *gin.Context) {
	var req CertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	certificate, err := req.toDomain(0)
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if err := h.studentUC.AddCertificate(c.Request.Context(), certificate); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Certificate added", certificate)
}

func (h *StudentHandler) UpdateCertificate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("certificate_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}
	var req CertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	certificate, err := req.toDomain(id)
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if err := h.studentUC.UpdateCertificate(c.Request.Context(), certificate); err != nil {
		c.Error(err)
		return
	}
	response.OK(c, "Certificate updated", certificate)
}

func (h *StudentHandler) RemoveCertificate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("certificate_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}
	if err := h.studentUC.RemoveCertificate(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.OK(c, "Certificate removed", nil)
}
