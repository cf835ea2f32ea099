package v1

import (
	"net/http"
	"strconv"
	"time"

	"go-interview-tracker/internal/delivery/http/response"
	"go-interview-tracker/internal/domain"
	"go-interview-tracker/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

func NewInterviewHandler(protected *gin.RouterGroup, interviewUC domain.InterviewUsecase) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	interviews := protected.Group("/interviews")
	{
		interviews.GET("/", handler.List)
		interviews.POST("/", handler.Create)
		interviews.GET("/upcoming_interviews/", handler.Upcoming)
		interviews.GET("/my_interviews/", handler.My)
		interviews.GET("/:id/", handler.Get)
		interviews.PUT("/:id/", handler.Update)
		interviews.PATCH("/:id/", handler.Update)
		interviews.DELETE("/:id/", handler.Delete)
		interviews.POST("/:id/upload_recording/", handler.UploadRecording)
		interviews.POST("/:id/complete_interview/", handler.Complete)
	}
}

type CreateInterviewRequest struct {
	CandidateName       string    `json:"candidate_name" binding:"required"`
	CandidatePhone      string    `json:"candidate_phone" binding:"required"`
	CandidateEmail      string    `json:"candidate_email" binding:"required,email"`
	CompanyName         string    `json:"company_name" binding:"required"`
	PositionTitle       string    `json:"position_title" binding:"required"`
	PositionDescription string    `json:"position_description"`
	InterviewMethod     string    `json:"interview_method" binding:"required,oneof=phone video onsite"`
	InterviewRound      string    `json:"interview_round" binding:"required,oneof=first second third final other"`
	ScheduledTime       time.Time `json:"scheduled_time" binding:"required"`
	Duration            int       `json:"duration" binding:"omitempty,gt=0"`
	InterviewerID       *int64    `json:"interviewer_id"`
	InterviewerNotes    string    `json:"interviewer_notes"`
}

// Create godoc
// @Summary      Schedule an interview
// @Description  Creates an interview and auto-links company and position records from the free-text names.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        interview  body      CreateInterviewRequest  true  "Interview JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /interviews/ [post]
// @Security     BearerAuth
func (h *InterviewHandler) Create(c *gin.Context) {
	var req CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	interview := &domain.Interview{
		CandidateName:       req.CandidateName,
		CandidatePhone:      req.CandidatePhone,
		CandidateEmail:      req.CandidateEmail,
		CompanyName:         req.CompanyName,
		PositionTitle:       req.PositionTitle,
		PositionDescription: req.PositionDescription,
		InterviewMethod:     req.InterviewMethod,
		InterviewRound:      req.InterviewRound,
		ScheduledTime:       req.ScheduledTime,
		Duration:            req.Duration,
		InterviewerID:       req.InterviewerID,
		InterviewerNotes:    req.InterviewerNotes,
	}
	if err := h.interviewUC.CreateInterview(c.Request.Context(), interview); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Interview scheduled", interview)
}

// List godoc
// @Summary      List interviews
// @Description  Staff users see every interview; other users see only interviews assigned to them.
// @Tags         interviews
// @Produce      json
// @Param        status     query  string  false  "Status filter"  Enums(scheduled, in_progress, completed, cancelled)
// @Param        date_from  query  string  false  "Inclusive start date (2006-01-02)"
// @Param        date_to    query  string  false  "Inclusive end date (2006-01-02)"
// @Success      200  {object}  response.Response
// @Router       /interviews/ [get]
// @Security     BearerAuth
func (h *InterviewHandler) List(c *gin.Context) {
	filter := domain.InterviewFilter{
		Status:   c.Query("status"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
	}

	interviews, err := h.interviewUC.ListInterviews(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	if interviews == nil {
		interviews = []domain.Interview{}
	}
	response.Success(c, http.StatusOK, "Interview list", interviews)
}

func (h *InterviewHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}
	interview, err := h.interviewUC.GetInterview(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interview details", interview)
}

// Update godoc
// @Summary      Update an interview
// @Description  Partial update. Status changes are checked against the interview lifecycle, and completing requires an uploaded recording.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id         path   int                     true  "Interview ID"
// @Param        interview  body   domain.InterviewPatch   true  "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /interviews/{id}/ [patch]
// @Security     BearerAuth
func (h *InterviewHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}
	var patch domain.InterviewPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	interview, err := h.interviewUC.UpdateInterview(c.Request.Context(), id, &patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interview updated", interview)
}

func (h *InterviewHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}
	if err := h.interviewUC.DeleteInterview(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interview deleted", nil)
}

// UploadRecording godoc
// @Summary      Upload an interview recording
// @Tags         interviews
// @Accept       multipart/form-data
// @Produce      json
// @Param        id         path   int   true  "Interview ID"
// @Param        recording  formData  file  true  "Recording file"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /interviews/{id}/upload_recording/ [post]
// @Security     BearerAuth
func (h *InterviewHandler) UploadRecording(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	file, header, err := c.Request.FormFile("recording")
	if err != nil {
		c.Error(apperror.BadRequest("No recording file provided"))
		return
	}
	defer file.Close()

	interview, err := h.interviewUC.UploadRecording(c.Request.Context(), id, header.Filename, file, header.Size)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recording uploaded", interview)
}

// Complete godoc
// @Summary      Mark an interview completed
// @Description  Fails when no recording has been uploaded or the lifecycle forbids the transition.
// @Tags         interviews
// @Produce      json
// @Param        id  path  int  true  "Interview ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /interviews/{id}/complete_interview/ [post]
// @Security     BearerAuth
func (h *InterviewHandler) Complete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}
	interview, err := h.interviewUC.CompleteInterview(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interview completed", interview)
}

// Upcoming godoc
// @Summary      Next upcoming interviews
// @Tags         interviews
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /interviews/upcoming_interviews/ [get]
// @Security     BearerAuth
func (h *InterviewHandler) Upcoming(c *gin.Context) {
	interviews, err := h.interviewUC.UpcomingInterviews(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if interviews == nil {
		interviews = []domain.Interview{}
	}
	response.Success(c, http.StatusOK, "Upcoming interviews", interviews)
}

// My godoc
// @Summary      Interviews assigned to the current user
// @Tags         interviews
// @Produce      json
// @Param        status  query  string  false  "Status filter"  Enums(scheduled, in_progress, completed, cancelled)
// @Success      200  {object}  response.Response
// @Router       /interviews/my_interviews/ [get]
// @Security     BearerAuth
func (h *InterviewHandler) My(c *gin.Context) {
	interviews, err := h.interviewUC.MyInterviews(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.Error(err)
		return
	}
	if interviews == nil {
		interviews = []domain.Interview{}
	}
	response.Success(c, http.StatusOK, "My interviews", interviews)
}
