package v1

import (
	"net/http"
	"strconv"

	"go-interview-tracker/internal/delivery/http/response"
	"go-interview-tracker/internal/domain"
	"go-interview-tracker/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PositionHandler struct {
	positionUC domain.PositionUsecase
}

func NewPositionHandler(protected *gin.RouterGroup, positionUC domain.PositionUsecase) {
	handler := &PositionHandler{positionUC: positionUC}

	positions := protected.Group("/positions")
	{
		positions.GET("/", handler.List)
		positions.POST("/", handler.Create)
		positions.GET("/:id/", handler.Get)
		positions.PUT("/:id/", handler.Update)
		positions.PATCH("/:id/", handler.Update)
		positions.DELETE("/:id/", handler.Delete)
	}
}

type PositionRequest struct {
	CompanyID    int64  `json:"company_id" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Level        string `json:"level"`
	SalaryRange  string `json:"salary_range"`
}

// Create godoc
// @Summary      Create a position
// @Tags         positions
// @Accept       json
// @Produce      json
// @Param        position  body      PositionRequest  true  "Position JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /positions/ [post]
// @Security     BearerAuth
func (h *PositionHandler) Create(c *gin.Context) {
	var req PositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	position := &domain.Position{
		CompanyID:    req.CompanyID,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Level:        req.Level,
		SalaryRange:  req.SalaryRange,
	}
	if err := h.positionUC.CreatePosition(c.Request.Context(), position); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Position created", position)
}

// List godoc
// @Summary      List positions, optionally scoped to a company
// @Tags         positions
// @Produce      json
// @Param        company_id  query     int  false  "Company ID"
// @Success      200  {object}  response.Response
// @Router       /positions/ [get]
// @Security     BearerAuth
func (h *PositionHandler) List(c *gin.Context) {
	var companyID int64
	if raw := c.Query("company_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid company_id format"))
			return
		}
		companyID = parsed
	}

	positions, err := h.positionUC.ListPositions(c.Request.Context(), companyID)
	if err != nil {
		c.Error(err)
		return
	}
	if positions == nil {
		positions = []domain.PositionWithCompany{}
	}
	response.Success(c, http.StatusOK, "Position list", positions)
}

func (h *PositionHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}
	position, err := h.positionUC.GetPosition(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Position details", position)
}

func (h *PositionHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}
	var req PositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	position := &domain.Position{
		ID:           id,
		CompanyID:    req.CompanyID,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Level:        req.Level,
		SalaryRange:  req.SalaryRange,
	}
	if err := h.positionUC.UpdatePosition(c.Request.Context(), position); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Position updated", position)
}

func (h *PositionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}
	if err := h.positionUC.DeletePosition(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Position deleted", nil)
}
