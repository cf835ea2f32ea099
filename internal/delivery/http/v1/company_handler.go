package v1

import (
	"net/http"
	"strconv"

	"go-interview-tracker/internal/delivery/http/response"
	"go-interview-tracker/internal/domain"
	"go-interview-tracker/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(protected *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	companies := protected.Group("/companies")
	{
		companies.GET("/", handler.List)
		companies.POST("/", handler.Create)
		companies.GET("/:id/", handler.Get)
		companies.PUT("/:id/", handler.Update)
		companies.PATCH("/:id/", handler.Update)
		companies.DELETE("/:id/", handler.Delete)
	}
}

type CompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Website     string `json:"website" binding:"omitempty,url"`
}

// Create godoc
// @Summary      Create a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        company  body      CompanyRequest  true  "Company JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /companies/ [post]
// @Security     BearerAuth
func (h *CompanyHandler) Create(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	company := &domain.Company{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
	}
	if err := h.companyUC.CreateCompany(c.Request.Context(), company); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Company created", company)
}

// List godoc
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /companies/ [get]
// @Security     BearerAuth
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companyUC.ListCompanies(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if companies == nil {
		companies = []domain.Company{}
	}
	response.Success(c, http.StatusOK, "Company list", companies)
}

func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}
	company, err := h.companyUC.GetCompany(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company details", company)
}

func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	company := &domain.Company{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
	}
	if err := h.companyUC.UpdateCompany(c.Request.Context(), company); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company updated", company)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}
	if err := h.companyUC.DeleteCompany(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company deleted", nil)
}
