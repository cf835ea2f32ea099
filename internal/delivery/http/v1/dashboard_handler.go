package v1

import (
	"net/http"
	"strconv"

	"go-interview-tracker/internal/delivery/http/response"
	"go-interview-tracker/internal/domain"
	"go-interview-tracker/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(protected *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}

	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("/stats/", handler.Stats)
		dashboard.GET("/calendar/", handler.Calendar)
	}
}

// Stats godoc
// @Summary      Dashboard statistics
// @Description  Today and current-week counts, per-status totals, interviews still missing a recording, and the overall total. Scoped to the caller unless they are staff.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /dashboard/stats/ [get]
// @Security     BearerAuth
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardUC.Stats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard stats", stats)
}

// Calendar godoc
// @Summary      Per-day interview counts for a month
// @Tags         dashboard
// @Produce      json
// @Param        year   query  int  false  "Year, defaults to the current year"
// @Param        month  query  int  false  "Month 1-12, defaults to the current month"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /dashboard/calendar/ [get]
// @Security     BearerAuth
func (h *DashboardHandler) Calendar(c *gin.Context) {
	var year, month int
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid year format"))
			return
		}
		year = parsed
	}
	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid month format"))
			return
		}
		month = parsed
	}

	entries, err := h.dashboardUC.Calendar(c.Request.Context(), year, month)
	if err != nil {
		c.Error(err)
		return
	}
	if entries == nil {
		entries = []domain.CalendarEntry{}
	}
	response.Success(c, http.StatusOK, "Interview calendar", entries)
}
