package v1

import (
	"net/http"

	"go-interview-tracker/internal/delivery/http/middleware"
	"go-interview-tracker/internal/delivery/http/response"
	"go-interview-tracker/internal/domain"
	"go-interview-tracker/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public, protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	public.GET("/csrf/", handler.CSRFToken)
	protected.GET("/auth/user/", handler.CurrentUser)
}

// CSRFToken godoc
// @Summary      Issue a CSRF token
// @Description  Sets the csrf_token cookie and echoes the token for double-submit clients.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /csrf/ [get]
func (h *AuthHandler) CSRFToken(c *gin.Context) {
	token, err := middleware.SetCSRFCookie(c)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "CSRF token issued", gin.H{"csrfToken": token})
}

// CurrentUser godoc
// @Summary      Current authenticated user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/user/ [get]
// @Security     BearerAuth
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID, ok := c.Request.Context().Value(domain.KeyUserID).(int64)
	if !ok {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Current user", user)
}
