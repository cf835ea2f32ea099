package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go-interview-tracker/config"
	"go-interview-tracker/internal/delivery/http/response"
	"go-interview-tracker/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates an HS256 bearer token (header or cookie) and loads
// the user fresh from the database. The staff flag always comes from the DB
// row, never from a possibly stale token claim.
func AuthMiddleware(cfg *config.Config, users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			if cfg.JWTSecret == "" {
				return nil, fmt.Errorf("JWT_SECRET is not configured")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		sub, ok := claims["sub"].(float64)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid subject claim", nil)
			c.Abort()
			return
		}
		userID := int64(sub)

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUsername), user.Username)
		c.Set(string(domain.KeyIsStaff), user.IsStaff)

		// Usecases read identity from the request context
		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, user.ID)
		ctx = context.WithValue(ctx, domain.KeyUsername, user.Username)
		ctx = context.WithValue(ctx, domain.KeyIsStaff, user.IsStaff)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
