package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"go-interview-tracker/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

const (
	// CSRFTokenCookieName is the name of the cookie that stores the CSRF token
	CSRFTokenCookieName = "csrf_token"
	// CSRFTokenHeaderName is the name of the header that must contain the CSRF token
	CSRFTokenHeaderName = "X-CSRF-Token"
	// CSRFTokenLength is the length of the generated token in bytes
	CSRFTokenLength = 32
	// CSRFTokenExpiry is how long the token is valid
	CSRFTokenExpiry = 24 * time.Hour
)

// GenerateCSRFToken creates a cryptographically secure random token
func GenerateCSRFToken() (string, error) {
	bytes := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// SetCSRFCookie sets (or refreshes) the double-submit cookie and returns the
// active token. Used both by the middleware and the /csrf/ endpoint.
func SetCSRFCookie(c *gin.Context) (string, error) {
	if cookie, err := c.Cookie(CSRFTokenCookieName); err == nil && cookie != "" {
		return cookie, nil
	}
	token, err := GenerateCSRFToken()
	if err != nil {
		return "", err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		CSRFTokenCookieName,
		token,
		int(CSRFTokenExpiry.Seconds()),
		"/",
		"",
		true,
		false, // readable by JS, required for double-submit
	)
	return token, nil
}

// CSRFMiddleware implements the double-submit cookie pattern: the frontend
// reads the csrf_token cookie and echoes it in the X-CSRF-Token header on
// every mutating request. Requests authenticated with a bearer Authorization
// header are exempt - a cross-site attacker cannot set that header.
func CSRFMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := SetCSRFCookie(c)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to generate security token", nil)
			c.Abort()
			return
		}

		method := c.Request.Method
		if method == "GET" || method == "HEAD" || method == "OPTIONS" {
			c.Next()
			return
		}

		if strings.HasPrefix(c.GetHeader("Authorization"), "Bearer ") {
			c.Next()
			return
		}

		headerToken := c.GetHeader(CSRFTokenHeaderName)
		if headerToken == "" {
			response.Error(c, http.StatusForbidden, "Missing CSRF token", nil)
			c.Abort()
			return
		}
		if headerToken != cookie {
			response.Error(c, http.StatusForbidden, "Invalid CSRF token", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
