package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/givehope/givehope/internal/app/models"
	"github.com/givehope/givehope/internal/app/models/dto"
	"github.com/givehope/givehope/internal/app/store"
	"github.com/givehope/givehope/internal/pkg/auth"
)

// Context keys set by SessionAuth.
const (
	ContextUser         = "user"
	ContextUserID       = "userID"
	ContextSessionToken = "sessionToken"
)

// AuthMiddleware resolves the session cookie into an authenticated principal
// and enforces role requirements.
type AuthMiddleware struct {
	sessions   *auth.SessionManager
	store      *store.Store
	cookieName string
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions *auth.SessionManager, st *store.Store, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:   sessions,
		store:      st,
		cookieName: cookieName,
	}
}

// SessionAuth aborts with 401 unless the request carries a cookie bound to a
// live session whose user still exists. On success the principal is placed in
// the request context.
func (m *AuthMiddleware) SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookieName)
		if err != nil || token == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Session cookie missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		userID, ok := m.sessions.Resolve(token)
		if !ok {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeSessionExpired, "Authentication required")
			errorDetail = errorDetail.WithDetails("Session is invalid or has expired")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		user := m.store.GetUser(userID)
		if user == nil {
			// Session outlived its account; treat as unauthenticated.
			m.sessions.Revoke(token)
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextUserID, user.ID)
		c.Set(ContextSessionToken, token)

		c.Next()
	}
}

// RoleRequired aborts with 403 unless the authenticated principal holds the
// required role. Must run after SessionAuth.
func (m *AuthMiddleware) RoleRequired(requiredRole models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		if user.Role != requiredRole {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
			errorDetail = errorDetail.WithDetails("You don't have sufficient permissions for this operation")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated principal from the request context,
// or nil when SessionAuth has not run.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ContextUser)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// SessionToken returns the session token from the request context.
func SessionToken(c *gin.Context) string {
	value, exists := c.Get(ContextSessionToken)
	if !exists {
		return ""
	}
	token, _ := value.(string)
	return token
}
