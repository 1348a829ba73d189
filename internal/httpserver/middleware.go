package httpserver

import (
	"net/http"
	"strings"

	"gamestore/internal/domain"
	"github.com/gin-gonic/gin"
)

const userCtxKey = "currentUser"

// authRequired resolves the bearer token to a user and stores it on the
// request context. The user record is always re-read from the store.
func authRequired(auth authService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			respondError(c, http.StatusUnauthorized, "not authorized, no token")
			c.Abort()
			return
		}
		user, err := auth.LookupByToken(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			respondError(c, http.StatusUnauthorized, "not authorized")
			c.Abort()
			return
		}
		c.Set(userCtxKey, user)
		c.Next()
	}
}

// adminRequired must run after authRequired.
func adminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok || !user.IsAdmin() {
			respondError(c, http.StatusForbidden, "not authorized as admin")
			c.Abort()
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(userCtxKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
