package utils

import "github.com/gin-gonic/gin"

// CurrentUserID returns the account id the auth middleware stored on the
// context, or 0 for an unauthenticated request.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userId"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// IsAdmin reports whether the authenticated caller carries the admin role.
func IsAdmin(c *gin.Context) bool {
	if v, ok := c.Get("role"); ok {
		if role, ok := v.(string); ok {
			return role == "admin"
		}
	}
	return false
}
