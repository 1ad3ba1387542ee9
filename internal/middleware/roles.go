package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
)

// RequireCapability gates a route group on a role capability check. The
// caller's role comes from the token validated by AuthMiddleware.
func RequireCapability(check func(domain.Role) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleStr, ok := GetUserRoleFromContext(c)
		if !ok {
			GetLoggerFromCtx(c.Request.Context()).Warn("Role missing from request context")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Role information missing"})
			return
		}
		if !check(domain.Role(roleStr)) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Capability check failed", "role", roleStr, "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

// RequireFinance allows only roles that may manage accounts, vouchers and payments.
func RequireFinance() gin.HandlerFunc {
	return RequireCapability(domain.Role.CanManageFinance)
}

// RequireProjectManagement allows only roles that may manage projects and workers.
func RequireProjectManagement() gin.HandlerFunc {
	return RequireCapability(domain.Role.CanManageProjects)
}

// RequireAttendanceRecording allows any role that may record attendance.
func RequireAttendanceRecording() gin.HandlerFunc {
	return RequireCapability(domain.Role.CanRecordAttendance)
}
