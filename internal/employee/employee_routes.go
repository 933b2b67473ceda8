package employee

import (
	"elms-portal/internal/middleware"
	"elms-portal/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	requireSession gin.HandlerFunc,
) {
	employee := r.Group("/employee")
	employee.Use(requireSession)
	{
		employee.GET("/dashboard",
			middleware.RateLimitBySession(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceOwnLeave, rbac.ActionRead),
			handler.Dashboard,
		)

		employee.POST("/leaves",
			middleware.RateLimitBySession(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceOwnLeave, rbac.ActionCreate),
			handler.SubmitLeave,
		)

		employee.GET("/report",
			middleware.RateLimitBySession(0.2, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveReport, rbac.ActionRead),
			handler.Report,
		)
	}
}
