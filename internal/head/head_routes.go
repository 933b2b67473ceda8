package head

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
	head := r.Group("/head")
	head.Use(requireSession)
	{
		head.GET("/dashboard",
			middleware.RateLimitBySession(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDepartmentLeave, rbac.ActionRead),
			handler.Dashboard,
		)

		head.PUT("/leaves/:id/approve",
			middleware.RateLimitBySession(2, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDepartmentLeave, rbac.ActionDecide),
			handler.Approve,
		)

		head.PUT("/leaves/:id/reject",
			middleware.RateLimitBySession(2, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDepartmentLeave, rbac.ActionDecide),
			handler.Reject,
		)
	}
}
