package admin

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
	admin := r.Group("/admin")
	admin.Use(requireSession)
	{
		admin.GET("/dashboard",
			middleware.RateLimitBySession(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceHead, rbac.ActionRead),
			handler.Dashboard,
		)

		heads := admin.Group("/heads")
		heads.Use(
			middleware.RateLimitBySession(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceHead, rbac.ActionManage),
		)
		heads.POST("", handler.CreateHead)
		heads.PUT("/:id", handler.UpdateHead)
		heads.DELETE("/:id", handler.DeleteHead)
		heads.PATCH("/:id/status", handler.ToggleStatus)
	}
}
