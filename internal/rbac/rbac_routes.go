package rbac

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the rbac endpoints behind the session middleware.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, requireSession gin.HandlerFunc) {
	group := r.Group("/rbac")
	group.Use(requireSession)
	{
		group.GET("/permissions", handler.Permissions)
		group.POST("/enforce", handler.Enforce)
	}
}
