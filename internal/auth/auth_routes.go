package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /auth. loginLimit guards every credential-checking endpoint.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, loginLimit gin.HandlerFunc) {
	auth := r.Group("/auth")
	{
		auth.GET("/me", handler.Me)
		auth.POST("/register", loginLimit, handler.Register)
		auth.POST("/login", loginLimit, handler.LoginEmployee)
		auth.POST("/heads/login", loginLimit, handler.LoginHead)
		auth.POST("/admin/login", loginLimit, handler.LoginAdmin)
		auth.POST("/logout", handler.Logout)
	}
}
