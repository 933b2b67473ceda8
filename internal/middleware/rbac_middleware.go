package middleware

import (
	"net/http"

	"elms-portal/internal/domain"
	"elms-portal/internal/session"
	sessionerrors "elms-portal/internal/session/errors"
	"elms-portal/internal/shared/apperror"
	"elms-portal/internal/shared/contextutil"
	"elms-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService is anything that can answer an enforce request.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := session.FromContext(c.Request.Context())
		if !id.Authenticated() {
			response.Fail(c, sessionerrors.ErrNoSession)
			c.Abort()
			return
		}

		req := domain.EnforceRequest{
			Role:     string(id.Role),
			Resource: resource,
			Action:   action,
		}

		allowed, err := service.Enforce(req)
		if err != nil {
			contextutil.GetLogger(c.Request.Context(), zap.L()).Error("rbac enforce failed", zap.Error(err))
			response.Fail(c, apperror.ErrInternal)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden, apperror.ErrForbidden.Message, gin.H{
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
