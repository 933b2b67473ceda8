package rbac

import (
	"net/http"
	"strings"

	"elms-portal/internal/session"
	"elms-portal/internal/shared/apperror"
	"elms-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Enforce answers whether the caller's own role may do resource/action.
func (h *Handler) Enforce(c *gin.Context) {
	var req EnforceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperror.MapValidationError(err))
		return
	}

	req.Role = string(session.FromContext(c.Request.Context()).Role)
	req.Resource = strings.TrimSpace(req.Resource)
	req.Action = strings.TrimSpace(req.Action)

	if req.Resource == "" || req.Action == "" {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "resource and action are required", nil)
		return
	}

	allowed, err := h.service.Enforce(req)
	if err != nil {
		response.Fail(c, apperror.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, EnforceResponse{Allowed: allowed}, nil)
}

// Permissions lists what the signed-in role may do, for menus.
func (h *Handler) Permissions(c *gin.Context) {
	role := string(session.FromContext(c.Request.Context()).Role)

	perms, err := h.service.PermissionsFor(role)
	if err != nil {
		response.Fail(c, apperror.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, PermissionsResponse{Role: role, Permissions: perms}, nil)
}
