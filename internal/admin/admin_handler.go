package admin

import (
	"net/http"
	"strconv"

	"elms-portal/internal/middleware"
	"elms-portal/internal/shared/apperror"
	"elms-portal/internal/shared/response"
	"elms-portal/internal/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("admin.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admin.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("admin request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.logger.Warn("http admin bind failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return false
	}
	return true
}

func (h *Handler) Dashboard(c *gin.Context) {
	var f Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid query", err.Error())
		return
	}
	refresh := true
	if v := c.Query("refresh"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			refresh = parsed
		}
	}

	resp, err := h.service.Overview(c.Request.Context(), middleware.SessionID(c), f, refresh)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, &response.ListMeta{Total: len(resp.Heads), Scope: "department_heads"})
}

func (h *Handler) CreateHead(c *gin.Context) {
	var form validation.CreateHeadForm
	if !h.bindJSON(c, &form) {
		return
	}

	resp, err := h.service.CreateHead(c.Request.Context(), middleware.SessionID(c), middleware.Identity(c), form)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) UpdateHead(c *gin.Context) {
	var form validation.UpdateHeadForm
	if !h.bindJSON(c, &form) {
		return
	}

	resp, err := h.service.UpdateHead(c.Request.Context(), middleware.SessionID(c), middleware.Identity(c), c.Param("id"), form)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteHead(c *gin.Context) {
	if err := h.service.DeleteHead(c.Request.Context(), middleware.SessionID(c), middleware.Identity(c), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Department head deleted.", nil)
}

func (h *Handler) ToggleStatus(c *gin.Context) {
	resp, err := h.service.ToggleStatus(c.Request.Context(), middleware.SessionID(c), middleware.Identity(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
