package head

import (
	"net/http"
	"strconv"

	"elms-portal/internal/leave"
	"elms-portal/internal/middleware"
	"elms-portal/internal/shared/apperror"
	"elms-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("head.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("head.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("head request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
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

	resp, err := h.service.Overview(c.Request.Context(), middleware.SessionID(c), middleware.Identity(c), f, refresh)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, &response.ListMeta{Total: len(resp.Requests), Scope: "department"})
}

func (h *Handler) Approve(c *gin.Context) {
	h.decide(c, leave.StatusApproved)
}

func (h *Handler) Reject(c *gin.Context) {
	h.decide(c, leave.StatusRejected)
}

func (h *Handler) decide(c *gin.Context, status leave.Status) {
	leaveID := c.Param("id")
	h.logger.Debug("http decide leave", zap.String("leave_id", leaveID), zap.String("status", status.String()))

	resp, err := h.service.Decide(c.Request.Context(), middleware.SessionID(c), middleware.Identity(c), leaveID, status)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
