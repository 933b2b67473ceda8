package employee

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
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Dashboard answers the overview. ?refresh=false serves the held list without calling the API.
func (h *Handler) Dashboard(c *gin.Context) {
	refresh := true
	if v := c.Query("refresh"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			refresh = parsed
		}
	}

	resp, err := h.service.Overview(c.Request.Context(), middleware.SessionID(c), middleware.Identity(c), refresh)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, &response.ListMeta{Total: len(resp.Requests), Scope: "own"})
}

func (h *Handler) SubmitLeave(c *gin.Context) {
	var form validation.LeaveForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("http submit leave bind failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	resp, err := h.service.SubmitLeave(c.Request.Context(), middleware.SessionID(c), middleware.Identity(c), form)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

// Report sends the leave history as a download, json unless ?format=pdf.
func (h *Handler) Report(c *gin.Context) {
	file, err := h.service.Report(c.Request.Context(), middleware.SessionID(c), middleware.Identity(c), c.Query("format"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Body)
}
