package employeeerrors

import (
	"elms-portal/internal/shared/apperror"
	"net/http"
)

var (
	ErrNoEmployee = apperror.New(
		apperror.CodeUnauthorized,
		"Employee information not found in session. Please log in again.",
		http.StatusUnauthorized,
	)
	ErrUnknownReportFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Report format must be json or pdf",
		http.StatusBadRequest,
	)
	ErrReportRenderFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to render leave report",
		http.StatusInternalServerError,
	)
)
