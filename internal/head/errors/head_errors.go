package headerrors

import (
	"elms-portal/internal/shared/apperror"
	"net/http"
)

var (
	ErrNoDepartment = apperror.New(
		apperror.CodeUnauthorized,
		"Department information not found in session. Please log in again.",
		http.StatusUnauthorized,
	)
	ErrLeaveNotInDepartment = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found in your department",
		http.StatusNotFound,
	)
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid leave request id",
		http.StatusBadRequest,
	)
)
