package adminerrors

import (
	"elms-portal/internal/shared/apperror"
	"net/http"
)

var (
	ErrHeadNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department head not found",
		http.StatusNotFound,
	)
	ErrInvalidHeadID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid department head id",
		http.StatusBadRequest,
	)
)
