package autherrors

import (
	"net/http"

	"elms-portal/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials",
		http.StatusUnauthorized,
	)
	ErrAdminLoginDisabled = apperror.New(
		apperror.CodeServiceUnavailable,
		"Admin sign-in is not configured",
		http.StatusServiceUnavailable,
	)
	ErrForbidden = apperror.ErrForbidden
)
