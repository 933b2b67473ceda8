package sessionerrors

import (
	"net/http"

	"elms-portal/internal/shared/apperror"
)

var (
	ErrNoSession = apperror.New(
		apperror.CodeUnauthorized,
		"Please sign in to continue",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid session token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Session has expired, please sign in again",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to start session",
		http.StatusInternalServerError,
	)
	ErrStoreUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Session store is unavailable",
		http.StatusServiceUnavailable,
	)
)
