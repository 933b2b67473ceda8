package elmsapierrors

import (
	"net/http"

	"elms-portal/internal/shared/apperror"
)

// NoResponseMessage is shown when the API could not be reached at all.
const NoResponseMessage = "No response from server"

// Fallback messages used when the API fails without a readable message.
const (
	MsgRegistrationFailed = "Registration failed"
	MsgLoginFailed        = "Login failed. Please try again."
	MsgInvalidCredentials = "Invalid credentials"
	MsgSubmitFailed       = "Failed to submit leave request"
	MsgFetchLeavesFailed  = "Failed to fetch leave requests"
	MsgUpdateStatusFailed = "Failed to update status"
	MsgFetchHeadsFailed   = "Failed to fetch department heads"
	MsgCreateHeadFailed   = "Failed to create user"
	MsgUpdateHeadFailed   = "Failed to update department head"
	MsgDeleteHeadFailed   = "Failed to delete department head"
	MsgToggleHeadFailed   = "Failed to change department head status"
)

var ErrNoResponse = apperror.New(
	apperror.CodeNoResponse,
	NoResponseMessage,
	http.StatusBadGateway,
)

// Upstream builds the error for a request the API answered with a failure.
func Upstream(message string, status int) *apperror.AppError {
	return apperror.New(apperror.CodeUpstream, message, upstreamHTTPStatus(status))
}

// Upstream 4xx keep their status so the portal answers the same way; anything
// else is reported as a bad gateway.
func upstreamHTTPStatus(status int) int {
	if status >= 400 && status < 500 {
		return status
	}
	return http.StatusBadGateway
}
