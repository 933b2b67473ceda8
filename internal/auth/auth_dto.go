package auth

import "elms-portal/internal/session"

type RegisterResponse struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Message    string `json:"message"`
}

// LoginResult is what a successful sign-in produces.
type LoginResult struct {
	Token     string           `json:"token"`
	SessionID string           `json:"-"`
	Identity  session.Identity `json:"identity"`
	Redirect  string           `json:"redirect"`
}

type MeResponse struct {
	Authenticated bool             `json:"authenticated"`
	Identity      session.Identity `json:"identity"`
}
