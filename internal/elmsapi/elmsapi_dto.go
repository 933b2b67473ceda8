package elmsapi

import (
	"elms-portal/internal/leave"
)

type RegisterEmployeeRequest struct {
	Name       string `json:"name"`
	EmployeeID string `json:"employeeId"`
	Password   string `json:"password"`
	Department string `json:"department"`
}

type LoginRequest struct {
	EmployeeID string `json:"employeeId"`
	Password   string `json:"password"`
}

// EmployeeLoginResponse is the employee login body. ELMS answers 200 with
// success=false for bad credentials.
type EmployeeLoginResponse struct {
	Success    *bool  `json:"success,omitempty"`
	Message    string `json:"message,omitempty"`
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name,omitempty"`
	Department string `json:"department"`
}

type HeadLoginResponse struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

type HeadStatus string

const (
	HeadActive   HeadStatus = "Active"
	HeadInactive HeadStatus = "Inactive"
)

// Toggled returns the opposite status; anything unknown becomes Active.
func (s HeadStatus) Toggled() HeadStatus {
	if s == HeadActive {
		return HeadInactive
	}
	return HeadActive
}

type DepartmentHead struct {
	ID         leave.ID   `json:"id"`
	EmployeeID string     `json:"employeeId"`
	Name       string     `json:"name"`
	Department string     `json:"department"`
	Status     HeadStatus `json:"status"`
	LastLogin  leave.Date `json:"lastLogin,omitempty"`
}

type CreateHeadRequest struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Password   string `json:"password"`
}

// UpdateHeadRequest edits a head; an empty password is not sent.
type UpdateHeadRequest struct {
	EmployeeID string     `json:"employeeId"`
	Name       string     `json:"name"`
	Department string     `json:"department"`
	Password   string     `json:"password,omitempty"`
	Status     HeadStatus `json:"status,omitempty"`
}

type SubmitLeaveRequest struct {
	Type       string `json:"type"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Reason     string `json:"reason"`
	EmployeeID string `json:"employeeId"`
	Department string `json:"department"`
}

type SubmitLeaveResponse struct {
	ID     leave.ID `json:"id"`
	Status string   `json:"status"`
}
