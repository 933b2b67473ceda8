package head

import "elms-portal/internal/leave"

type Profile struct {
	Name       string `json:"name"`
	EmployeeID string `json:"employeeId"`
	Department string `json:"department"`
	Initials   string `json:"initials"`
}

// Filter narrows the requests shown. Zero values match everything.
type Filter struct {
	Search string       `form:"q"`
	Status leave.Status `form:"status"`
}

type Overview struct {
	Profile  Profile               `json:"profile"`
	Requests []leave.View          `json:"requests"`
	Stats    leave.DepartmentStats `json:"stats"`
	Version  uint64                `json:"version"`
}

type DecisionResponse struct {
	Request leave.View `json:"request"`
}
