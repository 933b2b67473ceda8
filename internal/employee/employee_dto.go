package employee

import "elms-portal/internal/leave"

// GuestName is shown when the session carries no usable name.
const GuestName = "Guest"

type Profile struct {
	Name       string `json:"name"`
	EmployeeID string `json:"employeeId"`
	Department string `json:"department"`
	Initials   string `json:"initials"`
}

type Overview struct {
	Profile  Profile      `json:"profile"`
	Requests []leave.View `json:"requests"`
	Stats    leave.Stats  `json:"stats"`
	Version  uint64       `json:"version"`
}

// Report is the downloadable leave history of one employee.
type Report struct {
	Employee      Profile      `json:"employee"`
	LeaveBalance  leave.Stats  `json:"leaveBalance"`
	LeaveHistory  []leave.View `json:"leaveHistory"`
	GeneratedDate string       `json:"generatedDate"`
	Year          int          `json:"-"`
}

// ReportFile is a rendered report ready to be sent as a download.
type ReportFile struct {
	Name        string
	ContentType string
	Body        []byte
}
