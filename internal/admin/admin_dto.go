package admin

import "elms-portal/internal/elmsapi"

// Filter narrows the head list: Search matches name or employee id ignoring
// case, Department must match exactly. Zero values match everything.
type Filter struct {
	Search     string `form:"q"`
	Department string `form:"department"`
}

type Stats struct {
	TotalDepartmentHeads    int `json:"totalDepartmentHeads"`
	ActiveDepartmentHeads   int `json:"activeDepartmentHeads"`
	InactiveDepartmentHeads int `json:"inactiveDepartmentHeads"`
	TotalDepartments        int `json:"totalDepartments"`
}

type Overview struct {
	Heads       []elmsapi.DepartmentHead `json:"heads"`
	Stats       Stats                    `json:"stats"`
	Departments []string                 `json:"departments"`
}
