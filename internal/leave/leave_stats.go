package leave

import "time"

// AllowanceSourceClientDefault marks a balance computed against a client-side
// allowance that ELMS never confirmed.
const AllowanceSourceClientDefault = "client-default"

// Stats summarises an employee's requests and balance.
type Stats struct {
	Approved        int     `json:"approved"`
	Pending         int     `json:"pending"`
	Rejected        int     `json:"rejected"`
	Unknown         int     `json:"unknown,omitempty"`
	UsedDays        int     `json:"usedDays"`
	TotalAllowance  int     `json:"totalAllowance"`
	RemainingDays   int     `json:"remainingDays"`
	UsedPercent     float64 `json:"usedPercent"`
	AllowanceSource string  `json:"allowanceSource"`
}

// Summarize counts views by status and computes the balance against allowance.
// Only approved days are used.
func Summarize(views []View, allowance int) Stats {
	st := Stats{
		TotalAllowance:  allowance,
		AllowanceSource: AllowanceSourceClientDefault,
	}
	for _, v := range views {
		switch v.Status {
		case StatusApproved:
			st.Approved++
			st.UsedDays += v.Days
		case StatusPending:
			st.Pending++
		case StatusRejected:
			st.Rejected++
		default:
			st.Unknown++
		}
	}
	st.RemainingDays = allowance - st.UsedDays
	if allowance > 0 {
		st.UsedPercent = float64(st.UsedDays) / float64(allowance) * 100
	}
	return st
}

// DepartmentStats summarises the requests a head sees.
type DepartmentStats struct {
	Total             int `json:"total"`
	Employees         int `json:"employees"`
	Pending           int `json:"pending"`
	ApprovedThisMonth int `json:"approvedThisMonth"`
}

// SummarizeDepartment counts distinct employees, pending requests and
// approved requests starting in now's month.
func SummarizeDepartment(views []View, now time.Time) DepartmentStats {
	st := DepartmentStats{Total: len(views)}
	employees := make(map[string]struct{})
	year, month, _ := now.Date()

	for _, v := range views {
		employees[v.EmployeeID] = struct{}{}
		switch v.Status {
		case StatusPending:
			st.Pending++
		case StatusApproved:
			start, err := ParseDate(v.StartDate)
			if err != nil {
				continue
			}
			if y, m, _ := start.Date(); y == year && m == month {
				st.ApprovedThisMonth++
			}
		}
	}
	st.Employees = len(employees)
	return st
}
