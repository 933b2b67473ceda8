package leave

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	leaveerrors "elms-portal/internal/leave/errors"
)

const DateLayout = "2006-01-02"

// View is a leave request ready for display.
type View struct {
	ID              string       `json:"id"`
	EmployeeID      string       `json:"employeeId"`
	Department      string       `json:"department"`
	Type            string       `json:"type"`
	StartDate       string       `json:"startDate"`
	EndDate         string       `json:"endDate"`
	Days            int          `json:"days"`
	InvalidDates    bool         `json:"invalidDates,omitempty"`
	Reason          string       `json:"reason"`
	Status          Status       `json:"status"`
	RejectionReason string       `json:"rejectionReason,omitempty"`
	AppliedDate     string       `json:"appliedDate,omitempty"`
	Initials        string       `json:"initials"`
	Presentation    Presentation `json:"presentation"`
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns the calendar date in UTC.
func ParseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(DateLayout, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, leaveerrors.ErrInvalidDateFormat
}

// DayCount is the inclusive number of days between start and end.
func DayCount(start, end string) (int, error) {
	startDate, err := ParseDate(start)
	if err != nil {
		return 0, err
	}
	endDate, err := ParseDate(end)
	if err != nil {
		return 0, err
	}
	if startDate.After(endDate) {
		return 0, leaveerrors.ErrInvalidDateRange
	}
	return int(endDate.Sub(startDate).Hours()/24) + 1, nil
}

// Derive turns a raw record into its display form.
func Derive(rec Record) View {
	status := ParseStatus(rec.Status)
	v := View{
		ID:              string(rec.ID),
		EmployeeID:      rec.EmployeeID,
		Department:      rec.Department,
		Type:            rec.Type,
		StartDate:       string(rec.StartDate),
		EndDate:         string(rec.EndDate),
		Reason:          rec.Reason,
		Status:          status,
		RejectionReason: rec.RejectionReason,
		AppliedDate:     string(rec.AppliedDate),
		Initials:        Initials(rec.EmployeeID),
		Presentation:    Present(status, rec.Status),
	}
	if v.AppliedDate == "" {
		v.AppliedDate = rec.CreatedAt
	}

	switch {
	case rec.Days > 0:
		v.Days = rec.Days
	case rec.StartDate == "" || rec.EndDate == "":
		v.Days = 1
	default:
		days, err := DayCount(string(rec.StartDate), string(rec.EndDate))
		if err != nil {
			v.InvalidDates = true
			break
		}
		v.Days = days
	}
	return v
}

// DeriveAll derives every record. Records without an id get their 1-based position.
func DeriveAll(recs []Record) []View {
	views := make([]View, len(recs))
	for i, rec := range recs {
		views[i] = Derive(rec)
		if views[i].ID == "" {
			views[i].ID = strconv.Itoa(i + 1)
		}
	}
	return views
}

// Initials is the avatar text for an employee id: its first two characters upper-cased.
func Initials(employeeID string) string {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return "NA"
	}
	if utf8.RuneCountInString(employeeID) > 2 {
		employeeID = string([]rune(employeeID)[:2])
	}
	return strings.ToUpper(employeeID)
}

// FilterByDepartment keeps views whose department equals dept exactly.
// No case or whitespace normalisation is applied.
func FilterByDepartment(views []View, dept string) []View {
	out := make([]View, 0, len(views))
	for _, v := range views {
		if v.Department == dept {
			out = append(out, v)
		}
	}
	return out
}

func withStatus(v View, s Status) View {
	v.Status = s
	v.Presentation = Present(s, string(s))
	return v
}
