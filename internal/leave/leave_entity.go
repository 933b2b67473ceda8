package leave

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Type is the kind of leave an employee asks for.
type Type string

const (
	TypeSick      Type = "Sick Leave"
	TypePersonal  Type = "Personal Leave"
	TypeEmergency Type = "Emergency Leave"
)

// Types returns the leave types in display order.
func Types() []Type {
	return []Type{TypeSick, TypePersonal, TypeEmergency}
}

func (t Type) Valid() bool {
	for _, v := range Types() {
		if v == t {
			return true
		}
	}
	return false
}

// ID is a leave request identifier. ELMS sends numeric ids; strings are accepted too.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("leave id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Date is a calendar date as sent by ELMS: either "2024-01-10" or [2024,1,10].
type Date string

func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*d = ""
		return nil
	}
	if len(b) > 0 && b[0] == '[' {
		var parts []int
		if err := json.Unmarshal(b, &parts); err != nil {
			return fmt.Errorf("leave date: %w", err)
		}
		if len(parts) < 3 {
			return fmt.Errorf("leave date: expected [year,month,day], got %s", b)
		}
		*d = Date(fmt.Sprintf("%04d-%02d-%02d", parts[0], parts[1], parts[2]))
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("leave date: %w", err)
	}
	*d = Date(s)
	return nil
}

// Record is a leave request exactly as the ELMS API returns it.
type Record struct {
	ID              ID     `json:"id"`
	EmployeeID      string `json:"employeeId"`
	Department      string `json:"department"`
	Type            string `json:"type"`
	StartDate       Date   `json:"startDate"`
	EndDate         Date   `json:"endDate"`
	Days            int    `json:"days,omitempty"`
	Reason          string `json:"reason"`
	Status          string `json:"status"`
	RejectionReason string `json:"rejectionReason,omitempty"`
	AppliedDate     Date   `json:"appliedDate,omitempty"`
	CreatedAt       string `json:"createdAt,omitempty"`
}
