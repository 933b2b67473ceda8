package validation

import (
	"strings"

	"elms-portal/internal/leave"

	"github.com/go-playground/validator/v10"
)

type RegistrationForm struct {
	Name            string `json:"name" validate:"notblank,min=2"`
	EmployeeID      string `json:"employeeId" validate:"notblank,min=3"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Department      string `json:"department" validate:"required,department"`
}

type LoginForm struct {
	EmployeeID string `json:"employeeId" validate:"notblank"`
	Password   string `json:"password" validate:"required"`
}

// HeadLoginForm is the department-head sign-in; both fields are trimmed on input.
type HeadLoginForm struct {
	EmployeeID string `json:"employeeId" validate:"notblank"`
	Password   string `json:"password" validate:"notblank"`
}

// Normalize trims both fields, as the head sign-in does on every keystroke.
func (f HeadLoginForm) Normalize() HeadLoginForm {
	return HeadLoginForm{
		EmployeeID: strings.TrimSpace(f.EmployeeID),
		Password:   strings.TrimSpace(f.Password),
	}
}

type AdminLoginForm struct {
	Password string `json:"password" validate:"required"`
}

type CreateHeadForm struct {
	EmployeeID      string `json:"employeeId" validate:"notblank,min=3"`
	Name            string `json:"name" validate:"notblank,min=2"`
	Department      string `json:"department" validate:"required,department"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// UpdateHeadForm edits a head account; an empty password keeps the current one.
type UpdateHeadForm struct {
	EmployeeID string `json:"employeeId" validate:"notblank,min=3"`
	Name       string `json:"name" validate:"notblank,min=2"`
	Department string `json:"department" validate:"required,department"`
	Password   string `json:"password" validate:"omitempty,min=6"`
}

type LeaveForm struct {
	Type      string `json:"type" validate:"required,leavetype"`
	StartDate string `json:"startDate" validate:"required,date"`
	EndDate   string `json:"endDate" validate:"required,date"`
	Reason    string `json:"reason" validate:"notblank"`
}

func leaveFormRange(sl validator.StructLevel) {
	f := sl.Current().Interface().(LeaveForm)
	start, err := leave.ParseDate(f.StartDate)
	if err != nil {
		return
	}
	end, err := leave.ParseDate(f.EndDate)
	if err != nil {
		return
	}
	if end.Before(start) {
		sl.ReportError(f.EndDate, "endDate", "EndDate", "daterange", "")
	}
}
