package validation

import (
	"strings"

	"elms-portal/internal/department"
	"elms-portal/internal/shared/apperror"
)

var messages = map[string]map[string]string{
	"name": {
		"notblank": "Name is required",
		"min":      "Name must be at least 2 characters",
	},
	"employeeId": {
		"notblank": "Employee ID is required",
		"min":      "Employee ID must be at least 3 characters",
	},
	"password": {
		"required": "Password is required",
		"notblank": "Password is required",
		"min":      "Password must be at least 6 characters",
	},
	"confirmPassword": {
		"required": "Please confirm your password",
		"eqfield":  "Passwords do not match",
	},
	"department": {
		"required":   "Please select a department",
		"department": "Department must be one of " + strings.Join(department.Codes(), ", "),
	},
	"type": {
		"required":  "Please select a leave type",
		"leavetype": "Leave type must be Sick Leave, Personal Leave or Emergency Leave",
	},
	"startDate": {
		"required": "Start date is required",
		"date":     "Start date must be a date (YYYY-MM-DD)",
	},
	"endDate": {
		"required":  "End date is required",
		"date":      "End date must be a date (YYYY-MM-DD)",
		"daterange": "End date must be on or after the start date",
	},
	"reason": {
		"notblank": "Reason is required",
	},
}

func message(field, tag string) string {
	if m, ok := messages[field][tag]; ok {
		return m
	}
	label := apperror.FormatFieldName(field)
	if tag == "required" || tag == "notblank" {
		return label + " is required"
	}
	return label + " is invalid"
}
