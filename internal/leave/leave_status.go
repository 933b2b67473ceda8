package leave

import (
	"strings"

	leaveerrors "elms-portal/internal/leave/errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Status is the lifecycle state of a leave request. The wire value is Title case.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
	StatusUnknown  Status = "Unknown"
)

// ParseStatus is the single parsing boundary for status strings coming from
// the API or from users. Matching ignores case and surrounding space; blank
// means Pending and anything else unrecognised is Unknown.
func ParseStatus(v string) Status {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "pending":
		return StatusPending
	case "approved":
		return StatusApproved
	case "rejected":
		return StatusRejected
	default:
		return StatusUnknown
	}
}

// ParseDecision parses a status a head may set. Only Approved and Rejected are accepted.
func ParseDecision(v string) (Status, error) {
	s := ParseStatus(v)
	if strings.TrimSpace(v) == "" || (s != StatusApproved && s != StatusRejected) {
		return "", leaveerrors.ErrInvalidStatus
	}
	return s, nil
}

func (s Status) String() string { return string(s) }

// Decided reports whether a head has acted on the request.
func (s Status) Decided() bool {
	return s == StatusApproved || s == StatusRejected
}

// Presentation is how a status is drawn: icon kind, color classes and label.
type Presentation struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Label string `json:"label"`
}

// Present maps a status onto its presentation. raw is the original status
// text and only feeds the label of Unknown statuses.
func Present(s Status, raw string) Presentation {
	switch s {
	case StatusApproved:
		return Presentation{Icon: "check-circle", Color: "text-emerald-700 bg-emerald-50 border-emerald-200", Label: "Approved"}
	case StatusRejected:
		return Presentation{Icon: "x-circle", Color: "text-red-700 bg-red-50 border-red-200", Label: "Rejected"}
	case StatusPending:
		return Presentation{Icon: "clock", Color: "text-amber-700 bg-amber-50 border-amber-200", Label: "Pending"}
	}

	label := "Unknown"
	if raw = strings.TrimSpace(raw); raw != "" {
		label = cases.Title(language.English).String(strings.ToLower(raw))
	}
	return Presentation{Icon: "alert-circle", Color: "text-gray-700 bg-gray-50 border-gray-200", Label: label}
}
