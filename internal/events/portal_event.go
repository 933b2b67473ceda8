package events

import "time"

const PortalAuditTopic = "elms.portal.audit.v1"

const (
	EventEmployeeRegistered = "employee_registered"
	EventSessionStarted     = "session_started"
	EventSessionEnded       = "session_ended"
	EventLoginFailed        = "login_failed"
	EventLeaveSubmitted     = "leave_submitted"
	EventLeaveDecided       = "leave_decided"
	EventHeadCreated        = "head_created"
	EventHeadUpdated        = "head_updated"
	EventHeadDeleted        = "head_deleted"
	EventHeadStatusToggled  = "head_status_toggled"
	EventServerShutdown     = "server_shutdown"
)

// PortalEvent is one audit record published for an action taken through the portal.
type PortalEvent struct {
	EventType  string         `json:"event_type"`
	Actor      string         `json:"actor,omitempty"`
	Role       string         `json:"role,omitempty"`
	Subject    string         `json:"subject,omitempty"`
	Outcome    string         `json:"outcome"`
	Message    string         `json:"message,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Meta       map[string]any `json:"meta,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}
