package head

import (
	"context"
	"strings"
	"time"

	"elms-portal/internal/elmsapi"
	headerrors "elms-portal/internal/head/errors"
	"elms-portal/internal/leave"
	"elms-portal/internal/session"

	"go.uber.org/zap"
)

// Dashboard is a department head's view of their department's requests.
type Dashboard struct {
	api    elmsapi.Client
	board  *leave.Board
	id     session.Identity
	now    func() time.Time
	logger *zap.Logger
}

func NewDashboard(api elmsapi.Client, board *leave.Board, id session.Identity, now func() time.Time, logger ...*zap.Logger) *Dashboard {
	l := zap.L().Named("head.dashboard")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("head.dashboard")
	}
	if now == nil {
		now = time.Now
	}
	return &Dashboard{api: api, board: board, id: id, now: now, logger: l}
}

func (d *Dashboard) signedIn() bool {
	return d.id.Authenticated() && d.id.Department != ""
}

// Refresh loads every request and keeps the head's department only.
func (d *Dashboard) Refresh(ctx context.Context) error {
	if !d.signedIn() {
		return nil
	}

	since := d.board.Begin()
	records, err := d.api.ListLeaves(ctx)
	if err != nil {
		d.logger.Warn("refresh department requests failed",
			zap.String("department", d.id.Department),
			zap.Error(err),
		)
		return err
	}

	d.board.Replace(since, leave.FilterByDepartment(leave.DeriveAll(records), d.id.Department))
	return nil
}

func (d *Dashboard) Profile() Profile {
	name := strings.TrimSpace(d.id.Name)
	if name == "" {
		name = d.id.EmployeeID
	}
	return Profile{
		Name:       name,
		EmployeeID: d.id.EmployeeID,
		Department: d.id.Department,
		Initials:   leave.Initials(d.id.EmployeeID),
	}
}

// Overview reports department stats over the whole list and the requests matching f.
func (d *Dashboard) Overview(f Filter) Overview {
	views := d.scoped()
	return Overview{
		Profile:  d.Profile(),
		Requests: apply(views, f),
		Stats:    leave.SummarizeDepartment(views, d.now()),
		Version:  d.board.Version(),
	}
}

func (d *Dashboard) Approve(ctx context.Context, leaveID string) (leave.View, error) {
	return d.decide(ctx, leaveID, leave.StatusApproved)
}

func (d *Dashboard) Reject(ctx context.Context, leaveID string) (leave.View, error) {
	return d.decide(ctx, leaveID, leave.StatusRejected)
}

// decide sends the new status and patches the local list only once the API accepted it.
func (d *Dashboard) decide(ctx context.Context, leaveID string, status leave.Status) (leave.View, error) {
	leaveID = strings.TrimSpace(leaveID)
	if leaveID == "" {
		return leave.View{}, headerrors.ErrInvalidLeaveID
	}
	if !d.signedIn() {
		return leave.View{}, headerrors.ErrNoDepartment
	}

	if _, ok := find(d.scoped(), leaveID); !ok {
		if err := d.Refresh(ctx); err != nil {
			return leave.View{}, err
		}
		if _, ok := find(d.scoped(), leaveID); !ok {
			return leave.View{}, headerrors.ErrLeaveNotInDepartment
		}
	}

	if err := d.api.UpdateLeaveStatus(ctx, leaveID, status); err != nil {
		d.logger.Warn("update leave status failed",
			zap.String("leave_id", leaveID),
			zap.String("status", status.String()),
			zap.Error(err),
		)
		return leave.View{}, err
	}

	d.board.SetStatus(leaveID, status)
	view, _ := find(d.board.Snapshot(), leaveID)
	return view, nil
}

// scoped is the board limited to the head's own department.
func (d *Dashboard) scoped() []leave.View {
	return leave.FilterByDepartment(d.board.Snapshot(), d.id.Department)
}

func find(views []leave.View, id string) (leave.View, bool) {
	for _, v := range views {
		if v.ID == id {
			return v, true
		}
	}
	return leave.View{}, false
}

func apply(views []leave.View, f Filter) []leave.View {
	q := strings.ToLower(strings.TrimSpace(f.Search))
	status := leave.Status("")
	if strings.TrimSpace(string(f.Status)) != "" {
		status = leave.ParseStatus(string(f.Status))
	}
	if q == "" && status == "" {
		return views
	}

	out := make([]leave.View, 0, len(views))
	for _, v := range views {
		if status != "" && v.Status != status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(v.EmployeeID), q) &&
			!strings.Contains(strings.ToLower(v.Type), q) &&
			!strings.Contains(strings.ToLower(v.Reason), q) {
			continue
		}
		out = append(out, v)
	}
	return out
}
