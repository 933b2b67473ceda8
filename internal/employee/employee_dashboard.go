package employee

import (
	"context"
	"strings"
	"time"

	"elms-portal/internal/elmsapi"
	employeeerrors "elms-portal/internal/employee/errors"
	"elms-portal/internal/leave"
	"elms-portal/internal/session"
	"elms-portal/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LocalIDPrefix marks a submitted request the API returned without an id.
const LocalIDPrefix = "local-"

// Dashboard is one employee's view of their own leave requests.
type Dashboard struct {
	api       elmsapi.Client
	board     *leave.Board
	id        session.Identity
	allowance int
	now       func() time.Time
	logger    *zap.Logger
}

func NewDashboard(api elmsapi.Client, board *leave.Board, id session.Identity, allowance int, now func() time.Time, logger ...*zap.Logger) *Dashboard {
	l := zap.L().Named("employee.dashboard")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.dashboard")
	}
	if now == nil {
		now = time.Now
	}
	return &Dashboard{
		api:       api,
		board:     board,
		id:        id,
		allowance: allowance,
		now:       now,
		logger:    l,
	}
}

func (d *Dashboard) signedIn() bool {
	return d.id.Authenticated() && d.id.EmployeeID != ""
}

// Refresh reloads the list from the API. Anonymous dashboards stay empty.
func (d *Dashboard) Refresh(ctx context.Context) error {
	if !d.signedIn() {
		return nil
	}

	since := d.board.Begin()
	records, err := d.api.ListLeavesByEmployee(ctx, d.id.EmployeeID)
	if err != nil {
		d.logger.Warn("refresh leave requests failed",
			zap.String("employee_id", d.id.EmployeeID),
			zap.Error(err),
		)
		return err
	}

	d.board.Replace(since, leave.DeriveAll(records))
	return nil
}

func (d *Dashboard) Profile() Profile {
	name := strings.TrimSpace(d.id.Name)
	if name == "" {
		name = strings.TrimSpace(d.id.EmployeeID)
	}
	if name == "" {
		name = GuestName
	}
	return Profile{
		Name:       name,
		EmployeeID: d.id.EmployeeID,
		Department: d.id.Department,
		Initials:   leave.Initials(d.id.EmployeeID),
	}
}

func (d *Dashboard) Overview() Overview {
	views := d.board.Snapshot()
	return Overview{
		Profile:  d.Profile(),
		Requests: views,
		Stats:    leave.Summarize(views, d.allowance),
		Version:  d.board.Version(),
	}
}

// SubmitLeave validates form, posts it and puts the new request at the top
// of the list. A failed post leaves the list as it was.
func (d *Dashboard) SubmitLeave(ctx context.Context, form validation.LeaveForm) (leave.View, error) {
	if err := validation.Check(form); err != nil {
		return leave.View{}, err
	}
	if !d.signedIn() || d.id.Department == "" {
		return leave.View{}, employeeerrors.ErrNoEmployee
	}

	resp, err := d.api.SubmitLeave(ctx, elmsapi.SubmitLeaveRequest{
		Type:       form.Type,
		StartDate:  form.StartDate,
		EndDate:    form.EndDate,
		Reason:     strings.TrimSpace(form.Reason),
		EmployeeID: d.id.EmployeeID,
		Department: d.id.Department,
	})
	if err != nil {
		d.logger.Warn("submit leave failed", zap.String("employee_id", d.id.EmployeeID), zap.Error(err))
		return leave.View{}, err
	}

	id := resp.ID
	if id == "" {
		id = leave.ID(LocalIDPrefix + uuid.NewString())
	}
	view := leave.Derive(leave.Record{
		ID:          id,
		EmployeeID:  d.id.EmployeeID,
		Department:  d.id.Department,
		Type:        form.Type,
		StartDate:   leave.Date(form.StartDate),
		EndDate:     leave.Date(form.EndDate),
		Reason:      strings.TrimSpace(form.Reason),
		Status:      resp.Status,
		AppliedDate: leave.Date(d.now().Format(leave.DateLayout)),
	})
	d.board.Prepend(view)

	d.logger.Info("leave submitted",
		zap.String("employee_id", d.id.EmployeeID),
		zap.String("leave_id", view.ID),
		zap.Int("days", view.Days),
	)
	return view, nil
}

// Report assembles the downloadable history from the current list.
func (d *Dashboard) Report() Report {
	now := d.now()
	views := d.board.Snapshot()
	return Report{
		Employee:      d.Profile(),
		LeaveBalance:  leave.Summarize(views, d.allowance),
		LeaveHistory:  views,
		GeneratedDate: now.Format(leave.DateLayout),
		Year:          now.Year(),
	}
}
