package employee

import (
	"context"
	"time"

	"elms-portal/internal/audit"
	"elms-portal/internal/elmsapi"
	"elms-portal/internal/events"
	"elms-portal/internal/leave"
	"elms-portal/internal/session"
	"elms-portal/internal/shared/apperror"
	"elms-portal/internal/shared/contextutil"
	"elms-portal/internal/validation"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Overview(ctx context.Context, sid string, id session.Identity, refresh bool) (Overview, error)
	SubmitLeave(ctx context.Context, sid string, id session.Identity, form validation.LeaveForm) (leave.View, error)
	Report(ctx context.Context, sid string, id session.Identity, format string) (ReportFile, error)
}

type service struct {
	api       elmsapi.Client
	boards    *leave.Boards
	audit     audit.Logger
	allowance int
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(api elmsapi.Client, boards *leave.Boards, auditLogger audit.Logger, allowance int, logger ...*zap.Logger) Service {
	return NewServiceWithClock(api, boards, auditLogger, allowance, time.Now, logger...)
}

func NewServiceWithClock(
	api elmsapi.Client,
	boards *leave.Boards,
	auditLogger audit.Logger,
	allowance int,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		api:       api,
		boards:    boards,
		audit:     auditLogger,
		allowance: allowance,
		now:       now,
		logger:    l,
	}
}

func (s *service) dashboard(sid string, id session.Identity) *Dashboard {
	return NewDashboard(s.api, s.boards.Get(sid), id, s.allowance, s.now, s.logger)
}

func (s *service) Overview(ctx context.Context, sid string, id session.Identity, refresh bool) (Overview, error) {
	d := s.dashboard(sid, id)
	if refresh {
		if err := d.Refresh(ctx); err != nil {
			return Overview{}, err
		}
	}
	return d.Overview(), nil
}

func (s *service) SubmitLeave(ctx context.Context, sid string, id session.Identity, form validation.LeaveForm) (leave.View, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("submit leave requested",
		zap.String("employee_id", id.EmployeeID),
		zap.String("type", form.Type),
	)

	view, err := s.dashboard(sid, id).SubmitLeave(ctx, form)
	if err != nil {
		if _, invalid := validation.FieldsOf(err); !invalid {
			s.audit.Log(ctx, audit.Entry{
				Action:  events.EventLeaveSubmitted,
				Actor:   id.EmployeeID,
				Role:    string(id.Role),
				Outcome: audit.OutcomeFailure,
				Message: apperror.MessageOf(err, ""),
			})
		}
		return leave.View{}, err
	}

	s.audit.Log(ctx, audit.Entry{
		Action:  events.EventLeaveSubmitted,
		Actor:   id.EmployeeID,
		Role:    string(id.Role),
		Subject: view.ID,
		Meta: map[string]any{
			"type":       view.Type,
			"start_date": view.StartDate,
			"end_date":   view.EndDate,
			"days":       view.Days,
		},
	})
	return view, nil
}

// Report refreshes the list and renders it.
func (s *service) Report(ctx context.Context, sid string, id session.Identity, format string) (ReportFile, error) {
	d := s.dashboard(sid, id)
	if err := d.Refresh(ctx); err != nil {
		return ReportFile{}, err
	}
	return RenderReport(d.Report(), format)
}
