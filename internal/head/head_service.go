package head

import (
	"context"
	"time"

	"elms-portal/internal/audit"
	"elms-portal/internal/elmsapi"
	"elms-portal/internal/events"
	"elms-portal/internal/leave"
	"elms-portal/internal/session"
	"elms-portal/internal/shared/apperror"

	"go.uber.org/zap"
)

//go:generate mockgen -source=head_service.go -destination=mock/head_service_mock.go -package=mock
type Service interface {
	Overview(ctx context.Context, sid string, id session.Identity, f Filter, refresh bool) (Overview, error)
	Decide(ctx context.Context, sid string, id session.Identity, leaveID string, status leave.Status) (DecisionResponse, error)
}

type service struct {
	api    elmsapi.Client
	boards *leave.Boards
	audit  audit.Logger
	now    func() time.Time
	logger *zap.Logger
}

func NewService(api elmsapi.Client, boards *leave.Boards, auditLogger audit.Logger, logger ...*zap.Logger) Service {
	return NewServiceWithClock(api, boards, auditLogger, time.Now, logger...)
}

func NewServiceWithClock(api elmsapi.Client, boards *leave.Boards, auditLogger audit.Logger, now func() time.Time, logger ...*zap.Logger) Service {
	l := zap.L().Named("head.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("head.service")
	}
	return &service{api: api, boards: boards, audit: auditLogger, now: now, logger: l}
}

func (s *service) dashboard(sid string, id session.Identity) *Dashboard {
	return NewDashboard(s.api, s.boards.Get(sid), id, s.now, s.logger)
}

func (s *service) Overview(ctx context.Context, sid string, id session.Identity, f Filter, refresh bool) (Overview, error) {
	d := s.dashboard(sid, id)
	if refresh {
		if err := d.Refresh(ctx); err != nil {
			return Overview{}, err
		}
	}
	return d.Overview(f), nil
}

// Decide approves or rejects a request. Only Approved and Rejected are accepted.
func (s *service) Decide(ctx context.Context, sid string, id session.Identity, leaveID string, status leave.Status) (DecisionResponse, error) {
	d := s.dashboard(sid, id)

	var (
		view leave.View
		err  error
	)
	switch status {
	case leave.StatusApproved:
		view, err = d.Approve(ctx, leaveID)
	case leave.StatusRejected:
		view, err = d.Reject(ctx, leaveID)
	default:
		_, err = leave.ParseDecision(string(status))
	}

	entry := audit.Entry{
		Action:  events.EventLeaveDecided,
		Actor:   id.EmployeeID,
		Role:    string(id.Role),
		Subject: leaveID,
		Meta:    map[string]any{"status": status.String(), "department": id.Department},
	}
	if err != nil {
		entry.Outcome = audit.OutcomeFailure
		entry.Message = apperror.MessageOf(err, "")
		s.audit.Log(ctx, entry)
		return DecisionResponse{}, err
	}

	s.audit.Log(ctx, entry)
	s.logger.Info("leave decided",
		zap.String("leave_id", leaveID),
		zap.String("status", status.String()),
		zap.String("head_id", id.EmployeeID),
	)
	return DecisionResponse{Request: view}, nil
}
