package admin

import (
	"context"
	"time"

	"elms-portal/internal/audit"
	"elms-portal/internal/elmsapi"
	"elms-portal/internal/events"
	"elms-portal/internal/session"
	"elms-portal/internal/shared/apperror"
	"elms-portal/internal/shared/sessioncache"
	"elms-portal/internal/validation"

	"go.uber.org/zap"
)

// Rosters keeps one Roster per admin session.
type Rosters = sessioncache.Registry[*Roster]

func NewRosters(idle time.Duration) *Rosters {
	return sessioncache.New(idle, NewRoster)
}

//go:generate mockgen -source=admin_service.go -destination=mock/admin_service_mock.go -package=mock
type Service interface {
	Overview(ctx context.Context, sid string, f Filter, refresh bool) (Overview, error)
	CreateHead(ctx context.Context, sid string, id session.Identity, form validation.CreateHeadForm) (Overview, error)
	UpdateHead(ctx context.Context, sid string, id session.Identity, headID string, form validation.UpdateHeadForm) (elmsapi.DepartmentHead, error)
	DeleteHead(ctx context.Context, sid string, id session.Identity, headID string) error
	ToggleStatus(ctx context.Context, sid string, id session.Identity, headID string) (elmsapi.DepartmentHead, error)
}

type service struct {
	api     elmsapi.Client
	rosters *Rosters
	audit   audit.Logger
	logger  *zap.Logger
}

func NewService(api elmsapi.Client, rosters *Rosters, auditLogger audit.Logger, logger ...*zap.Logger) Service {
	l := zap.L().Named("admin.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admin.service")
	}
	return &service{api: api, rosters: rosters, audit: auditLogger, logger: l}
}

func (s *service) console(sid string) *Console {
	return NewConsole(s.api, s.rosters.Get(sid), s.logger)
}

func (s *service) Overview(ctx context.Context, sid string, f Filter, refresh bool) (Overview, error) {
	c := s.console(sid)
	if refresh {
		if err := c.Refresh(ctx); err != nil {
			return Overview{}, err
		}
	}
	return c.Overview(f), nil
}

func (s *service) CreateHead(ctx context.Context, sid string, id session.Identity, form validation.CreateHeadForm) (Overview, error) {
	c := s.console(sid)
	err := c.CreateHead(ctx, form)
	s.record(ctx, id, events.EventHeadCreated, form.EmployeeID, err, map[string]any{"department": form.Department})
	if err != nil {
		return Overview{}, err
	}
	return c.Overview(Filter{}), nil
}

func (s *service) UpdateHead(ctx context.Context, sid string, id session.Identity, headID string, form validation.UpdateHeadForm) (elmsapi.DepartmentHead, error) {
	head, err := s.console(sid).UpdateHead(ctx, headID, form)
	s.record(ctx, id, events.EventHeadUpdated, headID, err, map[string]any{
		"department":       form.Department,
		"password_changed": form.Password != "",
	})
	return head, err
}

func (s *service) DeleteHead(ctx context.Context, sid string, id session.Identity, headID string) error {
	err := s.console(sid).DeleteHead(ctx, headID)
	s.record(ctx, id, events.EventHeadDeleted, headID, err, nil)
	return err
}

func (s *service) ToggleStatus(ctx context.Context, sid string, id session.Identity, headID string) (elmsapi.DepartmentHead, error) {
	head, err := s.console(sid).ToggleStatus(ctx, headID)
	s.record(ctx, id, events.EventHeadStatusToggled, headID, err, map[string]any{"status": string(head.Status)})
	return head, err
}

// record audits a head change. Validation failures never reached the API and are skipped.
func (s *service) record(ctx context.Context, id session.Identity, action, subject string, err error, meta map[string]any) {
	if _, invalid := validation.FieldsOf(err); invalid {
		return
	}
	entry := audit.Entry{
		Action:  action,
		Actor:   id.Name,
		Role:    string(id.Role),
		Subject: subject,
		Meta:    meta,
	}
	if err != nil {
		entry.Outcome = audit.OutcomeFailure
		entry.Message = apperror.MessageOf(err, "")
	}
	s.audit.Log(ctx, entry)
}
