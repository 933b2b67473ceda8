package auth

import (
	"context"
	"strings"

	"elms-portal/internal/audit"
	autherrors "elms-portal/internal/auth/errors"
	"elms-portal/internal/elmsapi"
	"elms-portal/internal/events"
	"elms-portal/internal/session"
	"elms-portal/internal/shared/apperror"
	"elms-portal/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	RegisteredMessage = "Registration successful! You can now sign in."
	AdminName         = "System Admin"
)

// Dashboard paths the client is sent to after each sign-in.
const (
	RedirectEmployee = "/employee-dashboard"
	RedirectHead     = "/head-dashboard"
	RedirectAdmin    = "/admin-dashboard"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, form validation.RegistrationForm) (RegisterResponse, error)
	LoginEmployee(ctx context.Context, sid string, form validation.LoginForm) (LoginResult, error)
	LoginHead(ctx context.Context, sid string, form validation.HeadLoginForm) (LoginResult, error)
	LoginAdmin(ctx context.Context, sid string, form validation.AdminLoginForm) (LoginResult, error)
	Logout(ctx context.Context, sid string, id session.Identity) error
}

type service struct {
	api               elmsapi.Client
	sessions          *session.Manager
	audit             audit.Logger
	adminPasswordHash string
	logger            *zap.Logger
}

func NewService(api elmsapi.Client, sessions *session.Manager, auditLogger audit.Logger, adminPasswordHash string, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		api:               api,
		sessions:          sessions,
		audit:             auditLogger,
		adminPasswordHash: adminPasswordHash,
		logger:            l,
	}
}

func (s *service) Register(ctx context.Context, form validation.RegistrationForm) (RegisterResponse, error) {
	if err := validation.Check(form); err != nil {
		return RegisterResponse{}, err
	}

	req := elmsapi.RegisterEmployeeRequest{
		Name:       strings.TrimSpace(form.Name),
		EmployeeID: strings.TrimSpace(form.EmployeeID),
		Password:   form.Password,
		Department: form.Department,
	}
	if err := s.api.RegisterEmployee(ctx, req); err != nil {
		s.audit.Log(ctx, audit.Entry{
			Action:  events.EventEmployeeRegistered,
			Actor:   req.EmployeeID,
			Role:    string(session.RoleEmployee),
			Outcome: audit.OutcomeFailure,
			Message: apperror.MessageOf(err, ""),
		})
		return RegisterResponse{}, err
	}

	s.audit.Log(ctx, audit.Entry{
		Action:  events.EventEmployeeRegistered,
		Actor:   req.EmployeeID,
		Role:    string(session.RoleEmployee),
		Meta:    map[string]any{"department": req.Department},
	})
	return RegisterResponse{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Department: req.Department,
		Message:    RegisteredMessage,
	}, nil
}

func (s *service) LoginEmployee(ctx context.Context, sid string, form validation.LoginForm) (LoginResult, error) {
	if err := validation.Check(form); err != nil {
		return LoginResult{}, err
	}

	employeeID := strings.TrimSpace(form.EmployeeID)
	resp, err := s.api.LoginEmployee(ctx, elmsapi.LoginRequest{EmployeeID: employeeID, Password: form.Password})
	if err != nil {
		s.loginFailed(ctx, session.RoleEmployee, employeeID, err)
		return LoginResult{}, err
	}

	return s.start(ctx, sid, session.Identity{
		Role:       session.RoleEmployee,
		EmployeeID: resp.EmployeeID,
		Department: resp.Department,
		Name:       resp.Name,
	}, RedirectEmployee)
}

func (s *service) LoginHead(ctx context.Context, sid string, form validation.HeadLoginForm) (LoginResult, error) {
	form = form.Normalize()
	if err := validation.Check(form); err != nil {
		return LoginResult{}, err
	}

	resp, err := s.api.LoginHead(ctx, elmsapi.LoginRequest{EmployeeID: form.EmployeeID, Password: form.Password})
	if err != nil {
		s.loginFailed(ctx, session.RoleHead, form.EmployeeID, err)
		return LoginResult{}, err
	}

	return s.start(ctx, sid, session.Identity{
		Role:       session.RoleHead,
		EmployeeID: resp.EmployeeID,
		Department: resp.Department,
		Name:       resp.Name,
	}, RedirectHead)
}

func (s *service) LoginAdmin(ctx context.Context, sid string, form validation.AdminLoginForm) (LoginResult, error) {
	if err := validation.Check(form); err != nil {
		return LoginResult{}, err
	}
	if s.adminPasswordHash == "" {
		return LoginResult{}, autherrors.ErrAdminLoginDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(form.Password)); err != nil {
		s.loginFailed(ctx, session.RoleAdmin, "", autherrors.ErrInvalidCredentials)
		return LoginResult{}, autherrors.ErrInvalidCredentials
	}

	return s.start(ctx, sid, session.Identity{Role: session.RoleAdmin, Name: AdminName}, RedirectAdmin)
}

func (s *service) Logout(ctx context.Context, sid string, id session.Identity) error {
	if err := s.sessions.End(ctx, sid); err != nil {
		return err
	}
	if id.Authenticated() {
		s.audit.Log(ctx, audit.Entry{
			Action: events.EventSessionEnded,
			Actor:  id.EmployeeID,
			Role:   string(id.Role),
		})
	}
	return nil
}

// start writes the session only after the API accepted the credentials.
func (s *service) start(ctx context.Context, sid string, id session.Identity, redirect string) (LoginResult, error) {
	token, sid, err := s.sessions.Start(ctx, sid, id)
	if err != nil {
		s.logger.Error("start session failed", zap.String("role", string(id.Role)), zap.Error(err))
		return LoginResult{}, err
	}

	s.audit.Log(ctx, audit.Entry{
		Action: events.EventSessionStarted,
		Actor:  id.EmployeeID,
		Role:   string(id.Role),
		Meta:   map[string]any{"department": id.Department},
	})
	return LoginResult{Token: token, SessionID: sid, Identity: id, Redirect: redirect}, nil
}

func (s *service) loginFailed(ctx context.Context, role session.Role, actor string, err error) {
	s.audit.Log(ctx, audit.Entry{
		Action:  events.EventLoginFailed,
		Actor:   actor,
		Role:    string(role),
		Outcome: audit.OutcomeFailure,
		Message: apperror.MessageOf(err, ""),
	})
}
