package elmsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"elms-portal/internal/config"
	elmsapierrors "elms-portal/internal/elmsapi/errors"
	"elms-portal/internal/leave"
	"elms-portal/internal/shared/apperror"
	"elms-portal/internal/shared/contextutil"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

//go:generate mockgen -source=elmsapi_client.go -destination=mock/elmsapi_client_mock.go -package=mock
type Client interface {
	RegisterEmployee(ctx context.Context, req RegisterEmployeeRequest) error
	LoginEmployee(ctx context.Context, req LoginRequest) (EmployeeLoginResponse, error)
	LoginHead(ctx context.Context, req LoginRequest) (HeadLoginResponse, error)

	ListHeads(ctx context.Context) ([]DepartmentHead, error)
	CreateHead(ctx context.Context, req CreateHeadRequest) error
	UpdateHead(ctx context.Context, id string, req UpdateHeadRequest) error
	DeleteHead(ctx context.Context, id string) error
	ToggleHeadStatus(ctx context.Context, id string) (DepartmentHead, error)

	SubmitLeave(ctx context.Context, req SubmitLeaveRequest) (SubmitLeaveResponse, error)
	ListLeavesByEmployee(ctx context.Context, employeeID string) ([]leave.Record, error)
	ListLeaves(ctx context.Context) ([]leave.Record, error)
	UpdateLeaveStatus(ctx context.Context, id string, status leave.Status) error
}

type client struct {
	endpoints config.Endpoints
	http      *http.Client
	logger    *zap.Logger
}

func NewClient(endpoints config.Endpoints, timeout time.Duration, logger ...*zap.Logger) Client {
	return NewClientWithHTTP(endpoints, &http.Client{Timeout: timeout}, logger...)
}

func NewClientWithHTTP(endpoints config.Endpoints, hc *http.Client, logger ...*zap.Logger) Client {
	l := zap.L().Named("elmsapi.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("elmsapi.client")
	}
	return &client{endpoints: endpoints, http: hc, logger: l}
}

func (c *client) RegisterEmployee(ctx context.Context, req RegisterEmployeeRequest) error {
	_, err := c.do(ctx, c.endpoints.EmployeeRegister(), req, nil, elmsapierrors.MsgRegistrationFailed)
	return err
}

func (c *client) LoginEmployee(ctx context.Context, req LoginRequest) (EmployeeLoginResponse, error) {
	var resp EmployeeLoginResponse
	if _, err := c.do(ctx, c.endpoints.EmployeeLogin(), req, &resp, elmsapierrors.MsgLoginFailed); err != nil {
		return EmployeeLoginResponse{}, err
	}
	if resp.Success != nil && !*resp.Success {
		msg := strings.TrimSpace(resp.Message)
		if msg == "" {
			msg = elmsapierrors.MsgInvalidCredentials
		}
		return EmployeeLoginResponse{}, elmsapierrors.Upstream(msg, http.StatusUnauthorized)
	}
	if resp.EmployeeID == "" {
		return EmployeeLoginResponse{}, elmsapierrors.Upstream(elmsapierrors.MsgLoginFailed, http.StatusBadGateway)
	}
	return resp, nil
}

func (c *client) LoginHead(ctx context.Context, req LoginRequest) (HeadLoginResponse, error) {
	var resp HeadLoginResponse
	if _, err := c.do(ctx, c.endpoints.HeadsLogin(), req, &resp, elmsapierrors.MsgLoginFailed); err != nil {
		return HeadLoginResponse{}, err
	}
	if resp.EmployeeID == "" {
		return HeadLoginResponse{}, elmsapierrors.Upstream(elmsapierrors.MsgLoginFailed, http.StatusBadGateway)
	}
	return resp, nil
}

func (c *client) ListHeads(ctx context.Context) ([]DepartmentHead, error) {
	heads := []DepartmentHead{}
	if _, err := c.do(ctx, c.endpoints.HeadsAll(), nil, &heads, elmsapierrors.MsgFetchHeadsFailed); err != nil {
		return nil, err
	}
	return heads, nil
}

func (c *client) CreateHead(ctx context.Context, req CreateHeadRequest) error {
	_, err := c.do(ctx, c.endpoints.HeadsCreate(), req, nil, elmsapierrors.MsgCreateHeadFailed)
	return err
}

func (c *client) UpdateHead(ctx context.Context, id string, req UpdateHeadRequest) error {
	_, err := c.do(ctx, c.endpoints.HeadsUpdate(id), req, nil, elmsapierrors.MsgUpdateHeadFailed)
	return err
}

func (c *client) DeleteHead(ctx context.Context, id string) error {
	_, err := c.do(ctx, c.endpoints.HeadsDelete(id), nil, nil, elmsapierrors.MsgDeleteHeadFailed)
	return err
}

func (c *client) ToggleHeadStatus(ctx context.Context, id string) (DepartmentHead, error) {
	var head DepartmentHead
	if _, err := c.do(ctx, c.endpoints.HeadsToggleStatus(id), nil, &head, elmsapierrors.MsgToggleHeadFailed); err != nil {
		return DepartmentHead{}, err
	}
	return head, nil
}

// SubmitLeave posts a new request. ELMS may answer with a bare confirmation
// string; the request is then reported as Pending with no id.
func (c *client) SubmitLeave(ctx context.Context, req SubmitLeaveRequest) (SubmitLeaveResponse, error) {
	raw, err := c.do(ctx, c.endpoints.LeavesSubmit(), req, nil, elmsapierrors.MsgSubmitFailed)
	if err != nil {
		return SubmitLeaveResponse{}, err
	}

	resp := SubmitLeaveResponse{}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &resp); err != nil {
			c.logger.Warn("submit response not decodable", zap.Error(err))
			resp = SubmitLeaveResponse{}
		}
	}
	if resp.Status == "" {
		resp.Status = string(leave.StatusPending)
	}
	return resp, nil
}

func (c *client) ListLeavesByEmployee(ctx context.Context, employeeID string) ([]leave.Record, error) {
	records := []leave.Record{}
	if _, err := c.do(ctx, c.endpoints.LeavesByEmployee(employeeID), nil, &records, elmsapierrors.MsgFetchLeavesFailed); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *client) ListLeaves(ctx context.Context) ([]leave.Record, error) {
	records := []leave.Record{}
	if _, err := c.do(ctx, c.endpoints.LeavesAll(), nil, &records, elmsapierrors.MsgFetchLeavesFailed); err != nil {
		return nil, err
	}
	return records, nil
}

// UpdateLeaveStatus trusts any 2xx answer as success.
func (c *client) UpdateLeaveStatus(ctx context.Context, id string, status leave.Status) error {
	_, err := c.do(ctx, c.endpoints.LeavesUpdateStatus(id, string(status)), nil, nil, elmsapierrors.MsgUpdateStatusFailed)
	return err
}

// do sends one request. Transport failures become ErrNoResponse, non-2xx
// answers become an upstream error carrying the API's own message (or
// fallback), and a 2xx body is decoded into out when out is not nil.
func (c *client) do(ctx context.Context, ep config.Endpoint, body, out any, fallback string) ([]byte, error) {
	log := contextutil.GetLogger(ctx, c.logger).With(
		zap.String("method", ep.Method),
		zap.String("path", ep.Path),
	)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, apperror.Wrap(err, apperror.CodeInternalError, fallback, http.StatusInternalServerError)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method, ep.URL(), reader)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, fallback, http.StatusInternalServerError)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("elms api unreachable", zap.Error(err))
		return nil, apperror.Wrap(err, elmsapierrors.ErrNoResponse.Code, elmsapierrors.ErrNoResponse.Message, elmsapierrors.ErrNoResponse.HTTPStatus)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Warn("elms api body read failed", zap.Int("status", resp.StatusCode), zap.Error(err))
		return nil, apperror.Wrap(err, elmsapierrors.ErrNoResponse.Code, elmsapierrors.ErrNoResponse.Message, elmsapierrors.ErrNoResponse.HTTPStatus)
	}

	log = log.With(zap.Int("status", resp.StatusCode), zap.Duration("elapsed", time.Since(start)))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := ErrorMessage(raw, fallback)
		log.Info("elms api rejected request", zap.String("message", msg))
		return raw, elmsapierrors.Upstream(msg, resp.StatusCode)
	}
	log.Debug("elms api ok")

	if out != nil && len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			log.Warn("elms api body not decodable", zap.Error(err))
			return raw, apperror.Wrap(err, apperror.CodeUpstream, fallback, http.StatusBadGateway)
		}
	}
	return raw, nil
}

type errorBody struct {
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Errors  []json.RawMessage `json:"errors"`
}

// ErrorMessage picks the first non-empty of message, error and errors[0]
// from a JSON error body, or returns fallback.
func ErrorMessage(raw []byte, fallback string) string {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return fallback
	}
	if msg := strings.TrimSpace(body.Message); msg != "" {
		return body.Message
	}
	if msg := strings.TrimSpace(body.Error); msg != "" {
		return body.Error
	}
	if len(body.Errors) > 0 {
		var s string
		if err := json.Unmarshal(body.Errors[0], &s); err == nil && strings.TrimSpace(s) != "" {
			return s
		}
		var nested struct {
			Message        string `json:"message"`
			DefaultMessage string `json:"defaultMessage"`
		}
		if err := json.Unmarshal(body.Errors[0], &nested); err == nil {
			if nested.Message != "" {
				return nested.Message
			}
			if nested.DefaultMessage != "" {
				return nested.DefaultMessage
			}
		}
	}
	return fallback
}

// IsNoResponse reports whether err means the API could not be reached.
func IsNoResponse(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.Code == apperror.CodeNoResponse
}
