package elmsapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"elms-portal/internal/config"
	"elms-portal/internal/elmsapi"
	elmsapierrors "elms-portal/internal/elmsapi/errors"
	"elms-portal/internal/leave"
	"elms-portal/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, h http.HandlerFunc) elmsapi.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return elmsapi.NewClient(config.NewEndpoints(srv.URL), 2*time.Second)
}

func TestClient_LoginEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/employees/login", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body elmsapi.LoginRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "EMP001", body.EmployeeID)

			_, _ = io.WriteString(w, `{"success":true,"employeeId":"EMP001","name":"Ada","department":"IT"}`)
		})

		resp, err := c.LoginEmployee(ctx, elmsapi.LoginRequest{EmployeeID: "EMP001", Password: "secret1"})

		assert.NoError(t, err)
		assert.Equal(t, "EMP001", resp.EmployeeID)
		assert.Equal(t, "IT", resp.Department)
	})

	t.Run("negative - unknown employee message shown verbatim", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"message":"Employee EMP404 does not exist"}`)
		})

		_, err := c.LoginEmployee(ctx, elmsapi.LoginRequest{EmployeeID: "EMP404", Password: "x"})

		assert.Error(t, err)
		assert.Equal(t, apperror.CodeUpstream, apperror.CodeOf(err))
		assert.Equal(t, "Employee EMP404 does not exist", apperror.MessageOf(err, ""))
		assert.Equal(t, http.StatusNotFound, apperror.ToHTTP(err).Status)
	})

	t.Run("negative - 200 with success false", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"success":false,"message":"Invalid credentials"}`)
		})

		_, err := c.LoginEmployee(ctx, elmsapi.LoginRequest{EmployeeID: "EMP001", Password: "bad"})

		assert.Equal(t, "Invalid credentials", apperror.MessageOf(err, ""))
		assert.Equal(t, http.StatusUnauthorized, apperror.ToHTTP(err).Status)
	})
}

func TestClient_LoginHead(t *testing.T) {
	t.Run("negative - plain text body uses fallback", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, "Invalid credentials")
		})

		_, err := c.LoginHead(context.Background(), elmsapi.LoginRequest{EmployeeID: "DH001", Password: "bad"})

		assert.Equal(t, elmsapierrors.MsgLoginFailed, apperror.MessageOf(err, ""))
	})
}

func TestClient_NoResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := elmsapi.NewClient(config.NewEndpoints(url), time.Second)
	_, err := c.ListLeaves(context.Background())

	assert.True(t, elmsapi.IsNoResponse(err))
	assert.Equal(t, elmsapierrors.NoResponseMessage, apperror.MessageOf(err, ""))
}

func TestClient_SubmitLeave(t *testing.T) {
	req := elmsapi.SubmitLeaveRequest{Type: "Sick Leave", StartDate: "2024-01-10", EndDate: "2024-01-12", Reason: "flu", EmployeeID: "EMP001", Department: "IT"}

	t.Run("success - json answer", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/leaves/submit", r.URL.Path)
			_, _ = io.WriteString(w, `{"id":12,"status":"PENDING"}`)
		})

		resp, err := c.SubmitLeave(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, leave.ID("12"), resp.ID)
		assert.Equal(t, "PENDING", resp.Status)
	})

	t.Run("success - plain text answer", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "Leave request submitted successfully")
		})

		resp, err := c.SubmitLeave(context.Background(), req)

		assert.NoError(t, err)
		assert.Empty(t, resp.ID)
		assert.Equal(t, "Pending", resp.Status)
	})

	t.Run("negative - error field", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":"Insufficient leave balance"}`)
		})

		_, err := c.SubmitLeave(context.Background(), req)

		assert.Equal(t, "Insufficient leave balance", apperror.MessageOf(err, ""))
	})
}

func TestClient_ListLeaves(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/leaves/by-employee/EMP 1", r.URL.Path)
		_, _ = io.WriteString(w, `[{"id":1,"employeeId":"EMP 1","startDate":[2024,1,10],"endDate":"2024-01-12","status":"approved"}]`)
	})

	records, err := c.ListLeavesByEmployee(context.Background(), "EMP 1")

	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, leave.Date("2024-01-10"), records[0].StartDate)
	assert.Equal(t, "approved", records[0].Status)
}

func TestClient_UpdateLeaveStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/leaves/update-status/7", r.URL.Path)
			assert.Equal(t, "Approved", r.URL.Query().Get("status"))
			_, _ = io.WriteString(w, "Status updated")
		})

		assert.NoError(t, c.UpdateLeaveStatus(context.Background(), "7", leave.StatusApproved))
	})

	t.Run("negative", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		err := c.UpdateLeaveStatus(context.Background(), "7", leave.StatusApproved)

		assert.Equal(t, elmsapierrors.MsgUpdateStatusFailed, apperror.MessageOf(err, ""))
		assert.Equal(t, http.StatusBadGateway, apperror.ToHTTP(err).Status)
	})
}

func TestClient_Heads(t *testing.T) {
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/heads/all-heads", r.URL.Path)
			_, _ = io.WriteString(w, `[{"id":3,"employeeId":"DH001","name":"Grace","department":"HR","status":"Active"}]`)
		})

		heads, err := c.ListHeads(ctx)

		assert.NoError(t, err)
		assert.Len(t, heads, 1)
		assert.Equal(t, leave.ID("3"), heads[0].ID)
		assert.Equal(t, elmsapi.HeadActive, heads[0].Status)
	})

	t.Run("toggle", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/api/heads/3/status", r.URL.Path)
			_, _ = io.WriteString(w, `{"id":3,"employeeId":"DH001","status":"Inactive"}`)
		})

		head, err := c.ToggleHeadStatus(ctx, "3")

		assert.NoError(t, err)
		assert.Equal(t, elmsapi.HeadInactive, head.Status)
	})

	t.Run("delete", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"errors":["Head has pending approvals"]}`)
		})

		err := c.DeleteHead(ctx, "3")

		assert.Equal(t, "Head has pending approvals", apperror.MessageOf(err, ""))
	})
}

func TestErrorMessage(t *testing.T) {
	fallback := "fallback"

	assert.Equal(t, "m", elmsapi.ErrorMessage([]byte(`{"message":"m","error":"e"}`), fallback))
	assert.Equal(t, "e", elmsapi.ErrorMessage([]byte(`{"error":"e","errors":["x"]}`), fallback))
	assert.Equal(t, "x", elmsapi.ErrorMessage([]byte(`{"errors":["x"]}`), fallback))
	assert.Equal(t, "d", elmsapi.ErrorMessage([]byte(`{"errors":[{"defaultMessage":"d"}]}`), fallback))
	assert.Equal(t, fallback, elmsapi.ErrorMessage([]byte(`{}`), fallback))
	assert.Equal(t, fallback, elmsapi.ErrorMessage([]byte(`Bad Request`), fallback))
	assert.Equal(t, fallback, elmsapi.ErrorMessage(nil, fallback))
}
