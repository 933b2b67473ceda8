package rbac

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"elms-portal/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type mockService struct {
	enforceFn        func(req EnforceRequest) (bool, error)
	permissionsForFn func(role string) ([]PermissionResponse, error)
}

func (m *mockService) LoadPolicy() error { return nil }

func (m *mockService) Enforce(req EnforceRequest) (bool, error) {
	return m.enforceFn(req)
}

func (m *mockService) PermissionsFor(role string) ([]PermissionResponse, error) {
	return m.permissionsForFn(role)
}

func withRole(role session.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := session.WithIdentity(c.Request.Context(), session.Identity{Role: role, EmployeeID: "X"})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func TestHandler_Enforce(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success - uses the session role", func(t *testing.T) {
		var got EnforceRequest
		handler := NewHandler(&mockService{enforceFn: func(req EnforceRequest) (bool, error) {
			got = req
			return true, nil
		}})
		router := gin.New()
		router.POST("/rbac/enforce", withRole(session.RoleHead), handler.Enforce)

		body, _ := json.Marshal(map[string]string{"role": "admin", "resource": ResourceDepartmentLeave, "action": ActionDecide})
		req, _ := http.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "head", got.Role)
		assert.Contains(t, w.Body.String(), `"allowed":true`)
	})

	t.Run("negative - missing fields", func(t *testing.T) {
		handler := NewHandler(&mockService{})
		router := gin.New()
		router.POST("/rbac/enforce", withRole(session.RoleHead), handler.Enforce)

		req, _ := http.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Resource is required")
	})

	t.Run("negative - enforcer error", func(t *testing.T) {
		handler := NewHandler(&mockService{enforceFn: func(EnforceRequest) (bool, error) {
			return false, errors.New("boom")
		}})
		router := gin.New()
		router.POST("/rbac/enforce", withRole(session.RoleHead), handler.Enforce)

		req, _ := http.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{"resource":"a","action":"b"}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "boom")
	})
}

func TestHandler_Permissions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(&mockService{permissionsForFn: func(role string) ([]PermissionResponse, error) {
		assert.Equal(t, "admin", role)
		return []PermissionResponse{{Resource: ResourceHead, Action: ActionManage}}, nil
	}})
	router := gin.New()
	router.GET("/rbac/permissions", withRole(session.RoleAdmin), handler.Permissions)

	req, _ := http.NewRequest(http.MethodGet, "/rbac/permissions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ResourceHead)
}
