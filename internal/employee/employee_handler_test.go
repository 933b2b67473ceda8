package employee_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"elms-portal/internal/employee"
	employeeerrors "elms-portal/internal/employee/errors"
	employeeMock "elms-portal/internal/employee/mock"
	"elms-portal/internal/leave"
	"elms-portal/internal/session"
	"elms-portal/internal/shared/contextutil"
	"elms-portal/internal/validation"
)

func setupEmployeeRouter(id session.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		ctx := session.WithIdentity(c.Request.Context(), id)
		ctx = contextutil.WithSessionID(ctx, "sid-1")
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})
	return r
}

func TestHandler_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := employeeMock.NewMockService(ctrl)
	handler := employee.NewHandler(mockService)
	router := setupEmployeeRouter(ada)
	router.GET("/dashboard", handler.Dashboard)

	t.Run("refreshes by default", func(t *testing.T) {
		mockService.EXPECT().
			Overview(gomock.Any(), "sid-1", ada, true).
			Return(employee.Overview{Profile: employee.Profile{Name: "Ada"}, Requests: []leave.View{{ID: "1"}}}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var res map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, float64(1), res["meta"].(map[string]any)["total"])
	})

	t.Run("refresh=false serves the held list", func(t *testing.T) {
		mockService.EXPECT().Overview(gomock.Any(), "sid-1", ada, false).Return(employee.Overview{}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard?refresh=false", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandler_SubmitLeave(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := employeeMock.NewMockService(ctrl)
	handler := employee.NewHandler(mockService)
	router := setupEmployeeRouter(ada)
	router.POST("/leaves", handler.SubmitLeave)

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			SubmitLeave(gomock.Any(), "sid-1", ada, form).
			Return(leave.View{ID: "42", Days: 3, Status: leave.StatusPending}, nil)

		body, _ := json.Marshal(form)
		req := httptest.NewRequest(http.MethodPost, "/leaves", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("negative - field errors", func(t *testing.T) {
		bad := validation.LeaveForm{Type: "Sick Leave", StartDate: "2024-01-12", EndDate: "2024-01-10", Reason: "x"}
		mockService.EXPECT().
			SubmitLeave(gomock.Any(), gomock.Any(), gomock.Any(), bad).
			Return(leave.View{}, validation.Check(bad))

		body, _ := json.Marshal(bad)
		req := httptest.NewRequest(http.MethodPost, "/leaves", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var res map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		details := res["error"].(map[string]any)["details"].(map[string]any)
		assert.Contains(t, details, "endDate")
	})
}

func TestHandler_Report(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := employeeMock.NewMockService(ctrl)
	handler := employee.NewHandler(mockService)
	router := setupEmployeeRouter(ada)
	router.GET("/report", handler.Report)

	t.Run("download", func(t *testing.T) {
		mockService.EXPECT().
			Report(gomock.Any(), "sid-1", ada, "pdf").
			Return(employee.ReportFile{Name: "leave-report-EMP001-2024.pdf", ContentType: "application/pdf", Body: []byte("%PDF-1.4")}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/report?format=pdf", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "leave-report-EMP001-2024.pdf")
	})

	t.Run("negative - unknown format", func(t *testing.T) {
		mockService.EXPECT().Report(gomock.Any(), gomock.Any(), gomock.Any(), "xlsx").
			Return(employee.ReportFile{}, employeeerrors.ErrUnknownReportFormat)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/report?format=xlsx", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
