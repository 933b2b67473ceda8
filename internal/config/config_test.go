package config_test

import (
	"net/http"
	"testing"
	"time"

	"elms-portal/internal/config"

	"github.com/stretchr/testify/assert"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestResolveAPIBaseURL(t *testing.T) {
	t.Run("development ignores override", func(t *testing.T) {
		assert.Equal(t, "http://localhost:8080", config.ResolveAPIBaseURL(config.EnvDevelopment, "https://api.example.com"))
	})

	t.Run("production uses override", func(t *testing.T) {
		assert.Equal(t, "https://api.example.com", config.ResolveAPIBaseURL(config.EnvProduction, "https://api.example.com/"))
	})

	t.Run("production falls back", func(t *testing.T) {
		assert.Equal(t, config.DefaultProductionAPIBaseURL, config.ResolveAPIBaseURL(config.EnvProduction, ""))
	})
}

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.FromEnv(envFrom(nil))

		assert.NoError(t, err)
		assert.Equal(t, config.EnvDevelopment, cfg.Env)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.API.Timeout)
		assert.Equal(t, 15*time.Second, cfg.API.ListCacheTTL)
		assert.Equal(t, 20, cfg.Leave.AnnualAllowance)
		assert.Equal(t, "elms_session", cfg.Session.CookieName)
		assert.Empty(t, cfg.Audit.KafkaBrokers)
		assert.True(t, cfg.IsDevelopment())
	})

	t.Run("production", func(t *testing.T) {
		cfg, err := config.FromEnv(envFrom(map[string]string{
			"APP_ENV":           "prod",
			"SESSION_SECRET":    "s3cret",
			"ELMS_API_BASE_URL": "https://elms.example.com",
			"KAFKA_BROKERS":     "k1:9092, k2:9092",
		}))

		assert.NoError(t, err)
		assert.Equal(t, config.EnvProduction, cfg.Env)
		assert.Equal(t, "https://elms.example.com", cfg.API.BaseURL)
		assert.True(t, cfg.Session.Secure)
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Audit.KafkaBrokers)
	})

	t.Run("negative production without secret", func(t *testing.T) {
		_, err := config.FromEnv(envFrom(map[string]string{"APP_ENV": "production"}))
		assert.Error(t, err)
	})

	t.Run("negative bad allowance", func(t *testing.T) {
		_, err := config.FromEnv(envFrom(map[string]string{"LEAVE_ANNUAL_ALLOWANCE": "lots"}))
		assert.Error(t, err)
	})
}

func TestEndpoints(t *testing.T) {
	e := config.NewEndpoints("http://localhost:8080")

	cases := []struct {
		name   string
		ep     config.Endpoint
		method string
		url    string
	}{
		{"register", e.EmployeeRegister(), http.MethodPost, "http://localhost:8080/api/employees/register"},
		{"employee login", e.EmployeeLogin(), http.MethodPost, "http://localhost:8080/api/employees/login"},
		{"head login", e.HeadsLogin(), http.MethodPost, "http://localhost:8080/api/heads/login"},
		{"all heads", e.HeadsAll(), http.MethodGet, "http://localhost:8080/api/heads/all-heads"},
		{"create head", e.HeadsCreate(), http.MethodPost, "http://localhost:8080/api/heads/create"},
		{"submit", e.LeavesSubmit(), http.MethodPost, "http://localhost:8080/api/leaves/submit"},
		{"by employee", e.LeavesByEmployee("EMP 1"), http.MethodGet, "http://localhost:8080/api/leaves/by-employee/EMP%201"},
		{"all leaves", e.LeavesAll(), http.MethodGet, "http://localhost:8080/api/leaves/all"},
		{"update status", e.LeavesUpdateStatus("7", "Approved"), http.MethodPut, "http://localhost:8080/api/leaves/update-status/7?status=Approved"},
		{"update head", e.HeadsUpdate("3"), http.MethodPut, "http://localhost:8080/api/heads/3"},
		{"delete head", e.HeadsDelete("3"), http.MethodDelete, "http://localhost:8080/api/heads/3"},
		{"toggle head", e.HeadsToggleStatus("3"), http.MethodPatch, "http://localhost:8080/api/heads/3/status"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.method, tc.ep.Method)
			assert.Equal(t, tc.url, tc.ep.URL())
		})
	}
}
