package app

import (
	"elms-portal/internal/admin"
	"elms-portal/internal/audit"
	"elms-portal/internal/auth"
	"elms-portal/internal/config"
	"elms-portal/internal/elmsapi"
	"elms-portal/internal/employee"
	"elms-portal/internal/head"
	"elms-portal/internal/leave"
	"elms-portal/internal/middleware"
	"elms-portal/internal/rbac"
	"elms-portal/internal/rbac/infra"
	"elms-portal/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// registerModules wires every module onto router and returns the sweep funcs
// of the per-session state registries.
func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	rdb *redis.Client,
	auditLogger audit.Logger,
) ([]func() int, error) {
	// --- Sessions ---
	var store session.Store = session.NewMemoryStore()
	if rdb != nil {
		store = session.NewRedisStore(rdb, cfg.Session.TTL)
	}
	sessions := session.NewManager(store, session.NewTokens(cfg.Session.Secret, cfg.Session.TTL))

	// --- ELMS API ---
	var api elmsapi.Client = elmsapi.NewClient(config.NewEndpoints(cfg.API.BaseURL), cfg.API.Timeout)
	if rdb != nil && cfg.API.ListCacheTTL > 0 {
		api = elmsapi.NewCachedClient(api, rdb, cfg.API.ListCacheTTL)
	}

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return nil, err
	}
	rbacService := rbac.NewService(rbac.NewRepository(), enforcer)
	if err := rbacService.LoadPolicy(); err != nil {
		return nil, err
	}

	// --- Per-session dashboard state ---
	boards := leave.NewBoards(cfg.Session.TTL)
	rosters := admin.NewRosters(cfg.Session.TTL)
	sessions.OnEnd(boards.Drop, rosters.Drop)

	// --- Services ---
	authService := auth.NewService(api, sessions, auditLogger, cfg.Admin.PasswordHash)
	employeeService := employee.NewService(api, boards, auditLogger, cfg.Leave.AnnualAllowance)
	headService := head.NewService(api, boards, auditLogger)
	adminService := admin.NewService(api, rosters, auditLogger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, auth.CookieConfig{
		Name:   cfg.Session.CookieName,
		TTL:    cfg.Session.TTL,
		Secure: cfg.Session.Secure,
	})
	employeeHandler := employee.NewHandler(employeeService)
	headHandler := head.NewHandler(headService)
	adminHandler := admin.NewHandler(adminService)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Middlewares ---
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(zap.L().Named("http")),
		middleware.Session(sessions, cfg.Session.CookieName),
	)
	requireSession := middleware.RequireSession()
	loginLimit := middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.LoginPerSecond), cfg.RateLimit.LoginBurst)

	// --- Routes Registration ---
	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1, authHandler, loginLimit)
		employee.RegisterRoutes(v1, employeeHandler, rbacService, requireSession)
		head.RegisterRoutes(v1, headHandler, rbacService, requireSession)
		admin.RegisterRoutes(v1, adminHandler, rbacService, requireSession)
		rbac.RegisterRoutes(v1, rbacHandler, requireSession)
	}

	return []func() int{boards.Sweep, rosters.Sweep}, nil
}
