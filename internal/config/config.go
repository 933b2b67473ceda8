package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

const (
	DevelopmentAPIBaseURL       = "http://localhost:8080"
	DefaultProductionAPIBaseURL = "http://16.170.210.109:8080"
	DefaultRequestTimeout       = 10 * time.Second
	DefaultAnnualAllowance      = 20

	// APIBaseURLEnv overrides the production API host.
	APIBaseURLEnv = "ELMS_API_BASE_URL"
)

// Config holds all configuration for the portal
type Config struct {
	Env       Environment
	Port      string
	LogFile   string
	API       APIConfig
	Session   SessionConfig
	Admin     AdminConfig
	Leave     LeaveConfig
	Audit     AuditConfig
	RateLimit RateLimitConfig
}

// APIConfig describes how to reach the ELMS REST API
type APIConfig struct {
	BaseURL      string
	Timeout      time.Duration
	// ListCacheTTL bounds how long list reads are shared through Redis. Zero disables it.
	ListCacheTTL time.Duration
}

type SessionConfig struct {
	Secret     string
	CookieName string
	TTL        time.Duration
	RedisAddr  string
	Secure     bool
}

type AdminConfig struct {
	PasswordHash string
}

type LeaveConfig struct {
	AnnualAllowance int
}

type AuditConfig struct {
	KafkaBrokers []string
	Topic        string
}

type RateLimitConfig struct {
	LoginPerSecond float64
	LoginBurst     int
}

// ParseEnvironment maps APP_ENV values onto an Environment. Anything that is
// not a production spelling is development.
func ParseEnvironment(v string) Environment {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "production", "prod":
		return EnvProduction
	default:
		return EnvDevelopment
	}
}

// ResolveAPIBaseURL picks the API host for env. The override only applies in production.
func ResolveAPIBaseURL(env Environment, override string) string {
	if env != EnvProduction {
		return DevelopmentAPIBaseURL
	}
	if v := strings.TrimRight(strings.TrimSpace(override), "/"); v != "" {
		return v
	}
	return DefaultProductionAPIBaseURL
}

// Load reads configuration from a .env file (when present) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		zap.L().Named("config").Debug(".env file not found, using environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	env := ParseEnvironment(get("APP_ENV", string(EnvDevelopment)))

	timeout, err := time.ParseDuration(get("ELMS_API_TIMEOUT", DefaultRequestTimeout.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid ELMS_API_TIMEOUT: %w", err)
	}
	listCacheTTL, err := time.ParseDuration(get("ELMS_LIST_CACHE_TTL", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid ELMS_LIST_CACHE_TTL: %w", err)
	}
	sessionTTL, err := time.ParseDuration(get("SESSION_TTL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	allowance, err := strconv.Atoi(get("LEAVE_ANNUAL_ALLOWANCE", strconv.Itoa(DefaultAnnualAllowance)))
	if err != nil || allowance < 0 {
		return nil, fmt.Errorf("invalid LEAVE_ANNUAL_ALLOWANCE: %q", getenv("LEAVE_ANNUAL_ALLOWANCE"))
	}
	loginRate, err := strconv.ParseFloat(get("LOGIN_RATE_PER_SECOND", "1"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE_PER_SECOND: %w", err)
	}
	loginBurst, err := strconv.Atoi(get("LOGIN_RATE_BURST", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE_BURST: %w", err)
	}

	secret := get("SESSION_SECRET", "")
	if secret == "" {
		if env == EnvProduction {
			return nil, fmt.Errorf("SESSION_SECRET required in production")
		}
		secret = "dev-session-secret"
	}

	var brokers []string
	for _, b := range strings.Split(get("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	return &Config{
		Env:     env,
		Port:    get("PORT", "3000"),
		LogFile: get("LOG_FILE", ""),
		API: APIConfig{
			BaseURL:      ResolveAPIBaseURL(env, getenv(APIBaseURLEnv)),
			Timeout:      timeout,
			ListCacheTTL: listCacheTTL,
		},
		Session: SessionConfig{
			Secret:     secret,
			CookieName: get("SESSION_COOKIE", "elms_session"),
			TTL:        sessionTTL,
			RedisAddr:  get("REDIS_ADDR", ""),
			Secure:     env == EnvProduction,
		},
		Admin: AdminConfig{
			PasswordHash: get("ADMIN_PASSWORD_HASH", ""),
		},
		Leave: LeaveConfig{
			AnnualAllowance: allowance,
		},
		Audit: AuditConfig{
			KafkaBrokers: brokers,
			Topic:        get("AUDIT_TOPIC", "elms.portal.audit.v1"),
		},
		RateLimit: RateLimitConfig{
			LoginPerSecond: loginRate,
			LoginBurst:     loginBurst,
		},
	}, nil
}

// IsDevelopment reports whether the portal runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env != EnvProduction
}
