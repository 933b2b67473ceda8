package auth

import (
	"net/http"
	"time"

	"elms-portal/internal/middleware"
	"elms-portal/internal/shared/apperror"
	"elms-portal/internal/shared/response"
	"elms-portal/internal/validation"

	"github.com/gin-gonic/gin"
)

// CookieConfig describes the session cookie handed to browsers.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

type Handler struct {
	service Service
	cookie  CookieConfig
}

func NewHandler(s Service, cookie CookieConfig) *Handler {
	return &Handler{service: s, cookie: cookie}
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Fail(c, apperror.Wrap(err, apperror.CodeInvalidInput, "Invalid request body", http.StatusBadRequest))
		return false
	}
	return true
}

func (ctrl *Handler) Register(c *gin.Context) {
	var form validation.RegistrationForm
	if !bindJSON(c, &form) {
		return
	}

	res, err := ctrl.service.Register(c.Request.Context(), form)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

func (ctrl *Handler) LoginEmployee(c *gin.Context) {
	var form validation.LoginForm
	if !bindJSON(c, &form) {
		return
	}

	res, err := ctrl.service.LoginEmployee(c.Request.Context(), middleware.SessionID(c), form)
	ctrl.finishLogin(c, res, err)
}

func (ctrl *Handler) LoginHead(c *gin.Context) {
	var form validation.HeadLoginForm
	if !bindJSON(c, &form) {
		return
	}

	res, err := ctrl.service.LoginHead(c.Request.Context(), middleware.SessionID(c), form)
	ctrl.finishLogin(c, res, err)
}

func (ctrl *Handler) LoginAdmin(c *gin.Context) {
	var form validation.AdminLoginForm
	if !bindJSON(c, &form) {
		return
	}

	res, err := ctrl.service.LoginAdmin(c.Request.Context(), middleware.SessionID(c), form)
	ctrl.finishLogin(c, res, err)
}

func (ctrl *Handler) finishLogin(c *gin.Context, res LoginResult, err error) {
	if err != nil {
		response.Fail(c, err)
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     ctrl.cookie.Name,
		Value:    res.Token,
		Path:     "/",
		MaxAge:   int(ctrl.cookie.TTL.Seconds()),
		HttpOnly: true,
		Secure:   ctrl.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(c, http.StatusOK, res, nil)
}

func (ctrl *Handler) Logout(c *gin.Context) {
	if err := ctrl.service.Logout(c.Request.Context(), middleware.SessionID(c), middleware.Identity(c)); err != nil {
		response.Fail(c, err)
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     ctrl.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   ctrl.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(c, http.StatusOK, "Logout success.", nil)
}

// Me reports who the session belongs to; anonymous callers get authenticated=false.
func (ctrl *Handler) Me(c *gin.Context) {
	id := middleware.Identity(c)
	response.Success(c, http.StatusOK, MeResponse{Authenticated: id.Authenticated(), Identity: id}, nil)
}
