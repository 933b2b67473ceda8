package middleware

import (
	"errors"
	"strings"

	"elms-portal/internal/session"
	sessionerrors "elms-portal/internal/session/errors"
	"elms-portal/internal/shared/contextutil"
	"elms-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextIdentity  = "identity"
	ContextSessionID = "session_id"
	ContextRole      = "role"
)

// SessionToken reads the session token from the Authorization header, then the cookie.
func SessionToken(c *gin.Context, cookieName string) string {
	if token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found && token != "" {
		return token
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}

// Session resolves the caller's identity. A missing or invalid token leaves the
// request anonymous; only a store failure stops it.
func Session(manager *session.Manager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := session.Anonymous()

		sid, resolved, err := manager.Resolve(ctx, SessionToken(c, cookieName))
		switch {
		case err == nil:
			id = resolved
		case errors.Is(err, sessionerrors.ErrNoSession),
			errors.Is(err, sessionerrors.ErrInvalidToken),
			errors.Is(err, sessionerrors.ErrTokenExpired):
			sid = ""
		default:
			contextutil.GetLogger(ctx, zap.L()).Error("session lookup failed", zap.Error(err))
			response.Fail(c, err)
			c.Abort()
			return
		}

		ctx = session.WithIdentity(ctx, id)
		if sid != "" {
			ctx = contextutil.WithSessionID(ctx, sid)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Set(ContextIdentity, id)
		c.Set(ContextSessionID, sid)
		c.Set(ContextRole, string(id.Role))

		c.Next()
	}
}

// RequireSession rejects anonymous callers.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.FromContext(c.Request.Context()).Authenticated() {
			response.Fail(c, sessionerrors.ErrNoSession)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Identity returns the identity resolved by Session.
func Identity(c *gin.Context) session.Identity {
	return session.FromContext(c.Request.Context())
}

// SessionID returns the session id resolved by Session, if any.
func SessionID(c *gin.Context) string {
	return contextutil.GetSessionID(c.Request.Context())
}

