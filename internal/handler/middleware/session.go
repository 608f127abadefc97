package middleware

import (
	"log/slog"
	"strings"

	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionHeader   = "X-Session-ID"
	ctxSessionIDKey = "session_id"
)

type SessionMiddleware struct {
	cookieCfg config.CookieConfig
}

func NewSessionMiddleware(cfg config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		cookieCfg: cfg.Cookie,
	}
}

// RequireSession resolves the caller's session id from the cookie or the
// X-Session-ID header, issuing a fresh one when neither holds a valid UUID.
// The id is echoed back in both so cookie-less clients can keep it.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := parseSessionID(cookie.GetSessionID(c))
		if !ok {
			sessionID, ok = parseSessionID(c.GetHeader(SessionHeader))
		}
		if !ok {
			sessionID = uuid.New()
			slog.Debug("issued new session", "session_id", sessionID.String(), "path", c.Request.URL.Path)
		}

		cookie.SetSessionCookie(c, m.cookieCfg, sessionID.String())
		c.Header(SessionHeader, sessionID.String())
		c.Set(ctxSessionIDKey, sessionID)
		c.Next()
	}
}

// ClearSession expires the session cookie on the response.
func (m *SessionMiddleware) ClearSession(c *gin.Context) {
	cookie.ClearSessionCookie(c, m.cookieCfg)
	c.Header(SessionHeader, "")
}

func parseSessionID(raw string) (uuid.UUID, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func GetSessionID(c *gin.Context) (uuid.UUID, bool) {
	sessionID, exists := c.Get(ctxSessionIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := sessionID.(uuid.UUID)
	return id, ok
}
