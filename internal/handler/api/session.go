package api

import (
	"log/slog"
	"net/http"

	"room-booking/internal/handler/httperr"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionDropper interface {
	Drop(id uuid.UUID)
}

type SessionHandler struct {
	sessions   SessionDropper
	middleware *middleware.SessionMiddleware
}

func NewSessionHandler(sessions SessionDropper, mw *middleware.SessionMiddleware) *SessionHandler {
	return &SessionHandler{sessions: sessions, middleware: mw}
}

// @Summary Reset session
// @Description Discard the caller's reservations and profile and expire the session cookie
// @Tags session
// @Success 204
// @Router /api/session [delete]
func (h *SessionHandler) Reset(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("session id missing from context"), "Internal error", nil)
		return
	}

	h.sessions.Drop(sessionID)
	h.middleware.ClearSession(c)
	slog.Info("session reset", "session_id", sessionID.String())
	c.Status(http.StatusNoContent)
}
