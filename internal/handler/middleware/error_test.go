//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"room-booking/internal/handler/httperr"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/pkg/errs"
	"room-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())

	r.GET("/conflict", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, errs.New("taken"), "Room already reserved for this time slot", nil)
	})
	r.GET("/server", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.Wrap(errs.New("disk"), "save"), "Internal error", nil)
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	r.GET("/empty", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	t.Run("client error body", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/conflict", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Room already reserved for this time slot")
	})

	t.Run("server error body", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/server", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal error")
	})

	t.Run("panic is recovered", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("bodiless success passes through", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/empty", nil, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}
