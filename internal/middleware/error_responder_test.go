package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-biztime/internal/middleware"
	"go-biztime/internal/shared/apperror"
	"go-biztime/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ContextLogger(zap.NewNop()), middleware.ErrorResponder(zap.NewNop()))
	return r
}

func decodeError(t *testing.T, body []byte) response.ErrorBody {
	t.Helper()
	var env response.ErrorEnvelope
	assert.NoError(t, json.Unmarshal(body, &env))
	return env.Error
}

func TestErrorResponder(t *testing.T) {
	r := setupRouter()
	r.GET("/typed", func(c *gin.Context) {
		_ = c.Error(apperror.New(apperror.CodeNotFound, "Company not found", http.StatusNotFound))
	})
	r.GET("/wrapped", func(c *gin.Context) {
		_ = c.Error(apperror.ErrRouteNotFound.With(errors.New("no handler")))
	})
	r.GET("/unexpected", func(c *gin.Context) {
		_ = c.Error(errors.New("pq: connection refused"))
	})
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.NoRoute(middleware.NoRoute())

	t.Run("typed failure keeps its status and message", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/typed", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decodeError(t, w.Body.Bytes())
		assert.Equal(t, apperror.CodeNotFound, body.Code)
		assert.Equal(t, "Company not found", body.Message)
		assert.Equal(t, http.StatusNotFound, body.Status)
	})

	t.Run("wrapped typed failure", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/wrapped", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Route not found", decodeError(t, w.Body.Bytes()).Message)
	})

	t.Run("unexpected failure is a generic 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/unexpected", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeError(t, w.Body.Bytes())
		assert.Equal(t, apperror.CodeInternalError, body.Code)
		assert.Equal(t, "Internal Server Error", body.Message)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})

	t.Run("success passes through", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	})

	t.Run("unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Route not found", decodeError(t, w.Body.Bytes()).Message)
	})
}

func TestContextLogger_RequestID(t *testing.T) {
	r := setupRouter()
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("keeps caller id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-123")
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "req-123", w.Body.String())
	})

	t.Run("generates id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), w.Body.String())
	})
}

func TestRateLimitByIP(t *testing.T) {
	r := setupRouter()
	r.Use(middleware.RateLimitByIP(rate.Limit(0.001), 2))
	r.GET("/companies", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"companies": []string{}})
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/companies", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/companies", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
