package middleware

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusvoice/internal/infrastructure/ratelimit"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/constants"
	"campusvoice/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubVerifier struct {
	actor authorization.Actor
	err   error
}

func (s stubVerifier) Verify(string) (authorization.Actor, error) {
	return s.actor, s.err
}

type stubEnforcer struct {
	allow map[string]bool
}

func (s stubEnforcer) Enforce(role, resource, action string) (bool, error) {
	return s.allow[role+":"+resource+":"+action], nil
}
func (s stubEnforcer) AddPolicy(string, string, string) error     { return nil }
func (s stubEnforcer) RemovePolicy(string, string, string) error  { return nil }
func (s stubEnforcer) PoliciesForRole(string) ([][]string, error) { return nil, nil }
func (s stubEnforcer) LoadPolicy() error                           { return nil }

type recordingRefusals struct {
	types []string
}

func (r *recordingRefusals) RecordRefusal(_ context.Context, errorType string) {
	r.types = append(r.types, errorType)
}

func serve(engine *gin.Engine, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	student := authorization.Actor{ID: "usr_1", Role: authorization.RoleStudent, Name: "Ana"}

	newEngine := func(v TokenVerifier) *gin.Engine {
		engine := gin.New()
		engine.GET("/me", NewAuthMiddleware(v, logger.NewNopLogger()).RequireAuth(), func(c *gin.Context) {
			actor, ok := authorization.ActorFromContext(c)
			require.True(t, ok)
			c.JSON(http.StatusOK, gin.H{"id": actor.ID, "role": actor.Role})
		})
		return engine
	}

	t.Run("valid bearer token", func(t *testing.T) {
		w := serve(newEngine(stubVerifier{actor: student}), http.MethodGet, "/me", map[string]string{"Authorization": "Bearer tok"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"usr_1"`)
	})

	t.Run("missing header", func(t *testing.T) {
		w := serve(newEngine(stubVerifier{actor: student}), http.MethodGet, "/me", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w := serve(newEngine(stubVerifier{actor: student}), http.MethodGet, "/me", map[string]string{"Authorization": "Basic abc"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := serve(newEngine(stubVerifier{err: stderrors.New("expired")}), http.MethodGet, "/me", map[string]string{"Authorization": "Bearer tok"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestPermissionMiddleware(t *testing.T) {
	enforcer := stubEnforcer{allow: map[string]bool{"ADMIN:issue:approve": true}}
	perm := NewPermissionMiddleware(enforcer, logger.NewNopLogger())
	refusals := &recordingRefusals{}

	engine := gin.New()
	engine.Use(Refusals(refusals))
	engine.POST("/approve", func(c *gin.Context) {
		if role := c.GetHeader("X-Test-Role"); role != "" {
			SetActor(c, authorization.Actor{ID: "usr_1", Role: authorization.UserRole(role)})
		}
		c.Next()
	}, perm.RequirePermission("issue", "approve"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := serve(engine, http.MethodPost, "/approve", map[string]string{"X-Test-Role": "ADMIN"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(engine, http.MethodPost, "/approve", map[string]string{"X-Test-Role": "STUDENT"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, []string{"forbidden"}, refusals.types)

	w = serve(engine, http.MethodPost, "/approve", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimiterMiddleware(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(ratelimit.NewMemoryRateLimiter(2, time.Minute, func() time.Time { return now }), logger.NewNopLogger())

	engine := gin.New()
	engine.POST("/support", func(c *gin.Context) {
		SetActor(c, authorization.Actor{ID: c.GetHeader("X-User"), Role: authorization.RoleStudent})
		c.Next()
	}, limiter.Limit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		w := serve(engine, http.MethodPost, "/support", map[string]string{"X-User": "usr_1"})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := serve(engine, http.MethodPost, "/support", map[string]string{"X-User": "usr_1"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "61", w.Header().Get("Retry-After"))

	w = serve(engine, http.MethodPost, "/support", map[string]string{"X-User": "usr_2"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.ContextKeyRequestID))
	})

	w := serve(engine, http.MethodGet, "/", map[string]string{"X-Request-ID": "req-123"})
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "req-123", w.Body.String())

	w = serve(engine, http.MethodGet, "/", nil)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}

func TestCORS(t *testing.T) {
	engine := gin.New()
	engine.Use(CORS([]string{"https://voice.campus.edu"}))
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(engine, http.MethodGet, "/", map[string]string{"Origin": "https://voice.campus.edu"})
	assert.Equal(t, "https://voice.campus.edu", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(engine, http.MethodGet, "/", map[string]string{"Origin": "https://evil.example"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(engine, http.MethodOptions, "/", map[string]string{"Origin": "https://voice.campus.edu"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRecovery(t *testing.T) {
	engine := gin.New()
	engine.Use(Recovery())
	engine.GET("/", func(c *gin.Context) { panic("boom") })

	w := serve(engine, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
