package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"wanderworld/pkg/middleware"
	"wanderworld/pkg/utils"
)

func newVisitorRouter(tokens *utils.VisitorTokens) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware(), middleware.VisitorMiddleware(tokens, false, zap.NewNop()))
	r.GET("/who", func(c *gin.Context) {
		id, ok := middleware.VisitorID(c)
		if !ok {
			c.String(http.StatusInternalServerError, "no visitor")
			return
		}
		c.String(http.StatusOK, id.String())
	})
	return r
}

func TestVisitorMiddleware_IssuesCookieForNewVisitor(t *testing.T) {
	tokens := utils.NewVisitorTokens("secret", time.Hour)
	r := newVisitorRouter(tokens)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/who", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.VisitorCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	id, err := tokens.ValidateToken(cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, id.String(), w.Body.String())
}

func TestVisitorMiddleware_ReusesValidCookie(t *testing.T) {
	tokens := utils.NewVisitorTokens("secret", time.Hour)
	r := newVisitorRouter(tokens)
	visitor := uuid.New()
	token, err := tokens.CreateToken(visitor)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.AddCookie(&http.Cookie{Name: middleware.VisitorCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, visitor.String(), w.Body.String())
	assert.Empty(t, w.Result().Cookies())
}

func TestVisitorMiddleware_ReplacesForgedCookie(t *testing.T) {
	tokens := utils.NewVisitorTokens("secret", time.Hour)
	r := newVisitorRouter(tokens)
	visitor := uuid.New()
	forged, err := utils.NewVisitorTokens("attacker", time.Hour).CreateToken(visitor)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.AddCookie(&http.Cookie{Name: middleware.VisitorCookie, Value: forged})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.NotEqual(t, visitor.String(), w.Body.String())
	assert.Len(t, w.Result().Cookies(), 1)
}
