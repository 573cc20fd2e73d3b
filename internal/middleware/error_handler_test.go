package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gastropos/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(r http.Handler, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), ErrorHandler())
	r.GET("/api", func(c *gin.Context) { _ = c.Error(apierror.NotFound(apierror.CodeSaleNotFound)) })
	r.GET("/raw", func(c *gin.Context) { _ = c.Error(errors.New("pq: relation \"ventas\" does not exist")) })
	r.GET("/written", func(c *gin.Context) {
		c.JSON(http.StatusAccepted, gin.H{"ok": true})
		_ = c.Error(errors.New("late"))
	})

	w := serve(r, "/api", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), apierror.CodeSaleNotFound)

	w = serve(r, "/raw", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), apierror.CodeInternal)
	assert.NotContains(t, w.Body.String(), "relation")

	w = serve(r, "/written", nil)
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("nil map") })

	w := serve(r, "/boom", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), apierror.CodeInternal)
	assert.NotContains(t, w.Body.String(), "nil map")
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := serve(r, "/", map[string]string{RequestIDHeader: "req-42"})
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "req-42", w.Body.String())

	w = serve(r, "/", nil)
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())
}
