package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gastropos/internal/middleware"
	"gastropos/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var cajero = uuid.MustParse("5f1d7c1e-3d2a-4a57-9f0e-6f1c2b9d8a01")

// newTestRouter authenticates every request as cajero.
func newTestRouter() *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ClaimsKey, &middleware.JWTClaims{
			UserID:   cajero.String(),
			Email:    "caja@bodegon.com.ar",
			FullName: "Marta Caja",
			Role:     model.RolCajero,
		})
		c.Next()
	})
	return r
}

func do(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	if ct := w.Header().Get("Content-Type"); len(ct) >= 16 && ct[:16] == "application/json" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}
