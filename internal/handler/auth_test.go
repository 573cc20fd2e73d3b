package handler

import (
	"net/http"
	"testing"

	"gastropos/internal/apierror"
	"gastropos/internal/dto"
	"gastropos/internal/model"
	"gastropos/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(svc)
	r := gin.New()
	r.POST("/v1/auth/login", h.Login)

	svc.EXPECT().Login(gomock.Any(), dto.LoginRequest{Email: "caja@bodegon.com.ar", Password: "secreta1"}).
		Return(&dto.LoginResponse{
			Token:     "jwt",
			ExpiresIn: 28800,
			User:      dto.UsuarioResponse{ID: cajero.String(), Email: "caja@bodegon.com.ar", Role: model.RolCajero, Active: true},
		}, nil)
	svc.EXPECT().Login(gomock.Any(), dto.LoginRequest{Email: "caja@bodegon.com.ar", Password: "mala"}).
		Return(nil, apierror.Unauthorized(apierror.CodeBadCredentials))

	w, body := do(t, r, http.MethodPost, "/v1/auth/login", `{"email":"caja@bodegon.com.ar","password":"secreta1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jwt", body["token"])
	assert.Equal(t, float64(28800), body["expires_in"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, user, "password_hash")
	assert.Equal(t, model.RolCajero, user["role"])

	w, body = do(t, r, http.MethodPost, "/v1/auth/login", `{"email":"caja@bodegon.com.ar","password":"mala"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apierror.CodeBadCredentials, body["error"])
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(nil)

	r := newTestRouter()
	r.GET("/v1/auth/me", h.Me)
	w, body := do(t, r, http.MethodGet, "/v1/auth/me", "")
	require.Equal(t, http.StatusOK, w.Code)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, cajero.String(), user["id"])
	assert.Equal(t, "Marta Caja", user["full_name"])
	assert.Nil(t, user["employee_id"])

	anon := gin.New()
	anon.GET("/v1/auth/me", h.Me)
	w, body = do(t, anon, http.MethodGet, "/v1/auth/me", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apierror.CodeNoAuth, body["error"])
}

func TestUsuariosHandler_Desactivar(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockAuthService(ctrl)
	h := NewUsuariosHandler(svc)
	r := newTestRouter()
	r.DELETE("/v1/users/:id", h.Desactivar)

	id := uuid.New()
	svc.EXPECT().DesactivarUsuario(gomock.Any(), id).Return(nil)

	w, body := do(t, r, http.MethodDelete, "/v1/users/"+id.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["ok"])

	w, body = do(t, r, http.MethodDelete, "/v1/users/yo", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apierror.CodeUserNotFound, body["error"])
}
