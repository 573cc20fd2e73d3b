package service_test

import (
	"context"
	"net/http"
	"testing"

	"gastropos/internal/apierror"
	"gastropos/internal/config"
	"gastropos/internal/dto"
	"gastropos/internal/model"
	"gastropos/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(t *testing.T) (service.AuthService, *memStore) {
	t.Helper()
	store := newMemStore()
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 8}
	return service.NewAuthService(usuarioStub{s: store}, empleadoStub{s: store}, cfg, nil), store
}

func TestLogin(t *testing.T) {
	auth, _ := newAuth(t)
	ctx := context.Background()

	_, err := auth.CrearUsuario(ctx, dto.CrearUsuarioRequest{
		Email: "caja@bodegon.com.ar", FullName: "Marta Caja", Password: "secreta1",
	})
	require.NoError(t, err)

	resp, err := auth.Login(ctx, dto.LoginRequest{Email: "CAJA@bodegon.com.ar", Password: "secreta1"})
	require.NoError(t, err)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, model.RolCajero, resp.User.Role)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims["user_id"])
	assert.Equal(t, model.RolCajero, claims["role"])

	_, err = auth.Login(ctx, dto.LoginRequest{Email: "caja@bodegon.com.ar", Password: "otra"})
	requireCode(t, err, apierror.CodeBadCredentials, http.StatusUnauthorized)
	_, err = auth.Login(ctx, dto.LoginRequest{Email: "nadie@bodegon.com.ar", Password: "secreta1"})
	requireCode(t, err, apierror.CodeBadCredentials, http.StatusUnauthorized)
	_, err = auth.Login(ctx, dto.LoginRequest{Email: "caja@bodegon.com.ar"})
	requireCode(t, err, apierror.CodeMissingFields, http.StatusBadRequest)
}

func TestLogin_UsuarioDesactivado(t *testing.T) {
	auth, _ := newAuth(t)
	ctx := context.Background()
	u, err := auth.CrearUsuario(ctx, dto.CrearUsuarioRequest{
		Email: "mozo@bodegon.com.ar", FullName: "Julián Mozo", Password: "secreta1", Role: model.RolMozo,
	})
	require.NoError(t, err)

	require.NoError(t, auth.DesactivarUsuario(ctx, uuid.MustParse(u.ID)))
	_, err = auth.Login(ctx, dto.LoginRequest{Email: "mozo@bodegon.com.ar", Password: "secreta1"})
	requireCode(t, err, apierror.CodeBadCredentials, http.StatusUnauthorized)

	requireCode(t, auth.DesactivarUsuario(ctx, uuid.New()), apierror.CodeUserNotFound, http.StatusNotFound)
}

func TestCrearUsuario_Validaciones(t *testing.T) {
	auth, _ := newAuth(t)
	ctx := context.Background()

	_, err := auth.CrearUsuario(ctx, dto.CrearUsuarioRequest{Email: "x@y.com", Password: "secreta1"})
	requireCode(t, err, apierror.CodeMissingFields, http.StatusBadRequest)

	_, err = auth.CrearUsuario(ctx, dto.CrearUsuarioRequest{Email: "x@y.com", FullName: "X", Password: "secreta1", Role: "gerente"})
	requireCode(t, err, apierror.CodeInvalidRole, http.StatusBadRequest)

	_, err = auth.CrearUsuario(ctx, dto.CrearUsuarioRequest{
		Email: "x@y.com", FullName: "X", Password: "secreta1", EmployeeID: strp(uuid.NewString()),
	})
	requireCode(t, err, apierror.CodeEmployeeNotFound, http.StatusNotFound)
}

func TestCrearDesdeEmpleado(t *testing.T) {
	auth, store := newAuth(t)
	emp := model.Empleado{ID: uuid.New(), Nombre: "Rosa", Apellido: "Giménez", Estado: model.EmpleadoActivo}
	store.empleados[emp.ID] = emp

	u, err := auth.CrearDesdeEmpleado(context.Background(), dto.UsuarioDesdeEmpleadoRequest{
		EmployeeID: emp.ID.String(), Email: "rosa@bodegon.com.ar", Password: "cocina123", Role: model.RolCocina,
	})
	require.NoError(t, err)
	assert.Equal(t, "Rosa Giménez", u.FullName)
	assert.Equal(t, model.RolCocina, u.Role)
	require.NotNil(t, u.EmployeeID)
	assert.Equal(t, emp.ID.String(), *u.EmployeeID)

	_, err = auth.CrearDesdeEmpleado(context.Background(), dto.UsuarioDesdeEmpleadoRequest{Email: "a@b.com", Password: "cocina123"})
	requireCode(t, err, apierror.CodeMissingFields, http.StatusBadRequest)
}

func TestActualizarUsuario(t *testing.T) {
	auth, _ := newAuth(t)
	ctx := context.Background()
	u, err := auth.CrearUsuario(ctx, dto.CrearUsuarioRequest{Email: "a@b.com", FullName: "Ana", Password: "secreta1"})
	require.NoError(t, err)
	id := uuid.MustParse(u.ID)

	admin := model.RolAdmin
	nuevaClave := "otraclave"
	upd, err := auth.ActualizarUsuario(ctx, id, dto.ActualizarUsuarioRequest{Role: &admin, Password: &nuevaClave})
	require.NoError(t, err)
	assert.Equal(t, model.RolAdmin, upd.Role)

	_, err = auth.Login(ctx, dto.LoginRequest{Email: "a@b.com", Password: "otraclave"})
	require.NoError(t, err)

	bad := "dueño"
	_, err = auth.ActualizarUsuario(ctx, id, dto.ActualizarUsuarioRequest{Role: &bad})
	requireCode(t, err, apierror.CodeInvalidRole, http.StatusBadRequest)
	_, err = auth.ActualizarUsuario(ctx, uuid.New(), dto.ActualizarUsuarioRequest{})
	requireCode(t, err, apierror.CodeUserNotFound, http.StatusNotFound)
}
