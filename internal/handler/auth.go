package handler

import (
	"net/http"

	"gastropos/internal/apierror"
	"gastropos/internal/dto"
	"gastropos/internal/middleware"
	"gastropos/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Login de usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 429 {object} map[string]interface{}
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req, apierror.CodeMissingFields) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, apierror.CodeInternal)
		return
	}
	respondOK(c, http.StatusOK, gin.H{
		"token":      resp.Token,
		"expires_in": resp.ExpiresIn,
		"user":       resp.User,
	})
}

// Me godoc
// @Summary Datos del usuario autenticado
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		respondError(c, apierror.Unauthorized(apierror.CodeNoAuth), apierror.CodeInternal)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"user": gin.H{
		"id":          claims.UserID,
		"email":       claims.Email,
		"full_name":   claims.FullName,
		"role":        claims.Role,
		"employee_id": claims.EmployeeID,
	}})
}

// ── Usuarios Handler ─────────────────────────────────────────────────────────

type UsuariosHandler struct{ svc service.AuthService }

func NewUsuariosHandler(svc service.AuthService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

// Crear godoc
// @Summary Alta de usuario
// @Tags usuarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearUsuarioRequest true "Usuario"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /v1/users [post]
func (h *UsuariosHandler) Crear(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, &req, apierror.CodeMissingFields) {
		return
	}
	u, err := h.svc.CrearUsuario(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, apierror.CodeInternal)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"user": u})
}

// DesdeEmpleado godoc
// @Summary Crea el usuario de un empleado existente
// @Tags usuarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.UsuarioDesdeEmpleadoRequest true "Datos de acceso"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /v1/users/from-employee [post]
func (h *UsuariosHandler) DesdeEmpleado(c *gin.Context) {
	var req dto.UsuarioDesdeEmpleadoRequest
	if !bindAndValidate(c, &req, apierror.CodeMissingFields) {
		return
	}
	u, err := h.svc.CrearDesdeEmpleado(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, apierror.CodeInternal)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"user": u})
}

// Listar godoc
// @Summary Lista usuarios
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /v1/users [get]
func (h *UsuariosHandler) Listar(c *gin.Context) {
	items, err := h.svc.ListarUsuarios(c.Request.Context())
	if err != nil {
		respondError(c, err, apierror.CodeDBQuery)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"items": nonNil(items)})
}

// Actualizar godoc
// @Summary Actualiza un usuario
// @Tags usuarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del usuario"
// @Param body body dto.ActualizarUsuarioRequest true "Cambios"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/users/{id} [put]
func (h *UsuariosHandler) Actualizar(c *gin.Context) {
	id, ok := uuidParam(c, "id", apierror.CodeUserNotFound)
	if !ok {
		return
	}
	var req dto.ActualizarUsuarioRequest
	if !bindAndValidate(c, &req, apierror.CodeMissingFields) {
		return
	}
	u, err := h.svc.ActualizarUsuario(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, apierror.CodeInternal)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"user": u})
}

// Desactivar godoc
// @Summary Desactiva un usuario
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del usuario"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/users/{id} [delete]
func (h *UsuariosHandler) Desactivar(c *gin.Context) {
	id, ok := uuidParam(c, "id", apierror.CodeUserNotFound)
	if !ok {
		return
	}
	if err := h.svc.DesactivarUsuario(c.Request.Context(), id); err != nil {
		respondError(c, err, apierror.CodeInternal)
		return
	}
	respondOK(c, http.StatusOK, nil)
}
