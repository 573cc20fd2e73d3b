package handler

import (
	"net/http"

	"gastropos/internal/apierror"
	"gastropos/internal/dto"
	"gastropos/internal/service"

	"github.com/gin-gonic/gin"
)

type EmpleadosHandler struct{ svc service.EmpleadoService }

func NewEmpleadosHandler(svc service.EmpleadoService) *EmpleadosHandler {
	return &EmpleadosHandler{svc: svc}
}

// Crear godoc
// @Summary Alta de empleado
// @Tags empleados
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.EmpleadoRequest true "Empleado"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /v1/employees [post]
func (h *EmpleadosHandler) Crear(c *gin.Context) {
	var req dto.EmpleadoRequest
	if !bindAndValidate(c, &req, apierror.CodeMissingFields) {
		return
	}
	e, err := h.svc.Crear(c.Request.Context(), currentUser(c), req)
	if err != nil {
		respondError(c, err, apierror.CodeInternal)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"employee": e})
}

// Listar godoc
// @Summary Lista empleados
// @Tags empleados
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /v1/employees [get]
func (h *EmpleadosHandler) Listar(c *gin.Context) {
	items, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err, apierror.CodeDBQuery)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"items": nonNil(items)})
}

// ObtenerPorID godoc
// @Summary Devuelve un empleado
// @Tags empleados
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del empleado"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/employees/{id} [get]
func (h *EmpleadosHandler) ObtenerPorID(c *gin.Context) {
	id, ok := uuidParam(c, "id", apierror.CodeNotFound)
	if !ok {
		return
	}
	e, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, apierror.CodeDBQuery)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"employee": e})
}

// Actualizar godoc
// @Summary Actualiza un empleado
// @Tags empleados
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del empleado"
// @Param body body dto.EmpleadoRequest true "Empleado"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/employees/{id} [put]
func (h *EmpleadosHandler) Actualizar(c *gin.Context) {
	id, ok := uuidParam(c, "id", apierror.CodeNotFound)
	if !ok {
		return
	}
	var req dto.EmpleadoRequest
	if !bindAndValidate(c, &req, apierror.CodeMissingFields) {
		return
	}
	e, err := h.svc.Actualizar(c.Request.Context(), currentUser(c), id, req)
	if err != nil {
		respondError(c, err, apierror.CodeInternal)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"employee": e})
}
