package handler

import (
	"net/http"

	"gastropos/internal/apierror"
	"gastropos/internal/dto"
	"gastropos/internal/service"

	"github.com/gin-gonic/gin"
)

type ProveedoresHandler struct{ svc service.ProveedorService }

func NewProveedoresHandler(svc service.ProveedorService) *ProveedoresHandler {
	return &ProveedoresHandler{svc: svc}
}

// Crear godoc
// @Summary Alta de proveedor
// @Tags proveedores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ProveedorRequest true "Proveedor"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /v1/suppliers [post]
func (h *ProveedoresHandler) Crear(c *gin.Context) {
	var req dto.ProveedorRequest
	if !bindAndValidate(c, &req, apierror.CodeMissingFields) {
		return
	}
	p, err := h.svc.Crear(c.Request.Context(), currentUser(c), req)
	if err != nil {
		respondError(c, err, apierror.CodeInternal)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"supplier": p})
}

// Listar godoc
// @Summary Lista proveedores activos
// @Tags proveedores
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /v1/suppliers [get]
func (h *ProveedoresHandler) Listar(c *gin.Context) {
	items, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err, apierror.CodeDBQuery)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"items": nonNil(items)})
}

// ObtenerPorID godoc
// @Summary Devuelve un proveedor
// @Tags proveedores
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del proveedor"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/suppliers/{id} [get]
func (h *ProveedoresHandler) ObtenerPorID(c *gin.Context) {
	id, ok := uuidParam(c, "id", apierror.CodeSupplierNotFound)
	if !ok {
		return
	}
	p, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, apierror.CodeDBQuery)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"supplier": p})
}

// Actualizar godoc
// @Summary Actualiza un proveedor
// @Tags proveedores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del proveedor"
// @Param body body dto.ProveedorRequest true "Proveedor"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/suppliers/{id} [put]
func (h *ProveedoresHandler) Actualizar(c *gin.Context) {
	id, ok := uuidParam(c, "id", apierror.CodeSupplierNotFound)
	if !ok {
		return
	}
	var req dto.ProveedorRequest
	if !bindAndValidate(c, &req, apierror.CodeMissingFields) {
		return
	}
	p, err := h.svc.Actualizar(c.Request.Context(), currentUser(c), id, req)
	if err != nil {
		respondError(c, err, apierror.CodeInternal)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"supplier": p})
}

// Eliminar godoc
// @Summary Da de baja un proveedor
// @Tags proveedores
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del proveedor"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/suppliers/{id} [delete]
func (h *ProveedoresHandler) Eliminar(c *gin.Context) {
	id, ok := uuidParam(c, "id", apierror.CodeSupplierNotFound)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), currentUser(c), id); err != nil {
		respondError(c, err, apierror.CodeInternal)
		return
	}
	respondOK(c, http.StatusOK, nil)
}
