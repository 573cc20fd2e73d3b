package handler

import (
	"net/http"

	"gastropos/internal/apierror"
	"gastropos/internal/dto"
	"gastropos/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// Crear godoc
// @Summary Crea un producto de la carta
// @Tags productos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearProductoRequest true "Producto"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /v1/products [post]
func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req, apierror.CodeMissingFields) {
		return
	}
	p, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, apierror.CodeInternal)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"product": p})
}

// Listar godoc
// @Summary Lista productos activos
// @Tags productos
// @Produce json
// @Security BearerAuth
// @Param category query string false "Categoria"
// @Param search query string false "Busqueda por nombre o SKU"
// @Success 200 {object} map[string]interface{}
// @Router /v1/products [get]
func (h *ProductosHandler) Listar(c *gin.Context) {
	var filter dto.ProductoFilter
	if !bindQuery(c, &filter) {
		return
	}
	items, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, apierror.CodeDBQuery)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"items": nonNil(items)})
}

// ObtenerPorID godoc
// @Summary Devuelve un producto
// @Tags productos
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del producto"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/products/{id} [get]
func (h *ProductosHandler) ObtenerPorID(c *gin.Context) {
	id, ok := uuidParam(c, "id", apierror.CodeProductNotFound)
	if !ok {
		return
	}
	p, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, apierror.CodeDBQuery)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"product": p})
}

// Actualizar godoc
// @Summary Actualiza un producto
// @Tags productos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del producto"
// @Param body body dto.ActualizarProductoRequest true "Cambios"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/products/{id} [put]
func (h *ProductosHandler) Actualizar(c *gin.Context) {
	id, ok := uuidParam(c, "id", apierror.CodeProductNotFound)
	if !ok {
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req, apierror.CodeMissingFields) {
		return
	}
	p, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, apierror.CodeInternal)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"product": p})
}

// Desactivar godoc
// @Summary Desactiva un producto (soft delete)
// @Tags productos
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del producto"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/products/{id} [delete]
func (h *ProductosHandler) Desactivar(c *gin.Context) {
	id, ok := uuidParam(c, "id", apierror.CodeProductNotFound)
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		respondError(c, err, apierror.CodeInternal)
		return
	}
	respondOK(c, http.StatusOK, nil)
}
