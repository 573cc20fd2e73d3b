package handler

import (
	"net/http"

	"gastropos/internal/apierror"
	"gastropos/internal/dto"
	"gastropos/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// Crear godoc
// @Summary Alta de cliente para facturacion
// @Tags clientes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ClienteRequest true "Cliente"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /v1/customers [post]
func (h *ClientesHandler) Crear(c *gin.Context) {
	var req dto.ClienteRequest
	if !bindAndValidate(c, &req, apierror.CodeMissingRequired) {
		return
	}
	cli, err := h.svc.Crear(c.Request.Context(), currentUser(c), req)
	if err != nil {
		respondError(c, err, apierror.CodeInternal)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"customer": cli})
}

// Listar godoc
// @Summary Lista clientes
// @Tags clientes
// @Produce json
// @Security BearerAuth
// @Param search query string false "Razon social o documento"
// @Success 200 {object} map[string]interface{}
// @Router /v1/customers [get]
func (h *ClientesHandler) Listar(c *gin.Context) {
	var filter dto.ClienteFilter
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
// @Summary Devuelve un cliente
// @Tags clientes
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del cliente"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/customers/{id} [get]
func (h *ClientesHandler) ObtenerPorID(c *gin.Context) {
	id, ok := uuidParam(c, "id", apierror.CodeCustomerNotFound)
	if !ok {
		return
	}
	cli, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, apierror.CodeDBQuery)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"customer": cli})
}

// Actualizar godoc
// @Summary Actualiza un cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del cliente"
// @Param body body dto.ClienteRequest true "Cliente"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/customers/{id} [put]
func (h *ClientesHandler) Actualizar(c *gin.Context) {
	id, ok := uuidParam(c, "id", apierror.CodeCustomerNotFound)
	if !ok {
		return
	}
	var req dto.ClienteRequest
	if !bindAndValidate(c, &req, apierror.CodeMissingRequired) {
		return
	}
	cli, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, apierror.CodeInternal)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"customer": cli})
}
