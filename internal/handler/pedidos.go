package handler

import (
	"net/http"

	"gastropos/internal/apierror"
	"gastropos/internal/dto"
	"gastropos/internal/model"
	"gastropos/internal/service"

	"github.com/gin-gonic/gin"
)

type PedidosHandler struct {
	svc    service.PedidoService
	ventas service.VentaService
}

func NewPedidosHandler(svc service.PedidoService, ventas service.VentaService) *PedidosHandler {
	return &PedidosHandler{svc: svc, ventas: ventas}
}

// ListarPorSesion godoc
// @Summary Lista los pedidos de una sesion de caja
// @Tags pedidos
// @Produce json
// @Security BearerAuth
// @Param cashId path string true "ID de sesion"
// @Param status query string false "activos | abierto | cerrado"
// @Success 200 {object} map[string]interface{}
// @Router /v1/cash/{cashId}/orders [get]
func (h *PedidosHandler) ListarPorSesion(c *gin.Context) {
	id, ok := uuidParam(c, "cashId", apierror.CodeCashNotFound)
	if !ok {
		return
	}
	var filter dto.PedidoFilter
	if !bindQuery(c, &filter) {
		return
	}
	items, err := h.svc.ListarPorSesion(c.Request.Context(), id, filter.Status)
	if err != nil {
		respondError(c, err, apierror.CodeDBQuery)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"items": nonNil(items)})
}

// Cocina godoc
// @Summary Pedidos de la sesion actual para la pantalla de cocina
// @Tags pedidos
// @Produce json
// @Security BearerAuth
// @Param prep_status query string false "abierto | en_preparacion | preparado"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /v1/orders/kitchen [get]
func (h *PedidosHandler) Cocina(c *gin.Context) {
	var filter dto.CocinaFilter
	if !bindQuery(c, &filter) {
		return
	}
	items, err := h.svc.Cocina(c.Request.Context(), filter.PrepStatus)
	if err != nil {
		respondError(c, err, apierror.CodeDBQuery)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"items": nonNil(items)})
}

// Crear godoc
// @Summary Crea un pedido en la sesion indicada o en la actual
// @Tags pedidos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearPedidoRequest true "Pedido"
// @Success 201 {object} dto.CrearPedidoResponse
// @Failure 400 {object} map[string]interface{}
// @Router /v1/orders [post]
func (h *PedidosHandler) Crear(c *gin.Context) {
	var req dto.CrearPedidoRequest
	if !bindAndValidate(c, &req, apierror.CodeInvalidItem) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, apierror.CodeOrderError)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"order_id": resp.OrderID, "order_number": resp.OrderNumber})
}

// Obtener godoc
// @Summary Devuelve un pedido con sus items
// @Tags pedidos
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del pedido"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/orders/{id} [get]
func (h *PedidosHandler) Obtener(c *gin.Context) {
	id, ok := uuidParam(c, "id", apierror.CodeOrderNotFound)
	if !ok {
		return
	}
	pedido, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, apierror.CodeDBQuery)
		return
	}
	items := nonNil(pedido.Items)
	pedido.Items = nil
	respondOK(c, http.StatusOK, gin.H{"order": pedido, "items": items})
}

// Actualizar godoc
// @Summary Actualiza estado, total o items de un pedido abierto
// @Tags pedidos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del pedido"
// @Param body body dto.ActualizarPedidoRequest true "Cambios"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/orders/{id} [patch]
func (h *PedidosHandler) Actualizar(c *gin.Context) {
	id, ok := uuidParam(c, "id", apierror.CodeOrderNotFound)
	if !ok {
		return
	}
	var req dto.ActualizarPedidoRequest
	if !bindAndValidate(c, &req, apierror.CodeInvalidItem) {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), id, req); err != nil {
		respondError(c, err, apierror.CodeOrderError)
		return
	}
	respondOK(c, http.StatusOK, nil)
}

// Preparacion godoc
// @Summary Avanza el estado de preparacion de un pedido
// @Tags pedidos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del pedido"
// @Param body body dto.PrepRequest true "Estado de preparacion"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/orders/{id}/prep [patch]
func (h *PedidosHandler) Preparacion(c *gin.Context) {
	id, ok := uuidParam(c, "id", apierror.CodeOrderNotFound)
	if !ok {
		return
	}
	var req dto.PrepRequest
	if !bindAndValidate(c, &req, apierror.CodeInvalidPrepStatus) {
		return
	}
	if err := h.svc.ActualizarPreparacion(c.Request.Context(), id, req.PrepStatus); err != nil {
		respondError(c, err, apierror.CodeOrderError)
		return
	}
	respondOK(c, http.StatusOK, nil)
}

// Cobrar godoc
// @Summary Cobra un pedido abierto y lo cierra
// @Tags pedidos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del pedido"
// @Param body body dto.CobrarPedidoRequest false "Medio de pago (efectivo por defecto)"
// @Success 200 {object} dto.CobrarPedidoResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/orders/{id}/charge [post]
func (h *PedidosHandler) Cobrar(c *gin.Context) {
	id, ok := uuidParam(c, "id", apierror.CodeOrderNotFound)
	if !ok {
		return
	}
	req := dto.CobrarPedidoRequest{PaymentMethod: model.PagoEfectivo}
	if !bindAndValidate(c, &req, apierror.CodeInvalidPayment) {
		return
	}
	resp, err := h.ventas.CobrarPedido(c.Request.Context(), currentUser(c), id, req.PaymentMethod)
	if err != nil {
		respondError(c, err, apierror.CodeChargeError)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"sale_id": resp.SaleID, "total": resp.Total})
}
