package handler

import (
	"net/http"

	"gastropos/internal/apierror"
	"gastropos/internal/dto"
	"gastropos/internal/service"

	"github.com/gin-gonic/gin"
)

type VentasHandler struct{ svc service.VentaService }

func NewVentasHandler(svc service.VentaService) *VentasHandler { return &VentasHandler{svc: svc} }

// Registrar godoc
// @Summary Registra una venta directa en la caja abierta
// @Tags ventas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.RegistrarVentaRequest true "Venta"
// @Success 201 {object} dto.RegistrarVentaResponse
// @Failure 400 {object} map[string]interface{}
// @Router /v1/sales [post]
func (h *VentasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVentaRequest
	if !bindAndValidate(c, &req, apierror.CodeInvalidItem) {
		return
	}
	resp, err := h.svc.RegistrarVenta(c.Request.Context(), currentUser(c), req)
	if err != nil {
		respondError(c, err, apierror.CodeSaleError)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{
		"sale_id":         resp.SaleID,
		"total":           resp.Total,
		"cash_session_id": resp.CashSessionID,
		"shift_number":    resp.ShiftNumber,
	})
}

// Listar godoc
// @Summary Lista ventas por rango de fechas y turno
// @Tags ventas
// @Produce json
// @Security BearerAuth
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Param shift query int false "Numero de turno"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /v1/sales [get]
func (h *VentasHandler) Listar(c *gin.Context) {
	var filter dto.VentaFilter
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

// Resumen godoc
// @Summary Totales de ventas por medio de pago
// @Tags ventas
// @Produce json
// @Security BearerAuth
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Param shift query int false "Numero de turno"
// @Success 200 {object} dto.ResumenVentasResponse
// @Router /v1/sales/summary [get]
func (h *VentasHandler) Resumen(c *gin.Context) {
	var filter dto.VentaFilter
	if !bindQuery(c, &filter) {
		return
	}
	r, err := h.svc.Resumen(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, apierror.CodeDBQuery)
		return
	}
	respondOK(c, http.StatusOK, gin.H{
		"ventas":        r.Ventas,
		"total":         r.Total,
		"cant_efectivo": r.CantEfectivo,
		"cant_qr":       r.CantQR,
		"por_metodo":    r.PorMetodo,
	})
}
