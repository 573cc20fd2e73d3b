package handler

import (
	"net/http"

	"gastropos/internal/apierror"
	"gastropos/internal/dto"
	"gastropos/internal/service"

	"github.com/gin-gonic/gin"
)

type CajaHandler struct{ svc service.CajaService }

func NewCajaHandler(svc service.CajaService) *CajaHandler { return &CajaHandler{svc: svc} }

// Actual godoc
// @Summary Devuelve la sesion de caja abierta (o null)
// @Tags caja
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /v1/cash/current [get]
func (h *CajaHandler) Actual(c *gin.Context) {
	sesion, err := h.svc.Actual(c.Request.Context())
	if err != nil {
		respondError(c, err, apierror.CodeDBQuery)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"session": sesion})
}

// Abrir godoc
// @Summary Abre una nueva sesion de caja con monto inicial 0
// @Tags caja
// @Produce json
// @Security BearerAuth
// @Success 201 {object} dto.AbrirCajaResponse
// @Failure 400 {object} map[string]interface{}
// @Router /v1/cash/open [post]
func (h *CajaHandler) Abrir(c *gin.Context) {
	resp, err := h.svc.Abrir(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err, apierror.CodeInternal)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"id": resp.ID, "shift_number": resp.ShiftNumber})
}

// MontoApertura godoc
// @Summary Registra el monto de apertura contado
// @Tags caja
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de sesion"
// @Param body body dto.MontoAperturaRequest true "Monto de apertura"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/cash/opening/{id} [post]
func (h *CajaHandler) MontoApertura(c *gin.Context) {
	id, ok := uuidParam(c, "id", apierror.CodeCashNotFound)
	if !ok {
		return
	}
	var req dto.MontoAperturaRequest
	if !bindAndValidate(c, &req, apierror.CodeAmountRequired) {
		return
	}
	if err := h.svc.RegistrarMontoApertura(c.Request.Context(), id, req.Amount); err != nil {
		respondError(c, err, apierror.CodeInternal)
		return
	}
	respondOK(c, http.StatusOK, nil)
}

// Cerrar godoc
// @Summary Cierra la sesion de caja con el monto contado
// @Tags caja
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de sesion"
// @Param body body dto.CerrarCajaRequest true "Monto de cierre"
// @Success 200 {object} dto.CerrarCajaResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/cash/close/{id} [post]
func (h *CajaHandler) Cerrar(c *gin.Context) {
	id, ok := uuidParam(c, "id", apierror.CodeCashNotFound)
	if !ok {
		return
	}
	var req dto.CerrarCajaRequest
	if !bindAndValidate(c, &req, apierror.CodeClosingRequired) {
		return
	}
	resp, err := h.svc.Cerrar(c.Request.Context(), id, req.ClosingAmount, currentUser(c))
	if err != nil {
		respondError(c, err, apierror.CodeInternal)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"id": resp.ID, "difference": resp.Difference})
}

// MovimientoManual godoc
// @Summary Registra un ingreso o egreso manual en la caja abierta
// @Tags caja
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.MovimientoManualRequest true "Movimiento"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /v1/cash/movement/manual [post]
func (h *CajaHandler) MovimientoManual(c *gin.Context) {
	var req dto.MovimientoManualRequest
	if !bindAndValidate(c, &req, apierror.CodeAmountRequired) {
		return
	}
	mov, err := h.svc.RegistrarMovimiento(c.Request.Context(), currentUser(c), req)
	if err != nil {
		respondError(c, err, apierror.CodeInternal)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"id": mov.ID})
}

// Movimientos godoc
// @Summary Lista los movimientos de una sesion, mas recientes primero
// @Tags caja
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "ID de sesion"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/cash/movements/{sessionId} [get]
func (h *CajaHandler) Movimientos(c *gin.Context) {
	id, ok := uuidParam(c, "sessionId", apierror.CodeCashNotFound)
	if !ok {
		return
	}
	items, err := h.svc.ListarMovimientos(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, apierror.CodeDBQuery)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"items": nonNil(items)})
}

// nonNil renders nil slices as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
