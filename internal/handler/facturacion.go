package handler

import (
	"net/http"
	"path/filepath"

	"gastropos/internal/apierror"
	"gastropos/internal/dto"
	"gastropos/internal/service"

	"github.com/gin-gonic/gin"
)

type FacturacionHandler struct{ svc service.FacturacionService }

func NewFacturacionHandler(svc service.FacturacionService) *FacturacionHandler {
	return &FacturacionHandler{svc: svc}
}

// Emitir godoc
// @Summary Emite una factura A o B para una venta
// @Description El numero se asigna por punto de venta y tipo. El PDF se genera en segundo plano.
// @Tags facturacion
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.EmitirComprobanteRequest true "Comprobante"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/invoices [post]
func (h *FacturacionHandler) Emitir(c *gin.Context) {
	var req dto.EmitirComprobanteRequest
	if !bindAndValidate(c, &req, apierror.CodeMissingRequired) {
		return
	}
	comp, err := h.svc.Emitir(c.Request.Context(), currentUser(c), req)
	if err != nil {
		respondError(c, err, apierror.CodeInvoiceError)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"invoice": comp})
}

// Listar godoc
// @Summary Lista comprobantes emitidos
// @Tags facturacion
// @Produce json
// @Security BearerAuth
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Param tipo query string false "A | B"
// @Success 200 {object} map[string]interface{}
// @Router /v1/invoices [get]
func (h *FacturacionHandler) Listar(c *gin.Context) {
	var filter dto.ComprobanteFilter
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

// Obtener godoc
// @Summary Devuelve un comprobante con los items de la venta
// @Tags facturacion
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del comprobante"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/invoices/{id} [get]
func (h *FacturacionHandler) Obtener(c *gin.Context) {
	id, ok := uuidParam(c, "id", apierror.CodeInvoiceNotFound)
	if !ok {
		return
	}
	comp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, apierror.CodeDBQuery)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"invoice": comp})
}

// PorVenta godoc
// @Summary Devuelve el ultimo comprobante emitido para una venta
// @Tags facturacion
// @Produce json
// @Security BearerAuth
// @Param saleId path string true "ID de la venta"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/invoices/sale/{saleId} [get]
func (h *FacturacionHandler) PorVenta(c *gin.Context) {
	id, ok := uuidParam(c, "saleId", apierror.CodeInvoiceNotFound)
	if !ok {
		return
	}
	comp, err := h.svc.ObtenerPorVenta(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, apierror.CodeDBQuery)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"invoice": comp})
}

// PDF godoc
// @Summary Descarga el PDF del comprobante
// @Tags facturacion
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "ID del comprobante"
// @Success 200 {file} file
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /v1/invoices/{id}/pdf [get]
func (h *FacturacionHandler) PDF(c *gin.Context) {
	id, ok := uuidParam(c, "id", apierror.CodeInvoiceNotFound)
	if !ok {
		return
	}
	path, err := h.svc.PDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, apierror.CodePDFError)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}
