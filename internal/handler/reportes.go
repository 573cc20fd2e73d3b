package handler

import (
	"fmt"
	"net/http"

	"gastropos/internal/apierror"
	"gastropos/internal/dto"
	"gastropos/internal/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// Caja godoc
// @Summary Reporte de caja: ventas, movimientos y comprobantes por sesion
// @Tags reportes
// @Produce json
// @Security BearerAuth
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Param shift query int false "Numero de turno"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /v1/reports/cash [get]
func (h *ReportesHandler) Caja(c *gin.Context) {
	var filter dto.ReporteCajaFilter
	if !bindQuery(c, &filter) {
		return
	}
	items, err := h.svc.Caja(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, apierror.CodeReportError)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"items": nonNil(items)})
}

// Pedidos godoc
// @Summary Reporte de pedidos con tiempos de preparacion
// @Tags reportes
// @Produce json
// @Security BearerAuth
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Param status query string false "abierto | cerrado"
// @Param prep_status query string false "abierto | en_preparacion | preparado"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /v1/reports/orders [get]
func (h *ReportesHandler) Pedidos(c *gin.Context) {
	var filter dto.ReportePedidosFilter
	if !bindQuery(c, &filter) {
		return
	}
	items, err := h.svc.Pedidos(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, apierror.CodeReportError)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"items": nonNil(items)})
}

// ExportarCaja godoc
// @Summary Exporta el reporte de caja como planilla XLSX
// @Tags reportes
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Param shift query int false "Numero de turno"
// @Success 200 {file} file
// @Failure 400 {object} map[string]interface{}
// @Router /v1/reports/cash/export [get]
func (h *ReportesHandler) ExportarCaja(c *gin.Context) {
	var filter dto.ReporteCajaFilter
	if !bindQuery(c, &filter) {
		return
	}
	data, err := h.svc.ExportarCaja(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, apierror.CodeReportError)
		return
	}
	name := "reporte_caja.xlsx"
	if filter.From != "" || filter.To != "" {
		name = fmt.Sprintf("reporte_caja_%s_%s.xlsx", filter.From, filter.To)
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, xlsxContentType, data)
}
