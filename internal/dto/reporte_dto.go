package dto

import "gastropos/internal/model"

// ReporteCajaFilter is bound from the query string of GET /v1/reports/cash.
type ReporteCajaFilter struct {
	From  string `form:"from"`
	To    string `form:"to"`
	Shift int    `form:"shift"`
}

type ReportePedidosFilter struct {
	From       string `form:"from"`
	To         string `form:"to"`
	Status     string `form:"status"`
	PrepStatus string `form:"prep_status"`
}

// ReporteCajaItem groups everything recorded against one session.
type ReporteCajaItem struct {
	Cash      model.SesionCaja       `json:"cash"`
	Sales     []model.Venta          `json:"sales"`
	Movements []model.MovimientoCaja `json:"movements"`
	Invoices  []model.Comprobante    `json:"invoices"`
}

// PedidoConTiempos is an order plus its timing metrics in whole minutes.
type PedidoConTiempos struct {
	model.Pedido
	ShiftNumber  int   `json:"shift_number"`
	LiveMinutes  int64 `json:"live_minutes"`
	PrepMinutes  int64 `json:"prep_minutes"`
	TotalMinutes int64 `json:"total_minutes"`
}
