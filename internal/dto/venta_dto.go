package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ItemVentaRequest is one line of a direct sale. Catalog lines (Manual=false
// with a ProductID) are priced from the catalog; manual lines keep Price.
type ItemVentaRequest struct {
	ProductID   *string         `json:"product_id"  validate:"omitempty,uuid"`
	Description string          `json:"description" validate:"max=255"`
	Qty         int             `json:"qty"`
	Price       decimal.Decimal `json:"price"`
	Manual      bool            `json:"manual"`
}

type RegistrarVentaRequest struct {
	Items         []ItemVentaRequest `json:"items"          validate:"dive"`
	PaymentMethod string             `json:"payment_method"`
}

// VentaFilter is bound from the query string of GET /v1/sales and /v1/sales/summary.
type VentaFilter struct {
	From  string `form:"from"`
	To    string `form:"to"`
	Shift int    `form:"shift"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RegistrarVentaResponse struct {
	SaleID        string          `json:"sale_id"`
	Total         decimal.Decimal `json:"total"`
	CashSessionID string          `json:"cash_session_id"`
	ShiftNumber   int             `json:"shift_number"`
}

type ResumenVentasResponse struct {
	Ventas       int64                      `json:"ventas"`
	Total        decimal.Decimal            `json:"total"`
	CantEfectivo int64                      `json:"cant_efectivo"`
	CantQR       int64                      `json:"cant_qr"`
	PorMetodo    map[string]decimal.Decimal `json:"por_metodo"`
}
