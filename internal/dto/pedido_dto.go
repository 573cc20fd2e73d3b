package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemPedidoRequest struct {
	ProductID   *string          `json:"product_id"  validate:"omitempty,uuid"`
	Description string           `json:"description" validate:"max=255"`
	Quantity    int              `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	Total       *decimal.Decimal `json:"total"`
}

// CrearPedidoRequest: CashSessionID defaults to the current open session.
type CrearPedidoRequest struct {
	CashSessionID *string             `json:"cash_session_id" validate:"omitempty,uuid"`
	Items         []ItemPedidoRequest `json:"items"           validate:"dive"`
	Total         *decimal.Decimal    `json:"total"`
}

// ActualizarPedidoRequest: a nil field is left untouched; a non-nil Items
// replaces every line of the order.
type ActualizarPedidoRequest struct {
	Status     *string              `json:"status"`
	PrepStatus *string              `json:"prep_status"`
	Total      *decimal.Decimal     `json:"total"`
	Items      *[]ItemPedidoRequest `json:"items" validate:"omitempty,dive"`
}

type PrepRequest struct {
	PrepStatus string `json:"prep_status"`
}

type CobrarPedidoRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// PedidoFilter is bound from the query string of GET /v1/cash/:cashId/orders.
type PedidoFilter struct {
	Status string `form:"status"`
}

type CocinaFilter struct {
	PrepStatus string `form:"prep_status"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CrearPedidoResponse struct {
	OrderID     string `json:"order_id"`
	OrderNumber int    `json:"order_number"`
}

type CobrarPedidoResponse struct {
	SaleID string          `json:"sale_id"`
	Total  decimal.Decimal `json:"total"`
}
