package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type EmitirComprobanteRequest struct {
	SaleID          string  `json:"sale_id"          validate:"omitempty,uuid"`
	CustomerID      *string `json:"customer_id"      validate:"omitempty,uuid"`
	TipoComprobante string  `json:"tipo_comprobante"`
	PuntoVenta      *int    `json:"punto_venta"      validate:"omitempty,min=1,max=99999"`
}

// ComprobanteFilter is bound from the query string of GET /v1/invoices.
type ComprobanteFilter struct {
	From string `form:"from"`
	To   string `form:"to"`
	Tipo string `form:"tipo"`
}
