package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// MontoAperturaRequest sets the opening float of a session.
type MontoAperturaRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

// CerrarCajaRequest carries the counted cash. A missing amount is CLOSING_REQUIRED.
type CerrarCajaRequest struct {
	ClosingAmount *decimal.Decimal `json:"closing_amount"`
}

type MovimientoManualRequest struct {
	Type       string           `json:"type"        validate:"omitempty,oneof=ingreso egreso"`
	Amount     *decimal.Decimal `json:"amount"`
	Reference  string           `json:"reference"   validate:"max=255"`
	SupplierID *string          `json:"supplier_id" validate:"omitempty,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AbrirCajaResponse struct {
	ID          string `json:"id"`
	ShiftNumber int    `json:"shift_number"`
}

type CerrarCajaResponse struct {
	ID         string          `json:"id"`
	Difference decimal.Decimal `json:"difference"`
}
