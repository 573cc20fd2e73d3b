package dto

import "github.com/shopspring/decimal"

type CrearProductoRequest struct {
	Name     string          `json:"name"     validate:"required,min=1,max=120"`
	Category string          `json:"category" validate:"max=60"`
	Price    decimal.Decimal `json:"price"    validate:"min=0"`
	SKU      *string         `json:"sku"      validate:"omitempty,max=40"`
}

type ActualizarProductoRequest struct {
	Name     *string          `json:"name"     validate:"omitempty,min=1,max=120"`
	Category *string          `json:"category" validate:"omitempty,max=60"`
	Price    *decimal.Decimal `json:"price"`
	SKU      *string          `json:"sku"      validate:"omitempty,max=40"`
	Active   *bool            `json:"active"`
}

type ProductoFilter struct {
	Category string `form:"category"`
	Search   string `form:"search"`
}
