package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is a catalog entry. Its price is only a default for order lines;
// direct sales re-price catalog lines from it.
type Producto struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string          `gorm:"index;not null" json:"name"`
	Category  string          `gorm:"not null;default:''" json:"category"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	SKU       *string         `gorm:"column:sku" json:"sku"`
	Active    bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (Producto) TableName() string { return "products" }
