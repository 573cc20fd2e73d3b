package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta is an immutable completed sale. ShiftNumber is a snapshot of the
// session's shift at creation time.
type Venta struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null" json:"user_id"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	PaymentMethod string          `gorm:"type:varchar(20);not null" json:"payment_method"`
	CashSessionID uuid.UUID       `gorm:"type:uuid;index;not null" json:"cash_session_id"`
	ShiftNumber   int             `gorm:"not null" json:"shift_number"`
	OrderID       *uuid.UUID      `gorm:"type:uuid" json:"order_id"`
	CreatedAt     time.Time       `json:"created_at"`

	Items []VentaItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`

	UserName     string `gorm:"->;-:migration" json:"user_name,omitempty"`
	CustomerName string `gorm:"->;-:migration" json:"customer_name,omitempty"`
}

func (Venta) TableName() string { return "sales" }

type VentaItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SaleID      uuid.UUID       `gorm:"type:uuid;index;not null" json:"sale_id"`
	ProductID   *uuid.UUID      `gorm:"type:uuid" json:"product_id"`
	Description string          `gorm:"not null;default:''" json:"description"`
	Qty         int             `gorm:"not null" json:"qty"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Position    int             `gorm:"not null;default:0" json:"-"`

	ProductName string `gorm:"->;-:migration" json:"product_name,omitempty"`
}

func (VentaItem) TableName() string { return "sale_items" }

// Subtotal is price × qty.
func (i VentaItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Qty)))
}
