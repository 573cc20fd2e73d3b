package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pedido is an order ticket bound to the cash session it was created in.
// Status: "abierto" | "cerrado"; PrepStatus: "abierto" | "en_preparacion" | "preparado".
type Pedido struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CashSessionID uuid.UUID       `gorm:"type:uuid;index;not null" json:"cash_session_id"`
	OrderNumber   int             `gorm:"not null" json:"order_number"`
	Status        string          `gorm:"type:varchar(20);not null" json:"status"`
	PrepStatus    string          `gorm:"type:varchar(20);not null" json:"prep_status"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total"`
	// WasModified flags an item edit the kitchen has not acknowledged yet
	WasModified    bool       `gorm:"not null;default:false" json:"was_modified"`
	ItemsUpdatedAt *time.Time `json:"items_updated_at"`
	PrepStartedAt  *time.Time `json:"prep_started_at"`
	PrepDoneAt     *time.Time `json:"prep_done_at"`
	SaleID         *uuid.UUID `gorm:"type:uuid" json:"sale_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	ClosedAt       *time.Time `json:"closed_at"`

	Items []PedidoItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (Pedido) TableName() string { return "orders" }

func (p *Pedido) Abierto() bool { return p.Status == PedidoAbierto }

// PedidoItem lines are replaced as a whole when the order is edited.
type PedidoItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OrderID     uuid.UUID       `gorm:"type:uuid;index;not null" json:"order_id"`
	ProductID   *uuid.UUID      `gorm:"type:uuid" json:"product_id"`
	Description string          `gorm:"not null;default:''" json:"description"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Position    int             `gorm:"not null;default:0" json:"-"`

	ProductName string `gorm:"->;-:migration" json:"product_name,omitempty"`
}

func (PedidoItem) TableName() string { return "order_items" }

// Subtotal is unit_price × quantity.
func (i PedidoItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
