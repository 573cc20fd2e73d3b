package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SesionCaja is one cash-drawer shift.
// Status: "abierta" | "cerrada". At most one row is abierta at a time.
type SesionCaja struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OpeningAmount decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0" json:"opening_amount"`
	ClosingAmount *decimal.Decimal `gorm:"type:decimal(12,2)" json:"closing_amount"`
	// Difference is closing − opening, set once on close
	Difference  *decimal.Decimal `gorm:"type:decimal(12,2)" json:"difference"`
	Status      string           `gorm:"type:varchar(20);not null" json:"status"`
	ShiftNumber int              `gorm:"not null" json:"shift_number"`
	// ShiftDate is the business day (configured zone) the shift number belongs to
	ShiftDate string     `gorm:"type:varchar(10);not null" json:"shift_date"`
	OpenedBy  uuid.UUID  `gorm:"type:uuid;not null" json:"opened_by"`
	ClosedBy  *uuid.UUID `gorm:"type:uuid" json:"closed_by"`
	OpenedAt  time.Time  `json:"opened_at"`
	ClosedAt  *time.Time `json:"closed_at"`

	OpenedByName string `gorm:"->;-:migration" json:"opened_by_name,omitempty"`
	ClosedByName string `gorm:"->;-:migration" json:"closed_by_name,omitempty"`
}

func (SesionCaja) TableName() string { return "cash_sessions" }

func (s *SesionCaja) Abierta() bool { return s.Status == CajaAbierta }

// MovimientoCaja is an append-only ledger entry of a session.
// Type: "ingreso" | "egreso" | "venta". Amount is always positive.
type MovimientoCaja struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SessionID  uuid.UUID       `gorm:"type:uuid;index;not null" json:"session_id"`
	Type       string          `gorm:"type:varchar(20);not null" json:"type"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Reference  string          `gorm:"not null;default:''" json:"reference"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null" json:"user_id"`
	SupplierID *uuid.UUID      `gorm:"type:uuid" json:"supplier_id"`
	// SaleID is set on venta rows
	SaleID    *uuid.UUID `gorm:"type:uuid;index" json:"sale_id"`
	CreatedAt time.Time  `json:"created_at"`

	UserName     string `gorm:"->;-:migration" json:"user_name,omitempty"`
	SupplierName string `gorm:"->;-:migration" json:"supplier_name,omitempty"`
	CustomerName string `gorm:"->;-:migration" json:"customer_name,omitempty"`
}

func (MovimientoCaja) TableName() string { return "cash_movements" }
