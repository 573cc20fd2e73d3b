package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Comprobante is a locally numbered A/B invoice for a sale. The customer
// fields are a snapshot taken at issue time.
type Comprobante struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SaleID              uuid.UUID       `gorm:"type:uuid;index;not null" json:"sale_id"`
	CustomerID          *uuid.UUID      `gorm:"type:uuid" json:"customer_id"`
	TipoComprobante     string          `gorm:"type:varchar(1);not null" json:"tipo_comprobante"`
	PuntoVenta          int             `gorm:"not null" json:"punto_venta"`
	NumeroComprobante   int64           `gorm:"not null" json:"numero_comprobante"`
	Subtotal            decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	IVA                 decimal.Decimal `gorm:"column:iva;type:decimal(12,2);not null" json:"iva"`
	Total               decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	CondicionVenta      string          `gorm:"not null" json:"condicion_venta"`
	ClienteRazonSocial  string          `gorm:"not null" json:"cliente_razon_social"`
	ClienteDocumento    *string         `json:"cliente_documento"`
	ClienteDireccion    *string         `json:"cliente_direccion"`
	ClienteCondicionIVA string          `gorm:"column:cliente_condicion_iva;not null" json:"cliente_condicion_iva"`
	ClienteEmail        *string         `json:"cliente_email"`
	CreatedBy           uuid.UUID       `gorm:"type:uuid;not null" json:"created_by"`
	FechaEmision        time.Time       `gorm:"not null" json:"fecha_emision"`
	// PDFPath is relative to PDF_STORAGE_PATH; nil until the worker renders it
	PDFPath     *string `gorm:"column:pdf_path" json:"pdf_path"`
	PDFAttempts int     `gorm:"column:pdf_attempts;not null;default:0" json:"-"`
	PDFError    *string `gorm:"column:pdf_error" json:"-"`

	Items []VentaItem `gorm:"-" json:"items,omitempty"`
}

func (Comprobante) TableName() string { return "invoices" }

// Numero formats the invoice as PPPP-NNNNNNNN.
func (c *Comprobante) Numero() string {
	return formatNumero(c.PuntoVenta, c.NumeroComprobante)
}
