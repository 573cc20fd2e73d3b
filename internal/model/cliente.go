package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Cliente is an invoice recipient. NumeroDocumento is unique.
type Cliente struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RazonSocial     string    `gorm:"not null;default:''" json:"razon_social"`
	Nombre          *string   `json:"nombre"`
	Apellido        *string   `json:"apellido"`
	TipoDocumento   string    `gorm:"not null" json:"tipo_documento"`
	NumeroDocumento string    `gorm:"uniqueIndex;not null" json:"numero_documento"`
	CondicionIVA    string    `gorm:"column:condicion_iva;not null" json:"condicion_iva"`
	TipoCliente     string    `gorm:"not null" json:"tipo_cliente"`
	Direccion       *string   `json:"direccion"`
	Localidad       *string   `json:"localidad"`
	Provincia       *string   `json:"provincia"`
	CodigoPostal    *string   `json:"codigo_postal"`
	Telefono        *string   `json:"telefono"`
	Email           *string   `json:"email"`
	CreatedBy       uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Cliente) TableName() string { return "customers" }

// NombreFactura is the name printed on invoices: razon social, else
// "nombre apellido", else Consumidor Final.
func (c *Cliente) NombreFactura() string {
	if c == nil {
		return ConsumidorFinal
	}
	if s := strings.TrimSpace(c.RazonSocial); s != "" {
		return s
	}
	var parts []string
	for _, p := range []*string{c.Nombre, c.Apellido} {
		if p != nil && strings.TrimSpace(*p) != "" {
			parts = append(parts, strings.TrimSpace(*p))
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return ConsumidorFinal
}
