package model

import (
	"time"

	"github.com/google/uuid"
)

// Proveedor is a supplier. Rows are deactivated, never deleted, so manual
// movements keep a valid reference.
type Proveedor struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RazonSocial  string     `gorm:"not null" json:"razon_social"`
	CUIT         string     `gorm:"column:cuit;not null" json:"cuit"`
	IIBB         *string    `gorm:"column:iibb" json:"iibb"`
	CondicionIVA *string    `gorm:"column:condicion_iva" json:"condicion_iva"`
	Telefono     *string    `json:"telefono"`
	Email        *string    `json:"email"`
	Direccion    *string    `json:"direccion"`
	Localidad    *string    `json:"localidad"`
	Provincia    *string    `json:"provincia"`
	Contacto     *string    `json:"contacto"`
	Notas        *string    `json:"notas"`
	Active       bool       `gorm:"not null;default:true" json:"active"`
	CreatedBy    uuid.UUID  `gorm:"type:uuid;not null" json:"created_by"`
	UpdatedBy    *uuid.UUID `gorm:"type:uuid" json:"updated_by"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Proveedor) TableName() string { return "suppliers" }
