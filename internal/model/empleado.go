package model

import (
	"time"

	"github.com/google/uuid"
)

// Empleado is an HR record; a Usuario may be linked to one.
type Empleado struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Apellido     string     `gorm:"not null" json:"apellido"`
	Nombre       string     `gorm:"not null" json:"nombre"`
	DNI          string     `gorm:"column:dni;not null" json:"dni"`
	CUIL         string     `gorm:"column:cuil;not null" json:"cuil"`
	FechaNac     *string    `gorm:"type:varchar(10)" json:"fecha_nac"`
	Telefono     *string    `json:"telefono"`
	Email        *string    `json:"email"`
	Direccion    *string    `json:"direccion"`
	Localidad    *string    `json:"localidad"`
	Provincia    *string    `json:"provincia"`
	Puesto       *string    `json:"puesto"`
	FechaIngreso *string    `gorm:"type:varchar(10)" json:"fecha_ingreso"`
	Estado       string     `gorm:"type:varchar(20);not null" json:"estado"`
	CreatedBy    uuid.UUID  `gorm:"type:uuid;not null" json:"created_by"`
	UpdatedBy    *uuid.UUID `gorm:"type:uuid" json:"updated_by"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Empleado) TableName() string { return "employees" }

func (e *Empleado) NombreCompleto() string { return e.Nombre + " " + e.Apellido }
