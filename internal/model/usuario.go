package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario is a system user. Role: "admin" | "cajero" | "cocina" | "mozo".
type Usuario struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	FullName     string     `gorm:"not null" json:"full_name"`
	Role         string     `gorm:"type:varchar(20);not null" json:"role"`
	EmployeeID   *uuid.UUID `gorm:"type:uuid" json:"employee_id"`
	Active       bool       `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Employee *Empleado `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (Usuario) TableName() string { return "users" }
