package dto

import "gastropos/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CrearUsuarioRequest struct {
	Email      string  `json:"email"       validate:"omitempty,email"`
	FullName   string  `json:"full_name"   validate:"max=150"`
	Password   string  `json:"password"    validate:"omitempty,min=6"`
	Role       string  `json:"role"        validate:"omitempty,oneof=admin cajero cocina mozo"`
	EmployeeID *string `json:"employee_id" validate:"omitempty,uuid"`
}

type ActualizarUsuarioRequest struct {
	FullName   *string `json:"full_name"   validate:"omitempty,min=2,max=150"`
	Role       *string `json:"role"        validate:"omitempty,oneof=admin cajero cocina mozo"`
	Password   *string `json:"password"    validate:"omitempty,min=6"`
	EmployeeID *string `json:"employee_id" validate:"omitempty,uuid"`
	Active     *bool   `json:"active"`
}

// UsuarioDesdeEmpleadoRequest creates a login for an existing employee.
type UsuarioDesdeEmpleadoRequest struct {
	EmployeeID string `json:"employee_id" validate:"omitempty,uuid"`
	Email      string `json:"email"       validate:"omitempty,email"`
	Password   string `json:"password"    validate:"omitempty,min=6"`
	Role       string `json:"role"        validate:"omitempty,oneof=admin cajero cocina mozo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID         string          `json:"id"`
	Email      string          `json:"email"`
	FullName   string          `json:"full_name"`
	Role       string          `json:"role"`
	EmployeeID *string         `json:"employee_id"`
	Active     bool            `json:"active"`
	Employee   *model.Empleado `json:"employee,omitempty"`
}

type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresIn int             `json:"expires_in"` // seconds
	User      UsuarioResponse `json:"user"`
}

// UsuarioToResponse strips the password hash.
func UsuarioToResponse(u *model.Usuario) UsuarioResponse {
	r := UsuarioResponse{
		ID:       u.ID.String(),
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
		Active:   u.Active,
		Employee: u.Employee,
	}
	if u.EmployeeID != nil {
		s := u.EmployeeID.String()
		r.EmployeeID = &s
	}
	return r
}
