package dto

type EmpleadoRequest struct {
	Apellido     string  `json:"apellido"      validate:"max=100"`
	Nombre       string  `json:"nombre"        validate:"max=100"`
	DNI          string  `json:"dni"           validate:"max=15"`
	CUIL         string  `json:"cuil"          validate:"max=20"`
	FechaNac     *string `json:"fecha_nac"     validate:"omitempty,datetime=2006-01-02"`
	Telefono     *string `json:"telefono"`
	Email        *string `json:"email"         validate:"omitempty,email"`
	Direccion    *string `json:"direccion"`
	Localidad    *string `json:"localidad"`
	Provincia    *string `json:"provincia"`
	Puesto       *string `json:"puesto"`
	FechaIngreso *string `json:"fecha_ingreso" validate:"omitempty,datetime=2006-01-02"`
	Estado       string  `json:"estado"        validate:"omitempty,oneof=activo inactivo"`
}
