package dto

// ProveedorRequest is used for both create and update. On update every field
// is written, so clients send the full record.
type ProveedorRequest struct {
	RazonSocial  string  `json:"razon_social" validate:"max=200"`
	CUIT         string  `json:"cuit"         validate:"max=20"`
	IIBB         *string `json:"iibb"`
	CondicionIVA *string `json:"condicion_iva"`
	Telefono     *string `json:"telefono"`
	Email        *string `json:"email"        validate:"omitempty,email"`
	Direccion    *string `json:"direccion"`
	Localidad    *string `json:"localidad"`
	Provincia    *string `json:"provincia"`
	Contacto     *string `json:"contacto"`
	Notas        *string `json:"notas"`
}
