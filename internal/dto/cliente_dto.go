package dto

type ClienteRequest struct {
	RazonSocial     string  `json:"razon_social"     validate:"max=200"`
	Nombre          *string `json:"nombre"`
	Apellido        *string `json:"apellido"`
	TipoDocumento   string  `json:"tipo_documento"   validate:"omitempty,oneof=DNI CUIT CUIL PASAPORTE"`
	NumeroDocumento string  `json:"numero_documento" validate:"max=20"`
	CondicionIVA    string  `json:"condicion_iva"    validate:"omitempty,oneof=RI CF MT EX"`
	TipoCliente     string  `json:"tipo_cliente"     validate:"omitempty,oneof=Fisica Juridica"`
	Direccion       *string `json:"direccion"`
	Localidad       *string `json:"localidad"`
	Provincia       *string `json:"provincia"`
	CodigoPostal    *string `json:"codigo_postal"`
	Telefono        *string `json:"telefono"`
	Email           *string `json:"email"            validate:"omitempty,email"`
}

type ClienteFilter struct {
	Search string `form:"search"`
}
