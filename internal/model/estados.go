package model

// Cash session status.
const (
	CajaAbierta = "abierta"
	CajaCerrada = "cerrada"
)

// Order status. An order only becomes cerrado through checkout.
const (
	PedidoAbierto = "abierto"
	PedidoCerrado = "cerrado"
)

// Kitchen preparation status, forward only: abierto → en_preparacion → preparado.
const (
	PrepSinIniciar    = "abierto"
	PrepEnPreparacion = "en_preparacion"
	PrepPreparado     = "preparado"
)

// PrepRank orders preparation states; unknown states rank -1.
func PrepRank(s string) int {
	switch s {
	case PrepSinIniciar:
		return 0
	case PrepEnPreparacion:
		return 1
	case PrepPreparado:
		return 2
	}
	return -1
}

// Cash movement types.
const (
	MovimientoIngreso = "ingreso"
	MovimientoEgreso  = "egreso"
	MovimientoVenta   = "venta"
)

// Payment methods.
const (
	PagoEfectivo      = "efectivo"
	PagoQR            = "qr"
	PagoDebito        = "debito"
	PagoCredito       = "credito"
	PagoTransferencia = "transferencia"
)

var metodosPago = map[string]bool{
	PagoEfectivo: true, PagoQR: true, PagoDebito: true, PagoCredito: true, PagoTransferencia: true,
}

func MetodoPagoValido(m string) bool { return metodosPago[m] }

// Roles.
const (
	RolAdmin  = "admin"
	RolCajero = "cajero"
	RolCocina = "cocina"
	RolMozo   = "mozo"
)

var roles = map[string]bool{RolAdmin: true, RolCajero: true, RolCocina: true, RolMozo: true}

func RolValido(r string) bool { return roles[r] }

// Invoice types and tax conditions.
const (
	FacturaA = "A"
	FacturaB = "B"

	IVAResponsableInscripto = "RI"
	IVAConsumidorFinal      = "CF"

	ConsumidorFinal  = "Consumidor Final"
	CondicionContado = "Contado"
)

// Employee status.
const (
	EmpleadoActivo   = "activo"
	EmpleadoInactivo = "inactivo"
)
