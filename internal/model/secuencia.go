package model

import "fmt"

// Secuencia is a named monotonic counter. Values are handed out by an
// upsert-increment inside the transaction that consumes them.
type Secuencia struct {
	Scope string `gorm:"primaryKey"`
	Value int64  `gorm:"not null"`
}

func (Secuencia) TableName() string { return "sequences" }

func ScopeTurno(fecha string) string { return "turno:" + fecha }

func ScopePedido(sessionID fmt.Stringer) string { return "pedido:" + sessionID.String() }

func ScopeComprobante(puntoVenta int, tipo string) string {
	return fmt.Sprintf("comprobante:%d:%s", puntoVenta, tipo)
}

func formatNumero(puntoVenta int, numero int64) string {
	return fmt.Sprintf("%04d-%08d", puntoVenta, numero)
}
