package repository

import (
	"time"

	"gorm.io/gorm"
)

// Rango is a half-open time interval [Desde, Hasta). Nil bounds are open.
type Rango struct {
	Desde *time.Time
	Hasta *time.Time
}

func (r Rango) apply(q *gorm.DB, column string) *gorm.DB {
	if r.Desde != nil {
		q = q.Where(column+" >= ?", *r.Desde)
	}
	if r.Hasta != nil {
		q = q.Where(column+" < ?", *r.Hasta)
	}
	return q
}

// Contains reports whether t falls inside the interval.
func (r Rango) Contains(t time.Time) bool {
	if r.Desde != nil && t.Before(*r.Desde) {
		return false
	}
	if r.Hasta != nil && !t.Before(*r.Hasta) {
		return false
	}
	return true
}

type VentaFiltro struct {
	Rango
	Turno int
}

type SesionFiltro struct {
	Rango
	Turno int
}

type ComprobanteFiltro struct {
	Rango
	Tipo string
}

type PedidoReporteFiltro struct {
	Rango
	Status     string
	PrepStatus string
}
