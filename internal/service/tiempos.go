package service

import (
	"time"

	"gastropos/internal/dto"
	"gastropos/internal/model"
)

// conTiempos attaches live, prep and total minutes to an order as of now.
//
//	live  = now − created
//	prep  = prep_started → (prep_done when preparado, else now); 0 if never started
//	total = created → completion (closed_at, else prep_done when preparado), else now − created
func conTiempos(p model.Pedido, turno int, now time.Time) dto.PedidoConTiempos {
	out := dto.PedidoConTiempos{Pedido: p, ShiftNumber: turno}
	out.LiveMinutes = wholeMinutes(now.Sub(p.CreatedAt))

	if p.PrepStartedAt != nil {
		fin := now
		if p.PrepStatus == model.PrepPreparado && p.PrepDoneAt != nil {
			fin = *p.PrepDoneAt
		}
		out.PrepMinutes = wholeMinutes(fin.Sub(*p.PrepStartedAt))
	}

	switch {
	case p.ClosedAt != nil:
		out.TotalMinutes = wholeMinutes(p.ClosedAt.Sub(p.CreatedAt))
	case p.PrepStatus == model.PrepPreparado && p.PrepDoneAt != nil:
		out.TotalMinutes = wholeMinutes(p.PrepDoneAt.Sub(p.CreatedAt))
	default:
		out.TotalMinutes = out.LiveMinutes
	}
	return out
}
