package service

import (
	"context"
	"strings"
	"time"

	"gastropos/internal/apierror"
	"gastropos/internal/dto"
	"gastropos/internal/model"
	"gastropos/internal/repository"

	"github.com/google/uuid"
)

// ReporteService builds the read-only back-office reports.
type ReporteService interface {
	// Caja groups sales, movements and invoices per session, oldest first.
	Caja(ctx context.Context, filter dto.ReporteCajaFilter) ([]dto.ReporteCajaItem, error)
	Pedidos(ctx context.Context, filter dto.ReportePedidosFilter) ([]dto.PedidoConTiempos, error)
	// ExportarCaja renders the Caja report as an XLSX workbook.
	ExportarCaja(ctx context.Context, filter dto.ReporteCajaFilter) ([]byte, error)
}

type reporteService struct {
	cajaRepo        repository.CajaRepository
	ventaRepo       repository.VentaRepository
	comprobanteRepo repository.ComprobanteRepository
	pedidoRepo      repository.PedidoRepository
	loc             *time.Location
	clock           Clock
}

func NewReporteService(
	cajaRepo repository.CajaRepository,
	ventaRepo repository.VentaRepository,
	comprobanteRepo repository.ComprobanteRepository,
	pedidoRepo repository.PedidoRepository,
	loc *time.Location,
	clock Clock,
) ReporteService {
	if loc == nil {
		loc = time.Local
	}
	return &reporteService{
		cajaRepo:        cajaRepo,
		ventaRepo:       ventaRepo,
		comprobanteRepo: comprobanteRepo,
		pedidoRepo:      pedidoRepo,
		loc:             loc,
		clock:           clock,
	}
}

func (s *reporteService) Caja(ctx context.Context, filter dto.ReporteCajaFilter) ([]dto.ReporteCajaItem, error) {
	rango, err := parseRango(filter.From, filter.To, s.loc)
	if err != nil {
		return nil, err
	}
	sesiones, err := s.cajaRepo.ListSesiones(ctx, repository.SesionFiltro{Rango: rango, Turno: filter.Shift})
	if err != nil {
		return nil, err
	}
	if len(sesiones) == 0 {
		return []dto.ReporteCajaItem{}, nil
	}

	ids := make([]uuid.UUID, 0, len(sesiones))
	for _, ses := range sesiones {
		ids = append(ids, ses.ID)
	}
	ventas, err := s.ventaRepo.ListBySesiones(ctx, ids)
	if err != nil {
		return nil, err
	}
	movimientos, err := s.cajaRepo.ListMovimientosBySesiones(ctx, ids)
	if err != nil {
		return nil, err
	}
	ventaIDs := make([]uuid.UUID, 0, len(ventas))
	sesionDeVenta := make(map[uuid.UUID]uuid.UUID, len(ventas))
	for _, v := range ventas {
		ventaIDs = append(ventaIDs, v.ID)
		sesionDeVenta[v.ID] = v.CashSessionID
	}
	comprobantes, err := s.comprobanteRepo.ListBySales(ctx, ventaIDs)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReporteCajaItem, len(sesiones))
	pos := make(map[uuid.UUID]int, len(sesiones))
	for i, ses := range sesiones {
		out[i] = dto.ReporteCajaItem{
			Cash:      ses,
			Sales:     []model.Venta{},
			Movements: []model.MovimientoCaja{},
			Invoices:  []model.Comprobante{},
		}
		pos[ses.ID] = i
	}
	for _, v := range ventas {
		i := pos[v.CashSessionID]
		out[i].Sales = append(out[i].Sales, v)
	}
	for _, m := range movimientos {
		i := pos[m.SessionID]
		out[i].Movements = append(out[i].Movements, m)
	}
	for _, c := range comprobantes {
		i := pos[sesionDeVenta[c.SaleID]]
		out[i].Invoices = append(out[i].Invoices, c)
	}
	return out, nil
}

func (s *reporteService) Pedidos(ctx context.Context, filter dto.ReportePedidosFilter) ([]dto.PedidoConTiempos, error) {
	rango, err := parseRango(filter.From, filter.To, s.loc)
	if err != nil {
		return nil, err
	}
	status := strings.TrimSpace(filter.Status)
	if status != "" && status != model.PedidoAbierto && status != model.PedidoCerrado {
		return nil, apierror.BadRequest(apierror.CodeInvalidStatus)
	}
	prep := strings.TrimSpace(filter.PrepStatus)
	if prep != "" && model.PrepRank(prep) < 0 {
		return nil, apierror.BadRequest(apierror.CodeInvalidPrepStatus)
	}
	rows, err := s.pedidoRepo.ListReporte(ctx, repository.PedidoReporteFiltro{Rango: rango, Status: status, PrepStatus: prep})
	if err != nil {
		return nil, err
	}
	now := s.clock.now()
	out := make([]dto.PedidoConTiempos, 0, len(rows))
	for _, r := range rows {
		out = append(out, conTiempos(r.Pedido, r.ShiftNumber, now))
	}
	return out, nil
}

func (s *reporteService) ExportarCaja(ctx context.Context, filter dto.ReporteCajaFilter) ([]byte, error) {
	items, err := s.Caja(ctx, filter)
	if err != nil {
		return nil, err
	}
	return exportCajaXLSX(items, s.loc)
}
