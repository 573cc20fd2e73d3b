package service_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"gastropos/internal/apierror"
	"gastropos/internal/dto"
	"gastropos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// dosTurnos records two shifts: the first with two sales (one invoiced) and
// a manual cash-in, the second with one sale.
func dosTurnos(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()

	primera := f.abrirCaja(t, "1000")
	facturada := f.venta(t, "2500")
	f.clock.Advance(time.Minute)
	f.venta(t, "1200")
	_, err := f.caja.RegistrarMovimiento(ctx, f.cajero, dto.MovimientoManualRequest{Amount: decPtr("300"), Reference: "cambio"})
	require.NoError(t, err)
	_, err = f.facturacion.Emitir(ctx, f.cajero, emitir(model.FacturaB, facturada))
	require.NoError(t, err)
	_, err = f.caja.Cerrar(ctx, primera, decPtr("5000"), f.cajero)
	require.NoError(t, err)

	f.clock.Advance(2 * time.Hour)
	f.abrirCaja(t, "500")
	f.venta(t, "800")
}

func TestReporteCaja_AgrupaPorSesion(t *testing.T) {
	f := newFixture(t)
	dosTurnos(t, f)

	items, err := f.reportes.Caja(context.Background(), dto.ReporteCajaFilter{From: "2026-03-10", To: "2026-03-10"})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, 1, items[0].Cash.ShiftNumber)
	assert.Len(t, items[0].Sales, 2)
	assert.Len(t, items[0].Movements, 3)
	require.Len(t, items[0].Invoices, 1)
	assert.True(t, dec("2500").Equal(items[0].Invoices[0].Total))

	assert.Equal(t, 2, items[1].Cash.ShiftNumber)
	assert.Len(t, items[1].Sales, 1)
	assert.Len(t, items[1].Movements, 1)
	assert.NotNil(t, items[1].Invoices)
	assert.Empty(t, items[1].Invoices)
}

func TestReporteCaja_FiltroTurnoYRangoVacio(t *testing.T) {
	f := newFixture(t)
	dosTurnos(t, f)
	ctx := context.Background()

	items, err := f.reportes.Caja(ctx, dto.ReporteCajaFilter{Shift: 2})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Cash.ShiftNumber)

	vacio, err := f.reportes.Caja(ctx, dto.ReporteCajaFilter{From: "2026-04-01"})
	require.NoError(t, err)
	assert.NotNil(t, vacio)
	assert.Empty(t, vacio)

	_, err = f.reportes.Caja(ctx, dto.ReporteCajaFilter{To: "10/03/2026"})
	requireCode(t, err, apierror.CodeInvalidDate, http.StatusBadRequest)
}

func TestReporteCaja_ExportarXLSX(t *testing.T) {
	f := newFixture(t)
	dosTurnos(t, f)

	raw, err := f.reportes.ExportarCaja(context.Background(), dto.ReporteCajaFilter{})
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer book.Close()
	assert.Equal(t, []string{"Sesiones", "Ventas", "Movimientos", "Comprobantes"}, book.GetSheetList())

	sesiones, err := book.GetRows("Sesiones")
	require.NoError(t, err)
	assert.Len(t, sesiones, 3)

	ventas, err := book.GetRows("Ventas")
	require.NoError(t, err)
	assert.Len(t, ventas, 4)

	comprobantes, err := book.GetRows("Comprobantes")
	require.NoError(t, err)
	require.Len(t, comprobantes, 2)
	assert.Equal(t, "0001-00000001", comprobantes[1][0])
}

func TestReportePedidos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.abrirCaja(t, "")
	cobrado := f.crearPedido(t, item("Milanesa", 1, "5200"))
	f.clock.Advance(10 * time.Minute)
	f.crearPedido(t, item("Flan", 2, "1800"))
	_, err := f.ventas.CobrarPedido(ctx, f.cajero, cobrado, "")
	require.NoError(t, err)
	f.clock.Advance(5 * time.Minute)

	todos, err := f.reportes.Pedidos(ctx, dto.ReportePedidosFilter{})
	require.NoError(t, err)
	assert.Len(t, todos, 2)

	cerrados, err := f.reportes.Pedidos(ctx, dto.ReportePedidosFilter{Status: model.PedidoCerrado})
	require.NoError(t, err)
	require.Len(t, cerrados, 1)
	assert.Equal(t, cobrado, cerrados[0].ID)
	assert.Equal(t, 1, cerrados[0].ShiftNumber)
	assert.Equal(t, int64(10), cerrados[0].TotalMinutes)
	assert.Equal(t, int64(15), cerrados[0].LiveMinutes)

	sinIniciar, err := f.reportes.Pedidos(ctx, dto.ReportePedidosFilter{PrepStatus: model.PrepSinIniciar})
	require.NoError(t, err)
	assert.Len(t, sinIniciar, 1)

	_, err = f.reportes.Pedidos(ctx, dto.ReportePedidosFilter{Status: "pendiente"})
	requireCode(t, err, apierror.CodeInvalidStatus, http.StatusBadRequest)
	_, err = f.reportes.Pedidos(ctx, dto.ReportePedidosFilter{PrepStatus: "frio"})
	requireCode(t, err, apierror.CodeInvalidPrepStatus, http.StatusBadRequest)
}
