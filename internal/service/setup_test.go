package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"gastropos/internal/apierror"
	"gastropos/internal/dto"
	"gastropos/internal/infra"
	"gastropos/internal/model"
	"gastropos/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var argentina = time.FixedZone("ART", -3*60*60)

// jobsSpy records invoice ids queued for PDF rendering.
type jobsSpy struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

func (j *jobsSpy) EnqueueComprobantePDF(_ context.Context, id uuid.UUID) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.ids = append(j.ids, id)
	return nil
}

type fixture struct {
	store     *memStore
	clock     *fixedClock
	productos *productoStub
	jobs      *jobsSpy
	pdfDir    string

	caja        service.CajaService
	pedidos     service.PedidoService
	ventas      service.VentaService
	facturacion service.FacturacionService
	reportes    service.ReporteService
	clientes    service.ClienteService

	cajero uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newMemStore()
	clock := &fixedClock{t: time.Date(2026, 3, 10, 12, 0, 0, 0, argentina)}
	now := service.Clock(clock.Now)

	tx := memTx{s: store}
	caja := cajaStub{s: store}
	pedidos := pedidoStub{s: store}
	ventas := ventaStub{s: store}
	comprobantes := comprobanteStub{s: store}
	clientes := clienteStub{s: store}
	secuencias := secuenciaStub{s: store}
	productos := &productoStub{s: store}
	jobs := &jobsSpy{}
	pdfDir := t.TempDir()

	return &fixture{
		store:     store,
		clock:     clock,
		productos: productos,
		jobs:      jobs,
		pdfDir:    pdfDir,
		caja:      service.NewCajaService(tx, caja, secuencias, proveedorStub{s: store}, argentina, now),
		pedidos:   service.NewPedidoService(tx, pedidos, caja, secuencias, now),
		ventas:    service.NewVentaService(tx, ventas, caja, pedidos, productos, argentina, now),
		facturacion: service.NewFacturacionService(tx, comprobantes, ventas, clientes, secuencias, jobs,
			service.FacturacionConfig{
				Emisor:            infra.Emisor{Nombre: "Bodegón Don Tito", CUIT: "30-12345678-9"},
				PDFStoragePath:    pdfDir,
				DefaultPuntoVenta: 1,
				Location:          argentina,
			}, now),
		reportes: service.NewReporteService(caja, ventas, comprobantes, pedidos, argentina, now),
		clientes: service.NewClienteService(clientes, now),
		cajero:   uuid.New(),
	}
}

// abrirCaja opens a session and declares its float; "" leaves it undeclared.
func (f *fixture) abrirCaja(t *testing.T, apertura string) uuid.UUID {
	t.Helper()
	resp, err := f.caja.Abrir(context.Background(), f.cajero)
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)
	if apertura != "" {
		require.NoError(t, f.caja.RegistrarMontoApertura(context.Background(), id, decPtr(apertura)))
	}
	return id
}

func (f *fixture) crearPedido(t *testing.T, items ...dto.ItemPedidoRequest) uuid.UUID {
	t.Helper()
	resp, err := f.pedidos.Crear(context.Background(), dto.CrearPedidoRequest{Items: items})
	require.NoError(t, err)
	return uuid.MustParse(resp.OrderID)
}

func (f *fixture) producto(name, price string, active bool) model.Producto {
	p := model.Producto{ID: uuid.New(), Name: name, Price: dec(price), Active: active, CreatedAt: f.clock.Now()}
	f.store.mu.Lock()
	f.store.productos[p.ID] = p
	f.store.mu.Unlock()
	return p
}

func item(desc string, qty int, price string) dto.ItemPedidoRequest {
	return dto.ItemPedidoRequest{Description: desc, Quantity: qty, UnitPrice: dec(price)}
}

// requireCode asserts err is an *apierror.Error with the given code and status.
func requireCode(t *testing.T, err error, code string, status int) {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := apierror.As(err)
	require.True(t, ok, "expected api error, got %v", err)
	require.Equal(t, code, apiErr.Code)
	require.Equal(t, status, apiErr.Status)
}
