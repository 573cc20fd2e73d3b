package service_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"gastropos/internal/dto"
	"gastropos/internal/model"
	"gastropos/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory store ──────────────────────────────────────────────────────────
// One store backs every stub repository. memTx serializes transactions and
// restores a snapshot when the callback fails, which stands in for row locks
// and rollback.

var errInjected = errors.New("injected failure")

type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	sesiones     map[uuid.UUID]model.SesionCaja
	movimientos  []model.MovimientoCaja
	pedidos      map[uuid.UUID]model.Pedido
	pedidoItems  map[uuid.UUID][]model.PedidoItem
	ventas       map[uuid.UUID]model.Venta
	comprobantes map[uuid.UUID]model.Comprobante
	productos    map[uuid.UUID]model.Producto
	proveedores  map[uuid.UUID]model.Proveedor
	clientes     map[uuid.UUID]model.Cliente
	empleados    map[uuid.UUID]model.Empleado
	usuarios     map[uuid.UUID]model.Usuario
	secuencias   map[string]int64

	// failOn names a stub method that returns errInjected.
	failOn string
	// aperturaPerdida makes CreateSesionTx hit the one-open index and the
	// follow-up FindAbierta fail, as when a concurrent open wins and the
	// store then drops out.
	aperturaPerdida bool
}

func newMemStore() *memStore {
	return &memStore{
		sesiones:     map[uuid.UUID]model.SesionCaja{},
		pedidos:      map[uuid.UUID]model.Pedido{},
		pedidoItems:  map[uuid.UUID][]model.PedidoItem{},
		ventas:       map[uuid.UUID]model.Venta{},
		comprobantes: map[uuid.UUID]model.Comprobante{},
		productos:    map[uuid.UUID]model.Producto{},
		proveedores:  map[uuid.UUID]model.Proveedor{},
		clientes:     map[uuid.UUID]model.Cliente{},
		empleados:    map[uuid.UUID]model.Empleado{},
		usuarios:     map[uuid.UUID]model.Usuario{},
		secuencias:   map[string]int64{},
	}
}

func (s *memStore) fail(method string) error {
	if s.failOn == method {
		return errInjected
	}
	return nil
}

type snapshot struct {
	sesiones     map[uuid.UUID]model.SesionCaja
	movimientos  []model.MovimientoCaja
	pedidos      map[uuid.UUID]model.Pedido
	pedidoItems  map[uuid.UUID][]model.PedidoItem
	ventas       map[uuid.UUID]model.Venta
	comprobantes map[uuid.UUID]model.Comprobante
	secuencias   map[string]int64
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *memStore) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot{
		sesiones:     cloneMap(s.sesiones),
		movimientos:  append([]model.MovimientoCaja(nil), s.movimientos...),
		pedidos:      cloneMap(s.pedidos),
		pedidoItems:  cloneMap(s.pedidoItems),
		ventas:       cloneMap(s.ventas),
		comprobantes: cloneMap(s.comprobantes),
		secuencias:   cloneMap(s.secuencias),
	}
}

func (s *memStore) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sesiones = snap.sesiones
	s.movimientos = snap.movimientos
	s.pedidos = snap.pedidos
	s.pedidoItems = snap.pedidoItems
	s.ventas = snap.ventas
	s.comprobantes = snap.comprobantes
	s.secuencias = snap.secuencias
}

type memTx struct{ s *memStore }

var _ repository.TxManager = memTx{}

func (m memTx) WithTransaction(_ context.Context, fn func(tx *gorm.DB) error) error {
	m.s.txMu.Lock()
	defer m.s.txMu.Unlock()
	snap := m.s.snapshot()
	if err := fn(nil); err != nil {
		m.s.restore(snap)
		return err
	}
	return nil
}

// ── Sequences ────────────────────────────────────────────────────────────────

type secuenciaStub struct{ s *memStore }

var _ repository.SecuenciaRepository = secuenciaStub{}

func (r secuenciaStub) NextTx(_ *gorm.DB, scope string) (int64, error) {
	if err := r.s.fail("NextTx"); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.secuencias[scope]++
	return r.s.secuencias[scope], nil
}

// ── Cash sessions ────────────────────────────────────────────────────────────

type cajaStub struct{ s *memStore }

var _ repository.CajaRepository = cajaStub{}

func (r cajaStub) abierta() *model.SesionCaja {
	var out *model.SesionCaja
	for _, ses := range r.s.sesiones {
		if ses.Status != model.CajaAbierta {
			continue
		}
		if out == nil || ses.OpenedAt.After(out.OpenedAt) {
			c := ses
			out = &c
		}
	}
	return out
}

func (r cajaStub) FindAbierta(_ context.Context) (*model.SesionCaja, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.aperturaPerdida {
		return nil, errInjected
	}
	return r.abierta(), nil
}

func (r cajaStub) FindByID(_ context.Context, id uuid.UUID) (*model.SesionCaja, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ses, ok := r.s.sesiones[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &ses, nil
}

func (r cajaStub) ListSesiones(_ context.Context, f repository.SesionFiltro) ([]model.SesionCaja, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.SesionCaja
	for _, ses := range r.s.sesiones {
		if !f.Contains(ses.OpenedAt) || (f.Turno > 0 && ses.ShiftNumber != f.Turno) {
			continue
		}
		out = append(out, ses)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OpenedAt.Before(out[j].OpenedAt) })
	return out, nil
}

func (r cajaStub) ListMovimientos(_ context.Context, sessionID uuid.UUID) ([]model.MovimientoCaja, error) {
	return r.ListMovimientosBySesiones(context.Background(), []uuid.UUID{sessionID})
}

func (r cajaStub) ListMovimientosBySesiones(_ context.Context, ids []uuid.UUID) ([]model.MovimientoCaja, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	want := map[uuid.UUID]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []model.MovimientoCaja
	for i := len(r.s.movimientos) - 1; i >= 0; i-- {
		if m := r.s.movimientos[i]; want[m.SessionID] {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r cajaStub) LockAperturaTx(_ *gorm.DB) error { return nil }

func (r cajaStub) FindAbiertaTx(_ *gorm.DB) (*model.SesionCaja, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.abierta(), nil
}

func (r cajaStub) LockByIDTx(_ *gorm.DB, id uuid.UUID) (*model.SesionCaja, error) {
	return r.FindByID(context.Background(), id)
}

func (r cajaStub) CreateSesionTx(_ *gorm.DB, ses *model.SesionCaja) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.abierta() != nil || r.s.aperturaPerdida {
		return &pgconn.PgError{Code: "23505", ConstraintName: "uq_cash_sessions_one_open"}
	}
	r.s.sesiones[ses.ID] = *ses
	return nil
}

func (r cajaStub) UpdateSesionTx(_ *gorm.DB, ses *model.SesionCaja) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sesiones[ses.ID] = *ses
	return nil
}

func (r cajaStub) CreateMovimientoTx(_ *gorm.DB, m *model.MovimientoCaja) error {
	if err := r.s.fail("CreateMovimientoTx"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.movimientos = append(r.s.movimientos, *m)
	return nil
}

// ── Orders ───────────────────────────────────────────────────────────────────

type pedidoStub struct{ s *memStore }

var _ repository.PedidoRepository = pedidoStub{}

func (r pedidoStub) withItems(p model.Pedido) model.Pedido {
	p.Items = append([]model.PedidoItem(nil), r.s.pedidoItems[p.ID]...)
	return p
}

func (r pedidoStub) FindByID(_ context.Context, id uuid.UUID) (*model.Pedido, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.pedidos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	p = r.withItems(p)
	return &p, nil
}

func (r pedidoStub) list(match func(model.Pedido) bool) []model.Pedido {
	var out []model.Pedido
	for _, p := range r.s.pedidos {
		if match(p) {
			out = append(out, r.withItems(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (r pedidoStub) ListBySesion(_ context.Context, sessionID uuid.UUID, status string) ([]model.Pedido, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.list(func(p model.Pedido) bool {
		return p.CashSessionID == sessionID && (status == "" || p.Status == status)
	}), nil
}

func (r pedidoStub) ListCocina(_ context.Context, sessionID uuid.UUID, statuses []string, prepStatus string) ([]model.Pedido, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.list(func(p model.Pedido) bool {
		ok := false
		for _, st := range statuses {
			ok = ok || p.Status == st
		}
		return ok && p.CashSessionID == sessionID && (prepStatus == "" || p.PrepStatus == prepStatus)
	}), nil
}

func (r pedidoStub) ListReporte(_ context.Context, f repository.PedidoReporteFiltro) ([]repository.PedidoConTurno, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []repository.PedidoConTurno
	for _, p := range r.list(func(p model.Pedido) bool {
		return f.Contains(p.CreatedAt) &&
			(f.Status == "" || p.Status == f.Status) &&
			(f.PrepStatus == "" || p.PrepStatus == f.PrepStatus)
	}) {
		out = append(out, repository.PedidoConTurno{Pedido: p, ShiftNumber: r.s.sesiones[p.CashSessionID].ShiftNumber})
	}
	return out, nil
}

func (r pedidoStub) CreateTx(_ *gorm.DB, p *model.Pedido) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range p.Items {
		p.Items[i].OrderID = p.ID
	}
	r.s.pedidoItems[p.ID] = append([]model.PedidoItem(nil), p.Items...)
	stored := *p
	stored.Items = nil
	r.s.pedidos[p.ID] = stored
	return nil
}

func (r pedidoStub) LockByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Pedido, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.pedidos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r pedidoStub) ItemsTx(_ *gorm.DB, orderID uuid.UUID) ([]model.PedidoItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]model.PedidoItem(nil), r.s.pedidoItems[orderID]...), nil
}

func (r pedidoStub) UpdateTx(_ *gorm.DB, p *model.Pedido) error {
	if err := r.s.fail("PedidoUpdateTx"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := *p
	stored.Items = nil
	r.s.pedidos[p.ID] = stored
	return nil
}

func (r pedidoStub) ReplaceItemsTx(_ *gorm.DB, orderID uuid.UUID, items []model.PedidoItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range items {
		items[i].OrderID = orderID
	}
	r.s.pedidoItems[orderID] = append([]model.PedidoItem(nil), items...)
	return nil
}

// ── Sales ────────────────────────────────────────────────────────────────────

type ventaStub struct{ s *memStore }

var _ repository.VentaRepository = ventaStub{}

func (r ventaStub) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &v, nil
}

func (r ventaStub) filtrar(f repository.VentaFiltro) []model.Venta {
	var out []model.Venta
	for _, v := range r.s.ventas {
		if f.Contains(v.CreatedAt) && (f.Turno == 0 || v.ShiftNumber == f.Turno) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r ventaStub) List(_ context.Context, f repository.VentaFiltro) ([]model.Venta, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.filtrar(f), nil
}

func (r ventaStub) Resumen(_ context.Context, f repository.VentaFiltro) ([]repository.ResumenMetodo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	por := map[string]*repository.ResumenMetodo{}
	for _, v := range r.filtrar(f) {
		row, ok := por[v.PaymentMethod]
		if !ok {
			row = &repository.ResumenMetodo{PaymentMethod: v.PaymentMethod, Total: decimal.Zero}
			por[v.PaymentMethod] = row
		}
		row.Cantidad++
		row.Total = row.Total.Add(v.Total)
	}
	var out []repository.ResumenMetodo
	for _, row := range por {
		out = append(out, *row)
	}
	return out, nil
}

func (r ventaStub) ListBySesiones(_ context.Context, ids []uuid.UUID) ([]model.Venta, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	want := map[uuid.UUID]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []model.Venta
	for _, v := range r.s.ventas {
		if want[v.CashSessionID] {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r ventaStub) CreateTx(_ *gorm.DB, v *model.Venta) error {
	if err := r.s.fail("VentaCreateTx"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range v.Items {
		v.Items[i].SaleID = v.ID
	}
	r.s.ventas[v.ID] = *v
	return nil
}

// ── Invoices ─────────────────────────────────────────────────────────────────

type comprobanteStub struct{ s *memStore }

var _ repository.ComprobanteRepository = comprobanteStub{}

func (r comprobanteStub) FindByID(_ context.Context, id uuid.UUID) (*model.Comprobante, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.comprobantes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r comprobanteStub) sorted(match func(model.Comprobante) bool) []model.Comprobante {
	var out []model.Comprobante
	for _, c := range r.s.comprobantes {
		if match(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FechaEmision.Equal(out[j].FechaEmision) {
			return out[i].NumeroComprobante < out[j].NumeroComprobante
		}
		return out[i].FechaEmision.Before(out[j].FechaEmision)
	})
	return out
}

func (r comprobanteStub) FindLatestBySale(_ context.Context, saleID uuid.UUID) (*model.Comprobante, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := r.sorted(func(c model.Comprobante) bool { return c.SaleID == saleID })
	if len(all) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &all[len(all)-1], nil
}

func (r comprobanteStub) List(_ context.Context, f repository.ComprobanteFiltro) ([]model.Comprobante, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sorted(func(c model.Comprobante) bool {
		return f.Contains(c.FechaEmision) && (f.Tipo == "" || c.TipoComprobante == f.Tipo)
	}), nil
}

func (r comprobanteStub) ListBySales(_ context.Context, saleIDs []uuid.UUID) ([]model.Comprobante, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	want := map[uuid.UUID]bool{}
	for _, id := range saleIDs {
		want[id] = true
	}
	return r.sorted(func(c model.Comprobante) bool { return want[c.SaleID] }), nil
}

func (r comprobanteStub) ListSinPDF(_ context.Context, maxAttempts, limit int) ([]model.Comprobante, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := r.sorted(func(c model.Comprobante) bool { return c.PDFPath == nil && c.PDFAttempts < maxAttempts })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r comprobanteStub) SetPDF(_ context.Context, id uuid.UUID, path string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := r.s.comprobantes[id]
	c.PDFPath = &path
	c.PDFError = nil
	r.s.comprobantes[id] = c
	return nil
}

func (r comprobanteStub) RegistrarFalloPDF(_ context.Context, id uuid.UUID, msg string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := r.s.comprobantes[id]
	c.PDFAttempts++
	c.PDFError = &msg
	r.s.comprobantes[id] = c
	return nil
}

func (r comprobanteStub) CreateTx(_ *gorm.DB, c *model.Comprobante) error {
	if err := r.s.fail("ComprobanteCreateTx"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := *c
	stored.Items = nil
	r.s.comprobantes[c.ID] = stored
	return nil
}

// ── Master data ──────────────────────────────────────────────────────────────

type productoStub struct {
	s     *memStore
	lists int
}

var _ repository.ProductoRepository = (*productoStub)(nil)

func (r *productoStub) Create(_ context.Context, p *model.Producto) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.productos[p.ID] = *p
	return nil
}

func (r *productoStub) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *productoStub) List(_ context.Context, f dto.ProductoFilter) ([]model.Producto, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.lists++
	var out []model.Producto
	for _, p := range r.s.productos {
		if !p.Active || (f.Category != "" && p.Category != f.Category) {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *productoStub) Update(_ context.Context, p *model.Producto) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.productos[p.ID] = *p
	return nil
}

func (r *productoStub) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Active = active
	r.s.productos[id] = p
	return nil
}

func (r *productoStub) FindActivosTx(_ *gorm.DB, ids []uuid.UUID) ([]model.Producto, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Producto
	for _, id := range ids {
		if p, ok := r.s.productos[id]; ok && p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

type proveedorStub struct{ s *memStore }

var _ repository.ProveedorRepository = proveedorStub{}

func (r proveedorStub) Create(_ context.Context, p *model.Proveedor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.proveedores[p.ID] = *p
	return nil
}

func (r proveedorStub) FindByID(_ context.Context, id uuid.UUID) (*model.Proveedor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.proveedores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r proveedorStub) List(_ context.Context) ([]model.Proveedor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Proveedor
	for _, p := range r.s.proveedores {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r proveedorStub) Update(_ context.Context, p *model.Proveedor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.proveedores[p.ID] = *p
	return nil
}

func (r proveedorStub) SoftDelete(_ context.Context, id uuid.UUID, by uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.proveedores[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Active = false
	p.UpdatedBy = &by
	r.s.proveedores[id] = p
	return nil
}

type clienteStub struct{ s *memStore }

var _ repository.ClienteRepository = clienteStub{}

func (r clienteStub) Create(_ context.Context, c *model.Cliente) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.clientes[c.ID] = *c
	return nil
}

func (r clienteStub) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r clienteStub) ExistsDocumento(_ context.Context, numero string, exclude *uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.clientes {
		if c.NumeroDocumento == numero && (exclude == nil || c.ID != *exclude) {
			return true, nil
		}
	}
	return false, nil
}

func (r clienteStub) List(_ context.Context, search string) ([]model.Cliente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Cliente
	for _, c := range r.s.clientes {
		if search == "" || strings.Contains(strings.ToLower(c.RazonSocial), strings.ToLower(search)) ||
			strings.Contains(c.NumeroDocumento, search) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r clienteStub) Update(_ context.Context, c *model.Cliente) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.clientes[c.ID] = *c
	return nil
}

type empleadoStub struct{ s *memStore }

var _ repository.EmpleadoRepository = empleadoStub{}

func (r empleadoStub) Create(_ context.Context, e *model.Empleado) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.empleados[e.ID] = *e
	return nil
}

func (r empleadoStub) FindByID(_ context.Context, id uuid.UUID) (*model.Empleado, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.empleados[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (r empleadoStub) List(_ context.Context) ([]model.Empleado, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Empleado
	for _, e := range r.s.empleados {
		out = append(out, e)
	}
	return out, nil
}

func (r empleadoStub) Update(_ context.Context, e *model.Empleado) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.empleados[e.ID] = *e
	return nil
}

type usuarioStub struct{ s *memStore }

var _ repository.UsuarioRepository = usuarioStub{}

func (r usuarioStub) Create(_ context.Context, u *model.Usuario) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.usuarios {
		if strings.EqualFold(other.Email, u.Email) {
			return errors.New("duplicate email")
		}
	}
	r.s.usuarios[u.ID] = *u
	return nil
}

func (r usuarioStub) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.usuarios {
		if strings.EqualFold(u.Email, email) && u.Active {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r usuarioStub) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r usuarioStub) List(_ context.Context) ([]model.Usuario, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Usuario
	for _, u := range r.s.usuarios {
		out = append(out, u)
	}
	return out, nil
}

func (r usuarioStub) Update(_ context.Context, u *model.Usuario) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.usuarios[u.ID] = *u
	return nil
}

func (r usuarioStub) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.usuarios[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Active = active
	r.s.usuarios[id] = u
	return nil
}

// ── Fixture ──────────────────────────────────────────────────────────────────

// fixedClock is a settable test clock.
type fixedClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strp(s string) *string { return &s }

func (s *memStore) countMovimientos(sessionID uuid.UUID, tipo string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, m := range s.movimientos {
		if m.SessionID == sessionID && (tipo == "" || m.Type == tipo) {
			n++
		}
	}
	return n
}

func (s *memStore) pedido(id uuid.UUID) model.Pedido {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pedidos[id]
}

func (s *memStore) sesion(id uuid.UUID) model.SesionCaja {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sesiones[id]
}
