package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gastropos/internal/apierror"
	"gastropos/internal/dto"
	"gastropos/internal/infra"
	"gastropos/internal/model"
	"gastropos/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VentaService records completed sales: direct sales at the counter and
// checkout of kitchen orders. Each sale appends one venta movement to the
// session it belongs to.
type VentaService interface {
	RegistrarVenta(ctx context.Context, usuarioID uuid.UUID, req dto.RegistrarVentaRequest) (*dto.RegistrarVentaResponse, error)
	CobrarPedido(ctx context.Context, usuarioID, pedidoID uuid.UUID, metodoPago string) (*dto.CobrarPedidoResponse, error)
	Listar(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, error)
	Resumen(ctx context.Context, filter dto.VentaFilter) (*dto.ResumenVentasResponse, error)
}

type ventaService struct {
	tx           repository.TxManager
	repo         repository.VentaRepository
	cajaRepo     repository.CajaRepository
	pedidoRepo   repository.PedidoRepository
	productoRepo repository.ProductoRepository
	loc          *time.Location
	clock        Clock
}

func NewVentaService(
	tx repository.TxManager,
	repo repository.VentaRepository,
	cajaRepo repository.CajaRepository,
	pedidoRepo repository.PedidoRepository,
	productoRepo repository.ProductoRepository,
	loc *time.Location,
	clock Clock,
) VentaService {
	if loc == nil {
		loc = time.Local
	}
	return &ventaService{
		tx:           tx,
		repo:         repo,
		cajaRepo:     cajaRepo,
		pedidoRepo:   pedidoRepo,
		productoRepo: productoRepo,
		loc:          loc,
		clock:        clock,
	}
}

// ── RegistrarVenta ────────────────────────────────────────────────────────────
// Direct sale against the current session, in one transaction:
//   1. lock the open session
//   2. re-price catalog lines from active products
//   3. insert sale + items + venta movement

func (s *ventaService) RegistrarVenta(ctx context.Context, usuarioID uuid.UUID, req dto.RegistrarVentaRequest) (*dto.RegistrarVentaResponse, error) {
	if len(req.Items) == 0 {
		return nil, apierror.BadRequest(apierror.CodeNoItems)
	}
	metodo, err := metodoPago(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	items := make([]model.VentaItem, 0, len(req.Items))
	var catalogo []uuid.UUID
	for i, it := range req.Items {
		if it.Qty <= 0 || it.Price.IsNegative() {
			return nil, apierror.BadRequest(apierror.CodeInvalidItem).With("index", i)
		}
		productID, err := parseOptionalID(it.ProductID)
		if err != nil {
			return nil, apierror.BadRequest(apierror.CodeInvalidItem).With("index", i)
		}
		item := model.VentaItem{
			ID:          uuid.New(),
			Description: strings.TrimSpace(it.Description),
			Qty:         it.Qty,
			Price:       it.Price.Round(2),
		}
		if !it.Manual && productID != nil {
			item.ProductID = productID
			catalogo = append(catalogo, *productID)
		} else if item.Description == "" {
			return nil, apierror.BadRequest(apierror.CodeInvalidItem).With("index", i)
		}
		items = append(items, item)
	}

	venta := &model.Venta{
		ID:            uuid.New(),
		UserID:        usuarioID,
		PaymentMethod: metodo,
		CreatedAt:     s.clock.now(),
	}
	err = s.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		actual, err := s.cajaRepo.FindAbiertaTx(tx)
		if err != nil {
			return err
		}
		if actual == nil {
			return apierror.BadRequest(apierror.CodeNoCashOpen)
		}
		sesion, err := s.cajaRepo.LockByIDTx(tx, actual.ID)
		if err != nil {
			return err
		}
		if !sesion.Abierta() {
			return apierror.BadRequest(apierror.CodeNoCashOpen)
		}

		if len(catalogo) > 0 {
			productos, err := s.productoRepo.FindActivosTx(tx, catalogo)
			if err != nil {
				return fmt.Errorf("cargar productos: %w", err)
			}
			porID := make(map[uuid.UUID]model.Producto, len(productos))
			for _, p := range productos {
				porID[p.ID] = p
			}
			for i := range items {
				if items[i].ProductID == nil {
					continue
				}
				p, ok := porID[*items[i].ProductID]
				if !ok {
					return apierror.BadRequest(apierror.CodeProductNotFound).With("product_id", items[i].ProductID.String())
				}
				items[i].Price = p.Price
				if items[i].Description == "" {
					items[i].Description = p.Name
				}
			}
		}

		venta.CashSessionID = sesion.ID
		venta.ShiftNumber = sesion.ShiftNumber
		venta.Items = items
		venta.Total = sumVentaItems(items)
		return s.registrar(tx, venta)
	})
	if err != nil {
		return nil, err
	}

	infra.ObserveSale("directa", metodo, venta.Total)
	log.Info().Str("sale_id", venta.ID.String()).Str("total", venta.Total.StringFixed(2)).
		Str("payment_method", metodo).Msg("direct sale registered")
	return &dto.RegistrarVentaResponse{
		SaleID:        venta.ID.String(),
		Total:         venta.Total,
		CashSessionID: venta.CashSessionID.String(),
		ShiftNumber:   venta.ShiftNumber,
	}, nil
}

// ── CobrarPedido ──────────────────────────────────────────────────────────────
// Locks the order, then its own session. Any failure rolls back the sale,
// the movement and the order update together.

func (s *ventaService) CobrarPedido(ctx context.Context, usuarioID, pedidoID uuid.UUID, metodoPagoReq string) (*dto.CobrarPedidoResponse, error) {
	metodo, err := metodoPago(metodoPagoReq)
	if err != nil {
		return nil, err
	}
	now := s.clock.now()
	var venta *model.Venta

	err = s.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		pedido, err := s.pedidoRepo.LockByIDTx(tx, pedidoID)
		if repository.IsNotFound(err) {
			return apierror.NotFound(apierror.CodeOrderNotFound)
		}
		if err != nil {
			return err
		}
		if !pedido.Abierto() {
			return apierror.BadRequest(apierror.CodeOrderAlreadyClosed)
		}
		pedidoItems, err := s.pedidoRepo.ItemsTx(tx, pedido.ID)
		if err != nil {
			return err
		}
		if len(pedidoItems) == 0 {
			return apierror.BadRequest(apierror.CodeOrderWithoutItems)
		}
		sesion, err := lockSesionAbierta(s.cajaRepo, tx, pedido.CashSessionID)
		if err != nil {
			return err
		}

		items := make([]model.VentaItem, 0, len(pedidoItems))
		for _, it := range pedidoItems {
			items = append(items, model.VentaItem{
				ID:          uuid.New(),
				ProductID:   it.ProductID,
				Description: it.Description,
				Qty:         it.Quantity,
				Price:       it.UnitPrice,
			})
		}
		total := pedido.Total
		if !total.IsPositive() {
			total = sumVentaItems(items)
		}

		venta = &model.Venta{
			ID:            uuid.New(),
			UserID:        usuarioID,
			Total:         total,
			PaymentMethod: metodo,
			CashSessionID: sesion.ID,
			ShiftNumber:   sesion.ShiftNumber,
			OrderID:       &pedido.ID,
			CreatedAt:     now,
			Items:         items,
		}
		if err := s.registrar(tx, venta); err != nil {
			return err
		}

		pedido.Status = model.PedidoCerrado
		pedido.PrepStatus = model.PrepPreparado
		if pedido.PrepDoneAt == nil {
			pedido.PrepDoneAt = &now
		}
		pedido.WasModified = false
		pedido.ClosedAt = &now
		pedido.SaleID = &venta.ID
		pedido.UpdatedAt = now
		return s.pedidoRepo.UpdateTx(tx, pedido)
	})
	if err != nil {
		return nil, err
	}

	infra.ObserveSale("pedido", metodo, venta.Total)
	log.Info().Str("order_id", pedidoID.String()).Str("sale_id", venta.ID.String()).
		Str("total", venta.Total.StringFixed(2)).Msg("order charged")
	return &dto.CobrarPedidoResponse{SaleID: venta.ID.String(), Total: venta.Total}, nil
}

// registrar inserts the sale with its items and the matching venta movement.
func (s *ventaService) registrar(tx *gorm.DB, venta *model.Venta) error {
	if err := s.repo.CreateTx(tx, venta); err != nil {
		return fmt.Errorf("crear venta: %w", err)
	}
	mov := &model.MovimientoCaja{
		ID:        uuid.New(),
		SessionID: venta.CashSessionID,
		Type:      model.MovimientoVenta,
		Amount:    venta.Total,
		Reference: fmt.Sprintf("Venta #%s (%s)", venta.ID, venta.PaymentMethod),
		UserID:    venta.UserID,
		SaleID:    &venta.ID,
		CreatedAt: venta.CreatedAt,
	}
	if err := s.cajaRepo.CreateMovimientoTx(tx, mov); err != nil {
		return fmt.Errorf("crear movimiento de venta: %w", err)
	}
	return nil
}

// ── Consultas ─────────────────────────────────────────────────────────────────

func (s *ventaService) Listar(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, error) {
	f, err := s.filtro(filter)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, f)
}

func (s *ventaService) Resumen(ctx context.Context, filter dto.VentaFilter) (*dto.ResumenVentasResponse, error) {
	f, err := s.filtro(filter)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.Resumen(ctx, f)
	if err != nil {
		return nil, err
	}
	out := &dto.ResumenVentasResponse{Total: decimal.Zero, PorMetodo: map[string]decimal.Decimal{}}
	for _, r := range rows {
		out.Ventas += r.Cantidad
		out.Total = out.Total.Add(r.Total)
		out.PorMetodo[r.PaymentMethod] = r.Total
		switch r.PaymentMethod {
		case model.PagoEfectivo:
			out.CantEfectivo = r.Cantidad
		case model.PagoQR:
			out.CantQR = r.Cantidad
		}
	}
	return out, nil
}

func (s *ventaService) filtro(filter dto.VentaFilter) (repository.VentaFiltro, error) {
	rango, err := parseRango(filter.From, filter.To, s.loc)
	if err != nil {
		return repository.VentaFiltro{}, err
	}
	return repository.VentaFiltro{Rango: rango, Turno: filter.Shift}, nil
}

// metodoPago defaults an empty method to efectivo.
func metodoPago(m string) (string, error) {
	m = strings.ToLower(strings.TrimSpace(m))
	if m == "" {
		return model.PagoEfectivo, nil
	}
	if !model.MetodoPagoValido(m) {
		return "", apierror.BadRequest(apierror.CodeInvalidPayment)
	}
	return m, nil
}

func sumVentaItems(items []model.VentaItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total.Round(2)
}
