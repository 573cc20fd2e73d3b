package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gastropos/internal/apierror"
	"gastropos/internal/dto"
	"gastropos/internal/model"
	"gastropos/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PedidoService drives orders through the kitchen workflow. Orders are
// closed only by checkout (VentaService.CobrarPedido).
type PedidoService interface {
	Crear(ctx context.Context, req dto.CrearPedidoRequest) (*dto.CrearPedidoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	// ListarPorSesion: status "activos" means abierto, "" lists all, anything else matches exactly.
	ListarPorSesion(ctx context.Context, sesionID uuid.UUID, status string) ([]model.Pedido, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPedidoRequest) error
	ActualizarPreparacion(ctx context.Context, id uuid.UUID, prepStatus string) error
	Cocina(ctx context.Context, prepStatus string) ([]dto.PedidoConTiempos, error)
}

type pedidoService struct {
	tx         repository.TxManager
	repo       repository.PedidoRepository
	cajaRepo   repository.CajaRepository
	secuencias repository.SecuenciaRepository
	clock      Clock
}

func NewPedidoService(
	tx repository.TxManager,
	repo repository.PedidoRepository,
	cajaRepo repository.CajaRepository,
	secuencias repository.SecuenciaRepository,
	clock Clock,
) PedidoService {
	return &pedidoService{tx: tx, repo: repo, cajaRepo: cajaRepo, secuencias: secuencias, clock: clock}
}

// ── Crear ─────────────────────────────────────────────────────────────────────

func (s *pedidoService) Crear(ctx context.Context, req dto.CrearPedidoRequest) (*dto.CrearPedidoResponse, error) {
	items, err := buildPedidoItems(req.Items)
	if err != nil {
		return nil, err
	}
	total := sumPedidoItems(items)
	if req.Total != nil {
		if req.Total.IsNegative() {
			return nil, apierror.BadRequest(apierror.CodeInvalidTotal)
		}
		total = req.Total.Round(2)
	}

	sesionID, err := parseOptionalID(req.CashSessionID)
	if err != nil {
		return nil, err
	}
	if sesionID == nil {
		actual, err := s.cajaRepo.FindAbierta(ctx)
		if err != nil {
			return nil, err
		}
		if actual == nil {
			return nil, apierror.BadRequest(apierror.CodeNoCashOpen)
		}
		sesionID = &actual.ID
	}

	now := s.clock.now()
	pedido := &model.Pedido{
		ID:            uuid.New(),
		CashSessionID: *sesionID,
		Status:        model.PedidoAbierto,
		PrepStatus:    model.PrepSinIniciar,
		Total:         total,
		CreatedAt:     now,
		UpdatedAt:     now,
		Items:         items,
	}
	err = s.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		if _, err := lockSesionAbierta(s.cajaRepo, tx, *sesionID); err != nil {
			return err
		}
		n, err := s.secuencias.NextTx(tx, model.ScopePedido(*sesionID))
		if err != nil {
			return fmt.Errorf("numerar pedido: %w", err)
		}
		pedido.OrderNumber = int(n)
		return s.repo.CreateTx(tx, pedido)
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("order_id", pedido.ID.String()).Int("order_number", pedido.OrderNumber).
		Str("session_id", sesionID.String()).Msg("order created")
	return &dto.CrearPedidoResponse{OrderID: pedido.ID.String(), OrderNumber: pedido.OrderNumber}, nil
}

func (s *pedidoService) Obtener(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	p, err := s.repo.FindByID(ctx, id)
	if repository.IsNotFound(err) {
		return nil, apierror.NotFound(apierror.CodeOrderNotFound)
	}
	return p, err
}

func (s *pedidoService) ListarPorSesion(ctx context.Context, sesionID uuid.UUID, status string) ([]model.Pedido, error) {
	status = strings.TrimSpace(status)
	if status == "activos" {
		status = model.PedidoAbierto
	}
	return s.repo.ListBySesion(ctx, sesionID, status)
}

// ── Actualizar ────────────────────────────────────────────────────────────────
// A non-nil Items replaces the whole item set and flags the order as modified
// so the kitchen re-reads it.

func (s *pedidoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPedidoRequest) error {
	now := s.clock.now()
	return s.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		pedido, err := s.lockPedido(tx, id)
		if err != nil {
			return err
		}
		if !pedido.Abierto() {
			return apierror.BadRequest(apierror.CodeOrderClosed)
		}
		if req.Status == nil && req.PrepStatus == nil && req.Total == nil && req.Items == nil {
			return apierror.BadRequest(apierror.CodeNothingToUpdate)
		}

		if req.Status != nil && *req.Status != model.PedidoAbierto {
			return apierror.BadRequest(apierror.CodeInvalidStatus)
		}
		if req.PrepStatus != nil {
			if err := avanzarPreparacion(pedido, *req.PrepStatus, now); err != nil {
				return err
			}
		}
		if req.Items != nil {
			items, err := buildPedidoItems(*req.Items)
			if err != nil {
				return err
			}
			if err := s.repo.ReplaceItemsTx(tx, pedido.ID, items); err != nil {
				return err
			}
			pedido.WasModified = true
			pedido.ItemsUpdatedAt = &now
			if req.Total == nil {
				pedido.Total = sumPedidoItems(items)
			}
		}
		if req.Total != nil {
			if req.Total.IsNegative() {
				return apierror.BadRequest(apierror.CodeInvalidTotal)
			}
			pedido.Total = req.Total.Round(2)
		}
		pedido.UpdatedAt = now
		return s.repo.UpdateTx(tx, pedido)
	})
}

// ── ActualizarPreparacion ─────────────────────────────────────────────────────
// Kitchen acknowledgement: moves prep forward and clears was_modified.

func (s *pedidoService) ActualizarPreparacion(ctx context.Context, id uuid.UUID, prepStatus string) error {
	if prepStatus != model.PrepEnPreparacion && prepStatus != model.PrepPreparado {
		return apierror.BadRequest(apierror.CodeInvalidPrepStatus)
	}
	now := s.clock.now()
	return s.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		pedido, err := s.lockPedido(tx, id)
		if err != nil {
			return err
		}
		if !pedido.Abierto() {
			return apierror.BadRequest(apierror.CodeOrderClosed)
		}
		if err := avanzarPreparacion(pedido, prepStatus, now); err != nil {
			return err
		}
		pedido.WasModified = false
		pedido.UpdatedAt = now
		return s.repo.UpdateTx(tx, pedido)
	})
}

// avanzarPreparacion applies a forward-only prep transition and stamps the
// timing columns. Re-sending the current state is accepted.
func avanzarPreparacion(p *model.Pedido, destino string, now time.Time) error {
	rank := model.PrepRank(destino)
	if rank < 0 || rank < model.PrepRank(p.PrepStatus) {
		return apierror.BadRequest(apierror.CodeInvalidPrepStatus)
	}
	if rank >= model.PrepRank(model.PrepEnPreparacion) && p.PrepStartedAt == nil {
		p.PrepStartedAt = &now
	}
	if destino == model.PrepPreparado && p.PrepDoneAt == nil {
		p.PrepDoneAt = &now
	}
	p.PrepStatus = destino
	return nil
}

// ── Cocina ────────────────────────────────────────────────────────────────────

func (s *pedidoService) Cocina(ctx context.Context, prepStatus string) ([]dto.PedidoConTiempos, error) {
	actual, err := s.cajaRepo.FindAbierta(ctx)
	if err != nil {
		return nil, err
	}
	if actual == nil {
		return nil, apierror.BadRequest(apierror.CodeNoCashOpen)
	}
	if prepStatus != "" && model.PrepRank(prepStatus) < 0 {
		return nil, apierror.BadRequest(apierror.CodeInvalidPrepStatus)
	}
	pedidos, err := s.repo.ListCocina(ctx, actual.ID, []string{model.PedidoAbierto, model.PedidoCerrado}, prepStatus)
	if err != nil {
		return nil, err
	}
	now := s.clock.now()
	out := make([]dto.PedidoConTiempos, 0, len(pedidos))
	for _, p := range pedidos {
		out = append(out, conTiempos(p, actual.ShiftNumber, now))
	}
	return out, nil
}

func (s *pedidoService) lockPedido(tx *gorm.DB, id uuid.UUID) (*model.Pedido, error) {
	p, err := s.repo.LockByIDTx(tx, id)
	if repository.IsNotFound(err) {
		return nil, apierror.NotFound(apierror.CodeOrderNotFound)
	}
	return p, err
}

// lockSesionAbierta row-locks a session and requires it to be open, so a
// concurrent close cannot interleave with the caller's writes.
func lockSesionAbierta(repo repository.CajaRepository, tx *gorm.DB, id uuid.UUID) (*model.SesionCaja, error) {
	sesion, err := repo.LockByIDTx(tx, id)
	if repository.IsNotFound(err) {
		return nil, apierror.BadRequest(apierror.CodeCashSessionNotFound)
	}
	if err != nil {
		return nil, err
	}
	if !sesion.Abierta() {
		return nil, apierror.BadRequest(apierror.CodeCashSessionClosed)
	}
	return sesion, nil
}

func buildPedidoItems(in []dto.ItemPedidoRequest) ([]model.PedidoItem, error) {
	items := make([]model.PedidoItem, 0, len(in))
	for i, it := range in {
		if it.Quantity <= 0 || it.UnitPrice.IsNegative() {
			return nil, apierror.BadRequest(apierror.CodeInvalidItem).With("index", i)
		}
		productID, err := parseOptionalID(it.ProductID)
		if err != nil {
			return nil, apierror.BadRequest(apierror.CodeInvalidItem).With("index", i)
		}
		item := model.PedidoItem{
			ID:          uuid.New(),
			ProductID:   productID,
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.Round(2),
		}
		item.Total = item.Subtotal()
		if it.Total != nil {
			if it.Total.IsNegative() {
				return nil, apierror.BadRequest(apierror.CodeInvalidItem).With("index", i)
			}
			item.Total = it.Total.Round(2)
		}
		items = append(items, item)
	}
	return items, nil
}

func sumPedidoItems(items []model.PedidoItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Total)
	}
	return total
}
