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

// CajaService owns the cash session lifecycle: abierta → cerrada.
type CajaService interface {
	// Actual returns the open session, or nil when the drawer is closed.
	Actual(ctx context.Context) (*model.SesionCaja, error)
	Abrir(ctx context.Context, usuarioID uuid.UUID) (*dto.AbrirCajaResponse, error)
	RegistrarMontoApertura(ctx context.Context, sesionID uuid.UUID, monto *decimal.Decimal) error
	Cerrar(ctx context.Context, sesionID uuid.UUID, montoCierre *decimal.Decimal, usuarioID uuid.UUID) (*dto.CerrarCajaResponse, error)
	RegistrarMovimiento(ctx context.Context, usuarioID uuid.UUID, req dto.MovimientoManualRequest) (*model.MovimientoCaja, error)
	ListarMovimientos(ctx context.Context, sesionID uuid.UUID) ([]model.MovimientoCaja, error)
}

type cajaService struct {
	tx          repository.TxManager
	repo        repository.CajaRepository
	secuencias  repository.SecuenciaRepository
	proveedores repository.ProveedorRepository
	loc         *time.Location
	clock       Clock
}

func NewCajaService(
	tx repository.TxManager,
	repo repository.CajaRepository,
	secuencias repository.SecuenciaRepository,
	proveedores repository.ProveedorRepository,
	loc *time.Location,
	clock Clock,
) CajaService {
	if loc == nil {
		loc = time.Local
	}
	return &cajaService{tx: tx, repo: repo, secuencias: secuencias, proveedores: proveedores, loc: loc, clock: clock}
}

func (s *cajaService) Actual(ctx context.Context) (*model.SesionCaja, error) {
	return s.repo.FindAbierta(ctx)
}

// ── Abrir ─────────────────────────────────────────────────────────────────────
// The advisory lock serializes concurrent opens; the partial unique index on
// status='abierta' rejects anything that slips past it.

func (s *cajaService) Abrir(ctx context.Context, usuarioID uuid.UUID) (*dto.AbrirCajaResponse, error) {
	now := s.clock.now()
	var sesion *model.SesionCaja

	err := s.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := s.repo.LockAperturaTx(tx); err != nil {
			return err
		}
		actual, err := s.repo.FindAbiertaTx(tx)
		if err != nil {
			return err
		}
		if actual != nil {
			return apierror.BadRequest(apierror.CodeCashAlreadyOpen).With("session", actual)
		}

		fecha := now.In(s.loc).Format(dateLayout)
		turno, err := s.secuencias.NextTx(tx, model.ScopeTurno(fecha))
		if err != nil {
			return fmt.Errorf("numerar turno: %w", err)
		}
		sesion = &model.SesionCaja{
			ID:            uuid.New(),
			OpeningAmount: decimal.Zero,
			Status:        model.CajaAbierta,
			ShiftNumber:   int(turno),
			ShiftDate:     fecha,
			OpenedBy:      usuarioID,
			OpenedAt:      now,
		}
		return s.repo.CreateSesionTx(tx, sesion)
	})
	if repository.IsUniqueViolation(err, "uq_cash_sessions_one_open") {
		actual, ferr := s.repo.FindAbierta(ctx)
		if ferr != nil {
			log.Warn().Err(ferr).Msg("open session lookup failed after unique violation")
			return nil, ferr
		}
		return nil, apierror.BadRequest(apierror.CodeCashAlreadyOpen).With("session", actual)
	}
	if err != nil {
		return nil, err
	}

	infra.CashSessionEvents.WithLabelValues("open").Inc()
	log.Info().Str("session_id", sesion.ID.String()).Int("shift", sesion.ShiftNumber).
		Str("shift_date", sesion.ShiftDate).Msg("cash session opened")
	return &dto.AbrirCajaResponse{ID: sesion.ID.String(), ShiftNumber: sesion.ShiftNumber}, nil
}

// ── RegistrarMontoApertura ────────────────────────────────────────────────────
// Second phase of opening: the float is declared once the drawer is counted.

func (s *cajaService) RegistrarMontoApertura(ctx context.Context, sesionID uuid.UUID, monto *decimal.Decimal) error {
	if monto == nil || !monto.IsPositive() {
		return apierror.BadRequest(apierror.CodeAmountRequired)
	}
	return s.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		sesion, err := s.lockSesion(tx, sesionID)
		if err != nil {
			return err
		}
		if !sesion.Abierta() {
			return apierror.BadRequest(apierror.CodeCashAlreadyClosed)
		}
		sesion.OpeningAmount = monto.Round(2)
		return s.repo.UpdateSesionTx(tx, sesion)
	})
}

// ── Cerrar ────────────────────────────────────────────────────────────────────

func (s *cajaService) Cerrar(ctx context.Context, sesionID uuid.UUID, montoCierre *decimal.Decimal, usuarioID uuid.UUID) (*dto.CerrarCajaResponse, error) {
	if montoCierre == nil || montoCierre.IsNegative() {
		return nil, apierror.BadRequest(apierror.CodeClosingRequired)
	}
	cierre := montoCierre.Round(2)
	now := s.clock.now()
	var diferencia decimal.Decimal

	err := s.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		sesion, err := s.lockSesion(tx, sesionID)
		if err != nil {
			return err
		}
		if !sesion.Abierta() {
			return apierror.BadRequest(apierror.CodeCashAlreadyClosed)
		}
		diferencia = cierre.Sub(sesion.OpeningAmount)
		sesion.Status = model.CajaCerrada
		sesion.ClosingAmount = &cierre
		sesion.Difference = &diferencia
		sesion.ClosedBy = &usuarioID
		sesion.ClosedAt = &now
		return s.repo.UpdateSesionTx(tx, sesion)
	})
	if err != nil {
		return nil, err
	}

	infra.CashSessionEvents.WithLabelValues("close").Inc()
	log.Info().Str("session_id", sesionID.String()).Str("difference", diferencia.StringFixed(2)).Msg("cash session closed")
	return &dto.CerrarCajaResponse{ID: sesionID.String(), Difference: diferencia}, nil
}

// ── RegistrarMovimiento ───────────────────────────────────────────────────────
// Manual ingreso/egreso on the current session. Amounts are positive; the
// type carries the direction.

func (s *cajaService) RegistrarMovimiento(ctx context.Context, usuarioID uuid.UUID, req dto.MovimientoManualRequest) (*model.MovimientoCaja, error) {
	tipo := strings.TrimSpace(req.Type)
	if tipo == "" {
		tipo = model.MovimientoIngreso
	}
	if tipo != model.MovimientoIngreso && tipo != model.MovimientoEgreso {
		return nil, apierror.BadRequest(apierror.CodeInvalidMovementType)
	}
	if req.Amount == nil || !req.Amount.IsPositive() {
		return nil, apierror.BadRequest(apierror.CodeAmountRequired)
	}
	supplierID, err := parseOptionalID(req.SupplierID)
	if err != nil {
		return nil, apierror.BadRequest(apierror.CodeSupplierNotFound)
	}

	mov := &model.MovimientoCaja{
		ID:         uuid.New(),
		Type:       tipo,
		Amount:     req.Amount.Round(2),
		Reference:  strings.TrimSpace(req.Reference),
		UserID:     usuarioID,
		SupplierID: supplierID,
		CreatedAt:  s.clock.now(),
	}
	err = s.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		actual, err := s.repo.FindAbiertaTx(tx)
		if err != nil {
			return err
		}
		if actual == nil {
			return apierror.BadRequest(apierror.CodeNoCashOpen)
		}
		sesion, err := s.repo.LockByIDTx(tx, actual.ID)
		if err != nil {
			return err
		}
		if !sesion.Abierta() {
			return apierror.BadRequest(apierror.CodeNoCashOpen)
		}
		if supplierID != nil {
			p, err := s.proveedores.FindByID(ctx, *supplierID)
			if repository.IsNotFound(err) || (err == nil && !p.Active) {
				return apierror.BadRequest(apierror.CodeSupplierNotFound)
			}
			if err != nil {
				return err
			}
		}
		mov.SessionID = sesion.ID
		return s.repo.CreateMovimientoTx(tx, mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

func (s *cajaService) ListarMovimientos(ctx context.Context, sesionID uuid.UUID) ([]model.MovimientoCaja, error) {
	if _, err := s.repo.FindByID(ctx, sesionID); err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound(apierror.CodeCashNotFound)
		}
		return nil, err
	}
	return s.repo.ListMovimientos(ctx, sesionID)
}

func (s *cajaService) lockSesion(tx *gorm.DB, id uuid.UUID) (*model.SesionCaja, error) {
	sesion, err := s.repo.LockByIDTx(tx, id)
	if repository.IsNotFound(err) {
		return nil, apierror.NotFound(apierror.CodeCashNotFound)
	}
	return sesion, err
}
