package repository

import (
	"context"

	"gastropos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CajaRepository interface {
	// FindAbierta returns the most recently opened abierta session, or nil.
	FindAbierta(ctx context.Context) (*model.SesionCaja, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.SesionCaja, error)
	ListSesiones(ctx context.Context, f SesionFiltro) ([]model.SesionCaja, error)
	ListMovimientos(ctx context.Context, sessionID uuid.UUID) ([]model.MovimientoCaja, error)
	ListMovimientosBySesiones(ctx context.Context, sessionIDs []uuid.UUID) ([]model.MovimientoCaja, error)

	// LockAperturaTx serializes session opening for the rest of tx.
	LockAperturaTx(tx *gorm.DB) error
	FindAbiertaTx(tx *gorm.DB) (*model.SesionCaja, error)
	// LockByIDTx reads the session with FOR UPDATE.
	LockByIDTx(tx *gorm.DB, id uuid.UUID) (*model.SesionCaja, error)
	CreateSesionTx(tx *gorm.DB, s *model.SesionCaja) error
	UpdateSesionTx(tx *gorm.DB, s *model.SesionCaja) error
	CreateMovimientoTx(tx *gorm.DB, m *model.MovimientoCaja) error
}

type cajaRepo struct{ db *gorm.DB }

func NewCajaRepository(db *gorm.DB) CajaRepository { return &cajaRepo{db: db} }

func (r *cajaRepo) FindAbierta(ctx context.Context) (*model.SesionCaja, error) {
	return findAbierta(r.db.WithContext(ctx))
}

func (r *cajaRepo) FindAbiertaTx(tx *gorm.DB) (*model.SesionCaja, error) {
	return findAbierta(tx)
}

func findAbierta(db *gorm.DB) (*model.SesionCaja, error) {
	var sesiones []model.SesionCaja
	err := db.Where("status = ?", model.CajaAbierta).
		Order("opened_at DESC").Limit(1).
		Find(&sesiones).Error
	if err != nil || len(sesiones) == 0 {
		return nil, err
	}
	return &sesiones[0], nil
}

func (r *cajaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.SesionCaja, error) {
	var s model.SesionCaja
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *cajaRepo) ListSesiones(ctx context.Context, f SesionFiltro) ([]model.SesionCaja, error) {
	q := r.db.WithContext(ctx).Table("cash_sessions AS cs").
		Select(`cs.*, COALESCE(uo.full_name, '') AS opened_by_name, COALESCE(uc.full_name, '') AS closed_by_name`).
		Joins("LEFT JOIN users uo ON uo.id = cs.opened_by").
		Joins("LEFT JOIN users uc ON uc.id = cs.closed_by")
	q = f.apply(q, "cs.opened_at")
	if f.Turno > 0 {
		q = q.Where("cs.shift_number = ?", f.Turno)
	}
	var sesiones []model.SesionCaja
	err := q.Order("cs.opened_at ASC").Scan(&sesiones).Error
	return sesiones, err
}

const movimientosSelect = `m.*,
	COALESCE(u.full_name, '') AS user_name,
	COALESCE(s.razon_social, '') AS supplier_name,
	CASE WHEN m.type = 'venta' THEN COALESCE(
		(SELECT i.cliente_razon_social FROM invoices i
		  WHERE i.sale_id = m.sale_id ORDER BY i.fecha_emision DESC LIMIT 1),
		'Consumidor Final')
	ELSE '' END AS customer_name`

func (r *cajaRepo) movimientosQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("cash_movements AS m").
		Select(movimientosSelect).
		Joins("LEFT JOIN users u ON u.id = m.user_id").
		Joins("LEFT JOIN suppliers s ON s.id = m.supplier_id")
}

func (r *cajaRepo) ListMovimientos(ctx context.Context, sessionID uuid.UUID) ([]model.MovimientoCaja, error) {
	var movs []model.MovimientoCaja
	err := r.movimientosQuery(ctx).
		Where("m.session_id = ?", sessionID).
		Order("m.created_at DESC").
		Scan(&movs).Error
	return movs, err
}

func (r *cajaRepo) ListMovimientosBySesiones(ctx context.Context, sessionIDs []uuid.UUID) ([]model.MovimientoCaja, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}
	var movs []model.MovimientoCaja
	err := r.movimientosQuery(ctx).
		Where("m.session_id IN ?", sessionIDs).
		Order("m.created_at ASC").
		Scan(&movs).Error
	return movs, err
}

func (r *cajaRepo) LockAperturaTx(tx *gorm.DB) error {
	return tx.Exec("SELECT pg_advisory_xact_lock(hashtext('cash_sessions:open'))").Error
}

func (r *cajaRepo) LockByIDTx(tx *gorm.DB, id uuid.UUID) (*model.SesionCaja, error) {
	var s model.SesionCaja
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *cajaRepo) CreateSesionTx(tx *gorm.DB, s *model.SesionCaja) error {
	return tx.Create(s).Error
}

func (r *cajaRepo) UpdateSesionTx(tx *gorm.DB, s *model.SesionCaja) error {
	return tx.Save(s).Error
}

func (r *cajaRepo) CreateMovimientoTx(tx *gorm.DB, m *model.MovimientoCaja) error {
	return tx.Create(m).Error
}
