package repository

import (
	"context"

	"gastropos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VentaRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	List(ctx context.Context, f VentaFiltro) ([]model.Venta, error)
	Resumen(ctx context.Context, f VentaFiltro) ([]ResumenMetodo, error)
	ListBySesiones(ctx context.Context, sessionIDs []uuid.UUID) ([]model.Venta, error)

	// CreateTx inserts the sale and its items. v.ID must be set by the caller.
	CreateTx(tx *gorm.DB, v *model.Venta) error
}

// ResumenMetodo is one payment method's share of a sales summary.
type ResumenMetodo struct {
	PaymentMethod string
	Cantidad      int64
	Total         decimal.Decimal
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	db := r.db.WithContext(ctx)
	var v model.Venta
	if err := db.First(&v, "id = ?", id).Error; err != nil {
		return &v, err
	}
	err := db.Table("sale_items AS si").
		Select("si.*, COALESCE(p.name, si.description) AS product_name").
		Joins("LEFT JOIN products p ON p.id = si.product_id").
		Where("si.sale_id = ?", id).
		Order("si.position").
		Scan(&v.Items).Error
	return &v, err
}

const ventasSelect = `s.*,
	COALESCE(u.full_name, '') AS user_name,
	COALESCE(
		(SELECT i.cliente_razon_social FROM invoices i
		  WHERE i.sale_id = s.id ORDER BY i.fecha_emision DESC LIMIT 1),
		'Consumidor Final') AS customer_name`

func (r *ventaRepo) ventasQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("sales AS s").
		Select(ventasSelect).
		Joins("LEFT JOIN users u ON u.id = s.user_id")
}

func (r *ventaRepo) List(ctx context.Context, f VentaFiltro) ([]model.Venta, error) {
	q := f.apply(r.ventasQuery(ctx), "s.created_at")
	if f.Turno > 0 {
		q = q.Where("s.shift_number = ?", f.Turno)
	}
	var ventas []model.Venta
	err := q.Order("s.created_at DESC").Scan(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) Resumen(ctx context.Context, f VentaFiltro) ([]ResumenMetodo, error) {
	q := r.db.WithContext(ctx).Table("sales").
		Select("payment_method, COUNT(*) AS cantidad, COALESCE(SUM(total), 0) AS total")
	q = f.apply(q, "created_at")
	if f.Turno > 0 {
		q = q.Where("shift_number = ?", f.Turno)
	}
	var rows []ResumenMetodo
	err := q.Group("payment_method").Scan(&rows).Error
	return rows, err
}

func (r *ventaRepo) ListBySesiones(ctx context.Context, sessionIDs []uuid.UUID) ([]model.Venta, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}
	var ventas []model.Venta
	err := r.ventasQuery(ctx).
		Where("s.cash_session_id IN ?", sessionIDs).
		Order("s.created_at ASC").
		Scan(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.Venta) error {
	if err := tx.Omit(clause.Associations).Create(v).Error; err != nil {
		return err
	}
	if len(v.Items) == 0 {
		return nil
	}
	for i := range v.Items {
		v.Items[i].SaleID = v.ID
		v.Items[i].Position = i + 1
	}
	return tx.Create(&v.Items).Error
}
