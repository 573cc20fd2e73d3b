package repository

import (
	"context"

	"gastropos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComprobanteRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Comprobante, error)
	// FindLatestBySale returns the most recent invoice issued for the sale.
	FindLatestBySale(ctx context.Context, saleID uuid.UUID) (*model.Comprobante, error)
	List(ctx context.Context, f ComprobanteFiltro) ([]model.Comprobante, error)
	ListBySales(ctx context.Context, saleIDs []uuid.UUID) ([]model.Comprobante, error)
	// ListSinPDF returns invoices still missing a PDF with fewer than maxAttempts failures.
	ListSinPDF(ctx context.Context, maxAttempts, limit int) ([]model.Comprobante, error)
	SetPDF(ctx context.Context, id uuid.UUID, path string) error
	RegistrarFalloPDF(ctx context.Context, id uuid.UUID, msg string) error

	CreateTx(tx *gorm.DB, c *model.Comprobante) error
}

type comprobanteRepo struct{ db *gorm.DB }

func NewComprobanteRepository(db *gorm.DB) ComprobanteRepository {
	return &comprobanteRepo{db: db}
}

func (r *comprobanteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Comprobante, error) {
	var c model.Comprobante
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *comprobanteRepo) FindLatestBySale(ctx context.Context, saleID uuid.UUID) (*model.Comprobante, error) {
	var c model.Comprobante
	err := r.db.WithContext(ctx).
		Where("sale_id = ?", saleID).
		Order("fecha_emision DESC, numero_comprobante DESC").
		First(&c).Error
	return &c, err
}

func (r *comprobanteRepo) List(ctx context.Context, f ComprobanteFiltro) ([]model.Comprobante, error) {
	q := f.apply(r.db.WithContext(ctx).Model(&model.Comprobante{}), "fecha_emision")
	if f.Tipo != "" {
		q = q.Where("tipo_comprobante = ?", f.Tipo)
	}
	var out []model.Comprobante
	err := q.Order("fecha_emision DESC").Find(&out).Error
	return out, err
}

func (r *comprobanteRepo) ListBySales(ctx context.Context, saleIDs []uuid.UUID) ([]model.Comprobante, error) {
	if len(saleIDs) == 0 {
		return nil, nil
	}
	var out []model.Comprobante
	err := r.db.WithContext(ctx).
		Where("sale_id IN ?", saleIDs).
		Order("fecha_emision ASC").
		Find(&out).Error
	return out, err
}

func (r *comprobanteRepo) ListSinPDF(ctx context.Context, maxAttempts, limit int) ([]model.Comprobante, error) {
	var out []model.Comprobante
	err := r.db.WithContext(ctx).
		Where("pdf_path IS NULL AND pdf_attempts < ?", maxAttempts).
		Order("fecha_emision ASC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *comprobanteRepo) SetPDF(ctx context.Context, id uuid.UUID, path string) error {
	return r.db.WithContext(ctx).Model(&model.Comprobante{}).
		Where("id = ?", id).
		Updates(map[string]any{"pdf_path": path, "pdf_error": nil}).Error
}

func (r *comprobanteRepo) RegistrarFalloPDF(ctx context.Context, id uuid.UUID, msg string) error {
	return r.db.WithContext(ctx).Model(&model.Comprobante{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"pdf_attempts": gorm.Expr("pdf_attempts + 1"),
			"pdf_error":    msg,
		}).Error
}

func (r *comprobanteRepo) CreateTx(tx *gorm.DB, c *model.Comprobante) error {
	return tx.Create(c).Error
}
