package repository

import (
	"context"
	"strings"

	"gastropos/internal/dto"
	"gastropos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for the catalog.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// FindActivosTx loads active products by id inside a checkout transaction.
	FindActivosTx(tx *gorm.DB, ids []uuid.UUID) ([]model.Producto, error)
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *productoRepo) List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, error) {
	q := r.db.WithContext(ctx).Where("active = true")
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(COALESCE(sku, '')) LIKE ?", like, like)
	}
	var productos []model.Producto
	err := q.Order("category ASC, name ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	res := r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", id).Update("active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productoRepo) FindActivosTx(tx *gorm.DB, ids []uuid.UUID) ([]model.Producto, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var productos []model.Producto
	err := tx.Where("id IN ? AND active = true", ids).Find(&productos).Error
	return productos, err
}
