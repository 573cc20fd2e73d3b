package repository

import (
	"context"
	"strings"

	"gastropos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	ExistsDocumento(ctx context.Context, numero string, exclude *uuid.UUID) (bool, error)
	// List matches search against razon social, document and full name.
	List(ctx context.Context, search string) ([]model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *clienteRepo) ExistsDocumento(ctx context.Context, numero string, exclude *uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).Model(&model.Cliente{}).Where("numero_documento = ?", numero)
	if exclude != nil {
		q = q.Where("id <> ?", *exclude)
	}
	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *clienteRepo) List(ctx context.Context, search string) ([]model.Cliente, error) {
	q := r.db.WithContext(ctx).Model(&model.Cliente{})
	if s := strings.TrimSpace(search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(`LOWER(razon_social) LIKE ? OR numero_documento LIKE ?
			OR LOWER(COALESCE(nombre, '') || ' ' || COALESCE(apellido, '')) LIKE ?`, like, "%"+s+"%", like)
	}
	var out []model.Cliente
	err := q.Order("razon_social ASC, apellido ASC, nombre ASC").Limit(200).Find(&out).Error
	return out, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}
