package repository

import (
	"context"

	"gastropos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmpleadoRepository interface {
	Create(ctx context.Context, e *model.Empleado) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Empleado, error)
	List(ctx context.Context) ([]model.Empleado, error)
	Update(ctx context.Context, e *model.Empleado) error
}

type empleadoRepo struct{ db *gorm.DB }

func NewEmpleadoRepository(db *gorm.DB) EmpleadoRepository { return &empleadoRepo{db: db} }

func (r *empleadoRepo) Create(ctx context.Context, e *model.Empleado) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *empleadoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Empleado, error) {
	var e model.Empleado
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *empleadoRepo) List(ctx context.Context) ([]model.Empleado, error) {
	var out []model.Empleado
	err := r.db.WithContext(ctx).Order("apellido ASC, nombre ASC").Find(&out).Error
	return out, err
}

func (r *empleadoRepo) Update(ctx context.Context, e *model.Empleado) error {
	return r.db.WithContext(ctx).Save(e).Error
}
