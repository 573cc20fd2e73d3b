package repository

import (
	"context"

	"gastropos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	// FindByEmail matches case-insensitively and only returns active users.
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	List(ctx context.Context) ([]model.Usuario, error)
	Update(ctx context.Context, u *model.Usuario) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(u).Error
}

func (r *usuarioRepo) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Preload("Employee").
		Where("LOWER(email) = LOWER(?) AND active = true", email).
		First(&u).Error
	return &u, err
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Preload("Employee").First(&u, "id = ?", id).Error
	return &u, err
}

func (r *usuarioRepo) List(ctx context.Context) ([]model.Usuario, error) {
	var users []model.Usuario
	err := r.db.WithContext(ctx).Preload("Employee").Order("full_name ASC").Find(&users).Error
	return users, err
}

func (r *usuarioRepo) Update(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Omit("Employee").Save(u).Error
}

func (r *usuarioRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	res := r.db.WithContext(ctx).Model(&model.Usuario{}).Where("id = ?", id).Update("active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
