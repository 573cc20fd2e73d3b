package repository

import (
	"gorm.io/gorm"
)

// SecuenciaRepository hands out gap-free numbers per scope. The upsert takes a
// row lock on the scope, so concurrent transactions on the same scope
// serialize until the first one commits or rolls back.
type SecuenciaRepository interface {
	NextTx(tx *gorm.DB, scope string) (int64, error)
}

type secuenciaRepo struct{}

func NewSecuenciaRepository() SecuenciaRepository { return &secuenciaRepo{} }

func (r *secuenciaRepo) NextTx(tx *gorm.DB, scope string) (int64, error) {
	var value int64
	err := tx.Raw(`
INSERT INTO sequences (scope, value) VALUES (?, 1)
ON CONFLICT (scope) DO UPDATE SET value = sequences.value + 1
RETURNING value`, scope).Scan(&value).Error
	return value, err
}
