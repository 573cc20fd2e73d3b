package repository

import (
	"context"

	"gastropos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PedidoRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	// ListBySesion: status "" lists all; otherwise exact match.
	ListBySesion(ctx context.Context, sessionID uuid.UUID, status string) ([]model.Pedido, error)
	// ListCocina returns orders of the session with the given statuses,
	// oldest first, with items and product names.
	ListCocina(ctx context.Context, sessionID uuid.UUID, statuses []string, prepStatus string) ([]model.Pedido, error)
	ListReporte(ctx context.Context, f PedidoReporteFiltro) ([]PedidoConTurno, error)

	CreateTx(tx *gorm.DB, p *model.Pedido) error
	LockByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Pedido, error)
	ItemsTx(tx *gorm.DB, orderID uuid.UUID) ([]model.PedidoItem, error)
	UpdateTx(tx *gorm.DB, p *model.Pedido) error
	ReplaceItemsTx(tx *gorm.DB, orderID uuid.UUID, items []model.PedidoItem) error
}

// PedidoConTurno is an order row joined with its session's shift number.
type PedidoConTurno struct {
	model.Pedido
	ShiftNumber int
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func itemsConNombre(db *gorm.DB) *gorm.DB {
	return db.Table("order_items AS oi").
		Select("oi.*, COALESCE(p.name, '') AS product_name").
		Joins("LEFT JOIN products p ON p.id = oi.product_id").
		Order("oi.position")
}

func (r *pedidoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	db := r.db.WithContext(ctx)
	var p model.Pedido
	if err := db.First(&p, "id = ?", id).Error; err != nil {
		return &p, err
	}
	err := itemsConNombre(db).Where("oi.order_id = ?", id).Scan(&p.Items).Error
	return &p, err
}

func (r *pedidoRepo) ListBySesion(ctx context.Context, sessionID uuid.UUID, status string) ([]model.Pedido, error) {
	q := r.db.WithContext(ctx).Where("cash_session_id = ?", sessionID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var pedidos []model.Pedido
	err := q.Order("created_at DESC").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) ListCocina(ctx context.Context, sessionID uuid.UUID, statuses []string, prepStatus string) ([]model.Pedido, error) {
	db := r.db.WithContext(ctx)
	q := db.Where("cash_session_id = ? AND status IN ?", sessionID, statuses)
	if prepStatus != "" {
		q = q.Where("prep_status = ?", prepStatus)
	}
	var pedidos []model.Pedido
	if err := q.Order("created_at ASC").Find(&pedidos).Error; err != nil {
		return nil, err
	}
	if err := r.attachItems(db, pedidos); err != nil {
		return nil, err
	}
	return pedidos, nil
}

func (r *pedidoRepo) attachItems(db *gorm.DB, pedidos []model.Pedido) error {
	if len(pedidos) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(pedidos))
	idx := make(map[uuid.UUID]int, len(pedidos))
	for i, p := range pedidos {
		ids[i] = p.ID
		idx[p.ID] = i
	}
	var items []model.PedidoItem
	if err := itemsConNombre(db).Where("oi.order_id IN ?", ids).Scan(&items).Error; err != nil {
		return err
	}
	for _, it := range items {
		i := idx[it.OrderID]
		pedidos[i].Items = append(pedidos[i].Items, it)
	}
	return nil
}

func (r *pedidoRepo) ListReporte(ctx context.Context, f PedidoReporteFiltro) ([]PedidoConTurno, error) {
	q := r.db.WithContext(ctx).Table("orders AS o").
		Select("o.*, cs.shift_number AS shift_number").
		Joins("JOIN cash_sessions cs ON cs.id = o.cash_session_id")
	q = f.apply(q, "o.created_at")
	if f.Status != "" {
		q = q.Where("o.status = ?", f.Status)
	}
	if f.PrepStatus != "" {
		q = q.Where("o.prep_status = ?", f.PrepStatus)
	}
	var rows []PedidoConTurno
	err := q.Order("o.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *pedidoRepo) CreateTx(tx *gorm.DB, p *model.Pedido) error {
	if err := tx.Omit(clause.Associations).Create(p).Error; err != nil {
		return err
	}
	for i := range p.Items {
		p.Items[i].OrderID = p.ID
		p.Items[i].Position = i + 1
	}
	if len(p.Items) == 0 {
		return nil
	}
	return tx.Create(&p.Items).Error
}

func (r *pedidoRepo) LockByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *pedidoRepo) ItemsTx(tx *gorm.DB, orderID uuid.UUID) ([]model.PedidoItem, error) {
	var items []model.PedidoItem
	err := tx.Where("order_id = ?", orderID).Order("position").Find(&items).Error
	return items, err
}

func (r *pedidoRepo) UpdateTx(tx *gorm.DB, p *model.Pedido) error {
	return tx.Omit(clause.Associations).Save(p).Error
}

func (r *pedidoRepo) ReplaceItemsTx(tx *gorm.DB, orderID uuid.UUID, items []model.PedidoItem) error {
	if err := tx.Where("order_id = ?", orderID).Delete(&model.PedidoItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = orderID
		items[i].Position = i + 1
	}
	return tx.Create(&items).Error
}
