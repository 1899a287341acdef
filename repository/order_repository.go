package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB { return db.Order("order_status_events.id") }).
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderRow reads the order row only, without preloads. Used inside
// transactions where the line lists are not needed.
func (r *OrderRepository) GetOrderRow(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListActive(limit int) ([]entity.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("status NOT IN ?", []string{entity.OrderCompleted, entity.OrderCancelled}).
		Order("id DESC").Limit(limit).
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListByTable(tableID uint, limit int) ([]entity.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("table_id = ?", tableID).
		Order("id DESC").Limit(limit).
		Find(&orders).Error
	return orders, err
}

// FindExpired lists non-terminal orders whose expiry has passed.
func (r *OrderRepository) FindExpired(now time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Where("expires_at < ? AND status NOT IN ?", now,
			[]string{entity.OrderCompleted, entity.OrderCancelled}).
		Find(&orders).Error
	return orders, err
}

// HardDelete removes the order and its dependents permanently.
func (r *OrderRepository) HardDelete(orderID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderStatusEvent{}).Error; err != nil {
			return err
		}
		res := tx.Unscoped().Delete(&entity.Order{}, orderID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ---------------- Status ----------------

// UpdateStatusGuard is a compare-and-set on the status column: the update
// applies only while the order is still in `from`. RowsAffected==0 means a
// concurrent writer won.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) AppendStatusEvent(tx *gorm.DB, orderID uint, status string) error {
	return tx.Create(&entity.OrderStatusEvent{OrderID: orderID, Status: status}).Error
}

// ---------------- Lines & totals ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Order("id").Find(&items).Error
	return items, err
}

// AddToTotals bumps totalPrice (and additionalPrice when the lines were
// appended) with atomic SQL increments; no read-modify-write.
func (r *OrderRepository) AddToTotals(tx *gorm.DB, orderID uint, delta float64, additional bool) error {
	updates := map[string]any{
		"total_price": gorm.Expr("total_price + ?", delta),
	}
	if additional {
		updates["additional_price"] = gorm.Expr("additional_price + ?", delta)
	}
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(updates).Error
}

func (r *OrderRepository) SetExpiry(tx *gorm.DB, orderID uint, at time.Time) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("expires_at", at).Error
}

// ---------------- Payment writeback ----------------

func (r *OrderRepository) SetPayment(tx *gorm.DB, orderID uint, status, method string) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(map[string]any{
		"payment_status": status,
		"payment_method": method,
	}).Error
}
