package entity

import (
	"gorm.io/gorm"
)

// OrderStatusEvent is one append-only statusHistory entry; CreatedAt is the
// transition timestamp. The latest event always matches Order.Status.
type OrderStatusEvent struct {
	gorm.Model
	OrderID uint   `json:"orderId"`
	Status  string `json:"status"`
}
