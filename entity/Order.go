package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderServed    = "served"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

const (
	PaymentStatusPending  = "Pending"
	PaymentStatusPaid     = "Paid"
	PaymentStatusPartial  = "Partial"
	PaymentStatusRefunded = "Refunded"
)

const (
	PayMethodCash   = "cash"
	PayMethodCard   = "card"
	PayMethodOnline = "online"
)

// IsTerminal reports whether no further status transitions are permitted.
func IsTerminal(status string) bool {
	return status == OrderCompleted || status == OrderCancelled
}

type Order struct {
	gorm.Model
	TableID uint  `json:"tableId"`
	Table   Table `json:"-"` // preload only when table detail is needed

	// TotalPrice = sum of captured unit price x qty over all lines;
	// AdditionalPrice = the share contributed by appended lines.
	TotalPrice      float64 `json:"totalPrice"`
	AdditionalPrice float64 `json:"additionalPrice"`

	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	PaymentMethod string `json:"paymentMethod"`

	Notes    string `json:"notes"`
	PlacedBy string `json:"placedBy"`

	ExpiresAt time.Time `json:"expiresAt"`

	Items         []OrderItem        `json:"items"`
	StatusHistory []OrderStatusEvent `json:"statusHistory"`
	Payments      []Payment          `json:"-"`
}
