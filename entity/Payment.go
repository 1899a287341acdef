package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
	PaymentFailed  = "Failed"
)

// Payment is one reconciliation attempt. An order may accumulate several
// rows across retries; only the most recent Paid one is authoritative.
type Payment struct {
	gorm.Model
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
	Status string  `json:"status"`

	// remote gateway references: IntentRef from createIntent,
	// TransactionID stamped by verify
	IntentRef     string `json:"intentRef"`
	TransactionID string `json:"transactionId"`

	PaidAt *time.Time `json:"paidAt,omitempty"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`
}
