package entity

import (
	"gorm.io/gorm"
)

// OrderItem is a snapshot line: name, category and unit price are captured
// from the catalog at order time and never re-read.
type OrderItem struct {
	gorm.Model
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`

	// true for lines appended after creation (additionalItems)
	IsAddition bool `json:"isAddition"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}

func (i *OrderItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Qty)
}
