package entity

import (
	"gorm.io/gorm"
)

// Menu categories are a closed set; "beverage" feeds the drink subtotal on bills.
const (
	CategoryStarter    = "starter"
	CategoryMainCourse = "main course"
	CategoryBread      = "bread"
	CategoryDessert    = "dessert"
	CategoryBeverage   = "beverage"
)

func ValidCategory(c string) bool {
	switch c {
	case CategoryStarter, CategoryMainCourse, CategoryBread, CategoryDessert, CategoryBeverage:
		return true
	}
	return false
}

type MenuItem struct {
	gorm.Model
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	SpiceLevel  int      `json:"spiceLevel"` // 0..3
	Discount    *float64 `json:"discount,omitempty"`
	Available   bool     `json:"available"`
	IsVeg       *bool    `json:"isVeg"` // nil = unknown
	ImageURL    string   `json:"imageUrl"`

	OrderItems []OrderItem `json:"-"`
}
