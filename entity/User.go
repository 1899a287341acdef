package entity

import (
	"gorm.io/gorm"
)

// User is a staff account for the admin console. Customers are not
// authenticated; they are identified per order by PlacedBy.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `json:"role"` // "staff" or "admin"
}
