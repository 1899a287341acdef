package configs

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/entity"
)

// SeedAdmin creates the first admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedTables creates tables T1..Tn on first run so the floor plan is usable
// out of the box.
func SeedTables(n int) error {
	db := DB()
	var count int64
	db.Model(&entity.Table{}).Count(&count)
	if count > 0 {
		return nil
	}
	for i := 1; i <= n; i++ {
		t := entity.Table{
			TableNumber: fmt.Sprintf("T%d", i),
			Capacity:    4,
			Status:      entity.TableAvailable,
		}
		if err := db.Create(&t).Error; err != nil {
			return err
		}
	}
	return nil
}
