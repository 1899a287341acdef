package repository

import (
	"gorm.io/gorm"

	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) List() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("category, name").Find(&items).Error
	return items, err
}

func (r *MenuRepository) ListAvailable() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("available = ?", true).Order("category, name").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Update(m *entity.MenuItem) error {
	return r.DB.Save(m).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

func (r *MenuRepository) SetAvailability(id uint, available bool) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).
		Update("available", available).Error
}
