package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/entity"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) List() ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Order("table_number").Find(&tables).Error
	return tables, err
}

func (r *TableRepository) FindByID(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) FindByNumber(number string) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.Where("table_number = ?", number).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) Update(t *entity.Table) error {
	return r.DB.Save(t).Error
}

func (r *TableRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Table{}, id).Error
}

// SetOccupied toggles a table to occupied atomically per table id.
func (r *TableRepository) SetOccupied(tx *gorm.DB, id uint, start time.Time) error {
	return tx.Model(&entity.Table{}).Where("id = ?", id).Updates(map[string]any{
		"status":        entity.TableOccupied,
		"is_occupied":   true,
		"session_start": start,
	}).Error
}

// Free clears occupancy and the session metadata.
func (r *TableRepository) Free(tx *gorm.DB, id uint) error {
	return tx.Model(&entity.Table{}).Where("id = ?", id).Updates(map[string]any{
		"status":           entity.TableAvailable,
		"is_occupied":      false,
		"session_start":    nil,
		"customer_name":    "",
		"party_size":       0,
		"reservation_time": nil,
		"special_request":  "",
	}).Error
}

// CountLiveOrders counts non-terminal orders referencing the table; occupancy
// is derived from this, not stored back-references.
func (r *TableRepository) CountLiveOrders(tx *gorm.DB, tableID uint) (int64, error) {
	var n int64
	err := tx.Model(&entity.Order{}).
		Where("table_id = ? AND status NOT IN ?", tableID,
			[]string{entity.OrderCompleted, entity.OrderCancelled}).
		Count(&n).Error
	return n, err
}

// FindStale lists occupied tables whose session started before the cutoff.
func (r *TableRepository) FindStale(cutoff time.Time) ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Where("is_occupied = ? AND session_start < ?", true, cutoff).
		Find(&tables).Error
	return tables, err
}
