package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/entity"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *PaymentRepository) FindByID(id uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) ListByOrder(orderID uint) ([]entity.Payment, error) {
	var ps []entity.Payment
	err := r.DB.Where("order_id = ?", orderID).Order("id DESC").Find(&ps).Error
	return ps, err
}

func (r *PaymentRepository) MarkPaid(tx *gorm.DB, id uint, txnID string, at time.Time) error {
	return tx.Model(&entity.Payment{}).Where("id = ?", id).Updates(map[string]any{
		"status":         entity.PaymentPaid,
		"transaction_id": txnID,
		"paid_at":        at,
	}).Error
}
