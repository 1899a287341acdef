package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/entity"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/pkg/apperr"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/repository"
)

// PaymentGateway is the remote payment collaborator: open an intent for an
// amount, get back the gateway's intent reference.
type PaymentGateway interface {
	CreateIntent(amount float64, receipt string) (string, error)
}

type PaymentService struct {
	DB        *gorm.DB
	Repo      *repository.PaymentRepository
	OrderRepo *repository.OrderRepository
	Gateway   PaymentGateway
}

func NewPaymentService(db *gorm.DB, repo *repository.PaymentRepository, orderRepo *repository.OrderRepository, gw PaymentGateway) *PaymentService {
	return &PaymentService{DB: db, Repo: repo, OrderRepo: orderRepo, Gateway: gw}
}

type IntentOut struct {
	PaymentID uint    `json:"paymentId"`
	IntentRef string  `json:"intent"`
	Amount    float64 `json:"amount"`
}

// CreateIntent opens a remote intent for the order's authoritative
// totalPrice and records a Pending payment row. Gateway failures surface as
// UpstreamFailure; retries are caller-initiated.
func (s *PaymentService) CreateIntent(orderID uint) (*IntentOut, error) {
	o, err := s.OrderRepo.GetOrderRow(s.DB, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}

	ref, err := s.Gateway.CreateIntent(o.TotalPrice, o.PlacedBy)
	if err != nil {
		return nil, apperr.Upstream("payment gateway", err)
	}

	p := entity.Payment{
		OrderID:   o.ID,
		Amount:    o.TotalPrice,
		Method:    entity.PayMethodOnline,
		Status:    entity.PaymentPending,
		IntentRef: ref,
	}
	if err := s.Repo.Create(s.DB, &p); err != nil {
		return nil, err
	}
	return &IntentOut{PaymentID: p.ID, IntentRef: ref, Amount: p.Amount}, nil
}

// Verify marks the payment Paid and writes the settled status back onto the
// order. The remote transaction id is taken on trust; gateway signature
// verification is a recommended hardening.
func (s *PaymentService) Verify(paymentID, orderID uint, remoteTxnID string) error {
	if remoteTxnID == "" {
		return apperr.InvalidInput("transaction id is required")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		p, err := s.Repo.FindByID(paymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("payment not found")
			}
			return err
		}
		if p.OrderID != orderID {
			return apperr.InvalidInput("payment does not belong to this order")
		}

		if err := s.Repo.MarkPaid(tx, p.ID, remoteTxnID, time.Now()); err != nil {
			return err
		}
		return s.OrderRepo.SetPayment(tx, orderID, entity.PaymentStatusPaid, entity.PayMethodOnline)
	})
}

func (s *PaymentService) ListForOrder(orderID uint) ([]entity.Payment, error) {
	if _, err := s.OrderRepo.GetOrderRow(s.DB, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	return s.Repo.ListByOrder(orderID)
}
