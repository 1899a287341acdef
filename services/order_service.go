package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/entity"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/pkg/apperr"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/repository"
)

const (
	orderTTL       = 2 * time.Hour // auto-cancel window for new orders
	addItemsExtend = 1 * time.Hour // expiry extension when items are appended
)

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	MenuRepo  *repository.MenuRepository
	TableRepo *repository.TableRepository
	Notifier  Notifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	tableRepo *repository.TableRepository,
	notifier Notifier,
) *OrderService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, TableRepo: tableRepo, Notifier: notifier}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID uint `json:"menuItemId"`
	Qty        int  `json:"qty"`
}

type CreateOrderReq struct {
	TableNumber   string        `json:"tableNumber"`
	Items         []OrderItemIn `json:"items"`
	PaymentMethod string        `json:"paymentMethod"`
	Notes         string        `json:"notes"`
	PlacedBy      string        `json:"placedBy"`
}

// ----- Create -----

func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, apperr.InvalidInput("items is required")
	}

	table, err := s.TableRepo.FindByNumber(req.TableNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("table not found")
		}
		return nil, err
	}

	lines, total, err := s.resolveLines(req.Items, false)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := entity.Order{
		TableID:       table.ID,
		TotalPrice:    total,
		Status:        entity.OrderPending,
		PaymentStatus: entity.PaymentStatusPending,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		PlacedBy:      req.PlacedBy,
		ExpiresAt:     now.Add(orderTTL),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for i := range lines {
			lines[i].OrderID = order.ID
			if err := s.Repo.CreateOrderItem(tx, &lines[i]); err != nil {
				return err
			}
		}
		if err := s.Repo.AppendStatusEvent(tx, order.ID, entity.OrderPending); err != nil {
			return err
		}
		return s.TableRepo.SetOccupied(tx, table.ID, now)
	})
	if err != nil {
		return nil, err
	}

	s.Notifier.Emit(EventOrderCreated, map[string]any{
		"orderId":     order.ID,
		"tableNumber": table.TableNumber,
		"totalPrice":  order.TotalPrice,
		"itemsCount":  len(lines),
		"status":      order.Status,
	})
	s.emitTable(table.ID)

	return s.Get(order.ID)
}

// ----- Add items -----

// AddItems appends lines to an in-flight order. The original items list is
// never touched; a served order regresses to pending so the kitchen
// re-acknowledges the new work.
func (s *OrderService) AddItems(orderID uint, items []OrderItemIn) (*entity.Order, error) {
	if len(items) == 0 {
		return nil, apperr.InvalidInput("items is required")
	}

	lines, delta, err := s.resolveLines(items, true)
	if err != nil {
		return nil, err
	}

	var status string
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrderRow(tx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order not found")
			}
			return err
		}
		if entity.IsTerminal(o.Status) {
			return apperr.Conflict("order is " + o.Status)
		}
		status = o.Status

		for i := range lines {
			lines[i].OrderID = o.ID
			if err := s.Repo.CreateOrderItem(tx, &lines[i]); err != nil {
				return err
			}
		}
		if err := s.Repo.AddToTotals(tx, o.ID, delta, true); err != nil {
			return err
		}

		if o.Status == entity.OrderServed {
			affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, entity.OrderServed, entity.OrderPending)
			if err != nil {
				return err
			}
			if affected == 1 {
				status = entity.OrderPending
				if err := s.Repo.AppendStatusEvent(tx, o.ID, entity.OrderPending); err != nil {
					return err
				}
			}
		}

		return s.Repo.SetExpiry(tx, o.ID, time.Now().Add(addItemsExtend))
	})
	if err != nil {
		return nil, err
	}

	out, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}

	added := make([]map[string]any, 0, len(lines))
	for _, l := range lines {
		added = append(added, map[string]any{"name": l.Name, "qty": l.Qty})
	}
	s.Notifier.Emit(EventOrderUpdated, map[string]any{
		"orderId":            out.ID,
		"newAdditionalItems": added,
		"addedItemsCount":    len(added),
		"newAdditionalPrice": out.AdditionalPrice,
		"newTotalPrice":      out.TotalPrice,
		"status":             status,
	})
	return out, nil
}

// ----- Status transitions -----

// UpdateStatus moves an order along the state machine. Setting "completed"
// through this path is rejected; Complete is the only route there.
func (s *OrderService) UpdateStatus(orderID uint, newStatus string) (*entity.Order, error) {
	if newStatus == entity.OrderCompleted {
		return nil, apperr.InvalidOperation("use the completion endpoint to complete an order")
	}
	if !ValidOrderStatus(newStatus) {
		return nil, apperr.InvalidTransition("unknown status: " + newStatus)
	}

	var tableID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrderRow(tx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order not found")
			}
			return err
		}
		if !CanTransition(o.Status, newStatus) {
			return apperr.InvalidTransition(o.Status + " -> " + newStatus + " is not permitted")
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, newStatus)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Conflict("order changed concurrently")
		}
		if err := s.Repo.AppendStatusEvent(tx, o.ID, newStatus); err != nil {
			return err
		}

		if newStatus == entity.OrderCancelled {
			tableID = o.TableID
			return s.syncTableOccupancy(tx, o.TableID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	s.Notifier.Emit(EventOrderStatusUpdated, out)
	if tableID != 0 {
		s.emitTable(tableID)
	}
	return out, nil
}

// Complete is the dedicated terminal transition: served -> completed, cash
// settlement for cash orders, and table release.
func (s *OrderService) Complete(orderID uint) (*entity.Order, error) {
	var tableID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrderRow(tx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order not found")
			}
			return err
		}
		if !CanTransition(o.Status, entity.OrderCompleted) {
			return apperr.InvalidTransition(o.Status + " -> completed is not permitted")
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, entity.OrderCompleted)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Conflict("order changed concurrently")
		}
		if err := s.Repo.AppendStatusEvent(tx, o.ID, entity.OrderCompleted); err != nil {
			return err
		}

		if o.PaymentMethod == entity.PayMethodCash && o.PaymentStatus == entity.PaymentStatusPending {
			if err := s.Repo.SetPayment(tx, o.ID, entity.PaymentStatusPaid, entity.PayMethodCash); err != nil {
				return err
			}
		}

		tableID = o.TableID
		return s.syncTableOccupancy(tx, o.TableID)
	})
	if err != nil {
		return nil, err
	}

	out, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	s.Notifier.Emit(EventOrderStatusUpdated, out)
	s.emitTable(tableID)
	return out, nil
}

// ----- Reads / delete -----

func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) ListActive(limit int) ([]entity.Order, error) {
	return s.Repo.ListActive(limit)
}

func (s *OrderService) ListByTable(tableID uint, limit int) ([]entity.Order, error) {
	return s.Repo.ListByTable(tableID, limit)
}

// Delete hard-removes the order. Deliberately no table release: deletion is
// an administrative correction, not a lifecycle event.
func (s *OrderService) Delete(orderID uint) error {
	if err := s.Repo.HardDelete(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("order not found")
		}
		return err
	}
	return nil
}

// ----- internals -----

// resolveLines freezes catalog prices into snapshot lines.
func (s *OrderService) resolveLines(items []OrderItemIn, additional bool) ([]entity.OrderItem, float64, error) {
	lines := make([]entity.OrderItem, 0, len(items))
	var total float64
	for _, it := range items {
		if it.Qty < 1 {
			return nil, 0, apperr.InvalidInput("qty must be at least 1")
		}
		m, err := s.MenuRepo.FindByID(it.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, apperr.InvalidInput("unknown menu item")
			}
			return nil, 0, err
		}
		lines = append(lines, entity.OrderItem{
			MenuItemID: m.ID,
			Name:       m.Name,
			Category:   m.Category,
			UnitPrice:  m.Price,
			Qty:        it.Qty,
			IsAddition: additional,
		})
		total += m.Price * float64(it.Qty)
	}
	return lines, total, nil
}

// syncTableOccupancy frees the table when no non-terminal order references it.
func (s *OrderService) syncTableOccupancy(tx *gorm.DB, tableID uint) error {
	live, err := s.TableRepo.CountLiveOrders(tx, tableID)
	if err != nil {
		return err
	}
	if live == 0 {
		return s.TableRepo.Free(tx, tableID)
	}
	return nil
}

func (s *OrderService) emitTable(tableID uint) {
	if t, err := s.TableRepo.FindByID(tableID); err == nil {
		s.Notifier.Emit(EventTablesUpdated, t)
	}
}
