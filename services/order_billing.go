package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/entity"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/pkg/apperr"
)

const gstRate = 0.025 // CGST and SGST, 2.5% each

type BillLine struct {
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
	IsDrink   bool    `json:"isDrink"`
}

type Bill struct {
	OrderID       uint       `json:"orderId"`
	TableNumber   string     `json:"tableNumber"`
	Lines         []BillLine `json:"lines"`
	FoodSubtotal  float64    `json:"foodSubtotal"`
	DrinkSubtotal float64    `json:"drinkSubtotal"`
	Subtotal      float64    `json:"subtotal"`
	CGST          float64    `json:"cgst"`
	SGST          float64    `json:"sgst"`
	GrandTotal    float64    `json:"grandTotal"`
	GeneratedAt   time.Time  `json:"generatedAt"`
}

// GenerateBill computes the itemized, tax-inclusive receipt from captured
// line prices and frees the order's table — billing is the table-turnover
// trigger, independent of order status. It never touches Order.TotalPrice:
// the bill's grandTotal (receipt) and the order's totalPrice (payment
// capture) are intentionally different figures.
func (s *OrderService) GenerateBill(orderID uint) (*Bill, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}

	table, err := s.TableRepo.FindByID(o.TableID)
	if err != nil {
		return nil, err
	}

	bill := &Bill{
		OrderID:     o.ID,
		TableNumber: table.TableNumber,
		GeneratedAt: time.Now(),
	}
	for _, it := range o.Items {
		drink := it.Category == entity.CategoryBeverage
		line := BillLine{
			Name:      it.Name,
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice,
			Total:     it.LineTotal(),
			IsDrink:   drink,
		}
		if drink {
			bill.DrinkSubtotal += line.Total
		} else {
			bill.FoodSubtotal += line.Total
		}
		bill.Lines = append(bill.Lines, line)
	}
	bill.Subtotal = bill.FoodSubtotal + bill.DrinkSubtotal
	bill.CGST = bill.Subtotal * gstRate
	bill.SGST = bill.Subtotal * gstRate
	bill.GrandTotal = bill.Subtotal + bill.CGST + bill.SGST

	if err := s.TableRepo.Free(s.DB, o.TableID); err != nil {
		return nil, err
	}
	s.emitTable(o.TableID)

	return bill, nil
}
