package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/entity"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/pkg/apperr"
)

func TestGenerateBillPartitionsAndTaxes(t *testing.T) {
	svc, _, db := newOrderService(t)
	table := seedTable(t, db, "T1")
	curry := seedMenuItem(t, db, "Butter Chicken", entity.CategoryMainCourse, 100)
	lassi := seedMenuItem(t, db, "Lassi", entity.CategoryBeverage, 50)

	order, err := svc.Create(&CreateOrderReq{
		TableNumber: "T1",
		Items: []OrderItemIn{
			{MenuItemID: curry.ID, Qty: 2},
			{MenuItemID: lassi.ID, Qty: 1},
		},
	})
	require.NoError(t, err)

	bill, err := svc.GenerateBill(order.ID)
	require.NoError(t, err)

	assert.Equal(t, "T1", bill.TableNumber)
	require.Len(t, bill.Lines, 2)
	assert.Equal(t, 200.0, bill.FoodSubtotal)
	assert.Equal(t, 50.0, bill.DrinkSubtotal)
	assert.Equal(t, 250.0, bill.Subtotal)
	assert.InDelta(t, 6.25, bill.CGST, 1e-9)
	assert.InDelta(t, 6.25, bill.SGST, 1e-9)
	assert.InDelta(t, 262.5, bill.GrandTotal, 1e-9)

	// billing frees the table but never rewrites the order's running total
	got, err := svc.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 250.0, got.TotalPrice)
	assert.False(t, reloadTable(t, db, table.ID).IsOccupied)
}

func TestGenerateBillUsesCapturedPrices(t *testing.T) {
	svc, _, db := newOrderService(t)
	seedTable(t, db, "T1")
	dish := seedMenuItem(t, db, "Thali", entity.CategoryMainCourse, 200)

	order, err := svc.Create(&CreateOrderReq{
		TableNumber: "T1",
		Items:       []OrderItemIn{{MenuItemID: dish.ID, Qty: 1}},
	})
	require.NoError(t, err)

	// catalog edit after capture must not change the receipt
	require.NoError(t, db.Model(&entity.MenuItem{}).Where("id = ?", dish.ID).
		Update("price", 500).Error)

	bill, err := svc.GenerateBill(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 200.0, bill.Subtotal)
}

func TestGenerateBillUnknownOrder(t *testing.T) {
	svc, _, _ := newOrderService(t)
	_, err := svc.GenerateBill(4242)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
