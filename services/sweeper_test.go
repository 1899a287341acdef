package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/entity"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/repository"
)

func newSweeper(t *testing.T) (*Sweeper, *OrderService, *recorder, *gorm.DB) {
	t.Helper()
	svc, rec, db := newOrderService(t)
	sw := NewSweeper(
		db,
		repository.NewOrderRepository(db),
		repository.NewTableRepository(db),
		rec,
		10*time.Minute,
		2*time.Hour,
	)
	return sw, svc, rec, db
}

func TestSweepCancelsExpiredOrders(t *testing.T) {
	sw, svc, _, db := newSweeper(t)
	seedTable(t, db, "T1")
	dish := seedMenuItem(t, db, "Biryani", entity.CategoryMainCourse, 120)

	order, err := svc.Create(&CreateOrderReq{
		TableNumber: "T1",
		Items:       []OrderItemIn{{MenuItemID: dish.ID, Qty: 1}},
	})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(order.ID, entity.OrderPreparing)
	require.NoError(t, err)

	// backdate the expiry
	require.NoError(t, db.Model(&entity.Order{}).Where("id = ?", order.ID).
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	cancelled, _ := sw.SweepOnce(time.Now())
	assert.Equal(t, 1, cancelled)

	got, err := svc.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, got.Status)
	last := got.StatusHistory[len(got.StatusHistory)-1]
	assert.Equal(t, entity.OrderCancelled, last.Status)
}

func TestSweepLeavesTerminalOrdersAlone(t *testing.T) {
	sw, svc, _, db := newSweeper(t)
	seedTable(t, db, "T1")
	dish := seedMenuItem(t, db, "Biryani", entity.CategoryMainCourse, 120)

	order, err := svc.Create(&CreateOrderReq{
		TableNumber: "T1",
		Items:       []OrderItemIn{{MenuItemID: dish.ID, Qty: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&entity.Order{}).Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":     entity.OrderCompleted,
			"expires_at": time.Now().Add(-time.Hour),
		}).Error)

	cancelled, _ := sw.SweepOnce(time.Now())
	assert.Equal(t, 0, cancelled)

	got, err := svc.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, got.Status)
}

func TestSweepFreesStaleTables(t *testing.T) {
	sw, _, rec, db := newSweeper(t)

	stale := seedTable(t, db, "T1")
	old := time.Now().Add(-3 * time.Hour)
	require.NoError(t, db.Model(&entity.Table{}).Where("id = ?", stale.ID).
		Updates(map[string]any{
			"status":        entity.TableOccupied,
			"is_occupied":   true,
			"session_start": old,
		}).Error)

	fresh := seedTable(t, db, "T2")
	now := time.Now().Add(-10 * time.Minute)
	require.NoError(t, db.Model(&entity.Table{}).Where("id = ?", fresh.ID).
		Updates(map[string]any{
			"status":        entity.TableOccupied,
			"is_occupied":   true,
			"session_start": now,
		}).Error)

	_, freed := sw.SweepOnce(time.Now())
	assert.Equal(t, 1, freed)

	assert.False(t, reloadTable(t, db, stale.ID).IsOccupied)
	assert.True(t, reloadTable(t, db, fresh.ID).IsOccupied)
	assert.Contains(t, rec.names(), EventTablesUpdated)
}

// the two sweeps are deliberately independent: a stale table is freed even
// though its order is still live (documented behavior, see DESIGN.md)
func TestSweepsAreUncoordinated(t *testing.T) {
	sw, svc, _, db := newSweeper(t)
	table := seedTable(t, db, "T1")
	dish := seedMenuItem(t, db, "Biryani", entity.CategoryMainCourse, 120)

	order, err := svc.Create(&CreateOrderReq{
		TableNumber: "T1",
		Items:       []OrderItemIn{{MenuItemID: dish.ID, Qty: 1}},
	})
	require.NoError(t, err)

	// session is stale but the order has not expired
	require.NoError(t, db.Model(&entity.Table{}).Where("id = ?", table.ID).
		Update("session_start", time.Now().Add(-3*time.Hour)).Error)

	cancelled, freed := sw.SweepOnce(time.Now())
	assert.Equal(t, 0, cancelled)
	assert.Equal(t, 1, freed)

	got, err := svc.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, got.Status)
	assert.False(t, reloadTable(t, db, table.ID).IsOccupied)
}
