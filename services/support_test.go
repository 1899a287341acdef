package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/entity"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/repository"
)

// recorder captures emitted events for assertions.
type recorder struct {
	mu     sync.Mutex
	events []recordedEvent
}

type recordedEvent struct {
	Event   string
	Payload any
}

func (r *recorder) Emit(event string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{Event: event, Payload: payload})
}

func (r *recorder) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Event)
	}
	return out
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// one connection so every query sees the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.Table{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderStatusEvent{},
		&entity.Payment{},
	))
	return db
}

func newOrderService(t *testing.T) (*OrderService, *recorder, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	rec := &recorder{}
	svc := NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewMenuRepository(db),
		repository.NewTableRepository(db),
		rec,
	)
	return svc, rec, db
}

func seedTable(t *testing.T, db *gorm.DB, number string) *entity.Table {
	t.Helper()
	table := &entity.Table{
		TableNumber: number,
		Capacity:    4,
		Status:      entity.TableAvailable,
	}
	require.NoError(t, db.Create(table).Error)
	return table
}

func seedMenuItem(t *testing.T, db *gorm.DB, name, category string, price float64) *entity.MenuItem {
	t.Helper()
	item := &entity.MenuItem{
		Name:      name,
		Category:  category,
		Price:     price,
		Available: true,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func reloadTable(t *testing.T, db *gorm.DB, id uint) *entity.Table {
	t.Helper()
	var table entity.Table
	require.NoError(t, db.First(&table, id).Error)
	return &table
}
