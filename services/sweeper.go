package services

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/entity"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/repository"
)

// Sweeper enforces the two expiry policies on a fixed interval:
// (a) cancel orders whose expiresAt has passed and are not terminal,
// (b) free tables whose session is older than the staleness window.
// The two sweeps are independent and not transactionally coupled.
type Sweeper struct {
	DB         *gorm.DB
	OrderRepo  *repository.OrderRepository
	TableRepo  *repository.TableRepository
	Notifier   Notifier
	Interval   time.Duration
	TableStale time.Duration
}

func NewSweeper(db *gorm.DB, orderRepo *repository.OrderRepository, tableRepo *repository.TableRepository, notifier Notifier, interval, tableStale time.Duration) *Sweeper {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Sweeper{
		DB:         db,
		OrderRepo:  orderRepo,
		TableRepo:  tableRepo,
		Notifier:   notifier,
		Interval:   interval,
		TableStale: tableStale,
	}
}

// Run ticks until the context is cancelled. A failed cycle is logged and
// retried on the next tick; it never crashes the scheduler.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cancelled, freed := s.SweepOnce(time.Now())
			if cancelled > 0 || freed > 0 {
				log.Printf("sweep: cancelled %d orders, freed %d tables", cancelled, freed)
			}
		}
	}
}

// SweepOnce runs both sweeps once and reports what changed.
func (s *Sweeper) SweepOnce(now time.Time) (cancelled, freed int) {
	cancelled = s.sweepExpiredOrders(now)
	freed = s.sweepStaleTables(now)
	return cancelled, freed
}

func (s *Sweeper) sweepExpiredOrders(now time.Time) int {
	expired, err := s.OrderRepo.FindExpired(now)
	if err != nil {
		log.Printf("sweep: list expired orders: %v", err)
		return 0
	}

	n := 0
	for _, o := range expired {
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			// guarded: skip orders a concurrent request already moved
			affected, err := s.OrderRepo.UpdateStatusGuard(tx, o.ID, o.Status, entity.OrderCancelled)
			if err != nil {
				return err
			}
			if affected == 0 {
				return nil
			}
			n++
			return s.OrderRepo.AppendStatusEvent(tx, o.ID, entity.OrderCancelled)
		})
		if err != nil {
			log.Printf("sweep: cancel order %d: %v", o.ID, err)
			continue
		}
		if full, err := s.OrderRepo.GetOrder(o.ID); err == nil {
			s.Notifier.Emit(EventOrderStatusUpdated, full)
		}
	}
	return n
}

func (s *Sweeper) sweepStaleTables(now time.Time) int {
	stale, err := s.TableRepo.FindStale(now.Add(-s.TableStale))
	if err != nil {
		log.Printf("sweep: list stale tables: %v", err)
		return 0
	}

	n := 0
	for _, t := range stale {
		if err := s.TableRepo.Free(s.DB, t.ID); err != nil {
			log.Printf("sweep: free table %s: %v", t.TableNumber, err)
			continue
		}
		n++
		if full, err := s.TableRepo.FindByID(t.ID); err == nil {
			s.Notifier.Emit(EventTablesUpdated, full)
		}
	}
	return n
}
