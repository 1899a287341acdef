package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/entity"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/pkg/apperr"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/repository"
)

type TableService struct {
	DB       *gorm.DB
	Repo     *repository.TableRepository
	Notifier Notifier
}

func NewTableService(db *gorm.DB, repo *repository.TableRepository, notifier Notifier) *TableService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &TableService{DB: db, Repo: repo, Notifier: notifier}
}

func (s *TableService) List() ([]entity.Table, error) {
	return s.Repo.List()
}

func (s *TableService) Get(id uint) (*entity.Table, error) {
	t, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("table not found")
		}
		return nil, err
	}
	return t, nil
}

func (s *TableService) Create(t *entity.Table) error {
	if t.TableNumber == "" {
		return apperr.InvalidInput("tableNumber is required")
	}
	if t.Status == "" {
		t.Status = entity.TableAvailable
	}
	if err := s.Repo.Create(t); err != nil {
		return err
	}
	s.Notifier.Emit(EventTablesUpdated, t)
	return nil
}

func (s *TableService) Update(t *entity.Table) error {
	if err := s.Repo.Update(t); err != nil {
		return err
	}
	s.Notifier.Emit(EventTablesUpdated, t)
	return nil
}

func (s *TableService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

// SetOccupied marks a table occupied and starts its session clock.
func (s *TableService) SetOccupied(id uint) error {
	t, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.Repo.SetOccupied(s.DB, t.ID, time.Now()); err != nil {
		return err
	}
	s.emit(t.ID)
	return nil
}

// Free releases a table regardless of order state.
func (s *TableService) Free(id uint) error {
	t, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Free(s.DB, t.ID); err != nil {
		return err
	}
	s.emit(t.ID)
	return nil
}

type AssignReq struct {
	CustomerName    string     `json:"customerName"`
	PartySize       int        `json:"partySize"`
	ReservationTime *time.Time `json:"reservationTime"`
	SpecialRequest  string     `json:"specialRequest"`
}

// Assign seats a walk-in/reservation party independent of order creation.
func (s *TableService) Assign(id uint, req *AssignReq) (*entity.Table, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	t.Status = entity.TableOccupied
	t.IsOccupied = true
	t.SessionStart = &now
	t.CustomerName = req.CustomerName
	t.PartySize = req.PartySize
	t.ReservationTime = req.ReservationTime
	t.SpecialRequest = req.SpecialRequest
	if err := s.Repo.Update(t); err != nil {
		return nil, err
	}
	s.Notifier.Emit(EventTablesUpdated, t)
	return t, nil
}

type MergeReq struct {
	SourceTableNumbers []string `json:"sourceTableNumbers"`
	NewName            string   `json:"newName"`
	NewCapacity        int      `json:"newCapacity"`
}

// Merge marks each source table merged and creates one combined table.
// Source occupancy is deliberately not validated (observed behavior).
func (s *TableService) Merge(req *MergeReq) (*entity.Table, error) {
	if len(req.SourceTableNumbers) < 2 {
		return nil, apperr.InvalidInput("at least two source tables are required")
	}
	if req.NewName == "" {
		return nil, apperr.InvalidInput("newName is required")
	}

	var merged entity.Table
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, num := range req.SourceTableNumbers {
			var src entity.Table
			if err := tx.Where("table_number = ?", num).First(&src).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NotFound("table " + num + " not found")
				}
				return err
			}
			src.Status = entity.TableMerged
			src.IsMerged = true
			if err := tx.Save(&src).Error; err != nil {
				return err
			}
		}
		merged = entity.Table{
			TableNumber:  req.NewName,
			Capacity:     req.NewCapacity,
			Status:       entity.TableAvailable,
			MergedTables: req.SourceTableNumbers,
		}
		return tx.Create(&merged).Error
	})
	if err != nil {
		return nil, err
	}
	s.Notifier.Emit(EventTablesUpdated, &merged)
	return &merged, nil
}

func (s *TableService) emit(id uint) {
	if t, err := s.Repo.FindByID(id); err == nil {
		s.Notifier.Emit(EventTablesUpdated, t)
	}
}
