package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/entity"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/pkg/apperr"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Repo.List()
}

func (s *MenuService) ListAvailable() ([]entity.MenuItem, error) {
	return s.Repo.ListAvailable()
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	m, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu item not found")
		}
		return nil, err
	}
	return m, nil
}

func (s *MenuService) Create(m *entity.MenuItem) error {
	if err := validateMenuItem(m); err != nil {
		return err
	}
	return s.Repo.Create(m)
}

// Update edits the live catalog entry. Order lines that already captured the
// old price are untouched.
func (s *MenuService) Update(m *entity.MenuItem) error {
	if err := validateMenuItem(m); err != nil {
		return err
	}
	if _, err := s.Get(m.ID); err != nil {
		return err
	}
	return s.Repo.Update(m)
}

func (s *MenuService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func (s *MenuService) SetAvailability(id uint, available bool) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.SetAvailability(id, available)
}

func validateMenuItem(m *entity.MenuItem) error {
	if m.Name == "" {
		return apperr.InvalidInput("name is required")
	}
	if !entity.ValidCategory(m.Category) {
		return apperr.InvalidInput("unknown category: " + m.Category)
	}
	if m.Price < 0 {
		return apperr.InvalidInput("price must be non-negative")
	}
	if m.SpiceLevel < 0 || m.SpiceLevel > 3 {
		return apperr.InvalidInput("spiceLevel must be between 0 and 3")
	}
	return nil
}
