package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/entity"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/pkg/apperr"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/repository"
)

func newMenuService(t *testing.T) *MenuService {
	t.Helper()
	db := newTestDB(t)
	return NewMenuService(repository.NewMenuRepository(db))
}

func TestMenuItemValidation(t *testing.T) {
	svc := newMenuService(t)

	cases := []struct {
		name string
		item entity.MenuItem
	}{
		{"missing name", entity.MenuItem{Category: entity.CategoryStarter, Price: 10}},
		{"bad category", entity.MenuItem{Name: "x", Category: "sides", Price: 10}},
		{"negative price", entity.MenuItem{Name: "x", Category: entity.CategoryStarter, Price: -1}},
		{"spice out of range", entity.MenuItem{Name: "x", Category: entity.CategoryStarter, SpiceLevel: 4}},
	}
	for _, tc := range cases {
		err := svc.Create(&tc.item)
		assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err), tc.name)
	}
}

func TestMenuCRUD(t *testing.T) {
	svc := newMenuService(t)

	item := entity.MenuItem{
		Name:      "Gulab Jamun",
		Category:  entity.CategoryDessert,
		Price:     80,
		Available: true,
	}
	require.NoError(t, svc.Create(&item))

	got, err := svc.Get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gulab Jamun", got.Name)
	assert.Nil(t, got.IsVeg) // unknown until staff say otherwise

	got.Price = 90
	require.NoError(t, svc.Update(got))

	require.NoError(t, svc.SetAvailability(item.ID, false))
	all, err := svc.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].Available)

	available, err := svc.ListAvailable()
	require.NoError(t, err)
	assert.Empty(t, available)

	require.NoError(t, svc.Delete(item.ID))
	_, err = svc.Get(item.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
