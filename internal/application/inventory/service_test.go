package inventory

import (
	"context"
	"testing"

	"propdesk-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupInventoryTest(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Inventory{}))
	return &Service{DB: db}
}

func TestCreateItem_Defaults(t *testing.T) {
	svc := setupInventoryTest(t)

	item, err := svc.CreateItem(context.Background(), CreateItemInput{
		PropertyType: "apartment",
		Location:     "JVC",
		Area:         950,
		SellingPrice: 1.6,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.UnitAvailable, item.UnitStatus)
	assert.Equal(t, domain.ROIUntracked, item.ROIGross)
}

func TestCreateItem_MissingFields(t *testing.T) {
	svc := setupInventoryTest(t)

	_, err := svc.CreateItem(context.Background(), CreateItemInput{
		PropertyType: "apartment",
		Location:     "JVC",
	})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestCreateItem_RejectsNonNumericROI(t *testing.T) {
	svc := setupInventoryTest(t)

	for _, roi := range []string{"12%", "tbd", "6.5 percent"} {
		_, err := svc.CreateItem(context.Background(), CreateItemInput{
			PropertyType: "apartment",
			Location:     "JVC",
			Area:         950,
			SellingPrice: 1.6,
			ROIGross:     roi,
		})
		assert.ErrorIs(t, err, ErrInvalidROI, roi)
	}

	var count int64
	svc.DB.Model(&domain.Inventory{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateItem_AcceptsNumericROI(t *testing.T) {
	svc := setupInventoryTest(t)

	item, err := svc.CreateItem(context.Background(), CreateItemInput{
		PropertyType: "apartment",
		Location:     "JVC",
		Area:         950,
		SellingPrice: 1.6,
		ROIGross:     "6.5",
	})
	require.NoError(t, err)
	assert.Equal(t, "6.5", item.ROIGross)
}

func TestCreateItem_InvalidUnitStatus(t *testing.T) {
	svc := setupInventoryTest(t)

	_, err := svc.CreateItem(context.Background(), CreateItemInput{
		PropertyType: "apartment",
		Location:     "JVC",
		Area:         950,
		SellingPrice: 1.6,
		UnitStatus:   "demolished",
	})
	assert.ErrorIs(t, err, ErrInvalidUnitStatus)
}

func TestUpdateUnitStatus(t *testing.T) {
	svc := setupInventoryTest(t)

	item, err := svc.CreateItem(context.Background(), CreateItemInput{
		PropertyType: "apartment",
		Location:     "JVC",
		Area:         950,
		SellingPrice: 1.6,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateUnitStatus(context.Background(), item.InventoryID, domain.UnitReserved)
	require.NoError(t, err)
	assert.Equal(t, domain.UnitReserved, updated.UnitStatus)

	_, err = svc.UpdateUnitStatus(context.Background(), item.InventoryID, "demolished")
	assert.ErrorIs(t, err, ErrInvalidUnitStatus)
}
