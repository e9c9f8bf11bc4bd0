package assignments

import (
	"context"
	"testing"

	"propdesk-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAssignmentsTest(t *testing.T) (*Service, *gorm.DB, domain.Deal, domain.Inventory) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Requirement{}, &domain.Deal{}, &domain.Inventory{}, &domain.Assignment{}))

	req := domain.Requirement{Demand: "studio, JVC", PropertyType: "studio", Location: "JVC", Budget: "0.5"}
	require.NoError(t, db.Create(&req).Error)
	deal := domain.Deal{RequirementID: req.RequirementID, Status: domain.DealReceived}
	require.NoError(t, db.Create(&deal).Error)
	unit := domain.Inventory{PropertyType: "studio", Location: "JVC", UnitStatus: domain.UnitAvailable, Area: 450, SellingPrice: 0.55, ROIGross: "0"}
	require.NoError(t, db.Create(&unit).Error)

	return &Service{DB: db}, db, deal, unit
}

func TestAssign_CreatesLink(t *testing.T) {
	svc, db, deal, unit := setupAssignmentsTest(t)
	remarks := "sea view, worth showing"

	a, err := svc.Assign(context.Background(), deal.DealID, unit.InventoryID, &remarks)
	require.NoError(t, err)
	assert.Equal(t, deal.DealID, a.DealID)
	assert.Equal(t, unit.InventoryID, a.InventoryID)
	require.NotNil(t, a.Remarks)
	assert.Equal(t, remarks, *a.Remarks)

	var count int64
	require.NoError(t, db.Model(&domain.Assignment{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAssign_MissingDealOrInventory(t *testing.T) {
	svc, _, deal, unit := setupAssignmentsTest(t)

	_, err := svc.Assign(context.Background(), uuid.New(), unit.InventoryID, nil)
	assert.ErrorIs(t, err, ErrDealNotFound)

	_, err = svc.Assign(context.Background(), deal.DealID, uuid.New(), nil)
	assert.ErrorIs(t, err, ErrInventoryNotFound)
}

func TestAssign_DuplicatesAllowedByDefault(t *testing.T) {
	svc, db, deal, unit := setupAssignmentsTest(t)

	_, err := svc.Assign(context.Background(), deal.DealID, unit.InventoryID, nil)
	require.NoError(t, err)
	_, err = svc.Assign(context.Background(), deal.DealID, unit.InventoryID, nil)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&domain.Assignment{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestAssign_UniqueModeRejectsDuplicates(t *testing.T) {
	svc, _, deal, unit := setupAssignmentsTest(t)
	svc.EnforceUnique = true

	_, err := svc.Assign(context.Background(), deal.DealID, unit.InventoryID, nil)
	require.NoError(t, err)
	_, err = svc.Assign(context.Background(), deal.DealID, unit.InventoryID, nil)
	assert.ErrorIs(t, err, ErrAlreadyAssigned)
}

func TestUnassign_IsIdempotent(t *testing.T) {
	svc, db, deal, unit := setupAssignmentsTest(t)

	_, err := svc.Assign(context.Background(), deal.DealID, unit.InventoryID, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Unassign(context.Background(), deal.DealID, unit.InventoryID))
	var count int64
	require.NoError(t, db.Model(&domain.Assignment{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// Second call matches zero rows and still succeeds.
	require.NoError(t, svc.Unassign(context.Background(), deal.DealID, unit.InventoryID))
}

func TestUnassign_RemovesAllDuplicateRows(t *testing.T) {
	svc, db, deal, unit := setupAssignmentsTest(t)

	_, err := svc.Assign(context.Background(), deal.DealID, unit.InventoryID, nil)
	require.NoError(t, err)
	_, err = svc.Assign(context.Background(), deal.DealID, unit.InventoryID, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Unassign(context.Background(), deal.DealID, unit.InventoryID))
	var count int64
	require.NoError(t, db.Model(&domain.Assignment{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestListAssigned_ReturnsInventoryProjection(t *testing.T) {
	svc, db, deal, unit := setupAssignmentsTest(t)

	other := domain.Inventory{PropertyType: "studio", Location: "JVC", UnitStatus: domain.UnitAvailable, Area: 480, SellingPrice: 0.6, ROIGross: "6"}
	require.NoError(t, db.Create(&other).Error)

	_, err := svc.Assign(context.Background(), deal.DealID, unit.InventoryID, nil)
	require.NoError(t, err)
	_, err = svc.Assign(context.Background(), deal.DealID, other.InventoryID, nil)
	require.NoError(t, err)

	items, err := svc.ListAssigned(context.Background(), deal.DealID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	ids := []uuid.UUID{items[0].InventoryID, items[1].InventoryID}
	assert.Contains(t, ids, unit.InventoryID)
	assert.Contains(t, ids, other.InventoryID)
}

func TestListAssigned_EmptyForUnknownDeal(t *testing.T) {
	svc, _, _, _ := setupAssignmentsTest(t)
	items, err := svc.ListAssigned(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdateRemarks(t *testing.T) {
	svc, _, deal, unit := setupAssignmentsTest(t)

	_, err := svc.Assign(context.Background(), deal.DealID, unit.InventoryID, nil)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateRemarks(context.Background(), deal.DealID, unit.InventoryID, "client prefers higher floor"))

	items, err := svc.ListAssigned(context.Background(), deal.DealID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	err = svc.UpdateRemarks(context.Background(), deal.DealID, uuid.New(), "x")
	assert.ErrorIs(t, err, ErrInventoryNotFound)
}
