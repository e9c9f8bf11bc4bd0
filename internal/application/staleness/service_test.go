package staleness

import (
	"context"
	"testing"
	"time"

	"propdesk-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupStalenessTest(t *testing.T) (*Service, *gorm.DB, time.Time) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Requirement{}, &domain.Deal{}))
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := &Service{DB: db, Now: func() time.Time { return now }}
	return svc, db, now
}

func seedRequirementAt(t *testing.T, db *gorm.DB, created time.Time) domain.Requirement {
	req := domain.Requirement{
		Demand:       "1BR, Business Bay",
		PropertyType: "apartment",
		Location:     "Business Bay",
		Budget:       "1.1",
		CreatedAt:    created,
		UpdatedAt:    created,
	}
	require.NoError(t, db.Create(&req).Error)
	return req
}

func seedDealAt(t *testing.T, db *gorm.DB, req domain.Requirement, status string, updated time.Time) domain.Deal {
	deal := domain.Deal{
		RequirementID: req.RequirementID,
		Status:        status,
		CreatedAt:     updated,
		UpdatedAt:     updated,
	}
	require.NoError(t, db.Create(&deal).Error)
	return deal
}

func TestStaleDeals_SevenDayCutoff(t *testing.T) {
	svc, db, now := setupStalenessTest(t)
	req := seedRequirementAt(t, db, now.AddDate(0, 0, -30))

	stale := seedDealAt(t, db, req, domain.DealOpen, now.AddDate(0, 0, -8))
	seedDealAt(t, db, req, domain.DealOpen, now.AddDate(0, 0, -6))

	deals, err := svc.StaleDeals(context.Background())
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, stale.DealID, deals[0].DealID)
}

func TestStaleDeals_TerminalExcluded(t *testing.T) {
	svc, db, now := setupStalenessTest(t)
	req := seedRequirementAt(t, db, now.AddDate(0, 0, -30))

	seedDealAt(t, db, req, domain.DealClosed, now.AddDate(0, 0, -20))
	seedDealAt(t, db, req, domain.DealRejected, now.AddDate(0, 0, -20))
	stale := seedDealAt(t, db, req, domain.DealNegotiation, now.AddDate(0, 0, -20))

	deals, err := svc.StaleDeals(context.Background())
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, stale.DealID, deals[0].DealID)
}

func TestUnassignedRequirements(t *testing.T) {
	svc, db, now := setupStalenessTest(t)

	old := seedRequirementAt(t, db, now.AddDate(0, 0, -10))
	fresh := seedRequirementAt(t, db, now.AddDate(0, 0, -3))
	withDeal := seedRequirementAt(t, db, now.AddDate(0, 0, -40))
	seedDealAt(t, db, withDeal, domain.DealReceived, now.AddDate(0, 0, -1))

	reqs, err := svc.UnassignedRequirements(context.Background())
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, old.RequirementID, reqs[0].RequirementID)
	assert.NotEqual(t, fresh.RequirementID, reqs[0].RequirementID)
}

func TestSweep_ReturnsBothSets(t *testing.T) {
	svc, db, now := setupStalenessTest(t)

	req := seedRequirementAt(t, db, now.AddDate(0, 0, -10))
	other := seedRequirementAt(t, db, now.AddDate(0, 0, -12))
	seedDealAt(t, db, other, domain.DealOpen, now.AddDate(0, 0, -9))

	deals, reqs, err := svc.Sweep(context.Background())
	require.NoError(t, err)
	require.Len(t, deals, 1)
	require.Len(t, reqs, 1)
	assert.Equal(t, req.RequirementID, reqs[0].RequirementID)
}
