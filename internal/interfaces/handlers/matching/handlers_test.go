package matching

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	matchsvc "propdesk-backend/internal/application/matching"
	"propdesk-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupMatchingTest(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Requirement{}, &domain.Inventory{}))

	h := &Handlers{Service: &matchsvc.Service{DB: db}}
	app := fiber.New()
	app.Get("/find-candidates/:requirement_id", h.FindCandidates)
	return app, db
}

func TestFindCandidates_BadUUID(t *testing.T) {
	app, _ := setupMatchingTest(t)

	req := httptest.NewRequest("GET", "/find-candidates/not-a-uuid", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestFindCandidates_UnknownRequirement(t *testing.T) {
	app, _ := setupMatchingTest(t)

	req := httptest.NewRequest("GET", "/find-candidates/"+uuid.New().String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestFindCandidates_GarbageBudget(t *testing.T) {
	app, db := setupMatchingTest(t)
	requirement := domain.Requirement{
		Demand:       "any",
		PropertyType: "apartment",
		Location:     "JVC",
		Budget:       "call me",
	}
	require.NoError(t, db.Create(&requirement).Error)

	req := httptest.NewRequest("GET", "/find-candidates/"+requirement.RequirementID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestFindCandidates_ReturnsMatchesWithCount(t *testing.T) {
	app, db := setupMatchingTest(t)
	requirement := domain.Requirement{
		Demand:       "2BR investment unit",
		PropertyType: "apartment",
		Location:     "JVC",
		Budget:       "1.5-2.0",
	}
	require.NoError(t, db.Create(&requirement).Error)

	match := domain.Inventory{
		PropertyType: "apartment", Location: "JVC",
		UnitStatus: domain.UnitAvailable,
		Area:       1000, SellingPrice: 1.8, ROIGross: domain.ROIUntracked,
	}
	tooExpensive := domain.Inventory{
		PropertyType: "apartment", Location: "JVC",
		UnitStatus: domain.UnitAvailable,
		Area:       1000, SellingPrice: 2.4, ROIGross: domain.ROIUntracked,
	}
	require.NoError(t, db.Create(&match).Error)
	require.NoError(t, db.Create(&tooExpensive).Error)

	req := httptest.NewRequest("GET", "/find-candidates/"+requirement.RequirementID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, "success", result["status"])
	data, _ := result["data"].([]interface{})
	require.Len(t, data, 1)
	first, _ := data[0].(map[string]interface{})
	assert.Equal(t, match.InventoryID.String(), first["inventory_id"])
	metadata, _ := result["metadata"].(map[string]interface{})
	assert.Equal(t, float64(1), metadata["count"])
}

func TestFindCandidates_EmptySetIs200(t *testing.T) {
	app, db := setupMatchingTest(t)
	requirement := domain.Requirement{
		Demand:       "villa for end use",
		PropertyType: "villa",
		Location:     "Arabian Ranches",
		Budget:       "4-5",
	}
	require.NoError(t, db.Create(&requirement).Error)

	req := httptest.NewRequest("GET", "/find-candidates/"+requirement.RequirementID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	metadata, _ := result["metadata"].(map[string]interface{})
	assert.Equal(t, float64(0), metadata["count"])
}
