package inventory

import (
	"errors"

	invsvc "propdesk-backend/internal/application/inventory"
	"propdesk-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *invsvc.Service
}

// CreateItem POST /api/v1/inventory/create-item
func (h *Handlers) CreateItem(c *fiber.Ctx) error {
	var body struct {
		PropertyType string  `json:"property_type"`
		Location     string  `json:"location"`
		UnitStatus   string  `json:"unit_status"`
		Area         float64 `json:"area"`
		SellingPrice float64 `json:"selling_price"`
		ROIGross     string  `json:"roi_gross"`
		PHPPEligible bool    `json:"phpp_eligible"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Missing required fields", 400, nil)
	}

	item, err := h.Service.CreateItem(c.Context(), invsvc.CreateItemInput{
		PropertyType: body.PropertyType,
		Location:     body.Location,
		UnitStatus:   body.UnitStatus,
		Area:         body.Area,
		SellingPrice: body.SellingPrice,
		ROIGross:     body.ROIGross,
		PHPPEligible: body.PHPPEligible,
	})
	if err != nil {
		if errors.Is(err, invsvc.ErrMissingFields) || errors.Is(err, invsvc.ErrInvalidUnitStatus) || errors.Is(err, invsvc.ErrInvalidROI) {
			return response.Error(c, err.Error(), 400, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.SuccessCreated(c, "Inventory item created successfully", item, nil)
}

// GetAllItems GET /api/v1/inventory/get-all-items
func (h *Handlers) GetAllItems(c *fiber.Ctx) error {
	items, err := h.Service.GetAllItems(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Inventory fetched successfully", items, nil)
}

// GetItem GET /api/v1/inventory/get-item/:inventory_id
func (h *Handlers) GetItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("inventory_id"))
	if err != nil {
		return response.Error(c, "Invalid UUID format for inventory_id", 400, nil)
	}
	item, err := h.Service.GetItemByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, invsvc.ErrInventoryNotFound) {
			return response.Error(c, err.Error(), 404, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Inventory item fetched successfully", item, nil)
}

// UpdateUnitStatus PATCH /api/v1/inventory/update-unit-status
func (h *Handlers) UpdateUnitStatus(c *fiber.Ctx) error {
	var body struct {
		InventoryID string `json:"inventory_id"`
		UnitStatus  string `json:"unit_status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "inventory_id and unit_status are required", 400, nil)
	}
	if body.InventoryID == "" || body.UnitStatus == "" {
		return response.Error(c, "inventory_id and unit_status are required", 400, nil)
	}
	id, err := uuid.Parse(body.InventoryID)
	if err != nil {
		return response.Error(c, "Invalid UUID format for inventory_id", 400, nil)
	}

	item, err := h.Service.UpdateUnitStatus(c.Context(), id, body.UnitStatus)
	if err != nil {
		switch {
		case errors.Is(err, invsvc.ErrInvalidUnitStatus):
			return response.Error(c, err.Error(), 400, nil)
		case errors.Is(err, invsvc.ErrInventoryNotFound):
			return response.Error(c, err.Error(), 404, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Unit status updated successfully", item, nil)
}
