package assignments

import (
	"errors"

	assignsvc "propdesk-backend/internal/application/assignments"
	"propdesk-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *assignsvc.Service
}

func assignmentErrorStatus(err error) int {
	switch {
	case errors.Is(err, assignsvc.ErrDealNotFound), errors.Is(err, assignsvc.ErrInventoryNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, assignsvc.ErrAlreadyAssigned):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

type pairBody struct {
	DealID      string  `json:"deal_id"`
	InventoryID string  `json:"inventory_id"`
	Remarks     *string `json:"remarks"`
}

func parsePair(c *fiber.Ctx) (uuid.UUID, uuid.UUID, *string, error) {
	var body pairBody
	if err := c.BodyParser(&body); err != nil {
		return uuid.Nil, uuid.Nil, nil, errors.New("deal_id and inventory_id are required")
	}
	if body.DealID == "" || body.InventoryID == "" {
		return uuid.Nil, uuid.Nil, nil, errors.New("deal_id and inventory_id are required")
	}
	dealID, err := uuid.Parse(body.DealID)
	if err != nil {
		return uuid.Nil, uuid.Nil, nil, errors.New("Invalid UUID format for deal_id")
	}
	inventoryID, err := uuid.Parse(body.InventoryID)
	if err != nil {
		return uuid.Nil, uuid.Nil, nil, errors.New("Invalid UUID format for inventory_id")
	}
	return dealID, inventoryID, body.Remarks, nil
}

// Assign POST /api/v1/assignments/assign
func (h *Handlers) Assign(c *fiber.Ctx) error {
	dealID, inventoryID, remarks, err := parsePair(c)
	if err != nil {
		return response.Error(c, err.Error(), 400, nil)
	}

	a, err := h.Service.Assign(c.Context(), dealID, inventoryID, remarks)
	if err != nil {
		if code := assignmentErrorStatus(err); code != fiber.StatusInternalServerError {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.SuccessCreated(c, "Inventory assigned successfully", a, nil)
}

// Unassign POST /api/v1/assignments/unassign — idempotent.
func (h *Handlers) Unassign(c *fiber.Ctx) error {
	dealID, inventoryID, _, err := parsePair(c)
	if err != nil {
		return response.Error(c, err.Error(), 400, nil)
	}

	if err := h.Service.Unassign(c.Context(), dealID, inventoryID); err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Inventory unassigned successfully", fiber.Map{"success": true}, nil)
}

// UpdateRemarks PATCH /api/v1/assignments/update-remarks
func (h *Handlers) UpdateRemarks(c *fiber.Ctx) error {
	var body struct {
		DealID      string `json:"deal_id"`
		InventoryID string `json:"inventory_id"`
		Remarks     string `json:"remarks"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "deal_id, inventory_id and remarks are required", 400, nil)
	}
	if body.DealID == "" || body.InventoryID == "" || body.Remarks == "" {
		return response.Error(c, "deal_id, inventory_id and remarks are required", 400, nil)
	}
	dealID, err := uuid.Parse(body.DealID)
	if err != nil {
		return response.Error(c, "Invalid UUID format for deal_id", 400, nil)
	}
	inventoryID, err := uuid.Parse(body.InventoryID)
	if err != nil {
		return response.Error(c, "Invalid UUID format for inventory_id", 400, nil)
	}

	if err := h.Service.UpdateRemarks(c.Context(), dealID, inventoryID, body.Remarks); err != nil {
		if code := assignmentErrorStatus(err); code != fiber.StatusInternalServerError {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Remarks updated successfully", fiber.Map{"success": true}, nil)
}

// ListAssigned GET /api/v1/assignments/get-assigned/:deal_id
func (h *Handlers) ListAssigned(c *fiber.Ctx) error {
	dealID, err := uuid.Parse(c.Params("deal_id"))
	if err != nil {
		return response.Error(c, "Invalid UUID format for deal_id", 400, nil)
	}
	items, err := h.Service.ListAssigned(c.Context(), dealID)
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Assigned inventory fetched successfully", items, nil)
}
