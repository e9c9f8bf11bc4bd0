package deals

import (
	"errors"

	dealsvc "propdesk-backend/internal/application/deals"
	"propdesk-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Handlers struct {
	Service *dealsvc.Service
}

func dealErrorStatus(err error) int {
	switch {
	case errors.Is(err, dealsvc.ErrRequirementNotFound), errors.Is(err, dealsvc.ErrDealNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, dealsvc.ErrUnknownStatus), errors.Is(err, dealsvc.ErrIllegalTransition), errors.Is(err, dealsvc.ErrNoChanges):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// CreateDeal POST /api/v1/deals/create-deal
func (h *Handlers) CreateDeal(c *fiber.Ctx) error {
	var body struct {
		RequirementID string `json:"requirement_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "requirement_id is required", 400, nil)
	}
	if body.RequirementID == "" {
		return response.Error(c, "requirement_id is required", 400, nil)
	}
	requirementID, err := uuid.Parse(body.RequirementID)
	if err != nil {
		return response.Error(c, "Invalid UUID format for requirement_id", 400, nil)
	}

	deal, err := h.Service.CreateDeal(c.Context(), requirementID)
	if err != nil {
		if code := dealErrorStatus(err); code != fiber.StatusInternalServerError {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.SuccessCreated(c, "Deal created successfully", deal, nil)
}

// GetOpenDeals GET /api/v1/deals/get-open-deals
func (h *Handlers) GetOpenDeals(c *fiber.Ctx) error {
	deals, err := h.Service.GetOpenDeals(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Open deals fetched successfully", deals, nil)
}

// GetClosedDeals GET /api/v1/deals/get-closed-deals
func (h *Handlers) GetClosedDeals(c *fiber.Ctx) error {
	deals, err := h.Service.GetClosedDeals(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Closed deals fetched successfully", deals, nil)
}

// GetDeal GET /api/v1/deals/get-deal/:deal_id — deal joined to its requirement.
func (h *Handlers) GetDeal(c *fiber.Ctx) error {
	dealID, err := uuid.Parse(c.Params("deal_id"))
	if err != nil {
		return response.Error(c, "Invalid UUID format for deal_id", 400, nil)
	}
	out, err := h.Service.GetDealWithRequirement(c.Context(), dealID)
	if err != nil {
		if code := dealErrorStatus(err); code != fiber.StatusInternalServerError {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Deal fetched successfully", out, nil)
}

// UpdateStatus PATCH /api/v1/deals/update-status
func (h *Handlers) UpdateStatus(c *fiber.Ctx) error {
	var body struct {
		DealID string `json:"deal_id"`
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "deal_id and status are required", 400, nil)
	}
	if body.DealID == "" || body.Status == "" {
		return response.Error(c, "deal_id and status are required", 400, nil)
	}
	dealID, err := uuid.Parse(body.DealID)
	if err != nil {
		return response.Error(c, "Invalid UUID format for deal_id", 400, nil)
	}

	deal, err := h.Service.UpdateStatus(c.Context(), dealID, body.Status)
	if err != nil {
		if code := dealErrorStatus(err); code != fiber.StatusInternalServerError {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Deal status updated successfully", deal, nil)
}

// UpdateDetails PATCH /api/v1/deals/update-details
func (h *Handlers) UpdateDetails(c *fiber.Ctx) error {
	var body struct {
		DealID            string         `json:"deal_id"`
		PaymentPlan       *string        `json:"payment_plan"`
		OutstandingAmount *float64       `json:"outstanding_amount"`
		Milestones        datatypes.JSON `json:"milestones"`
		Remarks           *string        `json:"remarks"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "deal_id is required", 400, nil)
	}
	if body.DealID == "" {
		return response.Error(c, "deal_id is required", 400, nil)
	}
	dealID, err := uuid.Parse(body.DealID)
	if err != nil {
		return response.Error(c, "Invalid UUID format for deal_id", 400, nil)
	}

	deal, err := h.Service.UpdateDetails(c.Context(), dealID, dealsvc.UpdateDetailsInput{
		PaymentPlan:       body.PaymentPlan,
		OutstandingAmount: body.OutstandingAmount,
		Milestones:        body.Milestones,
		Remarks:           body.Remarks,
	})
	if err != nil {
		if code := dealErrorStatus(err); code != fiber.StatusInternalServerError {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Deal updated successfully", deal, nil)
}
