package requirements

import (
	"errors"

	reqsvc "propdesk-backend/internal/application/requirements"
	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *reqsvc.Service
}

// CreateRequirement POST /api/v1/requirements/create-requirement
func (h *Handlers) CreateRequirement(c *fiber.Ctx) error {
	var body struct {
		Demand         string   `json:"demand"`
		PropertyType   string   `json:"property_type"`
		Location       string   `json:"location"`
		Budget         string   `json:"budget"`
		SquareFootage  *float64 `json:"square_footage"`
		PreferredROI   *float64 `json:"preferred_roi"`
		PHPPEligible   bool     `json:"phpp_eligible"`
		Classification string   `json:"classification"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Missing required fields", 400, nil)
	}

	req, err := h.Service.CreateRequirement(c.Context(), reqsvc.CreateRequirementInput{
		Demand:         body.Demand,
		PropertyType:   body.PropertyType,
		Location:       body.Location,
		Budget:         body.Budget,
		SquareFootage:  body.SquareFootage,
		PreferredROI:   body.PreferredROI,
		PHPPEligible:   body.PHPPEligible,
		Classification: body.Classification,
	})
	if err != nil {
		if errors.Is(err, reqsvc.ErrMissingFields) || errors.Is(err, domain.ErrInvalidBudget) {
			return response.Error(c, err.Error(), 400, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.SuccessCreated(c, "Requirement created successfully", req, nil)
}

// GetAllRequirements GET /api/v1/requirements/get-all-requirements
func (h *Handlers) GetAllRequirements(c *fiber.Ctx) error {
	reqs, err := h.Service.GetAllRequirements(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Requirements fetched successfully", reqs, nil)
}

// GetRequirement GET /api/v1/requirements/get-requirement/:requirement_id
func (h *Handlers) GetRequirement(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("requirement_id"))
	if err != nil {
		return response.Error(c, "Invalid UUID format for requirement_id", 400, nil)
	}
	req, err := h.Service.GetRequirementByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, reqsvc.ErrRequirementNotFound) {
			return response.Error(c, err.Error(), 404, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Requirement fetched successfully", req, nil)
}
