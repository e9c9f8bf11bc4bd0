package matching

import (
	"errors"

	matchsvc "propdesk-backend/internal/application/matching"
	"propdesk-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *matchsvc.Service
}

// FindCandidates GET /api/v1/matching/find-candidates/:requirement_id
// Returns the unranked candidate set; an empty set is a 200, not an error.
func (h *Handlers) FindCandidates(c *fiber.Ctx) error {
	requirementID, err := uuid.Parse(c.Params("requirement_id"))
	if err != nil {
		return response.Error(c, "Invalid UUID format for requirement_id", 400, nil)
	}

	items, err := h.Service.FindCandidates(c.Context(), requirementID)
	if err != nil {
		switch {
		case errors.Is(err, matchsvc.ErrRequirementNotFound):
			return response.Error(c, err.Error(), 404, nil)
		case errors.Is(err, matchsvc.ErrInvalidBudget):
			return response.Error(c, err.Error(), 400, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Candidates fetched successfully", items, fiber.Map{
		"count": len(items),
	})
}
