package dashboard

import (
	dashsvc "propdesk-backend/internal/application/dashboard"
	"propdesk-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *dashsvc.Service
}

// GetSummary GET /api/v1/dashboard/summary — lenient aggregates, never errors.
func (h *Handlers) GetSummary(c *fiber.Ctx) error {
	summary := h.Service.GetSummary(c.Context())
	return response.Success(c, "Summary fetched successfully", summary, nil)
}
