package staleness

import (
	stalesvc "propdesk-backend/internal/application/staleness"
	"propdesk-backend/internal/pkg/response"
	"propdesk-backend/internal/scheduler"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service   *stalesvc.Service
	Scheduler *scheduler.Scheduler
}

// GetStaleDeals GET /api/v1/staleness/get-stale-deals
func (h *Handlers) GetStaleDeals(c *fiber.Ctx) error {
	deals, err := h.Service.StaleDeals(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Stale deals fetched successfully", deals, fiber.Map{"count": len(deals)})
}

// GetUnassignedRequirements GET /api/v1/staleness/get-unassigned-requirements
func (h *Handlers) GetUnassignedRequirements(c *fiber.Ctx) error {
	reqs, err := h.Service.UnassignedRequirements(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Unassigned requirements fetched successfully", reqs, fiber.Map{"count": len(reqs)})
}

// RunSweep POST /api/v1/staleness/run-sweep — manual trigger for the same
// sweep the cron schedule runs.
func (h *Handlers) RunSweep(c *fiber.Ctx) error {
	if h.Scheduler == nil {
		return response.Error(c, "Sweep scheduler not configured", 503, nil)
	}
	if err := h.Scheduler.RunSweep(c.Context()); err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Sweep completed", fiber.Map{"success": true}, nil)
}
