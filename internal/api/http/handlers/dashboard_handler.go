package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/assetflow/maintenance-service/internal/api/dto"
	"github.com/assetflow/maintenance-service/internal/domain"
	"github.com/assetflow/maintenance-service/internal/metrics"
	"github.com/assetflow/maintenance-service/internal/store"
)

// DashboardHandler serves the aggregated dashboard metrics.
type DashboardHandler struct {
	store *store.Store
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(s *store.Store) *DashboardHandler {
	return &DashboardHandler{store: s}
}

// Metrics GET /dashboard/metrics. Recomputed from a fresh snapshot on
// every call; filters default to "all" when absent.
func (h *DashboardHandler) Metrics(c *fiber.Ctx) error {
	filter := metrics.Filter{
		Category: c.Query("category"),
		Branch:   c.Query("branch"),
		Status:   domain.RequestStatus(c.Query("status")),
	}
	requests, assets := h.store.Snapshot()
	summary := metrics.Aggregate(requests, assets, filter, time.Now())

	periods := make(map[string]int, len(summary.OwnershipPeriod))
	for branch, years := range summary.OwnershipPeriod {
		periods[branch] = metrics.WholeYears(years)
	}
	return c.JSON(fiber.Map{"data": dto.MetricsSummaryResponse{
		StatusCounts:    summary.StatusCounts,
		BranchActivity:  summary.BranchActivity,
		OwnershipPeriod: periods,
		LifecycleFunnel: summary.LifecycleFunnel,
	}})
}
