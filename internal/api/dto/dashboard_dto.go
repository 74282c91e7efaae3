package dto

import "github.com/assetflow/maintenance-service/internal/domain"

// MetricsSummaryResponse is the dashboard aggregate shape. Ownership
// periods are rounded to whole years here, at the presentation edge.
type MetricsSummaryResponse struct {
	StatusCounts    map[domain.RequestStatus]int  `json:"status_counts"`
	BranchActivity  map[string]int                `json:"branch_activity"`
	OwnershipPeriod map[string]int                `json:"ownership_period_years"`
	LifecycleFunnel map[domain.LifecycleStage]int `json:"lifecycle_funnel"`
}
