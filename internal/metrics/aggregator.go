// Package metrics reduces request/asset snapshots into dashboard-ready
// aggregates. Aggregation is a pure read: it never mutates the store and
// yields identical output for identical (requests, assets, filter, now).
package metrics

import (
	"math"
	"time"

	"github.com/assetflow/maintenance-service/internal/domain"
)

// Filter selects a subset of the data. Empty fields match everything.
// Category matches the request category for requests and the asset
// category for assets; Branch matches the asset branch (for requests via
// the referenced asset); Status is a request-only dimension.
type Filter struct {
	Category string
	Branch   string
	Status   domain.RequestStatus
}

// Summary is the aggregate shape consumed by the dashboard. Ownership
// periods keep fractional years; rounding happens at presentation.
type Summary struct {
	StatusCounts    map[domain.RequestStatus]int
	BranchActivity  map[string]int
	OwnershipPeriod map[string]float64
	LifecycleFunnel map[domain.LifecycleStage]int
}

const hoursPerYear = 24 * 365.25

// Aggregate computes the dashboard summary for the given snapshot.
func Aggregate(requests []domain.MaintenanceRequest, assets []domain.Asset, filter Filter, now time.Time) Summary {
	assetByID := make(map[string]*domain.Asset, len(assets))
	for i := range assets {
		assetByID[assets[i].ID] = &assets[i]
	}

	filteredRequests := make([]domain.MaintenanceRequest, 0, len(requests))
	for _, req := range requests {
		if !matchesRequest(&req, assetByID, filter) {
			continue
		}
		filteredRequests = append(filteredRequests, req)
	}
	filteredAssets := make([]domain.Asset, 0, len(assets))
	for _, asset := range assets {
		if !matchesAsset(&asset, filter) {
			continue
		}
		filteredAssets = append(filteredAssets, asset)
	}

	return Summary{
		StatusCounts:    statusCounts(filteredRequests),
		BranchActivity:  branchActivity(filteredAssets),
		OwnershipPeriod: ownershipPeriod(filteredAssets, now),
		LifecycleFunnel: lifecycleFunnel(filteredAssets, filteredRequests),
	}
}

// WholeYears rounds a fractional ownership period for display.
func WholeYears(years float64) int {
	return int(math.Round(years))
}

func matchesRequest(req *domain.MaintenanceRequest, assetByID map[string]*domain.Asset, filter Filter) bool {
	if filter.Category != "" && string(req.Category) != filter.Category {
		return false
	}
	if filter.Status != "" && req.Status != filter.Status {
		return false
	}
	if filter.Branch != "" {
		asset, ok := assetByID[req.AssetID]
		if !ok || asset.Branch != filter.Branch {
			return false
		}
	}
	return true
}

func matchesAsset(asset *domain.Asset, filter Filter) bool {
	if filter.Category != "" && asset.Category != filter.Category {
		return false
	}
	if filter.Branch != "" && asset.Branch != filter.Branch {
		return false
	}
	return true
}

// statusCounts maps every status value to its count, zeroes included.
func statusCounts(requests []domain.MaintenanceRequest) map[domain.RequestStatus]int {
	counts := map[domain.RequestStatus]int{
		domain.RequestStatusPending:    0,
		domain.RequestStatusInProgress: 0,
		domain.RequestStatusCompleted:  0,
		domain.RequestStatusCancelled:  0,
	}
	for _, req := range requests {
		counts[req.Status]++
	}
	return counts
}

// branchActivity counts ownership-change events per branch.
func branchActivity(assets []domain.Asset) map[string]int {
	activity := make(map[string]int)
	for _, asset := range assets {
		activity[asset.Branch] += asset.OwnershipChanges
	}
	return activity
}

// ownershipPeriod averages, per branch, how long assets have been held by
// their current owner, in fractional years.
func ownershipPeriod(assets []domain.Asset, now time.Time) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, asset := range assets {
		if asset.OwnershipSince.IsZero() {
			continue
		}
		sums[asset.Branch] += now.Sub(asset.OwnershipSince).Hours() / hoursPerYear
		counts[asset.Branch]++
	}
	periods := make(map[string]float64, len(sums))
	for branch, sum := range sums {
		periods[branch] = sum / float64(counts[branch])
	}
	return periods
}

// lifecycleFunnel buckets assets into funnel stages. An asset with an
// open request in the filtered set counts as maintenance-pending.
func lifecycleFunnel(assets []domain.Asset, requests []domain.MaintenanceRequest) map[domain.LifecycleStage]int {
	open := make(map[string]bool)
	for _, req := range requests {
		if req.Status == domain.RequestStatusPending || req.Status == domain.RequestStatusInProgress {
			open[req.AssetID] = true
		}
	}
	funnel := map[domain.LifecycleStage]int{
		domain.StageActive:             0,
		domain.StageMaintenancePending: 0,
		domain.StageRetired:            0,
	}
	for _, asset := range assets {
		switch {
		case asset.Status == domain.AssetStatusRetired || asset.Status == domain.AssetStatusDisposed:
			funnel[domain.StageRetired]++
		case open[asset.ID] || asset.Status == domain.AssetStatusMaintenance:
			funnel[domain.StageMaintenancePending]++
		default:
			funnel[domain.StageActive]++
		}
	}
	return funnel
}
