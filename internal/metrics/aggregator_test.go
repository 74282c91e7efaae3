package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetflow/maintenance-service/internal/domain"
)

var aggNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixtureAssets() []domain.Asset {
	return []domain.Asset{
		{ID: "AST-001", Branch: "HQ", Category: "hardware", Status: domain.AssetStatusActive, OwnershipChanges: 3, OwnershipSince: aggNow.AddDate(-2, 0, 0)},
		{ID: "AST-002", Branch: "HQ", Category: "software", Status: domain.AssetStatusActive, OwnershipChanges: 1, OwnershipSince: aggNow.AddDate(-4, 0, 0)},
		{ID: "AST-003", Branch: "East", Category: "hardware", Status: domain.AssetStatusMaintenance, OwnershipChanges: 2, OwnershipSince: aggNow.AddDate(-1, 0, 0)},
		{ID: "AST-004", Branch: "East", Category: "hardware", Status: domain.AssetStatusRetired, OwnershipChanges: 5},
	}
}

func fixtureRequests() []domain.MaintenanceRequest {
	return []domain.MaintenanceRequest{
		{ID: "MR-001", AssetID: "AST-001", Category: domain.CategoryHardware, Status: domain.RequestStatusPending},
		{ID: "MR-002", AssetID: "AST-001", Category: domain.CategorySoftware, Status: domain.RequestStatusCompleted},
		{ID: "MR-003", AssetID: "AST-003", Category: domain.CategoryHardware, Status: domain.RequestStatusInProgress},
		{ID: "MR-004", AssetID: "AST-004", Category: domain.CategoryNetwork, Status: domain.RequestStatusCancelled},
	}
}

func TestAggregateUnfiltered(t *testing.T) {
	got := Aggregate(fixtureRequests(), fixtureAssets(), Filter{}, aggNow)

	assert.Equal(t, map[domain.RequestStatus]int{
		domain.RequestStatusPending:    1,
		domain.RequestStatusInProgress: 1,
		domain.RequestStatusCompleted:  1,
		domain.RequestStatusCancelled:  1,
	}, got.StatusCounts)

	assert.Equal(t, map[string]int{"HQ": 4, "East": 7}, got.BranchActivity)

	assert.Equal(t, map[domain.LifecycleStage]int{
		domain.StageActive:             1,
		domain.StageMaintenancePending: 2,
		domain.StageRetired:            1,
	}, got.LifecycleFunnel)

	// HQ average of 2 and 4 years; East holds only AST-003 because the
	// retired asset has no ownership start.
	require.Contains(t, got.OwnershipPeriod, "HQ")
	require.Contains(t, got.OwnershipPeriod, "East")
	assert.InDelta(t, 3.0, got.OwnershipPeriod["HQ"], 0.01)
	assert.InDelta(t, 1.0, got.OwnershipPeriod["East"], 0.01)
}

func TestStatusCountsIncludeZeroes(t *testing.T) {
	got := Aggregate(nil, nil, Filter{}, aggNow)

	assert.Equal(t, map[domain.RequestStatus]int{
		domain.RequestStatusPending:    0,
		domain.RequestStatusInProgress: 0,
		domain.RequestStatusCompleted:  0,
		domain.RequestStatusCancelled:  0,
	}, got.StatusCounts)
	assert.Empty(t, got.BranchActivity)
	assert.Empty(t, got.OwnershipPeriod)
}

func TestAggregateBranchFilter(t *testing.T) {
	got := Aggregate(fixtureRequests(), fixtureAssets(), Filter{Branch: "East"}, aggNow)

	// Only requests on East assets survive.
	assert.Equal(t, 1, got.StatusCounts[domain.RequestStatusInProgress])
	assert.Equal(t, 1, got.StatusCounts[domain.RequestStatusCancelled])
	assert.Equal(t, 0, got.StatusCounts[domain.RequestStatusPending])
	assert.Equal(t, 0, got.StatusCounts[domain.RequestStatusCompleted])

	assert.Equal(t, map[string]int{"East": 7}, got.BranchActivity)
	assert.NotContains(t, got.OwnershipPeriod, "HQ")
	assert.Equal(t, map[domain.LifecycleStage]int{
		domain.StageActive:             0,
		domain.StageMaintenancePending: 1,
		domain.StageRetired:            1,
	}, got.LifecycleFunnel)
}

func TestAggregateCategoryFilter(t *testing.T) {
	got := Aggregate(fixtureRequests(), fixtureAssets(), Filter{Category: "hardware"}, aggNow)

	// Request category filters requests, asset category filters assets.
	assert.Equal(t, 1, got.StatusCounts[domain.RequestStatusPending])
	assert.Equal(t, 1, got.StatusCounts[domain.RequestStatusInProgress])
	assert.Equal(t, 0, got.StatusCounts[domain.RequestStatusCompleted])

	assert.Equal(t, map[string]int{"HQ": 3, "East": 7}, got.BranchActivity)
}

func TestAggregateStatusFilterIsRequestOnly(t *testing.T) {
	got := Aggregate(fixtureRequests(), fixtureAssets(), Filter{Status: domain.RequestStatusCompleted}, aggNow)

	assert.Equal(t, 1, got.StatusCounts[domain.RequestStatusCompleted])
	assert.Equal(t, 0, got.StatusCounts[domain.RequestStatusPending])

	// Asset-derived aggregates are untouched by a status filter.
	assert.Equal(t, map[string]int{"HQ": 4, "East": 7}, got.BranchActivity)
}

func TestFunnelOpenRequestOverridesActiveStatus(t *testing.T) {
	assets := []domain.Asset{
		{ID: "AST-001", Branch: "HQ", Status: domain.AssetStatusActive},
	}
	requests := []domain.MaintenanceRequest{
		{ID: "MR-001", AssetID: "AST-001", Status: domain.RequestStatusPending},
	}

	got := Aggregate(requests, assets, Filter{}, aggNow)
	assert.Equal(t, 1, got.LifecycleFunnel[domain.StageMaintenancePending])
	assert.Equal(t, 0, got.LifecycleFunnel[domain.StageActive])

	// Once the request closes, the asset returns to the active stage.
	requests[0].Status = domain.RequestStatusCompleted
	got = Aggregate(requests, assets, Filter{}, aggNow)
	assert.Equal(t, 0, got.LifecycleFunnel[domain.StageMaintenancePending])
	assert.Equal(t, 1, got.LifecycleFunnel[domain.StageActive])
}

func TestAggregateIsPure(t *testing.T) {
	requests := fixtureRequests()
	assets := fixtureAssets()

	first := Aggregate(requests, assets, Filter{Branch: "HQ"}, aggNow)
	second := Aggregate(requests, assets, Filter{Branch: "HQ"}, aggNow)
	assert.Equal(t, first, second)

	// Inputs are untouched.
	assert.Equal(t, fixtureRequests(), requests)
	assert.Equal(t, fixtureAssets(), assets)
}

func TestBranchPartitionsSumToUnfiltered(t *testing.T) {
	requests := fixtureRequests()
	assets := fixtureAssets()

	whole := Aggregate(requests, assets, Filter{}, aggNow)
	hq := Aggregate(requests, assets, Filter{Branch: "HQ"}, aggNow)
	east := Aggregate(requests, assets, Filter{Branch: "East"}, aggNow)

	for _, status := range []domain.RequestStatus{
		domain.RequestStatusPending,
		domain.RequestStatusInProgress,
		domain.RequestStatusCompleted,
		domain.RequestStatusCancelled,
	} {
		assert.Equal(t, whole.StatusCounts[status], hq.StatusCounts[status]+east.StatusCounts[status], status)
	}
	for branch, activity := range whole.BranchActivity {
		assert.Equal(t, activity, hq.BranchActivity[branch]+east.BranchActivity[branch], branch)
	}
	for _, stage := range []domain.LifecycleStage{domain.StageActive, domain.StageMaintenancePending, domain.StageRetired} {
		assert.Equal(t, whole.LifecycleFunnel[stage], hq.LifecycleFunnel[stage]+east.LifecycleFunnel[stage], stage)
	}
}

func TestWholeYears(t *testing.T) {
	assert.Equal(t, 0, WholeYears(0.4))
	assert.Equal(t, 1, WholeYears(0.5))
	assert.Equal(t, 2, WholeYears(1.7))
	assert.Equal(t, 3, WholeYears(3.2))
}
