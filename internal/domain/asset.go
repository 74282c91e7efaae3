package domain

import "time"

// AssetStatus enumerates operational states for assets.
type AssetStatus string

const (
	AssetStatusActive      AssetStatus = "active"
	AssetStatusMaintenance AssetStatus = "maintenance"
	AssetStatusRetired     AssetStatus = "retired"
	AssetStatusDisposed    AssetStatus = "disposed"
)

// LifecycleStage buckets assets for the dashboard funnel.
type LifecycleStage string

const (
	StageActive             LifecycleStage = "active"
	StageMaintenancePending LifecycleStage = "maintenance-pending"
	StageRetired            LifecycleStage = "retired"
)

// Asset is a tracked piece of equipment. The maintenance core treats it
// as immutable; assets change only through the registration surface.
type Asset struct {
	ID           string
	Name         string
	Category     string
	Branch       string
	Location     string
	SerialNumber string
	Status       AssetStatus

	WarrantyInfo   string
	WarrantyExpiry *time.Time

	CurrentOwner     string
	OwnershipChanges int
	OwnershipSince   time.Time
}

// Clone returns a copy with no shared pointers.
func (a *Asset) Clone() *Asset {
	if a == nil {
		return nil
	}
	out := *a
	if a.WarrantyExpiry != nil {
		v := *a.WarrantyExpiry
		out.WarrantyExpiry = &v
	}
	return &out
}
