// Package warranty classifies an asset's warranty window relative to an
// explicit reference time. Evaluation is pure: no clock reads, no I/O.
package warranty

import (
	"math"
	"time"

	"github.com/assetflow/maintenance-service/internal/domain"
)

// Status classifies the warranty window.
type Status string

const (
	StatusNone     Status = "none"
	StatusValid    Status = "valid"
	StatusExpiring Status = "expiring"
	StatusExpired  Status = "expired"
)

// expiringWindowDays is the remaining-day threshold below which a still
// valid warranty is reported as expiring.
const expiringWindowDays = 30

// Evaluation is the result of classifying an asset at a reference time.
// DaysRemaining counts days until expiry, or days since expiry when the
// status is expired. It is zero-valued when the status is none.
type Evaluation struct {
	Status        Status
	DaysRemaining int
}

// Evaluate classifies the asset's warranty relative to now.
func Evaluate(asset *domain.Asset, now time.Time) Evaluation {
	if asset == nil || asset.WarrantyExpiry == nil {
		return Evaluation{Status: StatusNone}
	}
	diffDays := int(math.Ceil(asset.WarrantyExpiry.Sub(now).Hours() / 24))
	switch {
	case diffDays < 0:
		return Evaluation{Status: StatusExpired, DaysRemaining: -diffDays}
	case diffDays <= expiringWindowDays:
		return Evaluation{Status: StatusExpiring, DaysRemaining: diffDays}
	default:
		return Evaluation{Status: StatusValid, DaysRemaining: diffDays}
	}
}

// Eligible reports whether a request submitted at now is covered by the
// asset's warranty. The result is frozen on the request at creation time.
func Eligible(asset *domain.Asset, now time.Time) bool {
	if asset == nil || asset.WarrantyExpiry == nil {
		return false
	}
	return asset.WarrantyExpiry.After(now)
}
