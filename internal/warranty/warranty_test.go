package warranty

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/assetflow/maintenance-service/internal/domain"
)

func assetExpiring(expiry time.Time) *domain.Asset {
	return &domain.Asset{ID: "AST-001", Name: "Laptop", WarrantyExpiry: &expiry}
}

func TestEvaluateNoWarranty(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, Evaluation{Status: StatusNone}, Evaluate(nil, now))
	assert.Equal(t, Evaluation{Status: StatusNone}, Evaluate(&domain.Asset{ID: "AST-001"}, now))
}

func TestEvaluateValid(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	asset := assetExpiring(now.Add(90 * 24 * time.Hour))

	got := Evaluate(asset, now)
	assert.Equal(t, StatusValid, got.Status)
	assert.Equal(t, 90, got.DaysRemaining)
}

func TestEvaluateExpiring(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	asset := assetExpiring(now.Add(10 * 24 * time.Hour))

	got := Evaluate(asset, now)
	assert.Equal(t, StatusExpiring, got.Status)
	assert.Equal(t, 10, got.DaysRemaining)
}

func TestEvaluateExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	asset := assetExpiring(now.Add(-5 * 24 * time.Hour))

	got := Evaluate(asset, now)
	assert.Equal(t, StatusExpired, got.Status)
	assert.Equal(t, 5, got.DaysRemaining)
}

func TestEvaluateWindowBoundary(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	at30 := Evaluate(assetExpiring(now.Add(30*24*time.Hour)), now)
	assert.Equal(t, StatusExpiring, at30.Status)
	assert.Equal(t, 30, at30.DaysRemaining)

	at31 := Evaluate(assetExpiring(now.Add(31*24*time.Hour)), now)
	assert.Equal(t, StatusValid, at31.Status)
	assert.Equal(t, 31, at31.DaysRemaining)
}

func TestEvaluateRoundsPartialDaysUp(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	asset := assetExpiring(now.Add(30*24*time.Hour + time.Hour))

	got := Evaluate(asset, now)
	assert.Equal(t, StatusValid, got.Status)
	assert.Equal(t, 31, got.DaysRemaining)
}

func TestEvaluateDeterministic(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	asset := assetExpiring(now.Add(42 * 24 * time.Hour))

	first := Evaluate(asset, now)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Evaluate(asset, now))
	}
}

func TestEligible(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, Eligible(nil, now))
	assert.False(t, Eligible(&domain.Asset{ID: "AST-001"}, now))
	assert.True(t, Eligible(assetExpiring(now.Add(time.Hour)), now))
	assert.False(t, Eligible(assetExpiring(now), now))
	assert.False(t, Eligible(assetExpiring(now.Add(-time.Hour)), now))
}
