package store

import (
	"sort"
	"strings"

	"github.com/assetflow/maintenance-service/internal/domain"
	apperrors "github.com/assetflow/maintenance-service/pkg/util"
)

// Registration surface for assets, employees, and vendors. These enter
// through external management flows; the maintenance core only reads
// them, except for the employee workload counter it owns.

// RegisterAsset adds an asset to the catalog.
func (s *Store) RegisterAsset(asset domain.Asset) error {
	if asset.ID == "" || strings.TrimSpace(asset.Name) == "" {
		return apperrors.NewValidationError("asset id and name required", nil)
	}
	if asset.Status == "" {
		asset.Status = domain.AssetStatusActive
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.assets[asset.ID]; exists {
		return apperrors.NewConflict("asset already registered", map[string]any{"asset_id": asset.ID})
	}
	s.assets[asset.ID] = asset.Clone()
	return nil
}

// RegisterEmployee adds a help-desk employee. Workload is derived state
// owned by the store and always starts at zero.
func (s *Store) RegisterEmployee(employee domain.HelpDeskEmployee) error {
	if employee.ID == "" || strings.TrimSpace(employee.Name) == "" {
		return apperrors.NewValidationError("employee id and name required", nil)
	}
	employee.Workload = 0
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.employees[employee.ID]; exists {
		return apperrors.NewConflict("employee already registered", map[string]any{"employee_id": employee.ID})
	}
	s.employees[employee.ID] = employee.Clone()
	return nil
}

// RegisterVendor adds an external vendor.
func (s *Store) RegisterVendor(vendor domain.Vendor) error {
	if vendor.ID == "" || strings.TrimSpace(vendor.Name) == "" {
		return apperrors.NewValidationError("vendor id and name required", nil)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.vendors[vendor.ID]; exists {
		return apperrors.NewConflict("vendor already registered", map[string]any{"vendor_id": vendor.ID})
	}
	s.vendors[vendor.ID] = vendor.Clone()
	return nil
}

// Asset returns a copy of the asset.
func (s *Store) Asset(id string) (*domain.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	asset, ok := s.assets[id]
	if !ok {
		return nil, apperrors.NewNotFound("asset", map[string]any{"asset_id": id})
	}
	return asset.Clone(), nil
}

// Employee returns a copy of the help-desk employee.
func (s *Store) Employee(id string) (*domain.HelpDeskEmployee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	employee, ok := s.employees[id]
	if !ok {
		return nil, apperrors.NewNotFound("help-desk employee", map[string]any{"employee_id": id})
	}
	return employee.Clone(), nil
}

// Vendor returns a copy of the vendor.
func (s *Store) Vendor(id string) (*domain.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vendor, ok := s.vendors[id]
	if !ok {
		return nil, apperrors.NewNotFound("vendor", map[string]any{"vendor_id": id})
	}
	return vendor.Clone(), nil
}

// ListAssets returns copies of all assets sorted by id.
func (s *Store) ListAssets() []domain.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Asset, 0, len(s.assets))
	for _, asset := range s.assets {
		result = append(result, *asset.Clone())
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// ListEmployees returns copies of all help-desk employees sorted by id.
func (s *Store) ListEmployees() []domain.HelpDeskEmployee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.HelpDeskEmployee, 0, len(s.employees))
	for _, employee := range s.employees {
		result = append(result, *employee.Clone())
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// ListVendors returns copies of all vendors sorted by id.
func (s *Store) ListVendors() []domain.Vendor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Vendor, 0, len(s.vendors))
	for _, vendor := range s.vendors {
		result = append(result, *vendor.Clone())
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
