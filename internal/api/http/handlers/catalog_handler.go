package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/assetflow/maintenance-service/internal/api/dto"
	"github.com/assetflow/maintenance-service/internal/domain"
	"github.com/assetflow/maintenance-service/internal/store"
	"github.com/assetflow/maintenance-service/internal/warranty"
	apperrors "github.com/assetflow/maintenance-service/pkg/util"
)

// CatalogHandler exposes the registration surface for assets, help-desk
// employees, and vendors.
type CatalogHandler struct {
	store *store.Store
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(s *store.Store) *CatalogHandler {
	return &CatalogHandler{store: s}
}

// RegisterAsset POST /assets.
func (h *CatalogHandler) RegisterAsset(c *fiber.Ctx) error {
	var req dto.RegisterAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	asset := domain.Asset{
		ID:               req.ID,
		Name:             req.Name,
		Category:         req.Category,
		Branch:           req.Branch,
		Location:         req.Location,
		SerialNumber:     req.SerialNumber,
		Status:           req.Status,
		WarrantyInfo:     req.WarrantyInfo,
		WarrantyExpiry:   req.WarrantyExpiry,
		CurrentOwner:     req.CurrentOwner,
		OwnershipChanges: req.OwnershipChanges,
	}
	if req.OwnershipSince != nil {
		asset.OwnershipSince = *req.OwnershipSince
	}
	if err := h.store.RegisterAsset(asset); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": assetResponse(&asset, time.Now())})
}

// ListAssets GET /assets.
func (h *CatalogHandler) ListAssets(c *fiber.Ctx) error {
	now := time.Now()
	assets := h.store.ListAssets()
	items := make([]dto.AssetResponse, 0, len(assets))
	for i := range assets {
		items = append(items, assetResponse(&assets[i], now))
	}
	return c.JSON(fiber.Map{"data": items})
}

// RegisterEmployee POST /team/employees.
func (h *CatalogHandler) RegisterEmployee(c *fiber.Ctx) error {
	var req dto.RegisterEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	employee := domain.HelpDeskEmployee{
		ID:              req.ID,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Specializations: req.Specializations,
		Available:       req.Available,
	}
	if err := h.store.RegisterEmployee(employee); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": employeeResponse(&employee)})
}

// ListEmployees GET /team/employees.
func (h *CatalogHandler) ListEmployees(c *fiber.Ctx) error {
	employees := h.store.ListEmployees()
	items := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		items = append(items, employeeResponse(&employees[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// RegisterVendor POST /team/vendors.
func (h *CatalogHandler) RegisterVendor(c *fiber.Ctx) error {
	var req dto.RegisterVendorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	vendor := domain.Vendor{
		ID:              req.ID,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Specializations: req.Specializations,
		HourlyRate:      req.HourlyRate,
		ResponseTime:    req.ResponseTime,
		Rating:          req.Rating,
	}
	if err := h.store.RegisterVendor(vendor); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": vendorResponse(&vendor)})
}

// ListVendors GET /team/vendors.
func (h *CatalogHandler) ListVendors(c *fiber.Ctx) error {
	vendors := h.store.ListVendors()
	items := make([]dto.VendorResponse, 0, len(vendors))
	for i := range vendors {
		items = append(items, vendorResponse(&vendors[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func assetResponse(asset *domain.Asset, now time.Time) dto.AssetResponse {
	evaluation := warranty.Evaluate(asset, now)
	return dto.AssetResponse{
		ID:               asset.ID,
		Name:             asset.Name,
		Category:         asset.Category,
		Branch:           asset.Branch,
		Location:         asset.Location,
		SerialNumber:     asset.SerialNumber,
		Status:           asset.Status,
		WarrantyInfo:     asset.WarrantyInfo,
		WarrantyExpiry:   asset.WarrantyExpiry,
		WarrantyStatus:   string(evaluation.Status),
		WarrantyDays:     evaluation.DaysRemaining,
		CurrentOwner:     asset.CurrentOwner,
		OwnershipChanges: asset.OwnershipChanges,
	}
}

func employeeResponse(employee *domain.HelpDeskEmployee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:              employee.ID,
		Name:            employee.Name,
		Email:           employee.Email,
		Phone:           employee.Phone,
		Specializations: employee.Specializations,
		Available:       employee.Available,
		Workload:        employee.Workload,
	}
}

func vendorResponse(vendor *domain.Vendor) dto.VendorResponse {
	return dto.VendorResponse{
		ID:              vendor.ID,
		Name:            vendor.Name,
		Email:           vendor.Email,
		Phone:           vendor.Phone,
		Specializations: vendor.Specializations,
		HourlyRate:      vendor.HourlyRate,
		ResponseTime:    vendor.ResponseTime,
		Rating:          vendor.Rating,
	}
}
