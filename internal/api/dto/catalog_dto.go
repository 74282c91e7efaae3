package dto

import (
	"time"

	"github.com/assetflow/maintenance-service/internal/domain"
)

// RegisterAssetRequest payload.
type RegisterAssetRequest struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Category         string             `json:"category"`
	Branch           string             `json:"branch"`
	Location         string             `json:"location"`
	SerialNumber     string             `json:"serial_number"`
	Status           domain.AssetStatus `json:"status"`
	WarrantyInfo     string             `json:"warranty_info"`
	WarrantyExpiry   *time.Time         `json:"warranty_expiry"`
	CurrentOwner     string             `json:"current_owner"`
	OwnershipChanges int                `json:"ownership_changes"`
	OwnershipSince   *time.Time         `json:"ownership_since"`
}

// AssetResponse response.
type AssetResponse struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Category         string             `json:"category"`
	Branch           string             `json:"branch"`
	Location         string             `json:"location"`
	SerialNumber     string             `json:"serial_number"`
	Status           domain.AssetStatus `json:"status"`
	WarrantyInfo     string             `json:"warranty_info,omitempty"`
	WarrantyExpiry   *time.Time         `json:"warranty_expiry,omitempty"`
	WarrantyStatus   string             `json:"warranty_status"`
	WarrantyDays     int                `json:"warranty_days"`
	CurrentOwner     string             `json:"current_owner,omitempty"`
	OwnershipChanges int                `json:"ownership_changes"`
}

// RegisterEmployeeRequest payload.
type RegisterEmployeeRequest struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Specializations []string `json:"specializations"`
	Available       bool     `json:"available"`
}

// EmployeeResponse response.
type EmployeeResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone,omitempty"`
	Specializations []string `json:"specializations"`
	Available       bool     `json:"available"`
	Workload        int      `json:"workload"`
}

// RegisterVendorRequest payload.
type RegisterVendorRequest struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Specializations []string `json:"specializations"`
	HourlyRate      float64  `json:"hourly_rate"`
	ResponseTime    string   `json:"response_time"`
	Rating          float64  `json:"rating"`
}

// VendorResponse response.
type VendorResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone,omitempty"`
	Specializations []string `json:"specializations"`
	HourlyRate      float64  `json:"hourly_rate"`
	ResponseTime    string   `json:"response_time,omitempty"`
	Rating          float64  `json:"rating"`
}
