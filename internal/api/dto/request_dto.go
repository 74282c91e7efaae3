package dto

import (
	"time"

	"github.com/assetflow/maintenance-service/internal/domain"
)

// CreateRequestRequest payload.
type CreateRequestRequest struct {
	AssetID     string                 `json:"asset_id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Priority    domain.RequestPriority `json:"priority"`
	Category    domain.RequestCategory `json:"category"`
}

// AssignRequest payload.
type AssignRequest struct {
	AssigneeID string              `json:"assignee_id"`
	Kind       domain.AssigneeKind `json:"kind"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status domain.RequestStatus `json:"status"`
}

// WarrantyUsedRequest payload.
type WarrantyUsedRequest struct {
	Used bool `json:"used"`
}

// AddAttachmentRequest payload.
type AddAttachmentRequest struct {
	FileName string `json:"file_name"`
	FileRef  string `json:"file_ref"`
	FileSize int64  `json:"file_size"`
}

// AttachmentResponse response.
type AttachmentResponse struct {
	ID         string    `json:"id"`
	FileName   string    `json:"file_name"`
	FileRef    string    `json:"file_ref"`
	FileSize   int64     `json:"file_size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// RequestResponse provides the full maintenance request record.
type RequestResponse struct {
	ID                  string                 `json:"id"`
	AssetID             string                 `json:"asset_id"`
	UserID              string                 `json:"user_id"`
	Title               string                 `json:"title"`
	Description         string                 `json:"description"`
	Priority            domain.RequestPriority `json:"priority"`
	Category            domain.RequestCategory `json:"category"`
	Status              domain.RequestStatus   `json:"status"`
	SubmittedAt         time.Time              `json:"submitted_at"`
	AssignedTo          *string                `json:"assigned_to,omitempty"`
	AssignedKind        *domain.AssigneeKind   `json:"assigned_kind,omitempty"`
	EstimatedCompletion *time.Time             `json:"estimated_completion,omitempty"`
	ActualCompletion    *time.Time             `json:"actual_completion,omitempty"`
	Cost                *float64               `json:"cost,omitempty"`
	Resolution          string                 `json:"resolution,omitempty"`
	Notes               string                 `json:"notes,omitempty"`
	Attachments         []AttachmentResponse   `json:"attachments"`
	WarrantyEligible    bool                   `json:"warranty_eligible"`
	WarrantyUsed        bool                   `json:"warranty_used"`
}
