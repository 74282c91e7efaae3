package events

import (
	"time"

	"github.com/assetflow/maintenance-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventRequestCreated       EventType = "request_created"
	EventRequestAssigned      EventType = "request_assigned"
	EventRequestStatusChanged EventType = "request_status_changed"
	EventRequestWarrantyUsed  EventType = "request_warranty_used"
	EventAttachmentAdded      EventType = "request_attachment_added"
	EventRequestDeleted       EventType = "request_deleted"
)

// Event represents a domain event emitted by the store.
type Event struct {
	ID        string       `json:"id"`
	Type      EventType    `json:"type"`
	RequestID string       `json:"request_id"`
	Actor     domain.Actor `json:"actor"`
	Timestamp time.Time    `json:"timestamp"`
	Payload   interface{}  `json:"payload"`
}

// RequestCreatedPayload payload.
type RequestCreatedPayload struct {
	AssetID          string                 `json:"asset_id"`
	Title            string                 `json:"title"`
	Priority         domain.RequestPriority `json:"priority"`
	Category         domain.RequestCategory `json:"category"`
	WarrantyEligible bool                   `json:"warranty_eligible"`
}

// RequestAssignedPayload payload.
type RequestAssignedPayload struct {
	AssigneeID string              `json:"assignee_id"`
	Kind       domain.AssigneeKind `json:"kind"`
}

// RequestStatusChangedPayload payload.
type RequestStatusChangedPayload struct {
	OldStatus domain.RequestStatus `json:"old_status"`
	NewStatus domain.RequestStatus `json:"new_status"`
}

// RequestWarrantyUsedPayload payload.
type RequestWarrantyUsedPayload struct {
	Used bool `json:"used"`
}

// AttachmentAddedPayload payload.
type AttachmentAddedPayload struct {
	AttachmentID string `json:"attachment_id"`
	FileName     string `json:"file_name"`
	FileSize     int64  `json:"file_size"`
}

// RequestDeletedPayload payload.
type RequestDeletedPayload struct {
	Status domain.RequestStatus `json:"status"`
}
