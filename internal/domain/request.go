package domain

import "time"

// RequestStatus enumerates lifecycle states for maintenance requests.
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusInProgress RequestStatus = "in-progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

// Terminal reports whether no further transition is permitted.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusCancelled
}

// Valid reports whether the value is a known status.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusInProgress, RequestStatusCompleted, RequestStatusCancelled:
		return true
	}
	return false
}

// RequestPriority enumerates urgency. No ordering is enforced beyond display.
type RequestPriority string

const (
	PriorityLow    RequestPriority = "low"
	PriorityMedium RequestPriority = "medium"
	PriorityHigh   RequestPriority = "high"
	PriorityUrgent RequestPriority = "urgent"
)

// Valid reports whether the value is a known priority.
func (p RequestPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// RequestCategory enumerates the kind of fault reported.
type RequestCategory string

const (
	CategoryHardware RequestCategory = "hardware"
	CategorySoftware RequestCategory = "software"
	CategoryNetwork  RequestCategory = "network"
	CategoryOther    RequestCategory = "other"
)

// Valid reports whether the value is a known category.
func (c RequestCategory) Valid() bool {
	switch c {
	case CategoryHardware, CategorySoftware, CategoryNetwork, CategoryOther:
		return true
	}
	return false
}

// AssigneeKind distinguishes internal help-desk routing from vendor routing.
type AssigneeKind string

const (
	AssigneeHelpDesk AssigneeKind = "helpdesk"
	AssigneeVendor   AssigneeKind = "vendor"
)

// Valid reports whether the value is a known assignee kind.
func (k AssigneeKind) Valid() bool {
	return k == AssigneeHelpDesk || k == AssigneeVendor
}

// Attachment is an append-only file record on a request.
type Attachment struct {
	ID         string
	FileName   string
	FileRef    string
	FileSize   int64
	UploadedAt time.Time
}

// MaintenanceRequest is the aggregate for asset maintenance work.
type MaintenanceRequest struct {
	ID          string
	AssetID     string
	UserID      string
	Title       string
	Description string
	Priority    RequestPriority
	Category    RequestCategory
	Status      RequestStatus
	SubmittedAt time.Time

	// AssignedTo and AssignedKind are either both set or both nil.
	AssignedTo   *string
	AssignedKind *AssigneeKind

	EstimatedCompletion *time.Time
	ActualCompletion    *time.Time
	Cost                *float64
	Resolution          string
	Notes               string
	Attachments         []Attachment

	// WarrantyEligible is computed once at submission time and frozen.
	WarrantyEligible bool
	WarrantyUsed     bool
}

// Clone returns a deep copy so store-owned records never leak by reference.
func (r *MaintenanceRequest) Clone() *MaintenanceRequest {
	if r == nil {
		return nil
	}
	out := *r
	if r.AssignedTo != nil {
		v := *r.AssignedTo
		out.AssignedTo = &v
	}
	if r.AssignedKind != nil {
		v := *r.AssignedKind
		out.AssignedKind = &v
	}
	if r.EstimatedCompletion != nil {
		v := *r.EstimatedCompletion
		out.EstimatedCompletion = &v
	}
	if r.ActualCompletion != nil {
		v := *r.ActualCompletion
		out.ActualCompletion = &v
	}
	if r.Cost != nil {
		v := *r.Cost
		out.Cost = &v
	}
	if r.Attachments != nil {
		out.Attachments = make([]Attachment, len(r.Attachments))
		copy(out.Attachments, r.Attachments)
	}
	return &out
}
