package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/assetflow/maintenance-service/internal/domain"
	"github.com/assetflow/maintenance-service/internal/events"
	"github.com/assetflow/maintenance-service/internal/lifecycle"
	"github.com/assetflow/maintenance-service/internal/warranty"
	apperrors "github.com/assetflow/maintenance-service/pkg/util"
)

// CreateRequestInput describes a submission command.
type CreateRequestInput struct {
	AssetID     string
	Title       string
	Description string
	Priority    domain.RequestPriority
	Category    domain.RequestCategory
}

// CreateRequest validates the referenced asset, computes warranty
// eligibility at submission time, assigns the next sequential id, and
// commits the new request in status pending.
func (s *Store) CreateRequest(ctx context.Context, actor domain.Actor, input CreateRequestInput, now time.Time) (*domain.MaintenanceRequest, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if actor.ID == "" {
		return nil, apperrors.NewValidationError("actor required", nil)
	}
	if input.AssetID == "" || title == "" || description == "" {
		return nil, apperrors.NewValidationError("asset_id, title, description required", nil)
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.Valid() {
		return nil, apperrors.NewValidationError("unknown priority", map[string]any{"priority": string(input.Priority)})
	}
	category := input.Category
	if category == "" {
		category = domain.CategoryHardware
	}
	if !category.Valid() {
		return nil, apperrors.NewValidationError("unknown category", map[string]any{"category": string(input.Category)})
	}

	s.mu.Lock()
	asset, ok := s.assets[input.AssetID]
	if !ok {
		s.mu.Unlock()
		return nil, apperrors.NewNotFound("asset", map[string]any{"asset_id": input.AssetID})
	}
	s.nextSeq++
	req := &domain.MaintenanceRequest{
		ID:               fmt.Sprintf("MR-%03d", s.nextSeq),
		AssetID:          asset.ID,
		UserID:           actor.ID,
		Title:            title,
		Description:      description,
		Priority:         priority,
		Category:         category,
		Status:           domain.RequestStatusPending,
		SubmittedAt:      now,
		Attachments:      []domain.Attachment{},
		WarrantyEligible: warranty.Eligible(asset, now),
	}
	s.requests[req.ID] = req
	s.mu.Unlock()

	s.logger.Info("request created",
		zap.String("request_id", req.ID),
		zap.String("asset_id", req.AssetID),
		zap.Bool("warranty_eligible", req.WarrantyEligible))
	s.publish(ctx, events.Event{
		Type:      events.EventRequestCreated,
		RequestID: req.ID,
		Actor:     actor,
		Timestamp: now,
		Payload: events.RequestCreatedPayload{
			AssetID:          req.AssetID,
			Title:            req.Title,
			Priority:         req.Priority,
			Category:         req.Category,
			WarrantyEligible: req.WarrantyEligible,
		},
	})
	return req.Clone(), nil
}

// UpdateStatus drives the lifecycle state machine for a request. Admin
// only. Direct moves into in-progress are rejected; assignment is the
// sole trigger for that transition.
func (s *Store) UpdateStatus(ctx context.Context, actor domain.Actor, requestID string, next domain.RequestStatus, now time.Time) (*domain.MaintenanceRequest, error) {
	if !next.Valid() {
		return nil, apperrors.NewValidationError("unknown status", map[string]any{"status": string(next)})
	}
	if !actor.IsAdmin() {
		return nil, apperrors.NewForbidden("status updates require the admin role")
	}

	s.mu.Lock()
	req, ok := s.requests[requestID]
	if !ok {
		s.mu.Unlock()
		return nil, apperrors.NewNotFound("request", map[string]any{"request_id": requestID})
	}
	if next == domain.RequestStatusInProgress {
		s.mu.Unlock()
		return nil, apperrors.NewInvalidTransition(string(req.Status), string(next))
	}
	oldStatus := req.Status
	newStatus, err := lifecycle.Apply(ctx, req.Status, next)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	updated := req.Clone()
	updated.Status = newStatus
	if newStatus == domain.RequestStatusCompleted {
		completedAt := now
		updated.ActualCompletion = &completedAt
	}
	s.requests[requestID] = updated
	if oldStatus == domain.RequestStatusInProgress && newStatus.Terminal() {
		s.releaseWorkloadLocked(updated)
	}
	s.mu.Unlock()

	s.logger.Info("request status changed",
		zap.String("request_id", requestID),
		zap.String("old_status", string(oldStatus)),
		zap.String("new_status", string(newStatus)))
	s.publish(ctx, events.Event{
		Type:      events.EventRequestStatusChanged,
		RequestID: requestID,
		Actor:     actor,
		Timestamp: now,
		Payload: events.RequestStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})
	return updated.Clone(), nil
}

// SetWarrantyUsed flips the warranty-used flag. Only permitted on
// warranty-eligible requests.
func (s *Store) SetWarrantyUsed(ctx context.Context, actor domain.Actor, requestID string, used bool, now time.Time) (*domain.MaintenanceRequest, error) {
	s.mu.Lock()
	req, ok := s.requests[requestID]
	if !ok {
		s.mu.Unlock()
		return nil, apperrors.NewNotFound("request", map[string]any{"request_id": requestID})
	}
	if !req.WarrantyEligible {
		s.mu.Unlock()
		return nil, apperrors.NewInvalidOperation("request is not warranty eligible", map[string]any{"request_id": requestID})
	}
	updated := req.Clone()
	updated.WarrantyUsed = used
	s.requests[requestID] = updated
	s.mu.Unlock()

	s.publish(ctx, events.Event{
		Type:      events.EventRequestWarrantyUsed,
		RequestID: requestID,
		Actor:     actor,
		Timestamp: now,
		Payload:   events.RequestWarrantyUsedPayload{Used: used},
	})
	return updated.Clone(), nil
}

// AttachmentInput describes a file record to append.
type AttachmentInput struct {
	FileName string
	FileRef  string
	FileSize int64
}

// AddAttachment appends a file record to the request. The attachment list
// is append-only; records are never removed through this surface.
func (s *Store) AddAttachment(ctx context.Context, actor domain.Actor, requestID string, input AttachmentInput, now time.Time) (*domain.MaintenanceRequest, error) {
	if strings.TrimSpace(input.FileName) == "" {
		return nil, apperrors.NewValidationError("file_name required", nil)
	}
	if input.FileSize < 0 {
		return nil, apperrors.NewValidationError("file_size must not be negative", nil)
	}

	s.mu.Lock()
	req, ok := s.requests[requestID]
	if !ok {
		s.mu.Unlock()
		return nil, apperrors.NewNotFound("request", map[string]any{"request_id": requestID})
	}
	attachment := domain.Attachment{
		ID:         newAttachmentID(),
		FileName:   strings.TrimSpace(input.FileName),
		FileRef:    input.FileRef,
		FileSize:   input.FileSize,
		UploadedAt: now,
	}
	updated := req.Clone()
	updated.Attachments = append(updated.Attachments, attachment)
	s.requests[requestID] = updated
	s.mu.Unlock()

	s.publish(ctx, events.Event{
		Type:      events.EventAttachmentAdded,
		RequestID: requestID,
		Actor:     actor,
		Timestamp: now,
		Payload: events.AttachmentAddedPayload{
			AttachmentID: attachment.ID,
			FileName:     attachment.FileName,
			FileSize:     attachment.FileSize,
		},
	})
	return updated.Clone(), nil
}

// DeleteRequest removes the request unconditionally. Irreversible.
func (s *Store) DeleteRequest(ctx context.Context, actor domain.Actor, requestID string, now time.Time) error {
	s.mu.Lock()
	req, ok := s.requests[requestID]
	if !ok {
		s.mu.Unlock()
		return apperrors.NewNotFound("request", map[string]any{"request_id": requestID})
	}
	delete(s.requests, requestID)
	if req.Status == domain.RequestStatusInProgress {
		s.releaseWorkloadLocked(req)
	}
	s.mu.Unlock()

	s.logger.Info("request deleted", zap.String("request_id", requestID))
	s.publish(ctx, events.Event{
		Type:      events.EventRequestDeleted,
		RequestID: requestID,
		Actor:     actor,
		Timestamp: now,
		Payload:   events.RequestDeletedPayload{Status: req.Status},
	})
	return nil
}

// releaseWorkloadLocked decrements the assigned employee's workload when
// an in-progress request leaves that employee's queue. Caller holds the
// write lock.
func (s *Store) releaseWorkloadLocked(req *domain.MaintenanceRequest) {
	if req.AssignedKind == nil || *req.AssignedKind != domain.AssigneeHelpDesk || req.AssignedTo == nil {
		return
	}
	if employee, ok := s.employees[*req.AssignedTo]; ok && employee.Workload > 0 {
		employee.Workload--
	}
}
