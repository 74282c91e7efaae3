package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/assetflow/maintenance-service/internal/domain"
	"github.com/assetflow/maintenance-service/internal/events"
	"github.com/assetflow/maintenance-service/internal/lifecycle"
	apperrors "github.com/assetflow/maintenance-service/pkg/util"
)

// Assign routes a pending request to a help-desk employee or vendor. The
// assignee fields, the pending -> in-progress transition, and the
// employee workload increment commit as one atomic unit; the pending
// precondition is re-checked under the write lock, so of two concurrent
// assignments exactly one succeeds. Reassignment is unsupported: a
// request that already left pending cannot be assigned again.
func (s *Store) Assign(ctx context.Context, actor domain.Actor, requestID, assigneeID string, kind domain.AssigneeKind, now time.Time) (*domain.MaintenanceRequest, error) {
	if assigneeID == "" {
		return nil, apperrors.NewValidationError("assignee_id required", nil)
	}
	if !kind.Valid() {
		return nil, apperrors.NewValidationError("unknown assignee kind", map[string]any{"kind": string(kind)})
	}

	s.mu.Lock()
	req, ok := s.requests[requestID]
	if !ok {
		s.mu.Unlock()
		return nil, apperrors.NewNotFound("request", map[string]any{"request_id": requestID})
	}
	if req.Status != domain.RequestStatusPending {
		s.mu.Unlock()
		return nil, apperrors.NewInvalidOperation("request is not pending", map[string]any{
			"request_id": requestID,
			"status":     string(req.Status),
		})
	}

	var employee *domain.HelpDeskEmployee
	switch kind {
	case domain.AssigneeHelpDesk:
		employee, ok = s.employees[assigneeID]
		if !ok {
			s.mu.Unlock()
			return nil, apperrors.NewNotFound("help-desk employee", map[string]any{"employee_id": assigneeID})
		}
		if !employee.Available {
			s.mu.Unlock()
			return nil, apperrors.NewAssigneeUnavailable(assigneeID)
		}
	case domain.AssigneeVendor:
		if _, ok = s.vendors[assigneeID]; !ok {
			s.mu.Unlock()
			return nil, apperrors.NewNotFound("vendor", map[string]any{"vendor_id": assigneeID})
		}
	}

	newStatus, err := lifecycle.Apply(ctx, req.Status, domain.RequestStatusInProgress)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	updated := req.Clone()
	updated.Status = newStatus
	assignee := assigneeID
	assigneeKind := kind
	updated.AssignedTo = &assignee
	updated.AssignedKind = &assigneeKind
	s.requests[requestID] = updated
	if employee != nil {
		employee.Workload++
	}
	s.mu.Unlock()

	s.logger.Info("request assigned",
		zap.String("request_id", requestID),
		zap.String("assignee_id", assigneeID),
		zap.String("kind", string(kind)))
	s.publish(ctx, events.Event{
		Type:      events.EventRequestAssigned,
		RequestID: requestID,
		Actor:     actor,
		Timestamp: now,
		Payload: events.RequestAssignedPayload{
			AssigneeID: assigneeID,
			Kind:       kind,
		},
	})
	return updated.Clone(), nil
}
