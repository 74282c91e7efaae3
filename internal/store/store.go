// Package store owns the authoritative maintenance collections and the
// only mutation surface over them. All mutating commands are serialized
// under a single writer lock and commit all-or-nothing; reads hand out
// deep copies so callers can never write through to store-owned state.
package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/assetflow/maintenance-service/internal/domain"
	"github.com/assetflow/maintenance-service/internal/events"
	apperrors "github.com/assetflow/maintenance-service/pkg/util"
)

// Store holds requests, assets, employees, and vendors.
type Store struct {
	mu         sync.RWMutex
	logger     *zap.Logger
	dispatcher events.Dispatcher

	requests  map[string]*domain.MaintenanceRequest
	assets    map[string]*domain.Asset
	employees map[string]*domain.HelpDeskEmployee
	vendors   map[string]*domain.Vendor

	nextSeq int
}

// New constructs an empty store.
func New(logger *zap.Logger, dispatcher events.Dispatcher) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		logger:     logger,
		dispatcher: dispatcher,
		requests:   make(map[string]*domain.MaintenanceRequest),
		assets:     make(map[string]*domain.Asset),
		employees:  make(map[string]*domain.HelpDeskEmployee),
		vendors:    make(map[string]*domain.Vendor),
	}
}

// RequestFilter narrows request listings.
type RequestFilter struct {
	Statuses   []domain.RequestStatus
	Priorities []domain.RequestPriority
	Search     string
}

func (f RequestFilter) matches(r *domain.MaintenanceRequest) bool {
	if len(f.Statuses) > 0 && !containsStatus(f.Statuses, r.Status) {
		return false
	}
	if len(f.Priorities) > 0 && !containsPriority(f.Priorities, r.Priority) {
		return false
	}
	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		if !strings.Contains(strings.ToLower(r.Title), term) &&
			!strings.Contains(strings.ToLower(r.Description), term) &&
			!strings.Contains(strings.ToLower(r.ID), term) {
			return false
		}
	}
	return true
}

// Request returns a copy of the request.
func (s *Store) Request(id string) (*domain.MaintenanceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	req, ok := s.requests[id]
	if !ok {
		return nil, apperrors.NewNotFound("request", map[string]any{"request_id": id})
	}
	return req.Clone(), nil
}

// ListRequests returns filtered copies, newest submission first.
func (s *Store) ListRequests(filter RequestFilter) []domain.MaintenanceRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.MaintenanceRequest, 0, len(s.requests))
	for _, req := range s.requests {
		if filter.matches(req) {
			result = append(result, *req.Clone())
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].SubmittedAt.Equal(result[j].SubmittedAt) {
			return result[i].SubmittedAt.After(result[j].SubmittedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result
}

// Snapshot returns consistent copies of the request and asset collections
// for read-only aggregation. The snapshot never observes a half-applied
// mutation.
func (s *Store) Snapshot() ([]domain.MaintenanceRequest, []domain.Asset) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	requests := make([]domain.MaintenanceRequest, 0, len(s.requests))
	for _, req := range s.requests {
		requests = append(requests, *req.Clone())
	}
	assets := make([]domain.Asset, 0, len(s.assets))
	for _, asset := range s.assets {
		assets = append(assets, *asset.Clone())
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].ID < requests[j].ID })
	sort.Slice(assets, func(i, j int) bool { return assets[i].ID < assets[j].ID })
	return requests, assets
}

// Counts reports collection sizes for health reporting.
func (s *Store) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		"requests":  len(s.requests),
		"assets":    len(s.assets),
		"employees": len(s.employees),
		"vendors":   len(s.vendors),
	}
}

func (s *Store) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func newAttachmentID() string {
	return "ATT-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func containsStatus(haystack []domain.RequestStatus, needle domain.RequestStatus) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func containsPriority(haystack []domain.RequestPriority, needle domain.RequestPriority) bool {
	for _, p := range haystack {
		if p == needle {
			return true
		}
	}
	return false
}
