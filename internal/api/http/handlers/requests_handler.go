package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/assetflow/maintenance-service/internal/api/dto"
	"github.com/assetflow/maintenance-service/internal/auth"
	"github.com/assetflow/maintenance-service/internal/domain"
	"github.com/assetflow/maintenance-service/internal/store"
	apperrors "github.com/assetflow/maintenance-service/pkg/util"
)

// RequestsHandler exposes the maintenance request commands.
type RequestsHandler struct {
	store *store.Store
}

// NewRequestsHandler constructs the handler.
func NewRequestsHandler(s *store.Store) *RequestsHandler {
	return &RequestsHandler{store: s}
}

// Create POST /requests.
func (h *RequestsHandler) Create(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewForbidden("actor required")
	}
	var req dto.CreateRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	record, err := h.store.CreateRequest(c.UserContext(), actor, store.CreateRequestInput{
		AssetID:     req.AssetID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Category:    req.Category,
	}, time.Now())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": requestResponse(record)})
}

// List GET /requests.
func (h *RequestsHandler) List(c *fiber.Ctx) error {
	filter := store.RequestFilter{Search: c.Query("search")}
	if statusStr := c.Query("status"); statusStr != "" {
		for _, part := range strings.Split(statusStr, ",") {
			filter.Statuses = append(filter.Statuses, domain.RequestStatus(strings.TrimSpace(part)))
		}
	}
	if priorityStr := c.Query("priority"); priorityStr != "" {
		for _, part := range strings.Split(priorityStr, ",") {
			filter.Priorities = append(filter.Priorities, domain.RequestPriority(strings.TrimSpace(part)))
		}
	}
	records := h.store.ListRequests(filter)
	items := make([]dto.RequestResponse, 0, len(records))
	for i := range records {
		items = append(items, requestResponse(&records[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /requests/:id.
func (h *RequestsHandler) Get(c *fiber.Ctx) error {
	record, err := h.store.Request(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": requestResponse(record)})
}

// Assign POST /requests/:id/assign.
func (h *RequestsHandler) Assign(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewForbidden("actor required")
	}
	var req dto.AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	record, err := h.store.Assign(c.UserContext(), actor, c.Params("id"), req.AssigneeID, req.Kind, time.Now())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": requestResponse(record)})
}

// UpdateStatus POST /requests/:id/status.
func (h *RequestsHandler) UpdateStatus(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewForbidden("actor required")
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	record, err := h.store.UpdateStatus(c.UserContext(), actor, c.Params("id"), req.Status, time.Now())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": requestResponse(record)})
}

// SetWarrantyUsed POST /requests/:id/warranty.
func (h *RequestsHandler) SetWarrantyUsed(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewForbidden("actor required")
	}
	var req dto.WarrantyUsedRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	record, err := h.store.SetWarrantyUsed(c.UserContext(), actor, c.Params("id"), req.Used, time.Now())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": requestResponse(record)})
}

// AddAttachment POST /requests/:id/attachments.
func (h *RequestsHandler) AddAttachment(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewForbidden("actor required")
	}
	var req dto.AddAttachmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	record, err := h.store.AddAttachment(c.UserContext(), actor, c.Params("id"), store.AttachmentInput{
		FileName: req.FileName,
		FileRef:  req.FileRef,
		FileSize: req.FileSize,
	}, time.Now())
	if err != nil {
		return err
	}
	attachments := make([]dto.AttachmentResponse, 0, len(record.Attachments))
	for _, att := range record.Attachments {
		attachments = append(attachments, attachmentResponse(att))
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": attachments})
}

// Delete DELETE /requests/:id.
func (h *RequestsHandler) Delete(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewForbidden("actor required")
	}
	if err := h.store.DeleteRequest(c.UserContext(), actor, c.Params("id"), time.Now()); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func requestResponse(record *domain.MaintenanceRequest) dto.RequestResponse {
	attachments := make([]dto.AttachmentResponse, 0, len(record.Attachments))
	for _, att := range record.Attachments {
		attachments = append(attachments, attachmentResponse(att))
	}
	return dto.RequestResponse{
		ID:                  record.ID,
		AssetID:             record.AssetID,
		UserID:              record.UserID,
		Title:               record.Title,
		Description:         record.Description,
		Priority:            record.Priority,
		Category:            record.Category,
		Status:              record.Status,
		SubmittedAt:         record.SubmittedAt,
		AssignedTo:          record.AssignedTo,
		AssignedKind:        record.AssignedKind,
		EstimatedCompletion: record.EstimatedCompletion,
		ActualCompletion:    record.ActualCompletion,
		Cost:                record.Cost,
		Resolution:          record.Resolution,
		Notes:               record.Notes,
		Attachments:         attachments,
		WarrantyEligible:    record.WarrantyEligible,
		WarrantyUsed:        record.WarrantyUsed,
	}
}

func attachmentResponse(att domain.Attachment) dto.AttachmentResponse {
	return dto.AttachmentResponse{
		ID:         att.ID,
		FileName:   att.FileName,
		FileRef:    att.FileRef,
		FileSize:   att.FileSize,
		UploadedAt: att.UploadedAt,
	}
}
