// Package notify subscribes to domain events and emits notifications.
// Delivery targets are stubs; the package exists so the presentation
// layer and operators see a structured audit trail of every command.
package notify

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/assetflow/maintenance-service/internal/config"
	"github.com/assetflow/maintenance-service/internal/events"
)

// Notifier handles emitting notifications for domain events.
type Notifier struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotifier creates the notifier.
func NewNotifier(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *Notifier {
	return &Notifier{dispatcher: dispatcher, logger: logger, cfg: cfg}
}

// RegisterHandlers subscribes to all maintenance events.
func (n *Notifier) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventRequestCreated, n.handleEvent)
	n.dispatcher.Subscribe(events.EventRequestAssigned, n.handleEvent)
	n.dispatcher.Subscribe(events.EventRequestStatusChanged, n.handleEvent)
	n.dispatcher.Subscribe(events.EventRequestWarrantyUsed, n.handleEvent)
	n.dispatcher.Subscribe(events.EventAttachmentAdded, n.handleEvent)
	n.dispatcher.Subscribe(events.EventRequestDeleted, n.handleEvent)
}

func (n *Notifier) handleEvent(ctx context.Context, event events.Event) error {
	n.logger.Info("domain event",
		zap.String("event_type", string(event.Type)),
		zap.String("request_id", event.RequestID),
		zap.String("actor_id", event.Actor.ID),
		zap.Any("payload", event.Payload))
	n.sendEmailStub(ctx, event)
	n.sendWebhookStub(ctx, event)
	return nil
}

func (n *Notifier) sendEmailStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("request_id", event.RequestID),
		zap.String("event_type", string(event.Type)))
}

func (n *Notifier) sendWebhookStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("request_id", event.RequestID),
		zap.String("event_type", string(event.Type)))
}
